package scenes

import (
	"image/color"

	cfg "github.com/automoto/bloomrun/config"
	"github.com/automoto/bloomrun/systems"
	"github.com/automoto/bloomrun/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene owns one session at a time. A reset discards the whole ECS and
// builds a new one around the same injected collaborators.
type WorldScene struct {
	ecs    *ecs.ECS
	opts   factory.WorldOptions
	resets int
}

func NewWorldScene(opts factory.WorldOptions) *WorldScene {
	ws := &WorldScene{opts: opts}
	ws.configure()
	return ws
}

// Update runs one tick, then performs a requested reset.
func (ws *WorldScene) Update() {
	ws.ecs.Update()

	if systems.GetSession(ws.ecs).ResetRequested {
		ws.Reset()
	}
}

// Reset replaces the session wholesale.
func (ws *WorldScene) Reset() {
	ws.resets++
	systems.Logger().Info("session reset", "resets", ws.resets)
	ws.configure()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	ws.ecs.Draw(screen)
}

// ECS exposes the current session's world.
func (ws *WorldScene) ECS() *ecs.ECS {
	return ws.ecs
}

// Resets reports how many times the session has been rebuilt.
func (ws *WorldScene) Resets() int {
	return ws.resets
}

func (ws *WorldScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSession)

	// Movement phase
	ecs.AddSystem(systems.WithRunningCheck(systems.UpdateCompanion))
	ecs.AddSystem(systems.WithRunningCheck(systems.UpdateCharacters))
	ecs.AddSystem(systems.WithRunningCheck(systems.UpdateKinematics))
	ecs.AddSystem(systems.WithRunningCheck(systems.UpdatePlatforms))
	ecs.AddSystem(systems.WithRunningCheck(systems.UpdateEnemies))
	ecs.AddSystem(systems.WithRunningCheck(systems.UpdateProjectiles))
	ecs.AddSystem(systems.WithRunningCheck(systems.UpdateObjects))

	// Collision phase reads only this tick's post-movement positions
	ecs.AddSystem(systems.WithRunningCheck(systems.UpdateCombat))
	ecs.AddSystem(systems.WithRunningCheck(systems.UpdatePickups))
	ecs.AddSystem(systems.WithRunningCheck(systems.UpdateFallOff))

	ecs.AddSystem(systems.WithRunningCheck(systems.UpdateSpawner))
	ecs.AddSystem(systems.WithRunningCheck(systems.UpdateCamera))
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawGameOver)

	factory.CreateWorld(ecs, ws.opts)
	ws.ecs = ecs
}
