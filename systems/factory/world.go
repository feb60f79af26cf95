package factory

import (
	"time"

	"github.com/automoto/bloomrun/components"
	cfg "github.com/automoto/bloomrun/config"
	"github.com/automoto/bloomrun/input"
	"github.com/yohamta/donburi/ecs"
)

// WorldOptions are the collaborators injected into a session. They survive a
// reset; everything else is rebuilt.
type WorldOptions struct {
	Rand  components.RandSource
	Now   func() time.Time
	Input input.Source
	Sink  components.SoundSink
}

// CreateWorld populates an empty ECS with a fresh session: singletons, the
// collision space, both characters, the seeded enemies, a newly generated
// platform set and the camera.
func CreateWorld(ecs *ecs.ECS, opts WorldOptions) {
	CreateSession(ecs, opts.Rand, opts.Now)
	CreateInput(ecs, opts.Input)
	CreateAudio(ecs, opts.Sink)

	cell := cfg.World.CellSize
	CreateSpace(ecs, int(cfg.World.Length)+cell*4, cfg.C.Height+cell*4, cell, cell)

	GeneratePlatforms(ecs, opts.Rand)
	player := CreatePlayer(ecs)
	CreateCompanion(ecs)
	SeedEnemies(ecs)

	CreateCamera(ecs, components.Object.Get(player).X)
}
