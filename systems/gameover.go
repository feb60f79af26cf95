package systems

import (
	"github.com/automoto/bloomrun/components"
	cfg "github.com/automoto/bloomrun/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"
)

// EndSession moves the session to GameOver. Later transitions are ignored.
func EndSession(ecs *ecs.ECS, reason string) {
	session := GetSession(ecs)
	if session.State == cfg.SessionGameOver {
		return
	}
	session.State = cfg.SessionGameOver
	session.Reason = reason
	PlaySFX(ecs, cfg.SoundGameOver)
	logger.Info("game over", "reason", reason, "tick", session.Tick, "score", totalScore(ecs))
}

// totalScore sums both characters' scores.
func totalScore(ecs *ecs.ECS) int {
	total := 0
	for _, c := range characters(ecs.World) {
		total += components.Character.Get(c).Score
	}
	return total
}

// DrawGameOver renders the game over overlay
func DrawGameOver(ecs *ecs.ECS, screen *ebiten.Image) {
	session := GetSession(ecs)
	if session.State != cfg.SessionGameOver {
		return
	}

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, cfg.UI.OverlayColor, false)

	face := basicfont.Face7x13
	lines := []string{
		"GAME OVER",
		session.Reason,
		"press R to restart",
	}
	for i, line := range lines {
		x := (int(width) - len(line)*face.Advance) / 2
		y := int(height)/2 - 20 + i*20
		text.Draw(screen, line, face, x, y, cfg.UI.TextColor)
	}
}
