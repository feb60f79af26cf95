package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/bloomrun/components"
	cfg "github.com/automoto/bloomrun/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"
)

const hudMargin = 10

// DrawHUD renders each character's health bar and score, plus the session total.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	y := float64(hudMargin)
	for _, c := range characters(ecs.World) {
		hp := components.Health.Get(c)
		ch := components.Character.Get(c)

		vector.FillRect(screen,
			hudMargin, float32(y),
			float32(cfg.UI.HealthBarWidth), float32(cfg.UI.HealthBarHeight),
			color.RGBA{R: 40, G: 40, B: 40, A: 255}, false)
		ratio := float32(hp.Current / hp.Max)
		vector.FillRect(screen,
			hudMargin, float32(y),
			float32(cfg.UI.HealthBarWidth)*ratio, float32(cfg.UI.HealthBarHeight),
			color.RGBA{R: 40, G: 220, B: 40, A: 255}, false)

		label := fmt.Sprintf("%s %d", ch.Kind, ch.Score)
		text.Draw(screen, label, basicfont.Face7x13, hudMargin+int(cfg.UI.HealthBarWidth)+8, int(y)+int(cfg.UI.HealthBarHeight)+2, cfg.UI.TextColor)
		y += 16
	}

	total := fmt.Sprintf("flowers %d", totalScore(ecs))
	text.Draw(screen, total, basicfont.Face7x13, hudMargin, int(y)+12, cfg.UI.TextColor)
}
