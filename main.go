package main

import (
	"image"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/automoto/bloomrun/assets"
	"github.com/automoto/bloomrun/config"
	"github.com/automoto/bloomrun/input"
	"github.com/automoto/bloomrun/scenes"
	"github.com/automoto/bloomrun/systems"
	"github.com/automoto/bloomrun/systems/factory"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame() *Game {
	ctx := audio.NewContext(config.Audio.SampleRate)

	return &Game{
		bounds: image.Rectangle{},
		scene: scenes.NewWorldScene(factory.WorldOptions{
			Rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
			Input: input.Keyboard{},
			Sink:  assets.NewToneBank(ctx, config.Audio.DefaultSFXVol),
		}),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	if path, err := config.LoadTuning(""); err != nil {
		log.Warn("Could not load tuning, using defaults", "err", err)
	} else if path != "" {
		systems.Logger().Info("tuning loaded", "path", path)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("bloomrun")
	ebiten.SetTPS(config.World.TickRate)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
