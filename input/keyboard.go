package input

import (
	cfg "github.com/automoto/bloomrun/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Keyboard reads the configured key bindings. Movement is held; jump, shoot
// and restart trigger on the press edge.
type Keyboard struct{}

func (Keyboard) Sample() Intents {
	return Intents{
		MoveLeft:  anyPressed(cfg.ActionMoveLeft),
		MoveRight: anyPressed(cfg.ActionMoveRight),
		Jump:      anyJustPressed(cfg.ActionJump),
		Shoot:     anyJustPressed(cfg.ActionShoot),
		Restart:   anyJustPressed(cfg.ActionRestart),
	}
}

func anyPressed(action cfg.ActionID) bool {
	for _, key := range cfg.Input.Bindings[action].Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

func anyJustPressed(action cfg.ActionID) bool {
	for _, key := range cfg.Input.Bindings[action].Keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}
