package components

import (
	"github.com/automoto/bloomrun/input"
	"github.com/yohamta/donburi"
)

// InputData stores the source and the intents sampled for the current tick.
type InputData struct {
	Source  input.Source
	Current input.Intents
}

var Input = donburi.NewComponentType[InputData]()
