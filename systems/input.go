package systems

import (
	"github.com/automoto/bloomrun/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput samples the input source exactly once per tick.
// Must run BEFORE UpdateSession and UpdateCharacters in the system order.
func UpdateInput(ecs *ecs.ECS) {
	in := GetInput(ecs)
	if in.Source == nil {
		return
	}
	in.Current = in.Source.Sample()
}

// GetInput returns the input singleton.
func GetInput(ecs *ecs.ECS) *components.InputData {
	return components.Input.Get(components.Input.MustFirst(ecs.World))
}
