package systems

import (
	"github.com/automoto/bloomrun/components"
	"github.com/automoto/bloomrun/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// sweepDefeated removes every enemy marked defeated and drops exactly one
// flower where each one stood.
func sweepDefeated(ecs *ecs.ECS) {
	var defeated []*donburi.Entry
	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if components.Enemy.Get(e).Defeated {
			defeated = append(defeated, e)
		}
	})

	for _, e := range defeated {
		obj := components.Object.Get(e)
		x, y := obj.X, obj.Y
		destroyEntity(ecs, e)
		factory.CreateFlower(ecs, x, y)
		logger.Debug("enemy defeated", "x", x, "y", y)
	}
}
