package systems

import (
	"github.com/automoto/bloomrun/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-registers every moved object with the collision space's cells.
func UpdateObjects(ecs *ecs.ECS) {
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		components.Object.Get(e).Update()
	})
}
