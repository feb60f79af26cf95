package systems

import (
	"github.com/automoto/bloomrun/components"
	cfg "github.com/automoto/bloomrun/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles advances every projectile and prunes those that left the world.
func UpdateProjectiles(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		obj.X += components.Projectile.Get(e).Direction * cfg.Projectile.Speed
		if obj.X < 0 || obj.X > cfg.World.Length {
			toRemove = append(toRemove, e)
		}
	})

	for _, p := range toRemove {
		destroyEntity(ecs, p)
	}
}
