package factory

import (
	"github.com/automoto/bloomrun/archetypes"
	"github.com/automoto/bloomrun/components"
	cfg "github.com/automoto/bloomrun/config"
	"github.com/automoto/bloomrun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile spawns a projectile at the owner's leading edge, travelling
// in the owner's facing direction.
func CreateProjectile(ecs *ecs.ECS, owner *donburi.Entry) *donburi.Entry {
	ownerObj := components.Object.Get(owner)
	facing := components.Character.Get(owner).Facing

	x := ownerObj.X + ownerObj.W
	if facing < 0 {
		x = ownerObj.X - cfg.Projectile.Width
	}
	y := ownerObj.Y + ownerObj.H/2 - cfg.Projectile.Height/2

	p := archetypes.Projectile.Spawn(ecs)
	newObject(ecs, p, x, y, cfg.Projectile.Width, cfg.Projectile.Height, tags.ResolvProjectile)
	components.Projectile.SetValue(p, components.ProjectileData{
		Owner:     owner.Entity(),
		Direction: facing,
	})
	return p
}
