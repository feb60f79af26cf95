package components

import "github.com/yohamta/donburi"

// ProjectileData belongs to exactly one character for its whole life.
type ProjectileData struct {
	Owner     donburi.Entity
	Direction float64
}

var Projectile = donburi.NewComponentType[ProjectileData]()
