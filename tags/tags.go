package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Companion  = donburi.NewTag().SetName("Companion")
	Platform   = donburi.NewTag().SetName("Platform")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Projectile = donburi.NewTag().SetName("Projectile")
	Flower     = donburi.NewTag().SetName("Flower")
)

// Resolv tags for the collision space
const (
	ResolvCharacter  = "character"
	ResolvPlayer     = "player"
	ResolvCompanion  = "companion"
	ResolvPlatform   = "platform"
	ResolvEnemy      = "enemy"
	ResolvProjectile = "projectile"
	ResolvFlower     = "flower"
	ResolvViewport   = "viewport"
)
