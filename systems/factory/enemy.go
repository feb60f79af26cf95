package factory

import (
	"github.com/automoto/bloomrun/archetypes"
	"github.com/automoto/bloomrun/components"
	cfg "github.com/automoto/bloomrun/config"
	"github.com/automoto/bloomrun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy whose feet rest on the ground at x.
func CreateEnemy(ecs *ecs.ECS, x float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)
	newObject(ecs, enemy, x, cfg.Physics.GroundY-cfg.Enemy.Height, cfg.Enemy.Width, cfg.Enemy.Height, tags.ResolvEnemy)

	components.Enemy.SetValue(enemy, components.EnemyData{
		Seq:    nextSeq(ecs),
		Facing: cfg.DirectionLeft,
		Target: donburi.Null,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: cfg.Enemy.MaxHealth,
		Max:     cfg.Enemy.MaxHealth,
	})
	components.Flash.SetValue(enemy, components.FlashData{})
	return enemy
}

// SeedEnemies creates the initial enemy set.
func SeedEnemies(ecs *ecs.ECS) {
	for _, x := range cfg.Enemy.InitialX {
		CreateEnemy(ecs, x)
	}
}
