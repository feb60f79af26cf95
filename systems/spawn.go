package systems

import (
	"github.com/automoto/bloomrun/components"
	cfg "github.com/automoto/bloomrun/config"
	"github.com/automoto/bloomrun/systems/factory"
	"github.com/automoto/bloomrun/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawner tops the enemy population up by one per tick while it is
// below the floor, on a random side of the player.
func UpdateSpawner(ecs *ecs.ECS) {
	if countOf(ecs.World, components.Enemy) >= cfg.Enemy.MinAlive {
		return
	}
	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}

	side := 1.0
	if GetSession(ecs).Rand.Intn(2) == 0 {
		side = -1.0
	}
	x := components.Object.Get(player).X + side*cfg.Enemy.SpawnOffset
	if x < 0 {
		x = 0
	}
	factory.CreateEnemy(ecs, x)
	logger.Debug("enemy spawned", "x", x)
}
