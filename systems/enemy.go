package systems

import (
	"math"

	"github.com/automoto/bloomrun/components"
	cfg "github.com/automoto/bloomrun/config"
	"github.com/automoto/bloomrun/gamemath"
	"github.com/automoto/bloomrun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type targetPolicy func(rng components.RandSource, player, companion *donburi.Entry) *donburi.Entry

var targetPolicies = map[cfg.TargetPolicy]targetPolicy{
	cfg.TargetPlayer: targetPlayer,
	cfg.TargetRandom: targetRandom,
}

func targetPlayer(_ components.RandSource, player, _ *donburi.Entry) *donburi.Entry {
	return player
}

// targetRandom flips a fair coin every tick.
func targetRandom(rng components.RandSource, player, companion *donburi.Entry) *donburi.Entry {
	if companion == nil || rng.Intn(2) == 0 {
		return player
	}
	return companion
}

// UpdateEnemies selects a target for every enemy and tracks it. The first
// enemy in spawn order always hunts the player; the rest pick at random.
func UpdateEnemies(ecs *ecs.ECS) {
	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	companion, _ := tags.Companion.First(ecs.World)

	rng := GetSession(ecs).Rand
	platforms := platformsInOrder(ecs.World)

	for i, enemy := range liveEnemies(ecs.World) {
		enemy.data.Policy = cfg.TargetRandom
		if i == 0 {
			enemy.data.Policy = cfg.TargetPlayer
		}
		target := targetPolicies[enemy.data.Policy](rng, player, companion)
		enemy.data.Target = target.Entity()

		trackTarget(enemy.obj, enemy.data, components.Object.Get(target))
		snapToPlatform(enemy.obj, platforms)
		if enemy.obj.Bottom() > cfg.Physics.GroundY {
			enemy.obj.Y = cfg.Physics.GroundY - enemy.obj.H
		}
	}
}

// trackTarget moves independently on each axis once outside that axis's deadzone.
// Vertical distance is measured between bottom edges.
func trackTarget(obj *components.ObjectData, enemy *components.EnemyData, target *components.ObjectData) {
	dx := target.X - obj.X
	if math.Abs(dx) > cfg.Enemy.DeadzoneX {
		obj.X += gamemath.Sign(dx) * cfg.Enemy.SpeedX
		enemy.Facing = gamemath.Sign(dx)
	}
	dy := target.Bottom() - obj.Bottom()
	if math.Abs(dy) > cfg.Enemy.DeadzoneY {
		obj.Y += gamemath.Sign(dy) * cfg.Enemy.SpeedY
	}
}

// snapToPlatform is the simplified enemy landing: a position snap onto the
// first aligned platform, with no velocity or contact state.
func snapToPlatform(obj *components.ObjectData, platforms []platformRef) {
	for _, p := range platforms {
		if gamemath.LandingAligned(obj.X, obj.W, obj.Bottom(), p.obj.X, p.obj.W, p.obj.Y, cfg.Physics.LandingTolerance, 0) {
			obj.Y = p.obj.Y - obj.H
			return
		}
	}
}
