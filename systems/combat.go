package systems

import (
	"github.com/automoto/bloomrun/components"
	cfg "github.com/automoto/bloomrun/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat resolves the three hazard channels on this tick's
// post-movement positions: stomps, projectile hits, then contact damage.
// Defeated enemies are swept between the hits and contact damage.
func UpdateCombat(ecs *ecs.ECS) {
	decayFlashes(ecs)

	chars := characters(ecs.World)
	resolveStomps(ecs, chars, liveEnemies(ecs.World))
	resolveProjectileHits(ecs, chars, liveEnemies(ecs.World))
	sweepDefeated(ecs)
	applyContactDamage(ecs, chars, liveEnemies(ecs.World))
}

// resolveStomps lets a falling character land on any number of enemies in one
// tick. Falling is sampled before the scan so the first bounce does not cancel
// the rest.
func resolveStomps(ecs *ecs.ECS, chars []*donburi.Entry, enemies []enemyRef) {
	for _, c := range chars {
		obj := components.Object.Get(c)
		physics := components.Physics.Get(c)
		if physics.SpeedY <= 0 {
			continue
		}
		for _, enemy := range enemies {
			if enemy.data.Defeated {
				continue
			}
			if obj.Bottom() > enemy.obj.Y+cfg.Combat.StompMargin || !obj.Overlaps(enemy.obj) {
				continue
			}
			damageEnemy(ecs, enemy, cfg.Combat.StompDamage)
			physics.SpeedY = cfg.Physics.JumpImpulse
			physics.Jumping = true
			physics.DropSupport()
			PlaySFX(ecs, cfg.SoundStomp)
		}
	}
}

// resolveProjectileHits lets each projectile hit at most one enemy, the first
// overlapping one in spawn order.
func resolveProjectileHits(ecs *ecs.ECS, chars []*donburi.Entry, enemies []enemyRef) {
	var toRemove []*donburi.Entry
	for _, c := range chars {
		for _, p := range projectilesOf(ecs.World, c.Entity()) {
			pobj := components.Object.Get(p)
			for _, enemy := range enemies {
				if enemy.data.Defeated || !pobj.Overlaps(enemy.obj) {
					continue
				}
				damageEnemy(ecs, enemy, cfg.Combat.ProjectileDamage)
				toRemove = append(toRemove, p)
				break
			}
		}
	}
	for _, p := range toRemove {
		destroyEntity(ecs, p)
	}
}

// applyContactDamage drains every overlapping character each tick. A character
// drained to zero ends the session at once.
func applyContactDamage(ecs *ecs.ECS, chars []*donburi.Entry, enemies []enemyRef) {
	for _, c := range chars {
		obj := components.Object.Get(c)
		health := components.Health.Get(c)
		for _, enemy := range enemies {
			if !obj.Overlaps(enemy.obj) {
				continue
			}
			health.Add(-cfg.Combat.ContactDamage)
			TriggerFlash(c)
			if health.Depleted() {
				EndSession(ecs, components.Character.Get(c).Kind.String()+" health depleted")
				return
			}
		}
	}
}

// damageEnemy applies clamped damage and marks the enemy for the defeat sweep
// once its health is gone.
func damageEnemy(ecs *ecs.ECS, enemy enemyRef, amount float64) {
	health := components.Health.Get(enemy.entry)
	health.Add(-amount)
	TriggerFlash(enemy.entry)
	if health.Depleted() {
		enemy.data.Defeated = true
		PlaySFX(ecs, cfg.SoundDefeat)
		return
	}
	PlaySFX(ecs, cfg.SoundHit)
}

// TriggerFlash starts the hit flash on an entity.
func TriggerFlash(e *donburi.Entry) {
	if !e.HasComponent(components.Flash) {
		return
	}
	components.Flash.Get(e).Duration = cfg.Combat.FlashFrames
}

func decayFlashes(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		if f := components.Flash.Get(e); f.Duration > 0 {
			f.Duration--
		}
	})
}
