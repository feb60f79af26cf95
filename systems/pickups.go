package systems

import (
	"github.com/automoto/bloomrun/components"
	cfg "github.com/automoto/bloomrun/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePickups animates the flowers and lets a character collect each
// overlapping flower exactly once. The player is checked before the companion.
func UpdatePickups(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry
	chars := characters(ecs.World)
	dt := float32(1.0 / float64(cfg.World.TickRate))

	components.Flower.Each(ecs.World, func(e *donburi.Entry) {
		tw := components.Tween.Get(e)
		bob, _, _ := tw.Update(dt)
		components.Flower.Get(e).Bob = float64(bob)

		obj := components.Object.Get(e)
		for _, c := range chars {
			if !components.Object.Get(c).Overlaps(obj) {
				continue
			}
			ch := components.Character.Get(c)
			ch.Score++
			components.Health.Get(c).Add(cfg.Flower.Heal)
			PlaySFX(ecs, cfg.SoundCollect)
			toRemove = append(toRemove, e)
			return
		}
	})

	for _, f := range toRemove {
		destroyEntity(ecs, f)
	}
}

// UpdateFallOff ends the session when a character leaves [0, world length].
func UpdateFallOff(ecs *ecs.ECS) {
	for _, c := range characters(ecs.World) {
		obj := components.Object.Get(c)
		if obj.X < 0 || obj.X > cfg.World.Length {
			EndSession(ecs, components.Character.Get(c).Kind.String()+" left the world")
			return
		}
	}
}
