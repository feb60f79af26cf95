package archetypes

import (
	"github.com/automoto/bloomrun/components"
	cfg "github.com/automoto/bloomrun/config"
	"github.com/automoto/bloomrun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Character,
		components.Object,
		components.Physics,
		components.Health,
		components.Flash,
	)
	Companion = newArchetype(
		tags.Companion,
		components.Character,
		components.Object,
		components.Physics,
		components.Health,
		components.Flash,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Health,
		components.Flash,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Platform,
		components.Object,
		components.Tween,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
	)
	Flower = newArchetype(
		tags.Flower,
		components.Flower,
		components.Object,
		components.Tween,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Session = newArchetype(
		components.Session,
	)
	Input = newArchetype(
		components.Input,
	)
	Audio = newArchetype(
		components.Audio,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
