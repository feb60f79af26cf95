package factory

import (
	"github.com/automoto/bloomrun/archetypes"
	"github.com/automoto/bloomrun/components"
	cfg "github.com/automoto/bloomrun/config"
	"github.com/automoto/bloomrun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	initCharacter(ecs, player, components.KindPlayer, &cfg.Player, tags.ResolvPlayer)
	return player
}

func CreateCompanion(ecs *ecs.ECS) *donburi.Entry {
	companion := archetypes.Companion.Spawn(ecs)
	initCharacter(ecs, companion, components.KindCompanion, &cfg.Companion, tags.ResolvCompanion)
	return companion
}

// initCharacter places a character standing on the ground at its start x.
func initCharacter(ecs *ecs.ECS, e *donburi.Entry, kind components.CharacterKind, c *cfg.CharacterConfig, tag string) {
	newObject(ecs, e, c.StartX, cfg.Physics.GroundY-c.Height, c.Width, c.Height, tags.ResolvCharacter, tag)

	components.Character.SetValue(e, components.CharacterData{
		Kind:   kind,
		Config: c,
		Facing: cfg.DirectionRight,
	})
	components.Physics.SetValue(e, components.PhysicsData{OnGround: true})
	components.Health.SetValue(e, components.HealthData{
		Current: c.MaxHealth,
		Max:     c.MaxHealth,
	})
	components.Flash.SetValue(e, components.FlashData{})
}
