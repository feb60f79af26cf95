package factory

import (
	"github.com/automoto/bloomrun/archetypes"
	"github.com/automoto/bloomrun/components"
	cfg "github.com/automoto/bloomrun/config"
	"github.com/automoto/bloomrun/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateFlower(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	flower := archetypes.Flower.Spawn(ecs)
	newObject(ecs, flower, x, y, cfg.Flower.Width, cfg.Flower.Height, tags.ResolvFlower)
	components.Flower.SetValue(flower, components.FlowerData{})

	// The bob is a cosmetic up-and-back sequence, looping forever.
	bob := float32(cfg.Flower.BobHeight)
	half := float32(cfg.Flower.BobSeconds / 2)
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, -bob, half, ease.InOutQuad),
		gween.New(-bob, 0, half, ease.InOutQuad),
	)
	tw.SetLoop(-1)
	components.Tween.Set(flower, tw)
	return flower
}
