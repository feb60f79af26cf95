package factory

import (
	"github.com/automoto/bloomrun/archetypes"
	"github.com/automoto/bloomrun/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// addToSpace registers obj with the session's collision space, if one exists.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if entry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(entry).Add(obj)
	}
}

// newObject builds a tagged resolv object pointing back at its entry.
func newObject(ecs *ecs.ECS, entry *donburi.Entry, x, y, w, h float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, tags...)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)
	return obj
}
