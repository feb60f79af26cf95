package systems

import (
	"cmp"
	"slices"

	"github.com/automoto/bloomrun/components"
	"github.com/automoto/bloomrun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

type platformRef struct {
	entry *donburi.Entry
	obj   *components.ObjectData
	data  *components.PlatformData
}

type enemyRef struct {
	entry *donburi.Entry
	obj   *components.ObjectData
	data  *components.EnemyData
}

// platformsInOrder returns the platform registry in generation order.
func platformsInOrder(w donburi.World) []platformRef {
	var out []platformRef
	components.Platform.Each(w, func(e *donburi.Entry) {
		out = append(out, platformRef{entry: e, obj: components.Object.Get(e), data: components.Platform.Get(e)})
	})
	slices.SortFunc(out, func(a, b platformRef) int { return cmp.Compare(a.data.Seq, b.data.Seq) })
	return out
}

// liveEnemies returns enemies not yet marked defeated, in spawn order.
func liveEnemies(w donburi.World) []enemyRef {
	var out []enemyRef
	components.Enemy.Each(w, func(e *donburi.Entry) {
		data := components.Enemy.Get(e)
		if data.Defeated {
			return
		}
		out = append(out, enemyRef{entry: e, obj: components.Object.Get(e), data: data})
	})
	slices.SortFunc(out, func(a, b enemyRef) int { return cmp.Compare(a.data.Seq, b.data.Seq) })
	return out
}

// characters returns the player then the companion, skipping any that are absent.
func characters(w donburi.World) []*donburi.Entry {
	out := make([]*donburi.Entry, 0, 2)
	if p, ok := tags.Player.First(w); ok {
		out = append(out, p)
	}
	if c, ok := tags.Companion.First(w); ok {
		out = append(out, c)
	}
	return out
}

func countOf(w donburi.World, c donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(c)).Count(w)
}

// destroyEntity removes an entity from the collision space and the world.
func destroyEntity(ecs *ecs.ECS, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		obj := components.Object.Get(entry)
		if obj != nil && obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	ecs.World.Remove(entry.Entity())
}
