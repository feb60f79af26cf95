package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the world-space box of an entity. Collision math reads X/Y/W/H
// directly; the embedded resolv object keeps the broadphase space in sync.
type ObjectData struct {
	*resolv.Object
}

// Overlaps reports strict AABB intersection with another object.
func (o *ObjectData) Overlaps(other *ObjectData) bool {
	return o.X < other.X+other.W && o.X+o.W > other.X &&
		o.Y < other.Y+other.H && o.Y+o.H > other.Y
}

// Bottom returns the y coordinate of the lower edge.
func (o *ObjectData) Bottom() float64 {
	return o.Y + o.H
}

var Object = donburi.NewComponentType[ObjectData]()
