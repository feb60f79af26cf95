package components

import "github.com/yohamta/donburi"

type PlatformData struct {
	Seq       int
	OriginalY float64

	// Direction is the heading of the next step: +1 moves down, -1 moves up.
	// It flips on the tick the platform reaches either end of its range.
	Direction float64
}

var Platform = donburi.NewComponentType[PlatformData]()
