package components

import "github.com/yohamta/donburi"

// FlashData tracks the hit flash drawn over characters and enemies.
type FlashData struct {
	Duration int // frames remaining
}

var Flash = donburi.NewComponentType[FlashData]()
