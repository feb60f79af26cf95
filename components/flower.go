package components

import "github.com/yohamta/donburi"

type FlowerData struct {
	Bob float64 // Cosmetic vertical offset, applied only when drawing
}

var Flower = donburi.NewComponentType[FlowerData]()
