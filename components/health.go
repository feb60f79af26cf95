package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current float64
	Max     float64
}

// Add applies a signed change and clamps the result into [0, Max].
func (h *HealthData) Add(delta float64) {
	h.Current += delta
	if h.Current < 0 {
		h.Current = 0
	}
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

// Depleted reports whether health has reached zero.
func (h *HealthData) Depleted() bool {
	return h.Current <= 0
}

var Health = donburi.NewComponentType[HealthData]()
