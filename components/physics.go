package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// PhysicsData is the kinematic state shared by the player and the companion.
type PhysicsData struct {
	SpeedY     float64
	OnGround   bool
	OnPlatform bool
	Jumping    bool

	// Platform is the supporting platform while OnPlatform is set. It is a
	// reference only; the platform entry is reached through Platform.Data.
	Platform *resolv.Object
}

// Airborne reports whether gravity applies this tick.
func (p *PhysicsData) Airborne() bool {
	return !p.OnGround && !p.OnPlatform
}

// DropSupport clears ground and platform contact.
func (p *PhysicsData) DropSupport() {
	p.OnGround = false
	p.OnPlatform = false
	p.Platform = nil
}

var Physics = donburi.NewComponentType[PhysicsData]()
