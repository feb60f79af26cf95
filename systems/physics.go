package systems

import (
	"github.com/automoto/bloomrun/components"
	cfg "github.com/automoto/bloomrun/config"
	"github.com/automoto/bloomrun/gamemath"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateKinematics resolves gravity, platform landings and ground contact for
// both characters against this tick's platform positions.
func UpdateKinematics(ecs *ecs.ECS) {
	platforms := platformsInOrder(ecs.World)
	for _, e := range characters(ecs.World) {
		ResolveKinematics(components.Object.Get(e), components.Physics.Get(e), platforms)
	}
}

// ResolveKinematics advances one body by one step.
//
// Ground contact is evaluated after the platform scan and wins: a ground snap
// clears platform support, so OnGround and OnPlatform are never both set.
func ResolveKinematics(obj *components.ObjectData, physics *components.PhysicsData, platforms []platformRef) {
	// Keep riders glued to their platform; walking off the edge drops support.
	if physics.OnPlatform {
		if plat := supportOf(physics); plat != nil && gamemath.Overlap1D(obj.X, obj.W, plat.X, plat.W) {
			obj.Y = plat.Y - obj.H
		} else {
			physics.OnPlatform = false
			physics.Platform = nil
		}
	}

	if physics.Airborne() {
		physics.SpeedY = gamemath.ApplyGravity(physics.SpeedY, cfg.Physics.Gravity, cfg.Physics.MaxFallSpeed)
	}
	obj.Y += physics.SpeedY

	if physics.SpeedY > 0 {
		for _, p := range platforms {
			if !gamemath.LandingAligned(obj.X, obj.W, obj.Bottom(), p.obj.X, p.obj.W, p.obj.Y, cfg.Physics.LandingTolerance, physics.SpeedY) {
				continue
			}
			obj.Y = p.obj.Y - obj.H
			physics.SpeedY = 0
			physics.OnPlatform = true
			physics.Jumping = false
			physics.Platform = p.obj.Object
			break
		}
	}

	if obj.Bottom() >= cfg.Physics.GroundY {
		obj.Y = cfg.Physics.GroundY - obj.H
		physics.SpeedY = 0
		physics.OnGround = true
		physics.Jumping = false
		physics.OnPlatform = false
		physics.Platform = nil
	} else {
		physics.OnGround = false
	}

	// Ride the platform's drift for this step.
	if physics.OnPlatform {
		if entry := platformEntry(physics.Platform); entry != nil {
			obj.Y += components.Platform.Get(entry).Direction * cfg.Platform.Speed
		}
	}
}

func supportOf(physics *components.PhysicsData) *resolv.Object {
	if platformEntry(physics.Platform) == nil {
		return nil
	}
	return physics.Platform
}

// platformEntry resolves the live platform entry behind a resolv object.
func platformEntry(obj *resolv.Object) *donburi.Entry {
	if obj == nil {
		return nil
	}
	entry, ok := obj.Data.(*donburi.Entry)
	if !ok || entry == nil || !entry.Valid() || !entry.HasComponent(components.Platform) {
		return nil
	}
	return entry
}

// UpdatePlatforms oscillates every platform around its original height by one
// tick of its tween.
func UpdatePlatforms(ecs *ecs.ECS) {
	components.Platform.Each(ecs.World, func(e *donburi.Entry) {
		advancePlatform(components.Object.Get(e), components.Platform.Get(e), components.Tween.Get(e))
	})
}

// advancePlatform steps the oscillation by one tick and flips direction
// exactly at the range boundary.
func advancePlatform(obj *components.ObjectData, p *components.PlatformData, tw *gween.Sequence) {
	offset, _, _ := tw.Update(1)

	y := p.OriginalY + float64(offset)
	dy := y - obj.Y
	obj.Y = y

	switch {
	case float64(offset) >= cfg.Platform.Range:
		p.Direction = -1
	case float64(offset) <= -cfg.Platform.Range:
		p.Direction = 1
	case dy > 0:
		p.Direction = 1
	case dy < 0:
		p.Direction = -1
	}
}
