package systems

import (
	"github.com/automoto/bloomrun/components"
	cfg "github.com/automoto/bloomrun/config"
	"github.com/automoto/bloomrun/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCharacters runs the character controller for the player and the
// companion: horizontal motion, jumping, shooting and the walk cycle.
func UpdateCharacters(ecs *ecs.ECS) {
	session := GetSession(ecs)
	in := GetInput(ecs).Current

	for _, e := range characters(ecs.World) {
		ch := components.Character.Get(e)
		obj := components.Object.Get(e)

		if ch.Kind == components.KindPlayer {
			ch.MoveLeft = in.MoveLeft
			ch.MoveRight = in.MoveRight
			if in.Jump {
				ch.JumpRequested = true
			}
			if in.Shoot {
				ch.ShootRequested = true
			}
			moveHorizontal(obj, ch, session.Delta)
			ch.Moving = ch.MoveLeft || ch.MoveRight
		}
		// Both characters stop at the world's start.
		if obj.X < 0 {
			obj.X = 0
		}

		if tryJump(ch, components.Physics.Get(e)) {
			PlaySFX(ecs, cfg.SoundJump)
		}
		if ch.ShootRequested {
			shoot(ecs, e, ch)
		}
		advanceAnimation(ch)
	}
}

// moveHorizontal integrates the direction flags over dt seconds. Right is
// applied before left, so left's facing wins when both are held.
func moveHorizontal(obj *components.ObjectData, ch *components.CharacterData, dt float64) {
	step := ch.Config.Speed * dt
	if ch.MoveRight {
		obj.X += step
		ch.Facing = cfg.DirectionRight
	}
	if ch.MoveLeft {
		obj.X -= step
		ch.Facing = cfg.DirectionLeft
	}
}

// tryJump consumes a pending jump request if the character is supported.
func tryJump(ch *components.CharacterData, physics *components.PhysicsData) bool {
	if !ch.JumpRequested || physics.Airborne() {
		return false
	}
	physics.SpeedY = cfg.Physics.JumpImpulse
	physics.Jumping = true
	physics.DropSupport()
	ch.JumpRequested = false
	return true
}

func shoot(ecs *ecs.ECS, e *donburi.Entry, ch *components.CharacterData) {
	ch.ShootRequested = false
	factory.CreateProjectile(ecs, e)
	PlaySFX(ecs, cfg.SoundShoot)
}

// advanceAnimation steps the walk cycle while moving and rests on frame 0 otherwise.
func advanceAnimation(ch *components.CharacterData) {
	if !ch.Moving {
		ch.Frame = 0
		ch.FrameTimer = 0
		return
	}
	ch.FrameTimer++
	if ch.FrameTimer >= cfg.Animation.TicksPerFrame {
		ch.FrameTimer = 0
		ch.Frame = (ch.Frame + 1) % cfg.Animation.FrameCount
	}
}

// projectilesOf returns the projectiles owned by a character.
func projectilesOf(w donburi.World, owner donburi.Entity) []*donburi.Entry {
	var out []*donburi.Entry
	components.Projectile.Each(w, func(e *donburi.Entry) {
		if components.Projectile.Get(e).Owner == owner {
			out = append(out, e)
		}
	})
	return out
}
