package systems

import (
	"testing"

	"github.com/automoto/bloomrun/components"
	cfg "github.com/automoto/bloomrun/config"
	"github.com/automoto/bloomrun/input"
	"github.com/automoto/bloomrun/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveHorizontal(t *testing.T) {
	tests := []struct {
		name       string
		left       bool
		right      bool
		dt         float64
		startX     float64
		wantX      float64
		wantFacing float64
	}{
		{name: "one second right", right: true, dt: 1, startX: 0, wantX: 200, wantFacing: cfg.DirectionRight},
		{name: "half second left", left: true, dt: 0.5, startX: 300, wantX: 200, wantFacing: cfg.DirectionLeft},
		{name: "both held cancel, left faces", left: true, right: true, dt: 1, startX: 300, wantX: 300, wantFacing: cfg.DirectionLeft},
		{name: "zero delta", right: true, dt: 0, startX: 10, wantX: 10, wantFacing: cfg.DirectionRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := &components.ObjectData{Object: resolv.NewObject(tt.startX, 0, 24, 40)}
			ch := &components.CharacterData{Config: &cfg.Player, MoveLeft: tt.left, MoveRight: tt.right}
			moveHorizontal(obj, ch, tt.dt)
			assert.Equal(t, tt.wantX, obj.X)
			assert.Equal(t, tt.wantFacing, ch.Facing)
		})
	}
}

func TestPlayerMovesSpeedPixelsPerSecond(t *testing.T) {
	// The first tick has no elapsed time, so one second takes 61 ticks.
	ticks := cfg.World.TickRate + 1
	f := newFixture(t, input.NewScripted(input.Hold(input.Intents{MoveRight: true}, ticks)...))
	player := f.player()
	startX := components.Object.Get(player).X

	for i := 0; i < ticks; i++ {
		UpdateClock(f.ecs)
		UpdateInput(f.ecs)
		UpdateCharacters(f.ecs)
	}

	assert.InDelta(t, startX+cfg.Player.Speed, components.Object.Get(player).X, 0.01)
	assert.True(t, components.Character.Get(player).Moving)
}

func TestUpdateCharactersClampsAtWorldStart(t *testing.T) {
	f := newFixture(t, input.NewScripted(input.Hold(input.Intents{MoveLeft: true}, 2)...))
	player := f.player()
	companion := f.companion()
	components.Object.Get(player).X = 1
	components.Object.Get(companion).X = -5

	for i := 0; i < 2; i++ {
		UpdateClock(f.ecs)
		UpdateInput(f.ecs)
		UpdateCharacters(f.ecs)
	}

	assert.Zero(t, components.Object.Get(player).X)
	assert.Equal(t, cfg.DirectionLeft, components.Character.Get(player).Facing)
	assert.Zero(t, components.Object.Get(companion).X)
}

func TestUpdateClockFirstTickHasNoDelta(t *testing.T) {
	f := newFixture(t, nil)

	UpdateClock(f.ecs)
	assert.Zero(t, f.session().Delta)

	UpdateClock(f.ecs)
	assert.InDelta(t, 1.0/float64(cfg.World.TickRate), f.session().Delta, 1e-9)
}

func TestResolveKinematicsLandsOnPlatform(t *testing.T) {
	f := newFixture(t, nil)
	plat := factory.CreatePlatform(f.ecs, 100, 200, 100)
	player := f.player()
	obj := place(player, 120, 197)
	physics := airborne(player, 4)

	ResolveKinematics(obj, physics, platformsInOrder(f.ecs.World))

	platObj := components.Object.Get(plat)
	assert.True(t, physics.OnPlatform)
	assert.False(t, physics.OnGround)
	assert.False(t, physics.Jumping)
	assert.Zero(t, physics.SpeedY)
	assert.Same(t, platObj.Object, physics.Platform)
	// Snapped to the top, then carried by this step's drift.
	assert.Equal(t, platObj.Y+cfg.Platform.Speed, obj.Bottom())
}

func TestResolveKinematicsMissesPlatformWhenRising(t *testing.T) {
	f := newFixture(t, nil)
	factory.CreatePlatform(f.ecs, 100, 200, 100)
	player := f.player()
	obj := place(player, 120, 202)
	physics := airborne(player, -6)

	ResolveKinematics(obj, physics, platformsInOrder(f.ecs.World))

	assert.False(t, physics.OnPlatform)
	assert.Equal(t, -5.5, physics.SpeedY)
	assert.Equal(t, 196.5, obj.Bottom())
}

func TestResolveKinematicsGroundWins(t *testing.T) {
	f := newFixture(t, nil)
	player := f.player()
	obj := place(player, 500, cfg.Physics.GroundY-2)
	physics := airborne(player, 5)
	physics.Jumping = true

	ResolveKinematics(obj, physics, platformsInOrder(f.ecs.World))

	assert.True(t, physics.OnGround)
	assert.False(t, physics.OnPlatform)
	assert.False(t, physics.Jumping)
	assert.Zero(t, physics.SpeedY)
	assert.Equal(t, cfg.Physics.GroundY, obj.Bottom())
}

func TestResolveKinematicsFallCapped(t *testing.T) {
	f := newFixture(t, nil)
	player := f.player()
	obj := place(player, 500, 100)
	physics := airborne(player, cfg.Physics.MaxFallSpeed)

	ResolveKinematics(obj, physics, nil)

	assert.Equal(t, cfg.Physics.MaxFallSpeed, physics.SpeedY)
	assert.Equal(t, 100+cfg.Physics.MaxFallSpeed, obj.Bottom())
}

func TestWalkingOffPlatformDropsSupport(t *testing.T) {
	f := newFixture(t, nil)
	plat := factory.CreatePlatform(f.ecs, 100, 200, 100)
	player := f.player()
	obj := place(player, 250, 200)
	physics := components.Physics.Get(player)
	physics.OnGround = false
	physics.OnPlatform = true
	physics.Platform = components.Object.Get(plat).Object

	ResolveKinematics(obj, physics, platformsInOrder(f.ecs.World))

	assert.False(t, physics.OnPlatform)
	assert.Nil(t, physics.Platform)
	assert.Equal(t, cfg.Physics.Gravity, physics.SpeedY)
}

func TestRiderFollowsPlatform(t *testing.T) {
	f := newFixture(t, nil)
	plat := factory.CreatePlatform(f.ecs, 100, 200, 100)
	player := f.player()
	obj := place(player, 120, 200)
	physics := components.Physics.Get(player)
	physics.OnGround = false
	physics.OnPlatform = true
	platObj := components.Object.Get(plat)
	physics.Platform = platObj.Object

	for i := 0; i < 10; i++ {
		UpdatePlatforms(f.ecs)
		ResolveKinematics(obj, physics, platformsInOrder(f.ecs.World))
		require.True(t, physics.OnPlatform)
		assert.InDelta(t, platObj.Y+cfg.Platform.Speed, obj.Bottom(), 1e-9)
	}
}

func TestTryJump(t *testing.T) {
	ch := &components.CharacterData{JumpRequested: true}
	physics := &components.PhysicsData{}

	assert.False(t, tryJump(ch, physics), "airborne")
	assert.True(t, ch.JumpRequested, "request stays latched")

	physics.OnGround = true
	assert.True(t, tryJump(ch, physics))
	assert.Equal(t, cfg.Physics.JumpImpulse, physics.SpeedY)
	assert.True(t, physics.Jumping)
	assert.False(t, physics.OnGround)
	assert.False(t, ch.JumpRequested)

	assert.False(t, tryJump(ch, &components.PhysicsData{OnPlatform: true}), "nothing requested")
}

func TestJumpFromPlatformClearsSupport(t *testing.T) {
	ch := &components.CharacterData{JumpRequested: true}
	physics := &components.PhysicsData{OnPlatform: true, Platform: resolv.NewObject(0, 0, 10, 10)}

	require.True(t, tryJump(ch, physics))
	assert.False(t, physics.OnPlatform)
	assert.Nil(t, physics.Platform)
}

func TestAdvancePlatformStaysWithinRange(t *testing.T) {
	f := newFixture(t, nil)
	plat := factory.CreatePlatform(f.ecs, 0, 200, 80)
	obj := components.Object.Get(plat)
	p := components.Platform.Get(plat)
	tw := components.Tween.Get(plat)

	steps := int(cfg.Platform.Range / cfg.Platform.Speed)
	for i := 0; i < steps; i++ {
		require.Equal(t, 1.0, p.Direction, "step %d", i)
		advancePlatform(obj, p, tw)
	}
	assert.Equal(t, 200+cfg.Platform.Range, obj.Y)
	assert.Equal(t, -1.0, p.Direction)

	for i := 0; i < steps*8; i++ {
		before := obj.Y
		heading := p.Direction
		advancePlatform(obj, p, tw)
		assert.Equal(t, heading*cfg.Platform.Speed, obj.Y-before, "step %d moves along its heading", i)
		assert.GreaterOrEqual(t, obj.Y, 200-cfg.Platform.Range)
		assert.LessOrEqual(t, obj.Y, 200+cfg.Platform.Range)
	}
}

func TestAdvancePlatformCycleReturnsToOrigin(t *testing.T) {
	f := newFixture(t, nil)
	plat := factory.CreatePlatform(f.ecs, 0, 200, 80)
	obj := components.Object.Get(plat)
	p := components.Platform.Get(plat)
	tw := components.Tween.Get(plat)

	steps := int(cfg.Platform.Range / cfg.Platform.Speed)
	for i := 0; i < steps*3; i++ {
		advancePlatform(obj, p, tw)
	}
	assert.Equal(t, 200-cfg.Platform.Range, obj.Y)
	assert.Equal(t, 1.0, p.Direction)

	for i := 0; i < steps; i++ {
		advancePlatform(obj, p, tw)
	}
	assert.Equal(t, 200.0, obj.Y)
	assert.Equal(t, 1.0, p.Direction)

	advancePlatform(obj, p, tw)
	assert.Equal(t, 200+cfg.Platform.Speed, obj.Y, "next cycle starts")
}

func TestAdvanceAnimation(t *testing.T) {
	ch := &components.CharacterData{Moving: true}
	for i := 0; i < cfg.Animation.TicksPerFrame*cfg.Animation.FrameCount; i++ {
		advanceAnimation(ch)
	}
	assert.Zero(t, ch.Frame, "cycle wraps")

	advanceAnimation(ch)
	ch.Frame = 2
	ch.Moving = false
	advanceAnimation(ch)
	assert.Zero(t, ch.Frame)
	assert.Zero(t, ch.FrameTimer)
}

func TestShootSpawnsProjectile(t *testing.T) {
	f := newFixture(t, input.NewScripted(input.Intents{Shoot: true}))
	player := f.player()

	UpdateClock(f.ecs)
	UpdateInput(f.ecs)
	UpdateCharacters(f.ecs)
	UpdateAudio(f.ecs)

	assert.Equal(t, 1, f.count(components.Projectile))
	assert.False(t, components.Character.Get(player).ShootRequested)
	assert.Equal(t, 1, f.sink.count(cfg.SoundShoot))
}

func TestUpdateProjectilesPrunesOutsideWorld(t *testing.T) {
	f := newFixture(t, nil)
	player := f.player()
	keep := factory.CreateProjectile(f.ecs, player)
	gone := factory.CreateProjectile(f.ecs, player)
	components.Object.Get(gone).X = cfg.World.Length - 1

	UpdateProjectiles(f.ecs)

	assert.Equal(t, 1, f.count(components.Projectile))
	assert.True(t, keep.Valid())
	assert.False(t, gone.Valid())
}
