package systems

import (
	"errors"
	"testing"
	"time"

	"github.com/automoto/bloomrun/components"
	cfg "github.com/automoto/bloomrun/config"
	"github.com/automoto/bloomrun/input"
	"github.com/automoto/bloomrun/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// scriptedRand replays fixed draws. Once exhausted, Float64 returns 0.99 so
// chance rolls fail, and Intn returns 0.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0] % n
	r.ints = r.ints[1:]
	return v
}

// stepClock advances by step on every reading.
func stepClock(step time.Duration) func() time.Time {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

type recordingSink struct {
	played []cfg.SoundID
	err    error
}

func (s *recordingSink) Play(id cfg.SoundID) error {
	s.played = append(s.played, id)
	return s.err
}

func (s *recordingSink) count(id cfg.SoundID) int {
	n := 0
	for _, p := range s.played {
		if p == id {
			n++
		}
	}
	return n
}

var errSinkClosed = errors.New("sink closed")

type fixture struct {
	ecs  *ecs.ECS
	rng  *scriptedRand
	sink *recordingSink
}

// newFixture builds the session singletons and an empty collision space, but
// no platforms, characters or enemies.
func newFixture(t *testing.T, src input.Source) *fixture {
	t.Helper()
	f := &fixture{
		ecs:  ecs.NewECS(donburi.NewWorld()),
		rng:  &scriptedRand{},
		sink: &recordingSink{},
	}
	factory.CreateSession(f.ecs, f.rng, stepClock(time.Second/time.Duration(cfg.World.TickRate)))
	factory.CreateInput(f.ecs, src)
	factory.CreateAudio(f.ecs, f.sink)
	cell := cfg.World.CellSize
	factory.CreateSpace(f.ecs, int(cfg.World.Length)+cell*4, cfg.C.Height+cell*4, cell, cell)
	return f
}

func (f *fixture) player() *donburi.Entry {
	return factory.CreatePlayer(f.ecs)
}

func (f *fixture) companion() *donburi.Entry {
	return factory.CreateCompanion(f.ecs)
}

func (f *fixture) count(c donburi.IComponentType) int {
	return countOf(f.ecs.World, c)
}

func (f *fixture) session() *components.SessionData {
	return GetSession(f.ecs)
}

// place moves an entity so its bottom edge sits at bottom.
func place(e *donburi.Entry, x, bottom float64) *components.ObjectData {
	obj := components.Object.Get(e)
	obj.X = x
	obj.Y = bottom - obj.H
	return obj
}

// airborne puts a character in free fall at speedY.
func airborne(e *donburi.Entry, speedY float64) *components.PhysicsData {
	physics := components.Physics.Get(e)
	physics.DropSupport()
	physics.SpeedY = speedY
	return physics
}
