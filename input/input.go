// Package input provides the intent sources sampled once per tick.
package input

// Intents is one tick's worth of player input.
type Intents struct {
	MoveLeft  bool
	MoveRight bool
	Jump      bool
	Shoot     bool
	Restart   bool
}

// Source is sampled exactly once per tick.
type Source interface {
	Sample() Intents
}

// SourceFunc adapts a function to Source.
type SourceFunc func() Intents

func (f SourceFunc) Sample() Intents { return f() }

// None never requests anything.
var None Source = SourceFunc(func() Intents { return Intents{} })

// Scripted replays a fixed sequence of intents, then returns zero intents.
type Scripted struct {
	Frames []Intents
	next   int
}

func NewScripted(frames ...Intents) *Scripted {
	return &Scripted{Frames: frames}
}

func (s *Scripted) Sample() Intents {
	if s.next >= len(s.Frames) {
		return Intents{}
	}
	in := s.Frames[s.next]
	s.next++
	return in
}

// Hold returns n copies of in, for building scripts.
func Hold(in Intents, n int) []Intents {
	frames := make([]Intents, n)
	for i := range frames {
		frames[i] = in
	}
	return frames
}

// Autopilot runs right, jumping and shooting on fixed periods. It also
// requests a restart on every tick so a headless run continues past game over.
type Autopilot struct {
	JumpEvery  int
	ShootEvery int
	tick       int
}

func (a *Autopilot) Sample() Intents {
	a.tick++
	in := Intents{MoveRight: true, Restart: true}
	if a.JumpEvery > 0 && a.tick%a.JumpEvery == 0 {
		in.Jump = true
	}
	if a.ShootEvery > 0 && a.tick%a.ShootEvery == 0 {
		in.Shoot = true
	}
	return in
}
