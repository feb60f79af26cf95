package components

import (
	"time"

	cfg "github.com/automoto/bloomrun/config"
	"github.com/yohamta/donburi"
)

// RandSource is the subset of *rand.Rand the simulation draws from.
type RandSource interface {
	Float64() float64
	Intn(n int) int
}

// SessionData is the world/session singleton. Everything injectable lives here
// so a reset can rebuild the world around the same sources.
type SessionData struct {
	State  cfg.SessionState
	Reason string
	Tick   int

	Rand RandSource
	Now  func() time.Time

	LastTick time.Time
	Delta    float64 // Seconds since the previous tick; scales horizontal input motion only

	ResetRequested bool
	NextSeq        int
}

// Seq hands out registry order numbers.
func (s *SessionData) Seq() int {
	s.NextSeq++
	return s.NextSeq
}

var Session = donburi.NewComponentType[SessionData]()
