package systems

import (
	"github.com/automoto/bloomrun/components"
	cfg "github.com/automoto/bloomrun/config"
	"github.com/yohamta/donburi/ecs"
)

// GetSession returns the session singleton. Every world built by
// factory.CreateWorld has one.
func GetSession(ecs *ecs.ECS) *components.SessionData {
	return components.Session.Get(components.Session.MustFirst(ecs.World))
}

// UpdateClock measures the seconds elapsed since the previous tick. The first
// tick of a session has zero elapsed time.
func UpdateClock(ecs *ecs.ECS) {
	session := GetSession(ecs)
	now := session.Now()
	if session.LastTick.IsZero() {
		session.Delta = 0
	} else {
		session.Delta = now.Sub(session.LastTick).Seconds()
	}
	session.LastTick = now
}

// UpdateSession counts simulated ticks. While the session is over the tick
// counter stands still, and the only thing honoured is the restart trigger,
// which asks the scene for a reset.
func UpdateSession(ecs *ecs.ECS) {
	session := GetSession(ecs)
	if session.State == cfg.SessionRunning {
		session.Tick++
		return
	}
	if GetInput(ecs).Current.Restart && !session.ResetRequested {
		session.ResetRequested = true
		logger.Info("restart requested", "tick", session.Tick)
	}
}

// IsRunning reports whether the session is still simulating.
func IsRunning(ecs *ecs.ECS) bool {
	return GetSession(ecs).State == cfg.SessionRunning
}

// WithRunningCheck wraps a system so it becomes a no-op once the session is over.
func WithRunningCheck(system ecs.System) ecs.System {
	return func(ecs *ecs.ECS) {
		if !IsRunning(ecs) {
			return
		}
		system(ecs)
	}
}
