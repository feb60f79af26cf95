package systems

import (
	"github.com/automoto/bloomrun/components"
	cfg "github.com/automoto/bloomrun/config"
	"github.com/automoto/bloomrun/tags"
	"github.com/yohamta/donburi/ecs"
)

// Summary is a snapshot of a session for logs and reports.
type Summary struct {
	Tick           int
	State          cfg.SessionState
	Reason         string
	PlayerX        float64
	PlayerHealth   float64
	PlayerScore    int
	CompanionScore int
	Enemies        int
	Flowers        int
	Projectiles    int
}

func Summarize(ecs *ecs.ECS) Summary {
	session := GetSession(ecs)
	s := Summary{
		Tick:        session.Tick,
		State:       session.State,
		Reason:      session.Reason,
		Enemies:     countOf(ecs.World, components.Enemy),
		Flowers:     countOf(ecs.World, components.Flower),
		Projectiles: countOf(ecs.World, components.Projectile),
	}
	if p, ok := tags.Player.First(ecs.World); ok {
		s.PlayerX = components.Object.Get(p).X
		s.PlayerHealth = components.Health.Get(p).Current
		s.PlayerScore = components.Character.Get(p).Score
	}
	if c, ok := tags.Companion.First(ecs.World); ok {
		s.CompanionScore = components.Character.Get(c).Score
	}
	return s
}
