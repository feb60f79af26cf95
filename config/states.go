package config

import "github.com/yohamta/donburi/ecs"

// Default is the only render layer.
const Default ecs.LayerID = 0

// SessionState is the world/session state machine.
type SessionState int

const (
	SessionRunning SessionState = iota
	SessionGameOver
)

func (s SessionState) String() string {
	switch s {
	case SessionRunning:
		return "running"
	case SessionGameOver:
		return "game_over"
	}
	return "unknown"
}

// CompanionMode is the companion's decision for the current tick.
type CompanionMode int

const (
	CompanionIdle CompanionMode = iota
	CompanionSeekPickup
	CompanionFollowLeader
)

func (m CompanionMode) String() string {
	switch m {
	case CompanionIdle:
		return "idle"
	case CompanionSeekPickup:
		return "seek_pickup"
	case CompanionFollowLeader:
		return "follow_leader"
	}
	return "unknown"
}

// TargetPolicy selects which character an enemy tracks.
type TargetPolicy int

const (
	TargetPlayer TargetPolicy = iota
	TargetRandom
)
