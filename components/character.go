package components

import (
	cfg "github.com/automoto/bloomrun/config"
	"github.com/yohamta/donburi"
)

// CharacterKind distinguishes the two character variants.
type CharacterKind int

const (
	KindPlayer CharacterKind = iota
	KindCompanion
)

func (k CharacterKind) String() string {
	if k == KindCompanion {
		return "companion"
	}
	return "player"
}

type CharacterData struct {
	Kind   CharacterKind
	Config *cfg.CharacterConfig // Cached reference to the variant's constants
	Facing float64

	// Intents, written by input or AI before the controller runs
	MoveLeft       bool
	MoveRight      bool
	JumpRequested  bool // Latched until a jump consumes it
	ShootRequested bool

	Moving     bool
	Frame      int
	FrameTimer int
	Score      int

	// Companion only
	Mode cfg.CompanionMode
}

var Character = donburi.NewComponentType[CharacterData]()
