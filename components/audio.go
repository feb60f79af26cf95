package components

import (
	cfg "github.com/automoto/bloomrun/config"
	"github.com/yohamta/donburi"
)

// SoundSink plays one-shot cues. Errors are dropped by the caller.
type SoundSink interface {
	Play(id cfg.SoundID) error
}

// AudioData stores the session's cue queue (singleton component)
type AudioData struct {
	Sink       SoundSink
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
