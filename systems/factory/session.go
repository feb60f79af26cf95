package factory

import (
	"time"

	"github.com/automoto/bloomrun/archetypes"
	"github.com/automoto/bloomrun/components"
	cfg "github.com/automoto/bloomrun/config"
	"github.com/automoto/bloomrun/input"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSession(ecs *ecs.ECS, rng components.RandSource, now func() time.Time) *donburi.Entry {
	if now == nil {
		now = time.Now
	}
	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, components.SessionData{
		State: cfg.SessionRunning,
		Rand:  rng,
		Now:   now,
	})
	return session
}

func CreateInput(ecs *ecs.ECS, source input.Source) *donburi.Entry {
	if source == nil {
		source = input.None
	}
	in := archetypes.Input.Spawn(ecs)
	components.Input.SetValue(in, components.InputData{Source: source})
	return in
}

func CreateAudio(ecs *ecs.ECS, sink components.SoundSink) *donburi.Entry {
	audio := archetypes.Audio.Spawn(ecs)
	components.Audio.SetValue(audio, components.AudioData{
		Sink:       sink,
		PendingSFX: make([]cfg.SoundID, 0, 8),
	})
	return audio
}

// nextSeq hands out registry order from the session, or 0 before one exists.
func nextSeq(ecs *ecs.ECS) int {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return 0
	}
	return components.Session.Get(entry).Seq()
}
