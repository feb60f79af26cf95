package systems

import (
	"github.com/automoto/bloomrun/components"
	cfg "github.com/automoto/bloomrun/config"
	"github.com/yohamta/donburi/ecs"
)

// PlaySFX queues a sound cue to be played at the end of the tick
func PlaySFX(ecs *ecs.ECS, sound cfg.SoundID) {
	entry, ok := components.Audio.First(ecs.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// UpdateAudio flushes queued cues to the sink. Sink failures never reach the simulation.
func UpdateAudio(ecs *ecs.ECS) {
	entry, ok := components.Audio.First(ecs.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if audioData.Sink != nil {
		for _, soundID := range audioData.PendingSFX {
			if err := audioData.Sink.Play(soundID); err != nil {
				logger.Debug("sound cue dropped", "sound", soundID, "err", err)
			}
		}
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}
