package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundShoot
	SoundStomp
	SoundHit
	SoundDefeat
	SoundCollect
	SoundGameOver
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// Tone is a synthesized cue: a sine sweep from StartHz to EndHz.
type Tone struct {
	StartHz float64
	EndHz   float64
	Seconds float64
}

// SoundConfig maps sound IDs to their synthesized tones
type SoundConfig struct {
	Tones             map[SoundID]Tone
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundJump:     {StartHz: 300, EndHz: 600, Seconds: 0.10},
			SoundShoot:    {StartHz: 900, EndHz: 700, Seconds: 0.05},
			SoundStomp:    {StartHz: 200, EndHz: 90, Seconds: 0.12},
			SoundHit:      {StartHz: 500, EndHz: 350, Seconds: 0.06},
			SoundDefeat:   {StartHz: 400, EndHz: 80, Seconds: 0.25},
			SoundCollect:  {StartHz: 700, EndHz: 1200, Seconds: 0.15},
			SoundGameOver: {StartHz: 300, EndHz: 60, Seconds: 0.8},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundShoot: 0.5,
			SoundHit:   0.8,
		},
	}
}
