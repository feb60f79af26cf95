package assets

import (
	"encoding/binary"
	"fmt"
	"math"

	cfg "github.com/automoto/bloomrun/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// ToneBank plays synthesized cues. Each cue is rendered once to 16-bit
// little-endian stereo PCM and cached.
type ToneBank struct {
	sfxCache map[cfg.SoundID][]byte
	context  *audio.Context
	volume   float64
}

// NewToneBank renders every configured tone for the given context
func NewToneBank(ctx *audio.Context, volume float64) *ToneBank {
	b := &ToneBank{
		sfxCache: make(map[cfg.SoundID][]byte, len(cfg.Sound.Tones)),
		context:  ctx,
		volume:   volume,
	}
	for id, tone := range cfg.Sound.Tones {
		b.sfxCache[id] = SynthesizeTone(tone, ctx.SampleRate())
	}
	return b
}

// Play starts a one-shot player for the cue.
func (b *ToneBank) Play(id cfg.SoundID) error {
	data, ok := b.sfxCache[id]
	if !ok {
		return fmt.Errorf("no tone for sound %d", id)
	}
	volume := b.volume
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		volume *= mult
	}
	player := b.context.NewPlayerFromBytes(data)
	player.SetVolume(volume)
	player.Play()
	return nil
}

// SynthesizeTone renders a linear frequency sweep with a short linear fade-out.
func SynthesizeTone(tone cfg.Tone, sampleRate int) []byte {
	n := int(tone.Seconds * float64(sampleRate))
	out := make([]byte, n*4)
	phase := 0.0
	fade := n / 5
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := tone.StartHz + (tone.EndHz-tone.StartHz)*t
		phase += 2 * math.Pi * freq / float64(sampleRate)

		amp := 0.5
		if rest := n - i; rest < fade {
			amp *= float64(rest) / float64(fade)
		}
		v := int16(math.Sin(phase) * amp * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(v))
	}
	return out
}

// CueRecorder is a silent sink that counts cues, for headless runs.
type CueRecorder struct {
	Counts map[cfg.SoundID]int
}

func NewCueRecorder() *CueRecorder {
	return &CueRecorder{Counts: make(map[cfg.SoundID]int)}
}

func (r *CueRecorder) Play(id cfg.SoundID) error {
	r.Counts[id]++
	return nil
}
