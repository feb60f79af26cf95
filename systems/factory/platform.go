package factory

import (
	"github.com/automoto/bloomrun/archetypes"
	"github.com/automoto/bloomrun/components"
	cfg "github.com/automoto/bloomrun/config"
	"github.com/automoto/bloomrun/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlatform(ecs *ecs.ECS, x, y, width float64) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	newObject(ecs, platform, x, y, width, cfg.Platform.Height, tags.ResolvPlatform)
	components.Platform.SetValue(platform, components.PlatformData{
		Seq:       nextSeq(ecs),
		OriginalY: y,
		Direction: 1,
	})
	components.Tween.Set(platform, newOscillation(cfg.Platform.Range, cfg.Platform.Speed))
	return platform
}

// newOscillation tweens the offset from the original height down to +r, up to
// -r and back to 0, looping forever. Time is measured in ticks, so a platform
// moving speed pixels per tick spends r/speed ticks on each half-leg.
func newOscillation(r, speed float64) *gween.Sequence {
	ticks := float32(1)
	if speed > 0 && r/speed >= 1 {
		ticks = float32(r / speed)
	}
	amp := float32(r)
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, amp, ticks, ease.Linear),
		gween.New(amp, -amp, ticks*2, ease.Linear),
		gween.New(-amp, 0, ticks, ease.Linear),
	)
	tw.SetLoop(-1)
	return tw
}

// GeneratePlatforms lays platforms along the whole world at fixed spacing
// with random heights and widths.
func GeneratePlatforms(ecs *ecs.ECS, rng components.RandSource) int {
	p := cfg.Platform
	count := 0
	for x := p.StartX; x < cfg.World.Length; x += p.Spacing {
		y := p.MinY + rng.Float64()*(p.MaxY-p.MinY)
		w := p.MinWidth + rng.Float64()*(p.MaxWidth-p.MinWidth)
		CreatePlatform(ecs, x, y, w)
		count++
	}
	return count
}
