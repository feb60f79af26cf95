package systems

import (
	"math"

	"github.com/automoto/bloomrun/components"
	cfg "github.com/automoto/bloomrun/config"
	"github.com/automoto/bloomrun/gamemath"
	"github.com/automoto/bloomrun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// companionView is what a companion policy may look at this tick.
type companionView struct {
	self   *components.ObjectData
	ch     *components.CharacterData
	leader *components.ObjectData
	pickup *components.ObjectData // nearest flower, nil if none
}

type companionPolicy func(v companionView)

var companionPolicies = map[cfg.CompanionMode]companionPolicy{
	cfg.CompanionSeekPickup:   seekPickup,
	cfg.CompanionFollowLeader: followLeader,
	cfg.CompanionIdle:         idle,
}

// UpdateCompanion picks the companion's mode, runs its policy, then rolls the
// independent jump and shoot events.
// Must run BEFORE UpdateCharacters so the rolled requests are acted on this tick.
func UpdateCompanion(ecs *ecs.ECS) {
	entry, ok := tags.Companion.First(ecs.World)
	if !ok {
		return
	}
	leaderEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}

	v := companionView{
		self:   components.Object.Get(entry),
		ch:     components.Character.Get(entry),
		leader: components.Object.Get(leaderEntry),
	}
	v.pickup = nearestFlower(ecs.World, v.self)

	v.ch.Mode = chooseCompanionMode(v)
	companionPolicies[v.ch.Mode](v)

	rng := GetSession(ecs).Rand
	if rng.Float64() < cfg.CompanionAI.JumpChance {
		v.ch.JumpRequested = true
	}
	if rng.Float64() < cfg.CompanionAI.ShootChance {
		v.ch.ShootRequested = true
	}
}

func chooseCompanionMode(v companionView) cfg.CompanionMode {
	if v.pickup != nil {
		return cfg.CompanionSeekPickup
	}
	if math.Abs(v.leader.X-v.self.X) > cfg.CompanionAI.FollowDistance {
		return cfg.CompanionFollowLeader
	}
	return cfg.CompanionIdle
}

// seekPickup steps each axis independently, so diagonal approach is faster
// than axis-aligned approach.
func seekPickup(v companionView) {
	speed := v.ch.Config.Speed
	face(v.ch, v.pickup.X-v.self.X)
	v.self.X = gamemath.StepToward(v.self.X, v.pickup.X, speed)
	v.self.Y = gamemath.StepToward(v.self.Y, v.pickup.Y, speed)
	v.ch.Moving = true
}

func followLeader(v companionView) {
	face(v.ch, v.leader.X-v.self.X)
	v.self.X = gamemath.StepToward(v.self.X, v.leader.X, v.ch.Config.Speed)
	v.ch.Moving = true
}

func idle(v companionView) {
	v.ch.Moving = false
}

func face(ch *components.CharacterData, dx float64) {
	if dx > 0 {
		ch.Facing = cfg.DirectionRight
	} else if dx < 0 {
		ch.Facing = cfg.DirectionLeft
	}
}

// nearestFlower returns the Euclidean-nearest flower, or nil.
func nearestFlower(w donburi.World, from *components.ObjectData) *components.ObjectData {
	var best *components.ObjectData
	bestDist := math.Inf(1)
	components.Flower.Each(w, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if d := gamemath.Distance(from.X, from.Y, obj.X, obj.Y); d < bestDist {
			best, bestDist = obj, d
		}
	})
	return best
}
