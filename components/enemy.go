package components

import (
	"github.com/automoto/bloomrun/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Seq    int // Registry order; the lowest live Seq always targets the player
	Facing float64

	Policy config.TargetPolicy
	Target donburi.Entity

	// Defeated enemies are skipped by later scans and removed by the defeat sweep.
	Defeated bool
}

var Enemy = donburi.NewComponentType[EnemyData]()
