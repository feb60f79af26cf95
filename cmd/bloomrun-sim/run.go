package main

import (
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/automoto/bloomrun/assets"
	"github.com/automoto/bloomrun/config"
	"github.com/automoto/bloomrun/input"
	"github.com/automoto/bloomrun/scenes"
	"github.com/automoto/bloomrun/systems"
	"github.com/automoto/bloomrun/systems/factory"
)

var (
	flagTicks      int
	flagJumpEvery  int
	flagShootEvery int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the simulation for a number of ticks",
	Long: `Run drives the simulation with an autopilot that holds right and jumps
and shoots periodically, on a fixed 60 Hz clock. Game over restarts the
session immediately.

Examples:
  bloomrun-sim run --ticks 3600
  bloomrun-sim run --seed 42 --log-level debug`,
	RunE: func(cmd *cobra.Command, args []string) error {
		seed := flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		recorder := assets.NewCueRecorder()
		scene := scenes.NewWorldScene(factory.WorldOptions{
			Rand:  rand.New(rand.NewSource(seed)),
			Now:   fixedStepClock(config.World.TickRate),
			Input: &input.Autopilot{JumpEvery: flagJumpEvery, ShootEvery: flagShootEvery},
			Sink:  recorder,
		})

		for i := 0; i < flagTicks; i++ {
			scene.Update()
		}

		s := systems.Summarize(scene.ECS())
		systems.Logger().Info("run complete",
			"seed", seed,
			"ticks", flagTicks,
			"resets", scene.Resets(),
			"state", s.State,
			"player_x", s.PlayerX,
			"player_health", s.PlayerHealth,
			"player_score", s.PlayerScore,
			"companion_score", s.CompanionScore,
			"enemies", s.Enemies,
			"flowers", s.Flowers,
			"defeats", recorder.Counts[config.SoundDefeat],
		)
		return nil
	},
}

func init() {
	runCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Number of ticks to simulate")
	runCmd.Flags().IntVar(&flagJumpEvery, "jump-every", 45, "Autopilot jump period in ticks")
	runCmd.Flags().IntVar(&flagShootEvery, "shoot-every", 12, "Autopilot shoot period in ticks")
}

// fixedStepClock returns a clock that advances by one tick period per reading.
func fixedStepClock(rate int) func() time.Time {
	now := time.Unix(0, 0)
	step := time.Second / time.Duration(rate)
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}
