// bloomrun-sim runs the simulation headless with a scripted autopilot.
//
// Usage:
//
//	bloomrun-sim run               - Run a fixed number of ticks and log a summary
//
// Global flags:
//
//	--seed <value>       - RNG seed (0 = random based on time)
//	--config <path>      - Tuning overrides (YAML)
//	--log-level <level>  - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/automoto/bloomrun/config"
	"github.com/automoto/bloomrun/systems"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bloomrun-sim",
	Short: "Run the bloomrun simulation without a window",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
		}
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "bloomrun-sim",
			Level:           level,
		})
		systems.SetLogger(logger)

		path, err := config.LoadTuning(flagConfig)
		if err != nil {
			return err
		}
		if path != "" {
			logger.Info("tuning loaded", "path", path)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a tuning YAML file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level")

	rootCmd.AddCommand(runCmd)
}
