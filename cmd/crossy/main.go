// crossy is an endless lane-crossing game for the terminal.
//
// Usage:
//
//	crossy                  - Play (same as "crossy play")
//	crossy play             - Play in the terminal
//	crossy sim              - Run a headless, deterministic simulation
//	crossy config           - Print the effective configuration
//	crossy list             - List available games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load the game configuration from a YAML file
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/crossy/internal/config"
	"github.com/vovakirdan/crossy/internal/games/crossy"
)

var (
	// Global flags
	flagFPS      int
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
	Use:   "crossy",
	Short: "Crossy - hop across endless roads in your terminal",
	Long: `Crossy is an endless lane-crossing game for the terminal.
Hop forward across grass and roads, dodge the traffic, grab coins
and shields, and see how far you get.

Available commands:
  play     - Play in the terminal (default)
  sim      - Run a headless simulation and print the final state
  config   - Print the effective configuration
  list     - Show all available games

Examples:
  crossy
  crossy play --seed 42
  crossy sim --seed 7 --moves "SUUU..LU" --ticks 120
  crossy config --config ./my-crossy.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listCmd)
}

// newLogger creates the command logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "crossy",
	})
	logger.SetLevel(level)
	return logger, nil
}

// loadConfig loads the game configuration and installs it for new games.
// A --config file that cannot be used is an error; the other sources
// fall back to the built-in defaults.
func loadConfig(logger *log.Logger) (config.CrossyConfig, error) {
	cfg, source, err := config.LoadCrossy(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("configuration loaded", "source", source)

	crossy.SetConfig(cfg)
	return cfg, nil
}
