// breakout is a brick breaker for the terminal.
//
// Usage:
//
//	breakout play       - Play in the terminal
//	breakout simulate   - Run a headless session with the autopilot
//	breakout config     - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible sessions
//	--log-file <path>   - Write logs to a file (default: discarded)
//	--debug             - Log per-tick events
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - Break bricks in your terminal",
	Long: `Breakout is a paddle-and-ball brick breaker that runs in your terminal.

Available commands:
  play      - Play a session
  simulate  - Run a headless session driven by the autopilot
  config    - Print the effective configuration

Examples:
  breakout play
  breakout play --difficulty hard
  breakout simulate --seed 42 --max-ticks 10000
  breakout config --format toml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the logger selected by the global flags. The returned
// closer must be called once the command is done.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	w := fallback
	closer := func() error { return nil }

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closer = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

// loadConfig loads the configuration file and applies the difficulty preset.
func loadConfig(path, difficulty string) (config.BreakoutConfig, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.BreakoutConfig{}, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
