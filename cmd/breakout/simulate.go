package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var flagMaxTicks int

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless session driven by the autopilot",
	Long: `Play one session without a terminal UI. The autopilot steers the paddle
and the loop is stepped as fast as possible. The same seed and config
always produce the same result and snapshot hash.

Examples:
  breakout simulate --seed 42
  breakout simulate --seed 42 --difficulty hard --max-ticks 5000`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	simulateCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	simulateCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 100000, "Stop after this many ticks (0 = no cap)")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close of the log file

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sched := breakout.NewManualScheduler()
	loop := breakout.NewLoop(cfg, seed, sched, nil, breakout.WithLogger(logger))
	loop.Start()
	breakout.RunHeadless(loop, sched, breakout.NewAutopilot(), flagMaxTicks)
	loop.Stop()

	snap := loop.Snapshot()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "seed:   %d\n", seed)
	fmt.Fprintf(out, "state:  %s\n", loop.State())
	fmt.Fprintf(out, "score:  %d\n", snap.Score)
	fmt.Fprintf(out, "lives:  %d\n", snap.Lives)
	fmt.Fprintf(out, "bricks: %d\n", snap.BricksRemaining)
	fmt.Fprintf(out, "ticks:  %d\n", snap.Tick)
	fmt.Fprintf(out, "hash:   %016x\n", snap.Hash())
	return nil
}
