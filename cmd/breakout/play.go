package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start the game in the terminal.

Controls:
  Left/A, Right/D  - Move the paddle
  Mouse            - Paddle follows the pointer
  Space/Enter      - Start
  P/Esc            - Pause
  R                - Restart
  Q/Ctrl+C         - Quit

Difficulty options:
  easy    - Wide paddle, slow ball
  normal  - Values from the config file
  hard    - Narrow paddle, fast ball

Examples:
  breakout play
  breakout play --difficulty easy
  breakout play --config ./my-breakout.toml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close of the log file

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	logger.Info("starting", "width", rt.ScreenW, "height", rt.ScreenH, "fps", rt.TickRate, "difficulty", flagDifficulty)
	if err := tui.Run(cfg, rt, logger); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
