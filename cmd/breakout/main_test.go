package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

// resetFlags restores flag defaults. Cobra binds flags to package globals
// that outlive a single Execute.
func resetFlags() {
	flagFPS, flagSeed, flagLogFile, flagDebug = 60, 0, "", false
	flagConfig, flagDifficulty = "", ""
	flagFormat = "yaml"
	flagMaxTicks = 100000
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	resetFlags()
	t.Cleanup(resetFlags)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("breakout %v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestSimulateIsDeterministic(t *testing.T) {
	first := execute(t, "simulate", "--seed", "42", "--max-ticks", "3000")
	second := execute(t, "simulate", "--seed", "42", "--max-ticks", "3000")

	if first != second {
		t.Errorf("runs differ:\n%s\n---\n%s", first, second)
	}
	for _, field := range []string{"state:", "score:", "lives:", "ticks:", "hash:"} {
		if !strings.Contains(first, field) {
			t.Errorf("output missing %q:\n%s", field, first)
		}
	}
}

func TestConfigCommandFormats(t *testing.T) {
	tests := []struct {
		format string
		want   config.Format
	}{
		{"yaml", config.FormatYAML},
		{"toml", config.FormatTOML},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out := execute(t, "config", "--format", tt.format, "--difficulty", "easy")

			cfg, err := config.Decode([]byte(out), tt.want)
			if err != nil {
				t.Fatalf("Decode: %v\n%s", err, out)
			}
			if cfg.Paddle.Width != 160 {
				t.Errorf("Paddle.Width = %v, want 160 (easy preset)", cfg.Paddle.Width)
			}
		})
	}
}

func TestUnknownDifficulty(t *testing.T) {
	t.Cleanup(resetFlags)
	rootCmd.SetArgs([]string{"config", "--difficulty", "brutal"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	if err := rootCmd.Execute(); err == nil {
		t.Error("expected an error for an unknown difficulty")
	}
}

func TestConfigFlagsDoNotLeak(t *testing.T) {
	execute(t, "config", "--format", "toml", "--difficulty", "easy")

	out := execute(t, "config")
	cfg, err := config.Decode([]byte(out), config.FormatYAML)
	if err != nil {
		t.Fatalf("Decode: %v\n%s", err, out)
	}
	if cfg.Paddle.Width != config.DefaultBreakoutConfig().Paddle.Width {
		t.Errorf("Paddle.Width = %v, want the normal default", cfg.Paddle.Width)
	}
}
