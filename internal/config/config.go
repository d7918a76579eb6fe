// Package config provides YAML/TOML configuration loading and difficulty
// presets for the breakout engine.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// BreakoutConfig contains all tunable parameters of a session.
type BreakoutConfig struct {
	Surface  SurfaceConfig  `yaml:"surface" toml:"surface"`
	Paddle   PaddleConfig   `yaml:"paddle" toml:"paddle"`
	Ball     BallConfig     `yaml:"ball" toml:"ball"`
	Bricks   BricksConfig   `yaml:"bricks" toml:"bricks"`
	Gameplay GameplayConfig `yaml:"gameplay" toml:"gameplay"`
}

// SurfaceConfig is the logical play surface size in pixels.
type SurfaceConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PaddleConfig defines the player's paddle.
type PaddleConfig struct {
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	Speed        float64 `yaml:"speed" toml:"speed"`
	BottomOffset float64 `yaml:"bottom_offset" toml:"bottom_offset"`
}

// BallConfig defines the ball.
type BallConfig struct {
	Radius      float64 `yaml:"radius" toml:"radius"`
	LaunchSpeed float64 `yaml:"launch_speed" toml:"launch_speed"`
}

// BricksConfig defines the brick grid layout.
type BricksConfig struct {
	Rows       int     `yaml:"rows" toml:"rows"`
	Cols       int     `yaml:"cols" toml:"cols"`
	Width      float64 `yaml:"width" toml:"width"`
	Height     float64 `yaml:"height" toml:"height"`
	Padding    float64 `yaml:"padding" toml:"padding"`
	OffsetTop  float64 `yaml:"offset_top" toml:"offset_top"`
	OffsetLeft float64 `yaml:"offset_left" toml:"offset_left"`
}

// GameplayConfig defines scoring and lives.
type GameplayConfig struct {
	Lives       int `yaml:"lives" toml:"lives"`
	BrickPoints int `yaml:"brick_points" toml:"brick_points"`
}

// Validate checks that the configuration describes a playable surface.
func (c BreakoutConfig) Validate() error {
	switch {
	case c.Surface.Width <= 0 || c.Surface.Height <= 0:
		return fmt.Errorf("%w: surface must be positive, got %gx%g", ErrInvalid, c.Surface.Width, c.Surface.Height)
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return fmt.Errorf("%w: paddle size must be positive", ErrInvalid)
	case c.Paddle.Width > c.Surface.Width:
		return fmt.Errorf("%w: paddle width %g exceeds surface width %g", ErrInvalid, c.Paddle.Width, c.Surface.Width)
	case c.Paddle.Speed < 0:
		return fmt.Errorf("%w: paddle speed must not be negative", ErrInvalid)
	case c.Paddle.BottomOffset <= 0 || c.Paddle.BottomOffset >= c.Surface.Height:
		return fmt.Errorf("%w: paddle bottom_offset must be inside the surface", ErrInvalid)
	case c.Ball.Radius <= 0 || c.Ball.LaunchSpeed <= 0:
		return fmt.Errorf("%w: ball radius and launch_speed must be positive", ErrInvalid)
	case c.Bricks.Rows <= 0 || c.Bricks.Cols <= 0:
		return fmt.Errorf("%w: brick grid must have at least one row and column", ErrInvalid)
	case c.Bricks.Width <= 0 || c.Bricks.Height <= 0:
		return fmt.Errorf("%w: brick size must be positive", ErrInvalid)
	case c.gridRight() > c.Surface.Width:
		return fmt.Errorf("%w: brick grid (right edge %g) wider than surface %g", ErrInvalid, c.gridRight(), c.Surface.Width)
	case c.Gameplay.Lives < 1:
		return fmt.Errorf("%w: lives must be at least 1, got %d", ErrInvalid, c.Gameplay.Lives)
	case c.Gameplay.BrickPoints < 0:
		return fmt.Errorf("%w: brick_points must not be negative", ErrInvalid)
	}
	return nil
}

func (c BreakoutConfig) gridRight() float64 {
	b := c.Bricks
	return b.OffsetLeft + float64(b.Cols)*(b.Width+b.Padding) - b.Padding
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset. Empty input means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Paddle.Width = 160
		cfg.Ball.LaunchSpeed = 3
	case DifficultyHard:
		cfg.Paddle.Width = 90
		cfg.Ball.LaunchSpeed = 5
	}
	if cfg.Paddle.Width > cfg.Surface.Width {
		cfg.Paddle.Width = cfg.Surface.Width
	}
}
