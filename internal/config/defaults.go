package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the built-in configuration. It mirrors
// defaults/breakout.yaml and is used when the embedded file cannot be parsed.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Surface: SurfaceConfig{
			Width:  800,
			Height: 600,
		},
		Paddle: PaddleConfig{
			Width:        120,
			Height:       15,
			Speed:        8,
			BottomOffset: 40,
		},
		Ball: BallConfig{
			Radius:      20,
			LaunchSpeed: 4,
		},
		Bricks: BricksConfig{
			Rows:       6,
			Cols:       10,
			Width:      60,
			Height:     30,
			Padding:    10,
			OffsetTop:  80,
			OffsetLeft: 35,
		},
		Gameplay: GameplayConfig{
			Lives:       3,
			BrickPoints: 10,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
