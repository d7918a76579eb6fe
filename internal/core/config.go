package core

import "time"

// RuntimeConfig holds the platform parameters a session runs with.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in cells
	ScreenH  int   // Terminal height in cells
	TickRate int   // Simulation ticks per second
	Seed     int64 // 0 means the platform picks one from the clock
}

// DefaultTickRate is used when TickRate is not positive.
const DefaultTickRate = 60

// DefaultConfig returns an 80x24 terminal at the default tick rate.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
	}
}

// Interval returns the time between ticks.
func (c RuntimeConfig) Interval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}
