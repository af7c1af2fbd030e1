package core

import "time"

// RuntimeConfig is handed to a game on every Reset.
type RuntimeConfig struct {
	ScreenW  int   // terminal columns
	ScreenH  int   // terminal rows
	TickRate int   // steps per second; the game clock is derived from it
	Seed     int64 // board RNG seed, 0 lets the platform pick one from the time
}

// DefaultConfig returns an 80x24 terminal at 60 steps per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// TickInterval is the wall time between two steps.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.TickRate < 1 {
		return time.Second
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState is the part of a game the platform needs to see.
type GameState struct {
	Score    int    // safe cells revealed
	GameOver bool   // won or lost
	Won      bool   // only meaningful once GameOver is set
	Paused   bool
	Elapsed  uint64 // seconds on the game clock
}

// StepResult is returned from each Step.
type StepResult struct {
	State GameState
}
