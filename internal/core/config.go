package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW    int    // Screen width in characters
	ScreenH    int    // Screen height in characters
	Seed       int64  // RNG seed for deterministic gameplay
	ConfigPath string // Optional path to a game config YAML
	Difficulty string // Optional difficulty preset name
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	GameOver bool   // Whether the session has ended (lost or won)
	Won      bool   // Whether the session ended in a win
	Paused   bool   // Whether the game is paused
	Status   string // Machine state name, for logs and HUDs
}

// Running reports whether the game's timers should be firing.
func (s GameState) Running() bool {
	return !s.GameOver && !s.Paused
}

// Timer describes one periodic driver a game needs while it is running.
// The platform owns the clock: it calls Fire once per Interval and stops
// calling it entirely while the game is paused or over.
type Timer struct {
	Name string

	// Interval is re-read after every Fire, so it may change between ticks.
	Interval func() time.Duration

	Fire func()
}
