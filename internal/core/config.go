package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game as seen by the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the run has ended (won or lost)
	Won      bool // Whether the run ended in a win
	Paused   bool // Whether the host paused the game

	// Run counters reported when the run is recorded.
	Status       string
	Ticks        uint64
	GhostsEaten  int
	PelletsEaten int
}

// StepResult is returned by Game.Step() after each host frame.
type StepResult struct {
	State  GameState
	Ticked bool // Whether a simulation tick was resolved this frame
}
