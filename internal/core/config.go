package core

// RuntimeConfig contains configuration passed to the engine at initialization.
// The engine uses this to size itself to the terminal and for deterministic
// simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for the piece bag (0 = platform picks one)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is the coarse status the engine reports to the platform after
// every advance. The platform uses it to drive score saving and the
// restart/quit flow without reaching into engine internals.
type GameState struct {
	Score    int
	Level    int
	Lines    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by the engine after each advance call.
type StepResult struct {
	State GameState
}
