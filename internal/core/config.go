package core

// RuntimeConfig is passed to a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second driven by the platform
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 30 fps.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0,
	}
}

// GameState is the platform-facing summary of a game, returned by
// Game.State().
type GameState struct {
	GameOver       bool // The game ended, won or lost
	Won            bool
	Elapsed        int // Seconds shown on the timer
	FlagsRemaining int // Value shown on the mine counter
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
	// Changed is the number of cells revealed or flagged this frame.
	Changed int
}
