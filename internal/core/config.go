package core

// RuntimeConfig is handed to the game on every Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second driving the animation
	Seed     int64 // Seed for target generation; 0 lets the platform pick one
}

// DefaultConfig returns a RuntimeConfig sized for a classic terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0,
	}
}

// GameState is what the platform needs to know about a running game.
type GameState struct {
	Score       int  // Best similarity so far
	Attempts    int  // Attempts submitted
	MaxAttempts int  // Submission cap
	GameOver    bool // Status is win or lose and no more input is expected
	Won         bool
	Paused      bool
}

// StepResult is returned by Game.Step after each frame.
type StepResult struct {
	State GameState

	// Submitted is set on the frame an attempt was accepted; Score is its similarity.
	Submitted bool
	Score     int
}
