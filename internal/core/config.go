// Package core provides the fundamental types shared by the game and
// the platform layer. It has no external dependencies (especially no
// Bubble Tea) so the game logic stays pure and testable.
package core

// RuntimeConfig is passed to the game at initialization. The seed makes
// a whole session reproducible.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Platform frames per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultRuntimeConfig returns sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState communicates game status to the platform after each frame.
type GameState struct {
	Attempt   int  // 1-based index of the attempt in progress
	Completed int  // labyrinths escaped this session
	Paused    bool
	GameOver  bool
}

// StepResult is returned by Game.Step after each frame.
type StepResult struct {
	State GameState
}
