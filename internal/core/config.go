package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int  // Screen width in characters
	ScreenH  int  // Screen height in characters
	TickRate int  // Frames per second while animating (default 60)
	Sound    bool // Start with audio unmuted
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Covered int  // Covered walkable cells
	Total   int  // Coverable cells (covered + open)
	Won     bool // Whether the win latch is set
	Muted   bool // Whether audio is muted
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
	Dirty bool // Whether another frame should be scheduled
}
