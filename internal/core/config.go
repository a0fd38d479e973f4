package core

// RuntimeConfig contains configuration passed to the simulation at initialization.
// The simulation uses this to size the camera viewport and seed its RNG.
type RuntimeConfig struct {
	ScreenW    int   // Screen width in characters
	ScreenH    int   // Screen height in characters
	TickRate   int   // Simulation ticks per second (default 60)
	Seed       int64 // RNG seed
	Privileged bool  // Whether restricted-tier abilities may be offered
}

// Screen cells are mapped to a virtual pixel grid so that zoom and viewport
// math matches a conventional canvas. Terminal cells are about twice as tall
// as they are wide.
const (
	CellPixelsW = 8
	CellPixelsH = 16
)

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// ViewportPixels returns the screen size on the virtual pixel grid.
func (c RuntimeConfig) ViewportPixels() (w, h float64) {
	return float64(c.ScreenW * CellPixelsW), float64(c.ScreenH * CellPixelsH)
}

// GameState represents the current state of a run.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Kills this run
	GameOver bool // Whether the player has been defeated
	Paused   bool // Whether the simulation is suspended
}
