package core

// RuntimeConfig contains configuration passed to the scene at initialization.
// The world is measured in pixels and never changes size; the terminal
// dimensions only affect how it is projected onto cells.
type RuntimeConfig struct {
	WorldW   float64 // World width in pixels
	WorldH   float64 // World height in pixels
	ScreenW  int     // Terminal width in characters
	ScreenH  int     // Terminal height in characters
	TickRate int     // Frames per second (default 60)
	Seed     int64   // RNG seed for deterministic spawning
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		WorldW:   800,
		WorldH:   600,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Bounds returns the world rectangle.
func (c RuntimeConfig) Bounds() Bounds {
	return Bounds{W: c.WorldW, H: c.WorldH}
}

// StepResult is returned by Scene.Step() after each frame.
type StepResult struct {
	Frame uint64 // Frame number just simulated, starting at 1
	Hits  int    // Hazards overlapping the player this frame
	Reset bool   // Whether the player was sent back to the center
}
