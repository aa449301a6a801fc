package core

// RuntimeConfig contains configuration passed to the game at initialization.
// Front ends use this to describe the viewport and the simulation clock.
type RuntimeConfig struct {
	Width    float64 // Viewport width in world pixels
	Height   float64 // Viewport height in world pixels
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Width:    800,
		Height:   600,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
