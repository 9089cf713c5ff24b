package core

// DefaultTickRate is the number of game ticks per second.
const DefaultTickRate = 10

// DefaultMaxFoodAttempts caps random sampling when relocating food.
const DefaultMaxFoodAttempts = 1024

// RuntimeConfig contains configuration passed to the game at initialization.
// The board size is fixed and therefore not part of it.
type RuntimeConfig struct {
	TickRate        int   // Simulation ticks per second (default 10)
	Seed            int64 // RNG seed for deterministic gameplay
	MaxFoodAttempts int   // Random samples before food placement scans for free cells
	Palette         Palette
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate:        DefaultTickRate,
		Seed:            0, // 0 means use current time in platform layer
		MaxFoodAttempts: DefaultMaxFoodAttempts,
		Palette:         DefaultPalette(),
	}
}
