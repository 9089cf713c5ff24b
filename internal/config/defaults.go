package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the hard-coded configuration, used when no file can be read.
func Default() SnakeConfig {
	p := core.DefaultPalette()
	return SnakeConfig{
		Speed:   core.DefaultTickRate,
		Display: DisplayTUI,
		Colors: ColorsConfig{
			Background: p.Background.Hex(),
			Border:     p.Border.Hex(),
			Food:       p.Food.Hex(),
			Snake:      p.Snake.Hex(),
		},
		Food: FoodConfig{
			MaxRandomAttempts: core.DefaultMaxFoodAttempts,
		},
		Log: LogConfig{
			Level: "info",
		},
		SSH: SSHConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
