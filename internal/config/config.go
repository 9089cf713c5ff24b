// Package config provides YAML-based configuration loading for the snake
// game: speed, colors, logging and the SSH server.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Display backend names.
const (
	DisplayTUI    = "tui"
	DisplayTcell  = "tcell"
	DisplayRaylib = "raylib"
)

// SnakeConfig contains all configuration for the game and its front ends.
type SnakeConfig struct {
	Speed   int          `yaml:"speed"` // Ticks per second
	Seed    int64        `yaml:"seed"`  // 0 picks a time-based seed
	Display string       `yaml:"display"`
	Colors  ColorsConfig `yaml:"colors"`
	Food    FoodConfig   `yaml:"food"`
	Log     LogConfig    `yaml:"log"`
	SSH     SSHConfig    `yaml:"ssh"`
}

// ColorsConfig holds hex colors ("#rrggbb").
type ColorsConfig struct {
	Background string `yaml:"background"`
	Border     string `yaml:"border"`
	Food       string `yaml:"food"`
	Snake      string `yaml:"snake"`
}

// FoodConfig tunes food placement.
type FoodConfig struct {
	MaxRandomAttempts int `yaml:"max_random_attempts"`
}

// LogConfig sets the log level: debug, info, warn or error.
type LogConfig struct {
	Level string `yaml:"level"`
}

// SSHConfig configures `snake serve`.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Validate checks every field. Errors wrap ErrInvalid.
func (c SnakeConfig) Validate() error {
	if c.Speed <= 0 {
		return fmt.Errorf("%w: speed must be positive, got %d", ErrInvalid, c.Speed)
	}
	switch c.Display {
	case DisplayTUI, DisplayTcell, DisplayRaylib:
	default:
		return fmt.Errorf("%w: unknown display %q", ErrInvalid, c.Display)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	if c.Food.MaxRandomAttempts < 0 {
		return fmt.Errorf("%w: food.max_random_attempts must not be negative", ErrInvalid)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if c.SSH.IdleTimeout < 0 {
		return fmt.Errorf("%w: ssh.idle_timeout must not be negative", ErrInvalid)
	}
	return nil
}

// Palette parses the configured colors.
func (c SnakeConfig) Palette() (core.Palette, error) {
	var p core.Palette
	fields := []struct {
		name string
		hex  string
		dst  *core.Color
	}{
		{"background", c.Colors.Background, &p.Background},
		{"border", c.Colors.Border, &p.Border},
		{"food", c.Colors.Food, &p.Food},
		{"snake", c.Colors.Snake, &p.Snake},
	}

	for _, f := range fields {
		col, err := core.ParseColor(f.hex)
		if err != nil {
			return core.Palette{}, fmt.Errorf("%w: colors.%s: %v", ErrInvalid, f.name, err)
		}
		*f.dst = col
	}
	return p, nil
}

// LogLevel parses the configured log level.
func (c SnakeConfig) LogLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return 0, fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	return lvl, nil
}

// RuntimeConfig converts the file config to what the game runs with.
func (c SnakeConfig) RuntimeConfig() (core.RuntimeConfig, error) {
	if err := c.Validate(); err != nil {
		return core.RuntimeConfig{}, err
	}
	p, _ := c.Palette()

	rc := core.DefaultConfig()
	rc.TickRate = c.Speed
	rc.Seed = c.Seed
	rc.Palette = p
	if c.Food.MaxRandomAttempts > 0 {
		rc.MaxFoodAttempts = c.Food.MaxRandomAttempts
	}
	return rc, nil
}
