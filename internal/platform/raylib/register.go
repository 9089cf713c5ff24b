//go:build raylib

package raylib

import (
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Name is the display name used in config and on the command line.
const Name = "raylib"

func init() {
	registry.Register(registry.Backend{
		Name:  Name,
		Title: "raylib window (640x480)",
		New:   func() engine.Display { return New() },
	})
}
