package tcellui

import (
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Name is the display name used in config and on the command line.
const Name = "tcell"

func init() {
	registry.Register(registry.Backend{
		Name:     Name,
		Title:    "tcell terminal UI",
		Terminal: true,
		New:      func() engine.Display { return New() },
	})
}
