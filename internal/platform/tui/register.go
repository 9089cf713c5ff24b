package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Name is the display name used in config and on the command line.
const Name = "tui"

func init() {
	registry.Register(registry.Backend{
		Name:     Name,
		Title:    "Bubble Tea terminal UI",
		Terminal: true,
		New:      func() engine.Display { return NewDisplay() },
		Run:      runBackend,
	})
}

func runBackend(d engine.Display, run func() error, palette core.Palette) error {
	td, ok := d.(*Display)
	if !ok {
		return fmt.Errorf("tui: cannot run on %T", d)
	}
	return Run(td, run, palette)
}
