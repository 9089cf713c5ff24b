package engine

import (
	"errors"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrNotInitialized is returned by displays asked to draw before Init.
var ErrNotInitialized = errors.New("engine: display not initialized")

// Display is the presentation layer the loop drives. Implementations own
// the drawing surface, the input source and the frame clock.
type Display interface {
	// Init establishes a drawing surface of the given pixel dimensions.
	Init(width, height int) error

	// Clear fills the surface with a background color.
	Clear(bg core.Color) error

	// DrawCell draws one grid cell as a filled square with a 1-pixel border.
	DrawCell(cell core.Cell, size int, fill, border core.Color) error

	// Present flushes the frame to the screen.
	Present() error

	// PollEvents returns the events received since the last call.
	// It never blocks.
	PollEvents() []core.Event

	// Tick blocks until the next frame boundary at the given rate.
	Tick(rateHz int) error

	// Close releases the surface. It is called once when the loop exits.
	Close() error
}
