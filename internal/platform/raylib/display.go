//go:build raylib

// Package raylib draws the board in a native window at the board's exact
// pixel size. It needs cgo and is only built with the raylib tag.
package raylib

import (
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
)

// Title is the window caption.
const Title = "Snake"

func init() {
	// raylib must be driven from the main thread
	runtime.LockOSThread()
}

// Display is an engine.Display backed by a raylib window.
type Display struct {
	pacer   *engine.Pacer
	open    bool
	drawing bool
}

var _ engine.Display = (*Display)(nil)

// New creates a display. The window opens on Init.
func New() *Display {
	return &Display{pacer: engine.NewPacer()}
}

// Init opens the window.
func (d *Display) Init(width, height int) error {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(width), int32(height), Title)
	d.open = true
	return nil
}

// Clear starts a frame and fills it with bg.
func (d *Display) Clear(bg core.Color) error {
	if !d.open {
		return engine.ErrNotInitialized
	}
	if !d.drawing {
		rl.BeginDrawing()
		d.drawing = true
	}
	rl.ClearBackground(toRL(bg))
	return nil
}

// DrawCell draws a filled square with a 1-pixel border.
func (d *Display) DrawCell(cell core.Cell, size int, fill, border core.Color) error {
	if !d.open {
		return engine.ErrNotInitialized
	}
	if !d.drawing {
		rl.BeginDrawing()
		d.drawing = true
	}
	x, y := cell.Pixels()
	rl.DrawRectangle(int32(x), int32(y), int32(size), int32(size), toRL(fill))
	rl.DrawRectangleLines(int32(x), int32(y), int32(size), int32(size), toRL(border))
	return nil
}

// Present ends the frame and swaps buffers.
func (d *Display) Present() error {
	if !d.open {
		return engine.ErrNotInitialized
	}
	if !d.drawing {
		rl.BeginDrawing()
	}
	rl.EndDrawing()
	d.drawing = false
	return nil
}

// PollEvents reports window close and the keys pressed since the last frame.
func (d *Display) PollEvents() []core.Event {
	if !d.open {
		return nil
	}

	var events []core.Event
	if rl.WindowShouldClose() {
		events = append(events, core.QuitEvent())
	}
	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		events = append(events, mapKey(k))
	}
	return events
}

func mapKey(k int32) core.Event {
	switch k {
	case rl.KeyUp:
		return core.KeyEvent(core.KeyUp)
	case rl.KeyDown:
		return core.KeyEvent(core.KeyDown)
	case rl.KeyLeft:
		return core.KeyEvent(core.KeyLeft)
	case rl.KeyRight:
		return core.KeyEvent(core.KeyRight)
	case rl.KeyQ:
		return core.QuitEvent()
	default:
		return core.KeyEvent(core.KeyOther)
	}
}

// Tick waits for the next frame boundary.
func (d *Display) Tick(rateHz int) error {
	d.pacer.Wait(rateHz)
	return nil
}

// Close closes the window.
func (d *Display) Close() error {
	if d.open {
		if d.drawing {
			rl.EndDrawing()
			d.drawing = false
		}
		rl.CloseWindow()
		d.open = false
	}
	return nil
}

func toRL(c core.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}
