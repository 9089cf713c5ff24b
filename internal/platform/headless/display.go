// Package headless provides an in-memory display for simulations and tests.
// Input comes from a script keyed by tick number; frames are kept as
// core.Screen buffers that can be inspected or printed.
package headless

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
)

// Script maps a tick number (1-based) to the events delivered on that tick.
type Script map[uint64][]core.Event

// ParseScript parses "tick:key" pairs separated by commas, e.g.
// "3:down,7:left,20:quit". Keys are up, down, left, right and quit.
func ParseScript(s string) (Script, error) {
	script := make(Script)
	s = strings.TrimSpace(s)
	if s == "" {
		return script, nil
	}

	for _, part := range strings.Split(s, ",") {
		tickStr, name, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("headless: bad script entry %q (want tick:key)", part)
		}
		tick, err := strconv.ParseUint(strings.TrimSpace(tickStr), 10, 64)
		if err != nil || tick == 0 {
			return nil, fmt.Errorf("headless: bad tick in %q", part)
		}

		var ev core.Event
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "up":
			ev = core.KeyEvent(core.KeyUp)
		case "down":
			ev = core.KeyEvent(core.KeyDown)
		case "left":
			ev = core.KeyEvent(core.KeyLeft)
		case "right":
			ev = core.KeyEvent(core.KeyRight)
		case "quit":
			ev = core.QuitEvent()
		default:
			return nil, fmt.Errorf("headless: unknown key %q", name)
		}
		script[tick] = append(script[tick], ev)
	}
	return script, nil
}

// Ticks returns the scripted tick numbers in order.
func (s Script) Ticks() []uint64 {
	ticks := make([]uint64, 0, len(s))
	for t := range s {
		ticks = append(ticks, t)
	}
	sort.Slice(ticks, func(i, j int) bool { return ticks[i] < ticks[j] })
	return ticks
}

// Display is an engine.Display that never touches a terminal.
type Display struct {
	script   Script
	queue    core.EventQueue
	pacer    *engine.Pacer // nil runs as fast as possible
	palette  core.Palette
	back     *core.Screen // Frame being drawn
	front    *core.Screen // Last presented frame
	tick     uint64
	frames   int
	closed   bool
	pixelW   int
	pixelH   int
	cellSize int
}

var _ engine.Display = (*Display)(nil)

// Option configures a headless Display.
type Option func(*Display)

// WithScript delivers scripted events on their ticks.
func WithScript(s Script) Option {
	return func(d *Display) {
		d.script = s
	}
}

// WithRealTime paces ticks on the wall clock instead of running flat out.
func WithRealTime() Option {
	return func(d *Display) {
		d.pacer = engine.NewPacer()
	}
}

// WithPalette sets the palette used to pick glyphs in String.
func WithPalette(p core.Palette) Option {
	return func(d *Display) {
		d.palette = p
	}
}

// New creates a headless display.
func New(opts ...Option) *Display {
	d := &Display{
		script:  make(Script),
		palette: core.DefaultPalette(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Init allocates the frame buffers.
func (d *Display) Init(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("headless: bad surface size %dx%d", width, height)
	}
	d.pixelW, d.pixelH = width, height
	d.back = core.NewScreen(width/core.CellSize, height/core.CellSize)
	d.front = core.NewScreen(width/core.CellSize, height/core.CellSize)
	return nil
}

// Clear wipes the frame being drawn.
func (d *Display) Clear(bg core.Color) error {
	if d.back == nil {
		return engine.ErrNotInitialized
	}
	d.back.Clear(bg)
	return nil
}

// DrawCell paints one cell of the frame being drawn.
func (d *Display) DrawCell(cell core.Cell, size int, fill, border core.Color) error {
	if d.back == nil {
		return engine.ErrNotInitialized
	}
	d.cellSize = size
	d.back.Paint(cell, fill, border)
	return nil
}

// Present makes the drawn frame the visible one.
func (d *Display) Present() error {
	if d.back == nil {
		return engine.ErrNotInitialized
	}
	d.front.CopyFrom(d.back)
	d.frames++
	return nil
}

// PollEvents returns pushed events followed by the events scripted for
// the current tick.
func (d *Display) PollEvents() []core.Event {
	events := d.queue.Drain()
	return append(events, d.script[d.tick]...)
}

// Tick advances the tick counter, sleeping first when running in real time.
func (d *Display) Tick(rateHz int) error {
	if d.closed {
		return errors.New("headless: display closed")
	}
	if d.pacer != nil {
		d.pacer.Wait(rateHz)
	}
	d.tick++
	return nil
}

// Close marks the display as released.
func (d *Display) Close() error {
	d.closed = true
	return nil
}

// Push queues an event for the next PollEvents.
func (d *Display) Push(e core.Event) {
	d.queue.Push(e)
}

// Frame returns the last presented frame, or nil before Init.
func (d *Display) Frame() *core.Screen {
	return d.front
}

// Frames returns how many frames were presented.
func (d *Display) Frames() int {
	return d.frames
}

// Closed reports whether Close was called.
func (d *Display) Closed() bool {
	return d.closed
}

// Size returns the pixel dimensions passed to Init.
func (d *Display) Size() (int, int) {
	return d.pixelW, d.pixelH
}

// CellSize returns the cell size of the last DrawCell call.
func (d *Display) CellSize() int {
	return d.cellSize
}

// String renders the last presented frame as text: '*' for food,
// 'o' for snake, '.' for empty cells.
func (d *Display) String() string {
	if d.front == nil {
		return ""
	}
	return d.front.String(func(p core.Paint) rune {
		if p.Fill == d.palette.Food {
			return '*'
		}
		return 'o'
	})
}
