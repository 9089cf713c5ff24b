package tui

import (
	"errors"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
)

// ErrClosed is returned by Tick once the display has been closed.
var ErrClosed = errors.New("tui: display closed")

// Display is the engine side of the Bubble Tea bridge. The loop draws into
// it from its own goroutine; finished frames are handed to the model over
// a channel and key presses come back through a locked queue.
type Display struct {
	pacer *engine.Pacer

	mu    sync.Mutex
	queue core.EventQueue

	back   *core.Screen
	frames chan *core.Screen // holds at most the latest frame

	closed    chan struct{}
	closeOnce sync.Once
}

var _ engine.Display = (*Display)(nil)

// NewDisplay creates a display paced on the wall clock.
func NewDisplay() *Display {
	return &Display{
		pacer:  engine.NewPacer(),
		frames: make(chan *core.Screen, 1),
		closed: make(chan struct{}),
	}
}

// Init allocates the frame buffer.
func (d *Display) Init(width, height int) error {
	d.back = core.NewScreen(width/core.CellSize, height/core.CellSize)
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

// DrawCell paints a cell of the frame being drawn.
func (d *Display) DrawCell(cell core.Cell, _ int, fill, border core.Color) error {
	if d.back == nil {
		return engine.ErrNotInitialized
	}
	d.back.Paint(cell, fill, border)
	return nil
}

// Present publishes a copy of the frame. An unread older frame is dropped,
// so a slow terminal never stalls the loop.
func (d *Display) Present() error {
	if d.back == nil {
		return engine.ErrNotInitialized
	}
	frame := core.NewScreen(d.back.Width(), d.back.Height())
	frame.CopyFrom(d.back)

	for {
		select {
		case d.frames <- frame:
			return nil
		case <-d.closed:
			return nil
		default:
		}
		// Drop the stale frame and retry
		select {
		case <-d.frames:
		default:
		}
	}
}

// PollEvents drains the key queue.
func (d *Display) PollEvents() []core.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.queue.Drain()
}

// Push queues an event for the loop. Safe for concurrent use.
func (d *Display) Push(e core.Event) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.queue.Push(e)
}

// Tick waits for the next frame boundary.
func (d *Display) Tick(rateHz int) error {
	select {
	case <-d.closed:
		return ErrClosed
	default:
	}
	d.pacer.Wait(rateHz)
	return nil
}

// Close stops frame delivery. Safe to call more than once.
func (d *Display) Close() error {
	d.closeOnce.Do(func() {
		close(d.closed)
	})
	return nil
}

// Frames returns the channel finished frames are published on.
func (d *Display) Frames() <-chan *core.Screen {
	return d.frames
}

// Done is closed once the display has been closed.
func (d *Display) Done() <-chan struct{} {
	return d.closed
}
