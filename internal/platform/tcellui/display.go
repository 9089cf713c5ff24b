// Package tcellui implements engine.Display on a tcell screen.
//
// Each grid cell is two terminal columns wide so the board keeps a roughly
// square aspect. Input is read by a poller goroutine and handed to the loop
// through a locked queue.
package tcellui

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
)

// CellColumns is the number of terminal columns used for one grid cell.
const CellColumns = 2

// ErrClosed is returned by Tick after the display was closed.
var ErrClosed = errors.New("tcellui: display closed")

// Display draws the board on a tcell.Screen.
type Display struct {
	screen tcell.Screen
	pacer  *engine.Pacer

	mu     sync.Mutex
	queue  core.EventQueue
	closed bool

	cols, rows int
	running    bool // screen initialized and poller started
	done       chan struct{}
	closeOnce  sync.Once
}

var _ engine.Display = (*Display)(nil)

// Option configures a Display.
type Option func(*Display)

// WithScreen uses s instead of the terminal. Tests pass a simulation screen.
func WithScreen(s tcell.Screen) Option {
	return func(d *Display) {
		d.screen = s
	}
}

// WithPacer replaces the frame clock.
func WithPacer(p *engine.Pacer) Option {
	return func(d *Display) {
		d.pacer = p
	}
}

// New creates a display. The terminal is not touched until Init.
func New(opts ...Option) *Display {
	d := &Display{
		pacer: engine.NewPacer(),
		done:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Init opens the screen and starts reading input.
func (d *Display) Init(width, height int) error {
	if d.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("tcellui: creating screen: %w", err)
		}
		d.screen = s
	}
	if err := d.screen.Init(); err != nil {
		return fmt.Errorf("tcellui: init screen: %w", err)
	}

	d.cols = width / core.CellSize
	d.rows = height / core.CellSize
	d.screen.HideCursor()
	d.screen.Clear()

	d.running = true
	go d.poll()
	return nil
}

// poll forwards screen events until the screen is finalized.
func (d *Display) poll() {
	defer close(d.done)
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}
		d.handleEvent(ev)
	}
}

func (d *Display) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if e, ok := mapKey(ev); ok {
			d.push(e)
		}
	case *tcell.EventResize:
		d.screen.Sync()
	}
}

func (d *Display) push(e core.Event) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.queue.Push(e)
}

// mapKey turns a tcell key into a game event.
// Arrows steer; Esc, Ctrl+C and q quit.
func mapKey(ev *tcell.EventKey) (core.Event, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.KeyEvent(core.KeyUp), true
	case tcell.KeyDown:
		return core.KeyEvent(core.KeyDown), true
	case tcell.KeyLeft:
		return core.KeyEvent(core.KeyLeft), true
	case tcell.KeyRight:
		return core.KeyEvent(core.KeyRight), true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.QuitEvent(), true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return core.QuitEvent(), true
		}
		return core.KeyEvent(core.KeyOther), true
	}
	return core.Event{}, false
}

// Style returns the tcell style for a cell: the fill as background and the
// border as the bracket color.
func Style(fill, border core.Color) tcell.Style {
	return tcell.StyleDefault.
		Background(toTcell(fill)).
		Foreground(toTcell(border))
}

func toTcell(c core.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Clear paints the whole board with bg.
func (d *Display) Clear(bg core.Color) error {
	if !d.running {
		return engine.ErrNotInitialized
	}
	style := tcell.StyleDefault.Background(toTcell(bg))
	for y := 0; y < d.rows; y++ {
		for x := 0; x < d.cols*CellColumns; x++ {
			d.screen.SetContent(x, y, ' ', nil, style)
		}
	}
	return nil
}

// DrawCell draws a cell as a bracket pair so the border stays visible.
func (d *Display) DrawCell(cell core.Cell, size int, fill, border core.Color) error {
	if !d.running {
		return engine.ErrNotInitialized
	}
	if !cell.InBounds() {
		return nil
	}
	style := Style(fill, border)
	x := cell.X * CellColumns
	d.screen.SetContent(x, cell.Y, '[', nil, style)
	d.screen.SetContent(x+1, cell.Y, ']', nil, style)
	return nil
}

// Present shows the frame.
func (d *Display) Present() error {
	if !d.running {
		return engine.ErrNotInitialized
	}
	d.screen.Show()
	return nil
}

// PollEvents drains the input queue.
func (d *Display) PollEvents() []core.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.queue.Drain()
}

// Tick waits for the next frame boundary.
func (d *Display) Tick(rateHz int) error {
	d.mu.Lock()
	closed := d.closed
	d.mu.Unlock()
	if closed {
		return ErrClosed
	}
	d.pacer.Wait(rateHz)
	return nil
}

// Close restores the terminal and stops the poller.
func (d *Display) Close() error {
	d.closeOnce.Do(func() {
		d.mu.Lock()
		d.closed = true
		d.mu.Unlock()

		if !d.running {
			return
		}
		d.screen.Fini()
		<-d.done
	})
	return nil
}
