package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
)

// asciiRenderer returns a renderer without colors so output is plain text.
func asciiRenderer() *Renderer {
	r := lipgloss.NewRenderer(&strings.Builder{})
	r.SetColorProfile(termenv.Ascii)
	return NewRenderer(r, core.DefaultPalette())
}

func newTestModel() (Model, *Display) {
	d := NewDisplay()
	return NewModel(d, func() error { return nil }, asciiRenderer()), d
}

func TestModelForwardsKeys(t *testing.T) {
	m, d := newTestModel()

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if cmd != nil {
		t.Error("steering key should not return a command")
	}
	m = updated.(Model)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = updated.(Model)

	events := d.PollEvents()
	if len(events) != 2 || events[0] != core.KeyEvent(core.KeyDown) || events[1].Kind != core.EventQuit {
		t.Errorf("forwarded events = %v", events)
	}
	if m.Done() {
		t.Error("quit key must wait for the loop to end")
	}
}

func TestModelHelpToggle(t *testing.T) {
	m, d := newTestModel()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	m = updated.(Model)
	if !m.help.ShowAll {
		t.Error("? should expand the help")
	}
	if d.PollEvents() != nil {
		t.Error("help key should not reach the game")
	}
}

func TestModelFrameAndView(t *testing.T) {
	m, _ := newTestModel()
	if m.View() != "starting..." {
		t.Errorf("View() before first frame = %q", m.View())
	}

	s := core.NewScreen(core.GridWidth, core.GridHeight)
	s.Paint(core.Center(), core.ColorSnake, core.ColorBorder)
	updated, cmd := m.Update(FrameMsg{Screen: s})
	if cmd == nil {
		t.Error("a frame should schedule waiting for the next one")
	}
	m = updated.(Model)

	view := m.View()
	if !strings.Contains(view, filledGlyph) {
		t.Errorf("View() does not show the snake:\n%s", view)
	}
	if !strings.Contains(view, "quit") {
		t.Errorf("View() is missing the help footer:\n%s", view)
	}
}

func TestModelLoopDone(t *testing.T) {
	m, _ := newTestModel()
	loopErr := errors.New("display gone")

	updated, cmd := m.Update(LoopDoneMsg{Err: loopErr})
	m = updated.(Model)
	if !m.Done() || !errors.Is(m.Err(), loopErr) {
		t.Errorf("Done() = %v, Err() = %v", m.Done(), m.Err())
	}
	if cmd == nil {
		t.Fatal("loop end should quit the program")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after the loop ends")
	}
}

func TestModelRunsLoop(t *testing.T) {
	d := NewDisplay()
	script := []core.Event{core.QuitEvent()}

	cfg := core.DefaultConfig()
	cfg.TickRate = 1000
	cfg.Seed = 3
	loop, err := engine.New(d, cfg)
	if err != nil {
		t.Fatal(err)
	}
	for _, ev := range script {
		d.Push(ev)
	}

	m := NewModel(d, loop.Run, asciiRenderer())
	msg := runLoop(m.run)()
	done, ok := msg.(LoopDoneMsg)
	if !ok || done.Err != nil {
		t.Fatalf("runLoop() = %#v", msg)
	}
	if loop.State() != engine.StateTerminated {
		t.Error("loop should have terminated on the quit event")
	}

	// The display is closed by the loop, so waiting for a frame gives up
	if msg := waitForFrame(d)(); msg != nil {
		if _, ok := msg.(FrameMsg); !ok {
			t.Errorf("waitForFrame() = %#v", msg)
		}
	}
}
