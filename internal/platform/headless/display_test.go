package headless

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
)

func TestParseScript(t *testing.T) {
	s, err := ParseScript("3:down, 7:Left,7:quit")
	if err != nil {
		t.Fatalf("ParseScript() error = %v", err)
	}

	if got := s.Ticks(); len(got) != 2 || got[0] != 3 || got[1] != 7 {
		t.Fatalf("Ticks() = %v, expected [3 7]", got)
	}
	if ev := s[3]; len(ev) != 1 || ev[0] != core.KeyEvent(core.KeyDown) {
		t.Errorf("tick 3 = %v, expected down", ev)
	}
	if ev := s[7]; len(ev) != 2 || ev[0] != core.KeyEvent(core.KeyLeft) || ev[1].Kind != core.EventQuit {
		t.Errorf("tick 7 = %v, expected left then quit", ev)
	}
}

func TestParseScriptErrors(t *testing.T) {
	tests := []string{
		"down",
		"x:up",
		"0:up",
		"3:jump",
		"3:up,,4:down",
	}

	for _, in := range tests {
		if _, err := ParseScript(in); err == nil {
			t.Errorf("ParseScript(%q) should fail", in)
		}
	}

	s, err := ParseScript("  ")
	if err != nil || len(s) != 0 {
		t.Errorf("ParseScript(blank) = %v, %v; expected empty script", s, err)
	}
}

func TestDrawBeforeInit(t *testing.T) {
	d := New()
	if err := d.DrawCell(core.Cell{}, core.CellSize, core.ColorSnake, core.ColorBorder); !errors.Is(err, engine.ErrNotInitialized) {
		t.Errorf("DrawCell() before Init error = %v", err)
	}
	if err := d.Present(); !errors.Is(err, engine.ErrNotInitialized) {
		t.Errorf("Present() before Init error = %v", err)
	}
	if d.String() != "" {
		t.Error("String() before Init should be empty")
	}
}

func TestPresentKeepsLastFrame(t *testing.T) {
	d := New()
	if err := d.Init(core.ScreenWidth, core.ScreenHeight); err != nil {
		t.Fatal(err)
	}

	cell := core.Cell{X: 2, Y: 3}
	_ = d.DrawCell(cell, core.CellSize, core.ColorSnake, core.ColorBorder)
	if d.Frame().At(cell).Filled {
		t.Error("drawing must not show before Present")
	}

	_ = d.Present()
	if !d.Frame().At(cell).Filled {
		t.Error("presented frame should contain the drawn cell")
	}

	// Clearing the back buffer leaves the presented frame alone
	_ = d.Clear(core.ColorBackground)
	if !d.Frame().At(cell).Filled {
		t.Error("Clear() should only affect the next frame")
	}
}

func TestRunWithEngine(t *testing.T) {
	script, err := ParseScript("2:down,4:quit")
	if err != nil {
		t.Fatal(err)
	}
	d := New(WithScript(script))

	cfg := core.DefaultConfig()
	cfg.Seed = 99
	l, err := engine.New(d, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := l.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !d.Closed() {
		t.Error("display should be closed after Run")
	}
	if d.Frames() != 3 {
		t.Errorf("Frames() = %d, expected 3", d.Frames())
	}
	if w, h := d.Size(); w != core.ScreenWidth || h != core.ScreenHeight {
		t.Errorf("Size() = %dx%d", w, h)
	}
	if d.CellSize() != core.CellSize {
		t.Errorf("CellSize() = %d, expected %d", d.CellSize(), core.CellSize)
	}

	g := l.Game()
	head := g.Snake().Head()
	// right, then down twice
	if expected := core.Center().Add(core.Right).Add(core.Down).Add(core.Down); head != expected {
		t.Errorf("head = %v, expected %v", head, expected)
	}
	if p := d.Frame().At(head); !p.Filled || p.Fill != core.ColorSnake {
		t.Errorf("head cell paint = %+v", p)
	}
	if p := d.Frame().At(g.Food().Position()); !p.Filled || p.Fill != core.ColorFood {
		t.Errorf("food cell paint = %+v", p)
	}

	text := d.String()
	if strings.Count(text, "*") != 1 {
		t.Errorf("expected exactly one food glyph:\n%s", text)
	}
	if strings.Count(text, "\n") != core.GridHeight-1 {
		t.Errorf("expected %d rows:\n%s", core.GridHeight, text)
	}
}

func TestPushedEvents(t *testing.T) {
	d := New()
	d.Push(core.QuitEvent())

	events := d.PollEvents()
	if len(events) != 1 || events[0].Kind != core.EventQuit {
		t.Errorf("PollEvents() = %v, expected quit", events)
	}
	if len(d.PollEvents()) != 0 {
		t.Error("events should be delivered once")
	}
}

func TestTickAfterClose(t *testing.T) {
	d := New()
	_ = d.Close()
	if err := d.Tick(10); err == nil {
		t.Error("Tick() after Close should fail")
	}
}
