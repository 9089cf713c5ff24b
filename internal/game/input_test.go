package game

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestInputMapperSteers(t *testing.T) {
	tests := []struct {
		name     string
		events   []core.Event
		expected core.Direction
	}{
		{"up", []core.Event{core.KeyEvent(core.KeyUp)}, core.Up},
		{"down", []core.Event{core.KeyEvent(core.KeyDown)}, core.Down},
		{"reversal ignored", []core.Event{core.KeyEvent(core.KeyLeft)}, core.NoDirection},
		{"same direction", []core.Event{core.KeyEvent(core.KeyRight)}, core.Right},
		{"unknown key ignored", []core.Event{core.KeyEvent(core.KeyOther)}, core.NoDirection},
		{"non-key event ignored", []core.Event{{Kind: core.EventNone, Key: core.KeyUp}}, core.NoDirection},
		{"last valid wins", []core.Event{core.KeyEvent(core.KeyDown), core.KeyEvent(core.KeyUp)}, core.Up},
		{"reversal after turn still checked against current", []core.Event{
			core.KeyEvent(core.KeyUp), core.KeyEvent(core.KeyLeft),
		}, core.Up},
		{"no events", nil, core.NoDirection},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSnake()
			m := NewInputMapper()

			if quit := m.Apply(tc.events, s); quit {
				t.Fatal("Apply() reported quit")
			}
			if s.Pending() != tc.expected {
				t.Errorf("Pending() = %v, expected %v", s.Pending(), tc.expected)
			}
		})
	}
}

func TestInputMapperQuitFirst(t *testing.T) {
	s := newTestSnake()
	m := NewInputMapper()

	events := []core.Event{
		core.KeyEvent(core.KeyUp),
		core.QuitEvent(),
		core.KeyEvent(core.KeyDown),
	}
	if !m.Apply(events, s) {
		t.Fatal("Apply() should report quit")
	}
	if !s.Pending().IsZero() {
		t.Errorf("quit must be handled before steering, pending = %v", s.Pending())
	}
}
