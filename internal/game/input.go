package game

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// InputMapper translates backend events into snake steering.
// This centralizes the key rules and makes them testable.
type InputMapper struct{}

// NewInputMapper creates a new input mapper.
func NewInputMapper() *InputMapper {
	return &InputMapper{}
}

// Apply forwards directional key events to the snake.
// A quit event wins over everything else in the batch: it is checked before
// any direction is mapped and Apply returns true without steering.
// Unrecognized events are ignored.
func (m *InputMapper) Apply(events []core.Event, s *Snake) (quit bool) {
	for _, e := range events {
		if e.Kind == core.EventQuit {
			return true
		}
	}

	for _, e := range events {
		if e.Kind != core.EventKeyDown {
			continue
		}
		if d := e.Key.Direction(); !d.IsZero() {
			s.SetPendingDirection(d)
		}
	}
	return false
}
