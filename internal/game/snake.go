package game

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snake is the player-controlled body. Positions are kept head first.
//
// The body converges on targetLength: each Advance prepends a new head and
// drops tail cells while the body is longer than targetLength, so growing is
// just raising targetLength before the next move.
type Snake struct {
	positions    []core.Cell // Head at index 0
	targetLength int
	direction    core.Direction
	pending      core.Direction // Buffered direction for next move
	fill         core.Color
	border       core.Color
}

// NewSnake creates a snake in its initial state.
func NewSnake(fill, border core.Color) *Snake {
	s := &Snake{fill: fill, border: border}
	s.Reset()
	return s
}

// Reset restores the initial state: one cell at the board center heading right.
func (s *Snake) Reset() {
	s.positions = []core.Cell{core.Center()}
	s.targetLength = 1
	s.direction = core.Right
	s.pending = core.NoDirection
}

// SetPendingDirection buffers d for the next Advance.
// A direction opposite to the current one is ignored; reversing in place
// would run the head straight into the neck.
func (s *Snake) SetPendingDirection(d core.Direction) {
	if d.IsZero() || d.IsOpposite(s.direction) {
		return
	}
	s.pending = d
}

// Advance commits the pending direction and moves the head one cell,
// wrapping around the board edges.
func (s *Snake) Advance() {
	if !s.pending.IsZero() {
		s.direction = s.pending
		s.pending = core.NoDirection
	}

	head := s.Head().Add(s.direction)

	s.positions = append(s.positions, core.Cell{})
	copy(s.positions[1:], s.positions)
	s.positions[0] = head

	for len(s.positions) > s.targetLength {
		s.positions = s.positions[:len(s.positions)-1]
	}
}

// Grow raises the target length by one. The tail is kept on the next move.
func (s *Snake) Grow() {
	s.targetLength++
}

// CheckSelfCollision reports whether the head overlaps any body cell.
func (s *Snake) CheckSelfCollision() bool {
	head := s.Head()
	for _, p := range s.positions[1:] {
		if p == head {
			return true
		}
	}
	return false
}

// Head returns the head cell.
func (s *Snake) Head() core.Cell {
	return s.positions[0]
}

// Positions returns a copy of the body, head first.
func (s *Snake) Positions() []core.Cell {
	out := make([]core.Cell, len(s.positions))
	copy(out, s.positions)
	return out
}

// Len returns the number of cells currently occupied.
func (s *Snake) Len() int {
	return len(s.positions)
}

// TargetLength returns the length the snake is growing toward.
func (s *Snake) TargetLength() int {
	return s.targetLength
}

// Direction returns the direction applied on the last move.
func (s *Snake) Direction() core.Direction {
	return s.direction
}

// Pending returns the buffered direction, or NoDirection.
func (s *Snake) Pending() core.Direction {
	return s.pending
}

// Occupies checks if the snake covers the given cell.
func (s *Snake) Occupies(c core.Cell) bool {
	for _, p := range s.positions {
		if p == c {
			return true
		}
	}
	return false
}

// Occupied returns the set of cells covered by the snake.
func (s *Snake) Occupied() map[core.Cell]struct{} {
	set := make(map[core.Cell]struct{}, len(s.positions))
	for _, p := range s.positions {
		set[p] = struct{}{}
	}
	return set
}

// Draw paints the body first and the head last so the head overlays.
func (s *Snake) Draw(dst Surface) error {
	for _, p := range s.positions[1:] {
		if err := dst.DrawCell(p, core.CellSize, s.fill, s.border); err != nil {
			return err
		}
	}
	return dst.DrawCell(s.Head(), core.CellSize, s.fill, s.border)
}
