package core

import (
	"strings"
)

// Paint is the state of one board cell on a Screen.
type Paint struct {
	Filled bool
	Fill   Color
	Border Color
}

// Screen is an in-memory board surface of GridWidth x GridHeight cells.
// It decouples game rendering from the terminal, allowing text backends to
// draw cells while the platform handles actual display.
type Screen struct {
	width      int
	height     int
	background Color
	cells      [][]Paint
}

// NewScreen creates a new screen buffer with the given dimensions in cells.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:      width,
		height:     height,
		background: ColorBackground,
	}
	s.allocate()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Paint, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Paint, s.width)
	}
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Background returns the color of unpainted cells.
func (s *Screen) Background() Color {
	return s.background
}

// Clear fills the entire screen with the background color.
func (s *Screen) Clear(bg Color) {
	s.background = bg
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Paint{}
		}
	}
}

// Paint fills one cell. Out-of-bounds cells are silently ignored.
func (s *Screen) Paint(c Cell, fill, border Color) {
	if c.X < 0 || c.X >= s.width || c.Y < 0 || c.Y >= s.height {
		return
	}
	s.cells[c.Y][c.X] = Paint{Filled: true, Fill: fill, Border: border}
}

// At returns the paint of a cell.
// Returns an unfilled cell for out-of-bounds coordinates.
func (s *Screen) At(c Cell) Paint {
	if c.X < 0 || c.X >= s.width || c.Y < 0 || c.Y >= s.height {
		return Paint{}
	}
	return s.cells[c.Y][c.X]
}

// CopyFrom replaces the contents of s with other's. Sizes must match.
func (s *Screen) CopyFrom(other *Screen) {
	s.background = other.background
	for y := 0; y < Min(s.height, other.height); y++ {
		copy(s.cells[y], other.cells[y])
	}
}

// String converts the screen to plain text, one rune per cell, using glyph
// to pick the rune for painted cells. Rows are joined with newlines.
func (s *Screen) String(glyph func(Paint) rune) string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			p := s.cells[y][x]
			if !p.Filled {
				sb.WriteRune('.')
				continue
			}
			sb.WriteRune(glyph(p))
		}
	}
	return sb.String()
}
