package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(GridWidth, GridHeight)

	if s.Width() != 32 {
		t.Errorf("Width() = %d, expected 32", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it starts unpainted
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.At(Cell{x, y}).Filled {
				t.Errorf("New screen should be empty, got paint at (%d, %d)", x, y)
			}
		}
	}
}

func TestScreenPaintAt(t *testing.T) {
	s := NewScreen(10, 10)

	s.Paint(Cell{5, 5}, ColorSnake, ColorBorder)
	p := s.At(Cell{5, 5})
	if !p.Filled || p.Fill != ColorSnake || p.Border != ColorBorder {
		t.Errorf("At(5, 5) = %+v, expected snake paint", p)
	}

	// Out of bounds should be silent
	s.Paint(Cell{-1, 0}, ColorFood, ColorBorder)
	s.Paint(Cell{100, 0}, ColorFood, ColorBorder)
	s.Paint(Cell{0, -1}, ColorFood, ColorBorder)
	s.Paint(Cell{0, 100}, ColorFood, ColorBorder)

	if s.At(Cell{-1, 0}).Filled {
		t.Error("Out of bounds At should be unfilled")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.Paint(Cell{x, y}, ColorFood, ColorBorder)
		}
	}

	bg := Color{R: 1, G: 2, B: 3}
	s.Clear(bg)

	if s.Background() != bg {
		t.Errorf("Background() = %v, expected %v", s.Background(), bg)
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.At(Cell{x, y}).Filled {
				t.Errorf("After Clear, expected empty cell at (%d, %d)", x, y)
			}
		}
	}
}

func TestScreenCopyFrom(t *testing.T) {
	a := NewScreen(4, 4)
	b := NewScreen(4, 4)
	a.Paint(Cell{1, 2}, ColorFood, ColorBorder)

	b.CopyFrom(a)
	if !b.At(Cell{1, 2}).Filled {
		t.Error("CopyFrom should copy painted cells")
	}

	// Copies are independent
	a.Clear(ColorBackground)
	if !b.At(Cell{1, 2}).Filled {
		t.Error("Clearing the source should not affect the copy")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Paint(Cell{0, 0}, ColorSnake, ColorBorder)
	s.Paint(Cell{2, 1}, ColorFood, ColorBorder)

	result := s.String(func(p Paint) rune {
		if p.Fill == ColorFood {
			return '*'
		}
		return 'o'
	})
	expected := "o..\n..*"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
	if strings.Count(result, "\n") != 1 {
		t.Errorf("String() should have one newline per row break")
	}
}
