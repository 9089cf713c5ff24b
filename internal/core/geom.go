// Package core provides fundamental types and utilities for the snake game.
// It contains no external UI dependencies (especially no Bubble Tea) to keep
// game logic pure and testable.
package core

import "fmt"

// Board geometry. The board is a fixed torus; none of these are configurable.
const (
	ScreenWidth  = 640 // Drawing surface width in pixels
	ScreenHeight = 480 // Drawing surface height in pixels
	CellSize     = 20  // Edge of one grid cell in pixels

	GridWidth  = ScreenWidth / CellSize  // 32 cells
	GridHeight = ScreenHeight / CellSize // 24 cells
)

// Cell is one discrete grid-aligned position on the board.
type Cell struct {
	X, Y int
}

// Center returns the cell in the middle of the board, (16, 12) on a 32x24 grid.
func Center() Cell {
	return CellAt(ScreenWidth/2, ScreenHeight/2)
}

// CellAt maps pixel coordinates to the cell containing them.
// Coordinates outside the surface wrap around.
func CellAt(px, py int) Cell {
	return Cell{X: floorDiv(px, CellSize), Y: floorDiv(py, CellSize)}.Wrap()
}

// Pixels returns the top-left pixel of the cell.
func (c Cell) Pixels() (int, int) {
	return c.X * CellSize, c.Y * CellSize
}

// Add returns the cell one step away in direction d, wrapped onto the board.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}.Wrap()
}

// Wrap folds the cell back onto the board using toroidal topology:
// leaving one edge re-enters from the opposite one.
func (c Cell) Wrap() Cell {
	return Cell{X: Mod(c.X, GridWidth), Y: Mod(c.Y, GridHeight)}
}

// InBounds reports whether the cell lies on the board without wrapping.
func (c Cell) InBounds() bool {
	return c.X >= 0 && c.X < GridWidth && c.Y >= 0 && c.Y < GridHeight
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is a unit vector along one axis.
// The zero value is NoDirection.
type Direction struct {
	DX, DY int
}

var (
	NoDirection = Direction{}
	Up          = Direction{DX: 0, DY: -1}
	Down        = Direction{DX: 0, DY: 1}
	Left        = Direction{DX: -1, DY: 0}
	Right       = Direction{DX: 1, DY: 0}
)

// IsZero reports whether d is NoDirection.
func (d Direction) IsZero() bool {
	return d == NoDirection
}

// Opposite returns the reverse of d.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// IsOpposite returns true if d and other point in exactly reverse directions.
func (d Direction) IsOpposite(other Direction) bool {
	return !d.IsZero() && d.Opposite() == other
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case NoDirection:
		return "none"
	default:
		return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
	}
}

// Mod returns a modulo n, always in [0, n) for positive n.
func Mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

func floorDiv(a, n int) int {
	q := a / n
	if a%n != 0 && a < 0 {
		q--
	}
	return q
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
