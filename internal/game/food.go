package game

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrBoardFull is returned when no free cell is left for food.
var ErrBoardFull = errors.New("game: no free cell left for food")

// Food is the single item the snake eats.
type Food struct {
	position    core.Cell
	rng         *rand.Rand
	maxAttempts int
	fill        core.Color
	border      core.Color
}

// NewFood creates food at the board center. Callers relocate it before use.
func NewFood(rng *rand.Rand, maxAttempts int, fill, border core.Color) *Food {
	if maxAttempts <= 0 {
		maxAttempts = core.DefaultMaxFoodAttempts
	}
	return &Food{
		position:    core.Center(),
		rng:         rng,
		maxAttempts: maxAttempts,
		fill:        fill,
		border:      border,
	}
}

// Position returns the cell the food sits on.
func (f *Food) Position() core.Cell {
	return f.position
}

// Relocate moves the food to a uniformly random cell not in excluded.
//
// Sampling is capped at maxAttempts draws; after that the free cells are
// enumerated and one of them is picked, so a nearly full board still
// terminates. ErrBoardFull is returned when every cell is excluded.
func (f *Food) Relocate(excluded map[core.Cell]struct{}) error {
	for range f.maxAttempts {
		c := core.Cell{X: f.rng.Intn(core.GridWidth), Y: f.rng.Intn(core.GridHeight)}
		if _, taken := excluded[c]; !taken {
			f.position = c
			return nil
		}
	}

	free := make([]core.Cell, 0, core.Max(0, core.GridWidth*core.GridHeight-len(excluded)))
	for y := 0; y < core.GridHeight; y++ {
		for x := 0; x < core.GridWidth; x++ {
			c := core.Cell{X: x, Y: y}
			if _, taken := excluded[c]; !taken {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return ErrBoardFull
	}

	f.position = free[f.rng.Intn(len(free))]
	return nil
}

// Draw paints the food cell.
func (f *Food) Draw(dst Surface) error {
	return dst.DrawCell(f.position, core.CellSize, f.fill, f.border)
}
