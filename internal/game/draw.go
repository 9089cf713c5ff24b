package game

import "github.com/vovakirdan/tui-snake/internal/core"

// Surface is the part of a display that entities draw onto.
type Surface interface {
	DrawCell(cell core.Cell, size int, fill, border core.Color) error
}

// Drawable is anything that can paint itself onto a Surface.
// Food and Snake share no state beyond having cells, so there is no base type.
type Drawable interface {
	Draw(dst Surface) error
}

var (
	_ Drawable = (*Food)(nil)
	_ Drawable = (*Snake)(nil)
)
