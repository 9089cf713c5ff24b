package core

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit RGB color used for painting board cells.
// Backends convert it to whatever their surface needs (hex for lipgloss,
// RGB for tcell and raylib).
type Color struct {
	R, G, B uint8
}

// Predefined colors for game elements.
var (
	ColorBackground = Color{R: 0, G: 0, B: 0}
	ColorBorder     = Color{R: 93, G: 216, B: 228}
	ColorFood       = Color{R: 255, G: 0, B: 0}
	ColorSnake      = Color{R: 0, G: 255, B: 0}
)

// ParseColor parses a "#rrggbb" hex string.
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// Hex returns the color as a lowercase "#rrggbb" string.
func (c Color) Hex() string {
	return c.colorful().Hex()
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// Palette groups the colors a frame is painted with.
type Palette struct {
	Background Color
	Border     Color
	Food       Color
	Snake      Color
}

// DefaultPalette returns the classic black board with a green snake and red food.
func DefaultPalette() Palette {
	return Palette{
		Background: ColorBackground,
		Border:     ColorBorder,
		Food:       ColorFood,
		Snake:      ColorSnake,
	}
}
