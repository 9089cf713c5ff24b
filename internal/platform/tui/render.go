package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Glyphs for one grid cell; each cell spans two terminal columns.
const (
	emptyGlyph  = "  "
	filledGlyph = "[]"
)

// Size of the rendered board in terminal cells, including the border.
const (
	BoardWidth  = core.GridWidth*2 + 2
	BoardHeight = core.GridHeight + 2
)

// Renderer turns frames into styled strings. Styles come from a
// lipgloss.Renderer so SSH sessions get their own color profile.
type Renderer struct {
	r      *lipgloss.Renderer
	styles map[core.Paint]lipgloss.Style
	frame  lipgloss.Style
}

// NewRenderer creates a renderer. A nil lipgloss renderer means the default
// one bound to stdout.
func NewRenderer(r *lipgloss.Renderer, palette core.Palette) *Renderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Renderer{
		r:      r,
		styles: make(map[core.Paint]lipgloss.Style),
		frame: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(palette.Border.Hex())),
	}
}

func (rd *Renderer) style(p core.Paint) lipgloss.Style {
	if s, ok := rd.styles[p]; ok {
		return s
	}
	s := rd.r.NewStyle().Background(lipgloss.Color(p.Fill.Hex()))
	if p.Filled {
		s = s.Foreground(lipgloss.Color(p.Border.Hex()))
	}
	rd.styles[p] = s
	return s
}

// RenderScreen converts a frame to a styled string. Adjacent cells with the
// same paint are grouped to keep escape sequences down.
func (rd *Renderer) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2*len(filledGlyph) + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := paintAt(s, x, y)

			var run strings.Builder
			for x < s.Width() {
				p := paintAt(s, x, y)
				if p != start {
					break
				}
				if p.Filled {
					run.WriteString(filledGlyph)
				} else {
					run.WriteString(emptyGlyph)
				}
				x++
			}
			sb.WriteString(rd.style(start).Render(run.String()))
		}
	}
	return sb.String()
}

// paintAt returns the paint of a cell, with the screen background as the
// fill of empty cells.
func paintAt(s *core.Screen, x, y int) core.Paint {
	p := s.At(core.Cell{X: x, Y: y})
	if !p.Filled {
		return core.Paint{Fill: s.Background()}
	}
	return p
}

// RenderFrame renders the board inside a border.
func (rd *Renderer) RenderFrame(s *core.Screen) string {
	return rd.frame.Render(rd.RenderScreen(s))
}
