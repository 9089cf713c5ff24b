package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRenderScreen(t *testing.T) {
	rd := asciiRenderer()
	s := core.NewScreen(4, 2)
	s.Paint(core.Cell{X: 1, Y: 0}, core.ColorSnake, core.ColorBorder)
	s.Paint(core.Cell{X: 2, Y: 0}, core.ColorSnake, core.ColorBorder)
	s.Paint(core.Cell{X: 3, Y: 1}, core.ColorFood, core.ColorBorder)

	got := rd.RenderScreen(s)
	expected := "  [][]  \n      []"
	if got != expected {
		t.Errorf("RenderScreen() =\n%q\nexpected\n%q", got, expected)
	}
}

func TestRenderFrameBorder(t *testing.T) {
	rd := asciiRenderer()
	s := core.NewScreen(core.GridWidth, core.GridHeight)

	out := rd.RenderFrame(s)
	lines := strings.Split(out, "\n")
	if len(lines) != BoardHeight {
		t.Errorf("frame has %d lines, expected %d", len(lines), BoardHeight)
	}
	if w := lipgloss.Width(out); w != BoardWidth {
		t.Errorf("frame width = %d, expected %d", w, BoardWidth)
	}
}

func TestRendererCachesStyles(t *testing.T) {
	rd := asciiRenderer()
	s := core.NewScreen(3, 3)
	s.Paint(core.Cell{X: 0, Y: 0}, core.ColorSnake, core.ColorBorder)
	s.Paint(core.Cell{X: 2, Y: 2}, core.ColorSnake, core.ColorBorder)

	rd.RenderScreen(s)
	// One style for empty cells, one for the snake
	if len(rd.styles) != 2 {
		t.Errorf("cached %d styles, expected 2", len(rd.styles))
	}
}
