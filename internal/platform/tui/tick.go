// Package tui runs the game inside a Bubble Tea program, locally or over SSH.
// The engine loop keeps its own goroutine and timing; the model only forwards
// keys to it and renders the frames it publishes.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// FrameMsg carries a frame presented by the loop.
type FrameMsg struct {
	Screen *core.Screen
}

// LoopDoneMsg is sent when the loop has returned.
type LoopDoneMsg struct {
	Err error
}

// waitForFrame returns a command that delivers the next published frame.
// It yields nothing once the display is closed.
func waitForFrame(d *Display) tea.Cmd {
	return func() tea.Msg {
		select {
		case s := <-d.Frames():
			return FrameMsg{Screen: s}
		case <-d.Done():
			return nil
		}
	}
}

// runLoop returns a command that runs the loop to completion.
func runLoop(run func() error) tea.Cmd {
	return func() tea.Msg {
		return LoopDoneMsg{Err: run()}
	}
}
