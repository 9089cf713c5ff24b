package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Model is the Bubble Tea model for one game session. The game itself runs
// in the engine loop; the model starts it, feeds it keys and shows the
// frames it presents.
type Model struct {
	display  *Display
	run      func() error
	keys     KeyMap
	help     help.Model
	renderer *Renderer
	frame    *core.Screen
	err      error
	done     bool
}

// NewModel creates a model. run must drive an engine loop on d and return
// when the loop ends.
func NewModel(d *Display, run func() error, r *Renderer) Model {
	return Model{
		display:  d,
		run:      run,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		renderer: r,
	}
}

// Init starts the loop and waits for its first frame.
func (m Model) Init() tea.Cmd {
	return tea.Batch(runLoop(m.run), waitForFrame(m.display))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		m.frame = msg.Screen
		return m, waitForFrame(m.display)

	case LoopDoneMsg:
		m.done = true
		m.err = msg.Err
		return m, tea.Quit
	}

	return m, nil
}

// handleKey forwards keys to the loop.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	ev, ok := m.keys.MapKey(msg)
	if !ok {
		return m, nil
	}
	if m.done {
		// Loop already gone, nothing left to tell it
		if ev.Kind == core.EventQuit {
			return m, tea.Quit
		}
		return m, nil
	}
	m.display.Push(ev)
	return m, nil
}

// View renders the latest frame with the help footer.
func (m Model) View() string {
	if m.done {
		return ""
	}
	if m.frame == nil {
		return "starting..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderer.RenderFrame(m.frame),
		m.help.View(m.keys),
	)
}

// Done reports whether the loop has returned.
func (m Model) Done() bool {
	return m.done
}

// Err returns the loop's error, if it ended with one.
func (m Model) Err() error {
	return m.err
}

// Run plays one game in the local terminal and returns the loop's error.
func Run(d *Display, run func() error, palette core.Palette) error {
	model := NewModel(d, run, NewRenderer(nil, palette))

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		d.Push(core.QuitEvent())
		return err
	}
	if m, ok := final.(Model); ok {
		if !m.Done() {
			d.Push(core.QuitEvent())
		}
		return m.Err()
	}
	return nil
}
