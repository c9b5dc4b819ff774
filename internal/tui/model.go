// Package tui provides the Bubble Tea typing interface.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tapwords/internal/engine"
)

// Model adapts an Engine to Bubble Tea. The engine paints on the model's
// canvas; View shows the last flushed frame.
type Model struct {
	engine *engine.Engine
	canvas *Canvas
	keys   keyMap
	err    error
}

// NewModel constructs a typing TUI model. The canvas must be the sink the
// engine was created with.
func NewModel(e *engine.Engine, canvas *Canvas) *Model {
	return &Model{
		engine: e,
		canvas: canvas,
		keys:   defaultKeyMap(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if w, h := m.canvas.Size(); w != msg.Width || h != msg.Height {
			m.canvas.Resize(msg.Width, msg.Height)
		}
		if err := m.engine.Resize(msg.Width, msg.Height); err != nil {
			m.err = err
			return m, tea.Quit
		}
		return m, nil
	case tea.KeyMsg:
		for _, k := range m.keys.decode(msg) {
			action, err := m.engine.Handle(k)
			if err != nil {
				m.err = err
				return m, tea.Quit
			}
			if action == engine.ActionQuit {
				return m, tea.Quit
			}
		}
		return m, nil
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	return m.canvas.View()
}

// Err returns the error that stopped the program, if any.
func (m *Model) Err() error {
	return m.err
}
