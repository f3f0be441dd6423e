// Package demo is the interactive Bubble Tea program: a loader above a
// segmented state picker. Picking a state drives the loader through its
// controller.
package demo

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/statable/internal/anim"
	"github.com/rileyhilliard/statable/internal/ui"
)

// traceWidth is the number of angle samples shown under the loader.
const traceWidth = 32

// Model composes the loader and the picker.
type Model struct {
	loader   *ui.Loader
	picker   ui.Picker
	help     help.Model
	quitting bool
}

// NewModel wraps loader with a picker showing its current state.
func NewModel(loader *ui.Loader) Model {
	return Model{
		loader: loader,
		picker: ui.NewPicker(loader.State()),
		help:   help.New(),
	}
}

// Init starts the loader's frames if it is already spinning.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loader.Init(), m.picker.Init())
}

// Update routes keys, picker selections and loader frames.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.Toggle):
			next := anim.Spinning
			if m.loader.State() == anim.Spinning {
				next = anim.Paused
			}
			return m.apply(next)
		case key.Matches(msg, keys.Stop):
			return m.apply(anim.Stopped)
		}
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd

	case ui.StateSelectedMsg:
		return m.apply(msg.State)

	case ui.FrameMsg:
		return m, m.loader.Update(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m Model) apply(s anim.State) (tea.Model, tea.Cmd) {
	m.picker.Select(s)
	return m, m.loader.SetState(s)
}

// View stacks the loader, the picker and the key hints.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.loader.View(),
			ui.RenderSparkline(m.loader.Trace(), traceWidth, ui.StateColor(m.loader.State().String())),
			"",
			m.picker.View(),
			m.help.ShortHelpView(keys.ShortHelp()),
		),
	)
}

// State returns the loader's current state.
func (m Model) State() anim.State {
	return m.loader.State()
}
