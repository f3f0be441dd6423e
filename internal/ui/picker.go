package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/statable/internal/anim"
)

// StateSelectedMsg is emitted when the picker commits a state.
type StateSelectedMsg struct {
	State anim.State
}

// pickerKeyMap defines key bindings for the state picker.
type pickerKeyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Select key.Binding
	Jump   key.Binding
}

func (k pickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Select, k.Jump}
}

func (k pickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var pickerKeys = pickerKeyMap{
	Prev: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "prev"),
	),
	Next: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "apply"),
	),
	Jump: key.NewBinding(
		key.WithKeys("1", "2", "3"),
		key.WithHelp("1-3", "jump"),
	),
}

// Picker is a segmented control over anim.States().
type Picker struct {
	states   []anim.State
	cursor   int
	selected anim.State
	help     help.Model
}

// NewPicker creates a picker with selected highlighted.
func NewPicker(selected anim.State) Picker {
	p := Picker{
		states:   anim.States(),
		selected: selected,
		help:     help.New(),
	}
	for i, s := range p.states {
		if s == selected {
			p.cursor = i
		}
	}
	return p
}

// Init implements the component contract; the picker needs no startup command.
func (p Picker) Init() tea.Cmd {
	return nil
}

// Update moves the cursor and commits selections.
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch {
	case key.Matches(keyMsg, pickerKeys.Prev):
		p.cursor = (p.cursor + len(p.states) - 1) % len(p.states)
	case key.Matches(keyMsg, pickerKeys.Next):
		p.cursor = (p.cursor + 1) % len(p.states)
	case key.Matches(keyMsg, pickerKeys.Select):
		return p.commit()
	case key.Matches(keyMsg, pickerKeys.Jump):
		p.cursor = int(keyMsg.Runes[0] - '1')
		return p.commit()
	}
	return p, nil
}

func (p Picker) commit() (Picker, tea.Cmd) {
	p.selected = p.states[p.cursor]
	selected := p.selected
	return p, func() tea.Msg { return StateSelectedMsg{State: selected} }
}

// Selected returns the last committed state.
func (p Picker) Selected() anim.State {
	return p.selected
}

// Cursor returns the state under the cursor.
func (p Picker) Cursor() anim.State {
	return p.states[p.cursor]
}

// Select moves both cursor and selection to s without emitting a message.
// Used when the state changes from outside the picker.
func (p *Picker) Select(s anim.State) {
	for i, st := range p.states {
		if st == s {
			p.cursor = i
			p.selected = s
		}
	}
}

// View renders the segments and a help line.
func (p Picker) View() string {
	base := lipgloss.NewStyle().Padding(0, 2)
	active := base.
		Foreground(ColorPrimary).
		Background(ColorSecondary).
		Bold(true)
	inactive := base.Foreground(ColorMuted)
	divider := lipgloss.NewStyle().Foreground(ColorMuted).Render("│")

	segments := make([]string, len(p.states))
	for i, s := range p.states {
		style := inactive
		if s == p.selected {
			style = active
		}
		if i == p.cursor {
			style = style.Underline(true)
		}
		segments[i] = style.Render(s.String())
	}

	return strings.Join(segments, divider) + "\n" + p.help.ShortHelpView(pickerKeys.ShortHelp())
}
