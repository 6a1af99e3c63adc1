// Package prompt implements the interactive target selection. The selection is
// the only suspension point in the whole tool, kept behind the
// convert.Selector interface so tests can script it.
package prompt

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"flom/internal/convert"
	"flom/internal/core"
)

type keyMap struct {
	Up, Down, Enter, Quit key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "cancel")),
	}
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type pickerModel struct {
	options   []convert.TargetOption
	keys      keyMap
	cursor    int
	chosen    bool
	cancelled bool
}

func newPickerModel(options []convert.TargetOption) pickerModel {
	return pickerModel{
		options: options,
		keys:    defaultKeys(),
	}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Enter):
		m.chosen = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Quit):
		m.cancelled = true
		return m, tea.Quit
	}

	return m, nil
}

func (m pickerModel) View() string {
	if m.chosen || m.cancelled {
		return ""
	}

	s := titleStyle.Render("Select target platform") + "\n"
	for i, opt := range m.options {
		if i == m.cursor {
			s += selectedStyle.Render("▸ "+opt.Label) + "\n"
		} else {
			s += "  " + opt.Label + "\n"
		}
	}
	s += helpStyle.Render("↑/↓ move · enter select · q cancel") + "\n"
	return s
}

// Picker is the interactive convert.Selector used when stdin is a terminal.
type Picker struct{}

// NewPicker creates an interactive picker.
func NewPicker() *Picker {
	return &Picker{}
}

// Select runs the picker and returns the chosen option. Cancelling (q, esc,
// ctrl+c) is ErrNoSelection.
func (p *Picker) Select(options []convert.TargetOption) (convert.TargetOption, error) {
	if len(options) == 0 {
		return convert.TargetOption{}, core.ErrNoSelection
	}

	// The picker renders on stderr so stdout stays clean for results.
	program := tea.NewProgram(newPickerModel(options), tea.WithOutput(os.Stderr))
	final, err := program.Run()
	if err != nil {
		return convert.TargetOption{}, fmt.Errorf("%w: %v", core.ErrNoSelection, err)
	}

	m, ok := final.(pickerModel)
	if !ok || !m.chosen {
		return convert.TargetOption{}, core.ErrNoSelection
	}
	return m.options[m.cursor], nil
}
