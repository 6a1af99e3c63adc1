package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"flom/internal/convert"
	"flom/internal/core"
)

func testOptions() []convert.TargetOption {
	return []convert.TargetOption{
		{Key: "spotify", Label: "Spotify"},
		{Key: "appleMusic", Label: "Apple Music"},
		{Key: "tidal", Label: "Tidal"},
	}
}

func TestScriptedSelectByNumber(t *testing.T) {
	var out bytes.Buffer
	selector := NewScriptedSelector(strings.NewReader("2\n"), &out)

	chosen, err := selector.Select(testOptions())
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if chosen.Key != "appleMusic" {
		t.Errorf("chosen = %q, expected %q", chosen.Key, "appleMusic")
	}

	menu := out.String()
	if !strings.Contains(menu, "1) Spotify") || !strings.Contains(menu, "2) Apple Music") {
		t.Errorf("menu missing numbered options:\n%s", menu)
	}
}

func TestScriptedSelectByName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "By key", input: "tidal\n", expected: "tidal"},
		{name: "By label case-insensitive", input: "apple music\n", expected: "appleMusic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selector := NewScriptedSelector(strings.NewReader(tt.input), &bytes.Buffer{})
			chosen, err := selector.Select(testOptions())
			if err != nil {
				t.Fatalf("Select returned error: %v", err)
			}
			if chosen.Key != tt.expected {
				t.Errorf("chosen = %q, expected %q", chosen.Key, tt.expected)
			}
		})
	}
}

func TestScriptedSelectCancellation(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "EOF", input: ""},
		{name: "Blank line", input: "\n"},
		{name: "Out of range", input: "9\n"},
		{name: "Unknown name", input: "pandora\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selector := NewScriptedSelector(strings.NewReader(tt.input), &bytes.Buffer{})
			if _, err := selector.Select(testOptions()); !errors.Is(err, core.ErrNoSelection) {
				t.Errorf("expected ErrNoSelection, got %v", err)
			}
		})
	}
}

func keyPress(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func drive(t *testing.T, m pickerModel, keys ...string) pickerModel {
	t.Helper()

	for _, k := range keys {
		updated, _ := m.Update(keyPress(k))
		next, ok := updated.(pickerModel)
		if !ok {
			t.Fatalf("Update returned unexpected model type %T", updated)
		}
		m = next
	}
	return m
}

func TestPickerModelSelection(t *testing.T) {
	m := drive(t, newPickerModel(testOptions()), "down", "down", "enter")

	if !m.chosen {
		t.Fatal("expected model to record a choice")
	}
	if m.cursor != 2 {
		t.Errorf("cursor = %d, expected 2", m.cursor)
	}
}

func TestPickerModelCursorBounds(t *testing.T) {
	m := drive(t, newPickerModel(testOptions()), "up", "up")
	if m.cursor != 0 {
		t.Errorf("cursor moved above first option: %d", m.cursor)
	}

	m = drive(t, newPickerModel(testOptions()), "down", "down", "down", "down")
	if m.cursor != 2 {
		t.Errorf("cursor moved past last option: %d", m.cursor)
	}
}

func TestPickerModelCancel(t *testing.T) {
	m := drive(t, newPickerModel(testOptions()), "esc")

	if !m.cancelled {
		t.Fatal("expected esc to cancel")
	}
	if m.chosen {
		t.Error("cancelled model must not report a choice")
	}
}

func TestPickerModelView(t *testing.T) {
	m := newPickerModel(testOptions())

	view := m.View()
	for _, label := range []string{"Spotify", "Apple Music", "Tidal"} {
		if !strings.Contains(view, label) {
			t.Errorf("view missing option %q:\n%s", label, view)
		}
	}
}
