package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

func updateMenu(t *testing.T, m DifficultyModel, msg tea.Msg) DifficultyModel {
	t.Helper()
	next, _ := m.Update(msg)
	dm, ok := next.(DifficultyModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return dm
}

func TestDifficultyMenuSelect(t *testing.T) {
	tests := []struct {
		name  string
		start config.DifficultyPreset
		keys  []tea.KeyMsg
		want  config.DifficultyPreset
	}{
		{"default", config.DifficultyNormal, nil, config.DifficultyNormal},
		{"down", config.DifficultyNormal, []tea.KeyMsg{{Type: tea.KeyDown}}, config.DifficultyHard},
		{"clamped at bottom", config.DifficultyHard, []tea.KeyMsg{{Type: tea.KeyDown}}, config.DifficultyHard},
		{"up twice", config.DifficultyHard, []tea.KeyMsg{runeKey("k"), runeKey("k")}, config.DifficultyEasy},
		{"clamped at top", config.DifficultyEasy, []tea.KeyMsg{{Type: tea.KeyUp}}, config.DifficultyEasy},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewDifficultyModel(nil, tc.start, 80, 24)
			for _, k := range tc.keys {
				m = updateMenu(t, m, k)
			}
			if _, ok := m.Selected(); ok {
				t.Fatal("nothing should be selected before enter")
			}

			m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			got, ok := m.Selected()
			if !ok || got != tc.want {
				t.Errorf("Selected() = %s, %v, expected %s", got, ok, tc.want)
			}
		})
	}
}

func TestDifficultyMenuQuit(t *testing.T) {
	m := NewDifficultyModel(nil, config.DifficultyNormal, 80, 24)
	m = updateMenu(t, m, runeKey("q"))
	if _, ok := m.Selected(); ok {
		t.Error("quit should not select")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestDifficultyMenuShowsBest(t *testing.T) {
	store := newScoreboardStore(t)
	m := NewDifficultyModel(store, config.DifficultyNormal, 100, 30)

	view := m.View()
	if !strings.Contains(view, "best 40") {
		t.Errorf("view should show the normal best score:\n%s", view)
	}
	for _, p := range config.Presets() {
		if !strings.Contains(view, p.Title()) {
			t.Errorf("view missing %s", p.Title())
		}
	}
}
