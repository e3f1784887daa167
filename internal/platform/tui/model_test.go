package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

func newTestModel(t *testing.T, w, h int) Model {
	t.Helper()
	return NewModel(Options{
		Config:  config.DefaultBreakoutConfig(),
		Seed:    7,
		Runtime: core.RuntimeConfig{ScreenW: w, ScreenH: h},
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestNewModelStartsPlaying(t *testing.T) {
	m := newTestModel(t, 80, 24)

	if m.Session().Phase() != breakout.PhasePlaying {
		t.Errorf("phase = %v, expected playing", m.Session().Phase())
	}
	if m.Session().Seed() != 7 {
		t.Errorf("seed = %d, expected 7", m.Session().Seed())
	}
	if m.Init() == nil {
		t.Error("Init should arm the tick")
	}
	if !strings.Contains(m.View(), "Score: 0") {
		t.Error("initial view should show the score line")
	}
}

func TestModelTickAdvancesSession(t *testing.T) {
	m := newTestModel(t, 80, 24)
	ball := m.Session().Ball()

	m, cmd := update(t, m, TickMsg{Handle: 1})
	if cmd == nil {
		t.Error("tick should re-arm while playing")
	}
	if m.Session().Ticks() != 1 {
		t.Errorf("ticks = %d, expected 1", m.Session().Ticks())
	}
	if m.Session().Ball() == ball {
		t.Error("ball did not move")
	}
}

func TestModelStaleTickIgnored(t *testing.T) {
	m := newTestModel(t, 80, 24)
	m, cmd := update(t, m, TickMsg{Handle: 99})
	if cmd != nil || m.Session().Ticks() != 0 {
		t.Error("tick for an unknown handle should be dropped")
	}
}

func TestModelPaddleFollowsKeys(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
		less bool
	}{
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, true},
		{"right", runeKey("d"), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestModel(t, 80, 24)
			start := m.Session().Paddle().X

			m, _ = update(t, m, tc.key)
			m, _ = update(t, m, TickMsg{Handle: 1})

			x := m.Session().Paddle().X
			if tc.less && x >= start {
				t.Errorf("paddle x = %v, expected < %v", x, start)
			}
			if !tc.less && x <= start {
				t.Errorf("paddle x = %v, expected > %v", x, start)
			}
		})
	}
}

func TestModelKeyReleasedAfterHold(t *testing.T) {
	tests := []struct {
		name    string
		presses int
		hold    func(config.BreakoutConfig) int
	}{
		{"single press", 1, config.BreakoutConfig.KeyFirstHoldTicks},
		{"auto-repeat", 2, config.BreakoutConfig.KeyHoldTicks},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestModel(t, 80, 24)
			hold := tc.hold(m.Session().Config())

			for range tc.presses {
				m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
			}
			for range hold - 1 {
				m, _ = update(t, m, TickMsg{Handle: 1})
			}
			if left, _ := m.latch.Pressed(); !left {
				t.Fatal("left released before the hold window ran out")
			}
			m, _ = update(t, m, TickMsg{Handle: 1})
			if left, _ := m.latch.Pressed(); left {
				t.Error("left still held after the hold window ran out")
			}
		})
	}
}

func TestModelRestartIgnoredWhilePlaying(t *testing.T) {
	m := newTestModel(t, 80, 24)
	s := m.Session()

	m, _ = update(t, m, runeKey("r"))
	if m.Session() != s {
		t.Error("restart replaced a running session")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, 80, 24)
	m, cmd := update(t, m, runeKey("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, 80, 24)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.Screen().Width() != 120 || m.Screen().Height() != 40 {
		t.Errorf("screen = %dx%d, expected 120x40", m.Screen().Width(), m.Screen().Height())
	}
	if !strings.HasPrefix(m.Screen().Row(0), " Score: 0") {
		t.Errorf("resize should repaint, row 0 = %q", m.Screen().Row(0))
	}
}

func TestModelPausedWhenTooSmall(t *testing.T) {
	m := newTestModel(t, 30, 10)

	m, cmd := update(t, m, TickMsg{Handle: 1})
	if cmd == nil {
		t.Error("tick should stay armed while paused")
	}
	if m.Session().Ticks() != 0 {
		t.Error("session advanced on a too-small screen")
	}
	if !strings.Contains(m.View(), "Terminal too small") {
		t.Error("expected the too-small notice")
	}
}

func TestModelReadsBestFromStore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	if err := store.SetBestScore("breakout_hard", 21); err != nil {
		t.Fatalf("set best: %v", err)
	}

	m := NewModel(Options{
		Config: config.DefaultBreakoutConfig(),
		Store:  store,
		GameID: "breakout_hard",
		Seed:   3,
	})
	if got := m.Session().Score().Best; got != 21 {
		t.Errorf("best = %d, expected 21", got)
	}
	if !strings.Contains(m.View(), "Best: 21") {
		t.Error("view should show the stored best score")
	}
}

func TestModelScreenshot(t *testing.T) {
	tests := []struct {
		name  string
		allow bool
		files int
	}{
		{"enabled", true, 1},
		{"disabled", false, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			home := t.TempDir()
			t.Setenv("HOME", home)

			m := NewModel(Options{
				Config:           config.DefaultBreakoutConfig(),
				Seed:             1,
				AllowScreenshots: tc.allow,
			})
			update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

			entries, _ := os.ReadDir(filepath.Join(home, ".arcade", "screenshots"))
			if len(entries) != tc.files {
				t.Errorf("screenshots = %d, expected %d", len(entries), tc.files)
			}
		})
	}
}
