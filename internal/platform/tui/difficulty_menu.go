package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// Short descriptions shown next to each preset.
var presetNotes = map[config.DifficultyPreset]string{
	config.DifficultyEasy:   "wide paddle, slow ball",
	config.DifficultyNormal: "as configured",
	config.DifficultyHard:   "narrow paddle, fast ball",
}

type menuKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func defaultMenuKeys() menuKeys {
	return menuKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k", "w")),
		Down:   key.NewBinding(key.WithKeys("down", "j", "s")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// DifficultyModel lets users choose a difficulty preset before playing.
type DifficultyModel struct {
	presets  []config.DifficultyPreset
	best     map[config.DifficultyPreset]int
	cursor   int
	width    int
	height   int
	keys     menuKeys
	selected bool
	quitting bool
}

// NewDifficultyModel creates a picker opened on the given preset. Best
// scores are shown when a store is available.
func NewDifficultyModel(store *storage.Store, preset config.DifficultyPreset, width, height int) DifficultyModel {
	m := DifficultyModel{
		presets: config.Presets(),
		best:    make(map[config.DifficultyPreset]int),
		width:   width,
		height:  height,
		keys:    defaultMenuKeys(),
	}
	for i, p := range m.presets {
		if p == preset {
			m.cursor = i
		}
		if store != nil {
			if best, err := store.BestScore(p.GameID()); err == nil {
				m.best[p] = best
			}
		}
	}
	return m
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.presets)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			m.selected = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the preset list.
func (m DifficultyModel) View() string {
	if m.quitting || m.selected {
		return ""
	}

	var b strings.Builder
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	// Vertically center the menu block
	top := max((m.height-len(m.presets)-8)/2, 1)
	b.WriteString(strings.Repeat("\n", top))
	b.WriteString(centerText(titleStyle.Render("B R E A K O U T"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, p := range m.presets {
		line := fmt.Sprintf("%-7s %-26s best %d", p.Title(), presetNotes[p], m.best[p])
		if i == m.cursor {
			line = activeStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Enter: Play  |  Q/Esc: Quit"), m.width))

	return b.String()
}

// Selected returns the chosen preset and whether one was chosen.
func (m DifficultyModel) Selected() (config.DifficultyPreset, bool) {
	if !m.selected {
		return "", false
	}
	return m.presets[m.cursor], true
}

// RunDifficultyMenu shows the picker. ok is false when the user quit.
func RunDifficultyMenu(store *storage.Store, preset config.DifficultyPreset, width, height int) (config.DifficultyPreset, bool, error) {
	p := tea.NewProgram(
		NewDifficultyModel(store, preset, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, ok := finalModel.(DifficultyModel)
	if !ok {
		return "", false, nil
	}
	chosen, ok := m.Selected()
	return chosen, ok, nil
}
