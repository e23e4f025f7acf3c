package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wavle/internal/config"
	"github.com/vovakirdan/wavle/internal/core"
	"github.com/vovakirdan/wavle/internal/storage"
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// StatsSource provides the aggregate line shown under the menu.
type StatsSource interface {
	Stats() (*storage.Stats, error)
}

// MenuModel is the Bubble Tea model for the difficulty picker.
type MenuModel struct {
	items          []config.PresetInfo
	cursor         int
	slots          int // 0 keeps the configured wave count
	width          int
	height         int
	stats          *storage.Stats
	config         core.RuntimeConfig
	quitting       bool
	selected       *config.PresetInfo
	openScoreboard bool
}

// NewMenuModel creates a new menu model. store may be nil.
func NewMenuModel(store StatsSource, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		items:  config.Presets(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
	}
	if store != nil {
		if stats, err := store.Stats(); err == nil {
			m.stats = stats
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLess:
		if m.slots > 0 {
			m.slots--
			if m.slots < config.MinSlots {
				m.slots = 0
			}
		}

	case MenuActionMore:
		if m.slots < config.MaxSlots {
			m.slots = max(m.slots+1, config.MinSlots)
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("∿  W A V L E  ∿"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Rebuild the hidden wave from sine components", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %-7s %s", item.Preset, item.Description)
		if i == m.cursor {
			line = menuSelectedStyle.Render(fmt.Sprintf("> %-7s %s", item.Preset, item.Description))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Waves: < %s >", m.slotsLabel()), m.width))
	b.WriteString("\n\n")
	if m.stats != nil && m.stats.Games > 0 {
		summary := fmt.Sprintf("Played %d  |  won %d (%.0f%%)  |  best %d%%",
			m.stats.Games, m.stats.Wins, m.stats.WinRate()*100, m.stats.BestSimilarity)
		b.WriteString(centerText(menuDimStyle.Render(summary), m.width))
		b.WriteString("\n\n")
	}

	controls := "Up/Down: Navigate  |  Left/Right: Waves  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) slotsLabel() string {
	if m.slots == 0 {
		return "from config"
	}
	return fmt.Sprint(m.slots)
}

// Slots returns the picked wave count, or 0 to keep the configured one.
func (m MenuModel) Slots() int {
	return m.slots
}

// Selected returns the selected preset, or nil if none selected.
func (m MenuModel) Selected() *config.PresetInfo {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Preset          config.DifficultyPreset
	Slots           int // 0 keeps the configured wave count
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// Result converts the final menu state into a MenuResult.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{Config: m.config}
	switch {
	case m.openScoreboard:
		result.WantsScoreboard = true
	case m.quitting || m.selected == nil:
		result.Quit = true
	default:
		result.Preset = m.selected.Preset
		result.Slots = m.slots
	}
	return result
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	var stats StatsSource
	if store != nil {
		stats = store
	}
	model := NewMenuModel(stats, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
