package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wavle/internal/core"
	"github.com/vovakirdan/wavle/internal/games/wavle"
	engine "github.com/vovakirdan/wavle/internal/games/wavle/core"
	"github.com/vovakirdan/wavle/internal/storage"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// ResultSaver records finished rounds. *storage.Store implements it.
type ResultSaver interface {
	SaveResult(storage.Result) (int64, error)
}

// Model is the Bubble Tea model for a wavle session.
type Model struct {
	game        *wavle.Game
	screen      *core.Screen
	store       ResultSaver
	logger      *log.Logger
	config      core.RuntimeConfig
	keys        PlayKeyMap
	help        help.Model
	inputFrame  core.InputFrame
	gameState   core.GameState
	quitting    bool
	resultSaved bool // Whether the current round has been recorded
}

// NewModel creates a model for a game that has already been Reset.
func NewModel(game *wavle.Game, store ResultSaver, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	h := help.New()
	h.ShowAll = false

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		store:      store,
		logger:     logger,
		config:     cfg,
		keys:       DefaultPlayKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// fitScreen sizes the game screen to the terminal minus the help bar.
func (m *Model) fitScreen() {
	helpLines := 1
	if m.help.ShowAll {
		for _, col := range m.keys.FullHelp() {
			helpLines = max(helpLines, len(col))
		}
	}
	m.screen.Resize(m.config.ScreenW, max(m.config.ScreenH-helpLines, 1))
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.recordResult(true)
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.fitScreen()
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	m.inputFrame.Set(m.keys.Action(msg))
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.fitScreen()
	m.game.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	restarting := m.inputFrame.Has(core.ActionRestart)
	if restarting {
		// A won round under the continue policy is only final once the player moves on.
		m.recordResult(true)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if restarting {
		m.resultSaved = false
	}

	if m.gameState.GameOver {
		m.recordResult(false)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordResult saves the current round once. Without force only rounds that
// accept no more submissions are recorded; with force a won round also counts.
func (m *Model) recordResult(force bool) {
	if m.resultSaved || m.store == nil {
		return
	}
	sum := m.game.Summary()

	var outcome string
	switch {
	case m.game.Finished():
		outcome = string(sum.Status)
	case force && sum.Status == engine.StatusWin:
		outcome = storage.OutcomeWin
	default:
		return
	}

	_, err := m.store.SaveResult(storage.Result{
		Outcome:        outcome,
		Attempts:       sum.Attempts,
		MaxAttempts:    sum.MaxAttempts,
		BestSimilarity: sum.BestScore,
		FrequencyMode:  string(sum.Mode),
		UsePhase:       sum.UsePhase,
		SlotCount:      sum.SlotCount,
		Seed:           sum.Seed,
		Round:          sum.Round,
	})
	if err != nil {
		m.logger.Error("could not save result", "error", err)
	} else {
		m.logger.Info("result saved", "outcome", outcome, "best", sum.BestScore, "attempts", sum.Attempts)
	}
	m.resultSaved = true
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".wavle", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run resets the game and runs it until the player quits.
func Run(game *wavle.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := game.Reset(cfg); err != nil {
		return err
	}

	var saver ResultSaver
	if store != nil {
		saver = store
	}
	model := NewModel(game, saver, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
