package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wavle/internal/core"
)

// PlayKeyMap defines the key bindings of the game screen.
type PlayKeyMap struct {
	SlotPrev     key.Binding
	SlotNext     key.Binding
	FieldUp      key.Binding
	FieldDown    key.Binding
	Increase     key.Binding
	Decrease     key.Binding
	IncreaseFast key.Binding
	DecreaseFast key.Binding
	Submit       key.Binding
	ResetWave    key.Binding
	Restart      key.Binding
	Pause        key.Binding
	Screenshot   key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PlayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SlotNext, k.FieldDown, k.Increase, k.Decrease, k.Submit, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PlayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SlotPrev, k.SlotNext, k.FieldUp, k.FieldDown},
		{k.Increase, k.Decrease, k.IncreaseFast, k.DecreaseFast},
		{k.Submit, k.ResetWave, k.Restart, k.Pause},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultPlayKeyMap returns default key bindings.
func DefaultPlayKeyMap() PlayKeyMap {
	return PlayKeyMap{
		SlotPrev: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", "prev slot"),
		),
		SlotNext: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "next slot"),
		),
		FieldUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev field"),
		),
		FieldDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next field"),
		),
		Increase: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "raise"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "lower"),
		),
		IncreaseFast: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "raise x10"),
		),
		DecreaseFast: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "lower x10"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "submit"),
		),
		ResetWave: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear wave"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new wave"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message into a game action.
// Quit, Help and Screenshot are handled by the model and map to ActionNone.
func (k PlayKeyMap) Action(msg tea.KeyMsg) core.Action {
	bindings := []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.SlotPrev, core.ActionSlotPrev},
		{k.SlotNext, core.ActionSlotNext},
		{k.FieldUp, core.ActionFieldUp},
		{k.FieldDown, core.ActionFieldDown},
		{k.Increase, core.ActionIncrease},
		{k.Decrease, core.ActionDecrease},
		{k.IncreaseFast, core.ActionIncreaseFast},
		{k.DecreaseFast, core.ActionDecreaseFast},
		{k.Submit, core.ActionSubmit},
		{k.ResetWave, core.ActionResetWave},
		{k.Restart, core.ActionRestart},
		{k.Pause, core.ActionPause},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionLess
	MenuActionMore
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "left", "h", "a", "-":
		return MenuActionLess
	case "right", "l", "d", "+":
		return MenuActionMore
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
