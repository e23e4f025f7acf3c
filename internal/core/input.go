package core

// Action is a semantic input intent, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionSlotPrev         // Left, H - previous wave slot
	ActionSlotNext         // Right, L, Tab - next wave slot
	ActionFieldUp          // Up, K - previous field of the slot
	ActionFieldDown        // Down, J - next field of the slot
	ActionIncrease         // +, = - raise the selected field by one step
	ActionDecrease         // -, _ - lower the selected field by one step
	ActionIncreaseFast     // ] - raise by ten steps
	ActionDecreaseFast     // [ - lower by ten steps
	ActionSubmit           // Enter, Space - submit the current wave
	ActionResetWave        // X - clear the current wave back to its default
	ActionRestart          // R - start a new game
	ActionPause            // P - freeze the animation
	ActionQuit             // Q, Ctrl+C
)

var actionNames = map[Action]string{
	ActionNone:         "None",
	ActionSlotPrev:     "SlotPrev",
	ActionSlotNext:     "SlotNext",
	ActionFieldUp:      "FieldUp",
	ActionFieldDown:    "FieldDown",
	ActionIncrease:     "Increase",
	ActionDecrease:     "Decrease",
	ActionIncreaseFast: "IncreaseFast",
	ActionDecreaseFast: "DecreaseFast",
	ActionSubmit:       "Submit",
	ActionResetWave:    "ResetWave",
	ActionRestart:      "Restart",
	ActionPause:        "Pause",
	ActionQuit:         "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame collects the actions triggered during one frame.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
