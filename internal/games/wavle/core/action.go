package core

// Action is one mutation of the game state. The set is closed: every change
// to an Engine goes through Engine.Apply with one of the types below.
type Action interface {
	isAction()
}

// InitializeGame starts a new game. If Target is nil a target is generated
// from Config; otherwise Target is used as given.
type InitializeGame struct {
	Config GameConfig
	Target []Wave
}

// UpdateSubWave replaces one slot of the current wave.
type UpdateSubWave struct {
	Slot int
	Wave Wave
}

// ReplaceWave replaces the whole current wave.
type ReplaceWave struct {
	Waves []Wave
}

// ResetWave restores the current wave to its default.
type ResetWave struct{}

// SubmitWave moves the current wave into the attempt history.
type SubmitWave struct{}

// RemoveAttempt deletes one attempt from the history.
type RemoveAttempt struct {
	Index int
}

func (InitializeGame) isAction() {}
func (UpdateSubWave) isAction()  {}
func (ReplaceWave) isAction()    {}
func (ResetWave) isAction()      {}
func (SubmitWave) isAction()     {}
func (RemoveAttempt) isAction()  {}

// Outcome describes the result of a successfully applied action.
type Outcome struct {
	// Accepted is false only for a SubmitWave that was rejected.
	Accepted bool

	// Score is the similarity of the submitted attempt for an accepted SubmitWave.
	Score int

	// Status is the game status after the action.
	Status Status

	// StatusChanged reports whether the action changed the status.
	StatusChanged bool
}
