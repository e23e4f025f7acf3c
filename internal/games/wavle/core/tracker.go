package core

import (
	"fmt"
	"math"
)

// Tracker owns the in-progress wave and the ordered history of submitted attempts.
type Tracker struct {
	defaultWave []Wave
	current     []Wave
	attempts    [][]Wave
	maxAttempts int
	pinned      bool // slot frequencies are fixed to the default wave
}

// NewTracker creates a tracker whose current wave starts as (and resets to)
// defaultWave. The slot count is len(defaultWave).
func NewTracker(defaultWave []Wave, maxAttempts int) (*Tracker, error) {
	if len(defaultWave) == 0 {
		return nil, fmt.Errorf("%w: slot count must be positive", ErrConfiguration)
	}
	if maxAttempts <= 0 {
		return nil, fmt.Errorf("%w: max attempts must be positive, got %d", ErrConfiguration, maxAttempts)
	}
	return &Tracker{
		defaultWave: CloneWaves(defaultWave),
		current:     CloneWaves(defaultWave),
		maxAttempts: maxAttempts,
	}, nil
}

// SlotCount returns the fixed length of the current wave.
func (t *Tracker) SlotCount() int {
	return len(t.defaultWave)
}

// MaxAttempts returns the submission cap.
func (t *Tracker) MaxAttempts() int {
	return t.maxAttempts
}

// Count returns the number of submitted attempts.
func (t *Tracker) Count() int {
	return len(t.attempts)
}

// Full reports whether the submission cap has been reached.
func (t *Tracker) Full() bool {
	return len(t.attempts) >= t.maxAttempts
}

// Current returns a copy of the in-progress wave.
func (t *Tracker) Current() []Wave {
	return CloneWaves(t.current)
}

// Slot returns one slot of the in-progress wave.
func (t *Tracker) Slot(slot int) (Wave, error) {
	if err := t.checkSlot(slot); err != nil {
		return Wave{}, err
	}
	return t.current[slot], nil
}

// Attempts returns copies of all submitted attempts in submission order.
func (t *Tracker) Attempts() [][]Wave {
	out := make([][]Wave, len(t.attempts))
	for i, a := range t.attempts {
		out[i] = CloneWaves(a)
	}
	return out
}

// Attempt returns a copy of one submitted attempt.
func (t *Tracker) Attempt(index int) ([]Wave, error) {
	if err := t.checkAttempt(index); err != nil {
		return nil, err
	}
	return CloneWaves(t.attempts[index]), nil
}

// Last returns the most recent attempt, or false if nothing was submitted.
func (t *Tracker) Last() ([]Wave, bool) {
	if len(t.attempts) == 0 {
		return nil, false
	}
	return CloneWaves(t.attempts[len(t.attempts)-1]), true
}

// PinFrequencies binds every slot to the frequency of the default wave.
// Later edits must keep that frequency.
func (t *Tracker) PinFrequencies() {
	t.pinned = true
}

// Update replaces one slot of the in-progress wave. The phase is stored in
// its canonical range.
func (t *Tracker) Update(slot int, w Wave) error {
	if err := t.checkSlot(slot); err != nil {
		return err
	}
	if err := t.checkWave(slot, w); err != nil {
		return err
	}
	t.current[slot] = w.WithPhase(w.Phase)
	return nil
}

// SetCurrent replaces the whole in-progress wave. The length must match the
// slot count and every slot must pass the same checks as Update.
func (t *Tracker) SetCurrent(waves []Wave) error {
	if len(waves) != len(t.defaultWave) {
		return fmt.Errorf("%w: wave has %d slots, want %d", ErrIndexOutOfRange, len(waves), len(t.defaultWave))
	}
	for i, w := range waves {
		if err := t.checkWave(i, w); err != nil {
			return err
		}
	}
	current := make([]Wave, len(waves))
	for i, w := range waves {
		current[i] = w.WithPhase(w.Phase)
	}
	t.current = current
	return nil
}

// ResetCurrent restores the in-progress wave to the default wave.
func (t *Tracker) ResetCurrent() {
	t.current = CloneWaves(t.defaultWave)
}

// Submit appends a snapshot of the current wave and resets it.
// It returns false, leaving the tracker untouched, when the cap is reached.
func (t *Tracker) Submit() bool {
	if t.Full() {
		return false
	}
	t.attempts = append(t.attempts, CloneWaves(t.current))
	t.ResetCurrent()
	return true
}

// Remove deletes the attempt at index; later attempts shift down by one.
func (t *Tracker) Remove(index int) error {
	if err := t.checkAttempt(index); err != nil {
		return err
	}
	t.attempts = append(t.attempts[:index], t.attempts[index+1:]...)
	return nil
}

func (t *Tracker) checkSlot(slot int) error {
	if slot < 0 || slot >= len(t.current) {
		return fmt.Errorf("%w: slot %d not in [0, %d)", ErrIndexOutOfRange, slot, len(t.current))
	}
	return nil
}

// checkWave rejects components a signal cannot be built from. Frequency 0 is
// allowed: it is the silent default slot.
func (t *Tracker) checkWave(slot int, w Wave) error {
	switch {
	case !finite(w.Amplitude) || w.Amplitude < 0:
		return fmt.Errorf("%w: slot %d amplitude %v", ErrInvalidWave, slot, w.Amplitude)
	case !finite(w.Frequency) || w.Frequency < 0:
		return fmt.Errorf("%w: slot %d frequency %v", ErrInvalidWave, slot, w.Frequency)
	case !finite(w.Phase):
		return fmt.Errorf("%w: slot %d phase %v", ErrInvalidWave, slot, w.Phase)
	case t.pinned && w.Frequency != t.defaultWave[slot].Frequency:
		return fmt.Errorf("%w: slot %d is fixed at frequency %v, got %v",
			ErrInvalidWave, slot, t.defaultWave[slot].Frequency, w.Frequency)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (t *Tracker) checkAttempt(index int) error {
	if index < 0 || index >= len(t.attempts) {
		return fmt.Errorf("%w: attempt %d not in [0, %d)", ErrIndexOutOfRange, index, len(t.attempts))
	}
	return nil
}
