package core

import (
	"fmt"
	"math"
)

// StatusObserver is called after an action changes the game status.
type StatusObserver func(prev, next Status)

// Engine owns the state of one game session. Create one per session with New
// and hand it to whoever needs it; it is not safe for concurrent use.
// The zero value has no game: every action except InitializeGame fails with
// ErrConfiguration until one is started.
type Engine struct {
	cfg       GameConfig
	src       Source
	target    Target
	tracker   *Tracker
	status    Status
	observers []StatusObserver
}

// New validates cfg and starts a game with a target drawn from src.
func New(cfg GameConfig, src Source) (*Engine, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrConfiguration)
	}
	e := &Engine{src: src, status: StatusPlaying}
	if _, err := e.Apply(InitializeGame{Config: cfg}); err != nil {
		return nil, err
	}
	return e, nil
}

// NewWithTarget starts a game against a fixed target instead of a generated one.
func NewWithTarget(cfg GameConfig, src Source, target []Wave) (*Engine, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrConfiguration)
	}
	e := &Engine{src: src, status: StatusPlaying}
	if _, err := e.Apply(InitializeGame{Config: cfg, Target: target}); err != nil {
		return nil, err
	}
	return e, nil
}

// OnStatusChange registers an observer. Observers only hear about transitions,
// never about repeated reads of the same status.
func (e *Engine) OnStatusChange(fn StatusObserver) {
	if fn != nil {
		e.observers = append(e.observers, fn)
	}
}

// Apply performs one action. On error the state is left exactly as it was.
func (e *Engine) Apply(a Action) (Outcome, error) {
	if _, ok := a.(InitializeGame); !ok && e.tracker == nil {
		return Outcome{Status: StatusPlaying}, fmt.Errorf("%w: no game started, create the engine with New", ErrConfiguration)
	}
	out := Outcome{Accepted: true}

	var err error
	switch act := a.(type) {
	case InitializeGame:
		err = e.initialize(act)
	case UpdateSubWave:
		err = e.tracker.Update(act.Slot, act.Wave)
	case ReplaceWave:
		err = e.tracker.SetCurrent(act.Waves)
	case ResetWave:
		e.tracker.ResetCurrent()
	case SubmitWave:
		out.Accepted, out.Score = e.submit()
	case RemoveAttempt:
		err = e.tracker.Remove(act.Index)
	default:
		err = fmt.Errorf("%w: unknown action %T", ErrConfiguration, a)
	}
	if err != nil {
		return Outcome{Status: e.status}, err
	}

	prev := e.status
	e.status = e.Status()
	out.Status = e.status
	out.StatusChanged = prev != e.status
	if out.StatusChanged {
		for _, fn := range e.observers {
			fn(prev, e.status)
		}
	}
	return out, nil
}

func (e *Engine) initialize(act InitializeGame) error {
	cfg := act.Config
	if cfg.WinPolicy == "" {
		cfg.WinPolicy = WinPolicyContinue
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var target Target
	if act.Target != nil {
		if err := validateTarget(act.Target); err != nil {
			return err
		}
		waves := CloneWaves(act.Target)
		amps := make([]float64, len(waves))
		for i, w := range waves {
			amps[i] = w.Amplitude
		}
		target = Target{Waves: waves, Amplitudes: Amplitudes{Values: amps, CorrectedIndex: -1}}
	} else {
		if e.src == nil {
			return fmt.Errorf("%w: nil random source", ErrConfiguration)
		}
		generated, err := NewTargetGenerator(cfg).Generate(e.src, cfg.SlotCount)
		if err != nil {
			return err
		}
		target = generated
	}

	tracker, err := NewTracker(cfg.DefaultWave(), cfg.MaxAttempts)
	if err != nil {
		return err
	}
	if cfg.FrequencyMode == FrequencyFixedSlots {
		tracker.PinFrequencies()
	}

	cfg.AllowedFrequencies = append([]float64(nil), cfg.AllowedFrequencies...)
	e.cfg = cfg
	e.target = target
	e.tracker = tracker
	return nil
}

func validateTarget(waves []Wave) error {
	if len(waves) == 0 {
		return fmt.Errorf("%w: target wave is empty", ErrConfiguration)
	}
	for i, w := range waves {
		if w.Amplitude < 0 || w.Frequency <= 0 || math.IsNaN(w.Amplitude+w.Frequency+w.Phase) {
			return fmt.Errorf("%w: target component %d is invalid: %+v", ErrConfiguration, i, w)
		}
	}
	return nil
}

func (e *Engine) submit() (bool, int) {
	if e.cfg.WinPolicy == WinPolicyStop && e.Status() == StatusWin {
		return false, 0
	}
	if !e.tracker.Submit() {
		return false, 0
	}
	last, _ := e.tracker.Last()
	return true, Similarity(last, e.target.Waves)
}

// InitializeGame starts a new game with a freshly generated target and an
// empty attempt history.
func (e *Engine) InitializeGame(cfg GameConfig) error {
	_, err := e.Apply(InitializeGame{Config: cfg})
	return err
}

// UpdateCurrentSubWave replaces one slot of the current wave.
func (e *Engine) UpdateCurrentSubWave(slot int, w Wave) error {
	_, err := e.Apply(UpdateSubWave{Slot: slot, Wave: w})
	return err
}

// SetCurrentWave replaces every slot of the current wave at once.
func (e *Engine) SetCurrentWave(waves []Wave) error {
	_, err := e.Apply(ReplaceWave{Waves: waves})
	return err
}

// ResetCurrentWave restores the current wave to its default.
func (e *Engine) ResetCurrentWave() {
	//nolint:errcheck // fails only before a game is started
	e.Apply(ResetWave{})
}

// SubmitPlayerWave submits the current wave. It reports whether the attempt
// was accepted; a rejected attempt leaves the state untouched.
func (e *Engine) SubmitPlayerWave() bool {
	out, err := e.Apply(SubmitWave{})
	return err == nil && out.Accepted
}

// RemovePlayerWave deletes the attempt at index.
func (e *Engine) RemovePlayerWave(index int) error {
	_, err := e.Apply(RemoveAttempt{Index: index})
	return err
}

// Status resolves the current game status.
func (e *Engine) Status() Status {
	if e.tracker == nil {
		return StatusPlaying
	}
	return ResolveStatus(e.tracker.attempts, e.target.Waves, e.cfg.MaxAttempts)
}

// Config returns the configuration of the current game.
func (e *Engine) Config() GameConfig {
	cfg := e.cfg
	cfg.AllowedFrequencies = append([]float64(nil), e.cfg.AllowedFrequencies...)
	return cfg
}

// Target returns a copy of the target wave.
func (e *Engine) Target() []Wave {
	return CloneWaves(e.target.Waves)
}

// TargetAmplitudes returns how the target amplitudes were generated.
func (e *Engine) TargetAmplitudes() Amplitudes {
	a := e.target.Amplitudes
	a.Values = append([]float64(nil), a.Values...)
	return a
}

// TargetNormalized reports whether the target amplitudes sum to 1.
func (e *Engine) TargetNormalized() bool {
	return e.target.Normalized()
}

// CurrentWave returns a copy of the in-progress wave.
func (e *Engine) CurrentWave() []Wave {
	return e.tracker.Current()
}

// CurrentSubWave returns one slot of the in-progress wave.
func (e *Engine) CurrentSubWave(slot int) (Wave, error) {
	return e.tracker.Slot(slot)
}

// PlayerWaves returns copies of all submitted attempts.
func (e *Engine) PlayerWaves() [][]Wave {
	return e.tracker.Attempts()
}

// LastPlayerWave returns the latest attempt, or false before the first submission.
func (e *Engine) LastPlayerWave() ([]Wave, bool) {
	return e.tracker.Last()
}

// AttemptCount returns the number of submitted attempts.
func (e *Engine) AttemptCount() int {
	return e.tracker.Count()
}

// MaxAttempts returns the submission cap.
func (e *Engine) MaxAttempts() int {
	return e.cfg.MaxAttempts
}

// SlotCount returns the number of slots in the current wave.
func (e *Engine) SlotCount() int {
	return e.tracker.SlotCount()
}

// UsePhase reports whether phases are part of this game.
func (e *Engine) UsePhase() bool {
	return e.cfg.UsePhase
}

// Score returns the similarity of attempt index against the target.
func (e *Engine) Score(index int) (int, error) {
	attempt, err := e.tracker.Attempt(index)
	if err != nil {
		return 0, err
	}
	return Similarity(attempt, e.target.Waves), nil
}

// Scores returns the similarity of every attempt in submission order.
func (e *Engine) Scores() []int {
	scores := make([]int, 0, e.tracker.Count())
	for _, a := range e.tracker.attempts {
		scores = append(scores, Similarity(a, e.target.Waves))
	}
	return scores
}

// BestScore returns the highest attempt similarity, or false with no attempts.
func (e *Engine) BestScore() (int, bool) {
	scores := e.Scores()
	if len(scores) == 0 {
		return 0, false
	}
	best := scores[0]
	for _, s := range scores[1:] {
		best = max(best, s)
	}
	return best, true
}
