// Package wavle is the terminal front of the wave-matching game: it turns
// input frames into engine actions and draws the waves into a core.Screen.
package wavle

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wavle/internal/config"
	"github.com/vovakirdan/wavle/internal/core"
	engine "github.com/vovakirdan/wavle/internal/games/wavle/core"
)

// GameID identifies wavle results in the scores database.
const GameID = "wavle"

// Field is the editable property of a slot under the cursor.
type Field int

const (
	FieldAmplitude Field = iota
	FieldFrequency
	FieldPhase
)

func (f Field) String() string {
	switch f {
	case FieldAmplitude:
		return "amplitude"
	case FieldFrequency:
		return "frequency"
	case FieldPhase:
		return "phase"
	default:
		return "unknown"
	}
}

// Slider bounds of the wave editor.
const (
	maxAmplitude = 1.0
	maxPhase     = 6.28
	fastFactor   = 10
	messageTTL   = 90 // frames a status message stays visible
)

// Game runs rounds of wavle against one engine.
type Game struct {
	cfg     config.WavleConfig
	gameCfg engine.GameConfig
	logger  *log.Logger

	eng   *engine.Engine
	seed  int64
	round int
	frame uint64

	slot   int
	field  Field
	offset float64 // animation phase added to the plot
	paused bool

	message    string
	messageTTL int

	screenW int
	screenH int
}

// New validates cfg and creates a game. A nil logger discards output.
func New(cfg config.WavleConfig, logger *log.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	gc, err := cfg.GameConfig()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		cfg:     cfg,
		gameCfg: gc,
		logger:  logger,
	}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Wavle"
}

// Reset starts a fresh session seeded from cfg.Seed. The target sequence of
// later rounds is fully determined by that seed.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	eng, err := engine.New(g.gameCfg, engine.NewSource(cfg.Seed))
	if err != nil {
		return fmt.Errorf("wavle: cannot start game: %w", err)
	}
	eng.OnStatusChange(g.logStatus)

	g.eng = eng
	g.seed = cfg.Seed
	g.round = 1
	g.frame = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.resetRound()

	g.logger.Info("game started",
		"seed", g.seed,
		"mode", g.gameCfg.FrequencyMode,
		"phase", g.gameCfg.UsePhase,
		"slots", g.gameCfg.SlotCount,
		"attempts", g.gameCfg.MaxAttempts,
	)
	return nil
}

// Resize updates the screen dimensions without touching the round.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
}

// Restart begins a new round with the same settings and random stream.
func (g *Game) Restart() error {
	if err := g.eng.InitializeGame(g.gameCfg); err != nil {
		return fmt.Errorf("wavle: cannot restart: %w", err)
	}
	g.round++
	g.resetRound()
	g.logger.Info("round started", "round", g.round)
	return nil
}

func (g *Game) resetRound() {
	g.slot = 0
	g.field = FieldAmplitude
	g.offset = 0
	g.paused = false
	g.message = ""
	g.messageTTL = 0
}

func (g *Game) logStatus(prev, next engine.Status) {
	best, _ := g.eng.BestScore()
	g.logger.Info("status changed",
		"round", g.round,
		"from", prev,
		"to", next,
		"attempts", g.eng.AttemptCount(),
		"best", best,
	)
}

// Step advances one frame.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.frame++
	var result core.StepResult

	if input.Has(core.ActionRestart) {
		if err := g.Restart(); err != nil {
			g.logger.Error("restart failed", "error", err)
			g.say(err.Error())
		}
		result.State = g.State()
		return result
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	switch {
	case input.Has(core.ActionSlotPrev):
		g.slot = (g.slot - 1 + g.eng.SlotCount()) % g.eng.SlotCount()
	case input.Has(core.ActionSlotNext):
		g.slot = (g.slot + 1) % g.eng.SlotCount()
	}

	fields := g.Fields()
	switch {
	case input.Has(core.ActionFieldUp):
		g.field = fields[(g.fieldIndex()-1+len(fields))%len(fields)]
	case input.Has(core.ActionFieldDown):
		g.field = fields[(g.fieldIndex()+1)%len(fields)]
	}

	switch {
	case input.Has(core.ActionIncrease):
		g.adjust(1)
	case input.Has(core.ActionDecrease):
		g.adjust(-1)
	case input.Has(core.ActionIncreaseFast):
		g.adjust(fastFactor)
	case input.Has(core.ActionDecreaseFast):
		g.adjust(-fastFactor)
	}

	if input.Has(core.ActionResetWave) {
		g.eng.ResetCurrentWave()
		g.say("Wave cleared")
	}

	if input.Has(core.ActionSubmit) {
		result.Submitted, result.Score = g.submit()
	}

	if g.cfg.Render.Animate && !g.paused {
		g.offset += g.cfg.Render.TimeStep
	}
	if g.messageTTL > 0 {
		g.messageTTL--
		if g.messageTTL == 0 {
			g.message = ""
		}
	}

	result.State = g.State()
	return result
}

// Fields lists the editable fields. Fixed slots keep their frequency, and
// phase only exists when phases are in play.
func (g *Game) Fields() []Field {
	fields := []Field{FieldAmplitude}
	if g.gameCfg.FrequencyMode != engine.FrequencyFixedSlots {
		fields = append(fields, FieldFrequency)
	}
	if g.gameCfg.UsePhase {
		fields = append(fields, FieldPhase)
	}
	return fields
}

func (g *Game) fieldIndex() int {
	for i, f := range g.Fields() {
		if f == g.field {
			return i
		}
	}
	return 0
}

// adjust moves the selected field by steps increments of its slider step.
func (g *Game) adjust(steps int) {
	w, err := g.eng.CurrentSubWave(g.slot)
	if err != nil {
		return
	}
	ctl := g.cfg.Controls
	switch g.field {
	case FieldAmplitude:
		d := float64(steps) * ctl.AmplitudeStep
		w = w.WithAmplitude(core.StepF(w.Amplitude, d, ctl.AmplitudeStep, 0, maxAmplitude))
	case FieldFrequency:
		d := float64(steps) * ctl.FrequencyStep
		w = w.WithFrequency(core.StepF(w.Frequency, d, ctl.FrequencyStep, 0, ctl.MaxFrequency))
	case FieldPhase:
		d := float64(steps) * ctl.PhaseStep
		w = w.WithPhase(core.StepF(w.Phase, d, ctl.PhaseStep, 0, maxPhase))
	}
	if err := g.eng.UpdateCurrentSubWave(g.slot, w); err != nil {
		g.logger.Warn("slot update rejected", "slot", g.slot, "error", err)
	}
}

func (g *Game) submit() (bool, int) {
	out, err := g.eng.Apply(engine.SubmitWave{})
	if err != nil {
		g.logger.Error("submit failed", "error", err)
		return false, 0
	}
	if !out.Accepted {
		if out.Status == engine.StatusWin {
			g.say("Already matched - press R for a new wave")
		} else {
			g.say("No attempts left - press R for a new wave")
		}
		g.logger.Debug("submit rejected", "status", out.Status, "attempts", g.eng.AttemptCount())
		return false, 0
	}

	g.logger.Debug("attempt submitted",
		"round", g.round,
		"attempt", g.eng.AttemptCount(),
		"score", out.Score,
	)
	g.say(fmt.Sprintf("Attempt %d: %d%% similar", g.eng.AttemptCount(), out.Score))
	return true, out.Score
}

func (g *Game) say(msg string) {
	g.message = msg
	g.messageTTL = messageTTL
}

// Finished reports whether the round accepts no more submissions.
func (g *Game) Finished() bool {
	switch g.eng.Status() {
	case engine.StatusLose:
		return true
	case engine.StatusWin:
		return g.gameCfg.WinPolicy == engine.WinPolicyStop || g.eng.AttemptCount() >= g.eng.MaxAttempts()
	default:
		return false
	}
}

// State returns the current game state for the platform.
func (g *Game) State() core.GameState {
	best, _ := g.eng.BestScore()
	status := g.eng.Status()
	return core.GameState{
		Score:       best,
		Attempts:    g.eng.AttemptCount(),
		MaxAttempts: g.eng.MaxAttempts(),
		GameOver:    g.Finished(),
		Won:         status == engine.StatusWin,
		Paused:      g.paused,
	}
}

// Summary describes the current round for the results table.
type Summary struct {
	Status      engine.Status
	Attempts    int
	MaxAttempts int
	BestScore   int
	Mode        engine.FrequencyMode
	UsePhase    bool
	SlotCount   int
	Seed        int64
	Round       int
}

// Summary returns the round outcome so far.
func (g *Game) Summary() Summary {
	best, _ := g.eng.BestScore()
	return Summary{
		Status:      g.eng.Status(),
		Attempts:    g.eng.AttemptCount(),
		MaxAttempts: g.eng.MaxAttempts(),
		BestScore:   best,
		Mode:        g.gameCfg.FrequencyMode,
		UsePhase:    g.gameCfg.UsePhase,
		SlotCount:   g.eng.SlotCount(),
		Seed:        g.seed,
		Round:       g.round,
	}
}

// Engine exposes the underlying engine.
func (g *Game) Engine() *engine.Engine {
	return g.eng
}

// Cursor returns the selected slot and field.
func (g *Game) Cursor() (int, Field) {
	return g.slot, g.field
}
