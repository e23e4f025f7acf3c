package wavle

import (
	"bytes"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wavle/internal/config"
	"github.com/vovakirdan/wavle/internal/core"
	engine "github.com/vovakirdan/wavle/internal/games/wavle/core"
)

func runtimeConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: seed}
}

func newGame(t *testing.T, mutate func(*config.WavleConfig)) *Game {
	t.Helper()
	cfg := config.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	g, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if err := g.Reset(runtimeConfig(42)); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	return g
}

// sineGame plays a single slot against the unit sine.
func sineGame(t *testing.T, maxAttempts int, policy string) *Game {
	t.Helper()
	g := newGame(t, func(c *config.WavleConfig) {
		c.Game.FrequencyMode = "tiered"
		c.Game.SlotCount = 1
		c.Game.MaxAttempts = maxAttempts
		c.Game.WinPolicy = policy
	})
	eng, err := engine.NewWithTarget(g.gameCfg, engine.NewSource(1), []engine.Wave{{Amplitude: 1, Frequency: 1}})
	if err != nil {
		t.Fatalf("NewWithTarget() failed: %v", err)
	}
	eng.OnStatusChange(g.logStatus)
	g.eng = eng
	return g
}

func press(g *Game, actions ...core.Action) core.StepResult {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return g.Step(f)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Game.MaxAttempts = 0
	if _, err := New(cfg, nil); err == nil {
		t.Error("New() with zero attempts should fail")
	}
}

func TestDeterminism(t *testing.T) {
	script := map[int][]core.Action{
		3:  {core.ActionIncreaseFast},
		5:  {core.ActionSlotNext},
		7:  {core.ActionIncrease},
		9:  {core.ActionFieldDown},
		11: {core.ActionIncrease},
		15: {core.ActionSubmit},
		20: {core.ActionRestart},
		25: {core.ActionSubmit},
	}

	g1 := newGame(t, nil)
	g2 := newGame(t, nil)
	for i := 0; i < 40; i++ {
		press(g1, script[i]...)
		press(g2, script[i]...)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
	if s1.Round != 2 || len(s1.Attempts) != 1 {
		t.Errorf("round = %d, attempts = %d, expected 2 and 1", s1.Round, len(s1.Attempts))
	}
}

func TestSlotNavigationWraps(t *testing.T) {
	g := newGame(t, nil)

	press(g, core.ActionSlotPrev)
	if slot, _ := g.Cursor(); slot != 4 {
		t.Errorf("slot after prev from 0 = %d, expected 4", slot)
	}
	press(g, core.ActionSlotNext)
	if slot, _ := g.Cursor(); slot != 0 {
		t.Errorf("slot after next from 4 = %d, expected 0", slot)
	}
}

func TestFieldNavigation(t *testing.T) {
	tests := []struct {
		name     string
		mode     string
		usePhase bool
		expected []Field
	}{
		{"fixed without phase", "fixed_slots", false, []Field{FieldAmplitude, FieldAmplitude}},
		{"fixed with phase", "fixed_slots", true, []Field{FieldPhase, FieldAmplitude, FieldPhase}},
		{"tiered without phase", "tiered", false, []Field{FieldFrequency, FieldAmplitude, FieldFrequency}},
		{"tiered with phase", "tiered", true, []Field{FieldFrequency, FieldPhase, FieldAmplitude}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newGame(t, func(c *config.WavleConfig) {
				c.Game.FrequencyMode = tc.mode
				c.Game.UsePhase = tc.usePhase
			})
			for i, want := range tc.expected {
				press(g, core.ActionFieldDown)
				if _, f := g.Cursor(); f != want {
					t.Errorf("step %d: field = %s, expected %s", i, f, want)
				}
			}
		})
	}

	g := newGame(t, func(c *config.WavleConfig) { c.Game.FrequencyMode = "tiered" })
	press(g, core.ActionFieldUp)
	if _, f := g.Cursor(); f != FieldFrequency {
		t.Errorf("FieldUp from amplitude = %s, expected frequency", f)
	}
}

func TestAdjustFields(t *testing.T) {
	g := newGame(t, func(c *config.WavleConfig) { c.Game.UsePhase = true })

	press(g, core.ActionIncrease)
	press(g, core.ActionIncrease)
	w, _ := g.eng.CurrentSubWave(0)
	if math.Abs(w.Amplitude-0.02) > 1e-9 {
		t.Errorf("amplitude after two steps = %v, expected 0.02", w.Amplitude)
	}

	for i := 0; i < 20; i++ {
		press(g, core.ActionIncreaseFast)
	}
	w, _ = g.eng.CurrentSubWave(0)
	if w.Amplitude != 1 {
		t.Errorf("amplitude should clamp at 1, got %v", w.Amplitude)
	}

	press(g, core.ActionFieldDown) // phase: fixed slots skip frequency
	if _, f := g.Cursor(); f != FieldPhase {
		t.Fatalf("field after FieldDown = %s, expected phase", f)
	}
	press(g, core.ActionDecrease)
	w, _ = g.eng.CurrentSubWave(0)
	if w.Phase != 0 {
		t.Errorf("phase should clamp at 0, got %v", w.Phase)
	}
	for i := 0; i < 100; i++ {
		press(g, core.ActionIncreaseFast)
	}
	w, _ = g.eng.CurrentSubWave(0)
	if math.Abs(w.Phase-maxPhase) > 1e-9 {
		t.Errorf("phase should clamp at %v, got %v", maxPhase, w.Phase)
	}
	if w.Frequency != 1 {
		t.Errorf("fixed slot 0 frequency = %v, expected 1", w.Frequency)
	}

	other, _ := g.eng.CurrentSubWave(1)
	if other.Amplitude != 0 || other.Frequency != 2 {
		t.Errorf("slot 1 should be untouched, got %+v", other)
	}
}

func TestAdjustFrequencyTiered(t *testing.T) {
	g := newGame(t, func(c *config.WavleConfig) { c.Game.FrequencyMode = "tiered" })

	press(g, core.ActionFieldDown)
	press(g, core.ActionIncrease)
	w, _ := g.eng.CurrentSubWave(0)
	if math.Abs(w.Frequency-0.1) > 1e-9 {
		t.Errorf("frequency after one step = %v, expected 0.1", w.Frequency)
	}

	for i := 0; i < 20; i++ {
		press(g, core.ActionIncreaseFast)
	}
	w, _ = g.eng.CurrentSubWave(0)
	if w.Frequency != 10 {
		t.Errorf("frequency should clamp at 10, got %v", w.Frequency)
	}
}

func TestResetWave(t *testing.T) {
	g := newGame(t, nil)
	press(g, core.ActionIncreaseFast)
	press(g, core.ActionResetWave)

	w, _ := g.eng.CurrentSubWave(0)
	if w.Amplitude != 0 || w.Frequency != 1 {
		t.Errorf("slot 0 after reset = %+v, expected default", w)
	}
	if g.message == "" {
		t.Error("reset should leave a status message")
	}
}

func TestSubmitUntilLose(t *testing.T) {
	g := sineGame(t, 2, "continue")

	res := press(g, core.ActionSubmit)
	if !res.Submitted || res.Score != 70 {
		t.Errorf("first submit = %+v, expected accepted with score 70", res)
	}
	if res.State.GameOver {
		t.Error("game should continue after 1 of 2 attempts")
	}

	res = press(g, core.ActionSubmit)
	if !res.State.GameOver || res.State.Won {
		t.Errorf("state after 2 misses = %+v, expected lost", res.State)
	}

	res = press(g, core.ActionSubmit)
	if res.Submitted {
		t.Error("submit beyond the cap should be rejected")
	}
	if !strings.Contains(g.message, "No attempts left") {
		t.Errorf("message = %q, expected rejection notice", g.message)
	}
}

func TestSubmitWin(t *testing.T) {
	tests := []struct {
		policy   string
		finished bool
	}{
		{"continue", false},
		{"stop", true},
	}

	for _, tc := range tests {
		t.Run(tc.policy, func(t *testing.T) {
			g := sineGame(t, 3, tc.policy)
			if err := g.eng.SetCurrentWave([]engine.Wave{{Amplitude: 1, Frequency: 1}}); err != nil {
				t.Fatalf("SetCurrentWave() failed: %v", err)
			}

			res := press(g, core.ActionSubmit)
			if !res.Submitted || res.Score != 100 {
				t.Fatalf("submit = %+v, expected score 100", res)
			}
			if !res.State.Won || res.State.Score != 100 {
				t.Errorf("state = %+v, expected a win with best 100", res.State)
			}
			if res.State.GameOver != tc.finished {
				t.Errorf("GameOver = %v, expected %v", res.State.GameOver, tc.finished)
			}
			if g.Summary().Status != engine.StatusWin {
				t.Errorf("Summary().Status = %s", g.Summary().Status)
			}
		})
	}
}

func TestRestartStartsNewRound(t *testing.T) {
	g := newGame(t, nil)
	press(g, core.ActionSubmit)
	before := g.Snapshot()

	res := press(g, core.ActionRestart)
	after := g.Snapshot()

	if after.Round != before.Round+1 {
		t.Errorf("round = %d, expected %d", after.Round, before.Round+1)
	}
	if res.State.Attempts != 0 || len(after.Attempts) != 0 {
		t.Errorf("restart should clear attempts, got %d", res.State.Attempts)
	}
	if after.Seed != before.Seed {
		t.Error("restart should keep the session seed")
	}
}

func TestAnimation(t *testing.T) {
	g := newGame(t, nil)
	for i := 0; i < 10; i++ {
		press(g)
	}
	if math.Abs(g.offset-0.1) > 1e-9 {
		t.Errorf("offset after 10 frames = %v, expected 0.1", g.offset)
	}

	press(g, core.ActionPause)
	frozen := g.offset
	press(g)
	if g.offset != frozen || !g.State().Paused {
		t.Error("paused game should not animate")
	}

	still := newGame(t, func(c *config.WavleConfig) { c.Render.Animate = false })
	press(still)
	if still.offset != 0 {
		t.Errorf("animation disabled, offset = %v", still.offset)
	}
}

func TestMessageExpires(t *testing.T) {
	g := newGame(t, nil)
	press(g, core.ActionSubmit)
	if g.message == "" {
		t.Fatal("submit should leave a message")
	}
	for i := 0; i < messageTTL; i++ {
		press(g)
	}
	if g.message != "" {
		t.Errorf("message %q should have expired", g.message)
	}
}

func TestRender(t *testing.T) {
	g := newGame(t, nil)
	s := core.NewScreen(80, 24)
	g.Render(s)

	out := s.String()
	for _, want := range []string{"WAVLE", "Submit 1/6", "slot 1", "slot 5", "no attempts yet"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, " P ") {
		t.Error("phase row should be hidden when phases are off")
	}
	if !strings.Contains(out, "slot 3 f=3") || strings.Contains(out, " F ") {
		t.Errorf("fixed slots should show their frequency in the header, not as a field:\n%s", out)
	}

	press(g, core.ActionSubmit)
	g.Render(s)
	out = s.String()
	if !strings.Contains(out, "Submit 2/6") || !strings.Contains(out, "1:") {
		t.Errorf("render after submit missing progress or history:\n%s", out)
	}
}

func TestRenderPlotsTarget(t *testing.T) {
	g := sineGame(t, 3, "continue")
	s := core.NewScreen(60, 20)
	g.Render(s)

	found := false
	for y := 2; y < 20 && !found; y++ {
		for x := 1; x < 59; x++ {
			if c := s.GetCell(x, y); c.Rune == runeTarget && c.Color == core.ColorTarget {
				found = true
				break
			}
		}
	}
	if !found {
		t.Errorf("target curve not drawn:\n%s", s.String())
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newGame(t, nil)
	s := core.NewScreen(20, 5)
	g.Render(s)
	if !strings.Contains(s.String(), "Terminal too small") {
		t.Errorf("expected size warning, got:\n%s", s.String())
	}
}

func TestStatusChangesAreLogged(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.DefaultConfig()
	cfg.Game.MaxAttempts = 1
	g, err := New(cfg, log.New(&buf))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if err := g.Reset(runtimeConfig(7)); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	press(g, core.ActionSubmit)
	out := buf.String()
	if !strings.Contains(out, "game started") || !strings.Contains(out, "status changed") {
		t.Errorf("log output missing entries:\n%s", out)
	}
	if strings.Count(out, "status changed") != 1 {
		t.Errorf("status change should be logged once:\n%s", out)
	}
}
