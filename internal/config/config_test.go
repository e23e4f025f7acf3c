package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	engine "github.com/vovakirdan/wavle/internal/games/wavle/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestGameConfigConversion(t *testing.T) {
	gc, err := DefaultConfig().GameConfig()
	if err != nil {
		t.Fatalf("GameConfig() failed: %v", err)
	}
	if !reflect.DeepEqual(gc, engine.DefaultGameConfig()) {
		t.Errorf("GameConfig() = %+v, expected %+v", gc, engine.DefaultGameConfig())
	}

	cfg := DefaultConfig()
	cfg.Game.FrequencyMode = "tiered"
	gc, err = cfg.GameConfig()
	if err != nil {
		t.Fatalf("GameConfig(tiered) failed: %v", err)
	}
	if gc.AllowedFrequencies != nil {
		t.Errorf("tiered mode should drop the fixed frequency set, got %v", gc.AllowedFrequencies)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("game:\n  max_attempts: 3\nrender:\n  animate: false\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Game.MaxAttempts != 3 {
		t.Errorf("MaxAttempts = %d, expected 3", cfg.Game.MaxAttempts)
	}
	if cfg.Render.Animate {
		t.Error("Animate should be overridden to false")
	}
	if cfg.Game.SlotCount != 5 || cfg.Controls.AmplitudeStep != 0.01 {
		t.Errorf("unspecified keys lost their defaults: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*WavleConfig)
		wantErr error
	}{
		{"zero attempts", func(c *WavleConfig) { c.Game.MaxAttempts = 0 }, engine.ErrConfiguration},
		{"slot mismatch", func(c *WavleConfig) { c.Game.SlotCount = 4 }, engine.ErrConfiguration},
		{"unknown mode", func(c *WavleConfig) { c.Game.FrequencyMode = "chaotic" }, engine.ErrConfiguration},
		{"unknown policy", func(c *WavleConfig) { c.Game.WinPolicy = "maybe" }, engine.ErrConfiguration},
		{"zero step", func(c *WavleConfig) { c.Controls.PhaseStep = 0 }, ErrInvalid},
		{"zero max frequency", func(c *WavleConfig) { c.Controls.MaxFrequency = 0 }, ErrInvalid},
		{"negative time step", func(c *WavleConfig) { c.Render.TimeStep = -1 }, ErrInvalid},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.wantErr) {
				t.Errorf("Validate() = %v, expected %v", err, tc.wantErr)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("game:\n  frequency_mode: tiered\n  use_phase: true\n  slot_count: 3\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Game.FrequencyMode != "tiered" || !cfg.Game.UsePhase || cfg.Game.SlotCount != 3 {
		t.Errorf("Load() = %+v, expected custom values", cfg.Game)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("custom config invalid: %v", err)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("game: [1, 2"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	ApplyPreset(&cfg, DifficultyHard)

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if !reflect.DeepEqual(back, cfg) {
		t.Errorf("round trip = %+v, expected %+v", back, cfg)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		mode     string
		usePhase bool
		attempts int
	}{
		{DifficultyEasy, "fixed_slots", false, 8},
		{DifficultyNormal, "fixed_slots", true, 6},
		{DifficultyHard, "tiered", true, 5},
		{DifficultyFixed, "fixed_slots", false, 6},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Game.FrequencyMode != tc.mode || cfg.Game.UsePhase != tc.usePhase || cfg.Game.MaxAttempts != tc.attempts {
				t.Errorf("preset %s = %+v", tc.preset, cfg.Game)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset %s produced an invalid config: %v", tc.preset, err)
			}
		})
	}
}

func TestApplyPresetRestoresFixedSlots(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Game.FrequencyMode = "tiered"
	cfg.Game.SlotCount = 3
	cfg.Game.AllowedFrequencies = nil

	ApplyPreset(&cfg, DifficultyEasy)
	if cfg.Game.SlotCount != 5 || len(cfg.Game.AllowedFrequencies) != 5 {
		t.Errorf("easy preset should restore the fixed slot set, got %+v", cfg.Game)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"", DifficultyFixed, false},
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"nightmare", "", true},
	}
	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr || got != tc.expected {
			t.Errorf("ParsePreset(%q) = %q, %v", tc.in, got, err)
		}
	}
	if len(Presets()) != 4 {
		t.Errorf("Presets() has %d entries, expected 4", len(Presets()))
	}
}

func TestSetSlotCount(t *testing.T) {
	tests := []struct {
		name        string
		mode        string
		n           int
		wantSlots   int
		wantAllowed int
		wantErr     bool
	}{
		{"zero keeps config", "fixed_slots", 0, 5, 5, false},
		{"fixed cuts frequencies", "fixed_slots", 3, 3, 3, false},
		{"tiered", "tiered", 2, 2, 5, false},
		{"too many", "tiered", 6, 5, 5, true},
		{"negative", "fixed_slots", -1, 5, 5, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Game.FrequencyMode = tc.mode

			err := SetSlotCount(&cfg, tc.n)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalid) {
					t.Errorf("SetSlotCount(%d) error = %v, expected ErrInvalid", tc.n, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("SetSlotCount(%d) failed: %v", tc.n, err)
			}
			if cfg.Game.SlotCount != tc.wantSlots || len(cfg.Game.AllowedFrequencies) != tc.wantAllowed {
				t.Errorf("slots = %d, allowed = %v, expected %d and %d entries",
					cfg.Game.SlotCount, cfg.Game.AllowedFrequencies, tc.wantSlots, tc.wantAllowed)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("Validate() after SetSlotCount(%d) failed: %v", tc.n, err)
			}
		})
	}

	cfg := DefaultConfig()
	if err := SetSlotCount(&cfg, 2); err != nil {
		t.Fatalf("SetSlotCount(2) failed: %v", err)
	}
	if cfg.Game.AllowedFrequencies[0] != 1 || cfg.Game.AllowedFrequencies[1] != 2 {
		t.Errorf("allowed = %v, expected [1 2]", cfg.Game.AllowedFrequencies)
	}
}
