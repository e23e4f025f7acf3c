package config

import (
	"fmt"
	"strings"

	engine "github.com/vovakirdan/wavle/internal/games/wavle/core"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// PresetInfo describes a preset for listings.
type PresetInfo struct {
	Preset      DifficultyPreset
	Description string
}

// Presets returns all presets in menu order.
func Presets() []PresetInfo {
	return []PresetInfo{
		{DifficultyEasy, "Fixed frequencies, no phase, 8 attempts"},
		{DifficultyNormal, "Fixed frequencies with phase, 6 attempts"},
		{DifficultyHard, "Random frequencies with phase, 5 attempts"},
		{DifficultyFixed, "Use the config file as is"},
	}
}

// ParsePreset converts a flag value into a preset. Empty means fixed.
func ParsePreset(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case "":
		return DifficultyFixed, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (use easy, normal, hard or fixed)", ErrInvalid, s)
	}
}

// ApplyPreset modifies the game settings for a difficulty preset.
// DifficultyFixed leaves the config untouched.
func ApplyPreset(cfg *WavleConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		useFixedSlots(cfg)
		cfg.Game.UsePhase = false
		cfg.Game.MaxAttempts = 8
	case DifficultyNormal:
		useFixedSlots(cfg)
		cfg.Game.UsePhase = true
		cfg.Game.MaxAttempts = 6
	case DifficultyHard:
		cfg.Game.FrequencyMode = string(engine.FrequencyTiered)
		cfg.Game.UsePhase = true
		cfg.Game.MaxAttempts = 5
	}
}

// useFixedSlots switches to fixed-slot mode, keeping slot_count in line with
// the allowed frequency set.
func useFixedSlots(cfg *WavleConfig) {
	cfg.Game.FrequencyMode = string(engine.FrequencyFixedSlots)
	if len(cfg.Game.AllowedFrequencies) == 0 {
		cfg.Game.AllowedFrequencies = append([]float64(nil), engine.DefaultAllowedFrequencies...)
	}
	cfg.Game.SlotCount = len(cfg.Game.AllowedFrequencies)
}

// Bounds of the wave count a player can pick.
const (
	MinSlots = 1
	MaxSlots = 5
)

// SetSlotCount sets how many waves the player edits. In fixed-slot mode the
// allowed frequency set is cut to the first n entries so slot i keeps
// frequency i. Zero leaves the config unchanged.
func SetSlotCount(cfg *WavleConfig, n int) error {
	if n == 0 {
		return nil
	}
	if n < MinSlots || n > MaxSlots {
		return fmt.Errorf("%w: wave count %d not in [%d, %d]", ErrInvalid, n, MinSlots, MaxSlots)
	}
	if cfg.Game.FrequencyMode == string(engine.FrequencyFixedSlots) {
		if n > len(cfg.Game.AllowedFrequencies) {
			return fmt.Errorf("%w: wave count %d exceeds the %d fixed frequencies",
				ErrInvalid, n, len(cfg.Game.AllowedFrequencies))
		}
		cfg.Game.AllowedFrequencies = append([]float64(nil), cfg.Game.AllowedFrequencies[:n]...)
	}
	cfg.Game.SlotCount = n
	return nil
}
