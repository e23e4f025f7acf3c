// Package config provides YAML-based game configuration loading and
// difficulty presets for wavle.
package config

import (
	"errors"
	"fmt"

	engine "github.com/vovakirdan/wavle/internal/games/wavle/core"
)

// ErrInvalid is returned by Validate for unusable control or render settings.
// Game settings fail with engine.ErrConfiguration instead.
var ErrInvalid = errors.New("invalid config")

// WavleConfig contains all configuration for a wavle session.
type WavleConfig struct {
	Game     GameSettings     `yaml:"game"`
	Controls ControlsSettings `yaml:"controls"`
	Render   RenderSettings   `yaml:"render"`
}

// GameSettings mirrors engine.GameConfig in its YAML form.
type GameSettings struct {
	UsePhase           bool      `yaml:"use_phase"`
	FrequencyMode      string    `yaml:"frequency_mode"`
	MaxAttempts        int       `yaml:"max_attempts"`
	SlotCount          int       `yaml:"slot_count"`
	MaxComponents      int       `yaml:"max_components"`
	AllowedFrequencies []float64 `yaml:"allowed_frequencies"`
	FrequencyPrecision int       `yaml:"frequency_precision"`
	PhasePrecision     int       `yaml:"phase_precision"`
	WinPolicy          string    `yaml:"win_policy"`
}

// ControlsSettings defines the slider steps and ranges of the wave editor.
type ControlsSettings struct {
	AmplitudeStep float64 `yaml:"amplitude_step"`
	FrequencyStep float64 `yaml:"frequency_step"`
	PhaseStep     float64 `yaml:"phase_step"`
	MaxFrequency  float64 `yaml:"max_frequency"`
}

// RenderSettings controls the waveform animation.
type RenderSettings struct {
	Animate  bool    `yaml:"animate"`
	TimeStep float64 `yaml:"time_step"` // Added to the plot offset every frame
}

// GameConfig converts the YAML settings into an engine configuration.
func (c WavleConfig) GameConfig() (engine.GameConfig, error) {
	mode, err := engine.ParseFrequencyMode(c.Game.FrequencyMode)
	if err != nil {
		return engine.GameConfig{}, err
	}
	policy, err := engine.ParseWinPolicy(c.Game.WinPolicy)
	if err != nil {
		return engine.GameConfig{}, err
	}

	gc := engine.GameConfig{
		UsePhase:           c.Game.UsePhase,
		FrequencyMode:      mode,
		MaxAttempts:        c.Game.MaxAttempts,
		SlotCount:          c.Game.SlotCount,
		MaxComponents:      c.Game.MaxComponents,
		FrequencyPrecision: c.Game.FrequencyPrecision,
		PhasePrecision:     c.Game.PhasePrecision,
		WinPolicy:          policy,
	}
	if mode == engine.FrequencyFixedSlots {
		gc.AllowedFrequencies = append([]float64(nil), c.Game.AllowedFrequencies...)
	}
	return gc, nil
}

// Validate checks the whole configuration.
func (c WavleConfig) Validate() error {
	gc, err := c.GameConfig()
	if err != nil {
		return err
	}
	if err := gc.Validate(); err != nil {
		return err
	}

	ctl := c.Controls
	if ctl.AmplitudeStep <= 0 || ctl.FrequencyStep <= 0 || ctl.PhaseStep <= 0 {
		return fmt.Errorf("%w: control steps must be positive", ErrInvalid)
	}
	if ctl.MaxFrequency <= 0 {
		return fmt.Errorf("%w: max_frequency must be positive, got %v", ErrInvalid, ctl.MaxFrequency)
	}
	if c.Render.TimeStep < 0 {
		return fmt.Errorf("%w: time_step must not be negative, got %v", ErrInvalid, c.Render.TimeStep)
	}
	return nil
}
