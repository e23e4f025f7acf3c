package config

import (
	_ "embed"

	engine "github.com/vovakirdan/wavle/internal/games/wavle/core"
)

//go:embed defaults/wavle.yaml
var defaultWavleYAML []byte

// DefaultConfig returns the built-in configuration, matching defaults/wavle.yaml.
func DefaultConfig() WavleConfig {
	gc := engine.DefaultGameConfig()
	return WavleConfig{
		Game: GameSettings{
			UsePhase:           gc.UsePhase,
			FrequencyMode:      string(gc.FrequencyMode),
			MaxAttempts:        gc.MaxAttempts,
			SlotCount:          gc.SlotCount,
			MaxComponents:      gc.MaxComponents,
			AllowedFrequencies: gc.AllowedFrequencies,
			FrequencyPrecision: gc.FrequencyPrecision,
			PhasePrecision:     gc.PhasePrecision,
			WinPolicy:          string(gc.WinPolicy),
		},
		Controls: ControlsSettings{
			AmplitudeStep: 0.01,
			FrequencyStep: 0.1,
			PhaseStep:     0.01,
			MaxFrequency:  10,
		},
		Render: RenderSettings{
			Animate:  true,
			TimeStep: 0.01,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultWavleYAML
}
