package core

import (
	"fmt"
	"strings"
)

// WinPolicy decides whether submissions are still accepted after a win.
type WinPolicy string

const (
	// WinPolicyContinue keeps accepting attempts until the cap is reached.
	WinPolicyContinue WinPolicy = "continue"
	// WinPolicyStop rejects attempts once the game is won.
	WinPolicyStop WinPolicy = "stop"
)

// ParseWinPolicy converts a config string into a WinPolicy. Empty means continue.
func ParseWinPolicy(s string) (WinPolicy, error) {
	switch WinPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", WinPolicyContinue:
		return WinPolicyContinue, nil
	case WinPolicyStop:
		return WinPolicyStop, nil
	default:
		return "", fmt.Errorf("%w: unknown win policy %q", ErrConfiguration, s)
	}
}

// GameConfig holds everything InitializeGame needs.
type GameConfig struct {
	UsePhase      bool
	FrequencyMode FrequencyMode
	MaxAttempts   int
	SlotCount     int

	// MaxComponents caps the number of target components. 0 disables the cap.
	MaxComponents int

	// AllowedFrequencies binds slots to frequencies in fixed-slot mode.
	AllowedFrequencies []float64

	FrequencyPrecision int
	PhasePrecision     int

	WinPolicy WinPolicy
}

// DefaultGameConfig returns the classic five-slot game.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		UsePhase:           false,
		FrequencyMode:      FrequencyFixedSlots,
		MaxAttempts:        6,
		SlotCount:          len(DefaultAllowedFrequencies),
		MaxComponents:      DefaultMaxComponents,
		AllowedFrequencies: append([]float64(nil), DefaultAllowedFrequencies...),
		FrequencyPrecision: 0,
		PhasePrecision:     2,
		WinPolicy:          WinPolicyContinue,
	}
}

// Validate checks that the configuration describes a playable game.
func (c GameConfig) Validate() error {
	if c.MaxAttempts <= 0 {
		return fmt.Errorf("%w: max attempts must be positive, got %d", ErrConfiguration, c.MaxAttempts)
	}
	if c.SlotCount <= 0 {
		return fmt.Errorf("%w: slot count must be positive, got %d", ErrConfiguration, c.SlotCount)
	}
	if c.MaxComponents < 0 {
		return fmt.Errorf("%w: max components must not be negative, got %d", ErrConfiguration, c.MaxComponents)
	}
	if c.FrequencyPrecision < 0 || c.PhasePrecision < 0 {
		return fmt.Errorf("%w: precision must not be negative", ErrConfiguration)
	}
	if _, err := ParseWinPolicy(string(c.WinPolicy)); err != nil {
		return err
	}

	switch c.FrequencyMode {
	case FrequencyTiered:
	case FrequencyFixedSlots:
		if len(c.AllowedFrequencies) != c.SlotCount {
			return fmt.Errorf("%w: slot count %d does not match %d fixed frequencies",
				ErrConfiguration, c.SlotCount, len(c.AllowedFrequencies))
		}
		for _, f := range c.AllowedFrequencies {
			if f <= 0 {
				return fmt.Errorf("%w: fixed frequency %v must be positive", ErrConfiguration, f)
			}
		}
	default:
		return fmt.Errorf("%w: unknown frequency mode %q", ErrConfiguration, c.FrequencyMode)
	}
	return nil
}

// DefaultWave returns the neutral in-progress wave: every slot silent, and in
// fixed-slot mode already tuned to its slot frequency.
func (c GameConfig) DefaultWave() []Wave {
	waves := make([]Wave, c.SlotCount)
	if c.FrequencyMode == FrequencyFixedSlots {
		for i := range waves {
			if i < len(c.AllowedFrequencies) {
				waves[i] = Wave{Frequency: c.AllowedFrequencies[i]}
			}
		}
	}
	return waves
}
