package core

import (
	"fmt"
	"strings"
)

// FrequencyMode selects how target frequencies are chosen.
type FrequencyMode string

const (
	// FrequencyTiered draws each frequency from a weighted set of ranges.
	FrequencyTiered FrequencyMode = "tiered"
	// FrequencyFixedSlots binds every slot to one entry of a fixed frequency set.
	FrequencyFixedSlots FrequencyMode = "fixed_slots"
)

// ParseFrequencyMode converts a config string into a FrequencyMode.
func ParseFrequencyMode(s string) (FrequencyMode, error) {
	switch FrequencyMode(strings.ToLower(strings.TrimSpace(s))) {
	case FrequencyTiered:
		return FrequencyTiered, nil
	case FrequencyFixedSlots, "fixed", "fixedslots":
		return FrequencyFixedSlots, nil
	default:
		return "", fmt.Errorf("%w: unknown frequency mode %q", ErrConfiguration, s)
	}
}

// DefaultAllowedFrequencies is the slot frequency set used in fixed-slot mode.
var DefaultAllowedFrequencies = []float64{1, 2, 3, 4, 5}

// FrequencyAssigner picks the frequencies for n target components.
type FrequencyAssigner interface {
	Frequencies(src Source, n int) []float64
}

// Frequency tiers: 10% low, 80% mid, 10% high.
const (
	lowTierCutoff  = 0.1
	highTierCutoff = 0.9
)

// TieredFrequencies draws every frequency independently from the tiers.
type TieredFrequencies struct {
	// Precision is the number of decimals the frequency is rounded to.
	Precision int
}

// Frequencies implements FrequencyAssigner.
func (t TieredFrequencies) Frequencies(src Source, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = TieredFrequency(src, t.Precision)
	}
	return out
}

// TieredFrequency draws one frequency:
// r < 0.1 → [1, 2), r < 0.9 → [1, 5), otherwise [5, 20).
func TieredFrequency(src Source, precision int) float64 {
	r := src.Float64()
	var f float64
	switch {
	case r < lowTierCutoff:
		f = uniform(src, 1, 2)
	case r < highTierCutoff:
		f = uniform(src, 1, 5)
	default:
		f = uniform(src, 5, 20)
	}
	return roundTo(f, precision)
}

// FixedFrequencies assigns slot i the i-th allowed frequency.
type FixedFrequencies struct {
	Allowed []float64
}

// Frequencies implements FrequencyAssigner. It never draws from src.
func (f FixedFrequencies) Frequencies(_ Source, n int) []float64 {
	out := make([]float64, n)
	copy(out, f.Allowed)
	return out
}
