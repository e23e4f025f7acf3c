package core

import "fmt"

// DefaultMaxComponents caps the number of target components.
const DefaultMaxComponents = 5

// Target is a generated target wave together with how its amplitudes came about.
type Target struct {
	Waves      []Wave
	Amplitudes Amplitudes
}

// Normalized reports whether the target amplitudes sum to 1.
// It is false only when the dominant-wave correction fired.
func (t Target) Normalized() bool {
	return t.Amplitudes.Normalized()
}

// TargetGenerator composes the frequency, phase and amplitude generators.
type TargetGenerator struct {
	Frequencies   FrequencyAssigner
	Phases        PhaseAssigner
	MaxComponents int
}

// NewTargetGenerator builds the generator described by cfg.
func NewTargetGenerator(cfg GameConfig) TargetGenerator {
	var freq FrequencyAssigner
	switch cfg.FrequencyMode {
	case FrequencyFixedSlots:
		freq = FixedFrequencies{Allowed: cfg.AllowedFrequencies}
	default:
		freq = TieredFrequencies{Precision: cfg.FrequencyPrecision}
	}
	return TargetGenerator{
		Frequencies:   freq,
		Phases:        PhaseAssigner{UsePhase: cfg.UsePhase, Precision: cfg.PhasePrecision},
		MaxComponents: cfg.MaxComponents,
	}
}

// ComponentCount returns the number of components generated for slotCount slots.
func (g TargetGenerator) ComponentCount(slotCount int) int {
	n := slotCount
	if g.MaxComponents > 0 && n > g.MaxComponents {
		n = g.MaxComponents
	}
	return n
}

// Generate builds a target wave for slotCount slots. Frequencies come first,
// then one phase per slot, then the amplitudes are drawn jointly over all
// components so the set sums to 1.
func (g TargetGenerator) Generate(src Source, slotCount int) (Target, error) {
	n := g.ComponentCount(slotCount)
	if n < 1 {
		return Target{}, fmt.Errorf("%w: slot count must be positive, got %d", ErrConfiguration, slotCount)
	}
	if g.Frequencies == nil {
		return Target{}, fmt.Errorf("%w: no frequency assigner", ErrConfiguration)
	}

	freqs := g.Frequencies.Frequencies(src, n)
	phases := make([]float64, n)
	for i := range phases {
		phases[i] = g.Phases.Phase(src)
	}

	amps, err := GenerateAmplitudes(src, n)
	if err != nil {
		return Target{}, err
	}

	waves := make([]Wave, n)
	for i := range waves {
		waves[i] = NewWave(amps.Values[i], freqs[i], phases[i])
	}
	return Target{Waves: waves, Amplitudes: amps}, nil
}
