// Package core is the game-state engine for Wavle: target generation, attempt
// tracking, signal comparison and status resolution.
// It has no terminal or storage dependencies so every rule is testable in isolation.
package core

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// TwoPi is the length of one period of the sampled signal.
const TwoPi = 2 * math.Pi

// Wave is a single sine component. It is a value type: the With* methods
// return a modified copy and never touch the receiver.
type Wave struct {
	Amplitude float64 `json:"amplitude" yaml:"amplitude"`
	Frequency float64 `json:"frequency" yaml:"frequency"`
	Phase     float64 `json:"phase" yaml:"phase"`
}

// NewWave creates a wave with the phase folded into [0, 2π).
func NewWave(amplitude, frequency, phase float64) Wave {
	return Wave{
		Amplitude: amplitude,
		Frequency: frequency,
		Phase:     CanonicalPhase(phase),
	}
}

// WithAmplitude returns a copy with a new amplitude.
func (w Wave) WithAmplitude(a float64) Wave {
	w.Amplitude = a
	return w
}

// WithFrequency returns a copy with a new frequency.
func (w Wave) WithFrequency(f float64) Wave {
	w.Frequency = f
	return w
}

// WithPhase returns a copy with a new phase, folded into [0, 2π).
func (w Wave) WithPhase(p float64) Wave {
	w.Phase = CanonicalPhase(p)
	return w
}

// At evaluates this component at x.
func (w Wave) At(x float64) float64 {
	return w.Amplitude * math.Sin(w.Frequency*x+w.Phase)
}

// CanonicalPhase folds p into [0, 2π).
func CanonicalPhase(p float64) float64 {
	if p >= 0 && p < TwoPi {
		return p
	}
	p = math.Mod(p, TwoPi)
	if p < 0 {
		p += TwoPi
	}
	if p >= TwoPi {
		p = 0
	}
	return p
}

// CloneWaves returns an independent copy of a wave set.
func CloneWaves(waves []Wave) []Wave {
	if waves == nil {
		return nil
	}
	out := make([]Wave, len(waves))
	copy(out, waves)
	return out
}

// TotalAmplitude sums the amplitudes of a wave set.
func TotalAmplitude(waves []Wave) float64 {
	amps := make([]float64, len(waves))
	for i, w := range waves {
		amps[i] = w.Amplitude
	}
	return floats.Sum(amps)
}
