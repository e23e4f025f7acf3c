package core

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Amplitude generation constants.
const (
	// Cut points are drawn from a narrowed range so near-zero components are rare.
	cutMin = 0.1
	cutMax = 0.9

	// If no component reaches dominantThreshold, one is raised into
	// [dominantMin, dominantMax).
	dominantThreshold = 0.5
	dominantMin       = 0.5
	dominantMax       = 1.0

	// SumTolerance is the allowed deviation of an amplitude set from 1.
	SumTolerance = 1e-9
)

// Amplitudes is the output of the amplitude generator.
type Amplitudes struct {
	// Values holds one amplitude per component.
	Values []float64

	// Corrected reports whether the dominant-wave rule overwrote a value.
	// When it did, Values no longer sums to 1: the correction is not re-normalized.
	Corrected bool

	// CorrectedIndex is the overwritten component, or -1.
	CorrectedIndex int

	// Replaced is the value that was overwritten by the correction.
	Replaced float64
}

// Sum returns the total of all amplitudes.
func (a Amplitudes) Sum() float64 {
	return floats.Sum(a.Values)
}

// Normalized reports whether the amplitudes sum to 1 within SumTolerance.
func (a Amplitudes) Normalized() bool {
	return SumsToOne(a.Values)
}

// SumsToOne reports whether values sum to 1 within SumTolerance.
func SumsToOne(values []float64) bool {
	return math.Abs(floats.Sum(values)-1) <= SumTolerance
}

// GenerateAmplitudes produces n non-negative amplitudes by stick-breaking:
// n-1 sorted cut points in [0.1, 0.9] split the unit interval, and the segment
// lengths are the amplitudes. If every amplitude is below 0.5 a random component
// is overwritten with a value in [0.5, 1.0) so the target has a dominant wave.
func GenerateAmplitudes(src Source, n int) (Amplitudes, error) {
	values, err := breakStick(src, n)
	if err != nil {
		return Amplitudes{}, err
	}

	amps := Amplitudes{Values: values, CorrectedIndex: -1}
	if floats.Max(values) < dominantThreshold {
		idx := src.Intn(n)
		amps.Corrected = true
		amps.CorrectedIndex = idx
		amps.Replaced = values[idx]
		values[idx] = uniform(src, dominantMin, dominantMax)
	}
	return amps, nil
}

// breakStick returns the uncorrected segment lengths. They always sum to 1.
func breakStick(src Source, n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: amplitude count must be at least 1, got %d", ErrConfiguration, n)
	}

	cuts := make([]float64, 0, n+1)
	cuts = append(cuts, 0)
	for i := 0; i < n-1; i++ {
		cuts = append(cuts, uniform(src, cutMin, cutMax))
	}
	cuts = append(cuts, 1)
	sort.Float64s(cuts)

	values := make([]float64, n)
	for i := range values {
		values[i] = cuts[i+1] - cuts[i]
	}

	if !SumsToOne(values) {
		return nil, fmt.Errorf("%w: amplitudes sum to %v", ErrInvariantViolation, floats.Sum(values))
	}
	return values, nil
}
