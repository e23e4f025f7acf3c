package core

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Similarity scoring constants. Changing any of them changes every score.
const (
	SimilaritySamples = 1000

	avgDiffWeight = 50.0
	maxDiffWeight = 25.0
	avgBlend      = 0.7
	maxBlend      = 0.3

	// WinThreshold must be strictly exceeded for an attempt to win.
	WinThreshold = 95
)

// CombinedSignal evaluates the sum of all components at x.
func CombinedSignal(waves []Wave, x float64) float64 {
	var sum float64
	for _, w := range waves {
		sum += w.At(x)
	}
	return sum
}

// Similarity scores how closely attempt matches target on a 0-100 scale.
//
// Both signals are sampled at 1000 evenly spaced points over one period.
// The mean and maximum absolute difference are turned into two scores,
// 100 - 50*mean and 100 - 25*max (floored at 0), which are blended 70/30
// and rounded.
func Similarity(attempt, target []Wave) int {
	diffs := make([]float64, SimilaritySamples)
	var total float64
	for i := range diffs {
		x := float64(i) / SimilaritySamples * 2 * math.Pi
		d := math.Abs(CombinedSignal(attempt, x) - CombinedSignal(target, x))
		diffs[i] = d
		total += d
	}

	avgDiff := total / SimilaritySamples
	maxDiff := floats.Max(diffs)

	avgScore := math.Max(0, 100-avgDiff*avgDiffWeight)
	maxScore := math.Max(0, 100-maxDiff*maxDiffWeight)

	score := math.Round(avgScore*avgBlend + maxScore*maxBlend)
	if math.IsNaN(score) {
		return 0
	}
	return int(score)
}

// IsWinningScore reports whether a similarity score wins the game.
func IsWinningScore(score int) bool {
	return score > WinThreshold
}

// Sample evaluates waves at n evenly spaced points x = (i/n)·2π + offset.
// Renderers pass an accumulating animation phase as offset.
// An empty wave set yields all zeros; n <= 0 yields nil.
func Sample(waves []Wave, n int, offset float64) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		x := float64(i)/float64(n)*TwoPi + offset
		out[i] = CombinedSignal(waves, x)
	}
	return out
}
