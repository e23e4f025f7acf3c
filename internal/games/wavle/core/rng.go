package core

import (
	"math"
	"math/rand"
)

// Source is the randomness the generators draw from.
// *rand.Rand satisfies it, so a fixed seed gives a reproducible game.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// NewSource returns a seeded pseudo-random source.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// uniform draws from [lo, hi).
func uniform(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, decimals int) float64 {
	if decimals < 0 {
		return v
	}
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
