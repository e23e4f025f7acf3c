package core

// PhaseAssigner picks the phase of each target component.
type PhaseAssigner struct {
	UsePhase bool
	// Precision is the number of decimals the phase is rounded to.
	Precision int
}

// Phase returns 0 when phases are disabled, otherwise a rounded draw from [0, 2π).
func (p PhaseAssigner) Phase(src Source) float64 {
	if !p.UsePhase {
		return 0
	}
	return CanonicalPhase(roundTo(uniform(src, 0, TwoPi), p.Precision))
}
