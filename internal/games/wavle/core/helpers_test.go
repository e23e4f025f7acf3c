package core

// seqSource replays fixed values so a test can steer every random draw.
type seqSource struct {
	floats []float64
	ints   []int
}

func (s *seqSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *seqSource) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func unitSine() []Wave {
	return []Wave{{Amplitude: 1, Frequency: 1, Phase: 0}}
}

func singleSlotConfig(maxAttempts int) GameConfig {
	cfg := DefaultGameConfig()
	cfg.FrequencyMode = FrequencyTiered
	cfg.SlotCount = 1
	cfg.AllowedFrequencies = nil
	cfg.MaxAttempts = maxAttempts
	return cfg
}

func approx(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}
