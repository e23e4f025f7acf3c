package wavle

import engine "github.com/vovakirdan/wavle/internal/games/wavle/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Frame    uint64
	Round    int
	Seed     int64
	Status   engine.Status
	Slot     int
	Field    Field
	Offset   float64
	Paused   bool
	Target   []engine.Wave
	Current  []engine.Wave
	Attempts [][]engine.Wave
	Scores   []int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Frame:    g.frame,
		Round:    g.round,
		Seed:     g.seed,
		Status:   g.eng.Status(),
		Slot:     g.slot,
		Field:    g.field,
		Offset:   g.offset,
		Paused:   g.paused,
		Target:   g.eng.Target(),
		Current:  g.eng.CurrentWave(),
		Attempts: g.eng.PlayerWaves(),
		Scores:   g.eng.Scores(),
	}
}
