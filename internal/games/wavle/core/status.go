package core

// Status is the derived state of a game.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWin     Status = "win"
	StatusLose    Status = "lose"
)

// Terminal reports whether the game has been decided.
func (s Status) Terminal() bool {
	return s == StatusWin || s == StatusLose
}

// ResolveStatus derives the game status from the attempt history.
// The last attempt wins if it scores above WinThreshold; otherwise a full
// history loses. It is a pure query and may be called any number of times.
func ResolveStatus(attempts [][]Wave, target []Wave, maxAttempts int) Status {
	if HasWinningAttempt(attempts, target) {
		return StatusWin
	}
	if len(attempts) >= maxAttempts {
		return StatusLose
	}
	return StatusPlaying
}

// HasWinningAttempt reports whether the most recent attempt beats the threshold.
func HasWinningAttempt(attempts [][]Wave, target []Wave) bool {
	if len(attempts) == 0 {
		return false
	}
	return IsWinningScore(Similarity(attempts[len(attempts)-1], target))
}
