package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform renderer.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Roles used by the wave view.
const (
	ColorTarget  = ColorBrightCyan
	ColorCurrent = ColorBrightYellow
	ColorAttempt = ColorMagenta
	ColorAxis    = ColorGray
	ColorWin     = ColorBrightGreen
	ColorLose    = ColorBrightRed
)

var slotPalette = []Color{
	ColorBrightBlue,
	ColorOrange,
	ColorBrightGreen,
	ColorBrightMagenta,
	ColorYellow,
	ColorCyan,
}

// SlotColor returns a stable color for the i-th slot of a wave.
func SlotColor(i int) Color {
	if i < 0 {
		i = -i
	}
	return slotPalette[i%len(slotPalette)]
}

// ScoreColor picks a color for a similarity score on a 0..100 scale.
func ScoreColor(score, winThreshold int) Color {
	switch {
	case score > winThreshold:
		return ColorWin
	case score >= 80:
		return ColorBrightYellow
	case score >= 60:
		return ColorOrange
	default:
		return ColorRed
	}
}
