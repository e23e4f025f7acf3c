package wavle

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/vovakirdan/wavle/internal/core"
	engine "github.com/vovakirdan/wavle/internal/games/wavle/core"
)

// Minimum screen size for the full layout.
const (
	MinWidth  = 40
	MinHeight = 16
)

const (
	runeTarget  = '●'
	runeCurrent = '•'
	runeAttempt = '·'
	runeAxis    = '─'
)

// Render draws the game onto the screen.
func (g *Game) Render(s *core.Screen) {
	s.Clear()
	if s.Width() < MinWidth || s.Height() < MinHeight {
		s.DrawTextCentered(s.Height()/2, "Terminal too small", core.ColorLose)
		s.DrawTextCentered(s.Height()/2+1, fmt.Sprintf("need %dx%d", MinWidth, MinHeight), core.ColorGray)
		return
	}

	editorH := len(g.Fields()) + 1
	// title + plot + editor + history + status/message
	plotH := s.Height() - 1 - editorH - 2
	plot := core.NewRect(0, 1, s.Width(), plotH)

	g.renderHeader(s)
	g.renderPlot(s, plot)
	g.renderEditor(s, core.NewRect(0, plot.Bottom(), s.Width(), editorH))
	g.renderHistory(s, plot.Bottom()+editorH)
	g.renderStatus(s, plot.Bottom()+editorH+1)
}

func (g *Game) renderHeader(s *core.Screen) {
	s.DrawTextColor(1, 0, "WAVLE", core.ColorBrightWhite)

	mode := "fixed"
	if g.gameCfg.FrequencyMode == engine.FrequencyTiered {
		mode = "tiered"
	}
	if g.gameCfg.UsePhase {
		mode += "+phase"
	}
	s.DrawTextColor(8, 0, fmt.Sprintf("round %d  %s", g.round, mode), core.ColorGray)

	progress := g.progressLabel()
	s.DrawTextColor(s.Width()-len(progress)-1, 0, progress, core.ColorCurrent)

	if g.paused {
		s.DrawTextCentered(0, "PAUSED", core.ColorYellow)
	}
}

// progressLabel shows which submission comes next.
func (g *Game) progressLabel() string {
	next := min(g.eng.AttemptCount()+1, g.eng.MaxAttempts())
	return fmt.Sprintf("Submit %d/%d", next, g.eng.MaxAttempts())
}

func (g *Game) renderPlot(s *core.Screen, area core.Rect) {
	s.DrawBox(area, core.ColorAxis)
	inner := area.Inset(1)
	if inner.Empty() {
		return
	}

	target := g.eng.Target()
	current := g.eng.CurrentWave()
	last, hasLast := g.eng.LastPlayerWave()

	extent := floats.Max([]float64{
		1,
		engine.TotalAmplitude(target),
		engine.TotalAmplitude(current),
		engine.TotalAmplitude(last),
	})

	mid := core.ScaleToRow(0, extent, inner.Y, inner.H)
	s.DrawHLine(inner.X, mid, inner.W, runeAxis, core.ColorAxis)

	n := inner.W
	if hasLast {
		s.PlotSeries(inner, engine.Sample(last, n, g.offset), extent, runeAttempt, core.ColorAttempt)
	}
	s.PlotSeries(inner, engine.Sample(target, n, g.offset), extent, runeTarget, core.ColorTarget)
	s.PlotSeries(inner, engine.Sample(current, n, g.offset), extent, runeCurrent, core.ColorCurrent)

	legend := []struct {
		label string
		color core.Color
	}{
		{"● target", core.ColorTarget},
		{"• yours", core.ColorCurrent},
		{"· last", core.ColorAttempt},
	}
	x := area.X + 2
	for _, l := range legend {
		s.DrawTextColor(x, area.Y, " "+l.label+" ", l.color)
		x += len([]rune(l.label)) + 3
	}
}

func (g *Game) renderEditor(s *core.Screen, area core.Rect) {
	slots := g.eng.SlotCount()
	colW := max(area.W/max(slots, 1), 1)
	current := g.eng.CurrentWave()
	fields := g.Fields()

	for i, w := range current {
		x := area.X + i*colW
		if x >= area.Right() {
			break
		}
		selected := i == g.slot
		header := fmt.Sprintf(" slot %d", i+1)
		if g.gameCfg.FrequencyMode == engine.FrequencyFixedSlots {
			header += fmt.Sprintf(" f=%g", w.Frequency)
		}
		color := core.SlotColor(i)
		if selected {
			header = ">" + header[1:]
			color = core.ColorBrightWhite
		}
		s.DrawTextColor(x, area.Y, clip(header, colW), color)

		for row, f := range fields {
			line := fmt.Sprintf(" %s %s", fieldLabel(f), formatField(w, f))
			c := core.ColorDefault
			if selected && f == g.field {
				line = ">" + line[1:]
				c = core.ColorCurrent
			}
			s.DrawTextColor(x, area.Y+1+row, clip(line, colW), c)
		}
	}
}

func (g *Game) renderHistory(s *core.Screen, y int) {
	scores := g.eng.Scores()
	x := 1
	s.DrawTextColor(x, y, "History:", core.ColorGray)
	x += len("History:") + 1
	if len(scores) == 0 {
		s.DrawTextColor(x, y, "no attempts yet", core.ColorGray)
		return
	}
	for i, score := range scores {
		cell := fmt.Sprintf("%d:%d%%", i+1, score)
		s.DrawTextColor(x, y, cell, core.ScoreColor(score, engine.WinThreshold))
		x += len(cell) + 2
	}
}

func (g *Game) renderStatus(s *core.Screen, y int) {
	best, _ := g.eng.BestScore()
	switch g.eng.Status() {
	case engine.StatusWin:
		s.DrawTextCentered(y, fmt.Sprintf("MATCHED! best %d%%  (R: new wave)", best), core.ColorWin)
		return
	case engine.StatusLose:
		s.DrawTextCentered(y, fmt.Sprintf("OUT OF ATTEMPTS  best %d%%  (R: new wave)", best), core.ColorLose)
		return
	}
	if g.message != "" {
		s.DrawTextCentered(y, g.message, core.ColorBrightWhite)
	}
}

func fieldLabel(f Field) string {
	switch f {
	case FieldAmplitude:
		return "A"
	case FieldFrequency:
		return "F"
	default:
		return "P"
	}
}

func formatField(w engine.Wave, f Field) string {
	switch f {
	case FieldAmplitude:
		return fmt.Sprintf("%.2f", w.Amplitude)
	case FieldFrequency:
		return fmt.Sprintf("%.1f", w.Frequency)
	default:
		return fmt.Sprintf("%.2f", w.Phase)
	}
}

func clip(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s + strings.Repeat(" ", width-len(r))
	}
	return string(r[:width])
}
