package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wavle/internal/core"
	engine "github.com/vovakirdan/wavle/internal/games/wavle/core"
)

var (
	flagRounds int
	flagPlot   bool
)

var targetCmd = &cobra.Command{
	Use:   "target",
	Short: "Print the target wave generated for a seed",
	Long: `Generate targets the way a game session does and print them.

Round N here is the target of round N in 'wavle play' with the same
seed and config, so this doubles as a spoiler and a debugging aid.

Examples:
  wavle target --seed 42
  wavle target --seed 42 --rounds 3
  wavle target --seed 42 --difficulty hard --plot=false`,
	Args: cobra.NoArgs,
	RunE: runTarget,
}

func init() {
	targetCmd.Flags().IntVar(&flagRounds, "rounds", 1, "Number of consecutive rounds to print")
	targetCmd.Flags().BoolVar(&flagPlot, "plot", true, "Draw the combined signal")
}

func runTarget(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(flagDifficulty, flagSlots)
	if err != nil {
		return err
	}
	gc, err := cfg.GameConfig()
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	eng, err := engine.New(gc, engine.NewSource(seed))
	if err != nil {
		return err
	}

	fmt.Printf("Seed %d, %s frequencies, phase %v\n", seed, gc.FrequencyMode, gc.UsePhase)
	for round := 1; round <= max(flagRounds, 1); round++ {
		if round > 1 {
			if err := eng.InitializeGame(gc); err != nil {
				return err
			}
		}
		fmt.Println()
		printTarget(os.Stdout, round, eng)
	}
	return nil
}

func printTarget(w io.Writer, round int, eng *engine.Engine) {
	fmt.Fprintf(w, "Round %d\n", round)
	fmt.Fprintf(w, "  %-4s  %-9s  %-9s  %s\n", "#", "Amplitude", "Frequency", "Phase")
	for i, wave := range eng.Target() {
		fmt.Fprintf(w, "  %-4d  %-9.4f  %-9.2f  %.2f\n", i+1, wave.Amplitude, wave.Frequency, wave.Phase)
	}

	amps := eng.TargetAmplitudes()
	fmt.Fprintf(w, "  amplitude sum %.4f", amps.Sum())
	if amps.Corrected {
		fmt.Fprintf(w, " (dominant correction on #%d replaced %.4f)", amps.CorrectedIndex+1, amps.Replaced)
	}
	fmt.Fprintln(w)

	if flagPlot {
		fmt.Fprintln(w, plotTarget(eng.Target(), 64, 11))
	}
}

// plotTarget draws one period of the combined signal as text.
func plotTarget(waves []engine.Wave, width, height int) string {
	screen := core.NewScreen(width, height)
	area := screen.Bounds()
	extent := max(engine.TotalAmplitude(waves), 1)

	screen.DrawHLine(0, height/2, width, '─', core.ColorAxis)
	screen.PlotSeries(area, engine.Sample(waves, width, 0), extent, '●', core.ColorTarget)
	return screen.String()
}
