// wavle is a terminal puzzle: rebuild a hidden composite sine wave from its components.
//
// Usage:
//
//	wavle play              - Play a round with the configured settings
//	wavle menu              - Pick a difficulty interactively
//	wavle presets           - List difficulty presets and the active config
//	wavle target            - Print the target generated for a seed
//	wavle scores            - Show the best recorded rounds
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 30)
//	--seed <value>         - Set RNG seed for reproducible targets
//	--db <path>            - Set database path (default: ~/.wavle/results.db)
//	--config <path>        - Use a custom YAML config
//	--difficulty <preset>  - Apply a difficulty preset on top of the config
//	--slots <n>            - Number of waves to edit (1-5)
//	--log <path>           - Write logs to a file (default: discard)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wavle/internal/config"
	"github.com/vovakirdan/wavle/internal/core"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagSlots      int
	flagLogPath    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wavle",
	Short: "Wavle - match the hidden wave in your terminal",
	Long: `Wavle hides a signal built from a few sine waves. Shape your own
components until the combined wave matches it, within a limited number
of attempts.

Available commands:
  play     - Play directly with the configured settings
  menu     - Interactive difficulty picker and scoreboard
  presets  - Show difficulty presets and the effective config
  target   - Print the target generated for a seed
  scores   - View the best recorded rounds

Examples:
  wavle play
  wavle play --difficulty hard
  wavle menu
  wavle target --seed 42
  wavle scores`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.wavle/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().IntVar(&flagSlots, "slots", 0, "Number of waves to edit, 1-5 (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(targetCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger opens the log sink. The terminal UI owns stdout, so logs only
// go to a file when --log is set.
func newLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = io.Discard
	cleanup := func() {}
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		cleanup = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "wavle",
		Level:           level,
	})
	return logger, cleanup, nil
}

// loadConfig resolves the YAML config and applies preset and the wave count
// on top of it. A zero slots keeps the configured count.
func loadConfig(preset string, slots int) (config.WavleConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.WavleConfig{}, err
	}

	p, err := config.ParsePreset(preset)
	if err != nil {
		return config.WavleConfig{}, err
	}
	config.ApplyPreset(&cfg, p)
	if err := config.SetSlotCount(&cfg, slots); err != nil {
		return config.WavleConfig{}, err
	}

	if err := cfg.Validate(); err != nil {
		return config.WavleConfig{}, err
	}
	return cfg, nil
}

// runtimeConfig sizes the screen to the terminal, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
