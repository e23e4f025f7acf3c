package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wavle/internal/games/wavle"
	"github.com/vovakirdan/wavle/internal/platform/tui"
	"github.com/vovakirdan/wavle/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play wavle",
	Long: `Start a round with the configured settings.

Controls:
  Left/Right, Tab  - Select slot
  Up/Down          - Select amplitude, frequency or phase
  +/-              - Adjust the value ([ and ] for big steps)
  Enter/Space      - Submit the current wave
  X                - Clear the current wave
  R                - New target
  P                - Pause animation
  ?                - Toggle help
  Q/Esc/Ctrl+C     - Quit

Difficulty options:
  easy   - Fixed frequencies, no phase, 8 attempts
  normal - Fixed frequencies with phase, 6 attempts
  hard   - Random frequencies with phase, 5 attempts
  fixed  - Config file as is

Examples:
  wavle play
  wavle play --difficulty hard
  wavle play --seed 42
  wavle play --slots 3
  wavle play --config ./my-wavle.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, cleanup, err := newLogger()
	if err != nil {
		return err
	}
	defer cleanup()

	cfg, err := loadConfig(flagDifficulty, flagSlots)
	if err != nil {
		return err
	}

	game, err := wavle.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("error creating game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		logger.Warn("results disabled", "err", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
