package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wavle/internal/games/wavle"
	"github.com/vovakirdan/wavle/internal/platform/tui"
	"github.com/vovakirdan/wavle/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty from an interactive menu",
	Long: `Start wavle in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a difficulty.
Tab opens the scoreboard. After a game you return to the menu.

Examples:
  wavle menu
  wavle menu --fps 60
  wavle menu --db ./results.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, cleanup, err := newLogger()
	if err != nil {
		return err
	}
	defer cleanup()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		logger.Warn("results disabled", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	rc := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, rc)
		if err != nil {
			return err
		}
		rc = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, rc.ScreenW, rc.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		slots := menuResult.Slots
		if slots == 0 {
			slots = flagSlots
		}
		cfg, err := loadConfig(string(menuResult.Preset), slots)
		if err != nil {
			return err
		}

		game, err := wavle.New(cfg, logger)
		if err != nil {
			return fmt.Errorf("error creating game: %w", err)
		}

		// Fresh seed per game unless one was pinned on the command line
		if flagSeed == 0 {
			rc.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, rc, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
