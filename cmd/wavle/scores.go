package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wavle/internal/storage"
)

var (
	flagLimit  int
	flagRecent bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded rounds",
	Long: `Display the best recorded rounds: wins first, then by similarity and
fewest attempts. Use --recent for the latest rounds instead.

Examples:
  wavle scores
  wavle scores --recent --limit 20
  wavle scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the most recent rounds")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded rounds")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening results database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(); err != nil {
			return fmt.Errorf("error clearing results: %w", err)
		}
		fmt.Println("All results deleted.")
		return nil
	}

	title := "Best rounds"
	var results []storage.Result
	if flagRecent {
		title = "Recent rounds"
		results, err = store.RecentResults(flagLimit)
	} else {
		results, err = store.TopResults(flagLimit)
	}
	if err != nil {
		return fmt.Errorf("error retrieving results: %w", err)
	}

	fmt.Println(title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'wavle play' to record the first one!")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-5s  %-6s  %-11s  %-6s  %s\n", "Rank", "Result", "Best", "Tries", "Mode", "Phase", "Date")
	fmt.Printf("  %-4s  %-6s  %-5s  %-6s  %-11s  %-6s  %s\n", "----", "------", "----", "-----", "----", "-----", "----")
	for i, r := range results {
		fmt.Printf("  %-4d  %-6s  %-5s  %-6s  %-11s  %-6v  %s\n",
			i+1,
			r.Outcome,
			fmt.Sprintf("%d%%", r.BestSimilarity),
			fmt.Sprintf("%d/%d", r.Attempts, r.MaxAttempts),
			r.FrequencyMode,
			r.UsePhase,
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
		)
	}

	stats, err := store.Stats()
	if err == nil && stats.Games > 0 {
		fmt.Println()
		fmt.Printf("Rounds: %d  Won: %d  Lost: %d  Win rate: %.0f%%\n",
			stats.Games, stats.Wins, stats.Losses, stats.WinRate()*100)
		fmt.Printf("Best: %d%%  Average: %.1f%%", stats.BestSimilarity, stats.AvgSimilarity)
		if stats.Wins > 0 {
			fmt.Printf("  Attempts per win: %.1f", stats.AvgWinAttempts)
		}
		fmt.Println()
	}
	return nil
}
