package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wavle/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List difficulty presets and the effective config",
	Long: `Shows the difficulty presets and prints the config that 'wavle play'
would use with the current --config and --difficulty flags, as YAML.
The output can be saved and passed back with --config.`,
	Args: cobra.NoArgs,
	RunE: runPresets,
}

func runPresets(_ *cobra.Command, _ []string) error {
	presets := config.Presets()

	fmt.Println("Difficulty presets:")
	fmt.Println()

	maxLen := len("Preset")
	for _, p := range presets {
		maxLen = max(maxLen, len(p.Preset))
	}

	fmt.Printf("  %-*s  %s\n", maxLen, "Preset", "Description")
	fmt.Printf("  %-*s  %s\n", maxLen, "------", "-----------")
	for _, p := range presets {
		fmt.Printf("  %-*s  %s\n", maxLen, p.Preset, p.Description)
	}

	cfg, err := loadConfig(flagDifficulty, flagSlots)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Effective config:")
	fmt.Println()
	fmt.Print(string(data))
	return nil
}
