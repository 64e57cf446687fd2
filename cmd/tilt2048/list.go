package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilt2048/internal/games/t2048"
	"github.com/vovakirdan/tilt2048/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all game variants",
	Long:  `Shows every registered 2048 variant and the campaign levels.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Campaign levels:")
	targets := t2048.LevelTargets()
	for i, name := range t2048.LevelNames() {
		fmt.Printf("  %2d. %-18s target %d\n", i+1, name, targets[i])
	}

	fmt.Println()
	fmt.Println("Run 'tilt2048 play <id>' to play a variant.")
}
