package main

import (
	"fmt"
	"slices"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilt2048/internal/registry"
	"github.com/vovakirdan/tilt2048/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Display the top scores for a variant, or a summary of every variant
that has been played.

Examples:
  tilt2048 scores
  tilt2048 scores 2048
  tilt2048 scores 2048_endless --limit 20`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to show")
}

func runScores(_ *cobra.Command, args []string) error {
	if flagScoresLimit <= 0 {
		return fmt.Errorf("--limit must be positive, got %d", flagScoresLimit)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if len(args) == 0 {
		return printSummary(store)
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q (run 'tilt2048 list' to see variants)", gameID)
	}
	return printVariantScores(store, gameID)
}

// printSummary prints one line per variant that has recorded scores.
func printSummary(store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	fmt.Println("High Scores")
	fmt.Println()

	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	fmt.Printf("  %-14s  %6s  %10s  %10s  %s\n", "Variant", "Games", "Best", "Average", "Last played")
	fmt.Printf("  %-14s  %6s  %10s  %10s  %s\n", "-------", "-----", "----", "-------", "-----------")
	for _, id := range ids {
		gs := stats[id]
		fmt.Printf("  %-14s  %6d  %10s  %10s  %s\n",
			id,
			gs.GamesCount,
			humanize.Comma(int64(gs.HighScore)),
			humanize.Comma(int64(gs.AvgScore)),
			humanize.Time(gs.LastPlayed),
		)
	}
	return nil
}

// printVariantScores prints the leaderboard of one variant. Full game
// results are preferred; plain scores cover databases without them.
func printVariantScores(store *storage.Store, gameID string) error {
	title := gameID
	for _, g := range registry.List() {
		if g.ID == gameID {
			title = g.Title
		}
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	results, err := store.TopResults(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	if len(results) > 0 {
		fmt.Printf("  %-4s  %10s  %6s  %6s  %-6s  %-12s  %s\n", "Rank", "Score", "Tile", "Moves", "Result", "Player", "Date")
		fmt.Printf("  %-4s  %10s  %6s  %6s  %-6s  %-12s  %s\n", "----", "-----", "----", "-----", "------", "------", "----")
		for i, r := range results {
			player := r.Player
			if player == "" {
				player = "-"
			}
			outcome := "over"
			if r.Won {
				outcome = "won"
			}
			fmt.Printf("  %-4d  %10s  %6d  %6d  %-6s  %-12s  %s\n",
				i+1,
				humanize.Comma(int64(r.Score)),
				r.MaxTile,
				r.Moves,
				outcome,
				player,
				r.CreatedAt.Format("2006-01-02 15:04"),
			)
		}
	} else {
		scores, err := store.TopScores(gameID, flagScoresLimit)
		if err != nil {
			return err
		}
		if len(scores) == 0 {
			fmt.Println("No scores recorded yet.")
			fmt.Println()
			fmt.Printf("Play 'tilt2048 play %s' to set the first high score!\n", gameID)
			return nil
		}

		fmt.Printf("  %-4s  %10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Printf("  %-4d  %10s  %s\n", i+1, humanize.Comma(int64(entry.Score)), entry.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	fmt.Println()
	if best, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best score: %s\n", humanize.Comma(int64(best)))
	}
	if tile, err := store.BestTile(gameID); err == nil && tile > 0 {
		fmt.Printf("Best tile:  %d\n", tile)
	}
	return nil
}
