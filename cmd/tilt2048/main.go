// tilt2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	tilt2048 list              - List game variants
//	tilt2048 play [variant]    - Play a variant, or pick one from the menu
//	tilt2048 menu              - Start the menu to pick variants interactively
//	tilt2048 serve             - Start SSH server for remote play
//	tilt2048 scores [variant]  - Show high scores
//	tilt2048 sim               - Apply tilts to a fixed board and print it
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.tilt2048/scores.db)
//	--config <path>     - Use a custom 2048 config YAML
//	--difficulty <name> - easy, normal, hard or fixed
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilt2048/internal/config"
	"github.com/vovakirdan/tilt2048/internal/games/t2048"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilt2048",
	Short: "2048 in your terminal",
	Long: `tilt2048 is the 2048 sliding-tile puzzle for the terminal.

Tilt the board to slide every tile toward one edge. Equal tiles that meet
merge into their sum, once per tilt. A new tile appears after every tilt
that changes the board. Reach the target tile before the board locks up.

Available commands:
  list     - Show all game variants
  play     - Play a variant directly or pick one from the menu
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Tilt a fixed board and print each step

Examples:
  tilt2048 play
  tilt2048 play 2048_5x5
  tilt2048 serve --ssh :2222
  tilt2048 scores 2048_classic
  tilt2048 sim --rows "0,2,2,2/0,0,0,0/0,0,0,0/0,0,0,0" --moves R`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tilt2048/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom 2048 config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// setup runs before every command: it installs the logger and loads the game
// configuration so all variants are created with the same settings.
func setup(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	log.SetDefault(logger)

	cfg, err := config.LoadT2048(flagConfig)
	if err != nil {
		return err
	}

	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return err
	}
	config.ApplyT2048Preset(&cfg, preset)

	if err := t2048.Configure(cfg); err != nil {
		return err
	}
	log.Debug("config loaded", "path", flagConfig, "difficulty", preset, "size", cfg.Board.Size, "levels", len(cfg.Levels))
	return nil
}
