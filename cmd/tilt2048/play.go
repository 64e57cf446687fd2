package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilt2048/internal/core"
	"github.com/vovakirdan/tilt2048/internal/platform/tui"
	"github.com/vovakirdan/tilt2048/internal/registry"
	"github.com/vovakirdan/tilt2048/internal/storage"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play 2048",
	Long: `Start playing the given variant. Without a variant the menu opens.

Controls:
  Arrows/WASD/HJKL - Tilt the board
  P/Space          - Pause
  Esc/B            - Pause, or back to the menu when paused or over
  R                - Restart (after game over)
  Ctrl+S           - Save a text screenshot
  Ctrl+Y           - Copy the screen to the clipboard
  Q/Ctrl+C         - Quit

Difficulty options scale how often a 4 spawns instead of a 2:
  easy   - half as often
  normal - as configured
  hard   - twice as often
  fixed  - as configured, ignoring presets

Examples:
  tilt2048 play
  tilt2048 play 2048_endless
  tilt2048 play 2048 --level 4
  tilt2048 play 2048_classic --difficulty hard
  tilt2048 play 2048_3x3 --config ./my-2048.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign level to start at (1-based)")
}

// screenConfig builds the runtime config from the terminal size and flags.
func screenConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return runMenuLoop()
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q (run 'tilt2048 list' to see variants)", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	if ls, ok := game.(registry.LevelStarter); ok && flagLevel > 0 {
		ls.StartAtLevel(flagLevel)
	}

	defer interactiveLog()()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	log.Info("game started", "variant", gameID, "level", flagLevel, "seed", flagSeed)
	backToMenu, err := tui.Run(game, store, screenConfig())
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	if backToMenu {
		return menuLoop(store)
	}
	return nil
}

// runMenuLoop opens the store and log file and runs the menu.
func runMenuLoop() error {
	defer interactiveLog()()

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	return menuLoop(store)
}

// menuLoop alternates between the menu and games until the user quits.
func menuLoop(store *storage.Store) error {
	cfg := screenConfig()

	for {
		res, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return nil

		case res.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(res.GameID)
		if err != nil {
			log.Error("cannot create game", "variant", res.GameID, "err", err)
			continue
		}
		if ls, ok := game.(registry.LevelStarter); ok && res.StartLevel > 0 {
			ls.StartAtLevel(res.StartLevel)
		}

		// Fresh seed for each game unless one was fixed on the command line
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		log.Info("game started", "variant", res.GameID, "level", res.StartLevel)
		backToMenu, err := tui.Run(game, store, cfg)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !backToMenu {
			return nil
		}
	}
}
