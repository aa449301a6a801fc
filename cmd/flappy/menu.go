package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/app"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty, then play",
	Long: `Start with a difficulty picker showing the best score of each preset.
After a game you return to the picker to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  Q/Esc        - Quit

Examples:
  flappy menu
  flappy menu --fps 30 --sound`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

var presetDescriptions = map[config.DifficultyPreset]string{
	config.DifficultyNormal: "Pipes as configured",
	config.DifficultyEasy:   "Slower pipes and wider gaps",
	config.DifficultyHard:   "Faster pipes and narrower gaps",
	config.DifficultyFixed:  "Config values without any scaling",
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, logCloser, err := app.NewLogger(settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	// Menu loop
	for {
		base, _, err := app.LoadConfig(settings)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			return
		}

		width, height := terminalSize()
		item, ok, err := tui.RunDifficultyMenu(menuItems(base, store), width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		if !ok {
			return
		}

		s := settings
		s.Difficulty = string(item.Preset)
		cfg, preset, err := app.LoadConfig(s)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			return
		}
		if err := play(cfg, preset, store, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
	}
}

// menuItems lists every preset with its stored best score.
func menuItems(cfg config.FlappyConfig, store *storage.Store) []tui.MenuItem {
	var items []tui.MenuItem
	for _, p := range app.Presets() {
		board := boardFor(cfg, p)
		item := tui.MenuItem{Preset: p, Title: board.Title, Desc: presetDescriptions[p]}
		if store != nil {
			if best, err := store.ReadHighScore(board.Key); err == nil {
				item.Best = best
			}
		}
		items = append(items, item)
	}
	return items
}
