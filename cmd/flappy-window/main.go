// flappy-window runs the game in a desktop window, or in the browser when
// built for js/wasm.
//
// Usage:
//
//	flappy-window [--difficulty hard] [--sound] [--width 800 --height 600]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/app"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/window"
)

var (
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagWidth  int
	flagHeight int
	settings   app.Settings
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy-window",
	Short: "Flappy Bird in a window",
	Long: `Keep the bird in the air and fly it through the gaps between the pipes.

Controls:
  Space/Up/W, click or tap - Flap (or start from the menu)
  P                        - Pause
  R/Enter                  - Restart (after game over)
  M                        - Mute/unmute
  Q/Esc                    - Quit`,
	Args: cobra.NoArgs,
	Run:  run,
}

func init() {
	f := rootCmd.Flags()
	f.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	f.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	f.StringVar(&flagDBPath, "db", "~/.flappy/scores.db", "Path to scores database")
	f.IntVar(&flagWidth, "width", 0, "Window width (0 = from config)")
	f.IntVar(&flagHeight, "height", 0, "Window height (0 = from config)")
	f.StringVar(&settings.ConfigPath, "config", "", "Path to custom game config YAML")
	f.StringVar(&settings.Difficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	f.BoolVar(&settings.Sound, "sound", false, "Start with sound on (toggle in game with M)")
	f.StringVar(&settings.LogFile, "log-file", "", "Write logs to this file")
	f.StringVar(&settings.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func run(cmd *cobra.Command, args []string) {
	if err := runWindow(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runWindow plays until the window closes. Every resource it opens is
// released before it returns.
func runWindow() error {
	cfg, preset, err := app.LoadConfig(settings)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, logCloser, err := app.NewLogger(settings)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	width, height := flagWidth, flagHeight
	if width <= 0 {
		width = int(cfg.World.Width)
	}
	if height <= 0 {
		height = int(cfg.World.Height)
	}

	var store flappy.ScoreStore
	scores, err := window.OpenScores(flagDBPath, app.BoardKey(cfg, preset))
	if err != nil {
		logger.Warn("high scores disabled", "error", err)
	} else {
		defer scores.Close()
		store = scores
	}

	sound := window.NewAudio(cfg.Audio, logger)
	defer sound.Close()

	game := flappy.New(flappy.Options{
		Config: cfg,
		Store:  store,
		Audio:  sound,
		Logger: logger,
	})

	if err := window.Run(window.Options{
		Game:     game,
		Width:    width,
		Height:   height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Logger:   logger,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
