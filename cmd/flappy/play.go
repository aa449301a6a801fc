package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/app"
	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing in the terminal.

Controls:
  Space/Up/W   - Flap (or start from the menu)
  Mouse click  - Flap, start, mute button, Play Again button
  P            - Pause
  R/Enter      - Restart (after game over)
  M            - Mute/unmute
  Ctrl+S       - Save a text screenshot
  Q/Esc        - Quit

Difficulty options:
  easy   - Slower pipes, wider gaps
  normal - As configured
  hard   - Faster pipes, narrower gaps
  fixed  - Config values without any scaling

Examples:
  flappy play
  flappy play --difficulty hard
  flappy play --config ./my-flappy.yaml --sound`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := startPlay(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func startPlay() error {
	cfg, preset, err := app.LoadConfig(settings)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, logCloser, err := app.NewLogger(settings)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := play(cfg, preset, store, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// play runs one game until the player quits. store may be nil.
func play(cfg config.FlappyConfig, preset config.DifficultyPreset, store *storage.Store, logger *log.Logger) error {
	width, height := terminalSize()

	var scores flappy.ScoreStore
	if store != nil {
		scores = store.Keyed(app.BoardKey(cfg, preset))
	}

	speaker := audio.Open(cfg.Audio, logger)
	defer speaker.Close()

	game := flappy.New(flappy.Options{
		Config: cfg,
		Store:  scores,
		Audio:  speaker,
		Logger: logger,
	})
	logger.Info("starting", "difficulty", preset, "size", fmt.Sprintf("%dx%d", width, height), "sound", speaker.Enabled())

	return tui.Run(tui.Options{
		Game:     game,
		Width:    width,
		Height:   height,
		CellW:    cfg.Terminal.CellWidth,
		CellH:    cfg.Terminal.CellHeight,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Logger:   logger,
	})
}
