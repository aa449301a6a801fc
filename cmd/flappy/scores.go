package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/app"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagPlain bool
	flagReset bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Browse the best scores and recent games of every difficulty.

With --plain the top scores of the selected difficulty are printed instead.

Examples:
  flappy scores
  flappy scores --plain --difficulty hard
  flappy scores --reset --difficulty easy`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores instead of opening the browser")
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete the scores of the selected difficulty")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to print with --plain")
}

func runScores(cmd *cobra.Command, args []string) {
	if err := showScores(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func showScores(w io.Writer) error {
	cfg, preset, err := app.LoadConfig(settings)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	board := boardFor(cfg, preset)

	switch {
	case flagReset:
		if err := store.ClearScores(board.Key); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Fprintf(w, "Scores cleared - %s\n", board.Title)

	case flagPlain:
		if err := printScores(w, store, board, flagLimit); err != nil {
			return fmt.Errorf("retrieving scores: %w", err)
		}

	default:
		width, height := terminalSize()
		return tui.RunScoreboard(store, allBoards(cfg), width, height)
	}
	return nil
}

// boardFor returns the score board of a difficulty preset.
func boardFor(cfg config.FlappyConfig, preset config.DifficultyPreset) tui.Board {
	title := string(preset)
	if title != "" {
		title = strings.ToUpper(title[:1]) + title[1:]
	}
	return tui.Board{Key: app.BoardKey(cfg, preset), Title: title}
}

func allBoards(cfg config.FlappyConfig) []tui.Board {
	var boards []tui.Board
	for _, p := range app.Presets() {
		boards = append(boards, boardFor(cfg, p))
	}
	return boards
}

// printScores writes the top scores of one board as a plain table.
func printScores(w io.Writer, store *storage.Store, board tui.Board, limit int) error {
	scores, err := store.TopScores(board.Key, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n", board.Title)
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'flappy play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Fprintln(w)
	best, err := store.ReadHighScore(board.Key)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Best: %d\n", best)
	return nil
}
