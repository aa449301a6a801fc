package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/app"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/loop"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagFrames int
	flagRate   int
	flagSave   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the autopilot headless",
	Long: `Run the game without a screen, steered by the built-in autopilot,
and print a summary of every session.

The default rate of 0 runs as fast as possible. With --save the sessions
are recorded on the selected difficulty's score board.

Examples:
  flappy sim
  flappy sim --frames 36000 --seed 7
  flappy sim --rate 60 --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Number of ticks to simulate")
	simCmd.Flags().IntVar(&flagRate, "rate", 0, "Ticks per second (0 = unthrottled)")
	simCmd.Flags().BoolVar(&flagSave, "save", false, "Record sessions in the scores database")
}

// simReport summarises a headless run.
type simReport struct {
	Frames   int
	Sessions []int // final score of every ended session
	Best     int
	Elapsed  time.Duration
}

func runSim(cmd *cobra.Command, args []string) {
	if err := sim(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// sim runs the headless session and writes its report to w. Deferred
// closes run before runSim exits.
func sim(w io.Writer) error {
	cfg, preset, err := app.LoadConfig(settings)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg.Audio.Muted = true

	logger, logCloser, err := app.NewLogger(settings)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	opts := flappy.Options{Config: cfg, Logger: logger}
	if flagSave {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("opening scores database: %w", err)
		}
		defer store.Close()
		opts.Store = store.Keyed(app.BoardKey(cfg, preset))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	game := flappy.New(opts)
	game.Reset(core.RuntimeConfig{
		Width:    cfg.World.Width,
		Height:   cfg.World.Height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	})

	sched := loop.New(flagRate)
	sched.MaxFrames = flagFrames

	report, err := simulate(ctx, game, sched, flappy.Autopilot{Restart: true})
	if err != nil {
		return fmt.Errorf("running simulation: %w", err)
	}
	printReport(w, report, preset)
	return nil
}

// simulate steps the game under the autopilot until the scheduler stops.
func simulate(ctx context.Context, g *flappy.Game, sched *loop.Scheduler, pilot flappy.Autopilot) (simReport, error) {
	var report simReport
	start := time.Now()

	err := sched.Run(ctx, func(time.Time) error {
		res := g.Step(pilot.Next(g))
		if res.Has(flappy.EventHit) {
			report.Sessions = append(report.Sessions, res.State.Score)
		}
		report.Best = res.State.HighScore
		return nil
	})

	report.Frames = sched.Frames()
	report.Elapsed = time.Since(start)
	return report, err
}

func printReport(w io.Writer, r simReport, preset config.DifficultyPreset) {
	fmt.Fprintf(w, "Simulated %d ticks (%s) in %s\n", r.Frames, preset, r.Elapsed.Round(time.Millisecond))
	fmt.Fprintln(w)

	if len(r.Sessions) == 0 {
		fmt.Fprintln(w, "No session ended.")
	} else {
		total := 0
		for i, s := range r.Sessions {
			fmt.Fprintf(w, "  #%-4d  %d\n", i+1, s)
			total += s
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Sessions: %d   Average: %.1f\n", len(r.Sessions), float64(total)/float64(len(r.Sessions)))
	}
	fmt.Fprintf(w, "Best: %d\n", r.Best)
}
