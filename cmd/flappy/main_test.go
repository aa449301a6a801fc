package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/app"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/loop"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func TestAllBoards(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	boards := allBoards(cfg)

	if len(boards) != 4 {
		t.Fatalf("len(boards) = %d, expected 4", len(boards))
	}
	if boards[0].Key != cfg.Storage.HighScoreKey || boards[0].Title != "Normal" {
		t.Errorf("boards[0] = %+v", boards[0])
	}
	if boards[2].Key != cfg.Storage.HighScoreKey+":hard" || boards[2].Title != "Hard" {
		t.Errorf("boards[2] = %+v", boards[2])
	}
}

func TestPrintScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer store.Close()

	board := boardFor(config.DefaultFlappyConfig(), config.DifficultyNormal)

	var buf bytes.Buffer
	if err := printScores(&buf, store, board, 10); err != nil {
		t.Fatalf("printScores() error: %v", err)
	}
	if !strings.Contains(buf.String(), "No scores recorded yet.") {
		t.Errorf("empty board output = %q", buf.String())
	}

	keyed := store.Keyed(board.Key)
	for _, s := range []int{3, 9, 5} {
		if err := keyed.RecordSession(s); err != nil {
			t.Fatalf("RecordSession() error: %v", err)
		}
	}
	if err := keyed.WriteHighScore(9); err != nil {
		t.Fatalf("WriteHighScore() error: %v", err)
	}

	buf.Reset()
	if err := printScores(&buf, store, board, 2); err != nil {
		t.Fatalf("printScores() error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "High Scores - Normal") {
		t.Errorf("missing title in %q", out)
	}
	if strings.Index(out, "  1     9") < 0 || strings.Index(out, "  2     5") < 0 {
		t.Errorf("unexpected ranking in %q", out)
	}
	if strings.Contains(out, "  3     3") {
		t.Errorf("limit not applied in %q", out)
	}
	if !strings.Contains(out, "Best: 9") {
		t.Errorf("missing best in %q", out)
	}
}

func TestSimulate(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	g := flappy.New(flappy.Options{Config: cfg})
	g.Reset(core.RuntimeConfig{Width: 800, Height: 600, TickRate: 60, Seed: 99})

	sched := loop.New(0)
	sched.MaxFrames = 5000

	report, err := simulate(context.Background(), g, sched, flappy.Autopilot{Restart: true})
	if err != nil {
		t.Fatalf("simulate() error: %v", err)
	}
	if report.Frames != 5000 {
		t.Errorf("Frames = %d, expected 5000", report.Frames)
	}
	if report.Best <= 0 {
		t.Errorf("Best = %d, expected the autopilot to score", report.Best)
	}
	for _, s := range report.Sessions {
		if s > report.Best {
			t.Errorf("session score %d above best %d", s, report.Best)
		}
	}
}

func TestSimulateCancelled(t *testing.T) {
	g := flappy.New(flappy.Options{})
	g.Reset(core.RuntimeConfig{Width: 800, Height: 600, Seed: 1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := simulate(ctx, g, loop.New(60), flappy.Autopilot{})
	if err != nil {
		t.Fatalf("simulate() error: %v", err)
	}
	if report.Frames != 0 {
		t.Errorf("Frames = %d, expected 0", report.Frames)
	}
}

func TestSimReturnsErrors(t *testing.T) {
	saved := settings
	defer func() { settings = saved }()

	settings = app.Settings{Difficulty: "impossible"}
	var buf bytes.Buffer
	err := sim(&buf)
	if err == nil || !strings.Contains(err.Error(), "loading config") {
		t.Errorf("sim() error = %v, expected a config error", err)
	}
	if buf.Len() != 0 {
		t.Errorf("output = %q, expected nothing on error", buf.String())
	}
}

func TestSimSavesAndCloses(t *testing.T) {
	savedSettings, savedSave, savedDB, savedFrames := settings, flagSave, flagDBPath, flagFrames
	defer func() {
		settings, flagSave, flagDBPath, flagFrames = savedSettings, savedSave, savedDB, savedFrames
	}()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "flappy.yaml")
	if err := os.WriteFile(cfgPath, nil, 0o600); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	settings = app.Settings{ConfigPath: cfgPath, LogFile: filepath.Join(dir, "flappy.log"), LogLevel: "debug"}
	flagSave, flagDBPath, flagFrames = true, filepath.Join(dir, "scores.db"), 600

	var buf bytes.Buffer
	if err := sim(&buf); err != nil {
		t.Fatalf("sim() error: %v", err)
	}
	if !strings.Contains(buf.String(), "Simulated 600 ticks (normal)") {
		t.Errorf("output = %q", buf.String())
	}

	if _, err := os.Stat(settings.LogFile); err != nil {
		t.Errorf("log file: %v", err)
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		t.Fatalf("reopening scores database: %v", err)
	}
	store.Close()
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	printReport(&buf, simReport{Frames: 600, Sessions: []int{2, 4}, Best: 4, Elapsed: time.Second}, config.DifficultyHard)

	out := buf.String()
	for _, want := range []string{"Simulated 600 ticks (hard)", "Sessions: 2   Average: 3.0", "Best: 4"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	printReport(&buf, simReport{Frames: 10}, config.DifficultyNormal)
	if !strings.Contains(buf.String(), "No session ended.") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestMenuItems(t *testing.T) {
	cfg := config.DefaultFlappyConfig()

	items := menuItems(cfg, nil)
	if len(items) != 4 {
		t.Fatalf("len(items) = %d, expected 4", len(items))
	}
	for _, it := range items {
		if it.Best != 0 || it.Desc == "" {
			t.Errorf("item %+v: expected zero best and a description", it)
		}
	}

	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer store.Close()
	if err := store.WriteHighScore(cfg.Storage.HighScoreKey+":easy", 17); err != nil {
		t.Fatalf("WriteHighScore() error: %v", err)
	}

	items = menuItems(cfg, store)
	if items[1].Preset != config.DifficultyEasy || items[1].Best != 17 {
		t.Errorf("items[1] = %+v, expected easy with best 17", items[1])
	}
	if items[0].Best != 0 {
		t.Errorf("items[0].Best = %d, expected 0", items[0].Best)
	}
}
