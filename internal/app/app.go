// Package app holds the start-up plumbing shared by the terminal and window
// binaries: configuration, difficulty and logging.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Settings are the command line choices common to every front end.
type Settings struct {
	ConfigPath string
	Difficulty string
	Sound      bool // start unmuted
	LogFile    string
	LogLevel   string
}

// ResolveConfig reads the configuration and settles the difficulty section
// without scaling the obstacles. A --difficulty flag overrides the file;
// without it the file's difficulty section is used as written.
func ResolveConfig(s Settings) (config.FlappyConfig, config.DifficultyPreset, error) {
	var flagPreset config.DifficultyPreset
	if s.Difficulty != "" {
		p, err := config.ParsePreset(s.Difficulty)
		if err != nil {
			return config.FlappyConfig{}, "", err
		}
		flagPreset = p
	}

	cfg, err := config.LoadFlappy(s.ConfigPath)
	if err != nil {
		return cfg, "", err
	}
	if flagPreset != "" {
		config.SelectPreset(&cfg, flagPreset)
	}
	if s.Sound {
		cfg.Audio.Muted = false
	}
	return cfg, config.PresetFor(cfg.Difficulty), nil
}

// LoadConfig resolves the configuration and scales the obstacle stream by
// its difficulty: the values a game runs with.
func LoadConfig(s Settings) (config.FlappyConfig, config.DifficultyPreset, error) {
	cfg, preset, err := ResolveConfig(s)
	if err != nil {
		return cfg, preset, err
	}
	config.ApplyDifficulty(&cfg)
	return cfg, preset, nil
}

// BoardKey names the high score slot of a preset. Normal play uses the
// configured key as is so existing scores carry over.
func BoardKey(cfg config.FlappyConfig, preset config.DifficultyPreset) string {
	if preset == config.DifficultyNormal || preset == "" {
		return cfg.Storage.HighScoreKey
	}
	return cfg.Storage.HighScoreKey + ":" + string(preset)
}

// Presets lists the difficulty presets in menu order.
func Presets() []config.DifficultyPreset {
	return []config.DifficultyPreset{
		config.DifficultyNormal,
		config.DifficultyEasy,
		config.DifficultyHard,
		config.DifficultyFixed,
	}
}

// NewLogger builds the structured logger. The terminal front end owns the
// screen, so logs only go to a file; an empty path discards them.
func NewLogger(s Settings) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if s.LogLevel != "" {
		l, err := log.ParseLevel(s.LogLevel)
		if err != nil {
			return nil, nil, fmt.Errorf("app: invalid log level %q: %w", s.LogLevel, err)
		}
		level = l
	}

	var (
		w      io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)
	if s.LogFile != "" {
		path := expandHome(s.LogFile)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("app: cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("app: cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           level,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
