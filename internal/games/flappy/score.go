package flappy

import (
	"io"

	"github.com/charmbracelet/log"
)

// ScoreStore persists the best score under a fixed key.
type ScoreStore interface {
	ReadHighScore() (int, error)
	WriteHighScore(score int) error
}

// SessionRecorder is implemented by stores that also keep a play history.
type SessionRecorder interface {
	RecordSession(score int) error
}

// ScoreTracker counts the current score and keeps the best score in sync
// with its store. Store failures are logged and never reach the game.
type ScoreTracker struct {
	score    int
	high     int
	newHigh  bool // the best score was raised this session
	finished bool
	store    ScoreStore
	logger   *log.Logger
}

// NewScoreTracker loads the best score from store. A nil store or a read
// error starts from zero.
func NewScoreTracker(store ScoreStore, logger *log.Logger) *ScoreTracker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	t := &ScoreTracker{store: store, logger: logger}
	if store == nil {
		return t
	}
	high, err := store.ReadHighScore()
	if err != nil {
		logger.Warn("cannot read high score", "error", err)
		return t
	}
	t.high = max(high, 0)
	return t
}

// Score returns the current score.
func (t *ScoreTracker) Score() int { return t.score }

// High returns the best score.
func (t *ScoreTracker) High() int { return t.high }

// NewHigh reports whether this session raised the best score.
func (t *ScoreTracker) NewHigh() bool { return t.newHigh }

// Add increments the score by n and raises the best score when exceeded.
// Returns true when the best score changed.
func (t *ScoreTracker) Add(n int) bool {
	if n <= 0 {
		return false
	}
	t.score += n
	if t.score <= t.high {
		return false
	}
	t.high = t.score
	t.newHigh = true
	if t.store != nil {
		if err := t.store.WriteHighScore(t.high); err != nil {
			t.logger.Warn("cannot write high score", "score", t.high, "error", err)
		}
	}
	return true
}

// Reset zeroes the current score for a new session. The best score stays.
func (t *ScoreTracker) Reset() {
	t.score = 0
	t.newHigh = false
	t.finished = false
}

// Finish records the session in the play history, once, when anything was scored.
func (t *ScoreTracker) Finish() {
	if t.finished {
		return
	}
	t.finished = true
	if t.score == 0 {
		return
	}
	rec, ok := t.store.(SessionRecorder)
	if !ok {
		return
	}
	if err := rec.RecordSession(t.score); err != nil {
		t.logger.Warn("cannot record session", "score", t.score, "error", err)
	}
}
