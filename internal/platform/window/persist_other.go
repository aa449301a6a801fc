//go:build !js

package window

import (
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Scores is the high score store of the window front end.
type Scores interface {
	ReadHighScore() (int, error)
	WriteHighScore(score int) error
	Close() error
}

type dbScores struct {
	storage.KeyedScores
}

func (s dbScores) Close() error { return s.Store.Close() }

// OpenScores opens the SQLite scores database. Finished sessions are
// recorded alongside the best score.
func OpenScores(dbPath, key string) (Scores, error) {
	store, err := storage.Open(dbPath)
	if err != nil {
		return nil, err
	}
	return dbScores{store.Keyed(key)}, nil
}
