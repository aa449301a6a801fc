package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// memStore is an in-memory ScoreStore that also records sessions.
type memStore struct {
	high     int
	readErr  error
	writeErr error
	writes   []int
	sessions []int
}

func (m *memStore) ReadHighScore() (int, error) {
	if m.readErr != nil {
		return 0, m.readErr
	}
	return m.high, nil
}

func (m *memStore) WriteHighScore(score int) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.high = score
	m.writes = append(m.writes, score)
	return nil
}

func (m *memStore) RecordSession(score int) error {
	m.sessions = append(m.sessions, score)
	return nil
}

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Width:    800,
		Height:   600,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestGame(t *testing.T, store ScoreStore) *Game {
	t.Helper()
	g := New(Options{Config: config.DefaultFlappyConfig(), Store: store})
	g.Reset(testRuntime(1))
	return g
}

// startedGame returns a game that has just entered the playing phase.
func startedGame(t *testing.T, store ScoreStore) *Game {
	t.Helper()
	g := newTestGame(t, store)
	res := g.Step(input(core.ActionJump))
	if g.Phase() != PhasePlaying || !res.Has(EventStart) {
		t.Fatalf("expected playing after first jump, got %s", g.Phase())
	}
	return g
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func press(x, y float64) core.InputFrame {
	in := core.NewInputFrame()
	in.Press(x, y)
	return in
}
