package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/particles"
)

// Event is something noteworthy that happened during a tick.
type Event int

const (
	EventStart   Event = iota // ready -> playing
	EventJump                 // impulse applied
	EventScore                // a pipe was cleared
	EventHit                  // collision; the session ended
	EventRestart              // ended -> playing
	EventMute                 // audio mute toggled
	EventPause                // pause toggled
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventJump:
		return "jump"
	case EventScore:
		return "score"
	case EventHit:
		return "hit"
	case EventRestart:
		return "restart"
	case EventMute:
		return "mute"
	case EventPause:
		return "pause"
	default:
		return "unknown"
	}
}

// GameState is a snapshot for front ends and observers.
type GameState struct {
	Phase        Phase
	Score        int
	HighScore    int
	NewHighScore bool // score equals a best score raised this session
	Muted        bool
	Paused       bool
	Ticks        int
}

// GameOver reports whether the session has ended.
func (s GameState) GameOver() bool { return s.Phase == PhaseEnded }

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether e happened during the tick.
func (r StepResult) Has(e Event) bool {
	for _, x := range r.Events {
		if x == e {
			return true
		}
	}
	return false
}

// SessionState is everything a restart throws away.
type SessionState struct {
	Bird      Bird
	Pipes     *PipeStream
	Particles []particles.Particle
	Score     *ScoreTracker
	Ticks     int // frames since the game was created, in any phase
}

// birdStart returns the spawn position, kept inside the playfield on short viewports.
func birdStart(x, startY, size float64, field Playfield) Bird {
	lo := size/2 + 1
	hi := field.GroundY() - size/2 - 1
	y := startY
	if hi >= lo {
		y = core.ClampF(startY, lo, hi)
	}
	return Bird{X: x, Y: y}
}
