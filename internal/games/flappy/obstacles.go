package flappy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Playfield is the live viewport in world pixels.
type Playfield struct {
	Width        float64
	Height       float64
	GroundHeight float64
}

// GroundY returns the y-coordinate of the ground line.
func (f Playfield) GroundY() float64 {
	return f.Height - f.GroundHeight
}

// Pipe represents a pair of vertical obstacles with a gap between them.
// Width and gap height are session constants held by the PipeStream.
type Pipe struct {
	X      float64 // left edge
	GapTop float64 // bottom of the upper pipe
	Scored bool    // whether the bird has cleared this pipe
}

// TopRect returns the upper obstacle.
func (p Pipe) TopRect(width float64) core.Rect {
	return core.NewRect(p.X, 0, width, p.GapTop)
}

// BottomRect returns the lower obstacle, down to the ground line.
func (p Pipe) BottomRect(width, gap, groundY float64) core.Rect {
	top := p.GapTop + gap
	return core.NewRect(p.X, top, width, math.Max(groundY-top, 0))
}

// PipeStream spawns, moves, scores and recycles pipes.
type PipeStream struct {
	pipes []Pipe
	rng   *rand.Rand
	cfg   config.Obstacles
	frame int // playing ticks since the session started
}

// NewPipeStream creates a new stream with the given RNG seed.
func NewPipeStream(seed int64, cfg config.Obstacles) *PipeStream {
	s := &PipeStream{
		pipes: make([]Pipe, 0, 8),
		cfg:   cfg,
	}
	s.Reset(seed)
	return s
}

// Reset clears all pipes and reseeds the RNG.
func (s *PipeStream) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.Clear()
}

// Clear removes all pipes and rewinds the spawn counter, keeping the RNG
// sequence so consecutive sessions differ.
func (s *PipeStream) Clear() {
	s.pipes = s.pipes[:0]
	s.frame = 0
}

// Width returns the pipe width.
func (s *PipeStream) Width() float64 { return s.cfg.Width }

// Gap returns the vertical gap height.
func (s *PipeStream) Gap() float64 { return s.cfg.Gap }

// Frame returns the spawn counter.
func (s *PipeStream) Frame() int { return s.frame }

// Pipes returns the live pipes, oldest first.
func (s *PipeStream) Pipes() []Pipe {
	return s.pipes
}

// Tick advances the spawn counter and spawns a pipe at the right edge every
// SpawnInterval ticks. Reports whether a pipe was spawned.
func (s *PipeStream) Tick(field Playfield) bool {
	s.frame++
	if s.frame%s.cfg.SpawnInterval != 0 {
		return false
	}
	s.Spawn(field)
	return true
}

// SpawnRange returns the interval the gap top is drawn from. Bounds are read
// from the live viewport. On viewports too short for the configured margins
// each margin shrinks to a quarter of the free space, which keeps the range
// open and the gap above the ground line.
func (s *PipeStream) SpawnRange(field Playfield) (lo, hi float64) {
	space := field.GroundY() - s.cfg.Gap
	lo = s.cfg.MinHeight
	hi = space - s.cfg.MinHeight
	if hi >= lo {
		return lo, hi
	}
	margin := math.Max(space/4, 0)
	return margin, math.Max(space-margin, margin)
}

// Spawn appends one pipe at the right edge of the playfield.
func (s *PipeStream) Spawn(field Playfield) {
	lo, hi := s.SpawnRange(field)
	s.pipes = append(s.pipes, Pipe{
		X:      field.Width,
		GapTop: s.rng.Float64()*(hi-lo) + lo,
	})
}

// Advance moves every pipe left, scores pipes whose trailing edge has passed
// birdLeft, and drops pipes that are fully off-screen. Survivors keep their
// order. Returns the number of pipes scored this tick.
func (s *PipeStream) Advance(birdLeft float64) int {
	scored := 0
	w := s.cfg.Width

	for i := range s.pipes {
		s.pipes[i].X -= s.cfg.Speed
		if !s.pipes[i].Scored && s.pipes[i].X+w < birdLeft {
			s.pipes[i].Scored = true
			scored++
		}
	}

	// Remove pipes that have moved off the left side
	valid := s.pipes[:0]
	for _, p := range s.pipes {
		if p.X+w >= 0 {
			valid = append(valid, p)
		}
	}
	s.pipes = valid

	return scored
}
