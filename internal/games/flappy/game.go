// Package flappy implements a Flappy Bird-style game.
// The player keeps a falling bird airborne with discrete flaps and steers it
// through the gaps of an endless stream of pipes.
package flappy

import (
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/particles"
)

// ErrNoSurface is returned by Frame when there is nothing to draw on.
var ErrNoSurface = errors.New("flappy: no drawing surface")

// Audio is the sound collaborator. Implementations must not block.
type Audio interface {
	Play(cue audio.Cue)
	// StartMusic resumes the looping tune if not muted.
	StartMusic()
	// StopMusic pauses the tune and rewinds it.
	StopMusic()
	SetMuted(muted bool)
	Muted() bool
}

// Options configures a Game. Zero values fall back to defaults.
type Options struct {
	Config config.FlappyConfig
	Store  ScoreStore
	Audio  Audio
	Logger *log.Logger
}

// Game implements the game logic. It is driven by a single goroutine: the
// front end calls Step then Render once per frame.
type Game struct {
	cfg     config.FlappyConfig
	runtime core.RuntimeConfig
	field   Playfield
	phase   *PhaseMachine
	session SessionState
	rng     *rand.Rand // particles only
	audio   Audio
	logger  *log.Logger
	paused  bool
}

// New creates a game in the ready phase with a default viewport.
func New(opts Options) *Game {
	cfg := opts.Config
	if cfg.Validate() != nil {
		cfg = config.DefaultFlappyConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	a := opts.Audio
	if a == nil {
		a = audio.NewNop(cfg.Audio.Muted)
	}

	g := &Game{
		cfg:    cfg,
		phase:  NewPhaseMachine(),
		audio:  a,
		logger: logger,
	}
	g.session.Score = NewScoreTracker(opts.Store, logger)
	g.phase.OnChange(func(from, to Phase) {
		g.logger.Debug("phase", "from", from, "to", to, "score", g.session.Score.Score())
	})
	g.Reset(core.RuntimeConfig{
		Width:    cfg.World.Width,
		Height:   cfg.World.Height,
		TickRate: 60,
	})
	return g
}

// Reset returns to the menu with a fresh session sized to cfg.
// A zero seed picks one from the clock.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	g.runtime = cfg
	g.field = Playfield{Width: cfg.Width, Height: cfg.Height, GroundHeight: g.cfg.World.GroundHeight}
	g.rng = rand.New(rand.NewSource(cfg.Seed + 1))

	if g.session.Pipes == nil {
		g.session.Pipes = NewPipeStream(cfg.Seed, g.cfg.Obstacles)
	} else {
		g.session.Pipes.Reset(cfg.Seed)
	}
	g.phase.reset()
	g.paused = false
	g.session.Ticks = 0
	g.resetSession()
}

// resetSession restores bird, pipes, particles and score to initial values.
func (g *Game) resetSession() {
	g.session.Bird = birdStart(g.cfg.Bird.X, g.cfg.Bird.StartY, g.cfg.Bird.Size, g.field)
	g.session.Pipes.Clear()
	g.session.Particles = nil
	g.session.Score.Reset()
}

// Resize updates the viewport. The session continues; spawn bounds read the
// new size on the next spawn.
func (g *Game) Resize(w, h float64) {
	g.runtime.Width, g.runtime.Height = w, h
	g.field.Width, g.field.Height = w, h
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) StepResult {
	var events []Event
	emit := func(e Event) { events = append(events, e) }

	jump := in.Has(core.ActionJump)
	restart := in.Has(core.ActionRestart)
	toggleMute := in.Has(core.ActionMute)

	ui := layoutHUD(g.field)
	for _, p := range in.Presses {
		switch {
		case g.phase.Phase() == PhasePlaying && ui.Mute.Contains(p.X, p.Y):
			toggleMute = !toggleMute
		case g.phase.Phase() == PhaseEnded && ui.PlayAgain.Contains(p.X, p.Y):
			restart = true
		default:
			jump = true
		}
	}

	if toggleMute {
		g.ToggleMute()
		emit(EventMute)
	}

	switch g.phase.Phase() {
	case PhaseReady:
		if jump {
			g.start()
			emit(EventStart)
		}

	case PhasePlaying:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
			emit(EventPause)
		}
		if !g.paused {
			if jump {
				g.session.Bird.Jump(g.cfg.Physics)
				g.audio.Play(audio.CueJump)
				emit(EventJump)
			}
			g.simulate(emit)
		}

	case PhaseEnded:
		if restart {
			g.restart()
			emit(EventRestart)
		}
	}

	g.session.Particles = particles.Update(g.session.Particles, g.cfg.Particles.Gravity, g.cfg.Particles.TimeStep)
	g.session.Ticks++

	return StepResult{State: g.State(), Events: events}
}

// simulate runs one playing tick: physics, spawn, advance, collision.
func (g *Game) simulate(emit func(Event)) {
	s := &g.session
	size := g.cfg.Bird.Size

	s.Bird.Step(g.cfg.Physics)
	s.Pipes.Tick(g.field)

	scored := s.Pipes.Advance(s.Bird.X - size/2)
	for i := 0; i < scored; i++ {
		s.Score.Add(1)
		g.audio.Play(audio.CueScore)
		s.Particles = append(s.Particles,
			particles.ScoreBurst(g.rng, s.Bird.X, s.Bird.Y, g.cfg.Particles.BurstCount)...)
		emit(EventScore)
	}

	if Collides(s.Bird, size, s.Pipes.Pipes(), s.Pipes.Width(), s.Pipes.Gap(), g.field) {
		g.end()
		emit(EventHit)
	}
}

func (g *Game) start() {
	if err := g.phase.Start(); err != nil {
		g.logger.Error("start", "error", err)
		return
	}
	g.resetSession()
	g.audio.StartMusic()
}

func (g *Game) restart() {
	if err := g.phase.Restart(); err != nil {
		g.logger.Error("restart", "error", err)
		return
	}
	g.paused = false
	g.resetSession()
	g.audio.StopMusic()
	g.audio.StartMusic()
}

func (g *Game) end() {
	if err := g.phase.End(); err != nil {
		g.logger.Error("end", "error", err)
		return
	}
	s := &g.session
	g.audio.Play(audio.CueHit)
	s.Particles = append(s.Particles,
		particles.Explosion(g.rng, s.Bird.X, s.Bird.Y, g.cfg.Particles.ExplosionCount, particles.ExplosionColor)...)
	g.audio.StopMusic()
	s.Score.Finish()
	g.logger.Info("game over", "score", s.Score.Score(), "best", s.Score.High())
}

// ToggleMute flips the audio mute flag. Unmuting mid-session resumes music.
func (g *Game) ToggleMute() {
	muted := !g.audio.Muted()
	g.audio.SetMuted(muted)
	if !muted && g.phase.Phase() == PhasePlaying {
		g.audio.StartMusic()
	}
}

// Frame runs one Step and renders the result onto dst.
func (g *Game) Frame(in core.InputFrame, dst core.Surface) (StepResult, error) {
	if dst == nil {
		return StepResult{State: g.State()}, ErrNoSurface
	}
	res := g.Step(in)
	g.Render(dst)
	return res, nil
}

// State returns the current game state.
func (g *Game) State() GameState {
	s := g.session.Score
	return GameState{
		Phase:        g.phase.Phase(),
		Score:        s.Score(),
		HighScore:    s.High(),
		NewHighScore: s.NewHigh() && s.Score() == s.High() && s.Score() > 0,
		Muted:        g.audio.Muted(),
		Paused:       g.paused,
		Ticks:        g.session.Ticks,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase.Phase() }

// OnPhaseChange registers an observer for phase transitions.
func (g *Game) OnPhaseChange(fn func(from, to Phase)) { g.phase.OnChange(fn) }

// Bird returns a copy of the bird.
func (g *Game) Bird() Bird { return g.session.Bird }

// Pipes returns the live pipes. The slice must not be modified.
func (g *Game) Pipes() []Pipe { return g.session.Pipes.Pipes() }

// Particles returns the live particles.
func (g *Game) Particles() []particles.Particle { return g.session.Particles }

// Field returns the current playfield.
func (g *Game) Field() Playfield { return g.field }

// Config returns the active configuration.
func (g *Game) Config() config.FlappyConfig { return g.cfg }
