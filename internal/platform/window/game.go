package window

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

const textCacheLimit = 64

// Options configures the window front end.
type Options struct {
	Game     *flappy.Game
	Width    int
	Height   int
	TickRate int
	Seed     int64
	Title    string
	Logger   *log.Logger
}

// runner adapts a flappy.Game to ebiten.Game.
type runner struct {
	game    *flappy.Game
	surface *Surface
	input   core.InputFrame
	touches []ebiten.TouchID
	w, h    int
	state   flappy.GameState
	logger  *log.Logger
}

func newRunner(opts Options) *runner {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	opts.Game.Reset(core.RuntimeConfig{
		Width:    float64(opts.Width),
		Height:   float64(opts.Height),
		TickRate: opts.TickRate,
		Seed:     opts.Seed,
	})
	return &runner{
		game:    opts.Game,
		surface: NewSurface(),
		input:   core.NewInputFrame(),
		w:       opts.Width,
		h:       opts.Height,
		state:   opts.Game.State(),
		logger:  logger,
	}
}

// Update runs one simulation tick. Ebitengine calls it TPS times a second.
func (r *runner) Update() error {
	r.touches = pollInput(&r.input, r.touches)
	if r.input.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	res := r.game.Step(r.input)
	for _, e := range res.Events {
		r.logger.Debug("event", "event", e, "score", res.State.Score)
	}
	r.state = res.State
	r.input.Clear()
	return nil
}

func (r *runner) Draw(screen *ebiten.Image) {
	r.surface.trim(textCacheLimit)
	r.surface.Target(screen)
	r.game.Render(r.surface)
}

// Layout keeps one world pixel per device-independent pixel and follows
// window resizes without resetting the session.
func (r *runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != r.w || outsideHeight != r.h {
		r.w, r.h = outsideWidth, outsideHeight
		r.game.Resize(float64(r.w), float64(r.h))
	}
	return r.w, r.h
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Title == "" {
		opts.Title = "Flappy Bird"
	}
	r := newRunner(opts)
	defer r.surface.Release()

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.TickRate)

	if err := ebiten.RunGame(r); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	r.logger.Info("window closed", "score", r.state.Score, "best", r.state.HighScore)
	return nil
}
