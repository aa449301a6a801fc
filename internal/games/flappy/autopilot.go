package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Autopilot is a simple controller that flaps whenever the bird has sunk
// below the middle of the next gap. It drives headless runs and demos.
type Autopilot struct {
	// Slack is how far below the gap center the bird may fall before flapping.
	Slack float64
	// Restart makes the pilot press restart after a crash.
	Restart bool
}

// Next returns the input for the coming tick.
func (a Autopilot) Next(g *Game) core.InputFrame {
	in := core.NewInputFrame()

	switch g.Phase() {
	case PhaseReady:
		in.Set(core.ActionJump)
	case PhaseEnded:
		if a.Restart {
			in.Set(core.ActionRestart)
		}
	case PhasePlaying:
		b := g.Bird()
		if b.Velocity > 0 && b.Y > a.target(g)+a.slack() {
			in.Set(core.ActionJump)
		}
	}
	return in
}

func (a Autopilot) slack() float64 {
	if a.Slack <= 0 {
		return 20
	}
	return a.Slack
}

// target is the center of the first gap the bird has not cleared yet, or the
// middle of the sky when no pipe is ahead.
func (a Autopilot) target(g *Game) float64 {
	b := g.Bird()
	left := b.X - g.cfg.Bird.Size/2
	w := g.session.Pipes.Width()
	for _, p := range g.Pipes() {
		if p.X+w >= left {
			return p.GapTop + g.session.Pipes.Gap()/2
		}
	}
	return g.field.GroundY() / 2
}
