// Package loop drives a frame callback at a fixed rate until its context is
// cancelled. Interactive front ends use their own toolkit's timer; the
// scheduler serves headless runs.
package loop

import (
	"context"
	"errors"
	"time"
)

// ErrStop may be returned by a frame callback to end the run cleanly.
var ErrStop = errors.New("loop: stop")

// FrameFunc is called once per frame with the frame's scheduled time.
type FrameFunc func(now time.Time) error

// Scheduler calls a FrameFunc every Interval.
type Scheduler struct {
	// Interval between frames. Zero runs frames back to back.
	Interval time.Duration
	// MaxFrames ends the run after this many frames. Zero means unlimited.
	MaxFrames int

	frames int
}

// New returns a scheduler ticking tickRate times per second. A non-positive
// rate runs unthrottled.
func New(tickRate int) *Scheduler {
	s := &Scheduler{}
	if tickRate > 0 {
		s.Interval = time.Second / time.Duration(tickRate)
	}
	return s
}

// Frames returns the number of frames run so far.
func (s *Scheduler) Frames() int { return s.frames }

// Run calls fn until ctx is done, fn fails or MaxFrames is reached.
// ErrStop and context cancellation end the run without an error.
func (s *Scheduler) Run(ctx context.Context, fn FrameFunc) error {
	if s.Interval <= 0 {
		return s.runUnthrottled(ctx, fn)
	}

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for !s.done() {
		if ctx.Err() != nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			if err := s.frame(fn, now); err != nil {
				return stopped(err)
			}
		}
	}
	return nil
}

func (s *Scheduler) runUnthrottled(ctx context.Context, fn FrameFunc) error {
	for !s.done() {
		if ctx.Err() != nil {
			return nil
		}
		if err := s.frame(fn, time.Now()); err != nil {
			return stopped(err)
		}
	}
	return nil
}

func (s *Scheduler) frame(fn FrameFunc, now time.Time) error {
	s.frames++
	return fn(now)
}

func (s *Scheduler) done() bool {
	return s.MaxFrames > 0 && s.frames >= s.MaxFrames
}

func stopped(err error) error {
	if errors.Is(err, ErrStop) {
		return nil
	}
	return err
}
