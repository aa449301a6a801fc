package flappy

import (
	"errors"
	"fmt"
)

// Phase is the coarse lifecycle state of a session.
type Phase int

const (
	PhaseReady   Phase = iota // menu shown, nothing simulated
	PhasePlaying              // physics, pipes and scoring run
	PhaseEnded                // collision happened; summary shown
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhasePlaying:
		return "playing"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// ErrInvalidTransition is returned when a transition is requested from the
// wrong phase.
var ErrInvalidTransition = errors.New("flappy: invalid phase transition")

// PhaseMachine enforces ready -> playing -> ended -> playing.
// It only tracks the phase; resetting the session on restart is the caller's job.
type PhaseMachine struct {
	phase     Phase
	observers []func(from, to Phase)
}

// NewPhaseMachine returns a machine in PhaseReady.
func NewPhaseMachine() *PhaseMachine {
	return &PhaseMachine{phase: PhaseReady}
}

// Phase returns the current phase.
func (m *PhaseMachine) Phase() Phase {
	return m.phase
}

// OnChange registers fn to be called after every successful transition.
func (m *PhaseMachine) OnChange(fn func(from, to Phase)) {
	m.observers = append(m.observers, fn)
}

// Start moves ready -> playing.
func (m *PhaseMachine) Start() error {
	return m.transition(PhaseReady, PhasePlaying)
}

// End moves playing -> ended.
func (m *PhaseMachine) End() error {
	return m.transition(PhasePlaying, PhaseEnded)
}

// Restart moves ended -> playing.
func (m *PhaseMachine) Restart() error {
	return m.transition(PhaseEnded, PhasePlaying)
}

// reset forces the machine back to ready without notifying observers.
func (m *PhaseMachine) reset() {
	m.phase = PhaseReady
}

func (m *PhaseMachine) transition(from, to Phase) error {
	if m.phase != from {
		return fmt.Errorf("%w: %s -> %s (current %s)", ErrInvalidTransition, from, to, m.phase)
	}
	m.phase = to
	for _, fn := range m.observers {
		fn(from, to)
	}
	return nil
}
