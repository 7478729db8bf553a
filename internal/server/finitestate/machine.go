// Package finitestate wraps the fsm machine used to track the HTTP
// listener's lifecycle.
package finitestate

import (
	"context"
	"log/slog"

	"github.com/robbyt/go-fsm"
)

const (
	StatusNew      = fsm.StatusNew
	StatusBooting  = fsm.StatusBooting
	StatusRunning  = fsm.StatusRunning
	StatusStopping = fsm.StatusStopping
	StatusStopped  = fsm.StatusStopped
	StatusError    = fsm.StatusError
	StatusUnknown  = fsm.StatusUnknown
)

// TypicalTransitions is a set of standard transitions for a finite state machine.
var TypicalTransitions = fsm.TypicalTransitions

// Machine defines the interface for the finite state machine that tracks
// the listener's lifecycle states.
type Machine interface {
	// Transition attempts to transition the state machine to the specified state.
	Transition(state string) error

	// TransitionBool attempts the transition and reports success.
	TransitionBool(state string) bool

	// SetState sets the state of the state machine to the specified state.
	SetState(state string) error

	// GetState returns the current state of the state machine.
	GetState() string

	// GetStateChan returns a channel that emits the state machine's state
	// whenever it changes. The channel is closed when the context is canceled.
	GetStateChan(ctx context.Context) <-chan string
}

// New creates a finite state machine with the standard state transitions.
func New(handler slog.Handler) (Machine, error) {
	return fsm.New(handler, StatusNew, TypicalTransitions)
}
