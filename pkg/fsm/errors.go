package fsm

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGraph indicates a graph definition violated a construction invariant.
	ErrInvalidGraph = errors.New("invalid transition graph")

	// ErrUnknownState indicates a query referenced a state that is not in the graph.
	ErrUnknownState = errors.New("unknown state")

	// ErrInvalidTransition indicates an invalid state transition was attempted.
	ErrInvalidTransition = errors.New("invalid state transition")
)

// TransitionError reports a rejected transition together with the states
// that were reachable when it was attempted.
type TransitionError struct {
	From    State
	Target  State
	Allowed []State
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid state transition: cannot move from %q to %q (allowed: %v)",
		e.From, e.Target, e.Allowed)
}

// Unwrap lets errors.Is match ErrInvalidTransition.
func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
