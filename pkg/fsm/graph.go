// Package fsm provides the transition graph and state machine that
// constrain which phases an agent may move between.
package fsm

import (
	"fmt"
	"sort"
)

// State is a named phase of an agent's task.
type State string

// String returns the state identifier.
func (s State) String() string {
	return string(s)
}

// Graph is a closed directed graph of states. Every transition target
// must itself be a state, the initial state must be a state, and every
// terminal state must be a state. Cycles are allowed. A graph is
// immutable once constructed.
type Graph struct {
	states   map[State][]State
	initial  State
	terminal map[State]struct{}
}

// NewGraph validates and builds a transition graph. Validation is atomic:
// any invariant violation returns an error wrapping ErrInvalidGraph and
// no graph is produced.
func NewGraph(states map[State][]State, initial State, terminals []State) (*Graph, error) {
	if len(states) == 0 {
		return nil, fmt.Errorf("%w: no states defined", ErrInvalidGraph)
	}
	if _, ok := states[initial]; !ok {
		return nil, fmt.Errorf("%w: initial state %q is not defined in states", ErrInvalidGraph, initial)
	}
	for state, next := range states {
		for _, target := range next {
			if _, ok := states[target]; !ok {
				return nil, fmt.Errorf("%w: transition target %q from %q is not defined in states",
					ErrInvalidGraph, target, state)
			}
		}
	}
	terminal := make(map[State]struct{}, len(terminals))
	for _, t := range terminals {
		if _, ok := states[t]; !ok {
			return nil, fmt.Errorf("%w: terminal state %q is not defined in states", ErrInvalidGraph, t)
		}
		terminal[t] = struct{}{}
	}

	// Copy the adjacency map so caller mutations after construction
	// cannot bypass validation.
	copied := make(map[State][]State, len(states))
	for state, next := range states {
		copied[state] = append([]State(nil), next...)
	}

	return &Graph{states: copied, initial: initial, terminal: terminal}, nil
}

// NextStates returns the allowed transition targets from the given state.
// Returns ErrUnknownState if the state is not part of the graph.
func (g *Graph) NextStates(s State) ([]State, error) {
	next, ok := g.states[s]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownState, s)
	}
	return append([]State(nil), next...), nil
}

// IsTerminal reports whether the given state is a terminal state.
func (g *Graph) IsTerminal(s State) bool {
	_, ok := g.terminal[s]
	return ok
}

// Initial returns the configured start state.
func (g *Graph) Initial() State {
	return g.initial
}

// States returns all state identifiers in sorted order.
func (g *Graph) States() []State {
	all := make([]State, 0, len(g.states))
	for s := range g.states {
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	return all
}
