package fsm

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"fsmagent/pkg/logx"
	"fsmagent/pkg/metrics"
)

// Transition records one completed state change.
type Transition struct {
	From      State
	To        State
	Timestamp time.Time
}

// Machine wraps a Graph with a current-state cursor. The mutex guards
// against accidental concurrent use; serializing access across callers
// is still the owning application's responsibility, one machine per
// agent run.
type Machine struct {
	id      string
	graph   *Graph
	mu      sync.Mutex
	current State
	history []Transition
	logger  *logx.Logger
}

// NewMachine creates a state machine positioned at the graph's initial
// state. Each machine gets a unique ID used for log tagging.
func NewMachine(graph *Graph) *Machine {
	id := uuid.NewString()
	return &Machine{
		id:      id,
		graph:   graph,
		current: graph.Initial(),
		logger:  logx.NewLogger("fsm-" + id[:8]),
	}
}

// ID returns the machine's unique identifier.
func (m *Machine) ID() string {
	return m.id
}

// Graph returns the transition graph this machine is governed by.
func (m *Machine) Graph() *Graph {
	return m.graph
}

// Current returns the current state.
func (m *Machine) Current() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Reachable returns the states that may be transitioned to from the
// current state. An empty result is valid and signals either a terminal
// state or a dead end.
func (m *Machine) Reachable() []State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reachableLocked()
}

func (m *Machine) reachableLocked() []State {
	next := m.graph.states[m.current] // current is always a graph key
	return append([]State(nil), next...)
}

// IsTerminal reports whether the current state is a terminal state.
func (m *Machine) IsTerminal() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.graph.IsTerminal(m.current)
}

// Transition moves the machine to the target state and returns the new
// state. The move is atomic: if the target is not reachable from the
// current state a TransitionError is returned and the cursor is left
// unchanged.
func (m *Machine) Transition(target State) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	allowed := m.reachableLocked()
	ok := false
	for _, s := range allowed {
		if s == target {
			ok = true
			break
		}
	}
	if !ok {
		m.logger.Warn("invalid transition attempt: %s -> %s (allowed: %v)", m.current, target, allowed)
		metrics.RecordTransition(string(m.current), string(target), false)
		return m.current, &TransitionError{From: m.current, Target: target, Allowed: allowed}
	}

	from := m.current
	m.current = target
	m.history = append(m.history, Transition{From: from, To: target, Timestamp: time.Now().UTC()})

	m.logger.Info("state transition: %s -> %s", from, target)
	metrics.RecordTransition(string(from), string(target), true)

	return m.current, nil
}

// History returns a copy of the completed transitions in order.
func (m *Machine) History() []Transition {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Transition(nil), m.history...)
}
