package fsm

import (
	"errors"
	"testing"
)

func writerStates() map[State][]State {
	return map[State][]State{
		"start":       {"researching"},
		"researching": {"writing"},
		"writing":     {"reviewing"},
		"reviewing":   {"writing", "end"},
		"end":         {},
	}
}

func TestNewGraph_Valid(t *testing.T) {
	g, err := NewGraph(writerStates(), "start", []State{"end"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if g.Initial() != "start" {
		t.Errorf("Expected initial state 'start', got %q", g.Initial())
	}
	if !g.IsTerminal("end") {
		t.Error("Expected 'end' to be terminal")
	}
	if g.IsTerminal("writing") {
		t.Error("Expected 'writing' to not be terminal")
	}
}

func TestNewGraph_CyclesAllowed(t *testing.T) {
	// reviewing -> writing -> reviewing is a cycle and must be accepted.
	if _, err := NewGraph(writerStates(), "start", []State{"end"}); err != nil {
		t.Fatalf("Expected cyclic graph to construct, got %v", err)
	}
}

func TestNewGraph_DanglingTarget(t *testing.T) {
	states := map[State][]State{
		"start": {"ghost"},
	}
	_, err := NewGraph(states, "start", nil)
	if err == nil {
		t.Fatal("Expected error for dangling transition target")
	}
	if !errors.Is(err, ErrInvalidGraph) {
		t.Errorf("Expected ErrInvalidGraph, got %v", err)
	}
}

func TestNewGraph_UnknownInitial(t *testing.T) {
	states := map[State][]State{
		"start": {},
	}
	_, err := NewGraph(states, "missing", nil)
	if !errors.Is(err, ErrInvalidGraph) {
		t.Errorf("Expected ErrInvalidGraph for unknown initial state, got %v", err)
	}
}

func TestNewGraph_UnknownTerminal(t *testing.T) {
	states := map[State][]State{
		"start": {},
	}
	_, err := NewGraph(states, "start", []State{"missing"})
	if !errors.Is(err, ErrInvalidGraph) {
		t.Errorf("Expected ErrInvalidGraph for unknown terminal state, got %v", err)
	}
}

func TestNewGraph_Empty(t *testing.T) {
	_, err := NewGraph(nil, "start", nil)
	if !errors.Is(err, ErrInvalidGraph) {
		t.Errorf("Expected ErrInvalidGraph for empty state set, got %v", err)
	}
}

func TestGraph_NextStates(t *testing.T) {
	g, err := NewGraph(writerStates(), "start", []State{"end"})
	if err != nil {
		t.Fatalf("Failed to build graph: %v", err)
	}

	next, err := g.NextStates("reviewing")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(next) != 2 || next[0] != "writing" || next[1] != "end" {
		t.Errorf("Expected [writing end], got %v", next)
	}

	if _, err := g.NextStates("ghost"); !errors.Is(err, ErrUnknownState) {
		t.Errorf("Expected ErrUnknownState, got %v", err)
	}
}

func TestGraph_NextStatesCopy(t *testing.T) {
	g, err := NewGraph(writerStates(), "start", []State{"end"})
	if err != nil {
		t.Fatalf("Failed to build graph: %v", err)
	}

	next, _ := g.NextStates("start")
	next[0] = "mutated"

	again, _ := g.NextStates("start")
	if again[0] != "researching" {
		t.Error("Expected adjacency to be immutable through returned slices")
	}
}

func TestGraph_States(t *testing.T) {
	g, err := NewGraph(writerStates(), "start", []State{"end"})
	if err != nil {
		t.Fatalf("Failed to build graph: %v", err)
	}

	all := g.States()
	if len(all) != 5 {
		t.Fatalf("Expected 5 states, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1] >= all[i] {
			t.Errorf("Expected sorted states, got %v", all)
		}
	}
}

func TestNewGraph_ConstructionIsolatedFromCaller(t *testing.T) {
	states := writerStates()
	g, err := NewGraph(states, "start", []State{"end"})
	if err != nil {
		t.Fatalf("Failed to build graph: %v", err)
	}

	// Mutating the input map after construction must not affect the graph.
	states["start"] = []State{"end"}

	next, _ := g.NextStates("start")
	if len(next) != 1 || next[0] != "researching" {
		t.Errorf("Expected graph to be isolated from caller mutations, got %v", next)
	}
}
