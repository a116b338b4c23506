package fsm

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// graphSpec is the on-disk YAML shape of a graph definition.
type graphSpec struct {
	States   map[string][]string `yaml:"states"`
	Initial  string              `yaml:"initial"`
	Terminal []string            `yaml:"terminal"`
}

// ParseGraph builds a graph from a YAML definition of the form:
//
//	states:
//	  start: [researching]
//	  researching: [writing]
//	  writing: []
//	initial: start
//	terminal: [writing]
//
// The parsed definition goes through the same validation as NewGraph.
func ParseGraph(data []byte) (*Graph, error) {
	var spec graphSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse graph definition: %w", err)
	}

	states := make(map[State][]State, len(spec.States))
	for name, next := range spec.States {
		targets := make([]State, len(next))
		for i, t := range next {
			targets[i] = State(t)
		}
		states[State(name)] = targets
	}

	terminals := make([]State, len(spec.Terminal))
	for i, t := range spec.Terminal {
		terminals[i] = State(t)
	}

	return NewGraph(states, State(spec.Initial), terminals)
}

// LoadGraph reads a YAML graph definition from disk.
func LoadGraph(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read graph definition %s: %w", path, err)
	}
	return ParseGraph(data)
}
