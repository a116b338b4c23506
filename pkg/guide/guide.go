// Package guide renders the orchestrator briefing: a textual snapshot of
// the state machine's position and the registry's tools, meant to be
// embedded in a model's instruction context by the driving loop.
package guide

import (
	"fmt"
	"strings"

	"fsmagent/pkg/fsm"
	"fsmagent/pkg/tools"
)

// Generate produces the orchestrator guide for the machine's current
// position and the registry's tools. Output is re-derived on every call
// and must never be cached across transitions.
func Generate(m *fsm.Machine, r *tools.Registry) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Current State: %s\n", m.Current())

	reachable := m.Reachable()
	switch {
	case len(reachable) > 0:
		names := make([]string, len(reachable))
		for i, s := range reachable {
			names[i] = string(s)
		}
		fmt.Fprintf(&b, "Valid Next States: %s\n", strings.Join(names, ", "))
	case m.IsTerminal():
		b.WriteString("Valid Next States: none (terminal state)\n")
	default:
		b.WriteString("Valid Next States: none (dead end, no transition leaves this state)\n")
	}

	b.WriteString("\n## Available Tools\n\n")
	defs := r.Descriptors()
	if len(defs) == 0 {
		b.WriteString("No tools available\n")
		return b.String()
	}
	for i := range defs {
		fmt.Fprintf(&b, "- **%s** - %s\n", defs[i].Name, defs[i].Description)
	}

	return b.String()
}
