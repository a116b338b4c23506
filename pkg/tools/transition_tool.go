package tools

import (
	"context"
	"errors"
	"fmt"

	"fsmagent/pkg/fsm"
)

// TransitionToolName is the name the state-transition tool registers under.
const TransitionToolName = "transition_state"

// TransitionTool lets the model drive the state machine through the
// registry like any other tool. A rejected transition is reported in
// the tool result rather than as an execution error, so the
// orchestration loop can hand it back to the model instead of aborting.
type TransitionTool struct {
	machine *fsm.Machine
}

// NewTransitionTool creates the transition tool for the given machine.
func NewTransitionTool(m *fsm.Machine) *TransitionTool {
	return &TransitionTool{machine: m}
}

// Name returns the tool identifier.
func (t *TransitionTool) Name() string {
	return TransitionToolName
}

// Definition returns the tool's definition.
func (t *TransitionTool) Definition() ToolDefinition {
	return ToolDefinition{
		Name:        TransitionToolName,
		Description: "Transition the agent to the next state. Call this when the current state's work is done.",
		InputSchema: InputSchema{
			Type: TypeObject,
			Properties: map[string]Property{
				"next_state": {Type: TypeString, Description: "Target state; must be reachable from the current state"},
				"reason":     {Type: TypeString, Description: "Why the transition is happening", Default: ""},
			},
			Required: []string{"next_state"},
		},
	}
}

// Exec attempts the transition.
func (t *TransitionTool) Exec(_ context.Context, args map[string]any) (any, error) {
	target, ok := args["next_state"].(string)
	if !ok || target == "" {
		return nil, errors.New("next_state is required")
	}

	next, err := t.machine.Transition(fsm.State(target))
	if err != nil {
		return fmt.Sprintf("Error transitioning: %v", err), nil
	}
	return fmt.Sprintf("Successfully transitioned to %s", next), nil
}
