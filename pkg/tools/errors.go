package tools

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownTool indicates a lookup, execution, or unregistration
	// referenced a name with no registry entry.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrToolExecution indicates a failure raised inside a tool callable.
	ErrToolExecution = errors.New("tool execution failed")

	// ErrMissingDescription indicates a tool was declared without a description.
	ErrMissingDescription = errors.New("tool description is required")

	// ErrInvalidParam indicates a tool parameter spec is malformed.
	ErrInvalidParam = errors.New("invalid tool parameter")
)

// ExecutionError wraps a failure raised inside a tool callable. It
// matches ErrToolExecution via errors.Is and unwraps to the original
// failure.
type ExecutionError struct {
	Tool string
	Err  error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("tool %q execution failed: %v", e.Tool, e.Err)
}

// Unwrap returns the original failure raised by the callable.
func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// Is matches the ErrToolExecution sentinel.
func (e *ExecutionError) Is(target error) bool {
	return target == ErrToolExecution
}
