package tools

import (
	"context"
	"fmt"
	"sync"

	"fsmagent/pkg/logx"
	"fsmagent/pkg/metrics"
)

// entry pairs a registered tool with its derived definition.
type entry struct {
	tool Tool
	def  ToolDefinition
}

// Registry maps tool names to callables and their derived definitions.
// Names are unique; registering a name twice overwrites the previous
// entry, last write wins. The registry is built incrementally at
// start-up and read afterwards; the mutex guards against accidental
// concurrent use but serialization across callers stays with the
// application, one registry per agent run.
type Registry struct {
	mu     sync.RWMutex
	order  []string
	tools  map[string]entry
	logger *logx.Logger
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{
		tools:  make(map[string]entry),
		logger: logx.NewLogger("tools"),
	}
}

// Register inserts a tool under its own name and returns it unchanged,
// so the value stays directly callable after registration. The
// definition is re-derived on every call, so re-registering picks up a
// changed definition. An overwritten entry keeps its original position
// in the descriptor order.
func (r *Registry) Register(t Tool) Tool {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := t.Name()
	if _, exists := r.tools[name]; exists {
		r.logger.Warn("tool %q re-registered, previous entry replaced", name)
	} else {
		r.order = append(r.order, name)
	}
	r.tools[name] = entry{tool: t, def: t.Definition()}
	r.logger.Debug("registered tool %q", name)
	return t
}

// RegisterFunc derives a definition from an explicit parameter spec,
// registers the resulting tool, and returns it.
func (r *Registry) RegisterFunc(name, description string, params []Param, fn ToolFunc) (*FuncTool, error) {
	t, err := Func(name, description, params, fn)
	if err != nil {
		return nil, err
	}
	r.Register(t)
	return t, nil
}

// Unregister removes the named entry. Returns ErrUnknownTool if no such
// tool is registered.
func (r *Registry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tools[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}
	delete(r.tools, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Get retrieves a registered tool by name.
func (r *Registry) Get(name string) (Tool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}
	return e.tool, nil
}

// Execute invokes a registered tool by name and returns its result.
// Failures raised by the tool, including panics, come back as an
// ExecutionError wrapping the original failure; the registry itself is
// never corrupted by a failing tool.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]any) (result any, err error) {
	t, getErr := r.Get(name)
	if getErr != nil {
		return nil, getErr
	}

	defer func() {
		if rec := recover(); rec != nil {
			result = nil
			err = &ExecutionError{Tool: name, Err: fmt.Errorf("panic: %v", rec)}
		}
		metrics.RecordToolExecution(name, err == nil)
	}()

	result, err = t.Exec(ctx, args)
	if err != nil {
		return nil, &ExecutionError{Tool: name, Err: err}
	}
	return result, nil
}

// Descriptors returns the definitions of all registered tools in
// insertion order.
func (r *Registry) Descriptors() []ToolDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]ToolDefinition, 0, len(r.order))
	for _, name := range r.order {
		defs = append(defs, r.tools[name].def)
	}
	return defs
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tools)
}
