// Package tools provides the registry and descriptor types that expose
// ordinary Go functions to a language model as invocable tools.
package tools

import "context"

// Parameter types accepted in tool schemas. These are JSON schema type
// names; every provider format maps onto them.
const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeArray   = "array"
	TypeObject  = "object"
)

// Property describes one field of a tool's input schema.
type Property struct {
	Type        string               `json:"type"`
	Description string               `json:"description,omitempty"`
	Enum        []string             `json:"enum,omitempty"`
	Default     any                  `json:"default,omitempty"`
	Items       *Property            `json:"items,omitempty"`
	Properties  map[string]*Property `json:"properties,omitempty"`
}

// InputSchema is the JSON-schema shaped parameter block of a tool
// definition. Type is always "object" for derived definitions.
type InputSchema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required"`
}

// ToolDefinition is the derived, read-only metadata for one registered
// tool: name, description, and parameter schema. Recomputed when a tool
// is re-registered.
type ToolDefinition struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema InputSchema `json:"input_schema"`
}

// Tool is a callable exposed to a language model.
type Tool interface {
	// Name returns the tool's identifier, unique within a registry.
	Name() string
	// Definition returns the tool's derived definition.
	Definition() ToolDefinition
	// Exec executes the tool with the given arguments. Argument types
	// are not validated here; that contract belongs to the caller.
	Exec(ctx context.Context, args map[string]any) (any, error)
}
