package tools

import (
	"context"
	"errors"
	"fmt"
)

// ToolFunc is the signature adapted functions must satisfy. Arguments
// arrive as the decoded JSON object the model produced.
type ToolFunc func(ctx context.Context, args map[string]any) (any, error)

// Param declares one formal parameter of a function tool. A parameter
// with Optional set carries Default; otherwise it is required.
type Param struct {
	Name        string
	Type        string
	Description string
	Enum        []string
	Default     any
	Optional    bool
}

// FuncTool adapts a plain function plus an explicit parameter spec into
// a Tool. The definition is derived once at construction and immutable
// afterwards.
type FuncTool struct {
	def ToolDefinition
	fn  ToolFunc
}

//nolint:gochecknoglobals // Lookup table for parameter type validation
var paramTypes = map[string]struct{}{
	TypeString:  {},
	TypeInteger: {},
	TypeNumber:  {},
	TypeBoolean: {},
	TypeArray:   {},
	TypeObject:  {},
}

// Func derives a tool definition from an explicit parameter spec. The
// derivation policy is strict: a missing description fails with
// ErrMissingDescription, and a parameter with a missing or unknown type,
// an empty name, or a duplicated name fails with ErrInvalidParam.
func Func(name, description string, params []Param, fn ToolFunc) (*FuncTool, error) {
	if name == "" {
		return nil, errors.New("tool name cannot be empty")
	}
	if description == "" {
		return nil, fmt.Errorf("%w: tool %q", ErrMissingDescription, name)
	}
	if fn == nil {
		return nil, fmt.Errorf("tool %q: function cannot be nil", name)
	}

	properties := make(map[string]Property, len(params))
	required := make([]string, 0, len(params))
	for i := range params {
		p := &params[i]
		if p.Name == "" {
			return nil, fmt.Errorf("%w: tool %q declares a parameter with no name", ErrInvalidParam, name)
		}
		if _, dup := properties[p.Name]; dup {
			return nil, fmt.Errorf("%w: tool %q declares parameter %q twice", ErrInvalidParam, name, p.Name)
		}
		if _, ok := paramTypes[p.Type]; !ok {
			return nil, fmt.Errorf("%w: tool %q parameter %q has type %q", ErrInvalidParam, name, p.Name, p.Type)
		}

		prop := Property{Type: p.Type, Description: p.Description, Enum: p.Enum}
		if p.Optional {
			prop.Default = p.Default
		} else {
			required = append(required, p.Name)
		}
		properties[p.Name] = prop
	}

	return &FuncTool{
		def: ToolDefinition{
			Name:        name,
			Description: description,
			InputSchema: InputSchema{
				Type:       TypeObject,
				Properties: properties,
				Required:   required,
			},
		},
		fn: fn,
	}, nil
}

// MustFunc is like Func but panics on a malformed declaration. Use for
// tools declared at start-up.
func MustFunc(name, description string, params []Param, fn ToolFunc) *FuncTool {
	t, err := Func(name, description, params, fn)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the tool identifier.
func (t *FuncTool) Name() string {
	return t.def.Name
}

// Definition returns the derived tool definition.
func (t *FuncTool) Definition() ToolDefinition {
	return t.def
}

// Exec invokes the adapted function.
func (t *FuncTool) Exec(ctx context.Context, args map[string]any) (any, error) {
	return t.fn(ctx, args)
}
