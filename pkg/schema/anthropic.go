package schema

import (
	"github.com/anthropics/anthropic-sdk-go"

	"fsmagent/pkg/tools"
)

// AnthropicTool is one entry of the Anthropic Messages API "tools"
// array: {name, description, input_schema}.
type AnthropicTool struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	InputSchema map[string]any `json:"input_schema"`
}

// AnthropicTools converts tool definitions to the Anthropic Messages
// API tool format.
func AnthropicTools(defs []tools.ToolDefinition) []AnthropicTool {
	out := make([]AnthropicTool, len(defs))
	for i := range defs {
		def := &defs[i]
		out[i] = AnthropicTool{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: parameterSchema(&def.InputSchema),
		}
	}
	return out
}

// AnthropicParams converts tool definitions to the official Go SDK's
// message params.
func AnthropicParams(defs []tools.ToolDefinition) []anthropic.ToolUnionParam {
	out := make([]anthropic.ToolUnionParam, len(defs))
	for i := range defs {
		def := &defs[i]

		var properties any
		if len(def.InputSchema.Properties) > 0 {
			props := make(map[string]any, len(def.InputSchema.Properties))
			for name := range def.InputSchema.Properties {
				prop := def.InputSchema.Properties[name]
				props[name] = propertySchema(&prop)
			}
			properties = props
		}

		schema := anthropic.ToolInputSchemaParam{
			Type:       "object",
			Properties: properties,
			Required:   def.InputSchema.Required,
		}
		u := anthropic.ToolUnionParamOfTool(schema, def.Name)
		if u.OfTool != nil && def.Description != "" {
			u.OfTool.Description = anthropic.String(def.Description)
		}
		out[i] = u
	}
	return out
}
