package schema

import (
	"sort"

	"github.com/ollama/ollama/api"

	"fsmagent/pkg/tools"
)

// OllamaTools converts tool definitions to the Ollama API's tool format
// for locally hosted models. Properties are emitted in sorted name
// order so the output is deterministic.
func OllamaTools(defs []tools.ToolDefinition) api.Tools {
	out := make(api.Tools, len(defs))
	for i := range defs {
		def := &defs[i]

		properties := api.NewToolPropertiesMap()
		for _, name := range sortedPropertyNames(def.InputSchema.Properties) {
			prop := def.InputSchema.Properties[name]
			properties.Set(name, ollamaProperty(&prop))
		}

		out[i] = api.Tool{
			Type: "function",
			Function: api.ToolFunction{
				Name:        def.Name,
				Description: def.Description,
				Parameters: api.ToolFunctionParameters{
					Type:       def.InputSchema.Type,
					Properties: properties,
					Required:   def.InputSchema.Required,
				},
			},
		}
	}
	return out
}

// ollamaProperty converts a tool property to Ollama format, carrying
// nested object and array schemas through.
func ollamaProperty(prop *tools.Property) api.ToolProperty {
	p := api.ToolProperty{
		Type:        api.PropertyType{prop.Type},
		Description: prop.Description,
	}

	if len(prop.Enum) > 0 {
		enum := make([]any, len(prop.Enum))
		for i, v := range prop.Enum {
			enum[i] = v
		}
		p.Enum = enum
	}

	if prop.Items != nil {
		p.Items = ollamaProperty(prop.Items)
	}

	if len(prop.Properties) > 0 {
		children := api.NewToolPropertiesMap()
		for _, name := range sortedChildNames(prop.Properties) {
			if child := prop.Properties[name]; child != nil {
				children.Set(name, ollamaProperty(child))
			}
		}
		p.Properties = children
	}

	return p
}

func sortedPropertyNames(props map[string]tools.Property) []string {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedChildNames(props map[string]*tools.Property) []string {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
