package schema

import (
	"google.golang.org/genai"

	"fsmagent/pkg/tools"
)

// GeminiDeclarations converts tool definitions to the Google GenAI
// SDK's native function declarations, ready to wrap in a genai.Tool.
func GeminiDeclarations(defs []tools.ToolDefinition) []*genai.FunctionDeclaration {
	decls := make([]*genai.FunctionDeclaration, len(defs))
	for i := range defs {
		def := &defs[i]

		properties := make(map[string]*genai.Schema, len(def.InputSchema.Properties))
		for name := range def.InputSchema.Properties {
			prop := def.InputSchema.Properties[name]
			properties[name] = geminiSchema(&prop)
		}

		decls[i] = &genai.FunctionDeclaration{
			Name:        def.Name,
			Description: def.Description,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: properties,
				Required:   def.InputSchema.Required,
			},
		}
	}
	return decls
}

// geminiSchema recursively converts a Property to the GenAI schema type.
func geminiSchema(prop *tools.Property) *genai.Schema {
	schema := &genai.Schema{Description: prop.Description}

	switch prop.Type {
	case tools.TypeString:
		schema.Type = genai.TypeString
	case tools.TypeNumber:
		schema.Type = genai.TypeNumber
	case tools.TypeInteger:
		schema.Type = genai.TypeInteger
	case tools.TypeBoolean:
		schema.Type = genai.TypeBoolean
	case tools.TypeArray:
		schema.Type = genai.TypeArray
		if prop.Items != nil {
			schema.Items = geminiSchema(prop.Items)
		}
	case tools.TypeObject:
		schema.Type = genai.TypeObject
		if prop.Properties != nil {
			properties := make(map[string]*genai.Schema, len(prop.Properties))
			for name, child := range prop.Properties {
				if child != nil {
					properties[name] = geminiSchema(child)
				}
			}
			schema.Properties = properties
		}
	default:
		// Unknown types fall back to string
		schema.Type = genai.TypeString
	}

	if len(prop.Enum) > 0 {
		schema.Enum = prop.Enum
	}

	return schema
}
