// Package schema translates tool definitions into the structures each
// LLM provider's function-calling API expects. Every adapter is a pure
// function and total over any definition slice: an empty input yields
// an empty tool list, never an error.
package schema

import "fsmagent/pkg/tools"

// propertySchema renders a Property as a plain JSON-shaped map.
func propertySchema(prop *tools.Property) map[string]any {
	m := map[string]any{"type": prop.Type}
	if prop.Description != "" {
		m["description"] = prop.Description
	}
	if len(prop.Enum) > 0 {
		m["enum"] = prop.Enum
	}
	if prop.Default != nil {
		m["default"] = prop.Default
	}
	if prop.Type == tools.TypeArray && prop.Items != nil {
		m["items"] = propertySchema(prop.Items)
	}
	if prop.Type == tools.TypeObject && prop.Properties != nil {
		children := make(map[string]any, len(prop.Properties))
		for name, child := range prop.Properties {
			if child != nil {
				children[name] = propertySchema(child)
			}
		}
		m["properties"] = children
	}
	return m
}

// parameterSchema renders an InputSchema as a {type, properties, required}
// JSON schema object. Required is always present, empty rather than nil.
func parameterSchema(in *tools.InputSchema) map[string]any {
	properties := make(map[string]any, len(in.Properties))
	for name := range in.Properties {
		prop := in.Properties[name]
		properties[name] = propertySchema(&prop)
	}
	required := in.Required
	if required == nil {
		required = []string{}
	}
	return map[string]any{
		"type":       in.Type,
		"properties": properties,
		"required":   required,
	}
}
