package schema

import (
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/responses"

	"fsmagent/pkg/tools"
)

// OpenAIFunction is the function block of a chat-completions tool entry.
type OpenAIFunction struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Parameters  map[string]any `json:"parameters"`
}

// OpenAITool is one entry of the chat-completions "tools" array.
type OpenAITool struct {
	Type     string         `json:"type"`
	Function OpenAIFunction `json:"function"`
}

// OpenAITools converts tool definitions to the OpenAI chat-completions
// tool format: {type: "function", function: {name, description,
// parameters}}.
func OpenAITools(defs []tools.ToolDefinition) []OpenAITool {
	out := make([]OpenAITool, len(defs))
	for i := range defs {
		def := &defs[i]
		out[i] = OpenAITool{
			Type: "function",
			Function: OpenAIFunction{
				Name:        def.Name,
				Description: def.Description,
				Parameters:  parameterSchema(&def.InputSchema),
			},
		}
	}
	return out
}

// OpenAIResponsesTools converts tool definitions to the official Go
// SDK's Responses API tool params.
func OpenAIResponsesTools(defs []tools.ToolDefinition) []responses.ToolUnionParam {
	out := make([]responses.ToolUnionParam, len(defs))
	for i := range defs {
		def := &defs[i]
		out[i] = responses.ToolUnionParam{
			OfFunction: &responses.FunctionToolParam{
				Name:        def.Name,
				Description: openai.String(def.Description),
				Parameters:  openai.FunctionParameters(parameterSchema(&def.InputSchema)),
			},
		}
	}
	return out
}
