package tools

import (
	"context"
	"encoding/json"
)

// Tool is a local function the model may elect to call during letter
// generation. Execution is synchronous and side-effect-free: input in,
// text out.
type Tool interface {
	Name() string
	Description() string
	InputSchema() map[string]any
	Execute(ctx context.Context, input json.RawMessage) (string, error)
}

// Registry holds the tools declared to the model.
type Registry struct {
	tools map[string]Tool
}

func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

func (r *Registry) Register(tool Tool) {
	r.tools[tool.Name()] = tool
}

func (r *Registry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

func (r *Registry) List() []Tool {
	tools := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, tool)
	}
	return tools
}

// Definitions returns the registered tools in chat-completions format,
// ready to attach to a request payload.
func (r *Registry) Definitions() []map[string]any {
	defs := make([]map[string]any, 0, len(r.tools))
	for _, tool := range r.tools {
		defs = append(defs, map[string]any{
			"type": "function",
			"function": map[string]any{
				"name":        tool.Name(),
				"description": tool.Description(),
				"parameters":  tool.InputSchema(),
			},
		})
	}
	return defs
}

// MatchInput is the shared input shape of the letter-generation tools.
type MatchInput struct {
	ResumeData json.RawMessage `json:"resume_data"`
	JobData    json.RawMessage `json:"job_data"`
}
