package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"ecomia-be/pkg/llm"
)

// Handler executes one tool call. The return value is fed back to the model
// verbatim as the tool message, so handlers report failures as readable text
// instead of breaking the loop.
type Handler func(ctx context.Context, args json.RawMessage) string

type Tool struct {
	Definition llm.ToolDefinition
	Handler    Handler
}

// Registry is the per-request tool set for the tool-calling chat mode.
type Registry struct {
	order []string
	tools map[string]Tool
}

func NewRegistry() *Registry {
	return &Registry{tools: map[string]Tool{}}
}

func (r *Registry) Register(definition llm.ToolDefinition, handler Handler) {
	if _, exists := r.tools[definition.Name]; !exists {
		r.order = append(r.order, definition.Name)
	}
	r.tools[definition.Name] = Tool{Definition: definition, Handler: handler}
}

// Definitions returns tool schemas in registration order.
func (r *Registry) Definitions() []llm.ToolDefinition {
	defs := make([]llm.ToolDefinition, len(r.order))
	for i, name := range r.order {
		defs[i] = r.tools[name].Definition
	}
	return defs
}

// Invoke runs a named tool. Unknown names produce an error string for the
// model rather than an error for the caller.
func (r *Registry) Invoke(ctx context.Context, name string, args json.RawMessage) string {
	tool, ok := r.tools[name]
	if !ok {
		return fmt.Sprintf("Error: herramienta desconocida %q", name)
	}
	return tool.Handler(ctx, args)
}

// ObjectSchema is a helper for the JSON-schema parameter maps the chat API
// expects.
func ObjectSchema(properties map[string]interface{}, required ...string) map[string]interface{} {
	schema := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func StringProp(description string) map[string]interface{} {
	return map[string]interface{}{"type": "string", "description": description}
}

func NumberProp(description string) map[string]interface{} {
	return map[string]interface{}{"type": "number", "description": description}
}
