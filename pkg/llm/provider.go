package llm

import (
	"context"
	"encoding/json"
)

// Message represents a chat message in a provider-agnostic format
type Message struct {
	Role       string // "user", "assistant", "system", "tool"
	Content    string
	ToolCallId string     // set on "tool" result messages
	ToolCalls  []ToolCall // set on assistant messages that request tools
}

// ToolDefinition describes a callable tool in JSON-schema form.
type ToolDefinition struct {
	Name        string
	Description string
	Parameters  map[string]interface{} // JSON schema object
}

// ToolCall is a single tool invocation requested by the model.
type ToolCall struct {
	Id        string
	Name      string
	Arguments json.RawMessage
}

// ToolChatResult is the outcome of one tool-aware chat round: either final
// text, or one or more tool calls to execute before continuing.
type ToolChatResult struct {
	Text      string
	ToolCalls []ToolCall
}

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

// LLMProvider defines the contract for any LLM backend
type LLMProvider interface {
	// Chat sends a chat history to the model and returns the response
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// Generate sends a single prompt to the model (convenience method)
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)
}

// ToolCallingProvider is implemented by backends with native tool support.
type ToolCallingProvider interface {
	LLMProvider
	ChatWithTools(ctx context.Context, history []Message, tools []ToolDefinition, options ...Option) (*ToolChatResult, error)
}
