// Package llm abstracts the chat-completion providers used for book
// analysis, teaching review, and persona Q&A. Consumers depend only on the
// Provider interface; concrete adapters exist for DeepSeek (the default),
// OpenAI, Anthropic, and Gemini.
package llm

import (
	"context"
	"encoding/json"
)

// Provider sends prompts to an LLM and returns the generated content.
type Provider interface {
	// Generate sends req and returns the response. When req.Schema is set
	// the provider requests structured output and the returned Content is
	// JSON validated against that schema; otherwise Content is raw text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Single-turn calls carry one user
	// message.
	Messages []Message

	// Schema, when set, requests JSON output conforming to it.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in 0.0-1.0; zero value means deterministic.
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema the response must conform to.
type Schema struct {
	// Name identifies the schema, kebab-case (e.g. "teaching-review").
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is validated JSON when the request carried a schema,
	// raw text otherwise.
	Content json.RawMessage

	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens", or "error".
	StopReason string
}

// Usage reports token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
