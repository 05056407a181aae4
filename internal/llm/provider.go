// Package llm abstracts over hosted language model providers behind a
// single Provider interface with structured JSON output, plus retry and
// event-logging middleware.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the interface consumers generate against. Implementations
// exist for Anthropic, OpenAI-compatible APIs, and Gemini, plus a mock
// for tests.
type Provider interface {
	// Generate sends a prompt and returns the model's output. When the
	// request carries a Schema the provider uses its native structured
	// output mechanism and the response Content is the validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Course recommendation is single-turn,
	// so this usually holds one user message.
	Messages []Message

	// Schema, when set, constrains the response to a JSON structure.
	// When nil the response Content is the raw text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0 to 1.0. Zero means
	// deterministic.
	Temperature float64
}

// Message is a single turn in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema. Kebab-case, e.g.
	// "course-recommendation". Used as the tool or schema name on the
	// wire and as the compile cache key.
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output. Validated JSON when the request
	// carried a Schema, raw text otherwise.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
