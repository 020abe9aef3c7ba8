package llm

import "context"

// Provider is the model-client boundary. Callers send a prompt and receive
// the model's completion as free-form text; turning that text into records
// is the job of the normalize package, not of the provider.
type Provider interface {
	// Generate sends a prompt to the model and returns its text completion.
	// When req.Schema is set the provider asks for native structured output
	// and validates the returned text against the schema.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the system prompt.
	System string

	// Messages is the conversation. Prompt generation here is single-turn,
	// so this normally holds one user message.
	Messages []Message

	// Schema optionally requests structured output. Nil means plain text.
	Schema *Schema

	// MaxTokens caps the completion length.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Message represents a single message in the conversation.
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

// Schema defines the JSON structure optionally requested from the model.
type Schema struct {
	// Name identifies this schema, kebab-case, e.g. "interview-questions".
	Name string

	// Description is sent to the model to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Text is the raw completion text. It may be empty when the model
	// produced no content at all.
	Text string

	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
