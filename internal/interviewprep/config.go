package interviewprep

// Config controls request shaping for the Service.
type Config struct {
	// MaxTokens is the token budget for the model response.
	MaxTokens int `toml:"max_tokens"`

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64 `toml:"temperature"`

	// StructuredOutput asks the provider for schema-constrained JSON. The
	// returned text still goes through the normalize pipeline.
	StructuredOutput bool `toml:"structured_output"`

	// MaxQuestions caps NumberOfQuestions.
	MaxQuestions int `toml:"max_questions"`

	// Prompts overrides the built-in prompt templates. Empty fields keep
	// the defaults.
	Prompts Prompts `toml:"-"`
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:    4096,
		Temperature:  0.7,
		MaxQuestions: 50,
	}
}
