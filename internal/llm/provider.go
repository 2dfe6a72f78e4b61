package llm

import "context"

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete sends a single prompt round-trip to the model
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// CompletionRequest contains the input for one completion call
type CompletionRequest struct {
	// System carries the classification instructions
	System string

	// Prompt is the user-role content (the article text)
	Prompt string

	// Model is the specific model to use (falls back to the provider config)
	Model string

	// MaxTokens limits the response length
	MaxTokens int

	// Temperature for the completion
	Temperature float32

	// JSONOnly requests a strict JSON object response where the API
	// supports it. Parsers must still tolerate free-form text: the flag is
	// a hint, not a guarantee.
	JSONOnly bool
}

// CompletionResponse contains the model's reply
type CompletionResponse struct {
	// Text is the raw completion text, unparsed
	Text string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "groq", "openai", "anthropic", "ollama"
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for hosted providers
	APIKey string

	// BaseURL for custom endpoints (Ollama, OpenAI-compatible gateways)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "",
		Model:     "",
		Timeout:   60,
		MaxTokens: 512,
	}
}
