package llm

// Groq serves the OpenAI chat-completions wire format, so the provider is
// the OpenAI client pointed at Groq's endpoint.

const groqBaseURL = "https://api.groq.com/openai/v1"

// NewGroqProvider creates a provider for the Groq API
func NewGroqProvider(config Config) (*OpenAIProvider, error) {
	if config.BaseURL == "" {
		config.BaseURL = groqBaseURL
	}

	p, err := NewOpenAIProvider(config)
	if err != nil {
		return nil, err
	}
	p.name = "groq"
	return p, nil
}
