package model

import "time"

// Config holds the complete runtime configuration
type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	Acquire     AcquireConfig     `yaml:"acquire"`
	LLM         LLMConfig         `yaml:"llm"`
	Cache       CacheConfig       `yaml:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
	Server      ServerConfig      `yaml:"server"`
	Output      OutputConfig      `yaml:"output"`
	Authority   AuthorityConfig   `yaml:"authority"`
}

// HTTPConfig controls the article fetcher's HTTP client
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
	InsecureTLS  bool          `yaml:"insecure_tls"`
	HTTPProxy    string        `yaml:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy"`
}

// AcquireConfig controls article body extraction
type AcquireConfig struct {
	// MinRunes is the minimum extracted body length for a URL input.
	// Shorter extractions are treated as acquisition failures (likely an
	// SPA shell, a paywall, or a non-article page).
	MinRunes int `yaml:"min_runes"`

	// MaxRunes caps the text sent to the model; longer bodies are truncated
	// with a visible marker.
	MaxRunes int `yaml:"max_runes"`

	RespectRobots bool `yaml:"respect_robots"`
}

// LLMConfig holds LLM provider configuration
type LLMConfig struct {
	// Provider name: "groq", "openai", "anthropic", "ollama"
	Provider string `yaml:"provider"`

	// Model name (provider-specific)
	Model string `yaml:"model"`

	// APIKey is never written to the config file; it comes from the
	// environment and is injected at construction.
	APIKey string `yaml:"-"`

	// BaseURL for custom endpoints (Ollama, OpenAI-compatible gateways)
	BaseURL string `yaml:"base_url"`

	// Timeout for API requests, in seconds
	Timeout int `yaml:"timeout"`

	// MaxTokens for the completion
	MaxTokens int `yaml:"max_tokens"`

	// Temperature for the completion; kept low for consistent labels
	Temperature float32 `yaml:"temperature"`

	// PromptVersion selects the prompt/response contract
	PromptVersion string `yaml:"prompt_version"`
}

// CacheConfig controls verdict caching
type CacheConfig struct {
	Enabled bool `yaml:"enabled"`

	// Dir enables a disk layer under memory when set
	Dir string `yaml:"dir"`

	TTL time.Duration `yaml:"ttl"`
}

// ConcurrencyConfig controls batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// RateLimitConfig controls per-domain fetch rate limiting
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// ServerConfig controls the HTTP serving mode
type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// OutputConfig controls rendering
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
}

// AuthorityConfig configures source domain tier classification
type AuthorityConfig struct {
	PrimaryDomains   []string          `yaml:"primary_domains"`
	SecondaryDomains []string          `yaml:"secondary_domains"`
	DomainMap        map[string]string `yaml:"domain_map,omitempty"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "Veridex/0.1 (+https://github.com/veridex/veridex)",
			MaxBodyBytes: 2_000_000,
		},
		Acquire: AcquireConfig{
			MinRunes:      200,
			MaxRunes:      6000,
			RespectRobots: true,
		},
		LLM: LLMConfig{
			Provider:      "groq",
			Model:         "llama-3.3-70b-versatile",
			Timeout:       60,
			MaxTokens:     512,
			Temperature:   0.1,
			PromptVersion: "v1",
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 2,
			Burst:             5,
		},
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 2 * time.Minute,
		},
		Authority: AuthorityConfig{
			PrimaryDomains: []string{
				"reuters.com", "apnews.com", "afp.com",
				"who.int", "un.org", "europa.eu",
			},
			SecondaryDomains: []string{
				"bbc.com", "bbc.co.uk", "nytimes.com", "washingtonpost.com",
				"theguardian.com", "npr.org", "dw.com", "france24.com",
			},
		},
	}
}
