package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/veridex/veridex/internal/cache"
	"github.com/veridex/veridex/internal/llm"
	"github.com/veridex/veridex/internal/model"
)

// Classifier turns article text into a verdict with a single LLM call.
type Classifier struct {
	provider      llm.Provider
	cache         cache.Cache
	cacheTTL      time.Duration
	model         string
	maxTokens     int
	temperature   float32
	promptVersion string
}

// Options configures a Classifier beyond its provider.
type Options struct {
	Cache         cache.Cache // nil disables caching
	CacheTTL      time.Duration
	Model         string
	MaxTokens     int
	Temperature   float32
	PromptVersion string
}

// New creates a Classifier. The provider is required; everything else has
// workable defaults.
func New(provider llm.Provider, opts Options) (*Classifier, error) {
	if provider == nil {
		return nil, fmt.Errorf("LLM provider is required")
	}

	version := opts.PromptVersion
	if version == "" {
		version = PromptV1
	}
	if _, err := SystemPrompt(version); err != nil {
		return nil, err
	}

	ttl := opts.CacheTTL
	if ttl == 0 {
		ttl = time.Hour
	}

	return &Classifier{
		provider:      provider,
		cache:         opts.Cache,
		cacheTTL:      ttl,
		model:         opts.Model,
		maxTokens:     opts.MaxTokens,
		temperature:   opts.Temperature,
		promptVersion: version,
	}, nil
}

// Provider returns the underlying LLM provider
func (c *Classifier) Provider() llm.Provider {
	return c.provider
}

// Classify sends the article text to the provider and parses the verdict.
// A provider failure returns an error; an unparseable completion does not,
// it degrades to an Unverifiable verdict with Parsed=false.
func (c *Classifier) Classify(ctx context.Context, text string) (*model.Verdict, error) {
	key := cache.Key(c.provider.Name(), c.model, c.promptVersion, text)
	if c.cache != nil {
		if data, found := c.cache.Get(key); found {
			var verdict model.Verdict
			if err := json.Unmarshal(data, &verdict); err == nil {
				return &verdict, nil
			}
			// Corrupt entry, drop it and re-classify
			_ = c.cache.Delete(key)
		}
	}

	system, err := SystemPrompt(c.promptVersion)
	if err != nil {
		return nil, err
	}

	resp, err := c.provider.Complete(ctx, llm.CompletionRequest{
		System:      system,
		Prompt:      text,
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
		JSONOnly:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("classification request failed: %w", err)
	}

	verdict := Parse(resp.Text)
	verdict.Model = resp.Model
	verdict.TokensUsed = resp.TokensUsed
	verdict.PromptVersion = c.promptVersion

	// Only successful parses are worth caching; a degraded verdict should
	// get another chance on the next run
	if c.cache != nil && verdict.Parsed {
		if data, err := json.Marshal(&verdict); err == nil {
			_ = c.cache.Set(key, data, c.cacheTTL)
		}
	}

	return &verdict, nil
}
