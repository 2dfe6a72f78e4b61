package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/veridex/veridex/internal/acquire"
	"github.com/veridex/veridex/internal/cache"
	"github.com/veridex/veridex/internal/classify"
	"github.com/veridex/veridex/internal/llm"
	"github.com/veridex/veridex/internal/model"
	"github.com/veridex/veridex/internal/source"
)

// Stage sentinels let callers tell an acquisition failure (bad URL, robots,
// paywall) from a classification failure (provider down, key rejected).
var (
	ErrAcquire  = errors.New("acquisition failed")
	ErrClassify = errors.New("classification failed")
)

// Pipeline wires acquisition, classification, and source annotation into a
// single Check operation.
type Pipeline struct {
	acquirer   *acquire.Acquirer
	classifier *classify.Classifier
	authority  *source.Classifier
	config     *model.Config
}

// New builds a pipeline from configuration. The provider API key must
// already be present in config.LLM.APIKey.
func New(config *model.Config) (*Pipeline, error) {
	if config == nil {
		config = model.DefaultConfig()
	}

	provider, err := llm.NewProvider(llm.ConfigFromModel(config.LLM, config.HTTP))
	if err != nil {
		return nil, fmt.Errorf("create LLM provider: %w", err)
	}

	var verdictCache cache.Cache
	if config.Cache.Enabled {
		if config.Cache.Dir != "" {
			verdictCache = cache.NewLayeredCache(config.Cache.TTL, config.Cache.Dir, config.Cache.TTL)
		} else {
			verdictCache = cache.NewMemoryCache(config.Cache.TTL, 10*time.Minute)
		}
	}

	classifier, err := classify.New(provider, classify.Options{
		Cache:         verdictCache,
		CacheTTL:      config.Cache.TTL,
		Model:         config.LLM.Model,
		MaxTokens:     config.LLM.MaxTokens,
		Temperature:   config.LLM.Temperature,
		PromptVersion: config.LLM.PromptVersion,
	})
	if err != nil {
		return nil, fmt.Errorf("create classifier: %w", err)
	}

	return &Pipeline{
		acquirer:   acquire.New(config),
		classifier: classifier,
		authority:  source.NewClassifier(&config.Authority),
		config:     config,
	}, nil
}

// Check resolves the input with auto-detected kind and classifies it. It
// satisfies the worker Checker interface used by batch processing.
func (p *Pipeline) Check(ctx context.Context, input string) (*model.Report, error) {
	return p.CheckKind(ctx, input, acquire.DetectKind(input))
}

// CheckKind classifies an input whose kind the caller has declared
// explicitly. A URL pasted into a text field stays text.
func (p *Pipeline) CheckKind(ctx context.Context, input string, kind model.InputKind) (*model.Report, error) {
	started := time.Now()

	article, err := p.acquirer.ResolveAs(ctx, input, kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAcquire, err)
	}

	verdict, err := p.classifier.Classify(ctx, article.Text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrClassify, err)
	}

	report := &model.Report{
		Input:     article.Kind,
		SourceURL: article.SourceURL,
		Title:     article.Title,
		FetchMeta: article.FetchMeta,
		Truncated: article.Truncated,
		Verdict:   *verdict,
		CheckedAt: started.UTC(),
		Elapsed:   time.Since(started),
	}

	if article.Kind == model.KindURL {
		report.SourceTier = string(p.authority.Classify(article.SourceURL))
	}

	return report, nil
}

// Provider exposes the underlying LLM provider for availability checks
func (p *Pipeline) Provider() llm.Provider {
	return p.classifier.Provider()
}
