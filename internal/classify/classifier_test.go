package classify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/veridex/veridex/internal/cache"
	"github.com/veridex/veridex/internal/llm"
	"github.com/veridex/veridex/internal/model"
)

type fakeProvider struct {
	response string
	err      error
	calls    int
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) IsAvailable(ctx context.Context) bool { return true }

func (f *fakeProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &llm.CompletionResponse{
		Text:       f.response,
		Model:      "fake-model",
		TokensUsed: 10,
	}, nil
}

func TestNewRequiresProvider(t *testing.T) {
	_, err := New(nil, Options{})
	if err == nil {
		t.Fatal("expected error for nil provider")
	}
}

func TestNewRejectsUnknownPromptVersion(t *testing.T) {
	_, err := New(&fakeProvider{}, Options{PromptVersion: "v99"})
	if err == nil {
		t.Fatal("expected error for unknown prompt version")
	}
}

func TestClassify(t *testing.T) {
	provider := &fakeProvider{
		response: `{"prediction": "Fake", "real_confidence": 0.12, "fake_confidence": 0.88}`,
	}

	c, err := New(provider, Options{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	verdict, err := c.Classify(context.Background(), "The moon is made of cheese.")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}

	if verdict.Label != model.LabelFake {
		t.Errorf("Label = %q, want Fake", verdict.Label)
	}
	if verdict.ConfidenceTrue != 0.12 || verdict.ConfidenceFake != 0.88 {
		t.Errorf("confidences = %v/%v, want 0.12/0.88", verdict.ConfidenceTrue, verdict.ConfidenceFake)
	}
	if !verdict.Parsed {
		t.Error("Parsed = false")
	}
	if verdict.Model != "fake-model" {
		t.Errorf("Model = %q", verdict.Model)
	}
	if verdict.TokensUsed != 10 {
		t.Errorf("TokensUsed = %d", verdict.TokensUsed)
	}
	if verdict.PromptVersion != PromptV1 {
		t.Errorf("PromptVersion = %q", verdict.PromptVersion)
	}
}

func TestClassifyProviderError(t *testing.T) {
	provider := &fakeProvider{err: errors.New("rate limited")}

	c, err := New(provider, Options{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = c.Classify(context.Background(), "some text")
	if err == nil {
		t.Fatal("expected error when provider fails")
	}
}

func TestClassifyMalformedDegrades(t *testing.T) {
	provider := &fakeProvider{response: "I refuse to answer."}

	c, err := New(provider, Options{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	verdict, err := c.Classify(context.Background(), "some text")
	if err != nil {
		t.Fatalf("Classify() error = %v, degraded parse must not error", err)
	}

	if verdict.Parsed {
		t.Error("Parsed = true for malformed completion")
	}
	if verdict.Label != model.LabelUnverifiable {
		t.Errorf("Label = %q, want Unverifiable", verdict.Label)
	}
	if verdict.RawResponse != "I refuse to answer." {
		t.Errorf("RawResponse = %q", verdict.RawResponse)
	}
}

func TestClassifyCaching(t *testing.T) {
	provider := &fakeProvider{
		response: `{"prediction": "True", "real_confidence": 0.9, "fake_confidence": 0.1}`,
	}

	c, err := New(provider, Options{
		Cache:    cache.NewMemoryCache(time.Minute, time.Minute),
		CacheTTL: time.Minute,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	text := "Water boils at 100 degrees Celsius at sea level."

	first, err := c.Classify(context.Background(), text)
	if err != nil {
		t.Fatalf("first Classify() error = %v", err)
	}
	second, err := c.Classify(context.Background(), text)
	if err != nil {
		t.Fatalf("second Classify() error = %v", err)
	}

	if provider.calls != 1 {
		t.Errorf("provider called %d times, want 1", provider.calls)
	}
	if first.Label != second.Label {
		t.Errorf("cached verdict differs: %q vs %q", first.Label, second.Label)
	}
}

func TestClassifyModelChangeMissesCache(t *testing.T) {
	provider := &fakeProvider{
		response: `{"prediction": "True", "real_confidence": 0.9, "fake_confidence": 0.1}`,
	}
	shared := cache.NewMemoryCache(time.Minute, time.Minute)
	text := "The same claim checked twice."

	c1, err := New(provider, Options{Cache: shared, Model: "model-a"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := c1.Classify(context.Background(), text); err != nil {
		t.Fatalf("Classify() error = %v", err)
	}

	// Same cache, different model: the old verdict must not be served
	c2, err := New(provider, Options{Cache: shared, Model: "model-b"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := c2.Classify(context.Background(), text); err != nil {
		t.Fatalf("Classify() error = %v", err)
	}

	if provider.calls != 2 {
		t.Errorf("provider called %d times, want 2 (model change must invalidate the cache)", provider.calls)
	}
}

func TestClassifyDegradedNotCached(t *testing.T) {
	provider := &fakeProvider{response: "garbage"}

	c, err := New(provider, Options{
		Cache: cache.NewMemoryCache(time.Minute, time.Minute),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := c.Classify(context.Background(), "text"); err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if _, err := c.Classify(context.Background(), "text"); err != nil {
		t.Fatalf("Classify() error = %v", err)
	}

	if provider.calls != 2 {
		t.Errorf("provider called %d times, want 2 (degraded verdicts must not be cached)", provider.calls)
	}
}
