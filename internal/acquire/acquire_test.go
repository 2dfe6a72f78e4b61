package acquire

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/veridex/veridex/internal/model"
)

func testConfig() *model.Config {
	config := model.DefaultConfig()
	config.HTTP.Timeout = 5 * time.Second
	config.HTTP.UserAgent = "veridex-test/1.0"
	config.Acquire.MinRunes = 50
	config.Acquire.MaxRunes = 6000
	config.Acquire.RespectRobots = false
	config.RateLimit.RequestsPerSecond = 100
	config.RateLimit.Burst = 100
	return config
}

func TestDetectKind(t *testing.T) {
	tests := []struct {
		input string
		want  model.InputKind
	}{
		{"https://example.com/article", model.KindURL},
		{"http://example.com", model.KindURL},
		{"  https://example.com/article  ", model.KindURL},
		{"example.com/article", model.KindText},
		{"ftp://example.com/file", model.KindText},
		{"The mayor announced a new bridge today.", model.KindText},
		{"https://example.com is where I read it", model.KindText},
		{"", model.KindText},
	}

	for _, tt := range tests {
		if got := DetectKind(tt.input); got != tt.want {
			t.Errorf("DetectKind(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestResolveTextIdentity(t *testing.T) {
	a := New(testConfig())

	input := "The city council approved funding for a new bridge on Tuesday."
	article, err := a.Resolve(context.Background(), input)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if article.Kind != model.KindText {
		t.Errorf("Kind = %q, want text", article.Kind)
	}
	if article.Text != input {
		t.Errorf("Text = %q, text input must pass through unchanged", article.Text)
	}
	if article.Truncated {
		t.Error("Truncated = true for short input")
	}
}

func TestResolveEmptyText(t *testing.T) {
	a := New(testConfig())

	_, err := a.Resolve(context.Background(), "   \n  ")
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("error = %v, want ErrEmptyInput", err)
	}
}

func TestResolveTextNeverTruncated(t *testing.T) {
	config := testConfig()
	config.Acquire.MaxRunes = 100
	a := New(config)

	input := strings.Repeat("word ", 100)
	article, err := a.Resolve(context.Background(), input)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if article.Text != input {
		t.Errorf("Text = %q, pasted text must pass through unchanged regardless of length", article.Text)
	}
	if article.Truncated {
		t.Error("Truncated = true for text input")
	}
	if strings.Contains(article.Text, TruncationMarker) {
		t.Error("truncation marker applied to text input")
	}
}

func TestResolveAsTextWithURLString(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		_, _ = w.Write([]byte(articleHTML))
	}))
	defer server.Close()

	a := New(testConfig())

	article, err := a.ResolveAs(context.Background(), server.URL, model.KindText)
	if err != nil {
		t.Fatalf("ResolveAs() error = %v", err)
	}

	if article.Kind != model.KindText {
		t.Errorf("Kind = %q, want text", article.Kind)
	}
	if article.Text != server.URL {
		t.Errorf("Text = %q, declared text must not be fetched", article.Text)
	}
	if requests != 0 {
		t.Errorf("server received %d requests, declared text must not be fetched", requests)
	}
}

func TestResolveURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(articleHTML))
	}))
	defer server.Close()

	a := New(testConfig())

	article, err := a.Resolve(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if article.Kind != model.KindURL {
		t.Errorf("Kind = %q, want url", article.Kind)
	}
	if !strings.Contains(article.Text, "city council approved funding") {
		t.Errorf("Text missing article body: %q", article.Text)
	}
	if article.SourceURL == "" {
		t.Error("SourceURL not set")
	}
	if article.FetchMeta.StatusCode != http.StatusOK {
		t.Errorf("FetchMeta.StatusCode = %d", article.FetchMeta.StatusCode)
	}
	if article.FetchedAt.IsZero() {
		t.Error("FetchedAt not set")
	}
}

func TestResolveURLTruncation(t *testing.T) {
	long := "<html><body><article><h1>Long</h1><p>" +
		strings.Repeat("Sentence with enough words to matter. ", 200) +
		"</p></article></body></html>"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(long))
	}))
	defer server.Close()

	config := testConfig()
	config.Acquire.MaxRunes = 500
	a := New(config)

	article, err := a.Resolve(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if !article.Truncated {
		t.Error("Truncated = false for long extraction")
	}
	if !strings.HasSuffix(article.Text, TruncationMarker) {
		t.Errorf("Text missing truncation marker: %q", article.Text)
	}
	body := strings.TrimSuffix(article.Text, TruncationMarker)
	if len([]rune(body)) != 500 {
		t.Errorf("truncated body length = %d, want 500", len([]rune(body)))
	}
}

func TestResolveURLUnreachable(t *testing.T) {
	a := New(testConfig())

	_, err := a.Resolve(context.Background(), "http://127.0.0.1:1/article")
	if err == nil {
		t.Fatal("expected error for unreachable URL")
	}
}

func TestResolveURLBodyTooShort(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body><p>Too short.</p></body></html>"))
	}))
	defer server.Close()

	config := testConfig()
	config.Acquire.MinRunes = 200
	a := New(config)

	_, err := a.Resolve(context.Background(), server.URL)
	if !errors.Is(err, ErrBodyTooShort) {
		t.Errorf("error = %v, want ErrBodyTooShort", err)
	}
}

func TestResolveURLRobotsDisallowed(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("User-agent: *\nDisallow: /private/\n"))
	})
	mux.HandleFunc("/private/article", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(articleHTML))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	config := testConfig()
	config.Acquire.RespectRobots = true
	a := New(config)

	_, err := a.Resolve(context.Background(), server.URL+"/private/article")
	if !errors.Is(err, ErrRobotsDisallowed) {
		t.Errorf("error = %v, want ErrRobotsDisallowed", err)
	}
}
