package acquire

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/veridex/veridex/internal/model"
	"github.com/veridex/veridex/internal/util"
	"github.com/veridex/veridex/internal/worker"
)

// TruncationMarker is appended to article text cut at the rune cap so the
// model and the reader both see that the tail is missing.
const TruncationMarker = "\n\n[content truncated]"

var (
	// ErrEmptyInput is returned for blank text input
	ErrEmptyInput = errors.New("input is empty")

	// ErrRobotsDisallowed is returned when robots.txt forbids fetching the URL
	ErrRobotsDisallowed = errors.New("fetching disallowed by robots.txt")

	// ErrBodyTooShort is returned when extraction yields less text than the
	// configured minimum, usually a paywall or an SPA shell
	ErrBodyTooShort = errors.New("extracted article body too short")
)

// Acquirer resolves a raw input (pasted text or URL) into an Article
type Acquirer struct {
	fetcher   *Fetcher
	extractor *Extractor
	robots    *util.RobotsChecker
	limiter   *worker.Limiter
	minRunes  int
	maxRunes  int
}

// New creates an Acquirer from configuration
func New(config *model.Config) *Acquirer {
	if config == nil {
		config = model.DefaultConfig()
	}

	var robots *util.RobotsChecker
	if config.Acquire.RespectRobots {
		robots = util.NewRobotsChecker(config.HTTP.UserAgent, config.HTTP.Timeout)
	}

	return &Acquirer{
		fetcher:   NewFetcher(config.HTTP),
		extractor: NewExtractor(),
		robots:    robots,
		limiter:   worker.NewLimiter(config.RateLimit.RequestsPerSecond, config.RateLimit.Burst),
		minRunes:  config.Acquire.MinRunes,
		maxRunes:  config.Acquire.MaxRunes,
	}
}

// DetectKind decides whether an input is a URL to fetch or pasted text.
// Only absolute http/https URLs count; anything else is treated as text.
func DetectKind(input string) model.InputKind {
	trimmed := strings.TrimSpace(input)
	if strings.ContainsAny(trimmed, " \t\n") {
		return model.KindText
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return model.KindText
	}
	if (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != "" {
		return model.KindURL
	}
	return model.KindText
}

// Resolve turns raw input into an Article ready for classification,
// auto-detecting whether it is a URL or pasted text
func (a *Acquirer) Resolve(ctx context.Context, input string) (*model.Article, error) {
	return a.ResolveAs(ctx, input, DetectKind(input))
}

// ResolveAs resolves the input under an explicitly declared kind, bypassing
// detection. A caller that says "this is text" gets text handling even when
// the text looks like a URL.
func (a *Acquirer) ResolveAs(ctx context.Context, input string, kind model.InputKind) (*model.Article, error) {
	switch kind {
	case model.KindURL:
		return a.resolveURL(ctx, strings.TrimSpace(input))
	default:
		return a.resolveText(input)
	}
}

// resolveText passes user text through untouched. The rune cap applies only
// to URL extractions; pasted text is the user's claim verbatim.
func (a *Acquirer) resolveText(input string) (*model.Article, error) {
	if strings.TrimSpace(input) == "" {
		return nil, ErrEmptyInput
	}

	return &model.Article{
		Kind:     model.KindText,
		RawInput: input,
		Text:     input,
	}, nil
}

func (a *Acquirer) resolveURL(ctx context.Context, rawURL string) (*model.Article, error) {
	if a.robots != nil {
		allowed, err := a.robots.CanFetch(ctx, rawURL)
		if err != nil {
			return nil, fmt.Errorf("robots check for %s: %w", rawURL, err)
		}
		if !allowed {
			return nil, fmt.Errorf("%w: %s", ErrRobotsDisallowed, rawURL)
		}
	}

	if err := a.limiter.Wait(ctx, rawURL); err != nil {
		return nil, fmt.Errorf("rate limit wait for %s: %w", rawURL, err)
	}

	result, err := a.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	finalURL, err := url.Parse(result.FinalURL)
	if err != nil {
		return nil, fmt.Errorf("parse final URL: %w", err)
	}

	extraction, err := a.extractor.Extract(result.HTML, finalURL)
	if err != nil {
		return nil, fmt.Errorf("extract from %s: %w", rawURL, err)
	}

	if a.minRunes > 0 && len([]rune(extraction.Text)) < a.minRunes {
		return nil, fmt.Errorf("%w: %d runes from %s", ErrBodyTooShort, len([]rune(extraction.Text)), rawURL)
	}

	text, truncated := a.truncate(extraction.Text)

	return &model.Article{
		Kind:      model.KindURL,
		RawInput:  rawURL,
		Text:      text,
		Title:     extraction.Title,
		Byline:    extraction.Byline,
		SourceURL: result.FinalURL,
		Truncated: truncated,
		FetchMeta: result.Meta,
		FetchedAt: time.Now().UTC(),
	}, nil
}

// truncate cuts text at the configured rune cap and marks the cut
func (a *Acquirer) truncate(text string) (string, bool) {
	if a.maxRunes <= 0 {
		return text, false
	}
	runes := []rune(text)
	if len(runes) <= a.maxRunes {
		return text, false
	}
	return string(runes[:a.maxRunes]) + TruncationMarker, true
}
