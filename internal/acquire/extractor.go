package acquire

import (
	"fmt"
	"net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

// Extraction is the readable content pulled from a fetched page
type Extraction struct {
	Title  string
	Byline string
	Text   string
}

// Extractor pulls article text out of raw HTML
type Extractor struct{}

// NewExtractor creates an article text extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract runs readability extraction and falls back to stripping tags
// when the page has no recognizable article structure.
func (e *Extractor) Extract(rawHTML string, pageURL *url.URL) (*Extraction, error) {
	article, err := readability.FromReader(strings.NewReader(rawHTML), pageURL)
	if err == nil && strings.TrimSpace(article.TextContent) != "" {
		return &Extraction{
			Title:  strings.TrimSpace(article.Title),
			Byline: strings.TrimSpace(article.Byline),
			Text:   normalizeWhitespace(article.TextContent),
		}, nil
	}

	// Readability found nothing; fall back to the visible text of the page
	text, title, fallbackErr := visibleText(rawHTML)
	if fallbackErr != nil {
		return nil, fmt.Errorf("extract article text: %w", fallbackErr)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("no readable text found in page")
	}

	return &Extraction{
		Title: title,
		Text:  normalizeWhitespace(text),
	}, nil
}

// visibleText walks the HTML tree collecting text nodes, skipping script
// and style subtrees, and picks up the <title> on the way.
func visibleText(rawHTML string) (string, string, error) {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return "", "", fmt.Errorf("parse HTML: %w", err)
	}

	var sb strings.Builder
	var title string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "template":
				return
			case "title":
				if n.FirstChild != nil && title == "" {
					title = strings.TrimSpace(n.FirstChild.Data)
				}
				return
			}
		}
		if n.Type == html.TextNode {
			trimmed := strings.TrimSpace(n.Data)
			if trimmed != "" {
				sb.WriteString(trimmed)
				sb.WriteString(" ")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return sb.String(), title, nil
}

// normalizeWhitespace collapses runs of whitespace into single spaces while
// preserving paragraph breaks.
func normalizeWhitespace(s string) string {
	paragraphs := strings.Split(s, "\n\n")
	out := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		fields := strings.Fields(p)
		if len(fields) == 0 {
			continue
		}
		out = append(out, strings.Join(fields, " "))
	}
	return strings.Join(out, "\n\n")
}
