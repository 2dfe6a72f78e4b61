package model

import "time"

// InputKind distinguishes pasted text from a URL to fetch.
type InputKind string

const (
	KindText InputKind = "text"
	KindURL  InputKind = "url"
)

// Article is the unit of content handed to the classifier.
// For text input it is a pass-through of the user's words; for URL input
// it carries the extracted body plus fetch metadata.
type Article struct {
	Kind      InputKind `json:"kind"`
	RawInput  string    `json:"raw_input,omitempty"`
	Text      string    `json:"text"`
	Title     string    `json:"title,omitempty"`
	Byline    string    `json:"byline,omitempty"`
	SourceURL string    `json:"source_url,omitempty"`
	Truncated bool      `json:"truncated,omitempty"`
	FetchMeta FetchMeta `json:"fetch_meta,omitempty"`
	FetchedAt time.Time `json:"fetched_at,omitempty"`
}

// FetchMeta contains HTTP metadata from fetching the source
type FetchMeta struct {
	StatusCode   int               `json:"status_code,omitempty"`
	ContentType  string            `json:"content_type,omitempty"`
	LastModified string            `json:"last_modified,omitempty"`
	ETag         string            `json:"etag,omitempty"`
	Headers      map[string]string `json:"headers,omitempty"`
}
