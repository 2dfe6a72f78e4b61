package model

import "time"

// Report is the complete result of checking one input. It exists for the
// duration of a request and its rendered output; nothing is persisted.
type Report struct {
	Input     InputKind `json:"input"`
	SourceURL string    `json:"source_url,omitempty"`
	Title     string    `json:"title,omitempty"`
	FetchMeta FetchMeta `json:"fetch_meta,omitempty"`
	Truncated bool      `json:"truncated,omitempty"`

	Verdict Verdict `json:"verdict"`

	// SourceTier annotates URL inputs with the authority tier of the source
	// domain. Context only - it never influences the verdict.
	SourceTier string `json:"source_tier,omitempty"`

	CheckedAt time.Time     `json:"checked_at"`
	Elapsed   time.Duration `json:"elapsed"`
}
