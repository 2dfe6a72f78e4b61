package model

import "strings"

// Label is the classification the model assigns to an article.
type Label string

const (
	LabelTrue         Label = "True"
	LabelFake         Label = "Fake"
	LabelUnverifiable Label = "Unverifiable"
)

// ParseLabel maps a free-form label string onto one of the three labels.
// Matching is case-insensitive and tolerant of common synonyms the model
// substitutes ("real" for True, "false" for Fake). The second return value
// is false when the string matched nothing.
func ParseLabel(s string) (Label, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "real", "real news", "genuine", "authentic":
		return LabelTrue, true
	case "fake", "false", "fake news", "fabricated", "misinformation", "disinformation":
		return LabelFake, true
	case "unverifiable", "unknown", "unverified", "uncertain", "inconclusive":
		return LabelUnverifiable, true
	default:
		return LabelUnverifiable, false
	}
}

// Verdict is the parsed result of a single classification request.
// Confidences are independent values in [0,1]; nothing ties their sum to 1
// because the model's output is unconstrained.
type Verdict struct {
	Label          Label   `json:"label"`
	ConfidenceTrue float64 `json:"confidence_true"`
	ConfidenceFake float64 `json:"confidence_fake"`

	// Parsed is false when the completion matched neither the JSON contract
	// nor the plain-text grammar and the verdict was degraded to Unverifiable.
	Parsed bool `json:"parsed"`

	RawResponse   string `json:"raw_response,omitempty"`
	Model         string `json:"model,omitempty"`
	TokensUsed    int    `json:"tokens_used,omitempty"`
	PromptVersion string `json:"prompt_version,omitempty"`
}

// Clamp01 forces a confidence into [0,1] whatever the model returned.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
