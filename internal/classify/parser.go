package classify

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/veridex/veridex/internal/model"
)

// wireVerdict mirrors the JSON contract the prompt asks for, with enough
// slack to absorb the field-name drift models produce in practice.
type wireVerdict struct {
	Prediction string    `json:"prediction"`
	Label      string    `json:"label"`
	Verdict    string    `json:"verdict"`
	Real       confValue `json:"real_confidence"`
	Fake       confValue `json:"fake_confidence"`
	ConfTrue   confValue `json:"true_confidence"`
	ConfFake   confValue `json:"false_confidence"`
}

// confValue accepts a confidence as a JSON number, a numeric string, or a
// percent string like "88%".
type confValue struct {
	value float64
	set   bool
}

func (c *confValue) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		c.value = normalizeConfidence(num, false)
		c.set = true
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v, ok := parseConfidenceString(s)
		if ok {
			c.value = v
			c.set = true
		}
		return nil
	}

	// Unrecognized shape; leave unset rather than failing the whole parse
	return nil
}

// normalizeConfidence maps a raw numeric value into [0,1]. Values above 1
// are treated as percentages when not already flagged as such.
func normalizeConfidence(v float64, isPercent bool) float64 {
	if isPercent || v > 1 {
		v = v / 100
	}
	return model.Clamp01(v)
}

func parseConfidenceString(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	isPercent := strings.HasSuffix(s, "%")
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSpace(s)

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return normalizeConfidence(v, isPercent), true
}

var (
	labelRe = regexp.MustCompile(`(?i)\b(?:label|prediction|verdict)\s*[:=]\s*"?([A-Za-z]+)`)
	trueRe  = regexp.MustCompile(`(?i)\b(?:true|real)(?:_confidence)?\s*[:=]\s*"?([0-9.]+)\s*(%?)`)
	fakeRe  = regexp.MustCompile(`(?i)\b(?:fake|false)(?:_confidence)?\s*[:=]\s*"?([0-9.]+)\s*(%?)`)
)

// Parse interprets a model completion as a verdict. It never returns an
// error: anything it cannot understand degrades to Unverifiable with
// Parsed=false and the raw text preserved for inspection.
func Parse(completion string) model.Verdict {
	verdict := model.Verdict{
		Label:       model.LabelUnverifiable,
		RawResponse: completion,
	}

	if jsonBody := extractJSON(completion); jsonBody != "" {
		var wire wireVerdict
		if err := json.Unmarshal([]byte(jsonBody), &wire); err == nil {
			if applyWire(&verdict, wire) {
				return verdict
			}
		}
	}

	if applyTextGrammar(&verdict, completion) {
		return verdict
	}

	// Degraded result: label stays Unverifiable, confidences stay zero
	return verdict
}

func applyWire(verdict *model.Verdict, wire wireVerdict) bool {
	raw := wire.Prediction
	if raw == "" {
		raw = wire.Label
	}
	if raw == "" {
		raw = wire.Verdict
	}

	label, ok := model.ParseLabel(raw)
	if !ok {
		return false
	}

	verdict.Label = label
	verdict.Parsed = true

	if wire.Real.set {
		verdict.ConfidenceTrue = wire.Real.value
	} else if wire.ConfTrue.set {
		verdict.ConfidenceTrue = wire.ConfTrue.value
	}
	if wire.Fake.set {
		verdict.ConfidenceFake = wire.Fake.value
	} else if wire.ConfFake.set {
		verdict.ConfidenceFake = wire.ConfFake.value
	}
	return true
}

// applyTextGrammar handles plain-text answers like
// "Label: Fake, True: 12%, Fake: 88%".
func applyTextGrammar(verdict *model.Verdict, text string) bool {
	m := labelRe.FindStringSubmatch(text)
	if m == nil {
		return false
	}

	label, ok := model.ParseLabel(m[1])
	if !ok {
		return false
	}

	verdict.Label = label
	verdict.Parsed = true

	if tm := trueRe.FindStringSubmatch(text); tm != nil {
		if v, ok := parseConfidenceString(tm[1] + tm[2]); ok {
			verdict.ConfidenceTrue = v
		}
	}
	if fm := fakeRe.FindStringSubmatch(text); fm != nil {
		if v, ok := parseConfidenceString(fm[1] + fm[2]); ok {
			verdict.ConfidenceFake = v
		}
	}
	return true
}

// extractJSON pulls a JSON object out of a completion that may wrap it in
// markdown fences or surrounding prose.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)

	if idx := strings.Index(text, "```json"); idx != -1 {
		rest := text[idx+len("```json"):]
		if end := strings.Index(rest, "```"); end != -1 {
			return strings.TrimSpace(rest[:end])
		}
	}
	if idx := strings.Index(text, "```"); idx == 0 {
		rest := text[3:]
		if end := strings.Index(rest, "```"); end != -1 {
			return strings.TrimSpace(rest[:end])
		}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return ""
	}
	return text[start : end+1]
}
