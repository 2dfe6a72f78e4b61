package classify

import "fmt"

// Prompt versions. The version string is part of the cache key, so any
// edit to a prompt must ship under a new version.
const (
	PromptV1 = "v1"
)

const systemPromptV1 = `You are an expert fact-checking assistant. You will be given the text of a news article or claim. Analyze it and decide whether it is true, fake, or unverifiable.

Respond with ONLY a JSON object in exactly this format:
{"prediction": "True" or "Fake" or "Unverifiable", "real_confidence": <number between 0 and 1>, "fake_confidence": <number between 0 and 1>}

Guidelines:
- "True": the core claims are consistent with well-established facts.
- "Fake": the core claims are fabricated, misleading, or contradict well-established facts.
- "Unverifiable": the claims cannot be confirmed or refuted from general knowledge (opinions, predictions, very recent or hyperlocal events).
- real_confidence is your confidence that the content is true; fake_confidence is your confidence that it is fake.
- Do not include any text outside the JSON object.`

// SystemPrompt returns the system prompt for the given version.
func SystemPrompt(version string) (string, error) {
	switch version {
	case PromptV1, "":
		return systemPromptV1, nil
	default:
		return "", fmt.Errorf("unknown prompt version: %s", version)
	}
}
