// Package extract recovers structured payloads from free-text model replies.
// Both procedures are tolerant projections: they never fail and never
// validate the payload they return.
package extract

import "strings"

const fence = "```"

// FencedBlock returns the content of the first fenced block in text.
// Without fences, with an empty block or with an unterminated block it
// returns the trimmed text.
func FencedBlock(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.Contains(text, fence) {
		return trimmed
	}

	var (
		lines  []string
		opened bool
		closed bool
	)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.HasPrefix(strings.TrimSpace(line), fence) {
			if !opened {
				opened = true
				continue
			}
			closed = true
			break
		}
		if opened {
			lines = append(lines, line)
		}
	}

	if !closed {
		return trimmed
	}
	if block := strings.TrimSpace(strings.Join(lines, "\n")); block != "" {
		return block
	}
	return trimmed
}

// JSONObject returns the span from the first '{' to the last '}' of text, trimmed.
func JSONObject(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end > start {
		return strings.TrimSpace(text[start : end+1])
	}
	return strings.TrimSpace(text)
}
