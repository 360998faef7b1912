package llm

import "strings"

// CleanJSONBlock strips a surrounding markdown code fence from a model
// response. Models wrap JSON in ``` fences even when told not to; the fence
// may carry a language identifier ("json", "javascript") on its opening line.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	body, found := strings.CutPrefix(text, "```")
	if !found {
		return text
	}

	// Drop the language identifier, if any. A real identifier is a short
	// single word; anything with spaces or braces is already content.
	if line, rest, ok := strings.Cut(body, "\n"); ok {
		if len(line) < 20 && !strings.ContainsAny(line, " {") {
			body = rest
		}
	}

	if idx := strings.LastIndex(body, "```"); idx >= 0 {
		body = body[:idx]
	}
	return strings.TrimSpace(body)
}
