// Package placeholder detects template leftovers and hallucinated filler text
// in generative-model output. The pattern list is fixed at process start and
// every matcher is pure, so the package is safe to share across stages.
package placeholder

import (
	"regexp"
	"strings"
)

// Pattern pairs a compiled expression with a human-readable label used in
// diagnostics.
type Pattern struct {
	Label string
	Re    *regexp.Regexp
}

// patterns is the ordered library of known placeholder artifacts. Order only
// affects which label a diagnostic reports; matching is any-of.
var patterns = []Pattern{
	// Generic filler phrases that models emit when they have nothing concrete.
	{"filler:timelines", regexp.MustCompile(`(?i)reduce development timelines`)},
	{"filler:cross-functional", regexp.MustCompile(`(?i)collaborate effectively with cross-functional teams`)},
	{"filler:fast-paced", regexp.MustCompile(`(?i)thrive in a fast-paced environment`)},
	{"filler:responsible-various", regexp.MustCompile(`(?i)responsible for various tasks`)},
	{"filler:detail-oriented", regexp.MustCompile(`(?i)detail-oriented team player`)},
	{"filler:proven-track", regexp.MustCompile(`(?i)proven track record of success`)},

	// Bracketed or template-variable syntax left unexpanded.
	{"template:brackets", regexp.MustCompile(`\[[^\[\]]*\]`)},
	{"template:dollar-brace", regexp.MustCompile(`\$\{[^}]*\}`)},
	{"template:double-brace", regexp.MustCompile(`\{\{[^}]*\}\}`)},
	{"template:angle-token", regexp.MustCompile(`<[A-Z][A-Z_ ]+>`)},

	// Literal tokens.
	{"token:tbd", regexp.MustCompile(`(?i)\bTBD\b`)},
	{"token:todo", regexp.MustCompile(`(?i)\bTODO\b`)},
	{"token:na", regexp.MustCompile(`(?i)^n/?a$`)},
	{"token:lorem", regexp.MustCompile(`(?i)lorem ipsum`)},
	{"token:placeholder", regexp.MustCompile(`(?i)\bplaceholder\b`)},
	{"token:sample-text", regexp.MustCompile(`(?i)\bsample text\b`)},
	{"token:your-x-here", regexp.MustCompile(`(?i)\byour [a-z ]+here\b`)},
	{"token:insert-here", regexp.MustCompile(`(?i)\binsert [a-z ]+here\b`)},

	// Degenerate strings.
	{"degenerate:punctuation", regexp.MustCompile(`^[\s\p{P}\p{S}]+$`)},
	{"degenerate:dangling-conjunction", regexp.MustCompile(`(?i)^(?:and|or|but)\s`)},
}

// Matches reports whether any placeholder pattern matches anywhere in text.
// Matching is case-insensitive substring matching; empty strings do not match.
func Matches(text string) bool {
	_, ok := Match(text)
	return ok
}

// Match returns the label of the first matching pattern, if any.
func Match(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", false
	}
	for _, p := range patterns {
		if p.Re.MatchString(trimmed) {
			return p.Label, true
		}
	}
	return "", false
}

// Examples returns one representative sample per pattern family. Used by tests
// to verify that validation rejects the library's own artifacts.
func Examples() []string {
	return []string{
		"reduce development timelines",
		"collaborate effectively with cross-functional teams",
		"[Your Company Name]",
		"${project_name}",
		"{{ title }}",
		"TBD",
		"TODO: fill in",
		"lorem ipsum dolor sit amet",
		"placeholder",
		"sample text",
		"insert achievement here",
		"...",
		"and managed the team",
	}
}
