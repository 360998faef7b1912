package extraction

import (
	"regexp"
	"strings"
)

// monthToken matches an English month name or abbreviation.
const monthToken = `(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)`

var (
	// dateTokenRe recognizes the tokens that mark a string as date-like:
	// a four-digit year, a month name, or an open-ended marker.
	dateTokenRe = regexp.MustCompile(`(?i)\b(?:(?:19|20)\d{2}|` + monthToken + `\.?\s+\d{4}|present|current)\b`)

	// dateSpanRe captures a full date range ("2019-2022", "Jan 2020 – Present",
	// "March 2019 to May 2021") or a single dated point.
	dateSpanRe = regexp.MustCompile(`(?i)\(?(?:` + monthToken + `\.?\s+)?(?:19|20)\d{2}\s*(?:[—–-]|to|until)\s*(?:(?:` + monthToken + `\.?\s+)?(?:19|20)\d{2}|present|current)\)?|\(?(?:` + monthToken + `\.?\s+)?(?:19|20)\d{2}\)?`)

	bulletGlyphRe = regexp.MustCompile(`^\s*[-*•·◦▪‣>]+\s*`)

	listSplitRe = regexp.MustCompile(`[,;|•·\n]+`)
)

// looksLikeDate reports whether text contains date-like tokens (years, month
// names, "Present"/"Current"). Used to tell dates apart from locations.
func looksLikeDate(text string) bool {
	return dateTokenRe.MatchString(text)
}

// extractDateSpan pulls the first date range out of text, returning the span
// and the remaining text with the span removed.
func extractDateSpan(text string) (span, rest string) {
	loc := dateSpanRe.FindStringIndex(text)
	if loc == nil {
		return "", text
	}
	span = strings.Trim(text[loc[0]:loc[1]], "() ")
	rest = strings.TrimSpace(text[:loc[0]] + " " + text[loc[1]:])
	rest = strings.Trim(rest, " ,—–-|")
	return span, rest
}

// stripBullet removes a leading bullet glyph and surrounding whitespace.
func stripBullet(line string) string {
	return strings.TrimSpace(bulletGlyphRe.ReplaceAllString(line, ""))
}

// nonEmptyLines splits text into trimmed, non-empty lines.
func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// SplitList breaks a free-form list span (comma, semicolon, pipe, bullet, or
// line separated) into trimmed unique items, preserving first-seen order.
func SplitList(text string) []string {
	items := []string{}
	seen := map[string]bool{}
	for _, part := range listSplitRe.Split(text, -1) {
		item := strings.TrimSpace(strings.Trim(part, "-* \t"))
		if item == "" || len(item) > 60 {
			continue
		}
		key := strings.ToLower(item)
		if seen[key] {
			continue
		}
		seen[key] = true
		items = append(items, item)
	}
	return items
}
