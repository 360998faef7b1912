package repairjson

import (
	"regexp"
	"strings"
)

var (
	fencedRe = regexp.MustCompile("(?s)```[a-zA-Z0-9_-]*[ \t]*\n?(.*?)```")

	trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)

	// Adjacent tokens separated only by a line break.
	stringStringNewlineRe = regexp.MustCompile(`"(\s*\n\s*)"`)
	closerOpenerNewlineRe = regexp.MustCompile(`([}\]])(\s*\n\s*)([{\[])`)
	stringOpenerNewlineRe = regexp.MustCompile(`"(\s*\n\s*)([{\[])`)
	closerStringNewlineRe = regexp.MustCompile(`([}\]])(\s*\n\s*)"`)

	// Adjacent quoted strings on the same line ("a" "b").
	stringStringSpaceRe = regexp.MustCompile(`"([ \t]+)"`)

	// Flattened (single-line) variants.
	closerOpenerSpaceRe = regexp.MustCompile(`([}\]])\s+([{\[])`)
	stringOpenerSpaceRe = regexp.MustCompile(`"\s+([{\[])`)
	closerStringSpaceRe = regexp.MustCompile(`([}\]])\s+"`)

	singleQuotedValueRe = regexp.MustCompile(`:\s*'([^'\n]*)'`)
	singleQuotedKeyRe   = regexp.MustCompile(`'([^'\n]*)'\s*:`)
	singleQuotedElemRe  = regexp.MustCompile(`([\[,]\s*)'([^'\n]*)'`)

	bareKeyRe = regexp.MustCompile(`([{,]\s*)([A-Za-z_][A-Za-z0-9_]*)\s*:`)

	controlCharRe = regexp.MustCompile("[\x00-\x08\x0b\x0c\x0e-\x1f\x7f]")
	whitespaceRe  = regexp.MustCompile(`\s+`)
	newlineRunRe  = regexp.MustCompile(`\s*\n\s*`)
)

// extractFencedBlock returns the body of the first fenced code block, with or
// without a language tag. Empty string when no fence is present.
func extractFencedBlock(s string) string {
	m := fencedRe.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// braceSpan returns the substring between the first opening brace and the last
// closing brace, or empty string when no such span exists.
func braceSpan(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}

// repairSyntax applies the standard fix-up pass: BOM strip, brace trim,
// trailing-comma removal, missing-comma insertion, quote normalization, bare
// key quoting, and closer balancing.
func repairSyntax(s string) string {
	s = strings.TrimPrefix(strings.TrimSpace(s), "\ufeff")
	if s == "" {
		return ""
	}
	if span := braceSpan(s); span != "" {
		s = span
	}
	s = removeTrailingCommas(s)
	s = insertMissingCommas(s)
	s = normalizeSingleQuotes(s)
	s = quoteBareKeys(s)
	s = balanceClosers(s)
	s = removeTrailingCommas(s)
	return s
}

// removeTrailingCommas strips commas that directly precede a closer. Multiple
// passes handle nested closers (",]}" style runs).
func removeTrailingCommas(s string) string {
	for range 5 {
		next := trailingCommaRe.ReplaceAllString(s, "$1")
		if next == s {
			break
		}
		s = next
	}
	return s
}

// insertMissingCommas adds commas between adjacent quoted strings on one line
// and between value-ending and value-starting tokens across line breaks.
func insertMissingCommas(s string) string {
	s = stringStringSpaceRe.ReplaceAllString(s, `",${1}"`)
	s = stringStringNewlineRe.ReplaceAllString(s, `",${1}"`)
	s = closerOpenerNewlineRe.ReplaceAllString(s, `${1},${2}${3}`)
	s = stringOpenerNewlineRe.ReplaceAllString(s, `",${1}${2}`)
	s = closerStringNewlineRe.ReplaceAllString(s, `${1},${2}"`)
	return s
}

// normalizeSingleQuotes rewrites single-quoted keys, values, and array
// elements to double-quoted form.
func normalizeSingleQuotes(s string) string {
	s = singleQuotedKeyRe.ReplaceAllString(s, `"${1}":`)
	s = singleQuotedValueRe.ReplaceAllString(s, `: "${1}"`)
	s = singleQuotedElemRe.ReplaceAllString(s, `${1}"${2}"`)
	return s
}

// quoteBareKeys wraps unquoted object keys in double quotes.
func quoteBareKeys(s string) string {
	return bareKeyRe.ReplaceAllString(s, `${1}"${2}":`)
}

// balanceClosers appends the closers for any braces or brackets left open at
// end of input. Openers inside string literals are ignored.
func balanceClosers(s string) string {
	var stack []byte
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{', '[':
			if !inString {
				stack = append(stack, c)
			}
		case '}':
			if !inString && len(stack) > 0 && stack[len(stack)-1] == '{' {
				stack = stack[:len(stack)-1]
			}
		case ']':
			if !inString && len(stack) > 0 && stack[len(stack)-1] == '[' {
				stack = stack[:len(stack)-1]
			}
		}
	}

	// Unterminated string literal: close it before closing containers.
	var sb strings.Builder
	sb.WriteString(s)
	if inString {
		sb.WriteByte('"')
	}
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == '{' {
			sb.WriteByte('}')
		} else {
			sb.WriteByte(']')
		}
	}
	return sb.String()
}

// aggressiveCleanup strips control characters, collapses all whitespace runs,
// re-extracts the brace span, and runs the standard repair pass.
func aggressiveCleanup(s string) string {
	s = controlCharRe.ReplaceAllString(s, " ")
	s = whitespaceRe.ReplaceAllString(s, " ")
	span := braceSpan(s)
	if span == "" {
		return ""
	}
	return repairSyntax(span)
}

// insertLineCommas walks lines and appends a comma to any line that does not
// end in a structural character when the following line begins a new value.
func insertLineCommas(s string) string {
	lines := strings.Split(s, "\n")
	for i := 0; i < len(lines)-1; i++ {
		cur := strings.TrimRight(lines[i], " \t")
		trimmed := strings.TrimSpace(cur)
		if trimmed == "" {
			continue
		}
		last := trimmed[len(trimmed)-1]
		if strings.IndexByte("{[,:", last) >= 0 {
			continue
		}
		next := strings.TrimSpace(lines[i+1])
		if next == "" {
			continue
		}
		if next[0] == '"' || next[0] == '{' || next[0] == '[' {
			lines[i] = cur + ","
		}
	}
	return strings.Join(lines, "\n")
}

// flattenNewlines collapses all line breaks to single spaces, inserts commas
// between adjacent tokens, and strips trailing commas.
func flattenNewlines(s string) string {
	span := braceSpan(s)
	if span == "" {
		return ""
	}
	s = newlineRunRe.ReplaceAllString(span, " ")
	s = stringStringSpaceRe.ReplaceAllString(s, `",${1}"`)
	s = closerOpenerSpaceRe.ReplaceAllString(s, `${1}, ${2}`)
	s = stringOpenerSpaceRe.ReplaceAllString(s, `", ${1}`)
	s = closerStringSpaceRe.ReplaceAllString(s, `${1}, "`)
	s = removeTrailingCommas(s)
	return s
}
