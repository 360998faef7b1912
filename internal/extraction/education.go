package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-pipeline/internal/types"
)

var (
	// degreeRe marks a line as the start of an education entry.
	degreeRe = regexp.MustCompile(`(?i)\b(?:Bachelor|Master|Doctor|Ph\.?\s?D|B\.?\s?(?:S|A|Sc|Eng)\b\.?|M\.?\s?(?:S|A|Sc|Eng|BA)\b\.?|MBA|Associate|Diploma|Certificate)\b`)

	institutionRe = regexp.MustCompile(`(?i)\b(?:University|College|Institute|School|Academy|Polytechnic)\b`)

	gpaRe        = regexp.MustCompile(`(?i)\bGPA[:\s]*([0-9]\.[0-9]{1,2}(?:\s*/\s*[0-9]\.[0-9])?)`)
	honorsRe     = regexp.MustCompile(`(?i)\b(summa cum laude|magna cum laude|cum laude|with honors|with distinction|dean'?s list)\b`)
	courseworkRe = regexp.MustCompile(`(?i)^(?:relevant\s+)?coursework[:\s]+(.+)$`)
)

// ExtractEducationEntries splits an education span into entries using degree
// keywords as boundaries and parses degree, institution, dates, GPA, honors,
// and coursework per entry.
func ExtractEducationEntries(sectionText string) []types.EducationEntry {
	entries := []types.EducationEntry{}
	for _, block := range splitEducationBlocks(sectionText) {
		entry := parseEducationEntry(block)
		if entry == nil {
			continue
		}
		entries = append(entries, *entry)
	}
	return entries
}

// splitEducationBlocks cuts the span at degree-keyword lines, falling back to
// paragraph breaks.
func splitEducationBlocks(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	var starts []int
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if degreeRe.MatchString(trimmed) && !courseworkRe.MatchString(trimmed) {
			starts = append(starts, i)
		}
	}

	if len(starts) == 0 {
		var blocks []string
		for _, block := range paragraphBreakRe.Split(text, -1) {
			if trimmed := strings.TrimSpace(block); trimmed != "" {
				blocks = append(blocks, trimmed)
			}
		}
		return blocks
	}

	var blocks []string
	for i, start := range starts {
		end := len(lines)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		from := start
		// A lone institution line directly above the degree belongs to it.
		if i == 0 && start > 0 && institutionRe.MatchString(lines[start-1]) {
			from = start - 1
		}
		block := strings.TrimSpace(strings.Join(lines[from:end], "\n"))
		if block != "" {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

// parseEducationEntry pulls the structured fields out of one education block.
func parseEducationEntry(block string) *types.EducationEntry {
	lines := nonEmptyLines(block)
	if len(lines) == 0 {
		return nil
	}

	entry := &types.EducationEntry{}
	for _, line := range lines {
		line = stripBullet(line)

		if m := gpaRe.FindStringSubmatch(line); m != nil && entry.GPA == "" {
			entry.GPA = m[1]
		}
		if m := honorsRe.FindStringSubmatch(line); m != nil && entry.Honors == "" {
			entry.Honors = m[1]
		}
		if m := courseworkRe.FindStringSubmatch(line); m != nil && entry.Coursework == "" {
			entry.Coursework = strings.TrimSpace(m[1])
			continue
		}
		if span, _ := extractDateSpan(line); span != "" && entry.Dates == "" {
			entry.Dates = span
		}

		switch {
		case entry.Degree == "" && degreeRe.MatchString(line):
			degree, institution := splitDegreeLine(line)
			entry.Degree = degree
			if institution != "" && entry.Institution == "" {
				entry.Institution = institution
			}
		case entry.Institution == "" && institutionRe.MatchString(line):
			_, rest := extractDateSpan(line)
			entry.Institution = cleanField(rest)
		}
	}

	if entry.Degree == "" && entry.Institution == "" {
		return nil
	}
	return entry
}

// splitDegreeLine separates "Degree, Institution" or "Degree — Institution"
// composites.
func splitDegreeLine(line string) (degree, institution string) {
	_, line = extractDateSpan(line)
	for _, sep := range []string{" — ", " – ", " | ", " - ", ", "} {
		if idx := strings.Index(line, sep); idx > 0 {
			left := cleanField(line[:idx])
			right := cleanField(line[idx+len(sep):])
			if institutionRe.MatchString(right) {
				return left, right
			}
			if institutionRe.MatchString(left) {
				return right, left
			}
			// Ambiguous split: keep the whole line as the degree.
			return cleanField(line), ""
		}
	}
	return cleanField(line), ""
}
