package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-pipeline/internal/types"
)

const (
	// minEntryLen is the shortest block that counts as a real entry when
	// splitting an experience span.
	minEntryLen = 25
	// minResponsibilityLen is the floor below which a line is noise, not a
	// responsibility bullet.
	minResponsibilityLen = 8
)

// roleNouns are the job-title nouns that mark a line as a probable new entry.
const roleNouns = `(?:Engineer|Developer|Programmer|Manager|Director|Analyst|Designer|Consultant|Architect|Scientist|Specialist|Administrator|Coordinator|Lead|Intern|Officer|President|Founder|Researcher)`

// boundaryPattern is one heuristic for locating the start of a new entry.
// Patterns are data so sets can be reordered or extended without touching the
// splitting logic.
type boundaryPattern struct {
	label string
	re    *regexp.Regexp
}

// primaryBoundaries is the first, stricter pattern set. All patterns require
// the line not to end in a sentence period, which keeps prose bullets from
// registering as entry starts.
var primaryBoundaries = []boundaryPattern{
	{"role-noun-line", regexp.MustCompile(`(?m)^[A-Z][\w&/,.' -]{0,60}` + roleNouns + `(?:\s+(?:I|II|III|IV|V))?$`)},
	{"title-at-company", regexp.MustCompile(`(?m)^[A-Z][\w&/,.' -]{1,60}\s(?:at|@)\s[A-Z][^\n]*[^.\n]$`)},
	{"title-dash-company", regexp.MustCompile(`(?m)^[A-Z][\w&/,.' -]{1,60}\s+[—–-]\s+[A-Z][^\n]*[^.\n]$`)},
	{"date-range-line", regexp.MustCompile(`(?m)^\(?(?:` + monthToken + `\.?\s+)?(?:19|20)\d{2}\s*(?:[—–-]|to)\s*(?:(?:` + monthToken + `\.?\s+)?(?:19|20)\d{2}|(?i:present|current))`)},
	{"month-led-line", regexp.MustCompile(`(?m)^` + monthToken + `\.?\s+(?:19|20)\d{2}\b[^\n]*$`)},
}

// looseBoundaries is the fallback set used when the primary set finds fewer
// than two entries.
var looseBoundaries = []boundaryPattern{
	{"caps-heading", regexp.MustCompile(`(?m)^[A-Z][A-Z0-9&/,. -]{3,60}$`)},
	{"title-comma-company", regexp.MustCompile(`(?m)^[A-Z][\w.' -]{1,40},\s+[A-Z][^\n]*[^.\n]$`)},
}

var paragraphBreakRe = regexp.MustCompile(`\n\s*\n`)

// ExtractExperienceEntries splits an experience section span into individual
// entries and parses title, company, location, dates, and responsibility
// bullets for each. Entries that end up without a title are discarded.
func ExtractExperienceEntries(sectionText string) []types.ExperienceEntry {
	entries := []types.ExperienceEntry{}
	for _, block := range splitExperienceBlocks(sectionText) {
		entry := parseExperienceEntry(block)
		if entry == nil || strings.TrimSpace(entry.Title) == "" {
			continue
		}
		entries = append(entries, *entry)
	}
	return entries
}

// splitExperienceBlocks applies the boundary cascade: primary patterns, loose
// patterns, paragraph breaks, then the line-scanning state machine.
func splitExperienceBlocks(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if blocks := bestBoundarySplit(text, primaryBoundaries); len(blocks) >= 2 {
		return blocks
	}
	if blocks := bestBoundarySplit(text, looseBoundaries); len(blocks) >= 2 {
		return blocks
	}
	if blocks := qualifyingBlocks(paragraphBreakRe.Split(text, -1)); len(blocks) >= 2 {
		return blocks
	}
	return scanExperienceLines(text)
}

// bestBoundarySplit tries every pattern in the set and returns the split from
// whichever produced the most qualifying entries. Ties keep the earlier
// pattern, so set ordering expresses preference.
func bestBoundarySplit(text string, set []boundaryPattern) []string {
	var best []string
	for _, pattern := range set {
		blocks := splitAtBoundaries(text, pattern.re)
		if len(blocks) > len(best) {
			best = blocks
		}
	}
	return best
}

// splitAtBoundaries cuts text at every match start of re. Text before the
// first boundary is prepended to the first block when it is short enough to
// be a stray header rather than its own entry.
func splitAtBoundaries(text string, re *regexp.Regexp) []string {
	matches := re.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}

	var raw []string
	for i, m := range matches {
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		raw = append(raw, text[m[0]:end])
	}

	if prefix := strings.TrimSpace(text[:matches[0][0]]); prefix != "" && len(prefix) < 120 {
		raw[0] = prefix + "\n" + raw[0]
	}

	return qualifyingBlocks(raw)
}

// qualifyingBlocks trims blocks and keeps those above the entry length floor.
func qualifyingBlocks(blocks []string) []string {
	var kept []string
	for _, block := range blocks {
		trimmed := strings.TrimSpace(block)
		if len(trimmed) >= minEntryLen {
			kept = append(kept, trimmed)
		}
	}
	return kept
}

var (
	titleLineRoleRe  = regexp.MustCompile(`^[A-Z][\w&/,.' -]{0,60}` + roleNouns + `(?:\s+(?:I|II|III|IV|V))?$`)
	titleLineAtRe    = regexp.MustCompile(`^[A-Z][\w&/,.' -]{1,60}\s(?:at|@)\s\S`)
	leadingDateRe    = regexp.MustCompile(`^\(?(?:` + monthToken + `\.?\s+)?(?:19|20)\d{2}\s*(?:[—–-]|to)`)
)

// scanExperienceLines is the last-resort splitter: walk lines, classify each
// as a probable new job title or a continuation, and close the running
// accumulator on each new title.
func scanExperienceLines(text string) []string {
	var blocks []string
	var current []string

	flush := func() {
		block := strings.TrimSpace(strings.Join(current, "\n"))
		if len(block) >= minEntryLen {
			blocks = append(blocks, block)
		}
		current = current[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if len(current) > 0 && startsNewEntry(trimmed, current) {
			flush()
		}
		current = append(current, trimmed)
	}
	flush()

	return blocks
}

// looksLikeTitleLine reports whether a line starts a new job entry: a
// role-noun title, a "Title at Company" line, or a leading date range.
func looksLikeTitleLine(line string) bool {
	if bulletGlyphRe.MatchString(line) {
		return false
	}
	return titleLineRoleRe.MatchString(line) ||
		titleLineAtRe.MatchString(line) ||
		leadingDateRe.MatchString(line)
}

// startsNewEntry decides whether a line closes the running block. A date-led
// line directly under a title is that entry's date range, not a new entry; it
// only opens one when the running block already carries a date.
func startsNewEntry(line string, current []string) bool {
	if !looksLikeTitleLine(line) {
		return false
	}
	if leadingDateRe.MatchString(line) && !titleLineRoleRe.MatchString(line) && !titleLineAtRe.MatchString(line) {
		for _, prev := range current {
			if looksLikeDate(prev) {
				return true
			}
		}
		return false
	}
	return true
}

var (
	titleAtSplitRe    = regexp.MustCompile(`^(.{2,60}?)\s+(?:at|@)\s+(.+)$`)
	titleDashSplitRe  = regexp.MustCompile(`^(.{2,60}?)\s+[—–|]\s+(.+)$|^(.{2,60}?)\s+-\s+(.+)$`)
	titleCommaSplitRe = regexp.MustCompile(`^(.{2,50}?),\s+(.+)$`)
	locationRe        = regexp.MustCompile(`^[A-Z][A-Za-z .'-]+,\s*(?:[A-Z]{2}|[A-Z][a-z]+)$|(?i)^remote$`)
)

// parseExperienceEntry separates title, company, location, and dates from the
// first one to three lines of a block; remaining lines become responsibility
// bullets.
func parseExperienceEntry(block string) *types.ExperienceEntry {
	lines := nonEmptyLines(block)
	if len(lines) == 0 {
		return nil
	}

	entry := &types.ExperienceEntry{
		Responsibilities: []string{},
		Achievements:     []string{},
		Technologies:     []string{},
	}

	first := lines[0]
	if span, rest := extractDateSpan(first); span != "" && !strings.EqualFold(rest, first) {
		entry.Dates = span
		first = rest
	}

	switch {
	case titleAtSplitRe.MatchString(first):
		m := titleAtSplitRe.FindStringSubmatch(first)
		entry.Title, entry.Company = cleanField(m[1]), cleanField(m[2])
	case titleDashSplitRe.MatchString(first):
		m := titleDashSplitRe.FindStringSubmatch(first)
		if m[1] != "" {
			entry.Title, entry.Company = cleanField(m[1]), cleanField(m[2])
		} else {
			entry.Title, entry.Company = cleanField(m[3]), cleanField(m[4])
		}
	case titleLineRoleRe.MatchString(first):
		entry.Title = cleanField(first)
	case titleCommaSplitRe.MatchString(first):
		m := titleCommaSplitRe.FindStringSubmatch(first)
		entry.Title, entry.Company = cleanField(m[1]), cleanField(m[2])
	default:
		entry.Title = cleanField(first)
	}

	// Company may carry a trailing location ("Acme — Portland, OR").
	if entry.Company != "" {
		entry.Company, entry.Location = splitCompanyLocation(entry.Company)
	}

	bodyStart := 1
	for ; bodyStart < len(lines) && bodyStart < 3; bodyStart++ {
		line := lines[bodyStart]
		if bulletGlyphRe.MatchString(line) {
			break
		}
		if looksLikeDate(line) && len(line) <= 40 {
			if span, rest := extractDateSpan(line); span != "" {
				if entry.Dates == "" {
					entry.Dates = span
				}
				if rest != "" && entry.Location == "" && locationRe.MatchString(rest) {
					entry.Location = rest
				}
				continue
			}
		}
		if entry.Company == "" && len(line) <= 60 && !strings.HasSuffix(line, ".") {
			entry.Company, entry.Location = splitCompanyLocation(line)
			continue
		}
		if entry.Location == "" && locationRe.MatchString(line) {
			entry.Location = line
			continue
		}
		break
	}

	for _, line := range lines[bodyStart:] {
		bullet := stripBullet(line)
		if len(bullet) < minResponsibilityLen {
			continue
		}
		if isRestatedDate(bullet) || isRestatedTitle(bullet) {
			continue
		}
		entry.Responsibilities = append(entry.Responsibilities, bullet)
	}

	return entry
}

var companyLocTailRe = regexp.MustCompile(`^(.{2,60}?),\s+([A-Z][A-Za-z .'-]*,\s*[A-Z]{2}|(?i:remote))$`)

// splitCompanyLocation splits "Company — City, ST" or "Company, City, ST"
// shapes into company and location parts.
func splitCompanyLocation(text string) (company, location string) {
	for _, sep := range []string{" — ", " – ", " | ", " - "} {
		if idx := strings.Index(text, sep); idx > 0 {
			left := cleanField(text[:idx])
			right := cleanField(text[idx+len(sep):])
			if looksLikeDate(right) {
				return left, ""
			}
			return left, right
		}
	}
	if m := companyLocTailRe.FindStringSubmatch(text); m != nil {
		return cleanField(m[1]), cleanField(m[2])
	}
	return cleanField(text), ""
}

// cleanField trims separators and stray punctuation from a parsed field.
func cleanField(text string) string {
	return strings.Trim(strings.TrimSpace(text), ",;|—–- ")
}

var restatedTitleRe = regexp.MustCompile(`^[A-Z][\w&/,.' -]{0,40}` + roleNouns + `$`)

// isRestatedDate reports whether a candidate bullet is just a date line.
func isRestatedDate(line string) bool {
	span, rest := extractDateSpan(line)
	return span != "" && rest == ""
}

// isRestatedTitle reports whether a candidate bullet restates a job title.
func isRestatedTitle(line string) bool {
	return restatedTitleRe.MatchString(line) && len(strings.Fields(line)) <= 6
}
