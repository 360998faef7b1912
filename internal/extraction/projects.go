package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-pipeline/internal/types"
)

var (
	// projectNameLineRe marks a probable project heading: short, capitalized,
	// optionally ending in a colon, not a sentence.
	projectNameLineRe = regexp.MustCompile(`^[A-Z][\w&/' -]{1,50}:?$`)

	techPrefixRe = regexp.MustCompile(`(?i)^(?:technologies|tech(?:\s+stack)?|stack|built with|tools)[:\s]+(.+)$`)
)

// ExtractProjectEntries splits a projects span into entries and parses name,
// description, and technologies for each. Entries without a name are
// discarded.
func ExtractProjectEntries(sectionText string) []types.ProjectEntry {
	entries := []types.ProjectEntry{}
	for _, block := range splitProjectBlocks(sectionText) {
		entry := parseProjectEntry(block)
		if entry == nil || strings.TrimSpace(entry.Name) == "" {
			continue
		}
		entries = append(entries, *entry)
	}
	return entries
}

// splitProjectBlocks prefers paragraph breaks; when the span is one dense
// paragraph it falls back to project-heading lines.
func splitProjectBlocks(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var paragraphs []string
	for _, block := range paragraphBreakRe.Split(text, -1) {
		if trimmed := strings.TrimSpace(block); trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}
	if len(paragraphs) >= 2 {
		return paragraphs
	}

	lines := strings.Split(text, "\n")
	var starts []int
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || bulletGlyphRe.MatchString(trimmed) {
			continue
		}
		if projectNameLineRe.MatchString(trimmed) {
			starts = append(starts, i)
		}
	}
	if len(starts) < 2 {
		return paragraphs
	}

	var blocks []string
	for i, start := range starts {
		end := len(lines)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		if block := strings.TrimSpace(strings.Join(lines[start:end], "\n")); block != "" {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

// parseProjectEntry pulls name, description, and technologies from one block.
func parseProjectEntry(block string) *types.ProjectEntry {
	lines := nonEmptyLines(block)
	if len(lines) == 0 {
		return nil
	}

	entry := &types.ProjectEntry{
		Technologies: []string{},
		Achievements: []string{},
	}

	name := stripBullet(lines[0])
	// "Name — description" and "Name: description" one-liners.
	if idx := strings.IndexAny(name, ":"); idx > 0 && idx < 50 {
		entry.Description = strings.TrimSpace(name[idx+1:])
		name = name[:idx]
	} else {
		for _, sep := range []string{" — ", " – ", " - "} {
			if idx := strings.Index(name, sep); idx > 0 && idx < 50 {
				entry.Description = strings.TrimSpace(name[idx+len(sep):])
				name = name[:idx]
				break
			}
		}
	}
	entry.Name = cleanField(name)

	var description []string
	if entry.Description != "" {
		description = append(description, entry.Description)
	}
	for _, line := range lines[1:] {
		line = stripBullet(line)
		if m := techPrefixRe.FindStringSubmatch(line); m != nil {
			entry.Technologies = append(entry.Technologies, SplitList(m[1])...)
			continue
		}
		if len(line) >= minResponsibilityLen {
			description = append(description, line)
		}
	}
	entry.Description = strings.Join(description, " ")

	return entry
}
