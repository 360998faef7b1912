package extraction

import (
	"strings"

	"github.com/jonathan/resume-pipeline/internal/types"
)

// ExtractResume runs the full prose path: markup reduction, section location,
// and per-section entity extraction. The result is a candidate resume; it has
// not yet passed validation. Unrecognized sections yield empty fields, never
// errors.
func ExtractResume(markup string) *types.StructuredResume {
	plain := ReduceMarkup(markup)
	sections := ExtractSections(plain)

	resume := &types.StructuredResume{
		Contact:        ExtractContact(plain),
		Summary:        strings.TrimSpace(sections[SectionSummary]),
		Skills:         SplitList(sections[SectionSkills]),
		Experience:     ExtractExperienceEntries(sections[SectionExperience]),
		Education:      ExtractEducationEntries(sections[SectionEducation]),
		Projects:       ExtractProjectEntries(sections[SectionProjects]),
		Certifications: extractLooseEntries(sections[SectionCertifications]),
		Awards:         extractLooseEntries(sections[SectionAwards]),
		Volunteer:      extractLooseEntries(sections[SectionVolunteer]),
		Publications:   extractLooseEntries(sections[SectionPublications]),
	}
	resume.ApplyDefaults()
	return resume
}

// extractLooseEntries parses the loosely-typed sections (certifications,
// awards, volunteer, publications): one entry per line or bullet, with any
// trailing date span separated out.
func extractLooseEntries(sectionText string) []types.LooseEntry {
	entries := []types.LooseEntry{}
	for _, line := range nonEmptyLines(sectionText) {
		item := stripBullet(line)
		if len(item) < 3 {
			continue
		}
		span, rest := extractDateSpan(item)
		entry := types.LooseEntry{Name: item}
		if span != "" && rest != "" {
			entry.Name = rest
			entry.Date = span
		}
		// "Name — details" composites keep the detail text.
		for _, sep := range []string{" — ", " – ", " | "} {
			if idx := strings.Index(entry.Name, sep); idx > 0 {
				entry.Details = strings.TrimSpace(entry.Name[idx+len(sep):])
				entry.Name = cleanField(entry.Name[:idx])
				break
			}
		}
		entries = append(entries, entry)
	}
	return entries
}
