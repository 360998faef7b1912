package validation

import (
	"strings"

	"github.com/jonathan/resume-pipeline/internal/placeholder"
	"github.com/jonathan/resume-pipeline/internal/types"
)

const (
	// minListItemLen is the floor for bullet-style list elements
	// (responsibilities, achievements). Shorter items are noise.
	minListItemLen = 10
)

// SanitizeExperience clears placeholder-matching fields and filters list
// elements in place.
func SanitizeExperience(entry *types.ExperienceEntry) {
	entry.Title = clearPlaceholder(entry.Title)
	entry.Company = clearPlaceholder(entry.Company)
	entry.Location = clearPlaceholder(entry.Location)
	entry.Responsibilities = filterBullets(entry.Responsibilities)
	entry.Achievements = filterBullets(entry.Achievements)
	entry.Technologies = filterTokens(entry.Technologies)
}

// SanitizeProject clears placeholder-matching fields and filters list
// elements in place.
func SanitizeProject(entry *types.ProjectEntry) {
	entry.Name = clearPlaceholder(entry.Name)
	entry.Description = clearPlaceholder(entry.Description)
	entry.Technologies = filterTokens(entry.Technologies)
	entry.Achievements = filterBullets(entry.Achievements)
}

// SanitizeEducation clears placeholder-matching fields in place.
func SanitizeEducation(entry *types.EducationEntry) {
	entry.Degree = clearPlaceholder(entry.Degree)
	entry.Institution = clearPlaceholder(entry.Institution)
	entry.Honors = clearPlaceholder(entry.Honors)
	entry.Coursework = clearPlaceholder(entry.Coursework)
}

// SanitizeLoose clears a placeholder-matching name or details in place.
func SanitizeLoose(entry *types.LooseEntry) {
	entry.Name = clearPlaceholder(entry.Name)
	entry.Details = clearPlaceholder(entry.Details)
}

// clearPlaceholder returns the trimmed value, or empty when it matches a
// placeholder pattern.
func clearPlaceholder(value string) string {
	trimmed := strings.TrimSpace(value)
	if placeholder.Matches(trimmed) {
		return ""
	}
	return trimmed
}

// filterBullets drops list elements that match a placeholder pattern or fall
// below the bullet length floor.
func filterBullets(items []string) []string {
	kept := []string{}
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if len(trimmed) < minListItemLen || placeholder.Matches(trimmed) {
			continue
		}
		kept = append(kept, trimmed)
	}
	return kept
}

// filterTokens drops placeholder and empty elements but applies no length
// floor; technology and skill tokens are legitimately short.
func filterTokens(items []string) []string {
	kept := []string{}
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" || placeholder.Matches(trimmed) {
			continue
		}
		kept = append(kept, trimmed)
	}
	return kept
}
