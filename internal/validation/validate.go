// Package validation sanitizes entity candidates and decides per-entity
// validity before they are admitted into a structured resume. It is the single
// enforcement point keeping template and hallucinated placeholder content out
// of rendered output.
package validation

import (
	"fmt"

	"github.com/jonathan/resume-pipeline/internal/placeholder"
	"github.com/jonathan/resume-pipeline/internal/types"
)

const (
	minTitleLen       = 3
	minCompanyLen     = 2
	minNameLen        = 2
	minLooseNameLen   = 3
	minDescriptionLen = 10
)

// Report records every filtering decision made while validating a resume, for
// observability. Dropping an entity is not an error.
type Report struct {
	DroppedExperience []string
	DroppedProjects   []string
	DroppedEducation  []string
	DroppedLoose      []string
	ClearedFields     []string
}

// Dropped returns the total number of entities removed.
func (r *Report) Dropped() int {
	return len(r.DroppedExperience) + len(r.DroppedProjects) +
		len(r.DroppedEducation) + len(r.DroppedLoose)
}

// ValidExperience reports whether a sanitized experience entry may be
// rendered: a real title and a real company name.
func ValidExperience(entry *types.ExperienceEntry) bool {
	return len(entry.Title) >= minTitleLen && !placeholder.Matches(entry.Title) &&
		len(entry.Company) >= minCompanyLen
}

// ValidProject reports whether a sanitized project entry may be rendered: a
// real name, plus either a substantive description or a technology list.
func ValidProject(entry *types.ProjectEntry) bool {
	if len(entry.Name) < minNameLen || placeholder.Matches(entry.Name) {
		return false
	}
	return len(entry.Description) >= minDescriptionLen || len(entry.Technologies) > 0
}

// ValidEducation reports whether a sanitized education entry may be rendered:
// at least one of degree or institution survived sanitization.
func ValidEducation(entry *types.EducationEntry) bool {
	return len(entry.Degree) >= minNameLen || len(entry.Institution) >= minNameLen
}

// ValidLoose reports whether a sanitized loose entry (certification, award,
// volunteer role, publication) may be rendered.
func ValidLoose(entry *types.LooseEntry) bool {
	return len(entry.Name) >= minLooseNameLen && !placeholder.Matches(entry.Name)
}

// ValidateResume sanitizes every candidate entity in the resume and drops the
// ones that remain invalid. It is the last stage allowed to mutate the
// resume; synthesis only reads it. The returned report lists what was
// removed.
func ValidateResume(resume *types.StructuredResume) *Report {
	report := &Report{}

	validateContact(&resume.Contact, report)

	if cleared := clearPlaceholder(resume.Summary); cleared != resume.Summary {
		report.ClearedFields = append(report.ClearedFields, "summary")
		resume.Summary = cleared
	}
	resume.Skills = filterTokens(resume.Skills)
	resume.Competencies = filterTokens(resume.Competencies)
	resume.Languages = filterTokens(resume.Languages)

	kept := resume.Experience[:0]
	for i := range resume.Experience {
		SanitizeExperience(&resume.Experience[i])
		if ValidExperience(&resume.Experience[i]) {
			kept = append(kept, resume.Experience[i])
			continue
		}
		report.DroppedExperience = append(report.DroppedExperience, describeEntity("experience", resume.Experience[i].Title))
	}
	resume.Experience = kept

	keptProjects := resume.Projects[:0]
	for i := range resume.Projects {
		SanitizeProject(&resume.Projects[i])
		if ValidProject(&resume.Projects[i]) {
			keptProjects = append(keptProjects, resume.Projects[i])
			continue
		}
		report.DroppedProjects = append(report.DroppedProjects, describeEntity("project", resume.Projects[i].Name))
	}
	resume.Projects = keptProjects

	keptEducation := resume.Education[:0]
	for i := range resume.Education {
		SanitizeEducation(&resume.Education[i])
		if ValidEducation(&resume.Education[i]) {
			keptEducation = append(keptEducation, resume.Education[i])
			continue
		}
		report.DroppedEducation = append(report.DroppedEducation, describeEntity("education", resume.Education[i].Degree))
	}
	resume.Education = keptEducation

	resume.Certifications = validateLoose(resume.Certifications, "certification", report)
	resume.Awards = validateLoose(resume.Awards, "award", report)
	resume.Volunteer = validateLoose(resume.Volunteer, "volunteer", report)
	resume.Publications = validateLoose(resume.Publications, "publication", report)

	resume.ApplyDefaults()
	return report
}

func validateLoose(entries []types.LooseEntry, kind string, report *Report) []types.LooseEntry {
	kept := entries[:0]
	for i := range entries {
		SanitizeLoose(&entries[i])
		if ValidLoose(&entries[i]) {
			kept = append(kept, entries[i])
			continue
		}
		report.DroppedLoose = append(report.DroppedLoose, describeEntity(kind, entries[i].Name))
	}
	return kept
}

// describeEntity labels a dropped entity for the report, tolerating entities
// whose identifying field was itself cleared.
func describeEntity(kind, name string) string {
	if name == "" {
		name = "(unnamed)"
	}
	return fmt.Sprintf("%s: %s", kind, name)
}
