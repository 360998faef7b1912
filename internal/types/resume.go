// Package types defines the shared data structures passed between pipeline stages.
package types

// ContactInfo holds the header/contact fields of a resume.
type ContactInfo struct {
	Name     string   `json:"name"`
	Email    string   `json:"email,omitempty" validate:"omitempty,email"`
	Phone    string   `json:"phone,omitempty"`
	Location string   `json:"location,omitempty"`
	Links    []string `json:"links"`
}

// ExperienceEntry represents one job (or project rendered as a job) in the
// experience section.
type ExperienceEntry struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Location         string   `json:"location,omitempty"`
	Dates            string   `json:"dates,omitempty"`
	Responsibilities []string `json:"responsibilities"`
	Achievements     []string `json:"achievements"`
	Technologies     []string `json:"technologies"`
}

// ProjectEntry represents a standalone project candidate.
type ProjectEntry struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies"`
	Achievements []string `json:"achievements"`
}

// EducationEntry represents one degree or program.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Dates       string `json:"dates,omitempty"`
	GPA         string `json:"gpa,omitempty"`
	Honors      string `json:"honors,omitempty"`
	Coursework  string `json:"coursework,omitempty"`
}

// LooseEntry is the loosely-typed shape used for certifications, awards,
// volunteer work, and publications.
type LooseEntry struct {
	Name    string `json:"name"`
	Details string `json:"details,omitempty"`
	Date    string `json:"date,omitempty"`
}

// StructuredResume is the canonical output of the parsing/extraction stages and
// the sole input to document synthesis. After validation completes it is never
// mutated; synthesis only reads it.
type StructuredResume struct {
	Contact        ContactInfo      `json:"contact"`
	Summary        string           `json:"summary"`
	Skills         []string         `json:"skills"`
	Competencies   []string         `json:"competencies"`
	Experience     []ExperienceEntry `json:"experience"`
	Education      []EducationEntry  `json:"education"`
	Projects       []ProjectEntry    `json:"projects"`
	Certifications []LooseEntry      `json:"certifications"`
	Awards         []LooseEntry      `json:"awards"`
	Volunteer      []LooseEntry      `json:"volunteer"`
	Publications   []LooseEntry      `json:"publications"`
	Languages      []string          `json:"languages"`
}

// ApplyDefaults replaces nil list fields with empty slices so that every list
// field is non-nil at the synthesizer boundary.
func (r *StructuredResume) ApplyDefaults() {
	if r.Contact.Links == nil {
		r.Contact.Links = []string{}
	}
	if r.Skills == nil {
		r.Skills = []string{}
	}
	if r.Competencies == nil {
		r.Competencies = []string{}
	}
	if r.Experience == nil {
		r.Experience = []ExperienceEntry{}
	}
	if r.Education == nil {
		r.Education = []EducationEntry{}
	}
	if r.Projects == nil {
		r.Projects = []ProjectEntry{}
	}
	if r.Certifications == nil {
		r.Certifications = []LooseEntry{}
	}
	if r.Awards == nil {
		r.Awards = []LooseEntry{}
	}
	if r.Volunteer == nil {
		r.Volunteer = []LooseEntry{}
	}
	if r.Publications == nil {
		r.Publications = []LooseEntry{}
	}
	if r.Languages == nil {
		r.Languages = []string{}
	}
}

// GenerationResult is the decoded shape of a structured model response: an
// overall quality score, reviewer feedback lines, and the resume payload.
type GenerationResult struct {
	Score    int              `json:"score"`
	Feedback []string         `json:"feedback"`
	Resume   StructuredResume `json:"resume"`
}
