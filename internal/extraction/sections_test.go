package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduceMarkup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "Plain text passes through",
			input:    "Work Experience\nSenior Engineer at Acme",
			contains: []string{"Work Experience", "Senior Engineer at Acme"},
		},
		{
			name:     "HTML tags removed",
			input:    "<html><body><h2>Skills</h2><p>Go, SQL</p></body></html>",
			contains: []string{"Skills", "Go, SQL"},
			excludes: []string{"<h2>", "<p>"},
		},
		{
			name:     "Script content dropped",
			input:    "<div><script>alert(1)</script><p>Education</p></div>",
			contains: []string{"Education"},
			excludes: []string{"alert"},
		},
		{
			name:     "Entities unescaped",
			input:    "R&amp;D Engineer &ndash; Acme",
			contains: []string{"R&D Engineer"},
		},
		{
			name:     "CRLF normalized and blank runs collapsed",
			input:    "Summary\r\n\r\n\r\n\r\nText body",
			contains: []string{"Summary\n\nText body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ReduceMarkup(tt.input)
			for _, want := range tt.contains {
				assert.Contains(t, result, want)
			}
			for _, not := range tt.excludes {
				assert.NotContains(t, result, not)
			}
		})
	}
}

func TestExtractSections(t *testing.T) {
	markup := `Jordan Avery
jordan@example.com

Professional Summary
Engineer with eight years of backend experience.

Technical Skills
Go, PostgreSQL, Kubernetes, Terraform

Work Experience
Senior Engineer at Acme Corp
2019-2022
Built a system for order processing.

Education
B.S. Computer Science, State University, 2015
`

	sections := ExtractSections(markup)

	require.Contains(t, sections, SectionSummary)
	assert.Contains(t, sections[SectionSummary], "eight years")

	require.Contains(t, sections, SectionSkills)
	assert.Contains(t, sections[SectionSkills], "PostgreSQL")

	require.Contains(t, sections, SectionExperience)
	assert.Contains(t, sections[SectionExperience], "Senior Engineer at Acme Corp")
	assert.NotContains(t, sections[SectionExperience], "B.S. Computer Science")

	require.Contains(t, sections, SectionEducation)
	assert.Contains(t, sections[SectionEducation], "State University")
}

func TestExtractSectionsSynonyms(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		canonical string
	}{
		{"Employment history", "Employment History", SectionExperience},
		{"Career history", "career history", SectionExperience},
		{"Profile as summary", "PROFILE", SectionSummary},
		{"Core competencies as skills", "Core Competencies", SectionSkills},
		{"Volunteering", "Volunteering", SectionVolunteer},
		{"Markdown heading", "## Projects", SectionProjects},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			markup := tt.header + "\nSome body content long enough to qualify as a section span.\n"
			sections := ExtractSections(markup)
			assert.Contains(t, sections, tt.canonical)
		})
	}
}

func TestExtractSectionsBareLabelIgnored(t *testing.T) {
	// A label with no body under it should not register.
	sections := ExtractSections("Skills\n\nEducation\nB.S. Computer Science, State University, 2015")

	assert.NotContains(t, sections, SectionSkills)
	assert.Contains(t, sections, SectionEducation)
}

func TestExtractSectionsInlineHeader(t *testing.T) {
	sections := ExtractSections("Skills: Go, SQL, Kubernetes, Docker\n\nSummary\nBackend engineer with a focus on reliability.")

	require.Contains(t, sections, SectionSkills)
	assert.Contains(t, sections[SectionSkills], "Kubernetes")
	assert.Contains(t, sections, SectionSummary)
}

func TestExtractSectionsEmptyInput(t *testing.T) {
	assert.Empty(t, ExtractSections(""))
	assert.Empty(t, ExtractSections("no recognizable labels in this text at all"))
}
