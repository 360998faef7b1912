package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-pipeline/internal/types"
)

func TestSanitizeExperience(t *testing.T) {
	entry := types.ExperienceEntry{
		Title:   "Senior Engineer",
		Company: "[COMPANY NAME]",
		Responsibilities: []string{
			"Built the order processing system.",
			"TBD",
			"short",
			"Reduce development timelines",
		},
		Technologies: []string{"Go", "${LANG}", ""},
	}

	SanitizeExperience(&entry)

	assert.Equal(t, "Senior Engineer", entry.Title)
	assert.Empty(t, entry.Company)
	assert.Equal(t, []string{"Built the order processing system."}, entry.Responsibilities)
	assert.Equal(t, []string{"Go"}, entry.Technologies)
}

func TestSanitizeProject(t *testing.T) {
	entry := types.ProjectEntry{
		Name:         "Orderflow",
		Description:  "placeholder",
		Technologies: []string{"Go", "Kafka"},
	}

	SanitizeProject(&entry)

	assert.Equal(t, "Orderflow", entry.Name)
	assert.Empty(t, entry.Description)
	assert.Equal(t, []string{"Go", "Kafka"}, entry.Technologies)
}

func TestSanitizeEducation(t *testing.T) {
	entry := types.EducationEntry{
		Degree:      "B.S. Computer Science",
		Institution: "[UNIVERSITY]",
		Coursework:  "lorem ipsum dolor",
	}

	SanitizeEducation(&entry)

	assert.Equal(t, "B.S. Computer Science", entry.Degree)
	assert.Empty(t, entry.Institution)
	assert.Empty(t, entry.Coursework)
}

func TestFilterBulletsKeepsShortTechnologyTokensOut(t *testing.T) {
	// Bullets have a length floor; token lists do not.
	assert.Empty(t, filterBullets([]string{"Go", "SQL"}))
	assert.Equal(t, []string{"Go", "SQL"}, filterTokens([]string{"Go", "SQL"}))
}
