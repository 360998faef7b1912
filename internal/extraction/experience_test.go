package extraction

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractExperienceEntriesTwoJobs(t *testing.T) {
	section := "Senior Engineer at Acme Corp\n2019-2022\nBuilt a system.\n\nProduct Manager at Globex\n2022-Present\nLed a team."

	entries := ExtractExperienceEntries(section)

	require.Len(t, entries, 2)

	assert.Equal(t, "Senior Engineer", entries[0].Title)
	assert.Equal(t, "Acme Corp", entries[0].Company)
	assert.Equal(t, "2019-2022", entries[0].Dates)
	assert.Equal(t, []string{"Built a system."}, entries[0].Responsibilities)

	assert.Equal(t, "Product Manager", entries[1].Title)
	assert.Equal(t, "Globex", entries[1].Company)
	assert.Equal(t, "2022-Present", entries[1].Dates)
	assert.Equal(t, []string{"Led a team."}, entries[1].Responsibilities)
}

func TestExtractExperienceEntriesCount(t *testing.T) {
	// N well-separated entries must yield exactly N results.
	for _, n := range []int{1, 2, 3, 5} {
		t.Run(fmt.Sprintf("%d entries", n), func(t *testing.T) {
			var sb strings.Builder
			for i := 0; i < n; i++ {
				fmt.Fprintf(&sb, "Software Engineer at Company%c\n201%d-201%d\nDelivered the flagship product feature.\n\n", 'A'+i, i, i+1)
			}

			entries := ExtractExperienceEntries(sb.String())

			assert.Len(t, entries, n)
		})
	}
}

func TestExtractExperienceEntriesDashSeparator(t *testing.T) {
	section := "Backend Developer — Initech\nJan 2020 – Dec 2021\n- Wrote billing services in Go.\n\nStaff Engineer — Hooli\n2022-Present\n- Scaled the data platform."

	entries := ExtractExperienceEntries(section)

	require.Len(t, entries, 2)
	assert.Equal(t, "Backend Developer", entries[0].Title)
	assert.Equal(t, "Initech", entries[0].Company)
	assert.Equal(t, []string{"Wrote billing services in Go."}, entries[0].Responsibilities)
	assert.Equal(t, "Staff Engineer", entries[1].Title)
	assert.Equal(t, "Hooli", entries[1].Company)
}

func TestExtractExperienceEntriesRoleNounTitleLine(t *testing.T) {
	section := "Senior Software Engineer\nAcme Corp\n2018-2021\n- Designed the ingestion pipeline for telemetry data.\n\nEngineering Manager\nGlobex\n2021-Present\n- Grew the team from four to eleven engineers."

	entries := ExtractExperienceEntries(section)

	require.Len(t, entries, 2)
	assert.Equal(t, "Senior Software Engineer", entries[0].Title)
	assert.Equal(t, "Acme Corp", entries[0].Company)
	assert.Equal(t, "2018-2021", entries[0].Dates)
	assert.Equal(t, "Engineering Manager", entries[1].Title)
	assert.Equal(t, "Globex", entries[1].Company)
}

func TestExtractExperienceEntriesStateMachineFallback(t *testing.T) {
	// No blank lines, no strong separators, lowercase company names that dodge
	// the boundary patterns: only the line scanner can split.
	section := "Software Engineer at eBay\nShipped the payments integration for enterprise customers.\nQA Analyst at ironSource\nAutomated the regression suite across three products."

	entries := ExtractExperienceEntries(section)

	require.Len(t, entries, 2)
	assert.Equal(t, "Software Engineer", entries[0].Title)
	assert.Equal(t, "eBay", entries[0].Company)
	assert.Equal(t, "QA Analyst", entries[1].Title)
	assert.Equal(t, "ironSource", entries[1].Company)
}

func TestExtractExperienceEntriesSingleJob(t *testing.T) {
	section := "Senior Engineer at Acme Corp\n2019-2022\nBuilt a system for order processing."

	entries := ExtractExperienceEntries(section)

	require.Len(t, entries, 1)
	assert.Equal(t, "Senior Engineer", entries[0].Title)
	assert.Equal(t, "Acme Corp", entries[0].Company)
}

func TestExtractExperienceEntriesLocationParsing(t *testing.T) {
	section := "Platform Engineer at Umbrella Corp\nPortland, OR\n2020-2023\n- Ran the Kubernetes fleet for internal services.\n\nSite Reliability Engineer at Initech\nRemote\n2023-Present\n- Cut alert noise by consolidating monitors."

	entries := ExtractExperienceEntries(section)

	require.Len(t, entries, 2)
	assert.Equal(t, "Portland, OR", entries[0].Location)
	assert.Equal(t, "2020-2023", entries[0].Dates)
	assert.Equal(t, "Remote", entries[1].Location)
}

func TestExtractExperienceEntriesDiscardsNoise(t *testing.T) {
	section := "Senior Engineer at Acme Corp\n2019-2022\n- Built the order processing system from scratch.\n- 2019-2022\n- ok\n- Software Engineer\n- Migrated the monolith to services."

	entries := ExtractExperienceEntries(section)

	require.Len(t, entries, 1)
	assert.Equal(t, []string{
		"Built the order processing system from scratch.",
		"Migrated the monolith to services.",
	}, entries[0].Responsibilities)
}

func TestExtractExperienceEntriesEmpty(t *testing.T) {
	assert.Empty(t, ExtractExperienceEntries(""))
	assert.Empty(t, ExtractExperienceEntries("   \n \n"))
	assert.Empty(t, ExtractExperienceEntries("just one short line"))
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"Comma separated", "Go, PostgreSQL, Kubernetes", []string{"Go", "PostgreSQL", "Kubernetes"}},
		{"Bullet separated", "• Go • SQL", []string{"Go", "SQL"}},
		{"Newline separated", "Go\nSQL\nRedis", []string{"Go", "SQL", "Redis"}},
		{"Deduplicates case-insensitively", "Go, go, GO, SQL", []string{"Go", "SQL"}},
		{"Empty input", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitList(tt.input))
		})
	}
}
