package placeholder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Filler phrase", "Helped reduce development timelines by 20%", true},
		{"Filler phrase different case", "COLLABORATE EFFECTIVELY WITH CROSS-FUNCTIONAL TEAMS", true},
		{"Bracketed placeholder", "Worked at [Company Name] as engineer", true},
		{"Template variable", "Deployed ${service_name} to production", true},
		{"Double brace template", "Hi {{ name }}, welcome", true},
		{"Angle token", "Contact <YOUR EMAIL> for details", true},
		{"TBD token", "Start date: TBD", true},
		{"TODO token", "TODO add more detail", true},
		{"Bare N/A", "N/A", true},
		{"Lorem ipsum", "Lorem ipsum dolor sit amet", true},
		{"Placeholder word", "This is a placeholder description", true},
		{"Sample text", "sample text goes here", true},
		{"Your x here", "Your Achievement Here", true},
		{"Only punctuation", "---...---", true},
		{"Only whitespace and dashes", "  --  ", true},
		{"Dangling conjunction", "and improved performance", true},
		{"Real sentence", "Built a distributed cache serving 2M requests per day", false},
		{"Real title", "Senior Software Engineer", false},
		{"Empty string", "", false},
		{"Whitespace only", "   ", false},
		{"N/A inside a word", "Nationally ranked", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Matches(tt.input))
		})
	}
}

func TestMatchReturnsLabel(t *testing.T) {
	label, ok := Match("Start date: TBD")
	assert.True(t, ok)
	assert.Equal(t, "token:tbd", label)

	label, ok = Match("shipped the payments service")
	assert.False(t, ok)
	assert.Empty(t, label)
}

func TestExamplesAllMatch(t *testing.T) {
	for _, example := range Examples() {
		t.Run(strings.ReplaceAll(example, " ", "_"), func(t *testing.T) {
			assert.True(t, Matches(example), "library example should match its own patterns: %q", example)
		})
	}
}
