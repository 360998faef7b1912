package repairjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStructuredDirect(t *testing.T) {
	raw := `{"score": 80, "notes": ["a", "b"]}`

	result := ParseStructured(raw)

	require.False(t, result.Fallback)
	assert.Equal(t, 1, result.StrategyUsed, "valid JSON should short-circuit on the direct strategy")
	assert.Empty(t, result.Attempts)
	assert.Equal(t, float64(80), result.Value["score"])
	assert.Equal(t, []any{"a", "b"}, result.Value["notes"])
}

func TestParseStructuredFencedBlock(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"With language tag", "```json\n{\"score\": 75}\n```"},
		{"Without language tag", "```\n{\"score\": 75}\n```"},
		{"With surrounding prose", "Here is the result:\n```json\n{\"score\": 75}\n```\nLet me know!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseStructured(tt.raw)

			require.False(t, result.Fallback)
			assert.Equal(t, 2, result.StrategyUsed)
			assert.Equal(t, float64(75), result.Value["score"])
		})
	}
}

func TestParseStructuredBraceSpan(t *testing.T) {
	raw := `The answer is {"score": 60, "summary": "ok"} hope that helps`

	result := ParseStructured(raw)

	require.False(t, result.Fallback)
	assert.Equal(t, 3, result.StrategyUsed)
	assert.Equal(t, "ok", result.Value["summary"])
}

func TestParseStructuredMissingArrayComma(t *testing.T) {
	// Missing comma between adjacent quoted strings inside an array.
	raw := "```json\n{\"score\": 80, \"notes\": [\"a\" \"b\"]}\n```"

	result := ParseStructured(raw)

	require.False(t, result.Fallback)
	assert.Contains(t, []int{4, 5}, result.StrategyUsed)
	assert.Equal(t, float64(80), result.Value["score"])
	assert.Equal(t, []any{"a", "b"}, result.Value["notes"])
}

func TestParseStructuredSyntacticRepair(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		key  string
		want any
	}{
		{"Trailing comma in object", `{"score": 70,}`, "score", float64(70)},
		{"Nested trailing commas", `{"a": {"b": [1, 2,],},}`, "a", map[string]any{"b": []any{float64(1), float64(2)}}},
		{"Single-quoted value", `{"name": 'Jordan'}`, "name", "Jordan"},
		{"Bare object key", `{name: "Jordan"}`, "name", "Jordan"},
		{"Unbalanced braces", `{"outer": {"inner": "v"`, "outer", map[string]any{"inner": "v"}},
		{"Leading BOM", "\ufeff{\"score\": 55}", "score", float64(55)},
		{"Missing comma between strings across lines", "{\"notes\": [\"one\"\n\"two\"]}", "notes", []any{"one", "two"}},
		{"Missing comma between objects across lines", "{\"items\": [{\"a\": 1}\n{\"b\": 2}]}", "items", []any{map[string]any{"a": float64(1)}, map[string]any{"b": float64(2)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseStructured(tt.raw)

			require.False(t, result.Fallback, "should recover: attempts=%v", result.Attempts)
			assert.Equal(t, tt.want, result.Value[tt.key])
		})
	}
}

func TestParseStructuredLineCommaScan(t *testing.T) {
	raw := "{\n\"name\": \"Jordan\"\n\"title\": \"Engineer\"\n}"

	result := ParseStructured(raw)

	require.False(t, result.Fallback, "attempts=%v", result.Attempts)
	assert.Equal(t, "Jordan", result.Value["name"])
	assert.Equal(t, "Engineer", result.Value["title"])
}

func TestParseStructuredControlCharacters(t *testing.T) {
	raw := "{\"score\":\x01 65,\x02 \"summary\": \"fine\"}"

	result := ParseStructured(raw)

	require.False(t, result.Fallback, "attempts=%v", result.Attempts)
	assert.Equal(t, float64(65), result.Value["score"])
}

func TestParseStructuredFallback(t *testing.T) {
	result := ParseStructured("not json at all")

	require.True(t, result.Fallback)
	assert.Equal(t, 0, result.StrategyUsed)
	assert.Len(t, result.Attempts, len(strategies), "every strategy should record a failure")
	assert.Equal(t, fallbackScore, result.Value["score"])

	feedback, ok := result.Value["feedback"].([]string)
	require.True(t, ok)
	assert.NotEmpty(t, feedback)
}

func TestParseStructuredTotality(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"{",
		"}",
		"{{{{{",
		"\"",
		"null",
		"[1, 2, 3]",
		"\x00\x01\x02\xff\xfe",
		"```json\n```",
		"{\"unterminated",
		"::::,,,,",
	}

	for _, input := range inputs {
		assert.NotPanics(t, func() {
			result := ParseStructured(input)
			require.NotNil(t, result)
			require.NotNil(t, result.Value)
		}, "input %q", input)
	}
}

func TestFallbackResult(t *testing.T) {
	result := FallbackResult()

	assert.Equal(t, fallbackScore, result.Score)
	assert.NotEmpty(t, result.Feedback)
	assert.NotNil(t, result.Resume.Experience)
	assert.Empty(t, result.Resume.Experience)
	assert.NotNil(t, result.Resume.Skills)
}

func TestDecode(t *testing.T) {
	t.Run("Wrapped envelope", func(t *testing.T) {
		value := map[string]any{
			"score":    float64(82),
			"feedback": []any{"solid"},
			"resume": map[string]any{
				"summary": "Engineer with 5 years of experience.",
			},
		}

		result, err := Decode(value)

		require.NoError(t, err)
		assert.Equal(t, 82, result.Score)
		assert.Equal(t, "Engineer with 5 years of experience.", result.Resume.Summary)
		assert.NotNil(t, result.Resume.Experience)
	})

	t.Run("Bare resume object", func(t *testing.T) {
		value := map[string]any{
			"summary": "Engineer.",
			"skills":  []any{"Go", "SQL"},
		}

		result, err := Decode(value)

		require.NoError(t, err)
		assert.Zero(t, result.Score)
		assert.Equal(t, []string{"Go", "SQL"}, result.Resume.Skills)
	})
}
