package pipeline

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-pipeline/internal/synthesis"
	"github.com/jonathan/resume-pipeline/internal/types"
)

func TestProcessStructuredEnvelope(t *testing.T) {
	raw := types.RawResponse{
		Origin: types.OriginStructured,
		Text: `{"score": 85, "feedback": ["solid"], "resume": {
			"summary": "Backend engineer with eight years of experience.",
			"skills": ["Go", "SQL"],
			"experience": [{"title": "Senior Engineer", "company": "Acme",
				"responsibilities": ["Built the order processing system."]}]
		}}`,
	}

	outcome := Process(raw, Options{})

	require.NotNil(t, outcome.Resume)
	assert.Equal(t, 85, outcome.Score)
	assert.Equal(t, []string{"solid"}, outcome.Feedback)
	assert.Equal(t, 1, outcome.Trace.StrategyUsed)
	assert.False(t, outcome.Trace.Fallback)
	require.Len(t, outcome.Resume.Experience, 1)
	assert.Equal(t, "Senior Engineer", outcome.Resume.Experience[0].Title)
	assert.NotEmpty(t, outcome.Trace.RunID)
}

func TestProcessStructuredFencedWithMissingComma(t *testing.T) {
	raw := types.RawResponse{
		Origin: types.OriginStructured,
		Text:   "```json\n{\"score\": 80, \"feedback\": [\"a\" \"b\"]}\n```",
	}

	outcome := Process(raw, Options{})

	assert.Equal(t, 80, outcome.Score)
	assert.Equal(t, []string{"a", "b"}, outcome.Feedback)
	assert.False(t, outcome.Trace.Fallback)
	assert.NotEmpty(t, outcome.Trace.Attempts)
}

func TestProcessStructuredUnrecoverable(t *testing.T) {
	raw := types.RawResponse{Origin: types.OriginStructured, Text: "not json at all"}

	outcome := Process(raw, Options{})

	assert.True(t, outcome.Trace.Fallback)
	assert.Equal(t, 50, outcome.Score)
	assert.NotEmpty(t, outcome.Feedback)
	require.NotNil(t, outcome.Resume)
	assert.NotNil(t, outcome.Resume.Experience)
	assert.Empty(t, outcome.Resume.Experience)
}

func TestProcessProse(t *testing.T) {
	raw := types.RawResponse{
		Origin: types.OriginProse,
		Text:   "Work Experience\nSenior Engineer at Acme Corp\n2019-2022\nBuilt a system for order processing.\n\nProduct Manager at Globex\n2022-Present\nLed a team of six engineers.",
	}

	outcome := Process(raw, Options{})

	assert.Zero(t, outcome.Score)
	require.Len(t, outcome.Resume.Experience, 2)
	assert.Equal(t, "Senior Engineer", outcome.Resume.Experience[0].Title)
	assert.Equal(t, "Product Manager", outcome.Resume.Experience[1].Title)
	assert.Zero(t, outcome.Trace.StrategyUsed)
}

func TestProcessDropsPlaceholderEntities(t *testing.T) {
	raw := types.RawResponse{
		Origin: types.OriginStructured,
		Text:   `{"resume": {"projects": [{"name": "Sample Project", "description": "placeholder"}]}}`,
	}

	outcome := Process(raw, Options{})

	assert.Empty(t, outcome.Resume.Projects)
	require.Len(t, outcome.Trace.Dropped, 1)
	assert.Contains(t, outcome.Trace.Dropped[0], "Sample Project")
}

func TestProcessSchemaAdvisories(t *testing.T) {
	raw := types.RawResponse{
		Origin: types.OriginStructured,
		Text:   `{"score": 250, "resume": {}}`,
	}

	outcome := Process(raw, Options{})

	assert.NotEmpty(t, outcome.Trace.Advisories)
}

func TestProcessVerboseOutput(t *testing.T) {
	var buf bytes.Buffer
	raw := types.RawResponse{Origin: types.OriginStructured, Text: `{"resume": {}}`}

	Process(raw, Options{Verbose: true, Out: &buf})

	assert.Contains(t, buf.String(), "STRUCTURED RESUME")
}

func TestRenderAll(t *testing.T) {
	resume := &types.StructuredResume{Summary: "Backend engineer with eight years."}
	resume.ApplyDefaults()

	rendered, err := RenderAll(context.Background(), resume, nil)

	require.NoError(t, err)
	require.Len(t, rendered, 2)
	assert.Equal(t, rendered[synthesis.FormatPage], rendered[synthesis.FormatDocx])
	require.NotEmpty(t, rendered[synthesis.FormatPage])
	assert.Equal(t, types.BlockSummary, rendered[synthesis.FormatPage][0].Type)
}

func TestRenderAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RenderAll(ctx, &types.StructuredResume{}, nil)

	assert.Error(t, err)
}
