package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-pipeline/internal/repairjson"
	"github.com/jonathan/resume-pipeline/internal/types"
	"github.com/jonathan/resume-pipeline/internal/validation"
)

func TestPrintParseTrace(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintParseTrace(&repairjson.Result{
		StrategyUsed: 4,
		Attempts: []repairjson.Attempt{
			{Strategy: 1, Name: "direct", Reason: "invalid character"},
			{Strategy: 2, Name: "fenced-block", Reason: "no fenced block"},
			{Strategy: 3, Name: "brace-span", Reason: "invalid character"},
		},
	})

	output := buf.String()
	assert.Contains(t, output, "REPAIR PARSE TRACE")
	assert.Contains(t, output, "recovered by strategy 4")
	assert.Contains(t, output, "fenced-block")
}

func TestPrintParseTraceFallback(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintParseTrace(&repairjson.Result{Fallback: true})

	assert.Contains(t, buf.String(), "FALLBACK")
}

func TestPrintParseTraceNil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintParseTrace(nil)

	assert.Empty(t, buf.String())
}

func TestPrintValidationReport(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintValidationReport(&validation.Report{
		DroppedProjects: []string{"project: Sample Project"},
		ClearedFields:   []string{"contact.email"},
	})

	output := buf.String()
	assert.Contains(t, output, "VALIDATION REPORT")
	assert.Contains(t, output, "Sample Project")
	assert.Contains(t, output, "contact.email")
}

func TestPrintValidationReportQuietWhenClean(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintValidationReport(&validation.Report{})

	assert.Empty(t, buf.String())
}

func TestPrintResume(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintResume(&types.StructuredResume{
		Contact:    types.ContactInfo{Name: "Jordan Avery"},
		Skills:     []string{"Go", "SQL"},
		Experience: []types.ExperienceEntry{{Title: "Engineer", Company: "Acme"}},
	})

	output := buf.String()
	assert.Contains(t, output, "STRUCTURED RESUME")
	assert.Contains(t, output, "Jordan Avery")
	assert.Contains(t, output, "Skills:         2")
}

func TestPrintBlocks(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintBlocks("docx", []types.RenderBlock{
		{Type: types.BlockHeader, Title: "Jordan Avery"},
		{Type: types.BlockSummary, Text: "Backend engineer."},
	})

	output := buf.String()
	assert.Contains(t, output, "RENDER BLOCKS (DOCX)")
	assert.Contains(t, output, "Blocks: 2")
	assert.Contains(t, output, "header")
}
