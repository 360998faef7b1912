// Package pipeline provides the high-level orchestration for turning a raw
// model response into a validated resume and its rendered block sequences.
package pipeline

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/jonathan/resume-pipeline/internal/extraction"
	"github.com/jonathan/resume-pipeline/internal/observability"
	"github.com/jonathan/resume-pipeline/internal/repairjson"
	"github.com/jonathan/resume-pipeline/internal/schemas"
	"github.com/jonathan/resume-pipeline/internal/types"
	"github.com/jonathan/resume-pipeline/internal/validation"
)

// Options holds configuration for one pipeline run.
type Options struct {
	// Verbose prints per-stage diagnostics to Out.
	Verbose bool
	// Out receives verbose output. Required when Verbose is set.
	Out io.Writer
}

// Trace is the per-run diagnostic record: which path and repair strategy
// produced the resume, and what validation removed. It exists for
// observability, never for control flow.
type Trace struct {
	RunID        string              `json:"run_id"`
	Origin       types.Origin        `json:"origin"`
	StrategyUsed int                 `json:"strategy_used,omitempty"`
	Fallback     bool                `json:"fallback,omitempty"`
	Attempts     []repairjson.Attempt `json:"attempts,omitempty"`
	Advisories   []string            `json:"advisories,omitempty"`
	Dropped      []string            `json:"dropped,omitempty"`
	Cleared      []string            `json:"cleared,omitempty"`
}

// Outcome is the result of processing one raw response. Resume is always
// non-nil with non-nil list fields; degraded runs carry advisory feedback
// instead of an error.
type Outcome struct {
	Resume   *types.StructuredResume `json:"resume"`
	Score    int                     `json:"score"`
	Feedback []string                `json:"feedback"`
	Trace    Trace                   `json:"trace"`
}

// Process runs the full parse/extract → validate pipeline on one raw
// response. It never returns an error: unrecoverable structured input
// degrades to the safe fallback resume, and prose with nothing recognizable
// degrades to an empty resume.
func Process(raw types.RawResponse, opts Options) *Outcome {
	outcome := &Outcome{
		Trace: Trace{
			RunID:  uuid.NewString(),
			Origin: raw.Origin,
		},
	}

	var result *types.GenerationResult
	switch raw.Origin {
	case types.OriginProse:
		result = &types.GenerationResult{Resume: *extraction.ExtractResume(raw.Text)}
	default:
		result = processStructured(raw.Text, opts, &outcome.Trace)
	}

	report := validation.ValidateResume(&result.Resume)
	outcome.Trace.Dropped = append(outcome.Trace.Dropped, report.DroppedExperience...)
	outcome.Trace.Dropped = append(outcome.Trace.Dropped, report.DroppedProjects...)
	outcome.Trace.Dropped = append(outcome.Trace.Dropped, report.DroppedEducation...)
	outcome.Trace.Dropped = append(outcome.Trace.Dropped, report.DroppedLoose...)
	outcome.Trace.Cleared = report.ClearedFields

	outcome.Resume = &result.Resume
	outcome.Score = result.Score
	outcome.Feedback = result.Feedback
	if outcome.Feedback == nil {
		outcome.Feedback = []string{}
	}

	if opts.Verbose && opts.Out != nil {
		printer := observability.NewPrinter(opts.Out)
		printer.PrintValidationReport(report)
		printer.PrintResume(outcome.Resume)
	}
	return outcome
}

// processStructured runs the repair cascade, the advisory schema check, and
// envelope decoding. Any decode problem degrades to the fallback object.
func processStructured(text string, opts Options, trace *Trace) *types.GenerationResult {
	parsed := repairjson.ParseStructured(text)
	trace.StrategyUsed = parsed.StrategyUsed
	trace.Fallback = parsed.Fallback
	trace.Attempts = parsed.Attempts

	if opts.Verbose && opts.Out != nil {
		observability.NewPrinter(opts.Out).PrintParseTrace(parsed)
	}

	if !parsed.Fallback {
		trace.Advisories = schemas.CheckGenerationResult(parsed.Value)
	}

	result, err := repairjson.Decode(parsed.Value)
	if err != nil {
		trace.Advisories = append(trace.Advisories,
			fmt.Sprintf("decode failed, using fallback: %v", err))
		return repairjson.FallbackResult()
	}
	return result
}
