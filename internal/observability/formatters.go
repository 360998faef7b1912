// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-pipeline/internal/repairjson"
	"github.com/jonathan/resume-pipeline/internal/types"
	"github.com/jonathan/resume-pipeline/internal/validation"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintParseTrace outputs which repair strategies were attempted and which
// one, if any, produced the structured value.
func (p *Printer) PrintParseTrace(result *repairjson.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	if result.Fallback {
		sb.WriteString("Outcome: FALLBACK (no strategy succeeded)\n")
	} else {
		sb.WriteString(fmt.Sprintf("Outcome: recovered by strategy %d\n", result.StrategyUsed))
	}

	if len(result.Attempts) > 0 {
		sb.WriteString("\nFailed attempts:\n")
		count := min(len(result.Attempts), maxItemsToShow)
		for i := 0; i < count; i++ {
			attempt := result.Attempts[i]
			sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", attempt.Strategy, attempt.Name, attempt.Reason))
		}
		if len(result.Attempts) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Attempts)-maxItemsToShow))
		}
	}

	p.printBox("REPAIR PARSE TRACE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintValidationReport outputs what the validator removed.
func (p *Printer) PrintValidationReport(report *validation.Report) {
	if report == nil || (report.Dropped() == 0 && len(report.ClearedFields) == 0) {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Entities dropped: %d\n", report.Dropped()))

	dropped := make([]string, 0, report.Dropped())
	dropped = append(dropped, report.DroppedExperience...)
	dropped = append(dropped, report.DroppedProjects...)
	dropped = append(dropped, report.DroppedEducation...)
	dropped = append(dropped, report.DroppedLoose...)

	count := min(len(dropped), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", dropped[i]))
	}
	if len(dropped) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(dropped)-maxItemsToShow))
	}

	if len(report.ClearedFields) > 0 {
		sb.WriteString(fmt.Sprintf("\nCleared fields: %s\n", strings.Join(report.ClearedFields, ", ")))
	}

	p.printBox("VALIDATION REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResume outputs a human-readable summary of the validated resume.
func (p *Printer) PrintResume(resume *types.StructuredResume) {
	if resume == nil {
		return
	}

	var sb strings.Builder
	if resume.Contact.Name != "" {
		sb.WriteString(fmt.Sprintf("Name:     %s\n", resume.Contact.Name))
	}
	if resume.Contact.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", resume.Contact.Email))
	}
	if resume.Summary != "" {
		summary := resume.Summary
		if len(summary) > 50 {
			summary = summary[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("Summary:  %s\n", summary))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Skills:         %d\n", len(resume.Skills)))
	sb.WriteString(fmt.Sprintf("Experience:     %d\n", len(resume.Experience)))
	sb.WriteString(fmt.Sprintf("Education:      %d\n", len(resume.Education)))
	sb.WriteString(fmt.Sprintf("Projects:       %d\n", len(resume.Projects)))
	sb.WriteString(fmt.Sprintf("Certifications: %d", len(resume.Certifications)))

	p.printBox("STRUCTURED RESUME", sb.String())
}

// PrintBlocks outputs the synthesized block sequence for one format.
func (p *Printer) PrintBlocks(format string, blocks []types.RenderBlock) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Blocks: %d\n\n", len(blocks)))

	count := min(len(blocks), maxItemsToShow)
	for i := 0; i < count; i++ {
		block := blocks[i]
		label := block.Title
		if label == "" {
			label = block.Text
		}
		if len(label) > 35 {
			label = label[:32] + "..."
		}
		sb.WriteString(fmt.Sprintf("  %-18s %s\n", block.Type, label))
	}
	if len(blocks) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(blocks)-maxItemsToShow))
	}

	p.printBox(fmt.Sprintf("RENDER BLOCKS (%s)", strings.ToUpper(format)), strings.TrimSuffix(sb.String(), "\n"))
}
