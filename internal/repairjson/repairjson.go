// Package repairjson recovers structured objects from malformed generative
// model responses. It applies an ordered cascade of parse strategies, from a
// plain parse to increasingly aggressive syntactic repair, and returns the
// first result that parses. The cascade is total: when every strategy fails it
// returns a safe fallback object instead of an error.
package repairjson

import (
	"encoding/json"
	"strings"
)

// Attempt records one failed parse strategy for observability.
type Attempt struct {
	Strategy int    `json:"strategy"`
	Name     string `json:"name"`
	Reason   string `json:"reason"`
}

// Result is the outcome of ParseStructured. StrategyUsed is the 1-based index
// of the strategy that produced Value, or 0 when the fallback object was used.
type Result struct {
	Value        map[string]any `json:"value"`
	StrategyUsed int            `json:"strategy_used"`
	Fallback     bool           `json:"fallback"`
	Attempts     []Attempt      `json:"attempts,omitempty"`
}

/// strategy is one independent parse attempt: a named transform applied to the
// raw text before the standard JSON parse.
type strategy struct {
	name      string
	transform func(string) string
}

// strategies is the repair cascade, ordered least to most aggressive.
var strategies = []strategy{
	{"direct", func(s string) string { return strings.TrimSpace(s) }},
	{"fenced-block", extractFencedBlock},
	{"brace-span", braceSpan},
	{"syntactic-repair", repairSyntax},
	{"fenced-repair", func(s string) string { return repairSyntax(extractFencedBlock(s)) }},
	{"aggressive-cleanup", aggressiveCleanup},
	{"line-comma-scan", func(s string) string { return repairSyntax(insertLineCommas(s)) }},
	{"newline-flatten", flattenNewlines},
}

// ParseStructured parses raw text expected to contain a JSON object, trying
// each strategy in order and returning on the first success. It never panics
// and never returns nil: total parse failure yields the fallback object with
// Fallback set. Each failed attempt is recorded on the Result.
func ParseStructured(raw string) *Result {
	result := &Result{}

	for i, strat := range strategies {
		candidate := strat.transform(raw)
		if strings.TrimSpace(candidate) == "" {
			result.Attempts = append(result.Attempts, Attempt{
				Strategy: i + 1,
				Name:     strat.name,
				Reason:   "no candidate produced",
			})
			continue
		}

		var value map[string]any
		if err := json.Unmarshal([]byte(candidate), &value); err != nil {
			result.Attempts = append(result.Attempts, Attempt{
				Strategy: i + 1,
				Name:     strat.name,
				Reason:   err.Error(),
			})
			continue
		}
		if value == nil {
			// A literal "null" parses but carries nothing usable.
			result.Attempts = append(result.Attempts, Attempt{
				Strategy: i + 1,
				Name:     strat.name,
				Reason:   "parsed to null",
			})
			continue
		}

		result.Value = value
		result.StrategyUsed = i + 1
		return result
	}

	result.Value = fallbackValue()
	result.Fallback = true
	return result
}
