package repairjson

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-pipeline/internal/types"
)

// fallbackScore is the neutral midpoint used when a response is unrecoverable.
const fallbackScore = 50

// fallbackFeedback are the advisory strings attached to the fallback object.
var fallbackFeedback = []string{
	"The model response could not be parsed as structured data.",
	"Please regenerate the resume to receive scored feedback.",
}

// FallbackResult returns the typed safe-fallback object: a neutral score,
// advisory feedback, and a resume with every section empty but non-nil.
func FallbackResult() *types.GenerationResult {
	result := &types.GenerationResult{
		Score:    fallbackScore,
		Feedback: append([]string(nil), fallbackFeedback...),
	}
	result.Resume.ApplyDefaults()
	return result
}

// fallbackValue is the generic-map form of FallbackResult, used as the Value
// of a fallback Result so callers that inspect the raw map see the same shape.
func fallbackValue() map[string]any {
	value := map[string]any{
		"score":    fallbackScore,
		"feedback": fallbackFeedback,
	}
	data, err := json.Marshal(FallbackResult().Resume)
	if err != nil {
		return value
	}
	var resume map[string]any
	if err := json.Unmarshal(data, &resume); err != nil {
		return value
	}
	value["resume"] = resume
	return value
}

// Decode converts a parsed value into a GenerationResult. Responses carrying
// an envelope key (resume or score) decode directly; responses that are the
// bare resume object are wrapped in an envelope with a zero score.
func Decode(value map[string]any) (*types.GenerationResult, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode parsed value: %w", err)
	}

	_, hasResume := value["resume"]
	_, hasScore := value["score"]
	if hasResume || hasScore {
		var result types.GenerationResult
		if err := json.Unmarshal(data, &result); err != nil {
			return nil, fmt.Errorf("failed to decode generation result: %w", err)
		}
		result.Resume.ApplyDefaults()
		return &result, nil
	}

	var resume types.StructuredResume
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("failed to decode resume object: %w", err)
	}
	resume.ApplyDefaults()
	return &types.GenerationResult{Resume: resume, Feedback: []string{}}, nil
}
