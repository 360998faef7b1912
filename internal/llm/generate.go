package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/resume-pipeline/internal/types"
)

// resumePromptPreamble instructs the model to emit the score/feedback/resume
// envelope the pipeline decodes. The downstream repair cascade tolerates a
// sloppy response, but a precise prompt keeps most runs on the direct-parse
// path.
const resumePromptPreamble = `You are an expert resume writer. Produce a tailored resume for the candidate below, targeting the given role.

Return ONLY valid JSON matching this exact structure:
{
  "score": 0-100,            // your own assessment of the fit
  "feedback": ["string"],    // short reviewer notes
  "resume": {
    "contact": {"name": "", "email": "", "phone": "", "location": "", "links": []},
    "summary": "",
    "skills": [],
    "experience": [{"title": "", "company": "", "location": "", "dates": "", "responsibilities": [], "achievements": [], "technologies": []}],
    "education": [{"degree": "", "institution": "", "dates": "", "gpa": "", "honors": "", "coursework": ""}],
    "projects": [{"name": "", "description": "", "technologies": [], "achievements": []}],
    "certifications": [{"name": "", "details": "", "date": ""}],
    "awards": [], "volunteer": [], "publications": [], "languages": []
  }
}

IMPORTANT:
- Use only facts present in the candidate background. Never invent employers, dates, or numbers.
- Omit a field rather than filling it with placeholder text.
- Return ONLY the JSON object, no markdown, no explanation, no code blocks.`

// BuildResumePrompt constructs the generation prompt from the candidate
// background and the target role description.
func BuildResumePrompt(background, job string) string {
	var sb strings.Builder
	sb.WriteString(resumePromptPreamble)
	sb.WriteString("\n\nCandidate background:\n\"\"\"\n")
	sb.WriteString(strings.TrimSpace(background))
	sb.WriteString("\n\"\"\"\n")
	if strings.TrimSpace(job) != "" {
		sb.WriteString("\nTarget role:\n\"\"\"\n")
		sb.WriteString(strings.TrimSpace(job))
		sb.WriteString("\n\"\"\"\n")
	}
	return sb.String()
}

// GenerateResume asks the model for a structured resume envelope and returns
// it as a structured-candidate raw response ready for the pipeline.
func GenerateResume(ctx context.Context, client Client, background, job string) (types.RawResponse, error) {
	text, err := client.GenerateJSON(ctx, BuildResumePrompt(background, job), TierStandard)
	if err != nil {
		return types.RawResponse{}, fmt.Errorf("resume generation failed: %w", err)
	}
	return types.RawResponse{Text: text, Origin: types.OriginStructured}, nil
}
