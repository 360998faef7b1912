// Package schemas provides JSON Schema validation for structured model
// responses. Schema conformance is advisory: a failing document still flows
// through the pipeline, the mismatches are only surfaced as diagnostics.
package schemas

const (
	// GenerationResultName identifies the embedded schema in diagnostics.
	GenerationResultName = "generation-result"

	// GenerationResultSchema describes the wrapped response envelope a
	// generative model is asked to produce: a quality score, reviewer
	// feedback, and the resume payload. Everything is optional by design;
	// the repair parser and validator tolerate partial responses, the schema
	// only reports how far the response strayed.
	GenerationResultSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "GenerationResult",
  "type": "object",
  "properties": {
    "score": {"type": "integer", "minimum": 0, "maximum": 100},
    "feedback": {"type": "array", "items": {"type": "string"}},
    "resume": {
      "type": "object",
      "properties": {
        "contact": {
          "type": "object",
          "properties": {
            "name": {"type": "string"},
            "email": {"type": "string"},
            "phone": {"type": "string"},
            "location": {"type": "string"},
            "links": {"type": "array", "items": {"type": "string"}}
          }
        },
        "summary": {"type": "string"},
        "skills": {"type": "array", "items": {"type": "string"}},
        "competencies": {"type": "array", "items": {"type": "string"}},
        "experience": {
          "type": "array",
          "items": {
            "type": "object",
            "properties": {
              "title": {"type": "string"},
              "company": {"type": "string"},
              "location": {"type": "string"},
              "dates": {"type": "string"},
              "responsibilities": {"type": "array", "items": {"type": "string"}},
              "achievements": {"type": "array", "items": {"type": "string"}},
              "technologies": {"type": "array", "items": {"type": "string"}}
            }
          }
        },
        "education": {
          "type": "array",
          "items": {
            "type": "object",
            "properties": {
              "degree": {"type": "string"},
              "institution": {"type": "string"},
              "dates": {"type": "string"},
              "gpa": {"type": "string"},
              "honors": {"type": "string"},
              "coursework": {"type": "string"}
            }
          }
        },
        "projects": {
          "type": "array",
          "items": {
            "type": "object",
            "properties": {
              "name": {"type": "string"},
              "description": {"type": "string"},
              "technologies": {"type": "array", "items": {"type": "string"}},
              "achievements": {"type": "array", "items": {"type": "string"}}
            }
          }
        },
        "certifications": {"type": "array"},
        "awards": {"type": "array"},
        "volunteer": {"type": "array"},
        "publications": {"type": "array"},
        "languages": {"type": "array", "items": {"type": "string"}}
      }
    }
  }
}`
)
