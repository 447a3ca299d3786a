package models

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// resumeJSONSchema declares the types the upstream model must respect. Keys are
// deliberately not required — a missing key is recoverable (Normalize fills it
// in) — but a present key with the wrong type is not.
const resumeJSONSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "personalInfo": {
      "type": "object",
      "properties": {
        "name": {"type": "string"},
        "title": {"type": "string"},
        "location": {"type": "string"}
      }
    },
    "landing": {
      "type": "object",
      "properties": {
        "headline": {"type": "string"},
        "subheadline": {"type": "string"}
      }
    },
    "summary": {
      "type": "object",
      "properties": {
        "content": {"type": "string"},
        "highlights": {"type": "array", "items": {"type": "string"}},
        "yearsExperience": {"type": "integer"},
        "specialization": {"type": "string"}
      }
    },
    "skills": {
      "type": "object",
      "properties": {
        "technical": {"type": "array", "items": {"type": "string"}},
        "tools": {"type": "array", "items": {"type": "string"}},
        "soft": {"type": "array", "items": {"type": "string"}}
      }
    },
    "projects": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "description": {"type": "string"},
          "tech": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "experience": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "title": {"type": "string"},
          "company": {"type": "string"},
          "period": {"type": "string"},
          "description": {"type": "string"}
        }
      }
    },
    "achievements": {"type": "array", "items": {"type": "string"}},
    "contact": {
      "type": "object",
      "properties": {
        "email": {"type": "string"},
        "phone": {"type": "string"}
      }
    },
    "footer": {
      "type": "object",
      "properties": {
        "socials": {
          "type": "object",
          "properties": {
            "linkedin": {"type": "string"},
            "github": {"type": "string"}
          }
        }
      }
    }
  }
}`

var resumeSchemaLoader = gojsonschema.NewStringLoader(resumeJSONSchema)

// ValidateResumeJSON checks a raw model response against the resume schema.
// The returned error names every offending path so a failed extraction can be
// diagnosed from logs alone.
func ValidateResumeJSON(data []byte) error {
	result, err := gojsonschema.Validate(resumeSchemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("failed to run schema validation: %w", err)
	}

	if result.Valid() {
		return nil
	}

	var problems []string
	for _, desc := range result.Errors() {
		problems = append(problems, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return fmt.Errorf("resume schema violations: %s", strings.Join(problems, "; "))
}
