package feedback

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// coachingSchemaJSON is the contract for model replies. Replies that do not
// validate are rejected rather than repaired.
const coachingSchemaJSON = `{
  "type": "object",
  "required": ["pose", "severity", "cues"],
  "properties": {
    "pose": {"type": "string"},
    "severity": {"type": "string", "enum": ["ok", "minor", "major"]},
    "summary": {"type": "string"},
    "cues": {
      "type": "array",
      "minItems": 1,
      "maxItems": 3,
      "items": {
        "type": "object",
        "required": ["issue", "action"],
        "properties": {
          "issue": {"type": "string"},
          "metric": {"type": "string"},
          "value": {"type": ["number", "string"]},
          "threshold": {"type": ["number", "string"]},
          "action": {"type": "string"},
          "why_it_matters": {"type": "string"}
        }
      }
    },
    "next_rep_focus": {"type": "string"},
    "encouragement": {"type": "string"},
    "safety_flags": {"type": "array", "items": {"type": "string"}},
    "confidence": {"type": "number", "minimum": 0, "maximum": 1}
  }
}`

var coachingSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("coaching.json", strings.NewReader(coachingSchemaJSON)); err != nil {
		panic(err)
	}
	schema, err := compiler.Compile("coaching.json")
	if err != nil {
		panic(err)
	}
	return schema
}

// parseCoaching validates a raw model reply against the coaching schema and
// decodes it. Markdown code fences around the JSON are tolerated.
func parseCoaching(raw string) (*Coaching, error) {
	cleaned := stripCodeFences(raw)

	var decoded interface{}
	if err := json.Unmarshal([]byte(cleaned), &decoded); err != nil {
		return nil, fmt.Errorf("coaching reply is not valid JSON: %w", err)
	}
	if err := coachingSchema.Validate(decoded); err != nil {
		return nil, fmt.Errorf("coaching reply failed schema validation: %w", err)
	}

	var c Coaching
	if err := json.Unmarshal([]byte(cleaned), &c); err != nil {
		return nil, fmt.Errorf("failed to decode coaching reply: %w", err)
	}
	return &c, nil
}

// stripCodeFences removes markdown fence markers some models wrap around
// their JSON output.
func stripCodeFences(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```JSON")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
