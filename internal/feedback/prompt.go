package feedback

import (
	"encoding/json"
	"fmt"
	"strings"

	"ptpal/internal/exercise"
)

// systemPrompt pins the coaching persona and the strict JSON output contract.
const systemPrompt = "You are PT Pal, a physical-therapy coaching assistant. " +
	"Speak in short, encouraging sentences. Use only the metrics and reasons provided. " +
	"Do not make diagnoses or medical claims. Do not invent new measurements. " +
	"Return a STRICT JSON object that matches the provided JSON Schema exactly. " +
	"Limit to at most 3 concrete cues. Each cue must include a plain-language ACTION."

// thresholdPrefix selects the slice of the threshold map belonging to each
// exercise, keeping prompts down to the limits the model may cite.
var thresholdPrefix = map[exercise.Exercise]string{
	exercise.PartialSquat:    "squat_",
	exercise.HeelRaises:      "heel_",
	exercise.SingleLegStance: "sls_",
	exercise.TandemStance:    "tandem_",
	exercise.FunctionalReach: "fr_",
	exercise.TreePose:        "tree_",
}

// userPrompt renders the evaluation facts and voice options into the user
// message sent to the model.
func userPrompt(result *exercise.Result, opts Options) string {
	metrics, _ := json.Marshal(result.Metrics)

	prefix := thresholdPrefix[result.Exercise]
	relevant := make(map[string]float64)
	for name, value := range result.Thresholds {
		if strings.HasPrefix(name, prefix) {
			relevant[name] = value
		}
	}
	thresholds, _ := json.Marshal(relevant)

	var b strings.Builder
	fmt.Fprintf(&b, "Pose: %s\n", result.Exercise.Name())
	fmt.Fprintf(&b, "Score: %d (pass: %t)\n", result.Score, result.Pass)
	fmt.Fprintf(&b, "Reasons: %s\n", strings.Join(result.Reasons, ", "))
	fmt.Fprintf(&b, "Metrics: %s\n", metrics)
	fmt.Fprintf(&b, "Thresholds: %s\n", thresholds)
	fmt.Fprintf(&b, "User profile: tone=%s, reading_level=%s, language=%s.\n", opts.Tone, opts.ReadingLevel, opts.Language)
	fmt.Fprintf(&b, "Output JSON only matching this schema: %s", coachingSchemaJSON)
	return b.String()
}
