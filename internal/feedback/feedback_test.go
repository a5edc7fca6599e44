package feedback

import (
	"strings"
	"testing"

	"ptpal/internal/exercise"
)

func testResult() *exercise.Result {
	return &exercise.Result{
		Exercise: exercise.HeelRaises,
		Score:    3,
		Pass:     false,
		Reasons:  []string{"Raise higher: heel height 0.2 cm < 2.0 cm."},
		Metrics: map[string]float64{
			"heel_height_cm":         0.2,
			"symmetry_diff_pct":      9,
			"ankle_roll_deg":         4,
			"trunk_forward_lean_deg": 8,
		},
		Thresholds: exercise.DefaultThresholds().Map(),
	}
}

func TestOptions_Defaults(t *testing.T) {
	opts := Options{}.withDefaults()
	if opts.Tone != "coach" {
		t.Errorf("Tone = %q, want %q", opts.Tone, "coach")
	}
	if opts.ReadingLevel != "elementary" {
		t.Errorf("ReadingLevel = %q, want %q", opts.ReadingLevel, "elementary")
	}
	if opts.Language != "en" {
		t.Errorf("Language = %q, want %q", opts.Language, "en")
	}

	opts = Options{Tone: "clinical", Language: "es"}.withDefaults()
	if opts.Tone != "clinical" || opts.Language != "es" {
		t.Errorf("set fields were overwritten: %+v", opts)
	}
	if opts.ReadingLevel != "elementary" {
		t.Errorf("ReadingLevel = %q, want the default", opts.ReadingLevel)
	}
}

func TestUserPrompt(t *testing.T) {
	prompt := userPrompt(testResult(), Options{}.withDefaults())

	for _, want := range []string{
		"Pose: Heel Raises",
		"Score: 3 (pass: false)",
		"Raise higher",
		"heel_height_cm",
		"heel_min_raise_cm",
		"tone=coach, reading_level=elementary, language=en",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}

	// Only the exercise's own thresholds are offered to the model.
	if strings.Contains(prompt, "squat_min_depth_deg") {
		t.Error("prompt leaked thresholds from another exercise")
	}
}

func TestParseCoaching(t *testing.T) {
	raw := `{
		"pose": "Heel Raises",
		"severity": "minor",
		"cues": [
			{"issue": "Heels barely leave the floor", "metric": "heel_height_cm", "value": 0.2, "threshold": 2, "action": "Push up onto the balls of your feet", "why_it_matters": "Builds calf strength"}
		],
		"encouragement": "You are close!",
		"confidence": 0.9
	}`

	c, err := parseCoaching(raw)
	if err != nil {
		t.Fatalf("parseCoaching returned error: %v", err)
	}
	if c.Pose != "Heel Raises" {
		t.Errorf("Pose = %q, want %q", c.Pose, "Heel Raises")
	}
	if c.Severity != "minor" {
		t.Errorf("Severity = %q, want %q", c.Severity, "minor")
	}
	if len(c.Cues) != 1 {
		t.Fatalf("Cues = %v, want one cue", c.Cues)
	}
	if c.Cues[0].Action != "Push up onto the balls of your feet" {
		t.Errorf("Action = %q", c.Cues[0].Action)
	}
	if c.Confidence != 0.9 {
		t.Errorf("Confidence = %v, want 0.9", c.Confidence)
	}
}

func TestParseCoaching_Fenced(t *testing.T) {
	raw := "```json\n{\"pose\": \"Tree Pose\", \"severity\": \"ok\", \"cues\": [{\"issue\": \"none\", \"action\": \"keep it up\"}]}\n```"

	c, err := parseCoaching(raw)
	if err != nil {
		t.Fatalf("parseCoaching returned error: %v", err)
	}
	if c.Pose != "Tree Pose" || c.Severity != "ok" {
		t.Errorf("parsed %+v", c)
	}
}

func TestParseCoaching_StringValues(t *testing.T) {
	// The schema allows numbers or formatted strings for cue values.
	raw := `{"pose": "Partial Squat", "severity": "major", "cues": [{"issue": "shallow", "value": "152°", "threshold": "140°", "action": "sit back further"}]}`

	c, err := parseCoaching(raw)
	if err != nil {
		t.Fatalf("parseCoaching returned error: %v", err)
	}
	if got, ok := c.Cues[0].Value.(string); !ok || got != "152°" {
		t.Errorf("Value = %v, want the string form", c.Cues[0].Value)
	}
}

func TestParseCoaching_Rejections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "sorry, I cannot help with that"},
		{"missing severity", `{"pose": "Tree Pose", "cues": [{"issue": "x", "action": "y"}]}`},
		{"bad severity", `{"pose": "Tree Pose", "severity": "terrible", "cues": [{"issue": "x", "action": "y"}]}`},
		{"empty cues", `{"pose": "Tree Pose", "severity": "ok", "cues": []}`},
		{"too many cues", `{"pose": "Tree Pose", "severity": "ok", "cues": [
			{"issue": "a", "action": "a"}, {"issue": "b", "action": "b"},
			{"issue": "c", "action": "c"}, {"issue": "d", "action": "d"}]}`},
		{"cue missing action", `{"pose": "Tree Pose", "severity": "ok", "cues": [{"issue": "x"}]}`},
		{"confidence out of range", `{"pose": "Tree Pose", "severity": "ok", "cues": [{"issue": "x", "action": "y"}], "confidence": 1.5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseCoaching(tt.raw); err == nil {
				t.Error("parseCoaching accepted an invalid reply")
			}
		})
	}
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `{"a": 1}`, `{"a": 1}`},
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"upper fence", "```JSON\n{\"a\": 1}\n```", `{"a": 1}`},
		{"plain fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"surrounding space", "  {\"a\": 1}\n", `{"a": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripCodeFences(tt.in); got != tt.want {
				t.Errorf("stripCodeFences() = %q, want %q", got, tt.want)
			}
		})
	}
}
