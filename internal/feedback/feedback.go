// Package feedback turns engine results into coach style guidance through an
// optional language model backend. The assessment never depends on this
// package succeeding; callers treat a nil Enhancer or a failed call as
// "no coaching" and serve the deterministic result on its own.
package feedback

import (
	"context"

	"ptpal/internal/exercise"
)

// Options tune the voice of the generated coaching.
type Options struct {
	Tone         string `json:"tone"`
	ReadingLevel string `json:"reading_level"`
	Language     string `json:"language"`
}

// withDefaults fills unset fields with the standard coaching voice.
func (o Options) withDefaults() Options {
	if o.Tone == "" {
		o.Tone = "coach"
	}
	if o.ReadingLevel == "" {
		o.ReadingLevel = "elementary"
	}
	if o.Language == "" {
		o.Language = "en"
	}
	return o
}

// Cue is one concrete correction inside a Coaching reply. Value and Threshold
// may arrive from the model as either numbers or formatted strings.
type Cue struct {
	Issue        string      `json:"issue"`
	Metric       string      `json:"metric,omitempty"`
	Value        interface{} `json:"value,omitempty"`
	Threshold    interface{} `json:"threshold,omitempty"`
	Action       string      `json:"action"`
	WhyItMatters string      `json:"why_it_matters,omitempty"`
}

// Coaching is the structured reply produced by an enhancer. Shape and limits
// are enforced against a JSON schema before a reply is accepted.
type Coaching struct {
	Pose          string   `json:"pose"`
	Severity      string   `json:"severity"`
	Summary       string   `json:"summary,omitempty"`
	Cues          []Cue    `json:"cues"`
	NextRepFocus  string   `json:"next_rep_focus,omitempty"`
	Encouragement string   `json:"encouragement,omitempty"`
	SafetyFlags   []string `json:"safety_flags,omitempty"`
	Confidence    float64  `json:"confidence,omitempty"`
}

// Enhancer produces coaching for an evaluated result.
type Enhancer interface {
	Enhance(ctx context.Context, result *exercise.Result, opts Options) (*Coaching, error)
}
