package exercise

import (
	"sort"

	"ptpal/internal/pose"
)

// Result is the outcome of evaluating one frame for one exercise. Metrics
// holds only the values the rule set consumed, Facets carries the extractor's
// qualitative tags, and Thresholds records the exact limits in effect so a
// result can be audited later.
type Result struct {
	Exercise   Exercise           `json:"pose"`
	Score      int                `json:"score"`
	Pass       bool               `json:"pass"`
	Reasons    []string           `json:"reasons"`
	Metrics    map[string]float64 `json:"metrics"`
	Facets     map[string]string  `json:"facets,omitempty"`
	Thresholds map[string]float64 `json:"thresholds"`
}

// Evaluate runs the exercise's rule list against an extracted MetricSet.
// Required metrics absent from the set fail with *MissingMetricError before
// any check runs. Reasons is never empty: a fully passing evaluation carries
// the exercise's own encouragement message.
func Evaluate(e Exercise, m MetricSet, th Thresholds) (*Result, error) {
	rs, ok := ruleSets[e]
	if !ok {
		return nil, &UnknownExerciseError{Key: e.Key()}
	}

	var missing []string
	for _, key := range rs.required {
		if _, ok := m.Values[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &MissingMetricError{Exercise: e, Keys: missing}
	}

	var reasons []string
	checks := 0
	fails := 0
	for _, c := range rs.checks {
		if c.skip != nil && c.skip(m) {
			continue
		}
		checks++
		if c.fail(m, th) {
			fails++
			reasons = append(reasons, c.cue(m, th))
		}
	}
	if len(reasons) == 0 {
		reasons = []string{rs.okay}
	}

	consumed := make(map[string]float64, len(rs.required))
	for _, key := range rs.required {
		consumed[key] = m.Values[key]
	}

	var facets map[string]string
	if len(m.Tags) > 0 {
		facets = make(map[string]string, len(m.Tags))
		for k, v := range m.Tags {
			facets[k] = v
		}
	}

	return &Result{
		Exercise:   e,
		Score:      scoreFromChecks(checks, fails),
		Pass:       fails == 0,
		Reasons:    reasons,
		Metrics:    consumed,
		Facets:     facets,
		Thresholds: th.Map(),
	}, nil
}

// scoreFromChecks maps the passed check ratio onto the 1 to 5 scale.
func scoreFromChecks(checks, fails int) int {
	passed := checks - fails
	if passed < 0 {
		passed = 0
	}
	total := checks
	if total < 1 {
		total = 1
	}
	ratio := float64(passed) / float64(total)

	switch {
	case ratio >= 1.0:
		return 5
	case ratio >= 0.8:
		return 4
	case ratio >= 0.6:
		return 3
	case ratio >= 0.4:
		return 2
	default:
		return 1
	}
}

// Assess extracts metrics from the frame and evaluates them in one call.
func Assess(e Exercise, f pose.Frame, th Thresholds) (*Result, error) {
	return Evaluate(e, e.Extract(f), th)
}
