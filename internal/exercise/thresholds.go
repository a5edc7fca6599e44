package exercise

import "fmt"

// Thresholds holds every tunable limit the rule sets compare against, grouped
// by exercise. Zero values are meaningful, so construct with
// DefaultThresholds and adjust through WithOverrides rather than filling
// fields by hand.
type Thresholds struct {
	// Partial squat. The depth window reads inverted: knee flexion above
	// SquatMinDepthDeg means the squat is too shallow, flexion below
	// SquatMaxDepthDeg means it is too deep, so good depth lies between.
	SquatMinDepthDeg       float64
	SquatMaxDepthDeg       float64
	SquatMaxKneeValgusDeg  float64
	SquatMaxHeelLiftCm     float64
	SquatMaxForwardLeanDeg float64

	// Heel raises.
	HeelMinRaiseCm         float64
	HeelSymmetryMaxDiffPct float64
	HeelMaxAnkleRollDeg    float64
	HeelMaxTrunkLeanDeg    float64

	// Single-leg stance.
	SLSMaxSwayDeg       float64
	SLSMaxPelvicDropDeg float64
	SLSMinLegLiftCm     float64

	// Tandem stance.
	TandemMaxFootGapCm    float64
	TandemMaxHeadDevDeg   float64
	TandemMaxTrunkLeanDeg float64

	// Functional reach.
	FRMinReachRatio      float64
	FRMinTrunkFlexionDeg float64
	FRMaxTrunkFlexionDeg float64

	// Tree pose.
	TreeMaxPelvicShiftDeg     float64
	TreeMaxTrunkSwayDeg       float64
	TreeMaxArmMisalignmentDeg float64
	TreeMinLegLiftCm          float64
}

// DefaultThresholds returns the standard clinical limits.
func DefaultThresholds() Thresholds {
	return Thresholds{
		SquatMinDepthDeg:       140,
		SquatMaxDepthDeg:       100,
		SquatMaxKneeValgusDeg:  15,
		SquatMaxHeelLiftCm:     5,
		SquatMaxForwardLeanDeg: 35,

		HeelMinRaiseCm:         2,
		HeelSymmetryMaxDiffPct: 15,
		HeelMaxAnkleRollDeg:    8,
		HeelMaxTrunkLeanDeg:    15,

		SLSMaxSwayDeg:       8,
		SLSMaxPelvicDropDeg: 7,
		SLSMinLegLiftCm:     5,

		TandemMaxFootGapCm:    10,
		TandemMaxHeadDevDeg:   10,
		TandemMaxTrunkLeanDeg: 10,

		FRMinReachRatio:      0.70,
		FRMinTrunkFlexionDeg: 10,
		FRMaxTrunkFlexionDeg: 30,

		TreeMaxPelvicShiftDeg:     8,
		TreeMaxTrunkSwayDeg:       8,
		TreeMaxArmMisalignmentDeg: 10,
		TreeMinLegLiftCm:          10,
	}
}

// thresholdFields binds each published threshold name to its struct field.
var thresholdFields = []struct {
	name string
	get  func(*Thresholds) *float64
}{
	{"squat_min_depth_deg", func(t *Thresholds) *float64 { return &t.SquatMinDepthDeg }},
	{"squat_max_depth_deg", func(t *Thresholds) *float64 { return &t.SquatMaxDepthDeg }},
	{"squat_max_knee_valgus_deg", func(t *Thresholds) *float64 { return &t.SquatMaxKneeValgusDeg }},
	{"squat_max_heel_lift_cm", func(t *Thresholds) *float64 { return &t.SquatMaxHeelLiftCm }},
	{"squat_max_forward_lean_deg", func(t *Thresholds) *float64 { return &t.SquatMaxForwardLeanDeg }},
	{"heel_min_raise_cm", func(t *Thresholds) *float64 { return &t.HeelMinRaiseCm }},
	{"heel_symmetry_max_diff_pct", func(t *Thresholds) *float64 { return &t.HeelSymmetryMaxDiffPct }},
	{"heel_max_ankle_roll_deg", func(t *Thresholds) *float64 { return &t.HeelMaxAnkleRollDeg }},
	{"heel_max_trunk_lean_deg", func(t *Thresholds) *float64 { return &t.HeelMaxTrunkLeanDeg }},
	{"sls_max_sway_deg", func(t *Thresholds) *float64 { return &t.SLSMaxSwayDeg }},
	{"sls_max_pelvic_drop_deg", func(t *Thresholds) *float64 { return &t.SLSMaxPelvicDropDeg }},
	{"sls_min_leg_lift_cm", func(t *Thresholds) *float64 { return &t.SLSMinLegLiftCm }},
	{"tandem_max_foot_gap_cm", func(t *Thresholds) *float64 { return &t.TandemMaxFootGapCm }},
	{"tandem_max_head_dev_deg", func(t *Thresholds) *float64 { return &t.TandemMaxHeadDevDeg }},
	{"tandem_max_trunk_lean_deg", func(t *Thresholds) *float64 { return &t.TandemMaxTrunkLeanDeg }},
	{"fr_min_reach_ratio", func(t *Thresholds) *float64 { return &t.FRMinReachRatio }},
	{"fr_min_trunk_flexion_deg", func(t *Thresholds) *float64 { return &t.FRMinTrunkFlexionDeg }},
	{"fr_max_trunk_flexion_deg", func(t *Thresholds) *float64 { return &t.FRMaxTrunkFlexionDeg }},
	{"tree_max_pelvic_shift_deg", func(t *Thresholds) *float64 { return &t.TreeMaxPelvicShiftDeg }},
	{"tree_max_trunk_sway_deg", func(t *Thresholds) *float64 { return &t.TreeMaxTrunkSwayDeg }},
	{"tree_max_arm_misalignment_deg", func(t *Thresholds) *float64 { return &t.TreeMaxArmMisalignmentDeg }},
	{"tree_min_leg_lift_cm", func(t *Thresholds) *float64 { return &t.TreeMinLegLiftCm }},
}

// Map returns the thresholds as a flat name to value map.
func (t Thresholds) Map() map[string]float64 {
	m := make(map[string]float64, len(thresholdFields))
	for _, f := range thresholdFields {
		m[f.name] = *f.get(&t)
	}
	return m
}

// WithOverrides returns a copy of t with the named thresholds replaced.
// An unknown threshold name is an error; t is never modified.
func (t Thresholds) WithOverrides(overrides map[string]float64) (Thresholds, error) {
	merged := t
	for name, value := range overrides {
		found := false
		for _, f := range thresholdFields {
			if f.name == name {
				*f.get(&merged) = value
				found = true
				break
			}
		}
		if !found {
			return Thresholds{}, fmt.Errorf("unknown threshold %q", name)
		}
	}
	return merged, nil
}
