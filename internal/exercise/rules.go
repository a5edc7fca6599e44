package exercise

import (
	"fmt"
	"math"
)

// check is one rule in an exercise's ordered rule list: a failure predicate
// over metrics and thresholds, the corrective cue produced when it fails, and
// an optional skip predicate that removes the check from the evaluation
// entirely so it counts toward neither checks nor fails.
type check struct {
	fail func(m MetricSet, th Thresholds) bool
	cue  func(m MetricSet, th Thresholds) string
	skip func(m MetricSet) bool
}

// ruleSet is the full evaluation contract for one exercise: the metrics it
// requires, the message reported when every check passes, and the ordered
// checks themselves.
type ruleSet struct {
	required []string
	okay     string
	checks   []check
}

var ruleSets = map[Exercise]ruleSet{
	PartialSquat: {
		required: []string{MetricKneeFlexion, MetricKneeAlignment, MetricHeelHeight, MetricTrunkLean},
		okay:     "Nice control and alignment.",
		checks: []check{
			{
				fail: func(m MetricSet, th Thresholds) bool {
					return m.Values[MetricKneeFlexion] > th.SquatMinDepthDeg
				},
				cue: func(m MetricSet, th Thresholds) string {
					return fmt.Sprintf("Go deeper: knee flexion %.0f° > %.0f°.", m.Values[MetricKneeFlexion], th.SquatMinDepthDeg)
				},
			},
			{
				fail: func(m MetricSet, th Thresholds) bool {
					return m.Values[MetricKneeFlexion] < th.SquatMaxDepthDeg
				},
				cue: func(m MetricSet, th Thresholds) string {
					return fmt.Sprintf("Not so deep: knee flexion %.0f° < %.0f°.", m.Values[MetricKneeFlexion], th.SquatMaxDepthDeg)
				},
			},
			{
				fail: func(m MetricSet, th Thresholds) bool {
					return math.Abs(m.Values[MetricKneeAlignment]) > th.SquatMaxKneeValgusDeg
				},
				cue: func(m MetricSet, th Thresholds) string {
					return fmt.Sprintf("Knees in line: valgus/varus %.0f° > %.0f°.", m.Values[MetricKneeAlignment], th.SquatMaxKneeValgusDeg)
				},
				skip: func(m MetricSet) bool {
					return m.Tags[TagFacingSideways] == "true"
				},
			},
			{
				fail: func(m MetricSet, th Thresholds) bool {
					return m.Values[MetricHeelHeight] > th.SquatMaxHeelLiftCm
				},
				cue: func(m MetricSet, th Thresholds) string {
					return fmt.Sprintf("Keep heels down: heel lift %.1f cm > %.1f cm.", m.Values[MetricHeelHeight], th.SquatMaxHeelLiftCm)
				},
			},
			{
				fail: func(m MetricSet, th Thresholds) bool {
					return m.Values[MetricTrunkLean] > th.SquatMaxForwardLeanDeg
				},
				cue: func(m MetricSet, th Thresholds) string {
					return fmt.Sprintf("Upright chest: trunk lean %.0f° > %.0f°.", m.Values[MetricTrunkLean], th.SquatMaxForwardLeanDeg)
				},
			},
		},
	},

	HeelRaises: {
		required: []string{MetricHeelHeight, MetricSymmetryDiff, MetricAnkleRoll, MetricTrunkLean},
		okay:     "Good height and symmetry.",
		checks: []check{
			{
				fail: func(m MetricSet, th Thresholds) bool {
					return m.Values[MetricHeelHeight] < th.HeelMinRaiseCm
				},
				cue: func(m MetricSet, th Thresholds) string {
					return fmt.Sprintf("Raise higher: heel height %.1f cm < %.1f cm.", m.Values[MetricHeelHeight], th.HeelMinRaiseCm)
				},
			},
			{
				fail: func(m MetricSet, th Thresholds) bool {
					return m.Values[MetricSymmetryDiff] > th.HeelSymmetryMaxDiffPct
				},
				cue: func(m MetricSet, th Thresholds) string {
					return fmt.Sprintf("Match sides: asymmetry %.0f%% > %.0f%%.", m.Values[MetricSymmetryDiff], th.HeelSymmetryMaxDiffPct)
				},
			},
			{
				fail: func(m MetricSet, th Thresholds) bool {
					return math.Abs(m.Values[MetricAnkleRoll]) > th.HeelMaxAnkleRollDeg
				},
				cue: func(m MetricSet, th Thresholds) string {
					return fmt.Sprintf("Neutral ankles: roll %.0f° > %.0f°.", m.Values[MetricAnkleRoll], th.HeelMaxAnkleRollDeg)
				},
			},
			{
				fail: func(m MetricSet, th Thresholds) bool {
					return m.Values[MetricTrunkLean] > th.HeelMaxTrunkLeanDeg
				},
				cue: func(m MetricSet, th Thresholds) string {
					return fmt.Sprintf("Stand tall: trunk lean %.0f° > %.0f°.", m.Values[MetricTrunkLean], th.HeelMaxTrunkLeanDeg)
				},
			},
		},
	},

	SingleLegStance: {
		required: []string{MetricSway, MetricPelvicDrop, MetricLegLiftHeight},
		okay:     "Stable and level.",
		checks: []check{
			{
				fail: func(m MetricSet, th Thresholds) bool {
					return m.Values[MetricSway] > th.SLSMaxSwayDeg
				},
				cue: func(m MetricSet, th Thresholds) string {
					return fmt.Sprintf("Reduce sway: %.0f° > %.0f°.", m.Values[MetricSway], th.SLSMaxSwayDeg)
				},
			},
			{
				fail: func(m MetricSet, th Thresholds) bool {
					return m.Values[MetricPelvicDrop] > th.SLSMaxPelvicDropDeg
				},
				cue: func(m MetricSet, th Thresholds) string {
					return fmt.Sprintf("Level pelvis: drop %.0f° > %.0f°.", m.Values[MetricPelvicDrop], th.SLSMaxPelvicDropDeg)
				},
			},
			{
				fail: func(m MetricSet, th Thresholds) bool {
					return m.Values[MetricLegLiftHeight] < th.SLSMinLegLiftCm
				},
				cue: func(m MetricSet, th Thresholds) string {
					return fmt.Sprintf("Lift your foot clear: %.1f cm < %.1f cm.", m.Values[MetricLegLiftHeight], th.SLSMinLegLiftCm)
				},
			},
		},
	},

	TandemStance: {
		required: []string{MetricFootLineDev, MetricHeadDeviation, MetricTrunkLean},
		okay:     "Aligned and steady.",
		checks: []check{
			{
				fail: func(m MetricSet, th Thresholds) bool {
					return math.Abs(m.Values[MetricFootLineDev]) > th.TandemMaxFootGapCm
				},
				cue: func(m MetricSet, th Thresholds) string {
					return fmt.Sprintf("Line up feet: gap %.1f cm > %.1f cm.", m.Values[MetricFootLineDev], th.TandemMaxFootGapCm)
				},
			},
			{
				fail: func(m MetricSet, th Thresholds) bool {
					return math.Abs(m.Values[MetricHeadDeviation]) > th.TandemMaxHeadDevDeg
				},
				cue: func(m MetricSet, th Thresholds) string {
					return fmt.Sprintf("Head over feet: deviation %.0f° > %.0f°.", m.Values[MetricHeadDeviation], th.TandemMaxHeadDevDeg)
				},
			},
			{
				fail: func(m MetricSet, th Thresholds) bool {
					return math.Abs(m.Values[MetricTrunkLean]) > th.TandemMaxTrunkLeanDeg
				},
				cue: func(m MetricSet, th Thresholds) string {
					return fmt.Sprintf("Stand tall: trunk lean %.0f° > %.0f°.", m.Values[MetricTrunkLean], th.TandemMaxTrunkLeanDeg)
				},
			},
		},
	},

	FunctionalReach: {
		required: []string{MetricReachRatio, MetricTrunkLean, MetricStepped},
		okay:     "Strong, controlled reach.",
		checks: []check{
			{
				fail: func(m MetricSet, th Thresholds) bool {
					return m.Values[MetricReachRatio] < th.FRMinReachRatio
				},
				cue: func(m MetricSet, th Thresholds) string {
					return fmt.Sprintf("Reach further: ratio %.2f < %.2f.", m.Values[MetricReachRatio], th.FRMinReachRatio)
				},
			},
			{
				fail: func(m MetricSet, th Thresholds) bool {
					return m.Values[MetricStepped] >= 0.5
				},
				cue: func(m MetricSet, th Thresholds) string {
					return "Keep feet planted: stepping detected."
				},
			},
			{
				fail: func(m MetricSet, th Thresholds) bool {
					return m.Values[MetricTrunkLean] < th.FRMinTrunkFlexionDeg
				},
				cue: func(m MetricSet, th Thresholds) string {
					return fmt.Sprintf("Lean forward slightly: trunk flexion %.0f° < %.0f°.", m.Values[MetricTrunkLean], th.FRMinTrunkFlexionDeg)
				},
			},
			{
				fail: func(m MetricSet, th Thresholds) bool {
					return m.Values[MetricTrunkLean] > th.FRMaxTrunkFlexionDeg
				},
				cue: func(m MetricSet, th Thresholds) string {
					return fmt.Sprintf("Reach with arms, not trunk: flexion %.0f° > %.0f°.", m.Values[MetricTrunkLean], th.FRMaxTrunkFlexionDeg)
				},
			},
		},
	},

	TreePose: {
		required: []string{MetricPelvicDrop, MetricSway, MetricArmOverhead, MetricLegLiftHeight},
		okay:     "Centered and aligned.",
		checks: []check{
			{
				fail: func(m MetricSet, th Thresholds) bool {
					return math.Abs(m.Values[MetricPelvicDrop]) > th.TreeMaxPelvicShiftDeg
				},
				cue: func(m MetricSet, th Thresholds) string {
					return fmt.Sprintf("Level hips: shift %.0f° > %.0f°.", m.Values[MetricPelvicDrop], th.TreeMaxPelvicShiftDeg)
				},
			},
			{
				fail: func(m MetricSet, th Thresholds) bool {
					return m.Values[MetricSway] > th.TreeMaxTrunkSwayDeg
				},
				cue: func(m MetricSet, th Thresholds) string {
					return fmt.Sprintf("Steady trunk: sway %.0f° > %.0f°.", m.Values[MetricSway], th.TreeMaxTrunkSwayDeg)
				},
			},
			{
				fail: func(m MetricSet, th Thresholds) bool {
					return math.Abs(m.Values[MetricArmOverhead]) > th.TreeMaxArmMisalignmentDeg
				},
				cue: func(m MetricSet, th Thresholds) string {
					return fmt.Sprintf("Align arms overhead: error %.0f° > %.0f°.", m.Values[MetricArmOverhead], th.TreeMaxArmMisalignmentDeg)
				},
			},
			{
				fail: func(m MetricSet, th Thresholds) bool {
					return m.Values[MetricLegLiftHeight] < th.TreeMinLegLiftCm
				},
				cue: func(m MetricSet, th Thresholds) string {
					return fmt.Sprintf("Lift your foot higher: %.1f cm < %.1f cm.", m.Values[MetricLegLiftHeight], th.TreeMinLegLiftCm)
				},
			},
		},
	},
}
