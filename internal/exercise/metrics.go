package exercise

import (
	"math"

	"ptpal/internal/pose"
)

// Metric names emitted by the extractors and consumed by the rule sets.
const (
	MetricKneeFlexion      = "knee_flexion_deg"
	MetricKneeFlexionLeft  = "knee_flexion_left_deg"
	MetricKneeFlexionRight = "knee_flexion_right_deg"
	MetricKneeAlignment    = "hip_knee_ankle_alignment_deg"
	MetricHeelHeight       = "heel_height_cm"
	MetricHeelHeightLeft   = "heel_height_left_cm"
	MetricHeelHeightRight  = "heel_height_right_cm"
	MetricTrunkLean        = "trunk_forward_lean_deg"
	MetricSymmetryDiff     = "symmetry_diff_pct"
	MetricAnkleRoll        = "ankle_roll_deg"
	MetricSway             = "sway_peak_deg"
	MetricPelvicDrop       = "pelvic_drop_deg"
	MetricLegLiftHeight    = "leg_lift_height_cm"
	MetricFootLineDev      = "foot_line_deviation_cm"
	MetricHeadDeviation    = "head_deviation_deg"
	MetricReachRatio       = "reach_distance_ratio"
	MetricStepped          = "stepped_during_task"
	MetricArmOverhead      = "arm_overhead_alignment_deg"
)

// Facet tags carried alongside the numeric metrics.
const (
	TagLiftedLeg      = "lifted_leg"
	TagStandingLeg    = "standing_leg"
	TagFacingSideways = "is_facing_sideways"
)

// Scale factors mapping normalized image offsets to clinical units. cmScale
// assumes a subject of roughly 170 cm filling the frame height; degScale maps
// small lateral offsets onto a degree-like magnitude.
const (
	cmScale  = 170.0
	degScale = 100.0
)

// armsNotRaisedPenalty is the overhead alignment value reported when either
// wrist sits below its shoulder, i.e. the arms are not overhead at all.
const armsNotRaisedPenalty = 20.0

// MetricSet holds the named numeric features extracted from one frame, plus
// qualitative string facets such as which leg is lifted.
type MetricSet struct {
	Values map[string]float64
	Tags   map[string]string
}

func newMetricSet() MetricSet {
	return MetricSet{
		Values: make(map[string]float64),
		Tags:   make(map[string]string),
	}
}

// Extract derives the exercise's metric vocabulary from a landmark frame.
// Extraction is total: degenerate geometry produces zero valued metrics and
// an incomplete frame yields an empty MetricSet, never an error.
func (e Exercise) Extract(f pose.Frame) MetricSet {
	m := newMetricSet()
	if !f.Complete() {
		return m
	}

	switch e {
	case PartialSquat:
		extractPartialSquat(f, &m)
	case HeelRaises:
		extractHeelRaises(f, &m)
	case SingleLegStance:
		extractSingleLegStance(f, &m)
	case TandemStance:
		extractTandemStance(f, &m)
	case FunctionalReach:
		extractFunctionalReach(f, &m)
	case TreePose:
		extractTreePose(f, &m)
	}

	return m
}

func extractPartialSquat(f pose.Frame, m *MetricSet) {
	left := pose.AngleAt(f[pose.LeftKnee], f[pose.LeftHip], f[pose.LeftAnkle])
	right := pose.AngleAt(f[pose.RightKnee], f[pose.RightHip], f[pose.RightAnkle])
	m.Values[MetricKneeFlexionLeft] = left
	m.Values[MetricKneeFlexionRight] = right
	m.Values[MetricKneeFlexion] = (left + right) / 2
	m.Values[MetricSymmetryDiff] = symmetryPct(left, right)

	// Frontal-plane knee tracking is unreadable in profile, so the alignment
	// metric collapses to zero and the facet lets the rules skip its check.
	if pose.FacingSideways(f) {
		m.Values[MetricKneeAlignment] = 0
		m.Tags[TagFacingSideways] = "true"
	} else {
		m.Values[MetricKneeAlignment] = kneeAlignment(f)
	}

	heelLeft, heelRight := heelHeights(f)
	m.Values[MetricHeelHeight] = (heelLeft + heelRight) / 2
	m.Values[MetricTrunkLean] = trunkLean(f)
}

func extractHeelRaises(f pose.Frame, m *MetricSet) {
	left, right := heelHeights(f)
	m.Values[MetricHeelHeightLeft] = left
	m.Values[MetricHeelHeightRight] = right
	m.Values[MetricHeelHeight] = (left + right) / 2
	m.Values[MetricSymmetryDiff] = symmetryPct(left, right)
	m.Values[MetricAnkleRoll] = ankleRoll(f)
	m.Values[MetricTrunkLean] = trunkLean(f)
}

func extractSingleLegStance(f pose.Frame, m *MetricSet) {
	m.Values[MetricSway] = sway(f)
	m.Values[MetricPelvicDrop] = pelvicDrop(f)

	height, lifted, standing := legLift(f)
	m.Values[MetricLegLiftHeight] = height
	m.Tags[TagLiftedLeg] = lifted
	m.Tags[TagStandingLeg] = standing
}

func extractTandemStance(f pose.Frame, m *MetricSet) {
	m.Values[MetricFootLineDev] = footLineDeviation(f)
	m.Values[MetricHeadDeviation] = headDeviation(f)
	m.Values[MetricTrunkLean] = trunkLean(f)
}

func extractFunctionalReach(f pose.Frame, m *MetricSet) {
	left := reachRatio(f[pose.LeftShoulder], f[pose.LeftWrist])
	right := reachRatio(f[pose.RightShoulder], f[pose.RightWrist])
	m.Values[MetricReachRatio] = math.Max(left, right)
	m.Values[MetricTrunkLean] = trunkLean(f)

	// Step detection needs frame history; a single frame always reports none.
	m.Values[MetricStepped] = 0
}

func extractTreePose(f pose.Frame, m *MetricSet) {
	m.Values[MetricPelvicDrop] = pelvicDrop(f)
	m.Values[MetricSway] = sway(f)
	m.Values[MetricArmOverhead] = armOverheadAlignment(f)

	height, lifted, standing := legLift(f)
	m.Values[MetricLegLiftHeight] = height
	m.Tags[TagLiftedLeg] = lifted
	m.Tags[TagStandingLeg] = standing
}

// trunkLean measures the forward or lateral inclination of the shoulder-hip
// axis from the image vertical, in degrees.
func trunkLean(f pose.Frame) float64 {
	midShoulder := pose.Midpoint(f[pose.LeftShoulder], f[pose.RightShoulder])
	midHip := pose.Midpoint(f[pose.LeftHip], f[pose.RightHip])
	return pose.LeanFromVertical(midShoulder, midHip)
}

// sway measures lateral trunk displacement. Within a single frame it
// coincides with the instantaneous trunk lean; tracking a peak across frames
// is the caller's concern.
func sway(f pose.Frame) float64 {
	return trunkLean(f)
}

// pelvicDrop measures the height difference between the hips, scaled to a
// degree-like magnitude.
func pelvicDrop(f pose.Frame) float64 {
	return math.Abs(f[pose.LeftHip].Y-f[pose.RightHip].Y) * degScale
}

// heelHeights measures the vertical heel-to-toe separation of each foot in
// centimeters. A flat foot reads near zero.
func heelHeights(f pose.Frame) (left, right float64) {
	left = math.Abs(f[pose.LeftHeel].Y-f[pose.LeftFootIndex].Y) * cmScale
	right = math.Abs(f[pose.RightHeel].Y-f[pose.RightFootIndex].Y) * cmScale
	return left, right
}

// kneeAlignment measures frontal-plane knee deviation: how far each knee sits
// from the midline of its own hip-ankle segment, averaged across sides.
func kneeAlignment(f pose.Frame) float64 {
	left := math.Abs(f[pose.LeftKnee].X-(f[pose.LeftHip].X+f[pose.LeftAnkle].X)/2) * degScale
	right := math.Abs(f[pose.RightKnee].X-(f[pose.RightHip].X+f[pose.RightAnkle].X)/2) * degScale
	return (left + right) / 2
}

// ankleRoll approximates inversion or eversion from the lateral heel-to-toe
// offset of each foot, averaged across sides.
func ankleRoll(f pose.Frame) float64 {
	left := math.Abs(f[pose.LeftHeel].X-f[pose.LeftFootIndex].X) * degScale
	right := math.Abs(f[pose.RightHeel].X-f[pose.RightFootIndex].X) * degScale
	return (left + right) / 2
}

// legLift measures the vertical separation between the ankles in centimeters
// and names which leg is lifted. The higher ankle, smaller y, is the lifted
// one; with both ankles level the right leg is reported as standing.
func legLift(f pose.Frame) (height float64, lifted, standing string) {
	left := f[pose.LeftAnkle].Y
	right := f[pose.RightAnkle].Y
	height = math.Abs(left-right) * cmScale
	if left < right {
		return height, "left", "right"
	}
	return height, "right", "left"
}

// footLineDeviation measures how far a tandem stance is from a single
// heel-to-toe line. The foot owning the rightmost heel or toe is taken as
// leading, and the distance from the trailing heel to the leading toe is
// reported in centimeters. Feet stacked in line read near zero.
func footLineDeviation(f pose.Frame) float64 {
	leftFront := math.Max(f[pose.LeftHeel].X, f[pose.LeftFootIndex].X)
	rightFront := math.Max(f[pose.RightHeel].X, f[pose.RightFootIndex].X)
	if rightFront > leftFront {
		return pose.Distance(f[pose.LeftHeel], f[pose.RightFootIndex]) * cmScale
	}
	return pose.Distance(f[pose.RightHeel], f[pose.LeftFootIndex]) * cmScale
}

// headDeviation measures how far the head sits off the line rising vertically
// from the midpoint of the ankles, in degrees.
func headDeviation(f pose.Frame) float64 {
	midAnkle := pose.Midpoint(f[pose.LeftAnkle], f[pose.RightAnkle])
	return pose.LeanFromVertical(f[pose.Nose], midAnkle)
}

// reachRatio measures horizontal wrist travel from the shoulder as a fraction
// of arm length. A degenerate zero length arm reads zero.
func reachRatio(shoulder, wrist pose.Point) float64 {
	armLength := pose.Distance(shoulder, wrist)
	if armLength == 0 {
		return 0
	}
	return math.Abs(wrist.X-shoulder.X) / armLength
}

// armOverheadAlignment reports the wrist height mismatch when both arms are
// raised overhead, or a fixed penalty value when they are not.
func armOverheadAlignment(f pose.Frame) float64 {
	leftUp := f[pose.LeftWrist].Y < f[pose.LeftShoulder].Y
	rightUp := f[pose.RightWrist].Y < f[pose.RightShoulder].Y
	if leftUp && rightUp {
		return math.Abs(f[pose.LeftWrist].Y-f[pose.RightWrist].Y) * degScale
	}
	return armsNotRaisedPenalty
}

// symmetryPct expresses the difference between two side measurements as a
// percentage of the larger one. Two zero measurements read as symmetric.
func symmetryPct(left, right float64) float64 {
	larger := math.Max(left, right)
	if larger == 0 {
		return 0
	}
	return math.Abs(left-right) / larger * 100
}
