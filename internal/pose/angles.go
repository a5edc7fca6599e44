package pose

// JointAngles computes the standard per-joint angle report for a frame:
// shoulder, elbow, hip and knee angles for both sides, keyed the way session
// exports name them. Incomplete frames yield an empty map.
func JointAngles(f Frame) map[string]float64 {
	angles := make(map[string]float64)
	if !f.Complete() {
		return angles
	}

	angles["shoulder_left"] = AngleAt(f[LeftShoulder], f[LeftElbow], f[LeftWrist])
	angles["shoulder_right"] = AngleAt(f[RightShoulder], f[RightElbow], f[RightWrist])
	angles["elbow_left"] = AngleAt(f[LeftElbow], f[LeftShoulder], f[LeftWrist])
	angles["elbow_right"] = AngleAt(f[RightElbow], f[RightShoulder], f[RightWrist])
	angles["hip_left"] = AngleAt(f[LeftHip], f[LeftKnee], f[LeftAnkle])
	angles["hip_right"] = AngleAt(f[RightHip], f[RightKnee], f[RightAnkle])
	angles["knee_left"] = AngleAt(f[LeftKnee], f[LeftHip], f[LeftAnkle])
	angles["knee_right"] = AngleAt(f[RightKnee], f[RightHip], f[RightAnkle])

	return angles
}
