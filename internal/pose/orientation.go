package pose

import "math"

// FacingSideways reports whether the subject is turned side-on to the camera,
// detected by the shoulder line reading closer to vertical than to horizontal
// in the image. Incomplete frames are treated as facing the camera.
func FacingSideways(f Frame) bool {
	if !f.Complete() {
		return false
	}
	dx := math.Abs(f[LeftShoulder].X - f[RightShoulder].X)
	dy := math.Abs(f[LeftShoulder].Y - f[RightShoulder].Y)
	return dx < 0.5*dy
}
