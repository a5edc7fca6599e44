package pose

// Preset frames with realistic landmark coordinates for testing and demos.
// Coordinates are normalized image positions with the subject centered,
// y increasing downward. Callers may mutate the returned frame freely.

// StandingFrame returns a neutral upright stance facing the camera: arms at
// the sides, feet flat and hip width apart.
func StandingFrame() Frame {
	f := make(Frame, NumLandmarks)

	// Head
	f[Nose] = Point{X: 0.50, Y: 0.10}
	f[LeftEyeInner] = Point{X: 0.48, Y: 0.09}
	f[LeftEye] = Point{X: 0.47, Y: 0.09}
	f[LeftEyeOuter] = Point{X: 0.46, Y: 0.09}
	f[RightEyeInner] = Point{X: 0.52, Y: 0.09}
	f[RightEye] = Point{X: 0.53, Y: 0.09}
	f[RightEyeOuter] = Point{X: 0.54, Y: 0.09}
	f[LeftEar] = Point{X: 0.45, Y: 0.10}
	f[RightEar] = Point{X: 0.55, Y: 0.10}
	f[MouthLeft] = Point{X: 0.48, Y: 0.12}
	f[MouthRight] = Point{X: 0.52, Y: 0.12}

	// Arms hanging at the sides
	f[LeftShoulder] = Point{X: 0.42, Y: 0.22}
	f[RightShoulder] = Point{X: 0.58, Y: 0.22}
	f[LeftElbow] = Point{X: 0.40, Y: 0.34}
	f[RightElbow] = Point{X: 0.60, Y: 0.34}
	f[LeftWrist] = Point{X: 0.39, Y: 0.46}
	f[RightWrist] = Point{X: 0.61, Y: 0.46}
	f[LeftPinky] = Point{X: 0.385, Y: 0.49}
	f[RightPinky] = Point{X: 0.615, Y: 0.49}
	f[LeftIndex] = Point{X: 0.38, Y: 0.49}
	f[RightIndex] = Point{X: 0.62, Y: 0.49}
	f[LeftThumb] = Point{X: 0.39, Y: 0.485}
	f[RightThumb] = Point{X: 0.61, Y: 0.485}

	// Legs straight, knees over ankles
	f[LeftHip] = Point{X: 0.44, Y: 0.50}
	f[RightHip] = Point{X: 0.56, Y: 0.50}
	f[LeftKnee] = Point{X: 0.44, Y: 0.70}
	f[RightKnee] = Point{X: 0.56, Y: 0.70}
	f[LeftAnkle] = Point{X: 0.44, Y: 0.90}
	f[RightAnkle] = Point{X: 0.56, Y: 0.90}

	// Feet flat, toes turned slightly out
	f[LeftHeel] = Point{X: 0.44, Y: 0.96}
	f[RightHeel] = Point{X: 0.56, Y: 0.96}
	f[LeftFootIndex] = Point{X: 0.41, Y: 0.96}
	f[RightFootIndex] = Point{X: 0.59, Y: 0.96}

	return f
}

// PartialSquatFrame returns a well executed partial squat seen from the side,
// the usual camera placement for depth work: knees bent to roughly 120
// degrees, heels down, trunk inclined slightly forward.
func PartialSquatFrame() Frame {
	f := make(Frame, NumLandmarks)

	// Head facing image right
	f[Nose] = Point{X: 0.56, Y: 0.22}
	f[LeftEyeInner] = Point{X: 0.555, Y: 0.21}
	f[LeftEye] = Point{X: 0.55, Y: 0.21}
	f[LeftEyeOuter] = Point{X: 0.545, Y: 0.21}
	f[RightEyeInner] = Point{X: 0.555, Y: 0.215}
	f[RightEye] = Point{X: 0.55, Y: 0.215}
	f[RightEyeOuter] = Point{X: 0.545, Y: 0.215}
	f[LeftEar] = Point{X: 0.535, Y: 0.215}
	f[RightEar] = Point{X: 0.535, Y: 0.22}
	f[MouthLeft] = Point{X: 0.555, Y: 0.24}
	f[MouthRight] = Point{X: 0.555, Y: 0.245}

	// Shoulders overlap in profile; arms reach forward for balance
	f[LeftShoulder] = Point{X: 0.50, Y: 0.30}
	f[RightShoulder] = Point{X: 0.51, Y: 0.33}
	f[LeftElbow] = Point{X: 0.52, Y: 0.42}
	f[RightElbow] = Point{X: 0.53, Y: 0.43}
	f[LeftWrist] = Point{X: 0.56, Y: 0.50}
	f[RightWrist] = Point{X: 0.57, Y: 0.51}
	f[LeftPinky] = Point{X: 0.575, Y: 0.52}
	f[RightPinky] = Point{X: 0.585, Y: 0.53}
	f[LeftIndex] = Point{X: 0.58, Y: 0.52}
	f[RightIndex] = Point{X: 0.59, Y: 0.53}
	f[LeftThumb] = Point{X: 0.57, Y: 0.515}
	f[RightThumb] = Point{X: 0.58, Y: 0.525}

	// Hips sit back, knees forward over the ankles
	f[LeftHip] = Point{X: 0.45, Y: 0.55}
	f[RightHip] = Point{X: 0.455, Y: 0.555}
	f[LeftKnee] = Point{X: 0.55, Y: 0.62}
	f[RightKnee] = Point{X: 0.555, Y: 0.625}
	f[LeftAnkle] = Point{X: 0.53, Y: 0.82}
	f[RightAnkle] = Point{X: 0.535, Y: 0.825}

	// Feet flat along the viewing axis
	f[LeftHeel] = Point{X: 0.50, Y: 0.85}
	f[RightHeel] = Point{X: 0.505, Y: 0.85}
	f[LeftFootIndex] = Point{X: 0.585, Y: 0.85}
	f[RightFootIndex] = Point{X: 0.59, Y: 0.85}

	return f
}

// HeelRaiseFrame returns a symmetric heel raise facing the camera: both heels
// lifted roughly six centimeters, trunk upright.
func HeelRaiseFrame() Frame {
	f := StandingFrame()
	f[LeftAnkle] = Point{X: 0.44, Y: 0.87}
	f[RightAnkle] = Point{X: 0.56, Y: 0.87}
	f[LeftHeel] = Point{X: 0.44, Y: 0.925}
	f[RightHeel] = Point{X: 0.56, Y: 0.925}
	return f
}

// SingleLegStanceFrame returns a steady single leg stance facing the camera:
// standing on the right leg with the left foot lifted well clear, hips level.
func SingleLegStanceFrame() Frame {
	f := StandingFrame()
	f[LeftKnee] = Point{X: 0.47, Y: 0.62}
	f[LeftAnkle] = Point{X: 0.46, Y: 0.72}
	f[LeftHeel] = Point{X: 0.46, Y: 0.78}
	f[LeftFootIndex] = Point{X: 0.44, Y: 0.80}
	return f
}

// TandemStanceFrame returns a heel-to-toe stance facing the camera with the
// right foot leading, head and trunk stacked over the feet.
func TandemStanceFrame() Frame {
	f := StandingFrame()
	f[LeftKnee] = Point{X: 0.50, Y: 0.70}
	f[RightKnee] = Point{X: 0.505, Y: 0.70}
	f[LeftAnkle] = Point{X: 0.50, Y: 0.90}
	f[RightAnkle] = Point{X: 0.505, Y: 0.905}
	f[LeftHeel] = Point{X: 0.498, Y: 0.94}
	f[LeftFootIndex] = Point{X: 0.502, Y: 0.955}
	f[RightHeel] = Point{X: 0.503, Y: 0.955}
	f[RightFootIndex] = Point{X: 0.507, Y: 0.97}
	return f
}

// FunctionalReachFrame returns a forward reach seen from the side: both arms
// extended horizontally, trunk hinged forward about twelve degrees, feet
// planted.
func FunctionalReachFrame() Frame {
	f := make(Frame, NumLandmarks)

	// Head facing image right
	f[Nose] = Point{X: 0.47, Y: 0.20}
	f[LeftEyeInner] = Point{X: 0.465, Y: 0.19}
	f[LeftEye] = Point{X: 0.46, Y: 0.19}
	f[LeftEyeOuter] = Point{X: 0.455, Y: 0.19}
	f[RightEyeInner] = Point{X: 0.465, Y: 0.195}
	f[RightEye] = Point{X: 0.46, Y: 0.195}
	f[RightEyeOuter] = Point{X: 0.455, Y: 0.195}
	f[LeftEar] = Point{X: 0.445, Y: 0.195}
	f[RightEar] = Point{X: 0.445, Y: 0.20}
	f[MouthLeft] = Point{X: 0.465, Y: 0.22}
	f[MouthRight] = Point{X: 0.465, Y: 0.225}

	// Arms extended forward at shoulder height
	f[LeftShoulder] = Point{X: 0.45, Y: 0.30}
	f[RightShoulder] = Point{X: 0.455, Y: 0.305}
	f[LeftElbow] = Point{X: 0.58, Y: 0.31}
	f[RightElbow] = Point{X: 0.585, Y: 0.315}
	f[LeftWrist] = Point{X: 0.70, Y: 0.32}
	f[RightWrist] = Point{X: 0.705, Y: 0.325}
	f[LeftPinky] = Point{X: 0.73, Y: 0.32}
	f[RightPinky] = Point{X: 0.735, Y: 0.325}
	f[LeftIndex] = Point{X: 0.735, Y: 0.32}
	f[RightIndex] = Point{X: 0.74, Y: 0.325}
	f[LeftThumb] = Point{X: 0.725, Y: 0.325}
	f[RightThumb] = Point{X: 0.73, Y: 0.33}

	// Hips hinged back behind the shoulders
	f[LeftHip] = Point{X: 0.40, Y: 0.55}
	f[RightHip] = Point{X: 0.405, Y: 0.555}
	f[LeftKnee] = Point{X: 0.42, Y: 0.72}
	f[RightKnee] = Point{X: 0.425, Y: 0.725}
	f[LeftAnkle] = Point{X: 0.41, Y: 0.90}
	f[RightAnkle] = Point{X: 0.415, Y: 0.905}

	// Feet flat along the viewing axis
	f[LeftHeel] = Point{X: 0.39, Y: 0.93}
	f[RightHeel] = Point{X: 0.395, Y: 0.935}
	f[LeftFootIndex] = Point{X: 0.47, Y: 0.93}
	f[RightFootIndex] = Point{X: 0.475, Y: 0.935}

	return f
}

// TreePoseFrame returns a balanced tree pose facing the camera: standing on
// the right leg, left foot drawn up the standing leg, arms overhead with the
// wrists level.
func TreePoseFrame() Frame {
	f := StandingFrame()

	// Arms overhead
	f[LeftElbow] = Point{X: 0.44, Y: 0.14}
	f[RightElbow] = Point{X: 0.56, Y: 0.145}
	f[LeftWrist] = Point{X: 0.47, Y: 0.08}
	f[RightWrist] = Point{X: 0.53, Y: 0.085}
	f[LeftPinky] = Point{X: 0.465, Y: 0.065}
	f[RightPinky] = Point{X: 0.535, Y: 0.07}
	f[LeftIndex] = Point{X: 0.46, Y: 0.06}
	f[RightIndex] = Point{X: 0.54, Y: 0.065}
	f[LeftThumb] = Point{X: 0.475, Y: 0.07}
	f[RightThumb] = Point{X: 0.525, Y: 0.075}

	// Left leg folded against the standing leg
	f[RightHip] = Point{X: 0.56, Y: 0.505}
	f[LeftKnee] = Point{X: 0.38, Y: 0.62}
	f[LeftAnkle] = Point{X: 0.52, Y: 0.70}
	f[LeftHeel] = Point{X: 0.52, Y: 0.74}
	f[LeftFootIndex] = Point{X: 0.51, Y: 0.77}

	return f
}
