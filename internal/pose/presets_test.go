package pose

import "testing"

func TestPresets_Complete(t *testing.T) {
	presets := map[string]func() Frame{
		"standing":          StandingFrame,
		"partial squat":     PartialSquatFrame,
		"heel raise":        HeelRaiseFrame,
		"single leg stance": SingleLegStanceFrame,
		"tandem stance":     TandemStanceFrame,
		"functional reach":  FunctionalReachFrame,
		"tree pose":         TreePoseFrame,
	}

	for name, build := range presets {
		t.Run(name, func(t *testing.T) {
			f := build()
			if !f.Complete() {
				t.Fatalf("preset has %d landmarks, want %d", len(f), NumLandmarks)
			}
			for i, p := range f {
				if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
					t.Errorf("landmark %d = %v, want within the unit image", i, p)
				}
			}
		})
	}
}

func TestPresets_Shapes(t *testing.T) {
	t.Run("heel raise lifts heels above toes", func(t *testing.T) {
		f := HeelRaiseFrame()
		if f[LeftHeel].Y >= f[LeftFootIndex].Y {
			t.Errorf("left heel y %v not above toe y %v", f[LeftHeel].Y, f[LeftFootIndex].Y)
		}
		if f[RightHeel].Y >= f[RightFootIndex].Y {
			t.Errorf("right heel y %v not above toe y %v", f[RightHeel].Y, f[RightFootIndex].Y)
		}
	})

	t.Run("tree pose lifts the left foot", func(t *testing.T) {
		f := TreePoseFrame()
		if f[LeftAnkle].Y >= f[RightAnkle].Y {
			t.Errorf("left ankle y %v not above right ankle y %v", f[LeftAnkle].Y, f[RightAnkle].Y)
		}
		if f[LeftWrist].Y >= f[LeftShoulder].Y {
			t.Error("left wrist not above shoulder")
		}
	})

	t.Run("tandem stance keeps feet near the midline", func(t *testing.T) {
		f := TandemStanceFrame()
		for _, i := range []int{LeftHeel, LeftFootIndex, RightHeel, RightFootIndex} {
			if f[i].X < 0.45 || f[i].X > 0.55 {
				t.Errorf("landmark %d x = %v, want near 0.5", i, f[i].X)
			}
		}
	})

	t.Run("presets return fresh frames", func(t *testing.T) {
		a := StandingFrame()
		a[Nose] = Point{X: 0.99, Y: 0.99}
		b := StandingFrame()
		if b[Nose].X == 0.99 {
			t.Error("mutating one preset frame leaked into the next")
		}
	})
}
