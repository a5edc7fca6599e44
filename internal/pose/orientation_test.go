package pose

import "testing"

func TestFacingSideways(t *testing.T) {
	t.Run("frontal stance", func(t *testing.T) {
		if FacingSideways(StandingFrame()) {
			t.Error("FacingSideways() = true for a frontal stance, want false")
		}
	})

	t.Run("profile stance", func(t *testing.T) {
		if !FacingSideways(PartialSquatFrame()) {
			t.Error("FacingSideways() = false for a profile stance, want true")
		}
	})

	t.Run("shoulders stacked vertically", func(t *testing.T) {
		f := StandingFrame()
		f[LeftShoulder] = Point{X: 0.50, Y: 0.22}
		f[RightShoulder] = Point{X: 0.50, Y: 0.30}
		if !FacingSideways(f) {
			t.Error("FacingSideways() = false for stacked shoulders, want true")
		}
	})

	t.Run("incomplete frame", func(t *testing.T) {
		f := StandingFrame()[:LeftShoulder]
		if FacingSideways(f) {
			t.Error("FacingSideways() = true for an incomplete frame, want false")
		}
	})
}
