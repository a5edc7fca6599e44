package pose

import "math"

// AngleAt computes the angle in degrees at vertex c between the rays c->a and
// c->b, using only image-plane coordinates. The cosine is clamped to [-1, 1]
// before the arc cosine to absorb floating point drift. A ray of zero length
// yields an angle of 0.
func AngleAt(c, a, b Point) float64 {
	v1x := a.X - c.X
	v1y := a.Y - c.Y
	v2x := b.X - c.X
	v2y := b.Y - c.Y

	m1 := math.Sqrt(v1x*v1x + v1y*v1y)
	m2 := math.Sqrt(v2x*v2x + v2y*v2y)
	if m1 == 0 || m2 == 0 {
		return 0
	}

	cos := (v1x*v2x + v1y*v2y) / (m1 * m2)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}

	return math.Acos(cos) * 180 / math.Pi
}

// Distance returns the Euclidean distance between two points in the image plane.
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// LeanFromVertical returns the angle in degrees between the segment from a to
// b and the image vertical. Coincident points yield 0.
func LeanFromVertical(a, b Point) float64 {
	return math.Atan2(math.Abs(a.X-b.X), math.Abs(a.Y-b.Y)) * 180 / math.Pi
}
