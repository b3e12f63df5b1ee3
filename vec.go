package waypoint

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a point or vector in 3D space.
type Vec3 = mgl64.Vec3

// V3 returns the vector ⟨x, y, z⟩.
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// normalize returns a vector of magnitude 1.0 with the same direction as v.
// Unlike [mgl64.Vec3.Normalize], a zero vector stays a zero vector instead of
// turning into NaNs.
func normalize(v Vec3) Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Mul(1.0 / l)
}

// project returns the projection of v onto dir. Projecting onto a zero vector
// yields a zero vector.
func project(v, dir Vec3) Vec3 {
	d2 := dir.Dot(dir)
	if d2 == 0 {
		return Vec3{}
	}
	return dir.Mul(v.Dot(dir) / d2)
}

// perpDistSq returns the squared length of the component of v that is
// perpendicular to dir.
func perpDistSq(v, dir Vec3) float64 {
	p := project(v, dir)
	return v.Dot(v) - p.Dot(p)
}

// lerp linearly interpolates between two vectors.
func lerp(a, b Vec3, t float64) Vec3 {
	// a + t * (b-a)
	return a.Add(b.Sub(a).Mul(t))
}

// isFinite reports whether none of v's components are infinite or NaN.
func isFinite(v Vec3) bool {
	for _, f := range v {
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return false
		}
	}
	return true
}

func clamp01(t float64) float64 {
	return mgl64.Clamp(t, 0, 1)
}
