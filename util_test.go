package waypoint

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats, and vectors component-wise, within an absolute
// margin.
func approx(margin float64) cmp.Option {
	return cmpopts.EquateApprox(0, margin)
}

// straightPath is the three point path along the X axis used throughout the
// tests. Its length is 10.
func straightPath() []Vec3 {
	return []Vec3{V3(0, 0, 0), V3(5, 0, 0), V3(10, 0, 0)}
}

// wavyPath bends in the XZ plane and climbs along Y.
func wavyPath() []Vec3 {
	return []Vec3{
		V3(0, 0, 0),
		V3(10, 1, 0),
		V3(20, 2, 5),
		V3(30, 3, 0),
		V3(40, 4, 8),
	}
}

// arclen approximates the arc length of c between 0 and t by summing chords.
func arclen(c Curve, t float64) float64 {
	const steps = 100000
	var l float64
	prev := c.Eval(0)
	for i := 1; i <= steps; i++ {
		pos := c.Eval(t * float64(i) / steps)
		l += pos.Sub(prev).Len()
		prev = pos
	}
	return l
}
