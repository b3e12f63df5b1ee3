package waypoint

import "math"

// CatmullRom is a uniform Catmull-Rom spline passing through its control
// points. It is a [Curve].
//
// The parameter range [0, 1] is split into equally sized sections, one per
// pair of adjacent control points, regardless of the distance between them.
// The parameter is therefore not proportional to arc length; use a [Table] to
// convert between the two.
//
// Open splines need a control point before the first and after the last
// point. These are synthesized by extending the first and last segments by
// one unit of length. Closed splines wrap around instead, so that the curve
// returns to its first point with a continuous tangent.
//
// Splines with fewer than two points have no defined curve and evaluate to
// the zero vector.
type CatmullRom struct {
	Points []Vec3
	Closed bool
}

var _ Curve = CatmullRom{}

// Eval evaluates the Catmull-Rom spline through points at parameter t. See
// [CatmullRom] for details.
func Eval(points []Vec3, t float64, closed bool) Vec3 {
	return CatmullRom{Points: points, Closed: closed}.Eval(t)
}

// Sections returns the number of curve sections, which is 0 for degenerate
// splines.
func (c CatmullRom) Sections() int {
	n := len(c.Points)
	if n <= 1 {
		return 0
	}
	if c.Closed {
		return n
	}
	return n - 1
}

// Knot returns the point at which section i starts. Knot(Sections()) is the
// end of the curve.
func (c CatmullRom) Knot(i int) Vec3 {
	if c.Sections() == 0 {
		return Vec3{}
	}
	return c.point(i)
}

// KnotParam returns the parameter at which the curve passes through Knot(i).
func (c CatmullRom) KnotParam(i int) float64 {
	n := c.Sections()
	if n == 0 {
		return 0
	}
	return float64(i) / float64(n)
}

func (c CatmullRom) Eval(t float64) Vec3 {
	if c.Sections() == 0 {
		return Vec3{}
	}
	sec, u := c.locate(t)
	a, b, cc, d := c.section(sec)
	return catmullRom(a, b, cc, d, u)
}

// Deriv returns the derivative of the curve with respect to t.
func (c CatmullRom) Deriv(t float64) Vec3 {
	n := c.Sections()
	if n == 0 {
		return Vec3{}
	}
	sec, u := c.locate(t)
	a, b, cc, d := c.section(sec)
	// Chain rule, du/dt = n.
	return catmullRomDeriv(a, b, cc, d, u).Mul(float64(n))
}

// locate returns the section containing t as well as the local parameter
// within that section. t is clamped to [0, 1]; t = 1 is the end of the last
// section, not the start of a nonexistent one.
func (c CatmullRom) locate(t float64) (int, float64) {
	n := c.Sections()
	x := clamp01(t) * float64(n)
	sec := min(max(int(math.Floor(x)), 0), n-1)
	return sec, x - float64(sec)
}

// section returns the four control points that shape section i.
func (c CatmullRom) section(i int) (a, b, cc, d Vec3) {
	return c.point(i - 1), c.point(i), c.point(i + 1), c.point(i + 2)
}

// point returns the i-th control point, extending the point list past either
// end. Callers must ensure there are at least two points.
func (c CatmullRom) point(i int) Vec3 {
	pts := c.Points
	n := len(pts)
	if c.Closed {
		return pts[((i%n)+n)%n]
	}
	switch {
	case i < 0:
		return pts[0].Add(normalize(pts[0].Sub(pts[1])))
	case i >= n:
		return pts[n-1].Add(normalize(pts[n-1].Sub(pts[n-2])))
	default:
		return pts[i]
	}
}

// catmullRom evaluates the section between b and c at local parameter u.
func catmullRom(a, b, c, d Vec3, u float64) Vec3 {
	u2 := u * u
	u3 := u2 * u
	var out Vec3
	for i := range out {
		out[i] = 0.5 * ((-a[i]+3*b[i]-3*c[i]+d[i])*u3 +
			(2*a[i]-5*b[i]+4*c[i]-d[i])*u2 +
			(-a[i]+c[i])*u +
			2*b[i])
	}
	return out
}

// catmullRomDeriv is the derivative of catmullRom with respect to u.
func catmullRomDeriv(a, b, c, d Vec3, u float64) Vec3 {
	u2 := u * u
	var out Vec3
	for i := range out {
		out[i] = 0.5 * (3*(-a[i]+3*b[i]-3*c[i]+d[i])*u2 +
			2*(2*a[i]-5*b[i]+4*c[i]-d[i])*u +
			(-a[i] + c[i]))
	}
	return out
}
