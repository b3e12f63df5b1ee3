package waypoint

// Line represents a line segment in 3D space. It is a [Curve].
type Line struct {
	// The line's start point.
	P0 Vec3
	// The line's end point.
	P1 Vec3
}

var _ Curve = Line{}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Len()
}

func (l Line) Eval(t float64) Vec3 {
	return lerp(l.P0, l.P1, t)
}

// Nearest returns the squared distance between pt and the point on the line
// closest to it, as well as that point's parameter.
//
// Points whose projection falls outside the line are closest to one of the
// endpoints. For zero-length lines, the result is P0 and t = 0.
func (l Line) Nearest(pt Vec3) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(l.P0).Dot(pt.Sub(l.P0)), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(l.P1).Dot(pt.Sub(l.P1)), 1.0
	} else {
		t := dotp / dSquared
		v := pt.Sub(l.Eval(t))
		return v.Dot(v), t
	}
}

// Foot returns the point on the line closest to pt: the foot of the
// perpendicular from pt, or the nearer endpoint.
func (l Line) Foot(pt Vec3) Vec3 {
	_, t := l.Nearest(pt)
	switch t {
	case 0:
		return l.P0
	case 1:
		return l.P1
	default:
		return l.Eval(t)
	}
}

// footEpsilon separates the endpoints of lines that collapse to a single point
// when projected onto the ground plane.
const footEpsilon = 0.01

// PlanarFoot is like [Line.Foot] for the line from–to, but works on the
// ground plane: the projection only considers X and Z, and the foot keeps
// pos's Y coordinate. When the projection falls outside the line, the
// endpoint nearest to pos is returned instead.
//
// If from and to coincide in the ground plane, from is moved by a small
// amount along X so that the projection stays defined. Sharing only one
// coordinate needs no nudge: the projection divides by the squared planar
// length, never by a single axis difference.
func PlanarFoot(from, to, pos Vec3) Vec3 {
	ax, az := from.X(), from.Z()
	dx, dz := to.X()-ax, to.Z()-az
	if dx == 0 && dz == 0 {
		ax += footEpsilon
		dx = -footEpsilon
	}
	s := ((pos.X()-ax)*dx + (pos.Z()-az)*dz) / (dx*dx + dz*dz)
	if s > 0 && s < 1 {
		return Vec3{ax + s*dx, pos.Y(), az + s*dz}
	}
	df, dt := from.Sub(pos), to.Sub(pos)
	if df.Dot(df) < dt.Dot(dt) {
		return from
	}
	return to
}
