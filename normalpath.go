package waypoint

import (
	"iter"
	"slices"
)

// NormalPath is a polyline approximating a curve with few points, placed
// where the curve bends. It answers distance queries without the parameter
// bookkeeping of a [Table].
type NormalPath struct {
	Points []Vec3
	length float64
}

// NormalPathOptions specifies how [NewNormalPath] samples a curve.
type NormalPathOptions struct {
	// Steps is the number of equal parameter steps the curve is sampled at.
	Steps int
	// IgnoreDistance is the distance a sample has to stray from the current
	// polyline direction before it becomes a new point.
	IgnoreDistance float64
}

var DefaultNormalPathOptions = NormalPathOptions{
	Steps:          10000,
	IgnoreDistance: 1.0,
}

// NewNormalPath samples c and returns the simplified polyline.
//
// The first two samples and the final one are always kept. Every other
// sample is kept only if its distance from the line through the two most
// recently kept points exceeds opts.IgnoreDistance.
func NewNormalPath(c Curve, opts NormalPathOptions) *NormalPath {
	steps := opts.Steps
	if steps < 1 {
		steps = DefaultNormalPathOptions.Steps
	}
	ignoreSq := opts.IgnoreDistance * opts.IgnoreDistance

	np := &NormalPath{}
	for i := 0; i <= steps; i++ {
		pos := c.Eval(float64(i) / float64(steps))
		if n := len(np.Points); n >= 2 && i != steps {
			p0, p1 := np.Points[n-2], np.Points[n-1]
			if perpDistSq(pos.Sub(p0), p1.Sub(p0)) <= ignoreSq {
				continue
			}
		}
		np.Points = append(np.Points, pos)
	}
	for i := 1; i < len(np.Points); i++ {
		np.length += np.Points[i].Sub(np.Points[i-1]).Len()
	}
	return np
}

// Length returns the length of the polyline.
func (np *NormalPath) Length() float64 {
	return np.length
}

// All returns an iterator over the polyline's points.
func (np *NormalPath) All() iter.Seq[Vec3] {
	return slices.Values(np.Points)
}

// PositionAtDistance returns the point at distance d along the polyline.
// Distances beyond either end clamp to the first or last point. Empty
// polylines return the zero vector.
func (np *NormalPath) PositionAtDistance(d float64) Vec3 {
	pts := np.Points
	switch len(pts) {
	case 0:
		return Vec3{}
	case 1:
		return pts[0]
	}
	if d <= 0 {
		return pts[0]
	}
	var acc float64
	for i := 1; i < len(pts); i++ {
		l := pts[i].Sub(pts[i-1]).Len()
		if acc+l > d {
			return lerp(pts[i-1], pts[i], (d-acc)/l)
		}
		acc += l
	}
	return pts[len(pts)-1]
}
