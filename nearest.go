package waypoint

import "math"

// NearestOptions specifies optional settings for [CatmullRom.NearestPercent].
type NearestOptions struct {
	// Precision is the distance at which a candidate counts as a hit, and
	// the length below which the search interval is considered converged.
	Precision float64
	// MaxIterations bounds the number of bisection steps.
	MaxIterations int
	// RefineSamples is the number of candidates evaluated around the
	// bisection result.
	RefineSamples int
	// RefineSpan is the parameter distance, in either direction, covered by
	// the refinement candidates.
	RefineSpan float64
}

var DefaultNearestOptions = NearestOptions{
	Precision:     0.03,
	MaxIterations: 64,
	RefineSamples: 100,
	RefineSpan:    0.05,
}

// NearestPoint returns the point on the table's polyline that is closest to
// pos, along with its true percent.
//
// All segments between adjacent samples are searched; if several are equally
// close, the earliest one wins. The result is exact for the polyline and thus
// accurate to the table's sampling resolution for the curve itself.
func (tb *Table) NearestPoint(pos Vec3) (Vec3, float64) {
	if len(tb.Samples) == 0 {
		return Vec3{}, 0
	}
	best := math.Inf(1)
	foot := tb.Samples[0].Pos
	var dist float64
	for pre, next := range tb.segments() {
		l := Line{pre.Pos, next.Pos}
		distSq, t := l.Nearest(pos)
		if distSq < best {
			best = distSq
			foot = l.Foot(pos)
			dist = pre.Distance + (next.Distance-pre.Distance)*t
		}
	}
	return foot, tb.PercentAtDistance(dist)
}

// NearestTruePercent returns the true percent of the point on the curve that
// is closest to pos. See [Table.NearestPoint].
func (tb *Table) NearestTruePercent(pos Vec3) float64 {
	_, perc := tb.NearestPoint(pos)
	return perc
}

// NearestPercent returns the percent of the point on the curve that is
// closest to pos, searching positions along tb, the curve's arc length
// table.
//
// The search works in three stages. First, the section whose chord, projected
// onto the ground plane, passes closest to pos is selected; its knot
// parameters bracket the search. Then that bracket is bisected towards
// whichever end is closer to pos, where candidates are placed with
// [Table.PositionAt], i.e. measured as true percents. Because bisection can
// settle on the wrong side of a sharp bend, or outside the bracket on unevenly
// spaced points, the result is finally refined by evaluating
// opts.RefineSamples evenly spaced percents within opts.RefineSpan of it and
// keeping the closest one.
//
// The result is clamped to [0, 1].
func (c CatmullRom) NearestPercent(tb *Table, pos Vec3, opts NearestOptions) float64 {
	n := c.Sections()
	if n == 0 {
		return 0
	}

	var lo, hi float64
	best := math.Inf(1)
	for i := range n {
		foot := PlanarFoot(c.Knot(i), c.Knot(i+1), pos)
		if d := foot.Sub(pos).Len(); d < best {
			best = d
			lo, hi = c.KnotParam(i), c.KnotParam(i+1)
		}
	}

	at := func(perc float64) Vec3 {
		p, _ := tb.PositionAt(perc)
		return p
	}
	t := bisectNearest(at, pos, lo, hi, tb.Length, opts)
	return refineNearest(at, pos, t, opts)
}

// bisectNearest narrows [lo, hi] towards the percent whose position is
// closest to pos.
func bisectNearest(at func(float64) Vec3, pos Vec3, lo, hi, length float64, opts NearestOptions) float64 {
	iters := opts.MaxIterations
	if iters <= 0 {
		iters = DefaultNearestOptions.MaxIterations
	}
	for range iters {
		dlo := at(lo).Sub(pos).Len()
		dhi := at(hi).Sub(pos).Len()
		if dlo < opts.Precision {
			return lo
		}
		if dhi < opts.Precision {
			return hi
		}
		mid := (lo + hi) / 2
		if math.Abs(lo-hi)*length < opts.Precision {
			return mid
		}
		if dlo < dhi {
			hi = mid
		} else {
			lo = mid
		}
	}
	return (lo + hi) / 2
}

// refineNearest searches the neighborhood of base for a percent closer to
// pos.
func refineNearest(at func(float64) Vec3, pos Vec3, base float64, opts NearestOptions) float64 {
	count := opts.RefineSamples
	if count <= 0 {
		return clamp01(base)
	}
	step := opts.RefineSpan * 2 / float64(count)
	best := math.Inf(1)
	final := base
	for i := range count {
		t := base - opts.RefineSpan + step*float64(i)
		if d := at(t).Sub(pos).Len(); d < best {
			best = d
			final = t
		}
	}
	return clamp01(final)
}
