package waypoint

import (
	"iter"
	"slices"
)

// Sample is a single entry of an arc length [Table].
type Sample struct {
	// T is the raw curve parameter of the sample.
	T float64
	// Distance is the arc length from the start of the curve to the sample.
	Distance float64
	Pos      Vec3
}

// Table maps a curve's raw parameter to arc length, which allows querying
// the curve by "true percent", the fraction of its length.
//
// Samples are strictly increasing in both T and Distance, unless the curve
// has zero length. The first sample is at T = 0 and Distance = 0, the last
// sample at T = 1 and Distance = Length.
//
// Between two samples, positions, parameters and distances are interpolated
// linearly. This is accurate to the table's sampling resolution.
type Table struct {
	Samples []Sample
	Length  float64
}

// TableOptions specifies how [BuildTable] samples a curve.
type TableOptions struct {
	// Steps is the number of equal parameter steps the curve is sampled
	// at.
	Steps int
	// IgnoreDistance is the distance below which samples are considered to
	// lie on the line through the two preceding samples. Such samples are
	// left out of the table, so straight runs are represented by few samples
	// and curved ones by many.
	IgnoreDistance float64
}

var DefaultTableOptions = TableOptions{
	Steps:          300,
	IgnoreDistance: 0.1,
}

// BuildTable samples c and returns its arc length table.
//
// The arc length is accumulated over all raw samples, including the ones
// that are left out of the table. The first two and the final sample are
// always kept. BuildTable is deterministic.
func BuildTable(c Curve, opts TableOptions) *Table {
	steps := opts.Steps
	if steps < 1 {
		steps = DefaultTableOptions.Steps
	}
	ignoreSq := opts.IgnoreDistance * opts.IgnoreDistance

	tb := &Table{}
	var length float64
	var prev Vec3
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		pos := c.Eval(t)
		if i > 0 {
			length += pos.Sub(prev).Len()
		}
		prev = pos

		if n := len(tb.Samples); n >= 2 && i != steps {
			last := tb.Samples[n-1].Pos
			dir := last.Sub(tb.Samples[n-2].Pos)
			if perpDistSq(pos.Sub(last), dir) < ignoreSq {
				continue
			}
		}
		tb.Samples = append(tb.Samples, Sample{T: t, Distance: length, Pos: pos})
	}
	tb.Length = length
	return tb
}

// segments returns an iterator over pairs of adjacent samples.
func (tb *Table) segments() iter.Seq2[Sample, Sample] {
	return func(yield func(Sample, Sample) bool) {
		for i := 0; i+1 < len(tb.Samples); i++ {
			if !yield(tb.Samples[i], tb.Samples[i+1]) {
				return
			}
		}
	}
}

// PercentAtDistance converts an arc length into a true percent. It returns 0
// for curves of zero length.
func (tb *Table) PercentAtDistance(d float64) float64 {
	if tb.Length == 0 {
		return 0
	}
	return d / tb.Length
}

// PositionAt returns the position at the given true percent.
//
// Percents at or below 0 return the first sample, percents at or above 1 the
// last one. If interpolation produces a non-finite position, which happens
// when the table has zero length, PositionAt returns the zero vector and
// false.
func (tb *Table) PositionAt(truePerc float64) (Vec3, bool) {
	if len(tb.Samples) == 0 {
		return Vec3{}, false
	}
	first, last := tb.Samples[0], tb.Samples[len(tb.Samples)-1]
	if truePerc <= 0 {
		return first.Pos, true
	}
	if truePerc >= 1 {
		return last.Pos, true
	}

	target := tb.Length * truePerc
	pre, next := first, last
	for _, s := range tb.Samples {
		if target > s.Distance {
			pre = s
		} else {
			next = s
			break
		}
	}
	pos := lerp(pre.Pos, next.Pos, (target-pre.Distance)/(next.Distance-pre.Distance))
	if !isFinite(pos) {
		return Vec3{}, false
	}
	return pos, true
}

// RawPercent converts a true percent into the raw curve parameter.
//
// Percents outside [0, 1] are clamped. Where samples share the same distance,
// the parameter of the earlier sample is used.
func (tb *Table) RawPercent(truePerc float64) float64 {
	if len(tb.Samples) == 0 {
		return 0
	}
	if truePerc <= 0 {
		return tb.Samples[0].T
	}
	if truePerc >= 1 {
		return tb.Samples[len(tb.Samples)-1].T
	}
	target := truePerc * tb.Length
	for pre, next := range tb.segments() {
		if pre.Distance <= target && target <= next.Distance {
			span := next.Distance - pre.Distance
			if span == 0 {
				return pre.T
			}
			return pre.T + (target-pre.Distance)/span*(next.T-pre.T)
		}
	}
	return 0
}

// TruePercent converts a raw curve parameter into a true percent. It is the
// inverse of [Table.RawPercent].
func (tb *Table) TruePercent(raw float64) float64 {
	if tb.Length == 0 {
		return 0
	}
	raw = clamp01(raw)
	for pre, next := range tb.segments() {
		if pre.T <= raw && raw <= next.T {
			f := (raw - pre.T) / (next.T - pre.T)
			return (pre.Distance + f*(next.Distance-pre.Distance)) / tb.Length
		}
	}
	return 0
}

// Positions returns the positions of all samples.
func (tb *Table) Positions() []Vec3 {
	out := make([]Vec3, 0, len(tb.Samples))
	for _, s := range tb.Samples {
		out = append(out, s.Pos)
	}
	return out
}

// Clone returns a deep copy of the table.
func (tb *Table) Clone() *Table {
	return &Table{
		Samples: slices.Clone(tb.Samples),
		Length:  tb.Length,
	}
}
