package waypoint

import (
	"maps"
	"math"
	"slices"
)

// Options configures a [Registry]. Every zero-valued field, including those
// of the nested option structs, falls back to the corresponding default. To
// keep every raw sample in the table, use a tiny positive IgnoreDistance
// rather than 0.
type Options struct {
	Table          TableOptions
	NormalPath     NormalPathOptions
	Nearest        NearestOptions
	TangentEpsilon float64
}

var DefaultOptions = Options{
	Table:          DefaultTableOptions,
	NormalPath:     DefaultNormalPathOptions,
	Nearest:        DefaultNearestOptions,
	TangentEpsilon: DefaultTangentEpsilon,
}

func (opts Options) withDefaults() Options {
	orDefault(&opts.Table.Steps, DefaultTableOptions.Steps)
	orDefault(&opts.Table.IgnoreDistance, DefaultTableOptions.IgnoreDistance)
	orDefault(&opts.NormalPath.Steps, DefaultNormalPathOptions.Steps)
	orDefault(&opts.NormalPath.IgnoreDistance, DefaultNormalPathOptions.IgnoreDistance)
	orDefault(&opts.Nearest.Precision, DefaultNearestOptions.Precision)
	orDefault(&opts.Nearest.MaxIterations, DefaultNearestOptions.MaxIterations)
	orDefault(&opts.Nearest.RefineSamples, DefaultNearestOptions.RefineSamples)
	orDefault(&opts.Nearest.RefineSpan, DefaultNearestOptions.RefineSpan)
	orDefault(&opts.TangentEpsilon, DefaultTangentEpsilon)
	return opts
}

func orDefault[T int | float64](v *T, def T) {
	if *v == 0 {
		*v = def
	}
}

// Registry holds named paths and the data derived from them.
//
// The host registers control points with [Registry.SetPath] and friends; the
// registry keeps its own copy. Arc length tables and normal paths are built
// on first use and then reused for all later queries. They are not rebuilt
// when the control points change: call [Registry.InvalidateCache] or
// [Registry.InvalidateAll] after updating points. Until then, queries that go
// through cached data answer for the old points, while queries by raw percent
// already see the new ones.
//
// Names that were never registered behave like empty paths: positions are
// zero vectors and lengths are zero. Querying them does not register them.
//
// Raw percent queries treat every path as open.
//
// A Registry is not safe for concurrent use.
type Registry struct {
	opts  Options
	paths map[string]*path
}

type path struct {
	points    []ControlPoint
	positions []Vec3
	table     *Table
	normal    *NormalPath
}

func (p *path) curve() CatmullRom {
	return CatmullRom{Points: p.positions}
}

// NewRegistry returns an empty registry.
func NewRegistry(opts Options) *Registry {
	return &Registry{
		opts:  opts.withDefaults(),
		paths: map[string]*path{},
	}
}

func (r *Registry) lookup(name string) *path {
	if p, ok := r.paths[name]; ok {
		return p
	}
	return &path{}
}

func (r *Registry) lookupOrCreate(name string) *path {
	p, ok := r.paths[name]
	if !ok {
		p = &path{}
		r.paths[name] = p
	}
	return p
}

// SetPath replaces the control points of the named path, registering it if
// necessary. Cached data is kept; see [Registry].
func (r *Registry) SetPath(name string, points []ControlPoint) {
	p := r.lookupOrCreate(name)
	p.points = slices.Clone(points)
	p.positions = make([]Vec3, len(points))
	for i, pt := range points {
		p.positions[i] = pt.Pos
	}
	Logger().Debug("set path", "path", name, "points", len(points))
}

// AddPoint appends a control point to the named path, registering it if
// necessary.
func (r *Registry) AddPoint(name string, pt ControlPoint) {
	p := r.lookupOrCreate(name)
	p.points = append(p.points, pt)
	p.positions = append(p.positions, pt.Pos)
}

// ClearPath removes all control points from the named path. The path stays
// registered and its cached data is kept.
func (r *Registry) ClearPath(name string) {
	p, ok := r.paths[name]
	if !ok {
		return
	}
	p.points = p.points[:0]
	p.positions = p.positions[:0]
}

// RemovePath unregisters the named path and drops its cached data.
func (r *Registry) RemovePath(name string) {
	delete(r.paths, name)
}

// Paths returns the names of all registered paths in sorted order.
func (r *Registry) Paths() []string {
	return slices.Sorted(maps.Keys(r.paths))
}

// Points returns a copy of the named path's control points.
func (r *Registry) Points(name string) []ControlPoint {
	return slices.Clone(r.lookup(name).points)
}

// PointCount returns the number of control points of the named path.
func (r *Registry) PointCount(name string) int {
	return len(r.lookup(name).points)
}

// PointPosition returns the position of the idx-th control point. Out of
// range indices are logged and return the zero vector.
func (r *Registry) PointPosition(name string, idx int) Vec3 {
	pts := r.lookup(name).points
	if idx < 0 || idx >= len(pts) {
		Logger().Warn("point index out of range", "path", name, "index", idx, "count", len(pts))
		return Vec3{}
	}
	return pts[idx].Pos
}

// PointPositionFromEnd is like [Registry.PointPosition] but counts from the
// last control point.
func (r *Registry) PointPositionFromEnd(name string, idx int) Vec3 {
	pts := r.lookup(name).points
	if idx < 0 || idx >= len(pts) {
		Logger().Warn("point index out of range", "path", name, "index", idx, "fromEnd", true, "count", len(pts))
		return Vec3{}
	}
	return pts[len(pts)-1-idx].Pos
}

// PointPercent returns the raw percent at which the curve passes through the
// idx-th control point. idx is clamped to the valid range. Paths with fewer
// than two points return 0.
func (r *Registry) PointPercent(name string, idx int) float64 {
	n := r.PointCount(name)
	if n < 2 {
		return 0
	}
	idx = min(max(idx, 0), n-1)
	return float64(idx) / float64(n-1)
}

// HasFlag reports whether the idx-th control point has all flags in f. Out
// of range indices report false.
func (r *Registry) HasFlag(name string, idx int, f Flag) bool {
	pts := r.lookup(name).points
	if idx < 0 || idx >= len(pts) {
		return false
	}
	return pts[idx].Flags.Has(f)
}

// Marked reports whether the section of the curve containing the raw percent
// perc starts at a control point with all flags in f.
func (r *Registry) Marked(name string, perc float64, f Flag) bool {
	n := r.PointCount(name)
	if n == 0 {
		return false
	}
	idx := int(math.Floor(float64(n-1) * clamp01(perc)))
	return r.HasFlag(name, idx, f)
}

// MarkRanges returns the ranges of raw percents over which control points
// carry the flags in f.
//
// A range starts at the first flagged point of a run and ends at the first
// unflagged point after it. A run that is still open at the last point ends
// at 1.
func (r *Registry) MarkRanges(name string, f Flag) []MarkRange {
	var out []MarkRange
	var open option[MarkRange]
	for i, pt := range r.lookup(name).points {
		perc := r.PointPercent(name, i)
		if pt.Flags.Has(f) {
			if !open.isSet {
				open.set(MarkRange{From: perc})
			}
		} else if open.isSet {
			rng := open.value
			rng.To = perc
			out = append(out, rng)
			open.clear()
		}
	}
	if open.isSet {
		rng := open.value
		rng.To = 1
		out = append(out, rng)
	}
	return out
}

// ControlPolygonLength returns the summed distance between consecutive
// control points. It underestimates the length of the curve; see
// [Registry.Length].
func (r *Registry) ControlPolygonLength(name string) float64 {
	pos := r.lookup(name).positions
	var l float64
	for i := 1; i < len(pos); i++ {
		l += pos[i].Sub(pos[i-1]).Len()
	}
	return l
}

// Position returns the position at raw percent perc.
func (r *Registry) Position(name string, perc float64) Vec3 {
	return r.lookup(name).curve().Eval(perc)
}

// Tangent returns the negative tangent at raw percent perc. See [Tangent].
func (r *Registry) Tangent(name string, perc float64) Vec3 {
	return Tangent(r.lookup(name).curve(), perc, r.opts.TangentEpsilon)
}

// TangentByTruePercent is like [Registry.Tangent] but takes a true percent.
func (r *Registry) TangentByTruePercent(name string, truePerc float64) Vec3 {
	return r.Tangent(name, r.TruePercentToRawPercent(name, truePerc))
}

func (r *Registry) table(name string) *Table {
	p, ok := r.paths[name]
	if !ok {
		return BuildTable(CatmullRom{}, r.opts.Table)
	}
	if p.table == nil {
		p.table = BuildTable(p.curve(), r.opts.Table)
		Logger().Debug("built arc length table", "path", name, "samples", len(p.table.Samples), "length", p.table.Length)
	}
	return p.table
}

// Table returns a copy of the named path's arc length table, building it if
// necessary.
func (r *Registry) Table(name string) *Table {
	return r.table(name).Clone()
}

// SamplePositions returns the positions of the arc length table's samples.
func (r *Registry) SamplePositions(name string) []Vec3 {
	return r.table(name).Positions()
}

// Length returns the arc length of the named path.
func (r *Registry) Length(name string) float64 {
	return r.table(name).Length
}

// TrueDistanceToPercent converts an arc length into a true percent.
func (r *Registry) TrueDistanceToPercent(name string, d float64) float64 {
	return r.table(name).PercentAtDistance(d)
}

// PositionByTruePercent returns the position at true percent truePerc. If the
// position cannot be interpolated, a warning is logged and the zero vector is
// returned.
func (r *Registry) PositionByTruePercent(name string, truePerc float64) Vec3 {
	pos, ok := r.table(name).PositionAt(truePerc)
	if !ok {
		Logger().Warn("position by true percent is not finite", "path", name, "percent", truePerc)
	}
	return pos
}

// TruePercentToRawPercent converts a true percent into a raw percent.
func (r *Registry) TruePercentToRawPercent(name string, truePerc float64) float64 {
	return r.table(name).RawPercent(truePerc)
}

// RawPercentToTruePercent converts a raw percent into a true percent.
func (r *Registry) RawPercentToTruePercent(name string, perc float64) float64 {
	return r.table(name).TruePercent(perc)
}

// NearestTruePercent returns the true percent of the point on the named path
// closest to pos. See [Table.NearestPoint].
func (r *Registry) NearestTruePercent(name string, pos Vec3) float64 {
	return r.table(name).NearestTruePercent(pos)
}

// NearestRawPercent returns the percent of the point on the named path
// closest to pos, found by bisecting the section whose control points pass
// closest to pos. Unlike [Registry.NearestTruePercent] it starts from the
// raw control points rather than the table's polyline, but candidates are
// still placed by true percent. See [CatmullRom.NearestPercent].
func (r *Registry) NearestRawPercent(name string, pos Vec3) float64 {
	return r.lookup(name).curve().NearestPercent(r.table(name), pos, r.opts.Nearest)
}

// NormalPath returns the named path's simplified polyline, building it if
// necessary.
//
// accuracy is accepted for compatibility and ignored; the sampling resolution
// comes from the registry's [NormalPathOptions]. The returned path is shared
// with the registry and must not be modified.
func (r *Registry) NormalPath(name string, accuracy int) *NormalPath {
	p, ok := r.paths[name]
	if !ok {
		return NewNormalPath(CatmullRom{}, r.opts.NormalPath)
	}
	if p.normal == nil {
		p.normal = NewNormalPath(p.curve(), r.opts.NormalPath)
		Logger().Debug("built normal path", "path", name, "points", len(p.normal.Points), "length", p.normal.Length())
	}
	return p.normal
}

// InvalidateCache drops all data derived from the named path's control
// points. It is rebuilt on next use.
func (r *Registry) InvalidateCache(name string) {
	p, ok := r.paths[name]
	if !ok {
		return
	}
	p.table = nil
	p.normal = nil
	Logger().Debug("invalidated path cache", "path", name)
}

// InvalidateAll is like [Registry.InvalidateCache] for all paths.
func (r *Registry) InvalidateAll() {
	for _, p := range r.paths {
		p.table = nil
		p.normal = nil
	}
	Logger().Debug("invalidated all path caches", "paths", len(r.paths))
}
