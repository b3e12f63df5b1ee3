package waypoint

import (
	"strings"
	"testing"
)

func newStraightRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry(DefaultOptions)
	r.SetPath("p", Pts(straightPath()...))
	return r
}

func TestRegistryStraight(t *testing.T) {
	r := newStraightRegistry(t)

	diff(t, 10.0, r.Length("p"), approx(1e-9))
	diff(t, 10.0, r.ControlPolygonLength("p"), approx(1e-12))
	diff(t, V3(5, 0, 0), r.Position("p", 0.5), approx(1e-12))
	diff(t, V3(5, 0, 0), r.PositionByTruePercent("p", 0.5), approx(1e-9))
	diff(t, 0.5, r.NearestTruePercent("p", V3(5, 0, 0.01)), approx(1e-9))
	diff(t, 0.5, r.NearestRawPercent("p", V3(5, 0, 0.01)), approx(1e-6))
	diff(t, 0.25, r.TrueDistanceToPercent("p", 2.5), approx(1e-9))
	// The spline's speed varies a little even on a straight path.
	diff(t, 0.5, r.RawPercentToTruePercent("p", 0.5), approx(1e-2))
	diff(t, 0.5, r.TruePercentToRawPercent("p", 0.5), approx(1e-2))

	if tan := r.TangentByTruePercent("p", 0.5); tan.X() >= 0 {
		t.Errorf("got tangent %v, want negative X", tan)
	}
	diff(t, r.Tangent("p", 0.5), r.TangentByTruePercent("p", 0.5), approx(1e-2))
}

func TestRegistryPoints(t *testing.T) {
	r := newStraightRegistry(t)

	diff(t, 3, r.PointCount("p"))
	diff(t, V3(0, 0, 0), r.PointPosition("p", 0))
	diff(t, V3(10, 0, 0), r.PointPositionFromEnd("p", 0))
	diff(t, V3(5, 0, 0), r.PointPositionFromEnd("p", 1))
	diff(t, 0.5, r.PointPercent("p", 1))
	diff(t, 0.0, r.PointPercent("p", -1))
	diff(t, 1.0, r.PointPercent("p", 10))

	r.AddPoint("p", ControlPoint{Pos: V3(15, 0, 0)})
	diff(t, 4, r.PointCount("p"))
	diff(t, V3(15, 0, 0), r.PointPositionFromEnd("p", 0))
	diff(t, V3(15, 0, 0), r.Position("p", 1), approx(1e-12))
}

func TestRegistrySetPathCopies(t *testing.T) {
	r := NewRegistry(DefaultOptions)
	pts := Pts(straightPath()...)
	r.SetPath("p", pts)
	pts[0].Pos = V3(9, 9, 9)
	diff(t, V3(0, 0, 0), r.PointPosition("p", 0))

	out := r.Points("p")
	out[1].Pos = V3(9, 9, 9)
	diff(t, V3(5, 0, 0), r.PointPosition("p", 1))
}

func TestRegistryOutOfRange(t *testing.T) {
	buf := captureLogs(t)
	r := newStraightRegistry(t)

	diff(t, Vec3{}, r.PointPosition("p", 3))
	diff(t, Vec3{}, r.PointPosition("p", -1))
	diff(t, Vec3{}, r.PointPositionFromEnd("p", 3))
	if n := strings.Count(buf.String(), "point index out of range"); n != 3 {
		t.Errorf("got %d warnings, want 3:\n%s", n, buf.String())
	}
	if r.HasFlag("p", 7, NoRotation) {
		t.Error("HasFlag reported true for an out of range index")
	}
}

func TestRegistryUnknownPath(t *testing.T) {
	buf := captureLogs(t)
	r := NewRegistry(DefaultOptions)

	diff(t, 0.0, r.Length("nope"))
	diff(t, Vec3{}, r.Position("nope", 0.5))
	diff(t, Vec3{}, r.PositionByTruePercent("nope", 0.5))
	if !strings.Contains(buf.String(), "position by true percent is not finite") {
		t.Errorf("expected a warning about the position, got: %s", buf.String())
	}
	diff(t, 0.0, r.NearestTruePercent("nope", V3(1, 2, 3)))
	diff(t, 0.0, r.NearestRawPercent("nope", V3(1, 2, 3)))
	diff(t, 0, r.PointCount("nope"))
	diff(t, 0.0, r.NormalPath("nope", 0).Length())
	if r.Marked("nope", 0.5, NoRotation) {
		t.Error("unknown path reported a marked section")
	}
	if got := r.MarkRanges("nope", NoRotation); len(got) != 0 {
		t.Errorf("got ranges %v for unknown path", got)
	}

	// Queries don't register names.
	if got := r.Paths(); len(got) != 0 {
		t.Errorf("got paths %v, want none", got)
	}
	r.InvalidateCache("nope")
	r.ClearPath("nope")
	if got := r.Paths(); len(got) != 0 {
		t.Errorf("got paths %v, want none", got)
	}
}

func TestRegistryCacheIsSnapshot(t *testing.T) {
	r := newStraightRegistry(t)
	diff(t, 10.0, r.Length("p"), approx(1e-9))
	np := r.NormalPath("p", 0)
	if r.NormalPath("p", 0) != np {
		t.Error("normal path was rebuilt without invalidation")
	}

	r.SetPath("p", Pts(V3(0, 0, 0), V3(10, 0, 0), V3(20, 0, 0)))
	// Cached data still answers for the old points.
	diff(t, 10.0, r.Length("p"), approx(1e-9))
	diff(t, 10.0, r.NormalPath("p", 0).Length(), approx(1e-9))
	// Raw percent queries see the new points.
	diff(t, V3(20, 0, 0), r.Position("p", 1), approx(1e-12))

	r.InvalidateCache("p")
	diff(t, 20.0, r.Length("p"), approx(1e-9))
	diff(t, 20.0, r.NormalPath("p", 0).Length(), approx(1e-9))

	r.SetPath("p", Pts(V3(0, 0, 0), V3(15, 0, 0), V3(30, 0, 0)))
	r.SetPath("q", Pts(straightPath()...))
	diff(t, 20.0, r.Length("p"), approx(1e-9))
	r.InvalidateAll()
	diff(t, 30.0, r.Length("p"), approx(1e-9))
	diff(t, 10.0, r.Length("q"), approx(1e-9))
}

func TestRegistryTableIsCopy(t *testing.T) {
	r := newStraightRegistry(t)
	tb := r.Table("p")
	tb.Samples[0].Pos = V3(9, 9, 9)
	tb.Length = 100
	diff(t, 10.0, r.Length("p"), approx(1e-9))
	diff(t, V3(0, 0, 0), r.SamplePositions("p")[0])
}

func TestRegistryMarkRanges(t *testing.T) {
	r := NewRegistry(DefaultOptions)
	r.SetPath("p", []ControlPoint{
		{Pos: V3(0, 0, 0)},
		{Pos: V3(10, 0, 0), Flags: NoRotation},
		{Pos: V3(20, 0, 0), Flags: NoRotation | CameraStart},
		{Pos: V3(30, 0, 0)},
		{Pos: V3(40, 0, 0), Flags: NoRotation},
	})

	diff(t, []MarkRange{{From: 0.25, To: 0.75}, {From: 1, To: 1}}, r.MarkRanges("p", NoRotation))
	diff(t, []MarkRange{{From: 0.5, To: 0.75}}, r.MarkRanges("p", CameraStart))
	if got := r.MarkRanges("p", CameraEnd); got != nil {
		t.Errorf("got ranges %v, want none", got)
	}

	tests := []struct {
		perc float64
		want bool
	}{
		{0, false},
		{0.3, true},
		{0.6, true},
		{0.8, false},
		{1, true},
		{2, true},
	}
	for _, tt := range tests {
		if got := r.Marked("p", tt.perc, NoRotation); got != tt.want {
			t.Errorf("Marked(%g) = %t, want %t", tt.perc, got, tt.want)
		}
	}
	if !r.HasFlag("p", 2, CameraStart) || r.HasFlag("p", 1, CameraStart) {
		t.Error("HasFlag reported the wrong points")
	}
}

func TestRegistryLifecycle(t *testing.T) {
	r := newStraightRegistry(t)
	r.AddPoint("b", ControlPoint{Pos: V3(1, 1, 1)})
	diff(t, []string{"b", "p"}, r.Paths())

	r.ClearPath("p")
	diff(t, 0, r.PointCount("p"))
	diff(t, []string{"b", "p"}, r.Paths())

	r.RemovePath("p")
	diff(t, []string{"b"}, r.Paths())
	diff(t, 0.0, r.Length("p"))
}

func TestOptionsWithDefaults(t *testing.T) {
	diff(t, DefaultOptions, Options{}.withDefaults())

	opts := Options{Table: TableOptions{Steps: 50, IgnoreDistance: 0.5}}.withDefaults()
	diff(t, TableOptions{Steps: 50, IgnoreDistance: 0.5}, opts.Table)
	diff(t, DefaultNearestOptions, opts.Nearest)

	// Partially filled structs are completed field by field.
	opts = Options{Nearest: NearestOptions{MaxIterations: 10}}.withDefaults()
	want := DefaultNearestOptions
	want.MaxIterations = 10
	diff(t, want, opts.Nearest)
	opts = Options{Table: TableOptions{Steps: 50}}.withDefaults()
	diff(t, TableOptions{Steps: 50, IgnoreDistance: DefaultTableOptions.IgnoreDistance}, opts.Table)
}
