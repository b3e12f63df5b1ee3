// Package waypoint evaluates smooth 3D paths through ordered waypoints and
// answers the questions a path follower asks of them: where is the point at a
// given fraction of the path, and which fraction of the path is closest to a
// given position.
//
// # Curves
//
// Paths are uniform Catmull-Rom splines ([CatmullRom]) that pass through
// every control point. Open splines extend their first and last segments to
// get well-defined end tangents; closed splines wrap around. Splines are
// parametrized by t ∈ [0, 1], with one equally sized parameter section per
// pair of control points.
//
// # Raw and true percent
//
// Because sections are equally sized in t but not in length, t does not
// progress evenly along the path. This package calls t the "raw percent". The
// "true percent" is the fraction of arc length instead: a true percent of 0.5
// is halfway along the path, measured in distance.
//
// [Table] converts between the two. It samples a curve at fixed parameter
// steps and records the cumulative distance of each sample, dropping samples
// on straight runs, where linear interpolation between their neighbors is
// already exact enough.
//
// # Nearest points
//
// Two searches find the part of a path closest to a position.
// [Table.NearestTruePercent] projects the position onto every segment of the
// table's polyline and is exact up to the table's resolution.
// [CatmullRom.NearestPercent] bisects the range of the section whose control
// points pass closest, placing candidates by true percent, and refines the
// result with a short brute force sweep.
//
// # Normal paths
//
// [NormalPath] is a coarse polyline approximation of a curve, built by
// dropping samples that don't stray far from the current direction. It answers
// distance queries by walking its few points.
//
// # Registry
//
// [Registry] ties the pieces together for named paths. It stores control
// points pushed by the host and lazily builds and caches tables and normal
// paths. Caches are snapshots: they are only rebuilt after an explicit
// [Registry.InvalidateCache].
//
// # Failure modes
//
// No function in this package panics or returns errors for degenerate input.
// Paths with fewer than two points evaluate to the zero vector, out of range
// indices and failed interpolations return the zero vector and log a warning
// (see [SetLogger]).
package waypoint
