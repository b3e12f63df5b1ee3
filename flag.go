package waypoint

import "strings"

// Flag is a set of roles attached to a single control point.
type Flag uint8

const (
	// NoRotation marks points along which a follower should keep its
	// orientation.
	NoRotation Flag = 1 << iota
	// CameraStart marks the point where a camera move begins.
	CameraStart
	// CameraEnd marks the point where a camera move ends.
	CameraEnd
)

var flagNames = [...]string{"NoRotation", "CameraStart", "CameraEnd"}

// Has reports whether all flags in o are set in f. It returns false for o ==
// 0.
func (f Flag) Has(o Flag) bool {
	return o != 0 && f&o == o
}

func (f Flag) String() string {
	if f == 0 {
		return "0"
	}
	var parts []string
	for i, name := range flagNames {
		if f&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}

// FlagFromMark returns the flag that older tools encoded as a single letter
// in point names: 'r' for [NoRotation], 'a' for [CameraStart] and 'b' for
// [CameraEnd]. Any other byte maps to 0.
func FlagFromMark(c byte) Flag {
	switch c {
	case 'r':
		return NoRotation
	case 'a':
		return CameraStart
	case 'b':
		return CameraEnd
	default:
		return 0
	}
}

// ControlPoint is a single waypoint of a path.
type ControlPoint struct {
	Pos   Vec3
	Flags Flag
}

// Pts returns control points without flags at the given positions.
func Pts(pos ...Vec3) []ControlPoint {
	out := make([]ControlPoint, len(pos))
	for i, p := range pos {
		out[i].Pos = p
	}
	return out
}

// MarkRange is a contiguous range of percents over which a flag holds.
type MarkRange struct {
	From float64
	To   float64
}

// Contains reports whether perc lies within the range, inclusive on both ends.
func (r MarkRange) Contains(perc float64) bool {
	return r.From <= perc && perc <= r.To
}
