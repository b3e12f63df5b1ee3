package waypoint

import "testing"

func TestFlagHas(t *testing.T) {
	f := NoRotation | CameraEnd
	tests := []struct {
		o    Flag
		want bool
	}{
		{NoRotation, true},
		{CameraEnd, true},
		{NoRotation | CameraEnd, true},
		{CameraStart, false},
		{NoRotation | CameraStart, false},
		{0, false},
	}
	for _, tt := range tests {
		if got := f.Has(tt.o); got != tt.want {
			t.Errorf("%v.Has(%v) = %t, want %t", f, tt.o, got, tt.want)
		}
	}
}

func TestFlagString(t *testing.T) {
	diff(t, "0", Flag(0).String())
	diff(t, "NoRotation", NoRotation.String())
	diff(t, "NoRotation|CameraStart|CameraEnd", (NoRotation | CameraStart | CameraEnd).String())
}

func TestFlagFromMark(t *testing.T) {
	diff(t, NoRotation, FlagFromMark('r'))
	diff(t, CameraStart, FlagFromMark('a'))
	diff(t, CameraEnd, FlagFromMark('b'))
	diff(t, Flag(0), FlagFromMark('x'))
}

func TestPts(t *testing.T) {
	diff(t, []ControlPoint{{Pos: V3(1, 0, 0)}, {Pos: V3(2, 0, 0)}}, Pts(V3(1, 0, 0), V3(2, 0, 0)))
}

func TestMarkRangeContains(t *testing.T) {
	r := MarkRange{From: 0.25, To: 0.75}
	for perc, want := range map[float64]bool{0: false, 0.25: true, 0.5: true, 0.75: true, 0.8: false} {
		if got := r.Contains(perc); got != want {
			t.Errorf("Contains(%g) = %t, want %t", perc, got, want)
		}
	}
}
