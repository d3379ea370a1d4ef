package randpath

import (
	"testing"
)

func TestSegmentLength(t *testing.T) {
	if l := Seg(Pt(0, 0), Pt(3, 4)).Length(); l != 5 {
		t.Errorf("got length %v, want 5", l)
	}
	s := Seg(Pt(7, -7), Pt(7, -7))
	if l := s.Length(); l != 0 {
		t.Errorf("got length %v, want 0", l)
	}
	if !s.IsDegenerate() {
		t.Errorf("%v should be degenerate", s)
	}
}

func TestSignedArea(t *testing.T) {
	tests := []struct {
		a, b, c Point
		want    float64
	}{
		{Pt(0, 0), Pt(1, 1), Pt(2, 2), 0},
		{Pt(0, 0), Pt(4, 0), Pt(-3, 0), 0},
		{Pt(0, 0), Pt(1, 0), Pt(0, 1), 1},
		{Pt(0, 0), Pt(0, 1), Pt(1, 0), -1},
		{Pt(1, 1), Pt(5, 1), Pt(1, 4), 12},
		{Pt(2, 2), Pt(2, 2), Pt(9, -3), 0},
	}
	for _, tt := range tests {
		if got := SignedArea(tt.a, tt.b, tt.c); got != tt.want {
			t.Errorf("SignedArea(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.c, got, tt.want)
		}
	}
}

func TestPointOnLine(t *testing.T) {
	s := Seg(Pt(0, 0), Pt(4, 0))
	tests := []struct {
		pt   Point
		want bool
	}{
		{Pt(2, 0), true},
		{Pt(0, 0), true},
		{Pt(4, 0), true},
		// Beyond the end points, but still on the line.
		{Pt(10, 0), true},
		{Pt(-3, 0), true},
		{Pt(2, 1), false},
	}
	for _, tt := range tests {
		if got := PointOnLine(s, tt.pt); got != tt.want {
			t.Errorf("PointOnLine(%v, %v) = %t, want %t", s, tt.pt, got, tt.want)
		}
	}

	anchor := Seg(Pt(0, 0), Pt(0, 0))
	if PointOnLine(anchor, Pt(0, 0)) {
		t.Error("degenerate segments shouldn't define a line")
	}
}

func TestPointOnSegment(t *testing.T) {
	s := Seg(Pt(0, 0), Pt(4, 4))
	tests := []struct {
		pt   Point
		want bool
	}{
		{Pt(2, 2), true},
		{Pt(0, 0), true},
		{Pt(4, 4), true},
		{Pt(5, 5), false},
		{Pt(-1, -1), false},
		{Pt(2, 3), false},
	}
	for _, tt := range tests {
		if got := PointOnSegment(s, tt.pt); got != tt.want {
			t.Errorf("PointOnSegment(%v, %v) = %t, want %t", s, tt.pt, got, tt.want)
		}
	}

	pt := Seg(Pt(1, 1), Pt(1, 1))
	if !PointOnSegment(pt, Pt(1, 1)) {
		t.Error("degenerate segment should contain its point")
	}
	if PointOnSegment(pt, Pt(1, 2)) {
		t.Error("degenerate segment should only contain its point")
	}
}

func TestProperlyCross(t *testing.T) {
	tests := []struct {
		name       string
		a0, a1     Point
		c0, c1     Point
		wantProper bool
	}{
		{"x", Pt(0, 0), Pt(2, 2), Pt(0, 2), Pt(2, 0), true},
		{"plus", Pt(-1, 0), Pt(1, 0), Pt(0, -1), Pt(0, 1), true},
		{"parallel", Pt(0, 0), Pt(2, 0), Pt(0, 1), Pt(2, 1), false},
		{"touching end points", Pt(0, 0), Pt(2, 0), Pt(2, 0), Pt(3, 5), false},
		{"t junction", Pt(0, 0), Pt(4, 0), Pt(2, 3), Pt(2, 0), false},
		{"collinear overlap", Pt(0, 0), Pt(4, 0), Pt(2, 0), Pt(6, 0), false},
		{"disjoint", Pt(0, 0), Pt(1, 1), Pt(3, 0), Pt(5, -2), false},
		{"lines cross outside segments", Pt(0, 0), Pt(1, 0), Pt(3, -1), Pt(3, 1), false},
		{"degenerate", Pt(1, 1), Pt(1, 1), Pt(0, 2), Pt(2, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProperlyCross(tt.a0, tt.a1, tt.c0, tt.c1); got != tt.wantProper {
				t.Errorf("got %t, want %t", got, tt.wantProper)
			}
			if got := ProperlyCross(tt.c0, tt.c1, tt.a0, tt.a1); got != tt.wantProper {
				t.Errorf("swapped: got %t, want %t", got, tt.wantProper)
			}
		})
	}
}

func TestIntersects(t *testing.T) {
	existing := Seg(Pt(0, 0), Pt(4, 0))
	tests := []struct {
		name      string
		candidate Segment
		want      bool
	}{
		{"end on segment", Seg(Pt(2, 5), Pt(2, 0)), true},
		{"end on supporting line", Seg(Pt(9, 5), Pt(9, 0)), true},
		{"crossing", Seg(Pt(2, 5), Pt(2, -5)), true},
		{"clear", Seg(Pt(2, 5), Pt(3, 1)), false},
		// Only the candidate's end is tested against the line.
		{"start on segment", Seg(Pt(2, 0), Pt(2, 5)), false},
		{"shared chain point", Seg(Pt(4, 0), Pt(6, 3)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intersects(existing, tt.candidate); got != tt.want {
				t.Errorf("Intersects(%v, %v) = %t, want %t", existing, tt.candidate, got, tt.want)
			}
		})
	}
}

func TestIntersectsAsymmetric(t *testing.T) {
	a := Seg(Pt(0, 0), Pt(4, 0))
	b := Seg(Pt(2, 5), Pt(2, 0))
	if !Intersects(a, b) {
		t.Errorf("%v should intersect %v", b, a)
	}
	// b's line is x=2, which a's end (4, 0) doesn't lie on.
	if Intersects(b, a) {
		t.Errorf("%v shouldn't intersect %v", a, b)
	}
}

func TestIntersectsAnchor(t *testing.T) {
	anchor := Segment{}
	for _, s := range []Segment{
		Seg(Pt(0, 0), Pt(5, 5)),
		Seg(Pt(-5, 0), Pt(5, 0)),
		Seg(Pt(3, 3), Pt(0, 0)),
	} {
		if Intersects(anchor, s) {
			t.Errorf("anchor shouldn't intersect %v", s)
		}
	}
}

func TestIntersectsClosed(t *testing.T) {
	tests := []struct {
		name string
		a, b Segment
		want bool
	}{
		{"x", Seg(Pt(0, 0), Pt(2, 2)), Seg(Pt(0, 2), Pt(2, 0)), true},
		{"parallel", Seg(Pt(0, 0), Pt(2, 0)), Seg(Pt(0, 1), Pt(2, 1)), false},
		{"touching end points", Seg(Pt(0, 0), Pt(2, 0)), Seg(Pt(2, 0), Pt(3, 5)), true},
		{"t junction on start", Seg(Pt(0, 0), Pt(4, 0)), Seg(Pt(2, 0), Pt(2, 5)), true},
		{"collinear overlap", Seg(Pt(0, 0), Pt(4, 0)), Seg(Pt(2, 0), Pt(6, 0)), true},
		{"collinear containment", Seg(Pt(0, 0), Pt(10, 0)), Seg(Pt(2, 0), Pt(6, 0)), true},
		{"collinear apart", Seg(Pt(0, 0), Pt(1, 0)), Seg(Pt(2, 0), Pt(6, 0)), false},
		{"point on segment", Seg(Pt(0, 0), Pt(4, 4)), Seg(Pt(1, 1), Pt(1, 1)), true},
		{"point off segment", Seg(Pt(0, 0), Pt(4, 4)), Seg(Pt(5, 5), Pt(5, 5)), false},
		{"equal points", Seg(Pt(1, 1), Pt(1, 1)), Seg(Pt(1, 1), Pt(1, 1)), true},
		{"beyond end on line", Seg(Pt(0, 0), Pt(4, 0)), Seg(Pt(9, 5), Pt(9, 0)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IntersectsClosed(tt.a, tt.b); got != tt.want {
				t.Errorf("got %t, want %t", got, tt.want)
			}
			if got := IntersectsClosed(tt.b, tt.a); got != tt.want {
				t.Errorf("swapped: got %t, want %t", got, tt.want)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	prev := Seg(Pt(0, 0), Pt(4, 0))
	tests := []struct {
		next Segment
		want bool
	}{
		{Seg(Pt(4, 0), Pt(2, 0)), true},
		{Seg(Pt(4, 0), Pt(-2, 0)), true},
		{Seg(Pt(4, 0), Pt(8, 0)), false},
		{Seg(Pt(4, 0), Pt(4, 3)), false},
		{Seg(Pt(4, 0), Pt(0, 1)), false},
	}
	for _, tt := range tests {
		if got := overlaps(prev, tt.next); got != tt.want {
			t.Errorf("overlaps(%v, %v) = %t, want %t", prev, tt.next, got, tt.want)
		}
	}
	if overlaps(Segment{}, Seg(Pt(0, 0), Pt(-3, 0))) {
		t.Error("the anchor can't be overlapped")
	}
}
