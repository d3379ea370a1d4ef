package randpath

import "fmt"

// Segment represents a directed line segment from Begin to End. A segment
// whose end points coincide is degenerate and describes a single point.
type Segment struct {
	Begin Point
	End   Point
}

// Seg returns the segment from p0 to p1.
func Seg(p0, p1 Point) Segment {
	return Segment{Begin: p0, End: p1}
}

func (s Segment) String() string {
	return fmt.Sprintf("%s→%s", s.Begin, s.End)
}

// Length returns the length of the segment. It is zero for degenerate
// segments.
func (s Segment) Length() float64 {
	return s.End.Sub(s.Begin).Hypot()
}

// IsDegenerate reports whether the segment has zero length.
func (s Segment) IsDegenerate() bool {
	return s.Begin == s.End
}

// SignedArea returns twice the signed area of the triangle a-b-c. The result
// is positive if the triangle is oriented counter-clockwise (in a y-up space),
// negative if it is oriented clockwise and zero if the points are collinear.
func SignedArea(a, b, c Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// PointOnLine reports whether p lies on the infinite line through s. It always
// reports false for degenerate segments, as they don't define a line.
//
// This is a line membership test, not a bounded one. Use [PointOnSegment] to
// test whether p lies between the segment's end points.
func PointOnLine(s Segment, p Point) bool {
	return s.Length() > 0 && SignedArea(s.Begin, s.End, p) == 0
}

// PointOnSegment reports whether p lies on s, including its end points. For a
// degenerate segment, this reports whether p equals the segment's only point.
func PointOnSegment(s Segment, p Point) bool {
	if SignedArea(s.Begin, s.End, p) != 0 {
		return false
	}
	return p.X >= min(s.Begin.X, s.End.X) && p.X <= max(s.Begin.X, s.End.X) &&
		p.Y >= min(s.Begin.Y, s.End.Y) && p.Y <= max(s.Begin.Y, s.End.Y)
}

// ProperlyCross reports whether the segments aBegin-aEnd and cBegin-cEnd cross
// transversally, that is, whether the end points of each segment lie strictly
// on opposite sides of the other segment's supporting line. Segments that only
// touch, or that overlap collinearly, don't cross properly.
func ProperlyCross(aBegin, aEnd, cBegin, cEnd Point) bool {
	abc := SignedArea(aBegin, aEnd, cBegin) * SignedArea(aBegin, aEnd, cEnd)
	cda := SignedArea(cBegin, cEnd, aBegin) * SignedArea(cBegin, cEnd, aEnd)
	return abc < 0 && cda < 0
}

// Intersects reports whether b intersects a, where a is a segment already
// placed and b is a new segment being attached to a path.
//
// The test is deliberately asymmetric: it reports true if b's end point lies
// on a's supporting line, or if the two segments cross properly. It does not
// test b's start point, which is shared with the previous segment of a path,
// nor a's end points against b. This is narrower than a general segment
// intersection test; see [IntersectsClosed] for that.
func Intersects(a, b Segment) bool {
	return PointOnLine(a, b.End) || ProperlyCross(a.Begin, a.End, b.Begin, b.End)
}

// IntersectsClosed reports whether the closed segments a and b share at least
// one point. Touching end points and collinear overlap count as intersections,
// and degenerate segments are treated as single points.
func IntersectsClosed(a, b Segment) bool {
	if ProperlyCross(a.Begin, a.End, b.Begin, b.End) {
		return true
	}
	return PointOnSegment(a, b.Begin) ||
		PointOnSegment(a, b.End) ||
		PointOnSegment(b, a.Begin) ||
		PointOnSegment(b, a.End)
}

// overlaps reports whether next folds back over prev, where next starts at
// prev's end. Segments meeting only in the shared point don't overlap.
func overlaps(prev, next Segment) bool {
	if SignedArea(prev.Begin, prev.End, next.End) != 0 {
		return false
	}
	return prev.End.Sub(prev.Begin).Dot(next.End.Sub(next.Begin)) < 0
}
