// Package randpath generates random, self-avoiding polygonal paths in the
// plane: chains of line segments in which no new segment crosses or touches
// the segments placed before it.
//
// # Geometry
//
// [Point], [Vec2] and [Segment] are plain values. The predicates
// [SignedArea], [PointOnLine], [PointOnSegment], [ProperlyCross],
// [Intersects] and [IntersectsClosed] are total functions without side
// effects. Points sampled by a [Generator] have integer coordinates, which
// makes all predicates exact.
//
// # Generating paths
//
// A [Generator] grows a single path by rejection sampling. It draws a random
// end point from its [Region], forms a candidate segment starting at the end
// of the path, and accepts the candidate only if it is short enough and
// doesn't intersect any segment of the path. Accepted segments are produced
// one at a time, either by calling [Generator.Next] or by ranging over
// [Generator.All]:
//
//	g := randpath.New(randpath.Config{MaxLength: 50})
//	for seg := range g.All() {
//		draw(seg)
//	}
//
// The sequence is infinite. Consumers decide when to stop pulling segments.
//
// # Termination
//
// Rejection sampling in a bounded region has no guaranteed termination: as
// the path fills the region, the probability of accepting a candidate tends
// towards zero. [Generator.Next] keeps trying indefinitely.
// [Generator.NextWithin] and [Generator.Within] impose an attempt budget for
// callers that need an upper bound on the work per segment.
//
// # Intersection tests
//
// By default, candidates are checked with [Intersects], which only tests
// whether the candidate's end point lies on the supporting line of an
// existing segment, or whether the two cross properly. This is not a complete
// segment intersection test, but it is the behavior paths have always been
// generated with. Setting [Config.Strict] selects [IntersectsClosed] instead,
// producing paths that never touch themselves at all.
//
// # Drawing
//
// [Elements] turns produced segments into MoveTo and LineTo commands for
// renderers, and [SVG] and [WriteSVG] format those commands as SVG path data.
package randpath
