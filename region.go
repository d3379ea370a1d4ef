package randpath

import (
	"fmt"
	"math/rand/v2"
)

// Region is an axis-aligned rectangle of integer coordinates, inclusive of its
// bounds. It describes where a [Generator] samples new points.
type Region struct {
	X0, Y0 int
	X1, Y1 int
}

// DefaultRegion is the square [-200, 200]×[-200, 200].
var DefaultRegion = Region{-200, -200, 200, 200}

// Square returns the region [-r, r]×[-r, r].
func Square(r int) Region {
	return Region{-r, -r, r, r}.Abs()
}

func (r Region) String() string {
	return fmt.Sprintf("[%d, %d]×[%d, %d]", r.X0, r.X1, r.Y0, r.Y1)
}

// Abs returns a new region with the same extents as r, but ensuring that
// X0 <= X1 and Y0 <= Y1.
func (r Region) Abs() Region {
	return Region{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

func (r Region) MinX() int { return min(r.X0, r.X1) }
func (r Region) MaxX() int { return max(r.X0, r.X1) }
func (r Region) MinY() int { return min(r.Y0, r.Y1) }
func (r Region) MaxY() int { return max(r.Y0, r.Y1) }

// Width returns the number of distinct x coordinates minus one.
func (r Region) Width() int { return r.MaxX() - r.MinX() }

// Height returns the number of distinct y coordinates minus one.
func (r Region) Height() int { return r.MaxY() - r.MinY() }

// Diagonal returns the length of the region's diagonal. No segment between two
// points of the region is longer than this.
func (r Region) Diagonal() float64 {
	return Vec(float64(r.Width()), float64(r.Height())).Hypot()
}

// Contains reports whether pt lies inside the region, including its edges.
func (r Region) Contains(pt Point) bool {
	return pt.X >= float64(r.MinX()) && pt.X <= float64(r.MaxX()) &&
		pt.Y >= float64(r.MinY()) && pt.Y <= float64(r.MaxY())
}

// Sample returns a point whose coordinates are drawn independently and
// uniformly from the region's integer coordinates.
func (r Region) Sample(rng *rand.Rand) Point {
	x := r.MinX() + rng.IntN(r.Width()+1)
	y := r.MinY() + rng.IntN(r.Height()+1)
	return Pt(float64(x), float64(y))
}
