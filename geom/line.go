package geom

import "math"

// Line is a directed segment from A to B, the basic unit fed to Voronoi
// construction (§4.1 builds a VD over "the island as a list of line
// segments").
type Line struct {
	A, B Point
}

// NewLine constructs a Line.
func NewLine(a, b Point) Line { return Line{A: a, B: b} }

// Length returns the Euclidean length of the line.
func (l Line) Length() float64 {
	return l.A.Dist(l.B)
}

// Vector returns B-A as a float64 pair.
func (l Line) Vector() (dx, dy float64) {
	return float64(l.B.X - l.A.X), float64(l.B.Y - l.A.Y)
}

// Direction returns the unit vector from A to B. Returns (0,0) for a
// zero-length line.
func (l Line) Direction() (dx, dy float64) {
	vx, vy := l.Vector()
	n := math.Hypot(vx, vy)
	if n == 0 {
		return 0, 0
	}
	return vx / n, vy / n
}

// Normal returns the left-hand unit normal of the line (rotate direction by
// +90 degrees), used to find the supporting-line side for parabola
// directrices (§3).
func (l Line) Normal() (nx, ny float64) {
	dx, dy := l.Direction()
	return -dy, dx
}

// Reversed returns the line with its endpoints swapped.
func (l Line) Reversed() Line { return Line{A: l.B, B: l.A} }

// PointAt returns the point at ratio t in [0,1] along the line.
func (l Line) PointAt(t float64) Point {
	return l.A.Lerp(l.B, t)
}

// DistanceToPoint returns the perpendicular distance from p to the infinite
// line through A,B. Used throughout §4.1 to compute neighbor min/max widths
// (twice the distance from a VG edge to its generating site).
func (l Line) DistanceToPoint(p Point) float64 {
	vx, vy := l.Vector()
	length := math.Hypot(vx, vy)
	if length == 0 {
		return p.Dist(l.A)
	}
	// cross product magnitude / length
	wx := float64(p.X - l.A.X)
	wy := float64(p.Y - l.A.Y)
	cross := vx*wy - vy*wx
	return math.Abs(cross) / length
}

// ClosestPointOnSegment returns the closest point to p that lies on the
// bounded segment [A,B], along with the ratio t in [0,1] at which it occurs.
func (l Line) ClosestPointOnSegment(p Point) (Point, float64) {
	vx, vy := l.Vector()
	length2 := vx*vx + vy*vy
	if length2 == 0 {
		return l.A, 0
	}
	wx := float64(p.X - l.A.X)
	wy := float64(p.Y - l.A.Y)
	t := (wx*vx + wy*vy) / length2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return l.PointAt(t), t
}

// Intersect returns the intersection point of the infinite lines through l
// and o, and whether one exists (false if parallel).
func (l Line) Intersect(o Line) (Point, bool) {
	x1, y1 := float64(l.A.X), float64(l.A.Y)
	x2, y2 := float64(l.B.X), float64(l.B.Y)
	x3, y3 := float64(o.A.X), float64(o.A.Y)
	x4, y4 := float64(o.B.X), float64(o.B.Y)

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if math.Abs(denom) < 1e-9 {
		return Point{}, false
	}

	a := x1*y2 - y1*x2
	b := x3*y4 - y3*x4
	px := (a*(x3-x4) - (x1-x2)*b) / denom
	py := (a*(y3-y4) - (y1-y2)*b) / denom
	return Point{Coord(math.Round(px)), Coord(math.Round(py))}, true
}

// CircleSegmentIntersect finds where a boundary segment crosses the circle
// of a given radius around center. Used by overhang point discretization
// (§4.10): "the circle-line intersection at discretize_overhang_step radius
// from the previous sample".
//
// Returns the intersection of the segment l with the circle of the given
// radius centered at center, preferring the intersection further along l
// (i.e. closer to l.B) so arc walks make forward progress. ok is false when
// the segment does not reach the circle.
func CircleSegmentIntersect(l Line, center Point, radius float64) (Point, bool) {
	x1, y1 := float64(l.A.X-center.X), float64(l.A.Y-center.Y)
	x2, y2 := float64(l.B.X-center.X), float64(l.B.Y-center.Y)
	dx, dy := x2-x1, y2-y1
	dr2 := dx*dx + dy*dy
	if dr2 == 0 {
		return Point{}, false
	}
	D := x1*y2 - x2*y1
	disc := radius*radius*dr2 - D*D
	if disc < 0 {
		return Point{}, false
	}
	sqrtDisc := math.Sqrt(disc)
	signDy := 1.0
	if dy < 0 {
		signDy = -1.0
	}

	// Two candidate solutions; choose the one with the larger parametric t
	// along the segment so arc walks make forward progress.
	bestT := math.Inf(-1)
	var best Point
	found := false
	for _, s := range []float64{1, -1} {
		px := (D*dy + s*signDy*dx*sqrtDisc) / dr2
		py := (-D*dx + s*math.Abs(dy)*sqrtDisc) / dr2

		var t float64
		if math.Abs(dx) >= math.Abs(dy) {
			t = (px - x1) / dx
		} else {
			t = (py - y1) / dy
		}
		if t < -1e-9 || t > 1+1e-9 {
			continue
		}
		if t > bestT {
			bestT = t
			best = Point{center.X + Coord(math.Round(px)), center.Y + Coord(math.Round(py))}
			found = true
		}
	}
	return best, found
}
