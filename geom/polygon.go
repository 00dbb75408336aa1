package geom

import (
	"math"
	"sort"

	"github.com/unixpickle/model3d/model2d"
)

// Polygon is a single closed contour. Orientation (CCW for outer contours,
// CW for holes) follows the convention documented on ExPolygon.
type Polygon struct {
	Points []Point
}

// NewPolygon constructs a Polygon from an ordered point list; the last point
// is assumed to connect back to the first.
func NewPolygon(pts []Point) *Polygon {
	return &Polygon{Points: pts}
}

// Lines returns the polygon's boundary as a closed sequence of Line segments.
func (p *Polygon) Lines() []Line {
	n := len(p.Points)
	if n < 2 {
		return nil
	}
	lines := make([]Line, n)
	for i := 0; i < n; i++ {
		lines[i] = Line{A: p.Points[i], B: p.Points[(i+1)%n]}
	}
	return lines
}

// Bounds returns the axis-aligned bounding box of the polygon's points.
func (p *Polygon) Bounds() Bounds {
	return BoundsOf(p.Points)
}

// SignedArea returns the polygon's signed area (positive for CCW, negative
// for CW), via the shoelace formula.
func (p *Polygon) SignedArea() float64 {
	area := 0.0
	n := len(p.Points)
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		area += float64(a.X)*float64(b.Y) - float64(b.X)*float64(a.Y)
	}
	return area / 2
}

// IsCCW reports whether the contour winds counter-clockwise.
func (p *Polygon) IsCCW() bool { return p.SignedArea() > 0 }

// Reverse reverses point order in place, flipping winding direction.
func (p *Polygon) Reverse() {
	for i, j := 0, len(p.Points)-1; i < j; i, j = i+1, j-1 {
		p.Points[i], p.Points[j] = p.Points[j], p.Points[i]
	}
}

// IsClosed reports whether the polygon has enough points to be meaningful.
// Mirrors the teacher's internal/voronoi/polygon.go IsClosed guard used
// before raycasting.
func (p *Polygon) IsClosed() bool {
	return len(p.Points) >= 3
}

// Contains reports whether pt lies inside the polygon using a raycast test.
// Adapted from the teacher's internal/voronoi/polygon.go (itself lifted from
// kellydunn/golang-geo), regeneralized from image.Point to our scaled Point.
func (p *Polygon) Contains(pt Point) bool {
	if !p.IsClosed() {
		return false
	}

	start := len(p.Points) - 1
	end := 0
	contains := p.intersectsWithRaycast(pt, p.Points[start], p.Points[end])
	for i := 1; i < len(p.Points); i++ {
		if p.intersectsWithRaycast(pt, p.Points[i-1], p.Points[i]) {
			contains = !contains
		}
	}
	return contains
}

func (p *Polygon) intersectsWithRaycast(point, start, end Point) bool {
	if start.Y > end.Y {
		start, end = end, start
	}

	for point.Y == start.Y || point.Y == end.Y {
		point.Y = Coord(math.Ceil(math.Nextafter(float64(point.Y), math.Inf(1))))
	}

	if point.Y < start.Y || point.Y > end.Y {
		return false
	}

	if start.X > end.X {
		if point.X > start.X {
			return false
		}
		if point.X < end.X {
			return true
		}
	} else {
		if point.X > end.X {
			return false
		}
		if point.X < start.X {
			return true
		}
	}

	raySlope := float64(point.Y-start.Y) / float64(point.X-start.X)
	diagSlope := float64(end.Y-start.Y) / float64(end.X-start.X)
	return raySlope >= diagSlope
}

// Centroid returns the area-weighted centroid of the polygon.
func (p *Polygon) Centroid() Point {
	cx, cy, area := 0.0, 0.0, 0.0
	n := len(p.Points)
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		cross := float64(a.X)*float64(b.Y) - float64(b.X)*float64(a.Y)
		cx += (float64(a.X) + float64(b.X)) * cross
		cy += (float64(a.Y) + float64(b.Y)) * cross
		area += cross
	}
	area /= 2
	if area == 0 {
		return p.Bounds().Center()
	}
	cx /= (6 * area)
	cy /= (6 * area)
	return Point{Coord(math.Round(cx)), Coord(math.Round(cy))}
}

// Mesh2D converts the polygon boundary into a model2d.Mesh of segments,
// skipping zero-length segments. The offset and field code does not go
// through it; offsetting is geom's own OffsetPolygonEdges.
func (p *Polygon) Mesh2D() *model2d.Mesh {
	mesh := model2d.NewMesh()
	n := len(p.Points)
	for i := 0; i < n; i++ {
		a := p.Points[i].Coord2D()
		b := p.Points[(i+1)%n].Coord2D()
		if a == b {
			continue
		}
		mesh.Add(&model2d.Segment{a, b})
	}
	return mesh
}

// PolygonFromMesh2D rebuilds a Polygon from a closed, ordered mesh segment
// chain (as produced by model2d polygon/offset operations).
func PolygonFromMesh2D(segs []*model2d.Segment) *Polygon {
	pts := make([]Point, 0, len(segs))
	for _, s := range segs {
		pts = append(pts, FromCoord2D(s[0]))
	}
	return NewPolygon(pts)
}

// SortBySize orders polygons by descending bounding-box area, then by
// lexicographic order of their first point — the deterministic tie-break
// spec.md §8 Invariant 1 requires for hole enumeration order.
func SortBySize(polys []*Polygon) {
	sort.SliceStable(polys, func(i, j int) bool {
		bi, bj := polys[i].Bounds(), polys[j].Bounds()
		ai := float64(bi.Width()) * float64(bi.Height())
		aj := float64(bj.Width()) * float64(bj.Height())
		if ai != aj {
			return ai > aj
		}
		if len(polys[i].Points) == 0 || len(polys[j].Points) == 0 {
			return len(polys[i].Points) > len(polys[j].Points)
		}
		pi, pj := polys[i].Points[0], polys[j].Points[0]
		if pi.X != pj.X {
			return pi.X < pj.X
		}
		return pi.Y < pj.Y
	})
}
