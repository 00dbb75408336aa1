// Package geom holds scaled fixed-point 2D primitives used throughout the
// support sampling pipeline: points, lines, parabolas and polygons.
//
// All lengths are integer "scaled" coordinates unless explicitly marked as
// float64 (area, arc length, ratios). One scaled unit is one nanometer;
// ScaleMM/UnscaleMM convert to/from millimeters, matching the convention of
// the slicer this engine feeds into.
package geom

import (
	"math"

	"github.com/unixpickle/model3d/model2d"
)

// ScaleFactor converts millimeters into scaled integer units.
const ScaleFactor = 1_000_000.0

// Coord is a scaled fixed-point 1D length or coordinate.
type Coord = int64

// ScaleMM converts a millimeter value into scaled Coord units.
func ScaleMM(mm float64) Coord {
	return Coord(math.Round(mm * ScaleFactor))
}

// UnscaleMM converts a Coord back into millimeters.
func UnscaleMM(c Coord) float64 {
	return float64(c) / ScaleFactor
}

// Point is an integer-coordinate 2D point.
type Point struct {
	X, Y Coord
}

// Pt constructs a Point.
func Pt(x, y Coord) Point { return Point{X: x, Y: y} }

// Coord2D returns the model2d.Coord equivalent of this point, the substrate
// used for all non-integer geometric computation (mesh boolean ops, offsets,
// nearest-neighbor trees).
func (p Point) Coord2D() model2d.Coord {
	return model2d.Coord{X: float64(p.X), Y: float64(p.Y)}
}

// FromCoord2D builds a Point from a model2d.Coord, rounding to the nearest
// scaled integer.
func FromCoord2D(c model2d.Coord) Point {
	return Point{X: Coord(math.Round(c.X)), Y: Coord(math.Round(c.Y))}
}

// Add returns p+o.
func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }

// Sub returns p-o.
func (p Point) Sub(o Point) Point { return Point{p.X - o.X, p.Y - o.Y} }

// Scale multiplies both coordinates by f.
func (p Point) Scale(f float64) Point {
	return Point{Coord(math.Round(float64(p.X) * f)), Coord(math.Round(float64(p.Y) * f))}
}

// Dist returns the Euclidean distance between p and o.
func (p Point) Dist(o Point) float64 {
	dx := float64(p.X - o.X)
	dy := float64(p.Y - o.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// DistSq returns the squared Euclidean distance, avoiding the sqrt when only
// comparisons are needed.
func (p Point) DistSq(o Point) float64 {
	dx := float64(p.X - o.X)
	dy := float64(p.Y - o.Y)
	return dx*dx + dy*dy
}

// Lerp linearly interpolates between p and o at ratio t in [0,1].
func (p Point) Lerp(o Point, t float64) Point {
	return Point{
		X: Coord(math.Round(float64(p.X) + t*float64(o.X-p.X))),
		Y: Coord(math.Round(float64(p.Y) + t*float64(o.Y-p.Y))),
	}
}

// Equal reports exact coordinate equality.
func (p Point) Equal(o Point) bool { return p.X == o.X && p.Y == o.Y }

// L1 returns the Manhattan distance between p and o, used by the outline
// restriction move() bookkeeping (original_source measures move distance in
// Manhattan terms for SupportOutlineIslandPoint).
func (p Point) L1(o Point) Coord {
	dx := p.X - o.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - o.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Bounds is an axis-aligned bounding box in scaled coordinates.
type Bounds struct {
	Min, Max Point
}

// BoundsOf returns the bounding box containing every given point.
func BoundsOf(pts []Point) Bounds {
	if len(pts) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		if p.X < b.Min.X {
			b.Min.X = p.X
		}
		if p.Y < b.Min.Y {
			b.Min.Y = p.Y
		}
		if p.X > b.Max.X {
			b.Max.X = p.X
		}
		if p.Y > b.Max.Y {
			b.Max.Y = p.Y
		}
	}
	return b
}

// Width of the bounding box.
func (b Bounds) Width() Coord { return b.Max.X - b.Min.X }

// Height of the bounding box.
func (b Bounds) Height() Coord { return b.Max.Y - b.Min.Y }

// Center returns the midpoint of the bounding box.
func (b Bounds) Center() Point {
	return Point{(b.Min.X + b.Max.X) / 2, (b.Min.Y + b.Max.Y) / 2}
}

// FitsSquare reports whether both sides of the box are <= side.
func (b Bounds) FitsSquare(side Coord) bool {
	return b.Width() <= side && b.Height() <= side
}

// Contains reports whether p lies within (inclusive) the box.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Expand returns a copy of b grown by delta on every side.
func (b Bounds) Expand(delta Coord) Bounds {
	return Bounds{
		Min: Point{b.Min.X - delta, b.Min.Y - delta},
		Max: Point{b.Max.X + delta, b.Max.Y + delta},
	}
}
