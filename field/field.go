// Package field turns a thick IslandPart into the 2D region §4.5 samples:
// a closed polygon (with synthetic chords at thin-neighbour transitions),
// its inward offset, and the outline/grid point emission over that offset.
//
// Grounded on original_source's PolygonUtils.cpp/LineUtils.cpp (edge
// classification, offset-edge-to-source-edge matching) and on the
// teacher's general "walk source segments, classify, rebuild a boundary"
// shape (the circuit-assembly idiom the teacher's district code used for
// turning raw cell edges into a walkable outline before it was adapted
// here).
package field

import (
	"math"

	"github.com/voidshard/slasupport/geom"
)

// Edge is one boundary edge of a thick field, tagged per §4.5 step 1:
// real outline edges are inner outlines, synthetic chords (inserted at a
// transition to a thin neighbour) are not.
type Edge struct {
	Line           geom.Line
	IsInnerOutline bool
}

// Field is the thick-part boundary before inward offset: a closed loop of
// classified edges (§4.5 step 1).
type Field struct {
	Edges []Edge
}

// NewField builds a Field from a closed loop of points and the set of
// edge indices that are synthetic chords (not real outline).
func NewField(loop []geom.Point, chordEdges map[int]bool) *Field {
	n := len(loop)
	edges := make([]Edge, n)
	for i := 0; i < n; i++ {
		l := geom.NewLine(loop[i], loop[(i+1)%n])
		edges[i] = Edge{Line: l, IsInnerOutline: !chordEdges[i]}
	}
	return &Field{Edges: edges}
}

// Polygon returns the field's boundary as a geom.Polygon.
func (f *Field) Polygon() *geom.Polygon {
	pts := make([]geom.Point, len(f.Edges))
	for i, e := range f.Edges {
		pts[i] = e.Line.A
	}
	return geom.NewPolygon(pts)
}

// InnerField is a Field after §4.5 step 2's inward offset: every edge
// still carries IsInnerOutline, propagated from its parallel source edge.
type InnerField struct {
	Edges []Edge
}

// InnerOffset implements §4.5 step 2: offset the boundary inward by delta
// and propagate IsInnerOutline from each source edge to its parallel
// offset edge. Every offset edge has a source edge (OffsetPolygonEdges
// always attributes one), so each flag is copied directly from it.
func (f *Field) InnerOffset(delta float64) *InnerField {
	offset := geom.OffsetPolygonEdges(f.Polygon(), delta)
	edges := make([]Edge, len(offset))
	for i, oe := range offset {
		src := f.Edges[oe.SourceEdge%len(f.Edges)]
		edges[i] = Edge{Line: oe.Line, IsInnerOutline: src.IsInnerOutline}
	}
	return &InnerField{Edges: edges}
}

// ExPolygon returns the inner field's boundary as an ExPolygon (no holes —
// a single thick part's field is always simply connected by construction;
// multiply-holed fields are assembled by the caller from several
// InnerFields).
func (f *InnerField) ExPolygon() *geom.ExPolygon {
	pts := make([]geom.Point, len(f.Edges))
	for i, e := range f.Edges {
		pts[i] = e.Line.A
	}
	return geom.NewExPolygon(geom.NewPolygon(pts), nil)
}

// OutlineSamples implements §4.5 step 3: walk the inner contour and emit
// points spaced by `spacing` along every contiguous run of
// IsInnerOutline==true edges. A contour that is entirely outline is
// treated as circular (the run wraps); otherwise each run is sampled
// independently as a linear sequence. Runs are scanned from edge 0 to edge
// n-1 without wrapping, so a run that crosses the end of the edge list back
// to edge 0 is sampled as two separate runs.
func (f *InnerField) OutlineSamples(spacing float64) []geom.Point {
	n := len(f.Edges)
	if n == 0 || spacing <= 0 {
		return nil
	}

	allOutline := true
	for _, e := range f.Edges {
		if !e.IsInnerOutline {
			allOutline = false
			break
		}
	}

	var out []geom.Point
	if allOutline {
		return sampleRun(f.Edges, spacing, true)
	}

	// find runs of IsInnerOutline==true, each as a linear sequence
	i := 0
	for i < n {
		if !f.Edges[i].IsInnerOutline {
			i++
			continue
		}
		j := i
		run := []Edge{}
		for j < n && f.Edges[j%n].IsInnerOutline {
			run = append(run, f.Edges[j%n])
			j++
			if j-i > n {
				break // safety: fully-wrapped run already handled above
			}
		}
		out = append(out, sampleRun(run, spacing, false)...)
		i = j
	}
	return out
}

func sampleRun(edges []Edge, spacing float64, circular bool) []geom.Point {
	if len(edges) == 0 {
		return nil
	}
	var out []geom.Point
	carry := 0.0
	for _, e := range edges {
		length := e.Line.Length()
		pos := spacing - carry
		for pos < length {
			out = append(out, e.Line.PointAt(pos/length))
			pos += spacing
		}
		carry = length - (pos - spacing)
	}
	if !circular && len(out) == 0 {
		out = append(out, edges[0].Line.A)
	}
	return out
}

// TriangularGrid implements §4.5 step 4: sample the ExPolygon's interior
// with a hex-centred triangular grid of the given spacing, centred on the
// contour centroid and rotated so the farthest contour vertex aligns with
// +X (rotation-invariant sampling for repeated-shape islands).
func TriangularGrid(ep *geom.ExPolygon, spacing float64) []geom.Point {
	if spacing <= 0 {
		return nil
	}
	center := ep.Contour.Centroid()

	farthest := center
	farDist := 0.0
	for _, p := range ep.Contour.Points {
		d := p.Dist(center)
		if d > farDist {
			farDist = d
			farthest = p
		}
	}
	theta := math.Atan2(float64(farthest.Y-center.Y), float64(farthest.X-center.X))
	cosT, sinT := math.Cos(-theta), math.Sin(-theta)

	toLocal := func(p geom.Point) (float64, float64) {
		x := float64(p.X - center.X)
		y := float64(p.Y - center.Y)
		return x*cosT - y*sinT, x*sinT + y*cosT
	}
	toWorld := func(x, y float64) geom.Point {
		wx := x*cosT + y*sinT
		wy := -x*sinT + y*cosT
		return geom.Point{X: center.X + geom.Coord(wx), Y: center.Y + geom.Coord(wy)}
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range ep.Contour.Points {
		x, y := toLocal(p)
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}

	rowHeight := spacing * math.Sqrt(3) / 2
	var out []geom.Point
	row := 0
	for y := minY; y <= maxY; y += rowHeight {
		offset := 0.0
		if row%2 == 1 {
			offset = spacing / 2
		}
		for x := minX + offset; x <= maxX; x += spacing {
			pt := toWorld(x, y)
			if ep.Contains(pt) {
				out = append(out, pt)
			}
		}
		row++
	}
	return out
}
