package sample

import (
	"github.com/voidshard/slasupport/config"
	"github.com/voidshard/slasupport/field"
	"github.com/voidshard/slasupport/geom"
)

// SampleThickPart implements §4.5's final steps: sample the inner field's
// outline runs (restricted OutlinePoints) and its interior (free-moving
// InnerPoints on a triangular grid), after the caller has already built
// inner via field.Field.InnerOffset. circular controls whether the outline
// restriction wraps (true when the whole field boundary is inner-outline,
// §4.5 step 1's common case for an isolated thick island).
func SampleThickPart(inner *field.InnerField, cfg *config.SampleConfig, circular bool) []Point {
	var points []Point

	lines := make([]geom.Line, len(inner.Edges))
	for i, e := range inner.Edges {
		lines[i] = e.Line
	}
	restriction := NewRestriction(lines, circular)

	// Spacings stay in the same scaled units as inner.Edges' Line lengths
	// (geom.Line.Length() over scaled Points), not millimeters.
	spacing := float64(cfg.ThickOutlineMaxDistance)
	for _, pos := range sampleOutlinePositions(inner, spacing) {
		points = append(points, NewOutlinePoint(TypeThickPartOutline, pos, restriction))
	}

	ep := inner.ExPolygon()
	gridSpacing := float64(cfg.ThickInnerMaxDistance)
	for _, pt := range field.TriangularGrid(ep, gridSpacing) {
		points = append(points, NewInnerPoint(TypeThickPartInner, pt, geom.ExPolygons{ep}))
	}

	if len(points) == 0 {
		// degenerate field (too small to hold a single grid/outline sample):
		// fall back to the inner region's single centroid point.
		points = append(points, NewFixedPoint(TypeOneCenter, ep.Contour.Centroid()))
	}
	return points
}

// sampleOutlinePositions walks inner's edges and returns an
// OutlinePosition for every outline-run sample field.OutlineSamples would
// emit, but addressed by (line index, ratio) instead of a raw point, so
// the resulting OutlinePoint can restrict later movement to the same
// lines. One difference: a non-wrapping run too short to hold a sample
// yields no position here, where OutlineSamples emits the run's start
// point.
func sampleOutlinePositions(inner *field.InnerField, spacing float64) []OutlinePosition {
	n := len(inner.Edges)
	if n == 0 || spacing <= 0 {
		return nil
	}

	emit := func(edges []field.Edge, indices []int) []OutlinePosition {
		var out []OutlinePosition
		carry := 0.0
		for k, e := range edges {
			length := e.Line.Length()
			pos := spacing - carry
			for pos < length {
				out = append(out, OutlinePosition{Index: indices[k], Ratio: pos / length})
				pos += spacing
			}
			carry = length - (pos - spacing)
		}
		return out
	}

	allOutline := true
	for _, e := range inner.Edges {
		if !e.IsInnerOutline {
			allOutline = false
			break
		}
	}
	if allOutline {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return emit(inner.Edges, idx)
	}

	var out []OutlinePosition
	i := 0
	for i < n {
		if !inner.Edges[i].IsInnerOutline {
			i++
			continue
		}
		j := i
		var run []field.Edge
		var idx []int
		for j < n && inner.Edges[j%n].IsInnerOutline && j-i <= n {
			run = append(run, inner.Edges[j%n])
			idx = append(idx, j%n)
			j++
		}
		out = append(out, emit(run, idx)...)
		i = j
	}
	return out
}
