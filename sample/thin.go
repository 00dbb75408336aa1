package sample

import (
	"sort"

	"github.com/voidshard/slasupport/config"
	"github.com/voidshard/slasupport/graph"
)

// SampleThinPart implements §4.4: starting at the part's centre Position,
// advance outward in both directions along the part's VG and emit a
// CenterPoint every ThinMaxDistance of arc length, restricted to the
// skeleton (graph.Position). isChangeStart marks the point nearest the
// part's start boundary as continuing from a thick neighbour
// (TypeThinPartChange instead of TypeThinPart, mirroring original_source's
// "together with change to thick part of island") when that point falls
// within half a spacing of the boundary; isLoopEnd marks the point nearest
// the part's end as closing a cycle back into itself (TypeThinPartLoop)
// under the same half-spacing budget rule.
//
// IslandParts built outside graph.Partition (no centre recorded, e.g. test
// fixtures constructed directly) fall back to the older forward-from-
// Nodes[0] walk so existing direct-construction callers keep working. That
// walk applies no half-spacing check: it marks the first emitted point
// TypeThinPartChange whenever isChangeStart is set and the last one
// TypeThinPartLoop whenever isLoopEnd is set.
func SampleThinPart(part *graph.IslandPart, cfg *config.SampleConfig, isChangeStart, isLoopEnd bool) []Point {
	nodes := part.Nodes
	if len(nodes) < 2 {
		if len(nodes) == 1 {
			return []Point{NewFixedPoint(TypeOneCenter, nodes[0].At)}
		}
		return nil
	}

	// nb.Length() is in scaled units (geom.Line.Length() over scaled
	// Points), so the step must stay in the same scaled units rather than
	// being converted to millimeters.
	step := float64(cfg.ThinMaxDistance)
	if step <= 0 {
		step = 1
	}

	if !part.HasCenter {
		return sampleThinPartFromStart(nodes, step, isChangeStart, isLoopEnd)
	}
	return sampleThinPartFromCenter(part, nodes, step, isChangeStart, isLoopEnd)
}

// sampleThinPartFromCenter implements the centre-anchored walk §4.4
// specifies: first the centre itself, then outward both ways every step,
// never closer than half a spacing to an already-placed point.
func sampleThinPartFromCenter(part *graph.IslandPart, nodes []*graph.Node, step float64, isChangeStart, isLoopEnd bool) []Point {
	half := step / 2
	center := part.Length / 2

	var dists []float64
	dists = append(dists, center)
	for d := center - step; d > half; d -= step {
		dists = append(dists, d)
	}
	for d := center + step; d < part.Length-half; d += step {
		dists = append(dists, d)
	}
	sort.Float64s(dists)

	var points []Point
	for _, d := range dists {
		pos, ok := positionAtPartDistance(nodes, d)
		if !ok {
			continue
		}
		points = append(points, NewCenterPoint(TypeThinPart, pos))
	}
	if len(points) == 0 {
		mid := len(nodes) / 2
		return []Point{NewFixedPoint(TypeOneCenter, nodes[mid].At)}
	}

	if isChangeStart && dists[0] < half {
		points[0].(*CenterPoint).PointType = TypeThinPartChange
	}
	if isLoopEnd && part.Length-dists[len(dists)-1] < half {
		points[len(points)-1].(*CenterPoint).PointType = TypeThinPartLoop
	}
	return points
}

// sampleThinPartFromStart is the forward-from-Nodes[0] walk used when a
// part carries no centre Position.
func sampleThinPartFromStart(nodes []*graph.Node, step float64, isChangeStart, isLoopEnd bool) []Point {
	var points []Point
	carry := 0.0
	emitted := 0
	lastIdx := len(nodes) - 2

	for i := 0; i < len(nodes)-1; i++ {
		a, b := nodes[i], nodes[i+1]
		nb, found := neighborTo(a, b)
		if !found {
			continue
		}
		length := nb.Length()
		pos := step - carry
		for pos < length {
			ratio := pos / length
			t := TypeThinPart
			if emitted == 0 && isChangeStart {
				t = TypeThinPartChange
			}
			points = append(points, NewCenterPoint(t, graph.Position{From: a, To: b, Edge: nb, Ratio: ratio}))
			emitted++
			pos += step
		}
		carry = length - (pos - step)

		if i == lastIdx && isLoopEnd && emitted > 0 {
			last := points[len(points)-1].(*CenterPoint)
			last.PointType = TypeThinPartLoop
		}
	}

	if len(points) == 0 {
		// part shorter than one sample step: fall back to its midpoint
		mid := len(nodes) / 2
		points = append(points, NewFixedPoint(TypeOneCenter, nodes[mid].At))
	}
	return points
}

// positionAtPartDistance walks nodes' real Neighbor edges and returns the
// Position at the given cumulative arc-length distance from nodes[0].
func positionAtPartDistance(nodes []*graph.Node, dist float64) (graph.Position, bool) {
	if len(nodes) < 2 {
		return graph.Position{}, false
	}
	if dist <= 0 {
		a, b := nodes[0], nodes[1]
		nb, ok := neighborTo(a, b)
		if !ok {
			return graph.Position{}, false
		}
		return graph.Position{From: a, To: b, Edge: nb, Ratio: 0}, true
	}

	acc := 0.0
	for i := 0; i < len(nodes)-1; i++ {
		a, b := nodes[i], nodes[i+1]
		nb, ok := neighborTo(a, b)
		if !ok {
			continue
		}
		length := nb.Length()
		if acc+length >= dist {
			ratio := 0.0
			if length > 0 {
				ratio = (dist - acc) / length
			}
			if ratio > 1 {
				ratio = 1
			}
			return graph.Position{From: a, To: b, Edge: nb, Ratio: ratio}, true
		}
		acc += length
	}
	a, b := nodes[len(nodes)-2], nodes[len(nodes)-1]
	nb, ok := neighborTo(a, b)
	if !ok {
		return graph.Position{}, false
	}
	return graph.Position{From: a, To: b, Edge: nb, Ratio: 1}, true
}
