// Package support is the top-level entry point: it turns a stack of 2D
// island/ExPolygon layers into placed support points, wiring together
// internal/voronoi's skeleton construction, graph's longest-path/
// partition, field/sample's per-island point emission, align's Lloyd
// relaxation, and layer's cross-layer propagation.
package support

import (
	"github.com/unixpickle/model3d/model2d"

	"github.com/voidshard/slasupport/geom"
	"github.com/voidshard/slasupport/graph"
	"github.com/voidshard/slasupport/internal/voronoi"
)

func toCoords(pts []geom.Point) []model2d.Coord {
	out := make([]model2d.Coord, len(pts))
	for i, p := range pts {
		out[i] = p.Coord2D()
	}
	return out
}

func nearestBoundaryDist(ep *geom.ExPolygon, pt geom.Point) float64 {
	best := -1.0
	for _, l := range ep.Lines() {
		closest, _ := l.ClosestPointOnSegment(pt)
		d := closest.Dist(pt)
		if best < 0 || d < best {
			best = d
		}
	}
	if best < 0 {
		return 0
	}
	return best
}

// BuildGraph implements §4.1: construct the skeleton graph of an island's
// boundary via internal/voronoi.BuildSkeleton, then lift each skeleton
// edge into a graph.Node/Neighbor pair. A node's Distance (and therefore
// each incident edge's min/max width) is its distance to the island's own
// boundary rather than to the two Voronoi-cell generators the skeleton
// edge descends from — internal/voronoi.SkeletonEdge only fills SiteA,
// not SiteB (the generator info needed for a direct width calculation), so
// this recomputes width directly against the boundary instead, which is
// exact rather than an approximation.
func BuildGraph(ep *geom.ExPolygon, stepMM float64) *graph.Graph {
	step := geom.ScaleMM(stepMM)
	loops := [][]model2d.Coord{toCoords(ep.Contour.Points)}
	for _, h := range ep.Holes {
		loops = append(loops, toCoords(h.Points))
	}

	bounds := ep.Bounds().Expand(step)
	edges := voronoi.BuildSkeleton(
		loops, float64(step),
		bounds.Min.Coord2D(), bounds.Max.Coord2D(),
		func(c model2d.Coord) bool { return ep.Contains(geom.FromCoord2D(c)) },
	)
	if len(edges) == 0 {
		return nil
	}

	g := graph.NewGraph()
	nodes := map[model2d.Coord]*graph.Node{}
	id := 0
	get := func(c model2d.Coord) *graph.Node {
		if n, ok := nodes[c]; ok {
			return n
		}
		pt := geom.FromCoord2D(c)
		n := g.AddNode(id, pt, nearestBoundaryDist(ep, pt))
		id++
		nodes[c] = n
		return n
	}

	seen := map[[2]model2d.Coord]bool{}
	for _, e := range edges {
		key := [2]model2d.Coord{e.A, e.B}
		if e.B.X < e.A.X || (e.B.X == e.A.X && e.B.Y < e.A.Y) {
			key = [2]model2d.Coord{e.B, e.A}
		}
		if seen[key] {
			continue
		}
		seen[key] = true

		a, b := get(e.A), get(e.B)
		minW, maxW := 2*a.Distance, 2*b.Distance
		if minW > maxW {
			minW, maxW = maxW, minW
		}
		g.Connect(a, b, graph.NeighborSize{
			Length:   e.A.Dist(e.B),
			MinWidth: geom.Coord(minW),
			MaxWidth: geom.Coord(maxW),
		})
	}
	return g
}

// leafOrFirst returns any leaf node of g (a dead end, the natural path
// start per §4.2), falling back to the first node when the skeleton is a
// pure cycle with no leaves (e.g. an annular island).
func leafOrFirst(g *graph.Graph) *graph.Node {
	for _, n := range g.Nodes {
		if n.Leaf() {
			return n
		}
	}
	if len(g.Nodes) == 0 {
		return nil
	}
	return g.Nodes[0]
}
