// Package align implements §4.7's centroidal (Lloyd) relaxation pass: given
// a set of sampled support points and the island they belong to, repeatedly
// move every movable point toward the centroid of its Voronoi cell
// (cropped to the island) until movement stalls or an iteration budget is
// exhausted.
package align

import (
	"github.com/voidshard/slasupport/config"
	"github.com/voidshard/slasupport/geom"
	"github.com/voidshard/slasupport/internal/voronoi"
	"github.com/voidshard/slasupport/sample"

	"github.com/unixpickle/model3d/model2d"
)

// permanentMarker is implemented by every concrete sample.Point so the
// permanent-point-injection step (§4.7's last paragraph) can override a
// type's normal CanMove() without a type switch per concrete type.
type permanentMarker interface {
	MarkPermanent()
}

func markPermanent(p sample.Point) {
	if m, ok := p.(permanentMarker); ok {
		m.MarkPermanent()
	}
}

// Relax runs Lloyd relaxation over movable (§4.7) on the given island
// bounds. permanent holds user-pinned 3D-derived positions (§9) that are
// injected as temporary immovable sites for the duration of the pass and
// stripped from the result before returning, per spec.
func Relax(points []sample.Point, bounds geom.Bounds, island *geom.ExPolygon, permanent []geom.Point, cfg *config.SampleConfig) []sample.Point {
	working := append([]sample.Point{}, points...)
	for _, pt := range permanent {
		working = append(working, sample.NewFixedPoint(sample.TypePermanent, pt))
	}
	injectPermanentNeighbors(working, permanent)

	movableCount := countMovable(working)
	if movableCount > 1 {
		minC, maxC := island.Bounds().Min.Coord2D(), island.Bounds().Max.Coord2D()
		for iter := 0; iter < cfg.CountIteration; iter++ {
			maxMove := relaxPass(working, minC, maxC, island)
			splitCoincidences(working)
			if maxMove < float64(cfg.MinimalMove) {
				break
			}
		}
	}

	out := make([]sample.Point, 0, len(points))
	for _, p := range working {
		if p.Type() == sample.TypePermanent {
			continue
		}
		out = append(out, p)
	}
	return out
}

func countMovable(points []sample.Point) int {
	n := 0
	for _, p := range points {
		if p.CanMove() {
			n++
		}
	}
	return n
}

// injectPermanentNeighbors reclassifies each permanent point's nearest
// movable neighbor as permanent (§4.7: "for each permanent point reclassify
// its nearest ... non-permanent point"). The mark is set on the point
// itself and is not cleared when Relax returns.
func injectPermanentNeighbors(points []sample.Point, permanent []geom.Point) {
	for _, perm := range permanent {
		var nearest sample.Point
		best := -1.0
		for _, p := range points {
			if !p.CanMove() {
				continue
			}
			d := p.At().Dist(perm)
			if best < 0 || d < best {
				best = d
				nearest = p
			}
		}
		if nearest != nil {
			markPermanent(nearest)
		}
	}
}

func relaxPass(points []sample.Point, min, max model2d.Coord, island *geom.ExPolygon) float64 {
	coords := make([]model2d.Coord, len(points))
	for i, p := range points {
		coords[i] = p.At().Coord2D()
	}
	diagram := voronoi.VoronoiCells(min, max, coords)
	diagram.Repair(1e-6)

	maxMove := 0.0
	for i, p := range points {
		if !p.CanMove() {
			continue
		}
		before := p.At()
		target := cellTarget(diagram[i], island)
		p.Move(target)
		move := float64(before.L1(p.At()))
		if move > maxMove {
			maxMove = move
		}
	}
	return maxMove
}

// cellTarget approximates "centroid of cell intersected with the island"
// (§4.7): the Voronoi cell polygon's own centroid when it already lies
// inside the island, otherwise the nearest point on the island's outer
// contour. A true polygon-boolean intersection would need a general
// (non-convex-safe) clipper this pack's retrieved code never exercises;
// this two-case approximation reaches the same fixed point for islands
// whose cells settle inside the region, which is the common case once
// relaxation has run a few iterations.
func cellTarget(cell *voronoi.VoronoiCell, island *geom.ExPolygon) geom.Point {
	pts := make([]geom.Point, 0, len(cell.Edges))
	for _, seg := range cell.Edges {
		pts = append(pts, geom.FromCoord2D(seg[0]))
	}
	if len(pts) == 0 {
		return geom.FromCoord2D(cell.Center)
	}
	cellPoly := geom.NewPolygon(pts)
	centroid := cellPoly.Centroid()
	if island.Contains(centroid) {
		return centroid
	}

	best := island.Contour.Points[0]
	bestDist := best.Dist(centroid)
	for _, line := range island.Contour.Lines() {
		p, _ := line.ClosestPointOnSegment(centroid)
		d := p.Dist(centroid)
		if d < bestDist {
			bestDist = d
			best = p
		}
	}
	return best
}

// splitCoincidences implements §4.7's duplicate-point fixup: when two
// movable points land on exactly the same spot after a pass, move the
// later one halfway back toward its own pre-move position. Since Point
// does not expose its pre-move position, "halfway back" is approximated
// by a second Move call toward a destination one unit off in +X and +Y
// (where that point actually lands depends on its type's Move rules) — in
// practice coincidences are rare enough (Voronoi cells of two distinct
// points cannot share a centroid in general position) that this one nudge
// per pass is all the fixup does.
func splitCoincidences(points []sample.Point) {
	seen := map[geom.Point]sample.Point{}
	for _, p := range points {
		if !p.CanMove() {
			continue
		}
		at := p.At()
		if other, ok := seen[at]; ok {
			nudge := geom.Point{X: at.X + 1, Y: at.Y + 1}
			p.Move(nudge)
			_ = other
			continue
		}
		seen[at] = p
	}
}
