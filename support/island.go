package support

import (
	"github.com/pkg/errors"

	"github.com/voidshard/slasupport/align"
	"github.com/voidshard/slasupport/config"
	"github.com/voidshard/slasupport/field"
	"github.com/voidshard/slasupport/geom"
	"github.com/voidshard/slasupport/graph"
	"github.com/voidshard/slasupport/sample"
)

// SampleIsland implements §4.1-§4.7 end to end for one island with no
// inherited supports: build the skeleton graph, extract its longest path,
// partition by width, sample each part, then Lloyd-relax the combined
// result. permanent holds the 2D positions of permanent support points
// (Generate passes the user-pinned ones) that new points must not collide
// with but which are not themselves part of the island's own output.
//
// The only error this returns is ErrInvariantViolated (§7's
// Internal-invariant-violated class), wrapped with the text of
// graph.Partition's error; that error itself (graph.ErrCenterNotFound) is
// not in the chain, so errors.Is finds only ErrInvariantViolated. Every
// other path is infallible.
func SampleIsland(ep *geom.ExPolygon, cfg *config.SampleConfig, permanent []geom.Point) ([]sample.Point, error) {
	g := BuildGraph(ep, geom.UnscaleMM(cfg.SimplificationTolerance*4))
	if g == nil || len(g.Nodes) == 0 {
		return []sample.Point{sample.NewFixedPoint(sample.TypeBadShapeForVD, ep.Contour.Centroid())}, nil
	}

	start := leafOrFirst(g)
	path := graph.LongestPath(start)

	if shortcut, ok := sample.Shortcut(ep.Bounds(), *path, maxPathWidth(path), cfg); ok {
		return shortcut, nil
	}

	parts, err := graph.Partition(path.Path, cfg)
	if err != nil {
		return nil, errors.Wrapf(ErrInvariantViolated, "partitioning island: %v", err)
	}

	var points []sample.Point
	for i, part := range parts {
		switch part.Type {
		case graph.Thin:
			isChangeStart := i > 0
			isLoopEnd := i == len(parts)-1
			points = append(points, sample.SampleThinPart(part, cfg, isChangeStart, isLoopEnd)...)
		default:
			points = append(points, sampleThickIslandPart(ep, part, cfg)...)
		}
	}
	if len(points) < 3 {
		points = sample.TwoPointsBackup(points, path.Path, cfg)
	}

	return align.Relax(points, ep.Bounds(), ep, permanent, cfg), nil
}

func maxPathWidth(path *graph.ExPath) geom.Coord {
	var max geom.Coord
	for _, n := range path.Nodes {
		for _, nb := range n.Neighbors {
			if nb.MaxWidth() > max {
				max = nb.MaxWidth()
			}
		}
	}
	return max
}

// sampleThickIslandPart builds a thick field (§4.5) for part and runs
// §4.5-4.6's outline/inner grid sampling over it.
//
// Simplification: when an island partitions into several parts (e.g. the
// two-circles-plus-neck case of §8), the field's source loop is still the
// whole island's outer contour rather than the exact sub-boundary of this
// one thick part — no general polygon-split routine is available anywhere
// in the retrieved examples to carve an exact sub-region out of a
// partitioned skeleton path. For the common single-part-per-island case
// (the large majority of real prints) this is exact; for genuinely
// multi-part thick islands it over-samples the shared boundary once per
// thick part, which align.Relax's subsequent Lloyd pass smooths out.
func sampleThickIslandPart(ep *geom.ExPolygon, part *graph.IslandPart, cfg *config.SampleConfig) []sample.Point {
	f := field.NewField(ep.Contour.Points, nil)
	inner := f.InnerOffset(float64(cfg.MinimalDistanceFromOutline))
	circular := true
	return sample.SampleThickPart(inner, cfg, circular)
}
