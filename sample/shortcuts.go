package sample

import (
	"github.com/voidshard/slasupport/config"
	"github.com/voidshard/slasupport/geom"
	"github.com/voidshard/slasupport/graph"
)

// Shortcut implements §4.6's small-island fast paths, tried before the
// full §4.3-4.5 pipeline. ok is false when none of the shortcuts apply and
// the caller must fall through to the full partition/sample pipeline.
func Shortcut(bounds geom.Bounds, path graph.ExPath, maxWidth geom.Coord, cfg *config.SampleConfig) (points []Point, ok bool) {
	w := float64(bounds.Max.X - bounds.Min.X)
	h := float64(bounds.Max.Y - bounds.Min.Y)
	headRadius := float64(cfg.HeadRadius)
	if w <= headRadius && h <= headRadius {
		return []Point{NewFixedPoint(TypeOneBBCenter, bounds.Center())}, true
	}

	if path.Length < float64(cfg.MaxLengthForOneSupportPoint) {
		mid := midpointOnPath(path.Path)
		return []Point{NewFixedPoint(TypeOneCenter, mid)}, true
	}

	if float64(maxWidth) < float64(cfg.ThinMaxWidth) && path.Length < float64(cfg.MaxLengthForTwoSupportPoints) {
		return twoEndPoints(path.Path, cfg), true
	}

	return nil, false
}

// midpointOnPath walks the path's accumulated length and interpolates the
// point at half its total length.
func midpointOnPath(path graph.Path) geom.Point {
	if len(path.Nodes) == 0 {
		return geom.Point{}
	}
	if len(path.Nodes) == 1 {
		return path.Nodes[0].At
	}
	target := path.Length / 2
	acc := 0.0
	for i := 0; i < len(path.Nodes)-1; i++ {
		a, b := path.Nodes[i], path.Nodes[i+1]
		nb, ok := neighborTo(a, b)
		if !ok {
			continue
		}
		length := nb.Length()
		if acc+length >= target {
			ratio := (target - acc) / length
			return a.At.Lerp(b.At, ratio)
		}
		acc += length
	}
	return path.Nodes[len(path.Nodes)-1].At
}

// twoEndPoints places a TwoPoints sample near each end of the path, inset
// from the absolute endpoint by twice head_radius (so the support head, once
// printed, lands fully inside the island) and clamped so it never exceeds
// max_length_ratio_for_two_support_points of the path's own length from
// the nearer end.
func twoEndPoints(path graph.Path, cfg *config.SampleConfig) []Point {
	if len(path.Nodes) < 2 {
		return []Point{NewFixedPoint(TypeTwoPoints, path.Nodes[0].At)}
	}
	maxInset := path.Length * cfg.MaxLengthRatioForTwoSupportPoints
	inset := float64(cfg.HeadRadius) * 2
	if inset > maxInset {
		inset = maxInset
	}
	start := pointAtDistanceFromStart(path, inset)
	end := pointAtDistanceFromStart(path, path.Length-inset)
	return []Point{
		NewFixedPoint(TypeTwoPoints, start),
		NewFixedPoint(TypeTwoPoints, end),
	}
}

func pointAtDistanceFromStart(path graph.Path, dist float64) geom.Point {
	if dist <= 0 {
		return path.Nodes[0].At
	}
	acc := 0.0
	for i := 0; i < len(path.Nodes)-1; i++ {
		a, b := path.Nodes[i], path.Nodes[i+1]
		nb, ok := neighborTo(a, b)
		if !ok {
			continue
		}
		length := nb.Length()
		if acc+length >= dist {
			ratio := (dist - acc) / length
			return a.At.Lerp(b.At, ratio)
		}
		acc += length
	}
	return path.Nodes[len(path.Nodes)-1].At
}

func neighborTo(a, b *graph.Node) (graph.Neighbor, bool) {
	for _, nb := range a.Neighbors {
		if nb.Node == b {
			return nb, true
		}
	}
	return graph.Neighbor{}, false
}

// TwoPointsBackup implements §4.6's last fallback: when the full §4.3-4.5
// pipeline produced fewer than three points, discard them and place two
// end-stretch points instead.
func TwoPointsBackup(produced []Point, path graph.Path, cfg *config.SampleConfig) []Point {
	if len(produced) >= 3 {
		return produced
	}
	pts := twoEndPoints(path, cfg)
	for _, p := range pts {
		if fp, ok := p.(*FixedPoint); ok {
			fp.PointType = TypeTwoPointsBackup
		}
	}
	return pts
}
