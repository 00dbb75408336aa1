package layer

import "github.com/voidshard/slasupport/geom"

// overhangEdge classifies one boundary edge of a part's Shape as "hanging"
// (its midpoint lies outside every parent part it links from) or
// "supported" (covered by material on the previous layer), mirroring
// field.Edge's walk-and-classify idiom but driven by parent containment
// instead of a chord map.
type overhangEdge struct {
	line    geom.Line
	hanging bool
}

func classifyOverhangEdges(part *Part) []overhangEdge {
	lines := part.Shape.Lines()
	edges := make([]overhangEdge, len(lines))
	for i, l := range lines {
		mid := l.PointAt(0.5)
		covered := false
		for _, link := range part.Prev {
			if link.From.Shape.Contains(mid) {
				covered = true
				break
			}
		}
		edges[i] = overhangEdge{line: l, hanging: !covered}
	}
	return edges
}

// OverhangPoints implements §4.10: walk every maximal run of hanging
// boundary edges and discretize it into candidate support points spaced
// `step` apart, measured along the contour via repeated
// geom.CircleSegmentIntersect calls (the circle-line intersection at
// `step` radius from the previous sample), matching original_source's
// discretize_overhang_step. Unless every edge hangs, runs are scanned from
// edge 0 to the last edge without wrapping, so a run that crosses the end
// of the edge list back to edge 0 is discretized as two separate runs.
func OverhangPoints(part *Part, step geom.Coord) []geom.Point {
	if step <= 0 || part.Shape == nil {
		return nil
	}
	edges := classifyOverhangEdges(part)
	n := len(edges)
	if n == 0 {
		return nil
	}

	allHanging := true
	for _, e := range edges {
		if !e.hanging {
			allHanging = false
			break
		}
	}

	var out []geom.Point
	if allHanging {
		return discretizeRun(edges, float64(step))
	}

	i := 0
	for i < n {
		if !edges[i].hanging {
			i++
			continue
		}
		j := i
		run := []overhangEdge{}
		for j < n && edges[j%n].hanging {
			run = append(run, edges[j%n])
			j++
			if j-i > n {
				break
			}
		}
		out = append(out, discretizeRun(run, float64(step))...)
		i = j
	}
	return out
}

// discretizeRun walks edges in order, placing a sample at the run's start
// then repeatedly stepping forward by radius along the remaining chain via
// CircleSegmentIntersect — falling back to the next vertex when a single
// segment is shorter than the step, matching the original's per-segment
// walk.
func discretizeRun(edges []overhangEdge, radius float64) []geom.Point {
	if len(edges) == 0 {
		return nil
	}
	points := []geom.Point{edges[0].line.A}
	cursor := edges[0].line.A
	idx := 0
	for idx < len(edges) {
		remaining := geom.NewLine(cursor, edges[idx].line.B)
		hit, ok := geom.CircleSegmentIntersect(remaining, cursor, radius)
		if ok {
			points = append(points, hit)
			cursor = hit
			continue
		}
		idx++
		if idx < len(edges) {
			cursor = edges[idx].line.A
		}
	}
	return points
}
