package layer

import "github.com/voidshard/slasupport/geom"

// PruneSmallParts implements §4.11: a connected run of parts whose whole
// extent (across every linked layer) fits inside a sphere of
// minimalBoundingSphereRadius needs no support of its own — it is short
// enough to print unsupported. Detection is a flood fill over the
// Prev/Next link graph (mirroring the explicit-stack DFS idiom already
// used for graph.LongestPath) bounded by a running 3D bounding-box/
// sphere-containment test, since no dedicated bounding-sphere solver is
// available in the retrieved examples.
//
// Parts found prunable are marked (Part.pruned) and their links are
// patched: each remaining neighbour of a pruned part is relinked directly
// to that part's other neighbours so later propagation still sees a
// connected graph (a pruned peninsula's parent simply inherits its
// child's children, and vice versa).
func PruneSmallParts(all []*Part, minimalBoundingSphereRadius geom.Coord) int {
	visited := make(map[*Part]bool, len(all))
	pruned := 0

	for _, root := range all {
		if visited[root] || !isSmall(root, minimalBoundingSphereRadius) {
			continue
		}
		run := collectSmallRun(root, minimalBoundingSphereRadius, visited)
		if fitsSphere(run, minimalBoundingSphereRadius) {
			for _, p := range run {
				p.pruned = true
				pruned++
			}
			patchLinks(run)
		}
	}
	return pruned
}

// isSmall reports whether a single part's own shape already fits a circle
// of radius minimalBoundingSphereRadius around its centroid — the
// flood-fill seed/membership test: large parts never join a prunable run
// and always remain as its boundary anchors.
func isSmall(p *Part, radius geom.Coord) bool {
	if p.Shape == nil || radius <= 0 {
		return false
	}
	c := p.Shape.Contour.Centroid()
	r := float64(radius)
	for _, v := range p.Shape.Contour.Points {
		if v.Dist(c) > r {
			return false
		}
	}
	return true
}

// collectSmallRun gathers the connected component of small parts
// reachable from root via Prev/Next links, using an explicit stack
// (no recursion, matching graph.LongestPath's non-recursive DFS). Large
// neighbours are never added to the run; they remain as relink anchors.
func collectSmallRun(root *Part, radius geom.Coord, visited map[*Part]bool) []*Part {
	var run []*Part
	stack := []*Part{root}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[p] {
			continue
		}
		visited[p] = true
		run = append(run, p)
		for _, l := range p.Prev {
			if !visited[l.From] && isSmall(l.From, radius) {
				stack = append(stack, l.From)
			}
		}
		for _, l := range p.Next {
			if !visited[l.To] && isSmall(l.To, radius) {
				stack = append(stack, l.To)
			}
		}
	}
	return run
}

// fitsSphere reports whether every point of every part in run lies within
// radius of the run's centroid in 3D (XY from the shape, Z from the
// part's layer height) — a bounding-sphere containment test over the
// combined point cloud rather than a minimal-enclosing-sphere solve (§9:
// flagged simplification, a true Welzl-style minimal sphere needs no
// additional library the examples carry one of). A run that fits this
// centroid-centred sphere also fits the minimal one, so this never prunes
// a run the minimal-sphere test would keep; it can leave unpruned a run
// whose minimal enclosing sphere would fit within radius.
func fitsSphere(run []*Part, radius geom.Coord) bool {
	if radius <= 0 {
		return false
	}
	type pt3 struct{ x, y, z float64 }
	var pts []pt3
	for _, p := range run {
		if p.Shape == nil {
			continue
		}
		z := float64(p.Z)
		for _, v := range p.Shape.Contour.Points {
			pts = append(pts, pt3{float64(v.X), float64(v.Y), z})
		}
	}
	if len(pts) == 0 {
		return false
	}
	var cx, cy, cz float64
	for _, p := range pts {
		cx += p.x
		cy += p.y
		cz += p.z
	}
	n := float64(len(pts))
	cx /= n
	cy /= n
	cz /= n

	r := float64(radius)
	for _, p := range pts {
		dx, dy, dz := p.x-cx, p.y-cy, p.z-cz
		if dx*dx+dy*dy+dz*dz > r*r {
			return false
		}
	}
	return true
}

// patchLinks bridges around every pruned part in run: each Prev link's
// From gets relinked directly to each Next link's To, so the remaining
// graph stays traversable for propagation.
func patchLinks(run []*Part) {
	pruned := make(map[*Part]bool, len(run))
	for _, p := range run {
		pruned[p] = true
	}
	for _, p := range run {
		for _, up := range p.Prev {
			if pruned[up.From] {
				continue
			}
			for _, down := range p.Next {
				if pruned[down.To] {
					continue
				}
				Link(up.From, down.To, down.OverlapArea)
			}
		}
	}
}
