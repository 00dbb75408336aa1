package graph

import (
	"fmt"

	"github.com/voidshard/slasupport/config"
	"github.com/voidshard/slasupport/internal/xslice"
)

// ErrCenterNotFound is returned by Partition when a multi-node part's
// centre-of-longest-path (§4.3's bounded-BFS-from-boundary-barriers
// result, §4.4's sampling anchor) cannot be located. The only expected
// cause is a part whose Nodes are not actually connected by Neighbor
// edges, a broken VG invariant (§3) rather than a normal geometry case;
// spec.md §7 classifies this as Internal-invariant-violated.
var ErrCenterNotFound = fmt.Errorf("graph: longest-path centre not found for island part")

// WidthClass is one of the three width bands §4.3's hysteresis test
// assigns to a skeleton edge.
type WidthClass int

const (
	Thin WidthClass = iota
	Middle
	Thick
)

// ClassifyWidth buckets an edge's max width against the hysteresis band
// [thick_min_width, thin_max_width] (§4.3).
func ClassifyWidth(maxWidth int64, cfg *config.SampleConfig) WidthClass {
	if maxWidth < int64(cfg.ThickMinWidth) {
		return Thin
	}
	if maxWidth > int64(cfg.ThinMaxWidth) {
		return Thick
	}
	return Middle
}

// IslandPart is a maximal run of path nodes sharing a width classification
// (§4.3's IslandPart).
type IslandPart struct {
	Type   WidthClass
	Nodes  []*Node
	Length float64

	// Center is the part's own centre Position (§4.3's "position of the
	// centre of that longest path for downstream use"), populated by
	// Partition once the post-merge passes have settled Nodes/Length.
	// §4.4 starts thin-part centerline sampling from this position
	// instead of the part's first node. Only valid when HasCenter is true
	// — IslandParts built directly (outside Partition, e.g. test
	// fixtures) carry no centre.
	Center    Position
	HasCenter bool
}

// centerOfPart computes a part's centre: the point at half its own arc
// length. §4.3 frames the general case as a bounded BFS from the part's
// boundary Positions as barrier pseudo-sources; here that collapses to a
// plain forward sweep because Partition only ever builds an IslandPart
// from a single linear run of main-path nodes (no side branches are
// admitted into a part), so the two boundary barriers are just the part's
// first and last node and the farthest point from both is exactly the
// half-length point on that line. ok is false only when Nodes has fewer
// than two entries or a Neighbor edge between consecutive Nodes is
// missing — the genuine "centre not found" invariant violation.
func centerOfPart(p *IslandPart) (Position, bool) {
	if len(p.Nodes) < 2 {
		return Position{}, false
	}
	target := p.Length / 2
	acc := 0.0
	for i := 0; i < len(p.Nodes)-1; i++ {
		a, b := p.Nodes[i], p.Nodes[i+1]
		nb, ok := edgeBetween(a, b)
		if !ok {
			return Position{}, false
		}
		length := nb.Length()
		if acc+length >= target {
			ratio := 0.0
			if length > 0 {
				ratio = (target - acc) / length
			}
			if ratio > 1 {
				ratio = 1
			}
			return Position{From: a, To: b, Edge: nb, Ratio: ratio}, true
		}
		acc += length
	}
	last, prev := p.Nodes[len(p.Nodes)-1], p.Nodes[len(p.Nodes)-2]
	nb, ok := edgeBetween(prev, last)
	if !ok {
		return Position{}, false
	}
	return Position{From: prev, To: last, Edge: nb, Ratio: 1}, true
}

func edgeBetween(a, b *Node) (Neighbor, bool) {
	for _, nb := range a.Neighbors {
		if nb.Node == b {
			return nb, true
		}
	}
	return Neighbor{}, false
}

// Partition walks the main path of an ExPath and splits it into
// IslandParts by width class, then applies the three post-merge passes
// §4.3 specifies: dissolve middle parts into their largest neighbour,
// merge adjacent same-type parts, and dissolve any part shorter than
// min_part_length into its (same-typed, by construction) neighbours.
//
// The returned error is ErrCenterNotFound (§7's Internal-invariant-
// violated class) when a multi-node part's centre cannot be located;
// every other code path is infallible.
func Partition(path Path, cfg *config.SampleConfig) ([]*IslandPart, error) {
	if len(path.Nodes) == 0 {
		return nil, nil
	}
	if len(path.Nodes) == 1 {
		return []*IslandPart{{Type: Thin, Nodes: path.Nodes}}, nil
	}

	var parts []*IslandPart
	cur := &IslandPart{Nodes: []*Node{path.Nodes[0]}}
	cur.Type = Middle // resolved once the first edge is classified

	for i := 0; i < len(path.Nodes)-1; i++ {
		a, b := path.Nodes[i], path.Nodes[i+1]
		nb, ok := edgeBetween(a, b)
		if !ok {
			continue
		}
		cls := ClassifyWidth(int64(nb.MaxWidth()), cfg)

		nearStart := cur.Length < float64(cfg.MinPartLength)
		nearEnd := false // only known once the walk finishes; handled in retrofit below

		if i == 0 {
			cur.Type = cls
		} else if cls != cur.Type && !nearStart && !nearEnd {
			parts = append(parts, cur)
			cur = &IslandPart{Type: cls, Nodes: []*Node{a}}
		}

		cur.Nodes = append(cur.Nodes, b)
		cur.Length += nb.Length()
	}
	parts = append(parts, cur)

	// retrofit: if the boundary change landed within min_part_length of
	// the final contour end, the last part is too short to stand alone —
	// give it the previous part's type instead of leaving a sliver with
	// its own (possibly spurious) classification.
	if len(parts) > 1 {
		last := parts[len(parts)-1]
		if last.Length < float64(cfg.MinPartLength) {
			last.Type = parts[len(parts)-2].Type
		}
	}

	parts = mergeMiddleIntoLargestNeighbor(parts)
	parts = mergeAdjacentSameType(parts)
	parts = dissolveShortParts(parts, cfg)

	for _, p := range parts {
		if len(p.Nodes) < 2 {
			continue
		}
		c, ok := centerOfPart(p)
		if !ok {
			return nil, ErrCenterNotFound
		}
		p.Center = c
		p.HasCenter = true
	}
	return parts, nil
}

func mergeMiddleIntoLargestNeighbor(parts []*IslandPart) []*IslandPart {
	for i, p := range parts {
		if p.Type != Middle {
			continue
		}
		var left, right *IslandPart
		if i > 0 {
			left = parts[i-1]
		}
		if i < len(parts)-1 {
			right = parts[i+1]
		}
		switch {
		case left == nil && right != nil:
			p.Type = right.Type
		case right == nil && left != nil:
			p.Type = left.Type
		case left != nil && right != nil:
			if left.Length >= right.Length {
				p.Type = left.Type
			} else {
				p.Type = right.Type
			}
		default:
			p.Type = Thin
		}
	}
	return parts
}

func mergeAdjacentSameType(parts []*IslandPart) []*IslandPart {
	if len(parts) == 0 {
		return parts
	}
	merged := []*IslandPart{parts[0]}
	for _, p := range parts[1:] {
		last := merged[len(merged)-1]
		if last.Type == p.Type {
			last.Nodes = append(last.Nodes, p.Nodes[1:]...)
			last.Length += p.Length
			continue
		}
		merged = append(merged, p)
	}
	return merged
}

func dissolveShortParts(parts []*IslandPart, cfg *config.SampleConfig) []*IslandPart {
	for len(parts) > 1 {
		idx := xslice.ClosestIndex(parts, func(p *IslandPart) float64 { return p.Length })
		if parts[idx].Length >= float64(cfg.MinPartLength) {
			break
		}
		if idx == 0 {
			parts[1].Nodes = append(append([]*Node{}, parts[0].Nodes...), parts[1].Nodes[1:]...)
			parts[1].Length += parts[0].Length
			parts = parts[1:]
			continue
		}
		parts[idx-1].Nodes = append(parts[idx-1].Nodes, parts[idx].Nodes[1:]...)
		parts[idx-1].Length += parts[idx].Length
		parts = append(parts[:idx], parts[idx+1:]...)
	}
	return parts
}
