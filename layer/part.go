package layer

import "github.com/voidshard/slasupport/geom"

// Part is one connected region of a single layer's slice (§4.8): an
// island or sub-shape linked to the parts above/below it that overlap it
// in XY, mirroring the teacher's district bookkeeping in citygraph.go
// (stable-slice membership, links kept as pointers into that slice rather
// than by value).
type Part struct {
	ID     int
	Z      geom.Coord
	Shape  *geom.ExPolygon
	IsHole bool // true when this part is itself a hole island (no material)

	Prev []*PartLink
	Next []*PartLink

	Near *NearPoints

	// Supports indexes into the shared Store for points created directly
	// on this part (as opposed to inherited through Near).
	Supports []int

	pruned bool
}

// PartLink connects a part on one layer to an overlapping part on the
// adjacent layer, analogous to citygraph.go's district-to-district edge
// but directional (Prev points down in Z, Next points up).
type PartLink struct {
	From *Part
	To   *Part
	// OverlapArea is the intersection area between From.Shape and
	// To.Shape's bounding boxes, a cheap proxy used to rank multi-parent
	// merges when no general polygon-boolean is available (§9).
	OverlapArea float64
}

// Link records a parent(From)/child(To) relationship, appending to both
// sides' link lists.
func Link(from, to *Part, overlapArea float64) *PartLink {
	l := &PartLink{From: from, To: to, OverlapArea: overlapArea}
	from.Next = append(from.Next, l)
	to.Prev = append(to.Prev, l)
	return l
}

// IsIsland reports whether this part has no parent on the previous layer,
// i.e. it is newly appearing material that must be sampled from scratch
// per §4.1-§4.7 rather than inheriting a NearPoints tree.
func (p *Part) IsIsland() bool { return len(p.Prev) == 0 }

// Pruned reports whether small-part pruning (§4.11) removed this part.
func (p *Part) Pruned() bool { return p.pruned }
