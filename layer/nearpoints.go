package layer

import (
	"github.com/unixpickle/model3d/model2d"

	"github.com/voidshard/slasupport/geom"
)

// NearPoints is a per-part index into the shared Store (§4.8 "each part
// carries forward a tree of the supports that still influence it"),
// wrapping model2d.CoordTree the same way internal/voronoi's Repair wraps
// it for neighborsInDistance — a fresh tree built over a coordinate slice,
// queried by KNN.
type NearPoints struct {
	Store   *Store
	Indices []int

	tree  *model2d.CoordTree
	coord []model2d.Coord
}

// NewNearPoints returns an empty index backed by store.
func NewNearPoints(store *Store) *NearPoints {
	return &NearPoints{Store: store}
}

// Add appends idx (a Store index) to the tracked set and invalidates the
// cached tree.
func (n *NearPoints) Add(idx int) {
	n.Indices = append(n.Indices, idx)
	n.tree = nil
}

// Copy returns a shallow copy whose Indices slice is independent (so the
// child part can Add without mutating the parent's set, per §4.8's "each
// child part inherits a copy of the parent's tree").
func (n *NearPoints) Copy() *NearPoints {
	out := NewNearPoints(n.Store)
	out.Indices = append([]int{}, n.Indices...)
	return out
}

// Merge returns a new NearPoints holding the union of n and other's
// indices (§4.8: "a part with multiple parents merges their trees"),
// deduplicated since a support may be reachable through more than one
// parent link.
func (n *NearPoints) Merge(other *NearPoints) *NearPoints {
	seen := map[int]bool{}
	out := NewNearPoints(n.Store)
	for _, idx := range n.Indices {
		if !seen[idx] {
			seen[idx] = true
			out.Indices = append(out.Indices, idx)
		}
	}
	if other != nil {
		for _, idx := range other.Indices {
			if !seen[idx] {
				seen[idx] = true
				out.Indices = append(out.Indices, idx)
			}
		}
	}
	return out
}

// Filter returns a new NearPoints holding only the indices for which keep
// returns true, used to drop supports a part's extend_shape/removing_delta
// test excludes (§4.8 step 2).
func (n *NearPoints) Filter(keep func(*SupportPoint) bool) *NearPoints {
	out := NewNearPoints(n.Store)
	for _, idx := range n.Indices {
		if keep(n.Store.Get(idx)) {
			out.Indices = append(out.Indices, idx)
		}
	}
	return out
}

func (n *NearPoints) ensureTree() {
	if n.tree != nil || len(n.Indices) == 0 {
		return
	}
	n.coord = make([]model2d.Coord, len(n.Indices))
	for i, idx := range n.Indices {
		n.coord[i] = n.Store.Get(idx).Pt.Coord2D()
	}
	n.tree = model2d.NewCoordTree(n.coord)
}

// Nearest returns the index (into Store) of the tracked support closest to
// pt, or ok=false if the set is empty.
func (n *NearPoints) Nearest(pt geom.Point) (idx int, ok bool) {
	n.ensureTree()
	if n.tree == nil {
		return 0, false
	}
	hits := n.tree.KNN(1, pt.Coord2D())
	if len(hits) == 0 {
		return 0, false
	}
	found := geom.FromCoord2D(hits[0])
	for _, i := range n.Indices {
		if n.Store.Get(i).Pt == found {
			return i, true
		}
	}
	return 0, false
}

// Covers reports whether pt already lies within the current influence
// radius of its nearest tracked support (§4.8 step 4: skip sampling where
// an inherited support still reaches).
func (n *NearPoints) Covers(pt geom.Point) bool {
	idx, ok := n.Nearest(pt)
	if !ok {
		return false
	}
	sp := n.Store.Get(idx)
	return pt.Dist(sp.Pt) <= float64(sp.CurrentRadius)
}
