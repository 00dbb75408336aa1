package graph

import "github.com/unixpickle/splaytree"

// Path is a route through the skeleton graph (§3), mirroring
// original_source's VoronoiGraph::Path: an ordered node list plus its total
// length.
type Path struct {
	Nodes  []*Node
	Length float64
}

// Extend returns a copy of p with node appended and length increased by
// edgeLength (VoronoiGraph::Path::extend).
func (p Path) Extend(node *Node, edgeLength float64) Path {
	nodes := make([]*Node, len(p.Nodes), len(p.Nodes)+1)
	copy(nodes, p.Nodes)
	nodes = append(nodes, node)
	return Path{Nodes: nodes, Length: p.Length + edgeLength}
}

// sideBranch is the splaytree element backing ExPath's side-branch
// max-heap: ordered by Path.Length descending (longest branch pops first),
// with a UID tiebreak so distinct equal-length branches both survive —
// grounded on the `meshDiscsQueueNode.Compare` pattern (model3d's
// parameterization code, the only place in the retrieved pack that
// actually drives splaytree.Tree[T]). T is a pointer, matching that same
// example's `*meshDiscsQueueNode` element type.
type sideBranch struct {
	Path Path
	uid  int
}

func (s *sideBranch) Compare(o *sideBranch) int {
	if s.Path.Length < o.Path.Length {
		return -1
	} else if s.Path.Length > o.Path.Length {
		return 1
	}
	if s.uid < o.uid {
		return -1
	} else if s.uid > o.uid {
		return 1
	}
	return 0
}

// branchSet pairs a splaytree with a live count: the splaytree API's Max()
// has no empty-tree guard in its one demonstrated call site (the caller
// checks its own tracking collection's length first), so callers here must
// do the same instead of relying on a sentinel return.
type branchSet struct {
	tree  *splaytree.Tree[*sideBranch]
	count int
}

// ExPath extends Path with side branches (paths that split off the main
// path but weren't chosen as longest) and circles (cyclic detours back to
// an ancestor), mirroring VoronoiGraph::ExPath.
type ExPath struct {
	Path

	// SideBranches holds, for each node on the main path that had
	// unchosen branches, a max-heap of those branches ordered by length
	// (longest first); PopLongestBranch takes them off in that order.
	SideBranches map[*Node]*branchSet

	// Circles are cyclic sub-paths detected during the walk (a region
	// whose skeleton loops back on itself, e.g. an island with a hole).
	Circles []Path
}

// PopLongestBranch removes and returns the longest still-remaining side
// branch rooted at node, and false if none remain.
func (e *ExPath) PopLongestBranch(node *Node) (Path, bool) {
	set := e.SideBranches[node]
	if set == nil || set.count == 0 {
		return Path{}, false
	}
	best := set.tree.Max()
	set.tree.Delete(best)
	set.count--
	return best.Path, true
}
