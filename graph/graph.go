// Package graph builds the skeleton graph over a medial-axis Voronoi
// diagram and extracts its longest path plus side branches (§4.1-§4.3):
// the structure original_source's VoronoiGraph/VoronoiGraphUtils models as
// a map of Node keyed by Voronoi vertex, with Neighbor edges carrying
// length and width, and an ExPath DTO extending a Path with side branches
// and circles.
package graph

import "github.com/voidshard/slasupport/geom"

// NeighborSize is the width/length metadata original_source attaches to a
// Neighbor edge (VoronoiGraph::Node::Neighbor::Size): Length is the edge's
// arc length, MinWidth/MaxWidth bound the distance between the two
// outlines the skeleton edge separates (§4.1).
type NeighborSize struct {
	Length   float64
	MinWidth geom.Coord
	MaxWidth geom.Coord
}

// Neighbor is one edge leaving a Node towards another Node (§3).
type Neighbor struct {
	Node *Node
	Size NeighborSize
}

func (n Neighbor) Length() float64    { return n.Size.Length }
func (n Neighbor) MinWidth() geom.Coord { return n.Size.MinWidth }
func (n Neighbor) MaxWidth() geom.Coord { return n.Size.MaxWidth }

// Node is a vertex of the skeleton graph: a Voronoi diagram vertex that is
// Inside or OnContour (never Outside) the source region, plus its
// neighbors and distance-to-outline bookkeeping (§3).
type Node struct {
	ID int
	At geom.Point

	// Distance is this node's distance to the nearest outline (radius of
	// the largest inscribed circle centered here).
	Distance float64

	// LongestDistance is a slot for the longest path-length reachable
	// through this node; LongestPath does not write it, so it stays zero
	// unless a caller sets it.
	LongestDistance float64

	Neighbors []Neighbor
}

// Graph is the full skeleton: every Node keyed by ID, built from a set of
// internal.voronoi.SkeletonEdge (§4.1).
type Graph struct {
	Nodes []*Node
}

// NewGraph returns an empty Graph; nodes and edges are added with AddNode
// and Connect. The caller (support.BuildGraph) is responsible for
// classifying and filtering Voronoi vertices/edges before adding them
// (§4.1's VD inside/on-contour/outside classification).
func NewGraph() *Graph {
	return &Graph{}
}

// AddNode appends and returns a fresh Node with the given id.
func (g *Graph) AddNode(id int, at geom.Point, distance float64) *Node {
	n := &Node{ID: id, At: at, Distance: distance}
	g.Nodes = append(g.Nodes, n)
	return n
}

// Connect adds an undirected edge between a and b with the given size,
// appending a Neighbor entry on both ends (the skeleton graph is
// undirected; direction only matters during the path walk).
func (g *Graph) Connect(a, b *Node, size NeighborSize) {
	a.Neighbors = append(a.Neighbors, Neighbor{Node: b, Size: size})
	b.Neighbors = append(b.Neighbors, Neighbor{Node: a, Size: size})
}

// Leaf reports whether n has exactly one neighbor — a dead end of the
// skeleton (original_source's "is next node leaf" check in
// ExpandNeighbor.cpp).
func (n *Node) Leaf() bool {
	return len(n.Neighbors) == 1
}
