package graph

import "github.com/unixpickle/splaytree"

// LongestPath extracts the longest simple path starting at start, plus
// every side branch and circle discovered along the way (§4.2). The walk
// uses an explicit stack of frames instead of recursion: original_source's
// EvaluateNeighbor/ExpandNeighbor/PostProcessNeighbor(s) push work onto a
// CallStack for exactly this reason — real islands can produce skeleton
// graphs deep enough to overflow a recursive call stack, so the traversal
// here must not recurse either.
//
// This is a from-scratch, simplified reimplementation of the same idea:
// original_source tracks multi-circle connectivity across the whole graph
// (VoronoiGraph::ExPath::connected_circle); this instead records each
// detected circle independently, which is sufficient for §4.3's thin/thick
// partition (every circle is still found and sized, just not linked to its
// neighboring circles).
func LongestPath(start *Node) *ExPath {
	w := &walker{
		ancestorSet: map[*Node]int{},
		visited:     map[*Node]bool{},
		children:    map[*Node][]childEdge{},
		best:        map[*Node]Path{},
		sideBranch:  map[*Node][]Path{},
	}
	w.push(&enterFrame{node: start, cameFrom: nil, edgeLen: 0})
	for len(w.frames) > 0 {
		f := w.pop()
		f.run(w)
	}

	result := &ExPath{
		Path:         w.best[start],
		SideBranches: map[*Node]*branchSet{},
		Circles:      w.circles,
	}
	for node, branches := range w.sideBranch {
		if len(branches) == 0 {
			continue
		}
		set := &branchSet{tree: &splaytree.Tree[*sideBranch]{}}
		for _, p := range branches {
			w.uid++
			set.tree.Insert(&sideBranch{Path: p, uid: w.uid})
			set.count++
		}
		result.SideBranches[node] = set
	}
	return result
}

// frame is one unit of deferred work on the explicit call stack, the Go
// analogue of original_source's IStackFunction.
type frame interface {
	run(w *walker)
}

type childEdge struct {
	node   *Node
	length float64
}

type walker struct {
	frames []frame

	ancestors    []*Node
	ancestorDist []float64 // cumulative path length to ancestors[i]
	ancestorSet  map[*Node]int
	visited      map[*Node]bool

	children map[*Node][]childEdge
	best     map[*Node]Path
	sideBranch map[*Node][]Path
	circles  []Path
	uid      int
}

func (w *walker) push(f frame) { w.frames = append(w.frames, f) }

func (w *walker) pop() frame {
	n := len(w.frames) - 1
	f := w.frames[n]
	w.frames = w.frames[:n]
	return f
}

// enterFrame processes a node the first time the walk reaches it: it
// records ancestry for circle detection, schedules its own exitFrame to
// run once every child has been processed, and pushes an enterFrame for
// each neighbor other than the one it came from (a neighbor that is
// already an ancestor closes a circle instead). A node already entered
// through another route is not entered again.
type enterFrame struct {
	node     *Node
	cameFrom *Node
	edgeLen  float64
}

func (f *enterFrame) run(w *walker) {
	if w.visited[f.node] {
		return
	}
	w.visited[f.node] = true
	depth := len(w.ancestors)
	dist := 0.0
	if depth > 0 {
		dist = w.ancestorDist[depth-1] + f.edgeLen
	}
	w.ancestorSet[f.node] = depth
	w.ancestors = append(w.ancestors, f.node)
	w.ancestorDist = append(w.ancestorDist, dist)

	w.push(&exitFrame{node: f.node})

	for _, nb := range f.node.Neighbors {
		if nb.Node == f.cameFrom {
			continue
		}
		if d, onPath := w.ancestorSet[nb.Node]; onPath {
			loopNodes := append([]*Node{}, w.ancestors[d:]...)
			loopLen := (dist - w.ancestorDist[d]) + nb.Length()
			w.circles = append(w.circles, Path{Nodes: loopNodes, Length: loopLen})
			continue
		}
		w.children[f.node] = append(w.children[f.node], childEdge{node: nb.Node, length: nb.Length()})
		w.push(&enterFrame{node: nb.Node, cameFrom: f.node, edgeLen: nb.Length()})
	}
}

// exitFrame runs once every neighbor pushed by the matching enterFrame has
// been fully processed (the explicit stack guarantees this: every child
// enterFrame, and everything it pushed, pops and runs before this frame
// does). It combines the node's children into the longest path through
// this node, demoting every non-chosen child path to a side branch.
type exitFrame struct {
	node *Node
}

func (f *exitFrame) run(w *walker) {
	w.ancestors = w.ancestors[:len(w.ancestors)-1]
	w.ancestorDist = w.ancestorDist[:len(w.ancestorDist)-1]
	delete(w.ancestorSet, f.node)

	best := Path{Nodes: []*Node{f.node}, Length: 0}
	haveBest := false
	for _, child := range w.children[f.node] {
		childBest := w.best[child.node]
		candidate := Path{
			Nodes:  append([]*Node{f.node}, childBest.Nodes...),
			Length: child.length + childBest.Length,
		}
		if !haveBest || candidate.Length > best.Length {
			if haveBest {
				w.sideBranch[f.node] = append(w.sideBranch[f.node], best)
			}
			best = candidate
			haveBest = true
		} else {
			w.sideBranch[f.node] = append(w.sideBranch[f.node], candidate)
		}
	}
	w.best[f.node] = best
}
