package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidshard/slasupport/config"
	"github.com/voidshard/slasupport/geom"
)

func TestLongestPathStraightChain(t *testing.T) {
	g := NewGraph()
	n0 := g.AddNode(0, geom.Pt(0, 0), 0)
	n1 := g.AddNode(1, geom.Pt(10, 0), 0)
	n2 := g.AddNode(2, geom.Pt(20, 0), 0)
	g.Connect(n0, n1, NeighborSize{Length: 10, MinWidth: 1, MaxWidth: 2})
	g.Connect(n1, n2, NeighborSize{Length: 10, MinWidth: 1, MaxWidth: 2})

	ex := LongestPath(n0)
	require.Len(t, ex.Nodes, 3)
	assert.Equal(t, n2, ex.Nodes[2])
	assert.InDelta(t, 20, ex.Length, 1e-9)
}

func TestLongestPathWithSideBranch(t *testing.T) {
	g := NewGraph()
	n0 := g.AddNode(0, geom.Pt(0, 0), 0)
	n1 := g.AddNode(1, geom.Pt(10, 0), 0)
	n2 := g.AddNode(2, geom.Pt(20, 0), 0)
	branch := g.AddNode(3, geom.Pt(10, 5), 0)
	g.Connect(n0, n1, NeighborSize{Length: 10})
	g.Connect(n1, n2, NeighborSize{Length: 10})
	g.Connect(n1, branch, NeighborSize{Length: 3})

	ex := LongestPath(n0)
	assert.InDelta(t, 20, ex.Length, 1e-9)

	p, ok := ex.PopLongestBranch(n1)
	require.True(t, ok)
	assert.InDelta(t, 3, p.Length, 1e-9)
}

func TestLongestPathDetectsCircle(t *testing.T) {
	g := NewGraph()
	n0 := g.AddNode(0, geom.Pt(0, 0), 0)
	n1 := g.AddNode(1, geom.Pt(10, 0), 0)
	n2 := g.AddNode(2, geom.Pt(10, 10), 0)
	n3 := g.AddNode(3, geom.Pt(0, 10), 0)
	g.Connect(n0, n1, NeighborSize{Length: 10})
	g.Connect(n1, n2, NeighborSize{Length: 10})
	g.Connect(n2, n3, NeighborSize{Length: 10})
	g.Connect(n3, n0, NeighborSize{Length: 10})

	ex := LongestPath(n0)
	require.Len(t, ex.Circles, 1)
	assert.InDelta(t, 40, ex.Circles[0].Length, 1e-9)
}

func TestPartitionAllThickEdgesYieldOneThickPart(t *testing.T) {
	cfg := config.Default()
	cfg.ThickMinWidth = geom.ScaleMM(1)
	cfg.ThinMaxWidth = geom.ScaleMM(2)
	cfg.MinPartLength = geom.ScaleMM(0.1)

	g := NewGraph()
	n0 := g.AddNode(0, geom.Pt(0, 0), 0)
	n1 := g.AddNode(1, geom.Pt(1, 0), 0)
	n2 := g.AddNode(2, geom.Pt(2, 0), 0)
	g.Connect(n0, n1, NeighborSize{Length: 1, MaxWidth: geom.ScaleMM(5)}) // thick
	g.Connect(n1, n2, NeighborSize{Length: 1, MaxWidth: geom.ScaleMM(5)}) // thick

	path := Path{Nodes: []*Node{n0, n1, n2}, Length: 2}
	parts, err := Partition(path, cfg)
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, Thick, parts[0].Type)
	assert.True(t, parts[0].HasCenter)
}
