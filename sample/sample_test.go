package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidshard/slasupport/config"
	"github.com/voidshard/slasupport/field"
	"github.com/voidshard/slasupport/geom"
	"github.com/voidshard/slasupport/graph"
)

func TestFixedPointNeverMoves(t *testing.T) {
	p := NewFixedPoint(TypeOneCenter, geom.Pt(1, 2))
	assert.False(t, p.CanMove())
	assert.Equal(t, 0.0, p.Move(geom.Pt(100, 100)))
	assert.Equal(t, geom.Pt(1, 2), p.At())
}

func TestCenterPointMoveStaysOnEdge(t *testing.T) {
	g := graph.NewGraph()
	a := g.AddNode(0, geom.Pt(0, 0), 0)
	b := g.AddNode(1, geom.Pt(10, 0), 0)
	g.Connect(a, b, graph.NeighborSize{Length: 10})

	cp := NewCenterPoint(TypeThinPart, graph.Position{From: a, To: b, Edge: a.Neighbors[0], Ratio: 0.2})
	cp.Move(geom.Pt(8, 3))
	assert.InDelta(t, 0, float64(cp.At().Y), 1e-9)
	assert.True(t, cp.Position.Ratio > 0.2)
}

func TestOutlinePointMoveStaysOnRestriction(t *testing.T) {
	lines := []geom.Line{
		geom.NewLine(geom.Pt(0, 0), geom.Pt(10, 0)),
		geom.NewLine(geom.Pt(10, 0), geom.Pt(10, 10)),
	}
	r := NewRestriction(lines, false)
	op := NewOutlinePoint(TypeThickPartOutline, OutlinePosition{Index: 0, Ratio: 0.5}, r)
	op.Move(geom.Pt(10, 5))
	assert.Equal(t, 1, op.Position.Index)
}

func TestInnerPointHoldsWhenDestinationOutside(t *testing.T) {
	ep := geom.NewExPolygon(geom.NewPolygon([]geom.Point{
		geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10), geom.Pt(0, 10),
	}), nil)
	ip := NewInnerPoint(TypeThickPartInner, geom.Pt(5, 5), geom.ExPolygons{ep})
	ip.Move(geom.Pt(500, 500))
	assert.Equal(t, geom.Pt(5, 5), ip.At())
	ip.Move(geom.Pt(6, 6))
	assert.Equal(t, geom.Pt(6, 6), ip.At())
}

func chainGraph() (*graph.Graph, *graph.Node) {
	g := graph.NewGraph()
	n0 := g.AddNode(0, geom.Pt(0, 0), 0)
	n1 := g.AddNode(1, geom.Pt(geom.ScaleMM(1), 0), 0)
	n2 := g.AddNode(2, geom.Pt(geom.ScaleMM(2), 0), 0)
	// Neighbor.Length mirrors geom.Line.Length() over these same scaled
	// points, so it must be expressed in scaled units too.
	edgeLen := float64(geom.ScaleMM(1))
	g.Connect(n0, n1, graph.NeighborSize{Length: edgeLen, MaxWidth: geom.ScaleMM(0.5)})
	g.Connect(n1, n2, graph.NeighborSize{Length: edgeLen, MaxWidth: geom.ScaleMM(0.5)})
	return g, n0
}

func TestSampleThinPartEmitsCenterPoints(t *testing.T) {
	cfg := config.Default()
	cfg.ThinMaxDistance = geom.ScaleMM(0.4)
	_, n0 := chainGraph()
	part := &graph.IslandPart{Type: graph.Thin, Nodes: []*graph.Node{n0, n0.Neighbors[0].Node, n0.Neighbors[0].Node.Neighbors[1].Node}, Length: 2}

	pts := SampleThinPart(part, cfg, false, false)
	require.NotEmpty(t, pts)
	for _, p := range pts {
		assert.True(t, p.CanMove())
	}
}

func TestSampleThickPartEmitsOutlineAndInnerPoints(t *testing.T) {
	cfg := config.Default()
	side := geom.ScaleMM(30)
	f := field.NewField([]geom.Point{
		geom.Pt(0, 0), geom.Pt(side, 0), geom.Pt(side, side), geom.Pt(0, side),
	}, nil)
	inner := f.InnerOffset(float64(geom.ScaleMM(1)))

	pts := SampleThickPart(inner, cfg, true)
	require.NotEmpty(t, pts)

	var sawOutline, sawInner bool
	for _, p := range pts {
		switch p.Type() {
		case TypeThickPartOutline:
			sawOutline = true
		case TypeThickPartInner:
			sawInner = true
		}
	}
	assert.True(t, sawOutline)
	assert.True(t, sawInner)
}

func TestShortcutOneBBCenterForTinyIsland(t *testing.T) {
	cfg := config.Default()
	bounds := geom.Bounds{Min: geom.Pt(0, 0), Max: geom.Pt(cfg.HeadRadius/2, cfg.HeadRadius/2)}
	pts, ok := Shortcut(bounds, graph.ExPath{}, 0, cfg)
	require.True(t, ok)
	require.Len(t, pts, 1)
	assert.Equal(t, TypeOneBBCenter, pts[0].Type())
}

func TestShortcutOneCenterForShortPath(t *testing.T) {
	cfg := config.Default()
	g, n0 := chainGraph()
	_ = g
	path := graph.Path{Nodes: []*graph.Node{n0, n0.Neighbors[0].Node}, Length: float64(cfg.MaxLengthForOneSupportPoint) / 2}
	bounds := geom.Bounds{Min: geom.Pt(0, 0), Max: geom.Pt(geom.ScaleMM(10), geom.ScaleMM(10))}
	pts, ok := Shortcut(bounds, graph.ExPath{Path: path}, 0, cfg)
	require.True(t, ok)
	require.Len(t, pts, 1)
	assert.Equal(t, TypeOneCenter, pts[0].Type())
}

func TestTwoPointsBackupReplacesSparseResult(t *testing.T) {
	cfg := config.Default()
	_, n0 := chainGraph()
	path := graph.Path{Nodes: []*graph.Node{n0, n0.Neighbors[0].Node, n0.Neighbors[0].Node.Neighbors[1].Node}, Length: 2}

	out := TwoPointsBackup([]Point{NewFixedPoint(TypeOneCenter, geom.Pt(0, 0))}, path, cfg)
	require.Len(t, out, 2)
	assert.Equal(t, TypeTwoPointsBackup, out[0].Type())
}
