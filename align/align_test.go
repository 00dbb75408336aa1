package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidshard/slasupport/config"
	"github.com/voidshard/slasupport/geom"
	"github.com/voidshard/slasupport/graph"
	"github.com/voidshard/slasupport/sample"
)

func squareIsland(side float64) *geom.ExPolygon {
	s := geom.ScaleMM(side)
	return geom.NewExPolygon(geom.NewPolygon([]geom.Point{
		geom.Pt(0, 0), geom.Pt(s, 0), geom.Pt(s, s), geom.Pt(0, s),
	}), nil)
}

func TestRelaxSinglePointIsNoOp(t *testing.T) {
	cfg := config.Default()
	island := squareIsland(30)
	pts := []sample.Point{sample.NewInnerPoint(sample.TypeThickPartInner, geom.Pt(1, 1), geom.ExPolygons{island})}

	out := Relax(pts, island.Bounds(), island, nil, cfg)
	require.Len(t, out, 1)
	assert.Equal(t, geom.Pt(1, 1), out[0].At())
}

func TestRelaxMovesPointsTowardCentroid(t *testing.T) {
	cfg := config.Default()
	cfg.CountIteration = 10
	island := squareIsland(30)

	off := geom.ScaleMM(2)
	s := geom.ScaleMM(30)
	pts := []sample.Point{
		sample.NewInnerPoint(sample.TypeThickPartInner, geom.Pt(off, off), geom.ExPolygons{island}),
		sample.NewInnerPoint(sample.TypeThickPartInner, geom.Pt(s-off, s-off), geom.ExPolygons{island}),
	}

	out := Relax(pts, island.Bounds(), island, nil, cfg)
	require.Len(t, out, 2)
	for _, p := range out {
		assert.True(t, island.Contains(p.At()))
	}
}

func TestRelaxStripsPermanentPoints(t *testing.T) {
	cfg := config.Default()
	island := squareIsland(30)
	s := geom.ScaleMM(30)

	pts := []sample.Point{
		sample.NewInnerPoint(sample.TypeThickPartInner, geom.Pt(geom.ScaleMM(5), geom.ScaleMM(5)), geom.ExPolygons{island}),
		sample.NewInnerPoint(sample.TypeThickPartInner, geom.Pt(s-geom.ScaleMM(5), s-geom.ScaleMM(5)), geom.ExPolygons{island}),
	}
	permanent := []geom.Point{geom.Pt(geom.ScaleMM(15), geom.ScaleMM(15))}

	out := Relax(pts, island.Bounds(), island, permanent, cfg)
	for _, p := range out {
		assert.NotEqual(t, sample.TypePermanent, p.Type())
	}
}

func TestMarkPermanentDisablesMove(t *testing.T) {
	g := graph.NewGraph()
	a := g.AddNode(0, geom.Pt(0, 0), 0)
	b := g.AddNode(1, geom.Pt(geom.ScaleMM(1), 0), 0)
	g.Connect(a, b, graph.NeighborSize{Length: float64(geom.ScaleMM(1))})

	cp := sample.NewCenterPoint(sample.TypeThinPart, graph.Position{From: a, To: b, Edge: a.Neighbors[0], Ratio: 0.5})
	assert.True(t, cp.CanMove())
	markPermanent(cp)
	assert.False(t, cp.CanMove())
}
