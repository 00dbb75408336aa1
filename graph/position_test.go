package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voidshard/slasupport/geom"
)

func TestPositionPointInterpolates(t *testing.T) {
	g := NewGraph()
	a := g.AddNode(0, geom.Pt(0, 0), 0)
	b := g.AddNode(1, geom.Pt(10, 0), 0)
	size := NeighborSize{Length: 10, MinWidth: 1, MaxWidth: 3}
	g.Connect(a, b, size)

	pos := Position{From: a, To: b, Edge: a.Neighbors[0], Ratio: 0.5}
	pt := pos.Point()
	assert.InDelta(t, 5, float64(pt.X), 1e-6)
	assert.InDelta(t, 2, pos.Width(), 1e-6)
	assert.InDelta(t, 5, pos.Distance(), 1e-6)
}

func TestPositionWithRatioClamps(t *testing.T) {
	g := NewGraph()
	a := g.AddNode(0, geom.Pt(0, 0), 0)
	b := g.AddNode(1, geom.Pt(10, 0), 0)
	g.Connect(a, b, NeighborSize{Length: 10})

	pos := Position{From: a, To: b, Edge: a.Neighbors[0], Ratio: 0.5}
	assert.Equal(t, 1.0, pos.WithRatio(5).Ratio)
	assert.Equal(t, 0.0, pos.WithRatio(-5).Ratio)
}
