package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidshard/slasupport/geom"
)

func square(side float64) []geom.Point {
	s := geom.ScaleMM(side)
	return []geom.Point{
		geom.Pt(0, 0), geom.Pt(s, 0), geom.Pt(s, s), geom.Pt(0, s),
	}
}

func TestNewFieldAllOutlineByDefault(t *testing.T) {
	f := NewField(square(30), nil)
	require.Len(t, f.Edges, 4)
	for _, e := range f.Edges {
		assert.True(t, e.IsInnerOutline)
	}
}

func TestNewFieldMarksChord(t *testing.T) {
	f := NewField(square(30), map[int]bool{2: true})
	assert.False(t, f.Edges[2].IsInnerOutline)
	assert.True(t, f.Edges[0].IsInnerOutline)
}

func TestInnerOffsetPropagatesFlags(t *testing.T) {
	f := NewField(square(30), map[int]bool{1: true})
	inner := f.InnerOffset(float64(geom.ScaleMM(1)))
	require.Len(t, inner.Edges, 4)
	assert.False(t, inner.Edges[1].IsInnerOutline)
	assert.True(t, inner.Edges[0].IsInnerOutline)

	b := inner.ExPolygon().Bounds()
	assert.True(t, float64(b.Min.X) > 0)
}

func TestOutlineSamplesAllOutlineIsCircular(t *testing.T) {
	f := NewField(square(30), nil)
	inner := f.InnerOffset(0)
	pts := inner.OutlineSamples(float64(geom.ScaleMM(5)))
	assert.NotEmpty(t, pts)
}

func TestOutlineSamplesSkipsChordRun(t *testing.T) {
	f := NewField(square(30), map[int]bool{0: true})
	inner := f.InnerOffset(0)
	pts := inner.OutlineSamples(float64(geom.ScaleMM(5)))
	// only 3 of 4 edges are outline; every sample must lie off edge 0 (y==0 run)
	for _, p := range pts {
		assert.False(t, p.Y == 0 && p.X > 0 && p.X < geom.ScaleMM(30))
	}
}

func TestTriangularGridFillsSquareInterior(t *testing.T) {
	ep := geom.NewExPolygon(geom.NewPolygon(square(30)), nil)
	pts := TriangularGrid(ep, float64(geom.ScaleMM(5)))
	assert.NotEmpty(t, pts)
	for _, p := range pts {
		assert.True(t, ep.Contains(p))
	}
}
