package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffsetPolygonShrinksSquare(t *testing.T) {
	square := NewPolygon([]Point{
		Pt(0, 0), Pt(100, 0), Pt(100, 100), Pt(0, 100),
	})
	require := assert.New(t)
	require.True(square.IsCCW())

	inner := OffsetPolygon(square, 10)
	b := inner.Bounds()
	assert.InDelta(t, 10, float64(b.Min.X), 1)
	assert.InDelta(t, 90, float64(b.Max.X), 1)
}
