package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voidshard/slasupport/graph"
)

func TestFlagsMarkMovedAndPermanent(t *testing.T) {
	f := newFlags()
	assert.False(t, f.WasMoved())
	assert.False(t, f.IsPermanent())

	f.MarkMoved()
	assert.True(t, f.WasMoved())
	assert.False(t, f.IsPermanent())

	f.MarkPermanent()
	assert.True(t, f.IsPermanent())
}

func TestCenterPointMarksMovedAfterMove(t *testing.T) {
	_, n0 := chainGraph()
	pos := graph.Position{From: n0, To: n0.Neighbors[0].Node, Edge: n0.Neighbors[0], Ratio: 0.1}
	cp := NewCenterPoint(TypeThinPart, pos)
	assert.False(t, cp.Flags.WasMoved())
	cp.Move(n0.Neighbors[0].Node.At)
	assert.True(t, cp.Flags.WasMoved())
}
