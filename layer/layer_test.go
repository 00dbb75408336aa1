package layer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidshard/slasupport/config"
	"github.com/voidshard/slasupport/geom"
	"github.com/voidshard/slasupport/sample"
)

func squarePart(id int, z geom.Coord, cx, cy, side float64) *Part {
	s := geom.ScaleMM(side)
	hs := s / 2
	cxS, cyS := geom.ScaleMM(cx), geom.ScaleMM(cy)
	poly := geom.NewPolygon([]geom.Point{
		geom.Pt(cxS-hs, cyS-hs), geom.Pt(cxS+hs, cyS-hs),
		geom.Pt(cxS+hs, cyS+hs), geom.Pt(cxS-hs, cyS+hs),
	})
	return &Part{ID: id, Z: z, Shape: geom.NewExPolygon(poly, nil)}
}

func TestNewNearPointsNearestAndCovers(t *testing.T) {
	store := NewStore()
	idx := store.Add(&SupportPoint{Pt: geom.Pt(geom.ScaleMM(0), geom.ScaleMM(0)), CurrentRadius: geom.ScaleMM(1)})

	n := NewNearPoints(store)
	n.Add(idx)

	found, ok := n.Nearest(geom.Pt(geom.ScaleMM(0.1), 0))
	require.True(t, ok)
	assert.Equal(t, idx, found)

	assert.True(t, n.Covers(geom.Pt(geom.ScaleMM(0.5), 0)))
	assert.False(t, n.Covers(geom.Pt(geom.ScaleMM(5), 0)))
}

func TestNearPointsMergeDeduplicates(t *testing.T) {
	store := NewStore()
	a := store.Add(&SupportPoint{Pt: geom.Pt(0, 0)})
	b := store.Add(&SupportPoint{Pt: geom.Pt(geom.ScaleMM(1), 0)})

	n1 := NewNearPoints(store)
	n1.Add(a)
	n1.Add(b)
	n2 := NewNearPoints(store)
	n2.Add(b)

	merged := n1.Merge(n2)
	assert.Len(t, merged.Indices, 2)
}

func TestNearPointsFilterKeepsOnlyMatching(t *testing.T) {
	store := NewStore()
	a := store.Add(&SupportPoint{Pt: geom.Pt(0, 0)})
	b := store.Add(&SupportPoint{Pt: geom.Pt(geom.ScaleMM(100), 0)})
	n := NewNearPoints(store)
	n.Add(a)
	n.Add(b)

	filtered := n.Filter(func(sp *SupportPoint) bool { return sp.Pt.X < geom.ScaleMM(10) })
	assert.Equal(t, []int{a}, filtered.Indices)
}

func TestAdvanceRadiusInterpolatesAlongCurve(t *testing.T) {
	curve := config.RadiusCurve{
		{RadiusMM: 0.4, DeltaZMM: 0},
		{RadiusMM: 2.0, DeltaZMM: 10},
	}
	sp := &SupportPoint{Z: 0, CurrentRadius: geom.ScaleMM(0.4)}
	AdvanceRadius(sp, geom.ScaleMM(5), curve)
	assert.InDelta(t, 1.2, geom.UnscaleMM(sp.CurrentRadius), 0.01)
}

func TestAdvanceRadiusPermanentShrinksBelowPin(t *testing.T) {
	curve := config.RadiusCurve{{RadiusMM: 1, DeltaZMM: 0}}
	sp := &SupportPoint{Z: geom.ScaleMM(10), IsPermanent: true}
	AdvanceRadius(sp, geom.ScaleMM(9.5), curve)
	assert.InDelta(t, 0.866, geom.UnscaleMM(sp.CurrentRadius), 0.01)
}

func TestLinkTracksPrevAndNext(t *testing.T) {
	a := squarePart(0, 0, 0, 0, 10)
	b := squarePart(1, geom.ScaleMM(1), 0, 0, 10)
	Link(a, b, 100)

	assert.True(t, a.IsIsland())
	assert.False(t, b.IsIsland())
	require.Len(t, b.Prev, 1)
	assert.Same(t, a, b.Prev[0].From)
	require.Len(t, a.Next, 1)
	assert.Same(t, b, a.Next[0].To)
}

func TestEvaluateIslandPartNeedsSampling(t *testing.T) {
	p := squarePart(0, 0, 0, 0, 4)
	cfg := config.Default()
	d := Evaluate(p, cfg.Prepare)
	assert.Equal(t, ActionIslandSample, d.Action)
}

func TestEvaluateInheritedWhenFullyCovered(t *testing.T) {
	parent := squarePart(0, 0, 0, 0, 10)
	child := squarePart(1, geom.ScaleMM(1), 0, 0, 10)
	Link(parent, child, 100)

	store := NewStore()
	idx := store.Add(&SupportPoint{Pt: geom.Pt(0, 0), CurrentRadius: geom.ScaleMM(100)})
	parent.Near = NewNearPoints(store)
	parent.Near.Add(idx)

	cfg := config.Default()
	PrepareNear(child, store, cfg.Prepare)
	AdvanceAll(child, config.RadiusCurve{{RadiusMM: 100, DeltaZMM: 0}})

	d := Evaluate(child, cfg.Prepare)
	assert.Equal(t, ActionInherited, d.Action)
}

func TestEvaluateOverhangWhenUncovered(t *testing.T) {
	parent := squarePart(0, 0, 0, 0, 1)
	child := squarePart(1, geom.ScaleMM(1), 0, 0, 10)
	Link(parent, child, 1)

	store := NewStore()
	parent.Near = NewNearPoints(store)

	cfg := config.Default()
	PrepareNear(child, store, cfg.Prepare)

	d := Evaluate(child, cfg.Prepare)
	assert.Contains(t, []Action{ActionOverhang, ActionPeninsula}, d.Action)
}

func TestOverhangPointsWalksFullLoop(t *testing.T) {
	p := squarePart(0, 0, 0, 0, 10)
	pts := OverhangPoints(p, geom.ScaleMM(2))
	assert.NotEmpty(t, pts)
}

func TestOverhangPointsNoneWhenFullyCovered(t *testing.T) {
	parent := squarePart(0, 0, 0, 0, 20)
	child := squarePart(1, geom.ScaleMM(1), 0, 0, 10)
	Link(parent, child, 100)

	pts := OverhangPoints(child, geom.ScaleMM(2))
	assert.Empty(t, pts)
}

func TestDetectPeninsulaFindsProjectingPart(t *testing.T) {
	parent := squarePart(0, 0, 0, 0, 10)
	child := squarePart(1, geom.ScaleMM(1), 3, 0, 10) // shifted far right
	Link(parent, child, 1)

	region, ok := DetectPeninsula(child, geom.ScaleMM(1.5), geom.ScaleMM(2))
	require.True(t, ok)
	coast, land := CoastEdges(region)
	assert.NotEmpty(t, coast)
	_ = land
}

func TestDetectPeninsulaFalseWhenFullyWithinParent(t *testing.T) {
	parent := squarePart(0, 0, 0, 0, 10)
	child := squarePart(1, geom.ScaleMM(1), 0, 0, 5)
	Link(parent, child, 1)

	_, ok := DetectPeninsula(child, geom.ScaleMM(1.5), geom.ScaleMM(2))
	assert.False(t, ok)
}

func TestPruneSmallPartsMarksShortPillar(t *testing.T) {
	bottom := squarePart(0, 0, 0, 0, 1)
	top := squarePart(1, geom.ScaleMM(2), 0, 0, 1)
	Link(bottom, top, 1)

	n := PruneSmallParts([]*Part{bottom, top}, geom.ScaleMM(2))
	assert.Equal(t, 2, n)
	assert.True(t, bottom.Pruned())
	assert.True(t, top.Pruned())
}

func TestPruneSmallPartsLeavesTallPartUnpruned(t *testing.T) {
	bottom := squarePart(0, 0, 0, 0, 10)
	top := squarePart(1, geom.ScaleMM(50), 0, 0, 10)
	Link(bottom, top, 1)

	n := PruneSmallParts([]*Part{bottom, top}, geom.ScaleMM(2))
	assert.Equal(t, 0, n)
	assert.False(t, bottom.Pruned())
}

func TestPruneSmallPartsPatchesLinksAroundPrunedMiddle(t *testing.T) {
	bottom := squarePart(0, 0, 0, 0, 50)
	mid := squarePart(1, geom.ScaleMM(0.1), 0, 0, 1)
	top := squarePart(2, geom.ScaleMM(0.2), 0, 0, 50)
	Link(bottom, mid, 1)
	Link(mid, top, 1)

	n := PruneSmallParts([]*Part{bottom, mid, top}, geom.ScaleMM(1))
	assert.Equal(t, 1, n)
	assert.True(t, mid.Pruned())

	found := false
	for _, l := range top.Prev {
		if l.From == bottom {
			found = true
		}
	}
	assert.True(t, found, "top should be relinked directly to bottom")
}

func TestSupportPointTypeSurvivesStore(t *testing.T) {
	store := NewStore()
	idx := store.Add(&SupportPoint{Pt: geom.Pt(1, 1), Type: sample.TypeThickPartInner})
	assert.Equal(t, sample.TypeThickPartInner, store.Get(idx).Type)
}
