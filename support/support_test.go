package support

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidshard/slasupport/config"
	"github.com/voidshard/slasupport/geom"
)

func square(cx, cy, side float64) *geom.ExPolygon {
	s := geom.ScaleMM(side)
	hs := s / 2
	cxS, cyS := geom.ScaleMM(cx), geom.ScaleMM(cy)
	poly := geom.NewPolygon([]geom.Point{
		geom.Pt(cxS-hs, cyS-hs), geom.Pt(cxS+hs, cyS-hs),
		geom.Pt(cxS+hs, cyS+hs), geom.Pt(cxS-hs, cyS+hs),
	})
	return geom.NewExPolygon(poly, nil)
}

func rect(cx, cy, w, h float64) *geom.ExPolygon {
	wS, hS := geom.ScaleMM(w)/2, geom.ScaleMM(h)/2
	cxS, cyS := geom.ScaleMM(cx), geom.ScaleMM(cy)
	poly := geom.NewPolygon([]geom.Point{
		geom.Pt(cxS-wS, cyS-hS), geom.Pt(cxS+wS, cyS-hS),
		geom.Pt(cxS+wS, cyS+hS), geom.Pt(cxS-wS, cyS+hS),
	})
	return geom.NewExPolygon(poly, nil)
}

// §8: a tiny 4mm square gets support points, all within 1mm of its bounds.
func TestSampleIslandTinySquareStaysNearIsland(t *testing.T) {
	cfg := config.Default()
	ep := square(0, 0, 4)

	points, err := SampleIsland(ep, cfg, nil)
	require.NoError(t, err)
	require.NotEmpty(t, points)
	for _, p := range points {
		assert.True(t, ep.Bounds().Expand(geom.ScaleMM(1)).Contains(p.At()))
	}
}

// §8: a 30x30mm square should yield many points (outline + inner grid).
func TestSampleIslandLargeSquareYieldsManyPoints(t *testing.T) {
	cfg := config.Default()
	ep := square(0, 0, 30)

	points, err := SampleIsland(ep, cfg, nil)
	require.NoError(t, err)
	assert.Greater(t, len(points), 5)
	for _, p := range points {
		assert.True(t, ep.Contains(p.At()) || ep.Bounds().Expand(geom.ScaleMM(2)).Contains(p.At()))
	}
}

// §8: a long thin 30x1.5mm rectangle should produce a chain of points
// down its length rather than a single point.
func TestSampleIslandThinRectangleYieldsChain(t *testing.T) {
	cfg := config.Default()
	ep := rect(0, 0, 30, 1.5)

	points, err := SampleIsland(ep, cfg, nil)
	require.NoError(t, err)
	assert.Greater(t, len(points), 1)
}

func TestGenerateEmptyLayersReturnsEmptyResult(t *testing.T) {
	cfg := config.Default()
	res, err := Generate(nil, nil, cfg, config.RadiusCurve{{RadiusMM: 0.4, DeltaZMM: 0}}, nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
	require.NotNil(t, res)
	assert.Empty(t, res.Points)
}

func TestGenerateSingleLayerProducesPoints(t *testing.T) {
	cfg := config.Default()
	curve := config.RadiusCurve{{RadiusMM: 0.4, DeltaZMM: 0}, {RadiusMM: 2, DeltaZMM: 10}}

	layers := []LayerInput{
		{ZMM: 0.1, Islands: []*geom.ExPolygon{square(0, 0, 10)}},
	}
	res, err := Generate(layers, nil, cfg, curve, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Points)
}

func TestGenerateCancellationStopsEarly(t *testing.T) {
	cfg := config.Default()
	curve := config.RadiusCurve{{RadiusMM: 0.4, DeltaZMM: 0}}
	layers := []LayerInput{
		{ZMM: 0, Islands: []*geom.ExPolygon{square(0, 0, 10)}},
		{ZMM: 0.1, Islands: []*geom.ExPolygon{square(0, 0, 10)}},
	}

	_, err := Generate(layers, nil, cfg, curve, func(i int) bool { return i == 1 })
	assert.ErrorIs(t, err, ErrCancelled)
}

// §8: a 2mm-tall 1mm-diameter pillar with a 2mm minimal bounding sphere
// radius should end up fully pruned.
func TestGeneratePillarBelowMinimumSphereIsPruned(t *testing.T) {
	cfg := config.Default()
	cfg.Prepare.MinimalBoundingSphereRadiusMM = 2
	curve := config.RadiusCurve{{RadiusMM: 0.4, DeltaZMM: 0}}

	layers := []LayerInput{
		{ZMM: 0, Islands: []*geom.ExPolygon{square(0, 0, 1)}},
		{ZMM: 2, Islands: []*geom.ExPolygon{square(0, 0, 1)}},
	}
	res, err := Generate(layers, nil, cfg, curve, nil)
	require.NoError(t, err)
	assert.Empty(t, res.Points)
}

// §6 Input: a permanent point must survive pruning and appear in the
// output even when the island itself would otherwise be fully pruned.
func TestGeneratePermanentPointSurvivesAndAppearsInOutput(t *testing.T) {
	cfg := config.Default()
	cfg.Prepare.MinimalBoundingSphereRadiusMM = 2
	curve := config.RadiusCurve{{RadiusMM: 0.4, DeltaZMM: 0}}

	layers := []LayerInput{
		{ZMM: 0, Islands: []*geom.ExPolygon{square(0, 0, 1)}},
		{ZMM: 2, Islands: []*geom.ExPolygon{square(0, 0, 1)}},
	}
	permanent := []PermanentPoint{{X: 0, Y: 0, Z: 1, HeadRadiusMM: 0.5}}

	res, err := Generate(layers, permanent, cfg, curve, nil)
	require.NoError(t, err)
	require.Len(t, res.Points, 1)
	assert.Equal(t, "permanent", res.Points[0].Type)
}

func TestResultJSONIncludesPointType(t *testing.T) {
	r := &Result{Points: []SupportPoint{{X: 1, Y: 2, Z: 3, Type: "one_center_point"}}}
	data, err := r.JSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), "one_center_point")
}
