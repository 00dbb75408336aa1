package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidshard/slasupport/geom"
)

func TestDefaultPassesCheck(t *testing.T) {
	cfg := Default()
	assert.Empty(t, cfg.Check())
}

func TestVerifySwapsThickMinAndThinMax(t *testing.T) {
	cfg := Default()
	cfg.ThinMaxWidth = geom.ScaleMM(1)
	cfg.ThickMinWidth = geom.ScaleMM(2)
	require.NotEmpty(t, cfg.Check())

	cfg.Verify()
	assert.LessOrEqual(t, cfg.ThickMinWidth, cfg.ThinMaxWidth)
	assert.Empty(t, cfg.Check())
}

func TestVerifyClampsMaximalDistanceFromOutline(t *testing.T) {
	cfg := Default()
	cfg.MaximalDistanceFromOutline = geom.ScaleMM(1000)
	cfg.Verify()
	assert.LessOrEqual(t, cfg.MaximalDistanceFromOutline, cfg.radiusUpperBound())
}

func TestVerifyRepairsPeninsulaWidths(t *testing.T) {
	cfg := Default()
	cfg.Prepare.PeninsulaSelfSupportedWidth = cfg.Prepare.PeninsulaMinWidth
	cfg.Verify()
	assert.Less(t, cfg.Prepare.PeninsulaSelfSupportedWidth, cfg.Prepare.PeninsulaMinWidth)
}

func TestRadiusCurveInterpolates(t *testing.T) {
	curve := RadiusCurve{
		{RadiusMM: 1, DeltaZMM: 0},
		{RadiusMM: 3, DeltaZMM: 10},
	}
	r, idx := curve.RadiusAt(geom.ScaleMM(5), 0)
	assert.InDelta(t, 2.0, geom.UnscaleMM(r), 1e-6)
	assert.Equal(t, 0, idx)

	r, idx = curve.RadiusAt(geom.ScaleMM(20), idx)
	assert.InDelta(t, 3.0, geom.UnscaleMM(r), 1e-9)
	assert.Equal(t, 1, idx)
}

func TestDeriveScalesWithDensity(t *testing.T) {
	sparse := Derive(0.4, 0.5, nil)
	dense := Derive(0.4, 2.0, nil)
	assert.Greater(t, sparse.ThinMaxDistance, dense.ThinMaxDistance)
	assert.Empty(t, sparse.Check())
	assert.Empty(t, dense.Check())
}

func TestDeriveClampsLowDensity(t *testing.T) {
	cfg := Derive(0.4, 0.0, nil)
	assert.Empty(t, cfg.Check())
}
