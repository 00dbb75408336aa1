// Package config defines the tunable parameters of the support sampling
// pipeline (spec.md §6) and the validation/repair rules a caller's settings
// must satisfy before generation runs.
//
// Config is always passed explicitly, never held as global state (spec.md
// §9 flags the original's GUI-tunable global SampleConfig for removal).
package config

import "github.com/voidshard/slasupport/geom"

// RadiusPoint is one control point of the support-radius-vs-height curve
// (§4.8): X is a radius in millimeters, Y is the corresponding Δz in
// millimeters at which a support reaches that radius of influence.
type RadiusPoint struct {
	RadiusMM float64
	DeltaZMM float64
}

// RadiusCurve is a monotone piecewise-linear function r(Δz), stored as its
// control points sorted ascending by DeltaZMM. The curve must start with the
// island support radius (§6).
type RadiusCurve []RadiusPoint

// RadiusAt linearly interpolates the curve's radius (in scaled units) for a
// given Δz (in scaled units). idx is an in/out cursor: callers should pass
// the cursor returned by the previous call for the same support to avoid
// rescanning the whole curve every layer (§4.8: "advance its curve index
// until the next control point is above the current Δz").
func (c RadiusCurve) RadiusAt(deltaZ geom.Coord, idx int) (radius geom.Coord, nextIdx int) {
	if len(c) == 0 {
		return 0, 0
	}
	if idx < 0 {
		idx = 0
	}
	dz := geom.UnscaleMM(deltaZ)
	for idx < len(c)-1 && c[idx+1].DeltaZMM <= dz {
		idx++
	}
	if idx >= len(c)-1 {
		return geom.ScaleMM(c[len(c)-1].RadiusMM), len(c) - 1
	}
	a, b := c[idx], c[idx+1]
	if b.DeltaZMM == a.DeltaZMM {
		return geom.ScaleMM(a.RadiusMM), idx
	}
	t := (dz - a.DeltaZMM) / (b.DeltaZMM - a.DeltaZMM)
	r := a.RadiusMM + t*(b.RadiusMM-a.RadiusMM)
	return geom.ScaleMM(r), idx
}

// PrepareSupportConfig configures the preparation pass that turns raw layer
// polygons into linked parts (§4.8-§4.11). Field names and defaults mirror
// original_source's PrepareSupportConfig (SampleConfig.hpp).
type PrepareSupportConfig struct {
	// DiscretizeOverhangStepMM is the spacing (in mm) between discretized
	// samples on an overhanging contour fragment (§4.10).
	DiscretizeOverhangStepMM float64

	// PeninsulaMinWidth: a peninsula candidate must project further than
	// this beyond the previous layer's union (§4.9).
	PeninsulaMinWidth geom.Coord

	// PeninsulaSelfSupportedWidth: inside this offset of the previous
	// layer's union, the current layer is considered self-supported
	// (§4.9). Must be smaller than PeninsulaMinWidth.
	PeninsulaSelfSupportedWidth geom.Coord

	// RemovingDelta buffers a part's extend_shape for the "does this
	// inherited point still belong here" test (§4.8).
	RemovingDelta geom.Coord

	// MinimalBoundingSphereRadiusMM is the small-part pruning threshold
	// (§4.11), in mm.
	MinimalBoundingSphereRadiusMM float64
}

// SampleConfig controls per-island sampling (§4.1-§4.7) plus the
// PrepareSupportConfig for cross-layer preparation. Field names, units and
// defaults mirror original_source's SampleConfig (SampleConfig.hpp) — this
// pack's retrieved example repos carry no config-validation library
// (no viper/kong/envconfig anywhere in _examples/), so this remains a plain
// struct with an explicit Verify method, matching the teacher's own
// repair-inline idiom (config.go's CityConfig/init()).
type SampleConfig struct {
	ThinMaxDistance           geom.Coord
	ThickInnerMaxDistance     geom.Coord
	ThickOutlineMaxDistance   geom.Coord
	HeadRadius                geom.Coord
	MinimalDistanceFromOutline geom.Coord
	MaximalDistanceFromOutline geom.Coord

	MaxLengthForOneSupportPoint        geom.Coord
	MaxLengthForTwoSupportPoints       geom.Coord
	MaxLengthRatioForTwoSupportPoints  float64

	ThinMaxWidth  geom.Coord
	ThickMinWidth geom.Coord
	MinPartLength geom.Coord

	MinimalMove      geom.Coord
	CountIteration   int
	MaxAlignDistance geom.Coord

	SimplificationTolerance geom.Coord

	Prepare PrepareSupportConfig
}

// Default returns a SampleConfig populated with original_source's defaults
// (SampleConfig.hpp's member initializers), expressed in scaled units.
func Default() *SampleConfig {
	cfg := &SampleConfig{
		ThinMaxDistance:                   geom.ScaleMM(5),
		ThickInnerMaxDistance:             geom.ScaleMM(5),
		ThickOutlineMaxDistance:           geom.ScaleMM(5 * 3 / 4.0),
		HeadRadius:                        geom.ScaleMM(0.4),
		MinimalDistanceFromOutline:        0,
		MaximalDistanceFromOutline:        geom.ScaleMM(1),
		MaxLengthForOneSupportPoint:       geom.ScaleMM(1),
		MaxLengthForTwoSupportPoints:      geom.ScaleMM(1),
		MaxLengthRatioForTwoSupportPoints: 0.25,
		ThinMaxWidth:                      geom.ScaleMM(1),
		ThickMinWidth:                     geom.ScaleMM(1),
		MinPartLength:                     geom.ScaleMM(1),
		MinimalMove:                       geom.ScaleMM(0.01),
		CountIteration:                    100,
		MaxAlignDistance:                  0,
		SimplificationTolerance:           geom.ScaleMM(0.05),
		Prepare: PrepareSupportConfig{
			DiscretizeOverhangStepMM:       2,
			PeninsulaMinWidth:              geom.ScaleMM(2),
			PeninsulaSelfSupportedWidth:    geom.ScaleMM(1.5),
			RemovingDelta:                  geom.ScaleMM(5),
			MinimalBoundingSphereRadiusMM:  0.2,
		},
	}
	return cfg
}
