package config

import (
	"fmt"

	"github.com/voidshard/slasupport/geom"
)

// Check returns every invariant violation found in cfg without modifying it,
// the strict counterpart to Verify's auto-repair (spec.md §6 "Config
// validation"). Useful for CI/test fixtures that want to fail loudly instead
// of silently repairing.
func (c *SampleConfig) Check() []error {
	var errs []error
	if c.ThickMinWidth > c.ThinMaxWidth {
		errs = append(errs, fmt.Errorf("thick_min_width (%d) must be <= thin_max_width (%d)", c.ThickMinWidth, c.ThinMaxWidth))
	}
	if c.MaxLengthForOneSupportPoint > c.MaxLengthForTwoSupportPoints {
		errs = append(errs, fmt.Errorf("max_length_for_one_support_point (%d) must be <= max_length_for_two_support_points (%d)", c.MaxLengthForOneSupportPoint, c.MaxLengthForTwoSupportPoints))
	}
	if c.MaxLengthRatioForTwoSupportPoints <= 0 || c.MaxLengthRatioForTwoSupportPoints >= 0.5 {
		errs = append(errs, fmt.Errorf("max_length_ratio_for_two_support_points (%f) must be in (0, 0.5)", c.MaxLengthRatioForTwoSupportPoints))
	}
	upper := c.radiusUpperBound()
	if c.MaximalDistanceFromOutline > upper {
		errs = append(errs, fmt.Errorf("maximal_distance_from_outline (%d) exceeds derived upper bound (%d)", c.MaximalDistanceFromOutline, upper))
	}
	if c.Prepare.PeninsulaSelfSupportedWidth >= c.Prepare.PeninsulaMinWidth {
		errs = append(errs, fmt.Errorf("peninsula_self_supported_width (%d) must be < peninsula_min_width (%d)", c.Prepare.PeninsulaSelfSupportedWidth, c.Prepare.PeninsulaMinWidth))
	}
	if c.ThinMaxDistance <= 0 || c.ThickInnerMaxDistance <= 0 || c.ThickOutlineMaxDistance <= 0 {
		errs = append(errs, fmt.Errorf("thin_max_distance, thick_inner_max_distance, thick_outline_max_distance must all be > 0"))
	}
	return errs
}

// radiusUpperBound computes the per-radius upper bound original_source's
// SampleConfigFactory derives:
// thin_max_distance + 2*head_radius + 2*minimal_distance_from_outline.
func (c *SampleConfig) radiusUpperBound() geom.Coord {
	return c.ThinMaxDistance + 2*c.HeadRadius + 2*c.MinimalDistanceFromOutline
}

// Verify repairs cfg in place so every invariant holds, following the
// teacher's "repair inline, never surface" convention (citygraph.go:init()
// clamps MainRoadWidth and defaults Centre without returning an error).
// Repairs: clamp, swap, or halve, per spec.md §6.
func (c *SampleConfig) Verify() {
	if c.ThickMinWidth > c.ThinMaxWidth {
		c.ThickMinWidth, c.ThinMaxWidth = c.ThinMaxWidth, c.ThickMinWidth
	}
	if c.MaxLengthForOneSupportPoint > c.MaxLengthForTwoSupportPoints {
		c.MaxLengthForOneSupportPoint, c.MaxLengthForTwoSupportPoints = c.MaxLengthForTwoSupportPoints, c.MaxLengthForOneSupportPoint
	}
	if c.MaxLengthRatioForTwoSupportPoints <= 0 {
		c.MaxLengthRatioForTwoSupportPoints = 0.25
	} else if c.MaxLengthRatioForTwoSupportPoints >= 0.5 {
		c.MaxLengthRatioForTwoSupportPoints /= 2
		if c.MaxLengthRatioForTwoSupportPoints >= 0.5 {
			c.MaxLengthRatioForTwoSupportPoints = 0.25
		}
	}
	if upper := c.radiusUpperBound(); c.MaximalDistanceFromOutline > upper {
		c.MaximalDistanceFromOutline = upper
	}
	if c.Prepare.PeninsulaSelfSupportedWidth >= c.Prepare.PeninsulaMinWidth {
		c.Prepare.PeninsulaSelfSupportedWidth = c.Prepare.PeninsulaMinWidth / 2
	}
	if c.ThinMaxDistance <= 0 {
		c.ThinMaxDistance = geom.ScaleMM(5)
	}
	if c.ThickInnerMaxDistance <= 0 {
		c.ThickInnerMaxDistance = geom.ScaleMM(5)
	}
	if c.ThickOutlineMaxDistance <= 0 {
		c.ThickOutlineMaxDistance = geom.ScaleMM(5 * 3 / 4.0)
	}
	if c.CountIteration <= 0 {
		c.CountIteration = 100
	}
	if c.MaxAlignDistance <= 0 {
		c.MaxAlignDistance = c.ThinMaxDistance
	}
}

// Derive builds a SampleConfig from the small set of user-facing knobs
// spec.md §6 exposes (head_diameter, density_relative), matching
// original_source's SampleConfigFactory::create. densityRelative is first
// clamped to >= 0.1 per spec.md §6, then scales thin_max_distance and
// thick_outline_max_distance linearly and thick_inner_max_distance
// quadratically (the interior grid covers area, not length).
func Derive(headDiameterMM float64, densityRelative float64, curve RadiusCurve) *SampleConfig {
	if densityRelative < 0.1 {
		densityRelative = 0.1
	}

	cfg := Default()
	cfg.HeadRadius = geom.ScaleMM(headDiameterMM / 2)

	cfg.ThinMaxDistance = geom.Coord(float64(cfg.ThinMaxDistance) / densityRelative)
	cfg.ThickOutlineMaxDistance = geom.Coord(float64(cfg.ThickOutlineMaxDistance) / densityRelative)
	cfg.ThickInnerMaxDistance = geom.Coord(float64(cfg.ThickInnerMaxDistance) / (densityRelative * densityRelative))

	if len(curve) > 0 {
		cfg.MaxLengthForOneSupportPoint = geom.ScaleMM(curve[0].RadiusMM)
	}

	cfg.Verify()
	return cfg
}
