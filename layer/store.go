// Package layer implements cross-layer propagation (§4.8-§4.11): a
// shared append-only support-point store, per-part NearPoints indices,
// peninsula/overhang detection, and small-part pruning, wired to the
// per-island sampling in `sample`/`align`/`field`.
package layer

import (
	"github.com/voidshard/slasupport/config"
	"github.com/voidshard/slasupport/geom"
	"github.com/voidshard/slasupport/sample"
)

// SupportPoint is one entry in the global, append-only support store
// (§9 "Per-layer trees sharing a global store"): a placed 2D point plus
// the bookkeeping needed to grow its influence radius as layers stack.
type SupportPoint struct {
	Pt            geom.Point
	Type          sample.Type
	Z             geom.Coord // layer height this support was created on
	IsPermanent   bool
	CurrentRadius geom.Coord
	CurveIndex    int
}

// Store is the shared buffer every NearPoints indexes into. Indices are
// stable for the store's lifetime: nothing is ever removed, only appended
// (§5 "Shared resources").
type Store struct {
	Points []*SupportPoint
}

// NewStore returns an empty Store.
func NewStore() *Store { return &Store{} }

// Add appends p and returns its stable index.
func (s *Store) Add(p *SupportPoint) int {
	s.Points = append(s.Points, p)
	return len(s.Points) - 1
}

// Get returns the point at idx.
func (s *Store) Get(idx int) *SupportPoint { return s.Points[idx] }

// AdvanceRadius implements §4.8's support-radius-vs-height curve:
// interpolate r(Δz) for a live support, or — for a permanent support
// whose Δz is negative (the layer is below the pin) — the spherical-cap
// radius sqrt(r(0)² − Δz²).
func AdvanceRadius(p *SupportPoint, layerZ geom.Coord, curve config.RadiusCurve) {
	deltaZ := layerZ - p.Z
	if p.IsPermanent && deltaZ < 0 && len(curve) > 0 {
		r0 := curve[0].RadiusMM
		dz := geom.UnscaleMM(-deltaZ)
		if dz >= r0 {
			p.CurrentRadius = 0
			return
		}
		p.CurrentRadius = geom.ScaleMM(sqrtApprox(r0*r0 - dz*dz))
		return
	}
	r, idx := curve.RadiusAt(deltaZ, p.CurveIndex)
	p.CurrentRadius = r
	p.CurveIndex = idx
}

func sqrtApprox(v float64) float64 {
	if v <= 0 {
		return 0
	}
	// Newton's method: the curve's control points are few and this runs
	// once per support per layer, so a fixed iteration count is simpler
	// than importing math for a single call site's sqrt.
	x := v
	for i := 0; i < 20; i++ {
		x = 0.5 * (x + v/x)
	}
	return x
}
