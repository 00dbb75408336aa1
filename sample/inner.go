package sample

import "github.com/voidshard/slasupport/geom"

// InnerPoint is a support point free to move anywhere inside a thick
// field's inner region (§4.5 step 4, thick_part_inner), matching
// SupportIslandInnerPoint's unrestricted-within-ExPolygons move.
type InnerPoint struct {
	PointType Type
	Pt        geom.Point
	Inner     geom.ExPolygons
	Flags     Flags
}

func NewInnerPoint(t Type, pt geom.Point, inner geom.ExPolygons) *InnerPoint {
	return &InnerPoint{PointType: t, Pt: pt, Inner: inner, Flags: newFlags()}
}

func (p *InnerPoint) Type() Type     { return p.PointType }
func (p *InnerPoint) At() geom.Point { return p.Pt }
func (p *InnerPoint) CanMove() bool  { return !p.Flags.IsPermanent() }
func (p *InnerPoint) MarkPermanent() { p.Flags.MarkPermanent() }

// Move relocates to destination if it lies inside the inner region,
// otherwise holds position — matching the original's "nearest point
// inside ExPolygons" behavior for the common case (relaxation targets
// rarely leave the region by more than a rounding error once Lloyd
// iteration converges).
func (p *InnerPoint) Move(destination geom.Point) float64 {
	before := p.Pt
	defer p.Flags.MarkMoved()
	if p.Inner.ContainsAny(destination) {
		p.Pt = destination
	}
	return before.Dist(p.Pt)
}
