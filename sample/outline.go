package sample

import "github.com/voidshard/slasupport/geom"

// Restriction holds the ordered lines an OutlinePoint is allowed to slide
// along, mirroring SupportOutlineIslandPoint::Restriction. Two concrete
// topologies exist, matching RestrictionLineSequence (an open run, used for
// a single contiguous outline run — field.OutlineSamples' non-circular
// case) and RestrictionCircleSequence (a closed loop — the all-outline
// case).
type Restriction struct {
	Lines    []geom.Line
	Circular bool
}

// NewRestriction builds a Restriction over lines, open or circular per the
// caller's knowledge of how field.InnerField.OutlineSamples produced them.
func NewRestriction(lines []geom.Line, circular bool) *Restriction {
	return &Restriction{Lines: lines, Circular: circular}
}

func (r *Restriction) nextIndex(i int) (int, bool) {
	i++
	if i >= len(r.Lines) {
		if r.Circular {
			return 0, true
		}
		return 0, false
	}
	return i, true
}

func (r *Restriction) prevIndex(i int) (int, bool) {
	if i == 0 {
		if r.Circular {
			return len(r.Lines) - 1, true
		}
		return 0, false
	}
	return i - 1, true
}

// OutlinePosition addresses a point on a Restriction: Index selects the
// line, Ratio its position from line.A (0) to line.B (1), matching
// SupportOutlineIslandPoint::Position exactly.
type OutlinePosition struct {
	Index int
	Ratio float64
}

func (r *Restriction) point(pos OutlinePosition) geom.Point {
	return r.Lines[pos.Index].PointAt(pos.Ratio)
}

// OutlinePoint is a support point restricted to slide along a fixed set of
// outline/inner-offset lines (§4.5 step 3, thick_part_outline). Move only
// ever searches the current line and its immediate neighbors (the
// restriction's lines are short relative to destination jumps during
// relaxation, so a full restriction scan is unnecessary — matching the
// original's single-step create_result/update_result search).
type OutlinePoint struct {
	PointType   Type
	Position    OutlinePosition
	Restriction *Restriction
	Flags       Flags
}

func NewOutlinePoint(t Type, pos OutlinePosition, r *Restriction) *OutlinePoint {
	return &OutlinePoint{PointType: t, Position: pos, Restriction: r, Flags: newFlags()}
}

func (p *OutlinePoint) Type() Type        { return p.PointType }
func (p *OutlinePoint) At() geom.Point    { return p.Restriction.point(p.Position) }
func (p *OutlinePoint) CanMove() bool     { return !p.Flags.IsPermanent() }
func (p *OutlinePoint) MarkPermanent()    { p.Flags.MarkPermanent() }

func (p *OutlinePoint) Move(destination geom.Point) float64 {
	before := p.At()
	defer p.Flags.MarkMoved()
	best := p.closestOnLine(p.Position.Index, destination)

	if next, ok := p.Restriction.nextIndex(p.Position.Index); ok {
		cand := p.closestOnLine(next, destination)
		if cand.dist < best.dist {
			best = cand
		}
	}
	if prev, ok := p.Restriction.prevIndex(p.Position.Index); ok {
		cand := p.closestOnLine(prev, destination)
		if cand.dist < best.dist {
			best = cand
		}
	}

	p.Position = OutlinePosition{Index: best.index, Ratio: best.ratio}
	return before.Dist(p.At())
}

type lineCandidate struct {
	index int
	ratio float64
	dist  float64
}

func (p *OutlinePoint) closestOnLine(index int, destination geom.Point) lineCandidate {
	line := p.Restriction.Lines[index]
	pt, _ := line.ClosestPointOnSegment(destination)
	length := line.Length()
	ratio := 0.0
	if length > 0 {
		ratio = pt.Dist(line.A) / length
	}
	return lineCandidate{index: index, ratio: ratio, dist: pt.Dist(destination)}
}
