// Package sample defines the support-point DTO emitted by island sampling
// (§4.4-§4.6) and the restriction each point carries on how it is allowed
// to move during the later Lloyd relaxation pass (align).
//
// Grounded on original_source's SupportIslandPoint.hpp: the Type enum,
// the can_move()/move() virtual-dispatch split, and the three concrete
// point kinds (center/outline/inner) are carried over as a Go interface
// plus concrete structs instead of a class hierarchy.
package sample

import (
	"github.com/voidshard/slasupport/geom"
	"github.com/voidshard/slasupport/graph"
)

// Type classifies the origin of a support point, mirroring
// SupportIslandPoint::Type exactly (§4.4-§4.6, §8 worked examples refer to
// these names directly: OneCenter, CenterIsland, OutlineIsland, etc).
type Type uint8

const (
	TypeUndefined Type = iota
	TypeOneBBCenter
	TypeOneCenter
	TypeTwoPoints
	TypeTwoPointsBackup
	TypeThinPart
	TypeThinPartChange
	TypeThinPartLoop
	TypeThickPartOutline
	TypeThickPartInner
	TypeBadShapeForVD
	TypePermanent
)

func (t Type) String() string {
	switch t {
	case TypeOneBBCenter:
		return "one_bb_center_point"
	case TypeOneCenter:
		return "one_center_point"
	case TypeTwoPoints:
		return "two_points"
	case TypeTwoPointsBackup:
		return "two_points_backup"
	case TypeThinPart:
		return "thin_part"
	case TypeThinPartChange:
		return "thin_part_change"
	case TypeThinPartLoop:
		return "thin_part_loop"
	case TypeThickPartOutline:
		return "thick_part_outline"
	case TypeThickPartInner:
		return "thick_part_inner"
	case TypeBadShapeForVD:
		return "bad_shape_for_vd"
	case TypePermanent:
		return "permanent"
	default:
		return "undefined"
	}
}

// CanMove reports whether points of this type are ever movable, matching
// SupportIslandPoint::can_move(Type) — independent of any instance's
// dynamic can_move() override, used to pre-filter candidates before
// constructing a concrete Point.
func (t Type) CanMove() bool {
	return t != TypePermanent
}

// Point is a placed support point plus enough provenance to move it during
// alignment (§4.7). Each concrete type restricts Move to the region it
// was sampled from — a centerline point stays on the skeleton, an outline
// point stays on its restriction lines, an inner point stays inside the
// field's inner ExPolygons.
type Point interface {
	Type() Type
	At() geom.Point
	CanMove() bool
	// Move relocates the point as close as possible to destination while
	// honoring its restriction, returning the distance actually moved.
	Move(destination geom.Point) float64
}

// FixedPoint is a support point that never moves: one-shot placements
// (island bounding-box center, single-center islands) and externally
// supplied permanent points (§4.6, §9 permanent-point injection).
type FixedPoint struct {
	PointType Type
	Pt        geom.Point
	Flags     Flags
}

func NewFixedPoint(t Type, pt geom.Point) *FixedPoint {
	return &FixedPoint{PointType: t, Pt: pt, Flags: newFlags()}
}

func (p *FixedPoint) Type() Type                       { return p.PointType }
func (p *FixedPoint) At() geom.Point                   { return p.Pt }
func (p *FixedPoint) CanMove() bool                    { return false }
func (p *FixedPoint) Move(destination geom.Point) float64 { return 0 }
func (p *FixedPoint) MarkPermanent()                   { p.Flags.MarkPermanent() }

// CenterPoint is a support point restricted to the skeleton graph, placed
// by the thin-part centerline sampler (§4.4). Moving it slides it along
// its current Position edge only (see Move).
type CenterPoint struct {
	PointType Type
	Position  graph.Position
	Flags     Flags
}

func NewCenterPoint(t Type, pos graph.Position) *CenterPoint {
	return &CenterPoint{PointType: t, Position: pos, Flags: newFlags()}
}

func (p *CenterPoint) Type() Type        { return p.PointType }
func (p *CenterPoint) At() geom.Point    { return p.Position.Point() }
func (p *CenterPoint) CanMove() bool     { return !p.Flags.IsPermanent() }
func (p *CenterPoint) MarkPermanent()    { p.Flags.MarkPermanent() }

// Move re-ratios the point along its current edge to the point on that
// edge nearest destination, clamped at the edge's ends. It never crosses
// to a different edge of the skeleton, and no caller (align included)
// re-anchors the point onto another edge.
func (p *CenterPoint) Move(destination geom.Point) float64 {
	before := p.At()
	defer p.Flags.MarkMoved()
	from, to := p.Position.From.At, p.Position.To.At
	dx, dy := float64(to.X-from.X), float64(to.Y-from.Y)
	length2 := dx*dx + dy*dy
	ratio := p.Position.Ratio
	if length2 > 0 {
		wx, wy := float64(destination.X-from.X), float64(destination.Y-from.Y)
		ratio = (wx*dx + wy*dy) / length2
	}
	p.Position = p.Position.WithRatio(ratio)
	return before.Dist(p.At())
}
