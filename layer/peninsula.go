package layer

import "github.com/voidshard/slasupport/geom"

// PeninsulaRegion is a part that projects far enough beyond the previous
// layer's material to need its own support field (§4.9), with the two
// outward offsets of its largest parent used to classify it: contour
// edges inside SelfSupported need nothing (ChordEdges turns them into
// chords), and the rest is the exposed coast that gets sampled.
// DetectPeninsula only reports a region when the part's contour also
// reaches outside Candidate, the wider of the two offsets.
type PeninsulaRegion struct {
	Part          *Part
	Candidate     *geom.ExPolygon
	SelfSupported *geom.ExPolygon
}

// DetectPeninsula implements §4.9: offset each parent's shape outward by
// cfg's self-supported and min-width thresholds, and report the band of
// part.Shape lying beyond the self-supported offset — a peninsula
// candidate, in original_source's terms.
//
// This pack carries no general polygon-boolean (no multi-polygon union is
// available anywhere in _examples/ — see DESIGN.md), so a part with
// several parents is approximated by the single parent with the largest
// link.OverlapArea rather than a true union of all parents' offsets; this
// mirrors the similar single-polygon simplification already used for
// Lloyd relaxation (align.cellTarget).
func DetectPeninsula(part *Part, selfSupportedWidth, candidateWidth geom.Coord) (*PeninsulaRegion, bool) {
	if len(part.Prev) == 0 {
		return nil, false
	}
	parent := part.Prev[0]
	for _, l := range part.Prev {
		if l.OverlapArea > parent.OverlapArea {
			parent = l
		}
	}

	// OffsetPolygon shrinks for positive delta, so growing the parent
	// outward by the self-supported/candidate widths needs a negative
	// delta.
	selfPoly := geom.OffsetPolygon(parent.From.Shape.Contour, -float64(selfSupportedWidth))
	candidatePoly := geom.OffsetPolygon(parent.From.Shape.Contour, -float64(candidateWidth))

	region := &PeninsulaRegion{
		Part:          part,
		Candidate:     geom.NewExPolygon(candidatePoly, nil),
		SelfSupported: geom.NewExPolygon(selfPoly, nil),
	}

	beyond := false
	for _, p := range part.Shape.Contour.Points {
		if !region.SelfSupported.Contains(p) {
			beyond = true
			break
		}
	}
	if !beyond {
		return nil, false
	}

	// A part that only nicks the self-supported offset without reaching
	// the farther candidate band is better left to overhang handling —
	// §4.9 restricts peninsulas to the part of the shape that also
	// intersects the candidate offset, not merely beyond the nearer one.
	intersectsCandidate := false
	for _, p := range part.Shape.Contour.Points {
		if !region.Candidate.Contains(p) {
			intersectsCandidate = true
			break
		}
	}
	if !intersectsCandidate {
		return nil, false
	}

	return region, true
}

// ChordEdges returns the set of part.Shape.Contour edge indices lying on
// the self-supported ("land") side of region, for use as
// field.NewField's chordEdges: only the exposed coast side is sampled as
// a thick field's outline, the land side is treated as a synthetic chord
// the same way a thin-neighbour transition is for an ordinary island
// part (§4.9 routes peninsula sampling through §4.5's field machinery,
// restricted to the coast).
func ChordEdges(region *PeninsulaRegion) map[int]bool {
	chords := map[int]bool{}
	for i, l := range region.Part.Shape.Contour.Lines() {
		if region.SelfSupported.Contains(l.PointAt(0.5)) {
			chords[i] = true
		}
	}
	return chords
}

// CoastEdges classifies part.Shape's boundary edges into "land" (inside
// the self-supported offset, needs no support) and "coast" (beyond it,
// the peninsula's exposed fringe), matching original_source's
// coast/land edge split used to decide where a peninsula's own outline
// field (§4.5) should be sampled from.
func CoastEdges(region *PeninsulaRegion) (coast, land []geom.Line) {
	for _, l := range region.Part.Shape.Contour.Lines() {
		mid := l.PointAt(0.5)
		if region.SelfSupported.Contains(mid) {
			land = append(land, l)
		} else {
			coast = append(coast, l)
		}
	}
	return coast, land
}
