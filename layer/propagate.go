package layer

import "github.com/voidshard/slasupport/config"

// Action is what a part needs from the sampling pipeline once its
// NearPoints tree has been inherited and filtered (§4.8 step 2-4).
type Action int

const (
	// ActionIslandSample means the part has no parent links (IsIsland) and
	// needs a full §4.1-§4.7 island pass (thin/thick partition, field
	// sampling, Lloyd relaxation) run by the caller.
	ActionIslandSample Action = iota
	// ActionOverhang means the part has parents and is not a peninsula,
	// but at least one of its contour vertices is not covered by the
	// inherited NearPoints; it needs §4.10 overhang-point discretization.
	ActionOverhang
	// ActionPeninsula means part of the part's fringe projects beyond
	// its parents' self-supported offset (§4.9) and needs peninsula
	// field sampling on the coast edges.
	ActionPeninsula
	// ActionInherited means the inherited NearPoints tree already
	// covers the part; nothing new needs sampling.
	ActionInherited
)

// Decision is the result of evaluating one part during propagation.
type Decision struct {
	Part   *Part
	Action Action
	// Peninsula is populated when Action == ActionPeninsula.
	Peninsula *PeninsulaRegion
}

// PrepareNear builds part.Near by merging copies of every parent's
// NearPoints tree (§4.8 step 1-2: "each part inherits its parents'
// trees"), then filtering out supports that no longer fall within the
// part's buffered extent (RemovingDelta), mirroring original_source's
// remove_supports_outside_removing_delta.
func PrepareNear(part *Part, store *Store, cfg config.PrepareSupportConfig) {
	if len(part.Prev) == 0 {
		part.Near = NewNearPoints(store)
		return
	}

	merged := part.Prev[0].From.Near.Copy()
	for _, l := range part.Prev[1:] {
		merged = merged.Merge(l.From.Near)
	}

	bounds := part.Shape.Bounds().Expand(cfg.RemovingDelta)
	part.Near = merged.Filter(func(sp *SupportPoint) bool {
		return bounds.Contains(sp.Pt)
	})
}

// Evaluate implements §4.8 step 3-4's per-part branch: decide whether a
// part needs a fresh island pass, overhang discretization, peninsula
// sampling, or nothing at all.
func Evaluate(part *Part, cfg config.PrepareSupportConfig) Decision {
	if part.IsIsland() {
		return Decision{Part: part, Action: ActionIslandSample}
	}

	if region, ok := DetectPeninsula(part, cfg.PeninsulaSelfSupportedWidth, cfg.PeninsulaMinWidth); ok {
		return Decision{Part: part, Action: ActionPeninsula, Peninsula: region}
	}

	covered := true
	for _, v := range part.Shape.Contour.Points {
		if part.Near == nil || !part.Near.Covers(v) {
			covered = false
			break
		}
	}
	if covered {
		return Decision{Part: part, Action: ActionInherited}
	}
	return Decision{Part: part, Action: ActionOverhang}
}

// AdvanceAll advances every tracked support's radius for the layer part
// now sits on (§4.8 step 1), run before Evaluate so coverage checks see
// up-to-date radii.
func AdvanceAll(part *Part, curve config.RadiusCurve) {
	if part.Near == nil {
		return
	}
	for _, idx := range part.Near.Indices {
		AdvanceRadius(part.Near.Store.Get(idx), part.Z, curve)
	}
}
