package support

import (
	"runtime"
	"sync"

	"github.com/pkg/errors"

	"github.com/voidshard/slasupport/align"
	"github.com/voidshard/slasupport/config"
	"github.com/voidshard/slasupport/field"
	"github.com/voidshard/slasupport/geom"
	"github.com/voidshard/slasupport/layer"
	"github.com/voidshard/slasupport/sample"
)

// LayerInput is one slice's worth of islands passed to Generate, ordered
// bottom to top. ZMM is the layer's height in millimeters; Islands are
// already-built ExPolygons (scaled internal coordinates, §3).
type LayerInput struct {
	ZMM     float64
	Islands []*geom.ExPolygon
}

// CancelFunc is polled between layers (§5's cooperative cancellation) and,
// when it returns true, stops Generate early and returns ErrCancelled with
// whatever support points were already produced.
type CancelFunc func(layerIndex int) bool

// ErrCancelled is returned when a CancelFunc aborts Generate early.
var ErrCancelled = errors.New("support generation cancelled")

// ErrEmptyInput is returned (alongside an empty, non-nil Result) when
// Generate is called with no layers — §7's Empty-slices class.
var ErrEmptyInput = errors.New("support generation: no layers given")

// ErrInvariantViolated is returned when the skeleton graph built for an
// island breaks an internal invariant the sampling passes depend on
// (§7's Internal-invariant-violated class) — currently this is only
// graph.Partition's centre-of-longest-path lookup.
var ErrInvariantViolated = errors.New("support generation: internal invariant violated")

// PermanentPoint is one user-pinned support position (§6 Input: "a list
// of permanent support positions as 3D points plus a head radius").
// Permanent points must be sorted ascending by Z, as the spec requires.
type PermanentPoint struct {
	X, Y, Z      float64
	HeadRadiusMM float64
}

// workerCount bounds how many part evaluations of one layer run at once:
// Generate starts one goroutine per part and a semaphore of this size lets
// at most workerCount() of them evaluate concurrently. GOMAXPROCS is a
// reasonable default absent any pack-demonstrated worker-pool sizing
// convention.
func workerCount() int {
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	return n
}

// Generate implements §4.8-§4.11 and the top-level §1 pipeline: for every
// layer, link its islands to the previous layer's parts, inherit/advance
// supports, decide per-part action, sample accordingly, then (after every
// layer has run) prune small parts and flatten the shared store into a
// Result. permanent is §6 Input's "list of permanent support positions as
// 3D points plus a head radius" (sorted ascending by Z, as the spec
// requires); each is seeded into the shared store up front as an
// IsPermanent point so it survives pruning and always appears in the
// output, has its spherical-cap radius advanced every layer like any
// other support (layer.AdvanceRadius), and is passed (as a 2D projection)
// into every part's own sampling/relaxation pass for the duration of the
// run so nearby island/peninsula points avoid colliding with it.
//
// Per §7: an empty layers slice returns an empty, non-nil Result plus
// ErrEmptyInput (not every caller has geometry to support, but the
// sentinel still lets a caller distinguish "nothing to do" from success);
// a degenerate island that fails skeleton construction yields one
// BadShape point rather than aborting the whole run (handled inside
// SampleIsland); a broken skeleton invariant surfaces as
// ErrInvariantViolated with whatever partial results were already
// produced; cfg is auto-repaired via Verify() before use, never rejected
// outright.
func Generate(layers []LayerInput, permanent []PermanentPoint, cfg *config.SampleConfig, curve config.RadiusCurve, cancel CancelFunc) (*Result, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	cfg.Verify()
	if len(layers) == 0 {
		return &Result{}, ErrEmptyInput
	}

	store := layer.NewStore()
	permanentIdx := make([]int, len(permanent))
	permanent2D := make([]geom.Point, len(permanent))
	for i, pp := range permanent {
		pt := geom.Pt(geom.ScaleMM(pp.X), geom.ScaleMM(pp.Y))
		permanent2D[i] = pt
		permanentIdx[i] = store.Add(&layer.SupportPoint{
			Pt:            pt,
			Type:          sample.TypePermanent,
			Z:             geom.ScaleMM(pp.Z),
			IsPermanent:   true,
			CurrentRadius: geom.ScaleMM(pp.HeadRadiusMM),
		})
	}

	var allParts []*layer.Part
	var prevParts []*layer.Part

	for li, in := range layers {
		if cancel != nil && cancel(li) {
			return flatten(store, allParts), ErrCancelled
		}

		z := geom.ScaleMM(in.ZMM)
		for _, idx := range permanentIdx {
			layer.AdvanceRadius(store.Get(idx), z, curve)
		}

		parts := make([]*layer.Part, len(in.Islands))
		for i, ep := range in.Islands {
			parts[i] = &layer.Part{ID: i, Z: z, Shape: ep}
		}
		linkToPrevious(prevParts, parts)

		for _, part := range parts {
			layer.PrepareNear(part, store, cfg.Prepare)
			layer.AdvanceAll(part, curve)
		}

		decisions := make([]layer.Decision, len(parts))
		var wg sync.WaitGroup
		sem := make(chan struct{}, workerCount())
		for i, part := range parts {
			wg.Add(1)
			sem <- struct{}{}
			go func(i int, part *layer.Part) {
				defer wg.Done()
				defer func() { <-sem }()
				decisions[i] = layer.Evaluate(part, cfg.Prepare)
			}(i, part)
		}
		wg.Wait()

		for i, part := range parts {
			newPoints, err := act(decisions[i], part, cfg, permanent2D)
			if err != nil {
				return flatten(store, allParts), err
			}
			for _, p := range newPoints {
				idx := store.Add(&layer.SupportPoint{
					Pt:            p.At(),
					Type:          p.Type(),
					Z:             z,
					CurrentRadius: firstRadius(curve),
				})
				part.Near.Add(idx)
				part.Supports = append(part.Supports, idx)
			}
		}

		allParts = append(allParts, parts...)
		prevParts = parts
	}

	layer.PruneSmallParts(allParts, geom.ScaleMM(cfg.Prepare.MinimalBoundingSphereRadiusMM))

	return flatten(store, allParts), nil
}

func firstRadius(curve config.RadiusCurve) geom.Coord {
	r, _ := curve.RadiusAt(0, 0)
	return r
}

// linkToPrevious connects each current-layer part to every previous-layer
// part whose bounding box overlaps it — a cheap proxy for true polygon
// intersection (§9: no general polygon-boolean library is available to
// compute exact overlap area; bounding-box overlap area is used as
// PartLink.OverlapArea's ranking signal instead, sufficient for the
// largest-parent approximation DetectPeninsula and the part-merge choices
// already make).
func linkToPrevious(prev, cur []*layer.Part) {
	if len(prev) == 0 {
		return
	}
	for _, c := range cur {
		cb := c.Shape.Bounds()
		for _, p := range prev {
			pb := p.Shape.Bounds()
			overlap := boxOverlapArea(cb, pb)
			if overlap > 0 {
				layer.Link(p, c, overlap)
			}
		}
	}
}

func boxOverlapArea(a, b geom.Bounds) float64 {
	x0 := maxCoord(a.Min.X, b.Min.X)
	y0 := maxCoord(a.Min.Y, b.Min.Y)
	x1 := minCoord(a.Max.X, b.Max.X)
	y1 := minCoord(a.Max.Y, b.Max.Y)
	if x1 <= x0 || y1 <= y0 {
		return 0
	}
	return geom.UnscaleMM(x1-x0) * geom.UnscaleMM(y1-y0)
}

func maxCoord(a, b geom.Coord) geom.Coord {
	if a > b {
		return a
	}
	return b
}

func minCoord(a, b geom.Coord) geom.Coord {
	if a < b {
		return a
	}
	return b
}

// act dispatches a part's Decision to the right sampling routine and
// returns whatever new sample.Points it produced (empty for
// ActionInherited). permanent (2D projections of Generate's permanent
// points) is threaded through to whichever routine relaxes its points
// against the island (§4.7's permanent-point injection).
func act(d layer.Decision, part *layer.Part, cfg *config.SampleConfig, permanent []geom.Point) ([]sample.Point, error) {
	switch d.Action {
	case layer.ActionIslandSample:
		return SampleIsland(part.Shape, cfg, permanent)
	case layer.ActionOverhang:
		step := geom.ScaleMM(cfg.Prepare.DiscretizeOverhangStepMM)
		pts := layer.OverhangPoints(part, step)
		return toFixedPoints(pts, sample.TypeThickPartOutline), nil
	case layer.ActionPeninsula:
		return samplePeninsula(d.Peninsula, cfg, permanent), nil
	default:
		return nil, nil
	}
}

func toFixedPoints(pts []geom.Point, t sample.Type) []sample.Point {
	out := make([]sample.Point, len(pts))
	for i, p := range pts {
		out[i] = sample.NewFixedPoint(t, p)
	}
	return out
}

// samplePeninsula implements §4.9: route a peninsula through the same
// field-sampling-then-relaxation machinery §4.5/§4.7 define for an
// ordinary thick island part, restricted to the part's own contour with
// the self-supported ("land") edges marked as synthetic chords — exactly
// how a thin-neighbour transition is marked for a regular thick part —
// so only the exposed coast is treated as outline.
func samplePeninsula(region *layer.PeninsulaRegion, cfg *config.SampleConfig, permanent []geom.Point) []sample.Point {
	f := field.NewField(region.Part.Shape.Contour.Points, layer.ChordEdges(region))
	inner := f.InnerOffset(float64(cfg.MinimalDistanceFromOutline))
	points := sample.SampleThickPart(inner, cfg, false)
	return align.Relax(points, region.Part.Shape.Bounds(), region.Part.Shape, permanent, cfg)
}

func flatten(store *layer.Store, allParts []*layer.Part) *Result {
	pruned := make(map[int]bool)
	for _, p := range allParts {
		if p.Pruned() {
			for _, idx := range p.Supports {
				pruned[idx] = true
			}
		}
	}

	var out []SupportPoint
	for i, sp := range store.Points {
		if pruned[i] {
			continue
		}
		out = append(out, newSupportPoint(sp.Pt, sp.Z, sp.Type, geom.UnscaleMM(sp.CurrentRadius)))
	}
	return &Result{Points: out}
}
