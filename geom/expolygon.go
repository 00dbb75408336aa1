package geom

// ExPolygon is one outer CCW contour plus zero or more CW holes (§3).
// Invariant: holes lie strictly inside the contour and do not overlap.
type ExPolygon struct {
	Contour *Polygon
	Holes   []*Polygon
}

// NewExPolygon constructs an ExPolygon, normalizing contour/hole winding
// (CCW outer, CW holes) and hole ordering per spec.md §8 Invariant 1 (sorted
// by polygon size then lexicographic point order).
func NewExPolygon(contour *Polygon, holes []*Polygon) *ExPolygon {
	if !contour.IsCCW() {
		contour.Reverse()
	}
	for _, h := range holes {
		if h.IsCCW() {
			h.Reverse()
		}
	}
	SortBySize(holes)
	return &ExPolygon{Contour: contour, Holes: holes}
}

// Lines returns every boundary line of the ExPolygon: the contour's first,
// then each hole's, in hole order.
func (e *ExPolygon) Lines() []Line {
	lines := e.Contour.Lines()
	for _, h := range e.Holes {
		lines = append(lines, h.Lines()...)
	}
	return lines
}

// Contains reports whether pt lies inside the contour and outside every
// hole.
func (e *ExPolygon) Contains(pt Point) bool {
	if !e.Contour.Contains(pt) {
		return false
	}
	for _, h := range e.Holes {
		if h.Contains(pt) {
			return false
		}
	}
	return true
}

// Bounds returns the bounding box of the outer contour (holes are strictly
// interior per the type invariant, so they never extend it).
func (e *ExPolygon) Bounds() Bounds {
	return e.Contour.Bounds()
}

// Area returns the ExPolygon's area: the contour's area minus every hole's.
func (e *ExPolygon) Area() float64 {
	a := e.Contour.SignedArea()
	if a < 0 {
		a = -a
	}
	for _, h := range e.Holes {
		ha := h.SignedArea()
		if ha < 0 {
			ha = -ha
		}
		a -= ha
	}
	return a
}

// ExPolygons is a slice of ExPolygon, the usual unit of work for a field or
// an island's inner offset region (§3 Field, §4.5).
type ExPolygons []*ExPolygon

// ContainsAny reports whether pt lies inside any ExPolygon in the set.
func (eps ExPolygons) ContainsAny(pt Point) bool {
	for _, e := range eps {
		if e.Contains(pt) {
			return true
		}
	}
	return false
}

// Bounds returns the union bounding box of every ExPolygon in the set.
func (eps ExPolygons) Bounds() Bounds {
	if len(eps) == 0 {
		return Bounds{}
	}
	b := eps[0].Bounds()
	for _, e := range eps[1:] {
		eb := e.Bounds()
		if eb.Min.X < b.Min.X {
			b.Min.X = eb.Min.X
		}
		if eb.Min.Y < b.Min.Y {
			b.Min.Y = eb.Min.Y
		}
		if eb.Max.X > b.Max.X {
			b.Max.X = eb.Max.X
		}
		if eb.Max.Y > b.Max.Y {
			b.Max.Y = eb.Max.Y
		}
	}
	return b
}
