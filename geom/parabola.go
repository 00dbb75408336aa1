package geom

import "math"

// Parabola is the bisector curve of a point site (Focus) and a line site
// (the Directrix's supporting line) in a segment-site Voronoi diagram (§3).
// In the parabola's own coordinate frame it is y = x^2/(4f) where f is the
// focus-to-directrix distance; Parabola stores enough to map between that
// local frame and world coordinates.
type Parabola struct {
	Focus     Point
	Directrix Line
}

// FocusDirectrixDistance returns the perpendicular distance from Focus to
// the directrix's supporting line — twice this value is the parabola's
// vertex width, used by §4.1's min_width clamp when an edge interval
// straddles the vertex.
func (p Parabola) FocusDirectrixDistance() float64 {
	return p.Directrix.DistanceToPoint(p.Focus)
}

// localFrame returns the parabola's local basis: origin at the vertex
// (midpoint between focus and its projection on the directrix), u axis
// parallel to the directrix, v axis along the axis of symmetry (towards the
// focus).
func (p Parabola) localFrame() (origin Point, ux, uy, vx, vy float64) {
	dx, dy := p.Directrix.Direction()
	// foot of perpendicular from focus onto the directrix line
	foot := p.Directrix.A
	vx0, vy0 := p.Directrix.Vector()
	if l2 := vx0*vx0 + vy0*vy0; l2 > 0 {
		t := (float64(p.Focus.X-p.Directrix.A.X)*vx0 + float64(p.Focus.Y-p.Directrix.A.Y)*vy0) / l2
		foot = p.Directrix.PointAt(t)
	}
	// vertex sits halfway between focus and foot
	vertex := Point{
		X: (p.Focus.X + foot.X) / 2,
		Y: (p.Focus.Y + foot.Y) / 2,
	}
	nx, ny := p.Directrix.Normal()
	// orient v axis towards the focus
	toFocusX := float64(p.Focus.X - vertex.X)
	toFocusY := float64(p.Focus.Y - vertex.Y)
	if nx*toFocusX+ny*toFocusY < 0 {
		nx, ny = -nx, -ny
	}
	return vertex, dx, dy, nx, ny
}

// toLocal projects a world point into the parabola's local (u,v) frame.
func (p Parabola) toLocal(pt Point) (u, v float64) {
	origin, ux, uy, vx, vy := p.localFrame()
	wx := float64(pt.X - origin.X)
	wy := float64(pt.Y - origin.Y)
	return wx*ux + wy*uy, wx*vx + wy*vy
}

// ParabolaSegment is an arc of a Parabola between two endpoints (§3).
type ParabolaSegment struct {
	Parabola Parabola
	Start    Point
	End      Point
}

// ArcLength returns the length of the parabola arc between Start and End,
// via the closed-form integral of y = x^2/(4f) (§4.1). The sign/ordering of
// the interval is handled relative to the vertex (u=0); when the interval
// straddles the vertex, the two sub-lengths are summed.
func (ps ParabolaSegment) ArcLength() float64 {
	f := ps.Parabola.FocusDirectrixDistance()
	if f <= 0 {
		return ps.Start.Dist(ps.End)
	}
	u0, _ := ps.Parabola.toLocal(ps.Start)
	u1, _ := ps.Parabola.toLocal(ps.End)
	if u0 > u1 {
		u0, u1 = u1, u0
	}
	if u0 < 0 && u1 > 0 {
		return arcLenFromVertex(u1, f) + arcLenFromVertex(-u0, f)
	}
	return math.Abs(arcLenFromVertex(u1, f) - arcLenFromVertex(u0, f))
}

// arcLenFromVertex returns the arc length of y=x^2/(4f) from u=0 to u=u
// (u assumed >= 0), using the standard parabola arc-length closed form.
func arcLenFromVertex(u, f float64) float64 {
	if u == 0 {
		return 0
	}
	a := u / (2 * f)
	return (u/2)*math.Sqrt(1+a*a) + f*math.Asinh(a)
}

// pointAtLocal returns the world-space point on the parabola at the raw
// local u-parameter. For positions proportional to arc length, use
// PointAtRatio instead.
func (ps ParabolaSegment) pointAtLocal(u float64) Point {
	f := ps.Parabola.FocusDirectrixDistance()
	v := (u * u) / (4 * f)
	origin, ux, uy, vx, vy := ps.Parabola.localFrame()
	wx := float64(origin.X) + u*ux + v*vx
	wy := float64(origin.Y) + u*uy + v*vy
	return Point{Coord(math.Round(wx)), Coord(math.Round(wy))}
}

// PointAtRatio linearly interpolates along the sampled parabola arc at
// ratio t in [0,1] (§3: "interpolates... along a sampled parabola for
// curved edges"). The arc is discretized into small steps and the point
// closest to the requested arc-length fraction is returned.
func (ps ParabolaSegment) PointAtRatio(t float64) Point {
	const steps = 32
	u0, _ := ps.Parabola.toLocal(ps.Start)
	u1, _ := ps.Parabola.toLocal(ps.End)

	total := ps.ArcLength()
	if total == 0 {
		return ps.Start.Lerp(ps.End, t)
	}
	target := t * total

	prev := ps.pointAtLocal(u0)
	acc := 0.0
	for i := 1; i <= steps; i++ {
		u := u0 + (u1-u0)*float64(i)/steps
		cur := ps.pointAtLocal(u)
		segLen := prev.Dist(cur)
		if acc+segLen >= target || i == steps {
			remain := target - acc
			if segLen == 0 {
				return cur
			}
			return prev.Lerp(cur, remain/segLen)
		}
		acc += segLen
		prev = cur
	}
	return ps.End
}

// MinMaxWidth computes twice the distance from each endpoint to the
// generating site(s), clamped at the vertex per §4.1:
//
//	"twice the distance from edge endpoints to the focus; if the interval
//	straddles the vertex, clamp min_width to twice the focus-directrix
//	distance."
func (ps ParabolaSegment) MinMaxWidth() (min, max float64) {
	d0 := 2 * ps.Start.Dist(ps.Parabola.Focus)
	d1 := 2 * ps.End.Dist(ps.Parabola.Focus)
	min, max = d0, d1
	if min > max {
		min, max = max, min
	}
	u0, _ := ps.Parabola.toLocal(ps.Start)
	u1, _ := ps.Parabola.toLocal(ps.End)
	if (u0 < 0 && u1 > 0) || (u0 > 0 && u1 < 0) {
		vertexWidth := 2 * ps.Parabola.FocusDirectrixDistance()
		if vertexWidth < min {
			min = vertexWidth
		}
	}
	return min, max
}
