// Package spline evaluates the individual parametric curve pieces a Path
// is stitched from: Bezier, Cubic Hermite, and Quintic Hermite.
package spline

import (
	"github.com/fenwickrobotics/motioncore/geom"
)

// Kind identifies which spline family a Segment was built with. This is a
// tagged variant rather than an interface with one implementation per
// family: evaluation is dispatched once in each of At/DerivAt/SecondDerivAt
// instead of through per-type method sets.
type Kind int

const (
	KindBezier Kind = iota
	KindCubicHermite
	KindQuinticHermite
)

// Segment is one parametric curve over local parameter t in [0,1], joining
// two waypoint poses with tangent directions derived from their headings.
type Segment struct {
	kind Kind

	p0, p1 geom.Vec2 // endpoint positions
	m0, m1 geom.Vec2 // endpoint tangents, already scaled by alpha

	// b0..b3 are cached cubic Bezier control points, populated for
	// KindBezier only.
	b0, b1, b2, b3 geom.Vec2
}

// NewSegment builds a segment of the given kind between two waypoint poses.
// heading0/heading1 are the field-oriented headings (radians from +Y,
// clockwise) at each endpoint; alpha scales the resulting tangent
// magnitude, per spec: tangent = alpha * (sin(heading), cos(heading)).
func NewSegment(kind Kind, p0, p1 geom.Vec2, heading0, heading1, alpha float64) Segment {
	m0 := geom.HeadingVec(heading0).Scale(alpha)
	m1 := geom.HeadingVec(heading1).Scale(alpha)
	seg := Segment{kind: kind, p0: p0, p1: p1, m0: m0, m1: m1}
	if kind == KindBezier {
		// Standard Hermite-to-Bezier control point conversion: the
		// interior control points sit a third of the tangent away from
		// each endpoint.
		seg.b0 = p0
		seg.b1 = p0.Add(m0.Scale(1.0 / 3.0))
		seg.b2 = p1.Sub(m1.Scale(1.0 / 3.0))
		seg.b3 = p1
	}
	return seg
}

// Kind reports which spline family this segment uses.
func (s Segment) Kind() Kind {
	return s.kind
}

// At evaluates the segment's position at local parameter t in [0,1].
func (s Segment) At(t float64) geom.Vec2 {
	switch s.kind {
	case KindBezier:
		return s.bezierAt(t)
	case KindQuinticHermite:
		return s.quinticAt(t)
	default:
		return s.cubicHermiteAt(t)
	}
}

// DerivAt evaluates the segment's first derivative at local parameter t.
func (s Segment) DerivAt(t float64) geom.Vec2 {
	switch s.kind {
	case KindBezier:
		return s.bezierDerivAt(t)
	case KindQuinticHermite:
		return s.quinticDerivAt(t)
	default:
		return s.cubicHermiteDerivAt(t)
	}
}

// SecondDerivAt evaluates the segment's second derivative at local
// parameter t.
func (s Segment) SecondDerivAt(t float64) geom.Vec2 {
	switch s.kind {
	case KindBezier:
		return s.bezierSecondDerivAt(t)
	case KindQuinticHermite:
		return s.quinticSecondDerivAt(t)
	default:
		return s.cubicHermiteSecondDerivAt(t)
	}
}

func mix(a, b, c, d geom.Vec2, wa, wb, wc, wd float64) geom.Vec2 {
	return geom.Vec2{
		X: a.X*wa + b.X*wb + c.X*wc + d.X*wd,
		Y: a.Y*wa + b.Y*wb + c.Y*wc + d.Y*wd,
	}
}

// --- Cubic Hermite ---

func (s Segment) cubicHermiteAt(t float64) geom.Vec2 {
	t2, t3 := t*t, t*t*t
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2
	return mix(s.p0, s.m0, s.p1, s.m1, h00, h10, h01, h11)
}

func (s Segment) cubicHermiteDerivAt(t float64) geom.Vec2 {
	t2 := t * t
	h00 := 6*t2 - 6*t
	h10 := 3*t2 - 4*t + 1
	h01 := -6*t2 + 6*t
	h11 := 3*t2 - 2*t
	return mix(s.p0, s.m0, s.p1, s.m1, h00, h10, h01, h11)
}

func (s Segment) cubicHermiteSecondDerivAt(t float64) geom.Vec2 {
	h00 := 12*t - 6
	h10 := 6*t - 4
	h01 := -12*t + 6
	h11 := 6*t - 2
	return mix(s.p0, s.m0, s.p1, s.m1, h00, h10, h01, h11)
}

// --- Bezier (cubic) ---

func (s Segment) bezierAt(t float64) geom.Vec2 {
	u := 1 - t
	w0 := u * u * u
	w1 := 3 * u * u * t
	w2 := 3 * u * t * t
	w3 := t * t * t
	return mix(s.b0, s.b1, s.b2, s.b3, w0, w1, w2, w3)
}

func (s Segment) bezierDerivAt(t float64) geom.Vec2 {
	u := 1 - t
	d1 := s.b1.Sub(s.b0).Scale(3 * u * u)
	d2 := s.b2.Sub(s.b1).Scale(6 * u * t)
	d3 := s.b3.Sub(s.b2).Scale(3 * t * t)
	return d1.Add(d2).Add(d3)
}

func (s Segment) bezierSecondDerivAt(t float64) geom.Vec2 {
	u := 1 - t
	term1 := s.b2.Sub(s.b1.Scale(2)).Add(s.b0).Scale(6 * u)
	term2 := s.b3.Sub(s.b2.Scale(2)).Add(s.b1).Scale(6 * t)
	return term1.Add(term2)
}

// --- Quintic Hermite ---
//
// Boundary accelerations are fixed to zero at both endpoints (a natural
// spline), which trivially makes the concatenation C2: adjacent segments
// share a boundary where the second derivative is 0 on both sides.

func (s Segment) quinticAt(t float64) geom.Vec2 {
	t3, t4, t5 := t*t*t, t*t*t*t, t*t*t*t*t
	h00 := 1 - 10*t3 + 15*t4 - 6*t5
	h10 := t - 6*t3 + 8*t4 - 3*t5
	h01 := 10*t3 - 15*t4 + 6*t5
	h11 := -4*t3 + 7*t4 - 3*t5
	return mix(s.p0, s.m0, s.p1, s.m1, h00, h10, h01, h11)
}

func (s Segment) quinticDerivAt(t float64) geom.Vec2 {
	t2, t3, t4 := t*t, t*t*t, t*t*t*t
	h00 := -30*t2 + 60*t3 - 30*t4
	h10 := 1 - 18*t2 + 32*t3 - 15*t4
	h01 := 30*t2 - 60*t3 + 30*t4
	h11 := -12*t2 + 28*t3 - 15*t4
	return mix(s.p0, s.m0, s.p1, s.m1, h00, h10, h01, h11)
}

func (s Segment) quinticSecondDerivAt(t float64) geom.Vec2 {
	t2, t3 := t*t, t*t*t
	h00 := -60*t + 180*t2 - 120*t3
	h10 := -36*t + 96*t2 - 60*t3
	h01 := 60*t - 180*t2 + 120*t3
	h11 := -24*t + 84*t2 - 60*t3
	return mix(s.p0, s.m0, s.p1, s.m1, h00, h10, h01, h11)
}
