// Package path builds a planar path by stitching spline segments through a
// sequence of waypoints, and provides arc-length <-> parameter lookup and
// wheel-position derivation for tank-drive robots.
package path

import (
	"fmt"
	"math"
	"sort"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats"

	"github.com/fenwickrobotics/motioncore"
	"github.com/fenwickrobotics/motioncore/geom"
	"github.com/fenwickrobotics/motioncore/spline"
)

// s2tEntry is one row of the arc-length -> path-parameter lookup table:
// cumulative arc length paired with the global t it was sampled at.
type s2tEntry struct {
	s float64
	t float64
}

// Path is the ordered concatenation of spline segments joining a sequence
// of waypoints, plus a lazily-buildable arc-length lookup table and the
// wheel-geometry state (base radius, direction) used by WheelsAt.
type Path struct {
	waypoints []motioncore.Waypoint
	alpha     float64
	pathType  motioncore.PathType
	segments  []spline.Segment

	s2tTable []s2tEntry
	totalLen float64

	baseRadius float64
	backwards  bool
}

// New builds a Path joining waypoints with segments of the given family.
// It does not build the arc-length lookup table; call ComputeLen before
// using S2T or T2S.
func New(waypoints []motioncore.Waypoint, alpha float64, pathType motioncore.PathType) (*Path, error) {
	if len(waypoints) < 2 {
		return nil, fmt.Errorf("%w: at least two waypoints are required, got %d", motioncore.ErrInvalidParams, len(waypoints))
	}

	kind := toSplineKind(pathType)
	segments := make([]spline.Segment, 0, len(waypoints)-1)
	for i := 0; i < len(waypoints)-1; i++ {
		w0, w1 := waypoints[i], waypoints[i+1]
		p0 := geom.Vec2{X: w0.X, Y: w0.Y}
		p1 := geom.Vec2{X: w1.X, Y: w1.Y}
		segments = append(segments, spline.NewSegment(kind, p0, p1, w0.Heading, w1.Heading, alpha))
	}

	return &Path{
		waypoints: append([]motioncore.Waypoint(nil), waypoints...),
		alpha:     alpha,
		pathType:  pathType,
		segments:  segments,
	}, nil
}

func toSplineKind(t motioncore.PathType) spline.Kind {
	switch t {
	case motioncore.Bezier:
		return spline.KindBezier
	case motioncore.QuinticHermite:
		return spline.KindQuinticHermite
	default:
		return spline.KindCubicHermite
	}
}

// Waypoints returns the waypoints this path was built from.
func (p *Path) Waypoints() []motioncore.Waypoint {
	return append([]motioncore.Waypoint(nil), p.waypoints...)
}

// Alpha returns the tangent-scaling factor this path was built with.
func (p *Path) Alpha() float64 {
	return p.alpha
}

// PathType returns the spline family this path was built with.
func (p *Path) PathType() motioncore.PathType {
	return p.pathType
}

// locate maps a global parameter t in [0,1] to a segment index and the
// corresponding local parameter, per spec's even partition of t across
// segments.
func (p *Path) locate(t float64) (int, float64) {
	n := len(p.segments)
	if t >= 1 {
		return n - 1, 1
	}
	if t < 0 {
		t = 0
	}
	scaled := t * float64(n)
	idx := int(math.Floor(scaled))
	if idx >= n {
		idx = n - 1
	}
	local := scaled - float64(idx)
	return idx, local
}

// At evaluates the path's position at global parameter t in [0,1].
func (p *Path) At(t float64) geom.Vec2 {
	idx, local := p.locate(t)
	return p.segments[idx].At(local)
}

// AtR3 evaluates the path's position at global parameter t and returns it
// as an r3.Vector with Z pinned to 0, for callers built against 3D pose
// types (e.g. a robot's spatial-transform stack) that need to place a path
// point in a shared 3D frame.
func (p *Path) AtR3(t float64) r3.Vector {
	return p.At(t).R3()
}

// WheelsAtR3 is WheelsAt with both wheel positions converted to
// r3.Vector, for the same 3D interop callers AtR3 serves.
func (p *Path) WheelsAtR3(t float64) (left, right r3.Vector) {
	l, r := p.WheelsAt(t)
	return l.R3(), r.R3()
}

// DerivAt evaluates the path's first derivative at global parameter t.
func (p *Path) DerivAt(t float64) geom.Vec2 {
	idx, local := p.locate(t)
	return p.segments[idx].DerivAt(local)
}

// SecondDerivAt evaluates the path's second derivative at global parameter t.
func (p *Path) SecondDerivAt(t float64) geom.Vec2 {
	idx, local := p.locate(t)
	return p.segments[idx].SecondDerivAt(local)
}

// HeadingAt returns the tangent direction atan2(dx, dy) at global parameter t.
func (p *Path) HeadingAt(t float64) float64 {
	d := p.DerivAt(t)
	return math.Atan2(d.X, d.Y)
}

// ComputeLen samples the path at `points` equally-spaced values of t
// (including 0 and 1), walks the resulting polyline to build the monotone
// arc-length lookup table used by S2T and T2S, and returns the total path
// length. It must be called exactly once before S2T or T2S are used.
func (p *Path) ComputeLen(points int) float64 {
	if points < 2 {
		points = 2
	}
	ts := make([]float64, points)
	floats.Span(ts, 0, 1)

	table := make([]s2tEntry, points)
	table[0] = s2tEntry{s: 0, t: 0}

	last := p.At(0)
	total := 0.0
	for i := 1; i < points; i++ {
		cur := p.At(ts[i])
		total += last.Dist(cur)
		table[i] = s2tEntry{s: total, t: ts[i]}
		last = cur
	}

	p.s2tTable = table
	p.totalLen = total
	return total
}

// TotalLen returns the total path length computed by ComputeLen. It is 0
// until ComputeLen has been called.
func (p *Path) TotalLen() float64 {
	return p.totalLen
}

// S2T converts a normalized arc length s in [0,1] to the corresponding
// global path parameter t, via binary search plus linear interpolation
// over the lookup table built by ComputeLen.
func (p *Path) S2T(s float64) (float64, error) {
	if len(p.s2tTable) == 0 {
		return 0, motioncore.ErrPrecomputationMissing
	}
	if s <= 0 {
		return 0, nil
	}
	if s >= 1 {
		return 1, nil
	}
	dist := s * p.totalLen

	idx := sort.Search(len(p.s2tTable), func(i int) bool { return p.s2tTable[i].s >= dist })
	if idx == 0 {
		return p.s2tTable[0].t, nil
	}
	if idx >= len(p.s2tTable) {
		return p.s2tTable[len(p.s2tTable)-1].t, nil
	}
	if p.s2tTable[idx].s == dist {
		return p.s2tTable[idx].t, nil
	}
	lo, hi := p.s2tTable[idx-1], p.s2tTable[idx]
	f := (dist - lo.s) / (hi.s - lo.s)
	return geom.Lerp(lo.t, hi.t, f), nil
}

// T2S converts a global path parameter t in [0,1] to the corresponding
// normalized arc length s, the inverse of S2T.
func (p *Path) T2S(t float64) (float64, error) {
	if len(p.s2tTable) == 0 {
		return 0, motioncore.ErrPrecomputationMissing
	}
	if t <= 0 {
		return 0, nil
	}
	if t >= 1 {
		return 1, nil
	}

	idx := sort.Search(len(p.s2tTable), func(i int) bool { return p.s2tTable[i].t >= t })
	if idx == 0 {
		return p.s2tTable[0].s / p.totalLen, nil
	}
	if idx >= len(p.s2tTable) {
		return 1, nil
	}
	if p.s2tTable[idx].t == t {
		return p.s2tTable[idx].s / p.totalLen, nil
	}
	lo, hi := p.s2tTable[idx-1], p.s2tTable[idx]
	f := (t - lo.t) / (hi.t - lo.t)
	return geom.Lerp(lo.s, hi.s, f) / p.totalLen, nil
}

// SetBase sets the half wheel-base radius used by WheelsAt.
func (p *Path) SetBase(radius float64) {
	p.baseRadius = radius
}

// BaseRadius returns the half wheel-base radius set by SetBase.
func (p *Path) BaseRadius() float64 {
	return p.baseRadius
}

// SetBackwards sets the sign convention WheelsAt uses when deriving wheel
// offsets from the base radius.
func (p *Path) SetBackwards(b bool) {
	p.backwards = b
}

// Backwards reports the sign convention set by SetBackwards.
func (p *Path) Backwards() bool {
	return p.backwards
}

// WheelsAt derives the left and right wheel positions at global parameter
// t from the tangent heading h = atan2(dx, dy): the left wheel sits at
// pos + BaseRadius*(-sin h, cos h) and the right wheel at the opposite
// offset. This offset is perpendicular to the tangent direction
// (sin h, cos h) only where cos 2h = 0; at h = 0 it lies along the tangent.
// When Backwards is set the offset signs are negated, which is equivalent
// to swapping which physical wheel is "left".
func (p *Path) WheelsAt(t float64) (left, right geom.Vec2) {
	pos := p.At(t)
	d := p.DerivAt(t)
	heading := math.Atan2(d.X, d.Y)
	s, c := math.Sin(heading), math.Cos(heading)

	r := p.baseRadius
	if p.backwards {
		r = -r
	}

	left = geom.Vec2{X: pos.X - r*s, Y: pos.Y + r*c}
	right = geom.Vec2{X: pos.X + r*s, Y: pos.Y - r*c}
	return left, right
}
