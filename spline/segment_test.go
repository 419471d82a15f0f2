package spline

import (
	"testing"

	"go.viam.com/test"

	"github.com/fenwickrobotics/motioncore/geom"
)

func TestCubicHermiteEndpoints(t *testing.T) {
	p0 := geom.Vec2{X: 0, Y: 0}
	p1 := geom.Vec2{X: 1, Y: 1}
	seg := NewSegment(KindCubicHermite, p0, p1, 0, 0, 1)

	test.That(t, seg.At(0), test.ShouldResemble, p0)
	test.That(t, seg.At(1), test.ShouldResemble, p1)
}

func TestBezierEndpoints(t *testing.T) {
	p0 := geom.Vec2{X: 0, Y: 0}
	p1 := geom.Vec2{X: 2, Y: 3}
	seg := NewSegment(KindBezier, p0, p1, 0.2, -0.3, 1.2)

	got0 := seg.At(0)
	got1 := seg.At(1)
	test.That(t, got0.X, test.ShouldAlmostEqual, p0.X)
	test.That(t, got0.Y, test.ShouldAlmostEqual, p0.Y)
	test.That(t, got1.X, test.ShouldAlmostEqual, p1.X)
	test.That(t, got1.Y, test.ShouldAlmostEqual, p1.Y)
}

func TestQuinticHermiteEndpoints(t *testing.T) {
	p0 := geom.Vec2{X: -1, Y: 0}
	p1 := geom.Vec2{X: 1, Y: 2}
	seg := NewSegment(KindQuinticHermite, p0, p1, 0.1, 0.4, 0.8)

	got0 := seg.At(0)
	got1 := seg.At(1)
	test.That(t, got0.X, test.ShouldAlmostEqual, p0.X)
	test.That(t, got0.Y, test.ShouldAlmostEqual, p0.Y)
	test.That(t, got1.X, test.ShouldAlmostEqual, p1.X)
	test.That(t, got1.Y, test.ShouldAlmostEqual, p1.Y)
}

func TestQuinticHermiteZeroBoundaryAcceleration(t *testing.T) {
	p0 := geom.Vec2{X: 0, Y: 0}
	p1 := geom.Vec2{X: 5, Y: -2}
	seg := NewSegment(KindQuinticHermite, p0, p1, 0, 0, 1)

	a0 := seg.SecondDerivAt(0)
	a1 := seg.SecondDerivAt(1)
	test.That(t, a0.X, test.ShouldAlmostEqual, 0.0)
	test.That(t, a0.Y, test.ShouldAlmostEqual, 0.0)
	test.That(t, a1.X, test.ShouldAlmostEqual, 0.0)
	test.That(t, a1.Y, test.ShouldAlmostEqual, 0.0)
}

func TestCubicHermiteTangentDirection(t *testing.T) {
	p0 := geom.Vec2{X: 0, Y: 0}
	p1 := geom.Vec2{X: 1, Y: 0}
	// heading 0 => tangent points along +Y
	seg := NewSegment(KindCubicHermite, p0, p1, 0, 0, 1)
	d0 := seg.DerivAt(0)
	test.That(t, d0.X, test.ShouldAlmostEqual, 0.0)
	test.That(t, d0.Y, test.ShouldAlmostEqual, 1.0)
}
