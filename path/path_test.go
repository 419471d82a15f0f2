package path

import (
	"math"
	"testing"

	"go.viam.com/test"

	"github.com/fenwickrobotics/motioncore"
)

func straightWaypoints() []motioncore.Waypoint {
	return []motioncore.Waypoint{
		motioncore.NewWaypoint(0, 0, 0),
		motioncore.NewWaypoint(0, 5, 0),
		motioncore.NewWaypoint(0, 10, 0),
	}
}

func TestNewRejectsTooFewWaypoints(t *testing.T) {
	_, err := New([]motioncore.Waypoint{motioncore.NewWaypoint(0, 0, 0)}, 1, motioncore.CubicHermite)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestAtEndpoints(t *testing.T) {
	p, err := New(straightWaypoints(), 1, motioncore.CubicHermite)
	test.That(t, err, test.ShouldBeNil)

	start := p.At(0)
	end := p.At(1)
	test.That(t, start.X, test.ShouldAlmostEqual, 0.0)
	test.That(t, start.Y, test.ShouldAlmostEqual, 0.0)
	test.That(t, end.X, test.ShouldAlmostEqual, 0.0)
	test.That(t, end.Y, test.ShouldAlmostEqual, 10.0)
}

func TestComputeLenStraightLine(t *testing.T) {
	p, err := New(straightWaypoints(), 1, motioncore.CubicHermite)
	test.That(t, err, test.ShouldBeNil)

	total := p.ComputeLen(50)
	test.That(t, total, test.ShouldAlmostEqual, 10.0)
	test.That(t, p.TotalLen(), test.ShouldAlmostEqual, 10.0)
}

func TestS2TAndT2SRoundTrip(t *testing.T) {
	p, err := New(straightWaypoints(), 1, motioncore.CubicHermite)
	test.That(t, err, test.ShouldBeNil)
	p.ComputeLen(100)

	for _, s := range []float64{0, 0.25, 0.5, 0.75, 1} {
		tParam, err := p.S2T(s)
		test.That(t, err, test.ShouldBeNil)
		sBack, err := p.T2S(tParam)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, math.Abs(sBack-s) < 1e-3, test.ShouldBeTrue)
	}
}

func TestS2TWithoutComputeLenErrors(t *testing.T) {
	p, err := New(straightWaypoints(), 1, motioncore.CubicHermite)
	test.That(t, err, test.ShouldBeNil)

	_, err = p.S2T(0.5)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestAtR3MatchesAtWithZeroZ(t *testing.T) {
	p, err := New(straightWaypoints(), 1, motioncore.CubicHermite)
	test.That(t, err, test.ShouldBeNil)

	v := p.At(0.5)
	r3v := p.AtR3(0.5)
	test.That(t, r3v.X, test.ShouldAlmostEqual, v.X)
	test.That(t, r3v.Y, test.ShouldAlmostEqual, v.Y)
	test.That(t, r3v.Z, test.ShouldAlmostEqual, 0.0)
}

func TestWheelsAtR3MatchesWheelsAt(t *testing.T) {
	p, err := New(straightWaypoints(), 1, motioncore.CubicHermite)
	test.That(t, err, test.ShouldBeNil)
	p.SetBase(0.3)

	left, right := p.WheelsAt(0.5)
	leftR3, rightR3 := p.WheelsAtR3(0.5)
	test.That(t, leftR3.X, test.ShouldAlmostEqual, left.X)
	test.That(t, leftR3.Y, test.ShouldAlmostEqual, left.Y)
	test.That(t, rightR3.X, test.ShouldAlmostEqual, right.X)
	test.That(t, rightR3.Y, test.ShouldAlmostEqual, right.Y)
}

func TestWheelsAtSymmetric(t *testing.T) {
	p, err := New(straightWaypoints(), 1, motioncore.CubicHermite)
	test.That(t, err, test.ShouldBeNil)
	p.SetBase(0.3)

	left, right := p.WheelsAt(0.5)
	center := p.At(0.5)

	dLeft := center.Dist(left)
	dRight := center.Dist(right)
	test.That(t, math.Abs(dLeft-dRight) < 1e-9, test.ShouldBeTrue)
	test.That(t, math.Abs(dLeft-0.3) < 1e-9, test.ShouldBeTrue)
}
