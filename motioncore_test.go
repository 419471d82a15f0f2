package motioncore

import (
	"errors"
	"testing"

	"go.viam.com/test"
)

func TestWaypointVelocityOptionality(t *testing.T) {
	w := NewWaypoint(1, 2, 0.5)
	test.That(t, w.HasVelocity(), test.ShouldBeFalse)
	test.That(t, w.VelocityOr(3.0), test.ShouldAlmostEqual, 3.0)

	wv := NewWaypointWithVelocity(1, 2, 0.5, 4.0)
	test.That(t, wv.HasVelocity(), test.ShouldBeTrue)
	test.That(t, wv.VelocityOr(3.0), test.ShouldAlmostEqual, 4.0)
}

func TestRobotSpecsValidateCombinesErrors(t *testing.T) {
	bad := RobotSpecs{MaxVelocity: -1, MaxAcceleration: -1, BaseWidth: -1}
	err := bad.Validate()
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, errors.Is(err, ErrInvalidParams), test.ShouldBeTrue)

	good := RobotSpecs{MaxVelocity: 1, MaxAcceleration: 1, BaseWidth: 1}
	test.That(t, good.Validate(), test.ShouldBeNil)
}

func TestTrajectoryParamsValidate(t *testing.T) {
	params := TrajectoryParams{
		Waypoints:    []Waypoint{NewWaypoint(0, 0, 0)},
		SegmentCount: 10,
	}
	err := params.Validate()
	test.That(t, err, test.ShouldNotBeNil)

	params.Waypoints = append(params.Waypoints, NewWaypoint(1, 1, 0))
	test.That(t, params.Validate(), test.ShouldBeNil)

	params.SegmentCount = 0
	test.That(t, params.Validate(), test.ShouldNotBeNil)
}

func TestPathTypeString(t *testing.T) {
	test.That(t, Bezier.String(), test.ShouldEqual, "Bezier")
	test.That(t, CubicHermite.String(), test.ShouldEqual, "CubicHermite")
	test.That(t, QuinticHermite.String(), test.ShouldEqual, "QuinticHermite")
}
