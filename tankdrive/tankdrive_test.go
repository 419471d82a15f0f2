package tankdrive

import (
	"errors"
	"testing"

	"go.viam.com/test"

	"github.com/fenwickrobotics/motioncore"
	"github.com/fenwickrobotics/motioncore/profile"
)

func tankSpecs() motioncore.RobotSpecs {
	return motioncore.RobotSpecs{MaxVelocity: 2, MaxAcceleration: 3, BaseWidth: 0.6}
}

func tankParams() motioncore.TrajectoryParams {
	return motioncore.TrajectoryParams{
		Waypoints: []motioncore.Waypoint{
			motioncore.NewWaypoint(0, 0, 0),
			motioncore.NewWaypoint(1, 5, 0.3),
			motioncore.NewWaypoint(0, 10, 0),
		},
		Alpha:        1.2,
		SegmentCount: 150,
		IsTank:       true,
		PathType:     motioncore.CubicHermite,
	}
}

func TestNewRejectsNonTankTrajectory(t *testing.T) {
	params := tankParams()
	params.IsTank = false
	bt, err := profile.New(tankSpecs(), params)
	test.That(t, err, test.ShouldBeNil)

	_, err = New(bt)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, errors.Is(err, motioncore.ErrInvalidParams), test.ShouldBeTrue)
}

func TestNewDerivesWheelDistances(t *testing.T) {
	bt, err := profile.New(tankSpecs(), tankParams())
	test.That(t, err, test.ShouldBeNil)

	tt, err := New(bt)
	test.That(t, err, test.ShouldBeNil)

	moments := tt.GetMoments()
	test.That(t, moments[0].LDist, test.ShouldAlmostEqual, 0.0)
	test.That(t, moments[0].RDist, test.ShouldAlmostEqual, 0.0)
	// Each wheel's distance step runs in the direction of its clipped
	// velocity: on a turn tighter than half the base width the inner wheel's
	// velocity is negative and its distance decreases.
	for i := 1; i < len(moments); i++ {
		test.That(t, (moments[i].LDist-moments[i-1].LDist)*moments[i].LVel >= -1e-9, test.ShouldBeTrue)
		test.That(t, (moments[i].RDist-moments[i-1].RDist)*moments[i].RVel >= -1e-9, test.ShouldBeTrue)
	}
}

func TestGetClampsAndInterpolates(t *testing.T) {
	bt, err := profile.New(tankSpecs(), tankParams())
	test.That(t, err, test.ShouldBeNil)
	tt, err := New(bt)
	test.That(t, err, test.ShouldBeNil)

	first := tt.Get(-1)
	test.That(t, first.Time, test.ShouldAlmostEqual, tt.GetMoments()[0].Time)

	last := tt.Get(tt.TotalTime() + 10)
	moments := tt.GetMoments()
	test.That(t, last.Time, test.ShouldAlmostEqual, moments[len(moments)-1].Time)

	mid := tt.Get(tt.TotalTime() / 2)
	test.That(t, mid.Time, test.ShouldAlmostEqual, tt.TotalTime()/2)
}

func TestMirrorLRSwapsWheels(t *testing.T) {
	bt, err := profile.New(tankSpecs(), tankParams())
	test.That(t, err, test.ShouldBeNil)
	tt, err := New(bt)
	test.That(t, err, test.ShouldBeNil)

	mirrored, err := tt.MirrorLR()
	test.That(t, err, test.ShouldBeNil)

	orig := tt.GetMoments()
	got := mirrored.GetMoments()
	for i := range orig {
		test.That(t, got[i].LVel, test.ShouldAlmostEqual, orig[i].RVel)
		test.That(t, got[i].RVel, test.ShouldAlmostEqual, orig[i].LVel)
	}
}
