// Package profile implements the two-pass velocity profiling algorithm
// that turns an unconstrained geometric path into a time-parameterized
// BasicTrajectory respecting kinematic limits and intermediate velocity
// constraints.
package profile

import "github.com/fenwickrobotics/motioncore/geom"

// Moment is a sample of centerline kinematic state at one instant of a
// BasicTrajectory: arc-length distance from the start, velocity,
// acceleration, tangent heading, elapsed time, and the trajectory's
// starting facing direction.
type Moment struct {
	Dist  float64
	Vel   float64
	Accel float64
	// Heading is the tangent direction atan2(dx, dy) at this sample.
	Heading float64
	// Time is monotonically nondecreasing with sample index.
	Time float64
	// InitFacing is the starting tangent direction, copied onto every
	// moment of a trajectory.
	InitFacing float64
	Backwards  bool
}

// AFacing returns the moment's absolute facing direction, negating Heading
// when the trajectory runs backwards.
func (m Moment) AFacing() float64 {
	if m.Backwards {
		return -m.Heading
	}
	return m.Heading
}

// RFacing returns the moment's facing direction relative to InitFacing.
func (m Moment) RFacing() float64 {
	return geom.RAngle(m.AFacing() - m.InitFacing)
}

func interpolateMoment(a, b Moment, f float64) Moment {
	return Moment{
		Dist:       geom.Lerp(a.Dist, b.Dist, f),
		Vel:        geom.Lerp(a.Vel, b.Vel, f),
		Accel:      geom.Lerp(a.Accel, b.Accel, f),
		Heading:    geom.LerpAngle(a.Heading, b.Heading, f),
		Time:       geom.Lerp(a.Time, b.Time, f),
		InitFacing: a.InitFacing,
		Backwards:  a.Backwards,
	}
}
