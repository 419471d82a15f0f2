// Package tankdrive derives independent left/right wheel trajectories from
// a BasicTrajectory built over a tank-drive Path, splitting the centerline
// velocity profile using the path's curvature at each sample.
package tankdrive

import (
	"fmt"
	"math"

	"github.com/fenwickrobotics/motioncore"
	"github.com/fenwickrobotics/motioncore/geom"
	"github.com/fenwickrobotics/motioncore/profile"
)

// Moment is a sample of independent left/right wheel kinematic state at one
// instant of a TankDriveTrajectory.
type Moment struct {
	LDist, RDist   float64
	LVel, RVel     float64
	LAccel, RAccel float64
	Heading        float64
	Time           float64
	InitFacing     float64
}

// TankDriveTrajectory pairs a centerline BasicTrajectory with the derived
// per-wheel distance, velocity and acceleration at each sample, split from
// the centerline profile using the path's curvature.
type TankDriveTrajectory struct {
	centerline *profile.BasicTrajectory
	moments    []Moment
}

// New derives a TankDriveTrajectory from a centerline trajectory built with
// tank-drive parameters. It returns ErrInvalidParams if the trajectory was
// not built with TrajectoryParams.IsTank set.
func New(bt *profile.BasicTrajectory) (*TankDriveTrajectory, error) {
	if !bt.IsTank() {
		return nil, fmt.Errorf("%w: trajectory was not built for a tank drive", motioncore.ErrInvalidParams)
	}

	specs := bt.GetSpecs()
	halfBase := specs.BaseWidth / 2
	p := bt.GetPath()
	centerMoments := bt.GetMoments()
	moments := make([]Moment, len(centerMoments))

	lPrev, rPrev := p.WheelsAt(0)

	delta := func(i int) float64 {
		return centerMoments[i].Vel / bt.RadiusAt(i) * halfBase
	}

	d0 := delta(0)
	moments[0] = Moment{
		LVel: centerMoments[0].Vel - d0, RVel: centerMoments[0].Vel + d0,
		Heading: centerMoments[0].Heading, Time: centerMoments[0].Time,
		InitFacing: centerMoments[0].InitFacing,
	}

	for i := 1; i < len(centerMoments); i++ {
		l, r := p.WheelsAt(bt.PathParamAt(i))
		dL := l.Dist(lPrev)
		dR := r.Dist(rPrev)
		lPrev, rPrev = l, r

		d := delta(i)
		lv := geom.ClampAbs(centerMoments[i].Vel-d, specs.MaxVelocity)
		rv := geom.ClampAbs(centerMoments[i].Vel+d, specs.MaxVelocity)
		if lv < 0 {
			dL = -dL
		}
		if rv < 0 {
			dR = -dR
		}

		moments[i] = Moment{
			LDist: moments[i-1].LDist + dL,
			RDist: moments[i-1].RDist + dR,
			LVel:  lv, RVel: rv,
			Heading:    centerMoments[i].Heading,
			Time:       centerMoments[i].Time,
			InitFacing: centerMoments[i].InitFacing,
		}

		dt := moments[i].Time - moments[i-1].Time
		moments[i-1].LAccel = (lv - moments[i-1].LVel) / dt
		moments[i-1].RAccel = (rv - moments[i-1].RVel) / dt
	}

	return &TankDriveTrajectory{centerline: bt, moments: moments}, nil
}

// Centerline returns the BasicTrajectory this TankDriveTrajectory was
// derived from.
func (tt *TankDriveTrajectory) Centerline() *profile.BasicTrajectory {
	return tt.centerline
}

// GetMoments returns the trajectory's per-wheel sample moments.
func (tt *TankDriveTrajectory) GetMoments() []Moment {
	return append([]Moment(nil), tt.moments...)
}

// TotalTime returns the trajectory's total duration.
func (tt *TankDriveTrajectory) TotalTime() float64 {
	return tt.centerline.TotalTime()
}

// Get returns the interpolated wheel moment at the given time, clamping to
// [0, TotalTime()] rather than raising an error.
func (tt *TankDriveTrajectory) Get(t float64) Moment {
	moments := tt.moments
	last := len(moments) - 1
	if t <= moments[0].Time {
		return moments[0]
	}
	if t >= moments[last].Time {
		return moments[last]
	}

	lo, hi := 0, last
	for lo < hi {
		mid := (lo + hi) / 2
		if moments[mid].Time < t {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if moments[lo].Time == t {
		return moments[lo]
	}
	a, b := moments[lo-1], moments[lo]
	f := (t - a.Time) / (b.Time - a.Time)
	return Moment{
		LDist:      geom.Lerp(a.LDist, b.LDist, f),
		RDist:      geom.Lerp(a.RDist, b.RDist, f),
		LVel:       geom.Lerp(a.LVel, b.LVel, f),
		RVel:       geom.Lerp(a.RVel, b.RVel, f),
		LAccel:     geom.Lerp(a.LAccel, b.LAccel, f),
		RAccel:     geom.Lerp(a.RAccel, b.RAccel, f),
		Heading:    geom.LerpAngle(a.Heading, b.Heading, f),
		Time:       t,
		InitFacing: a.InitFacing,
	}
}

// MirrorLR returns a tank-drive trajectory mirrored left-right: the left
// and right wheel data swap.
func (tt *TankDriveTrajectory) MirrorLR() (*TankDriveTrajectory, error) {
	mirroredCenter, err := tt.centerline.MirrorLR()
	if err != nil {
		return nil, err
	}
	moments := make([]Moment, len(tt.moments))
	for i, m := range tt.moments {
		moments[i] = Moment{
			LDist: m.RDist, RDist: m.LDist,
			LVel: m.RVel, RVel: m.LVel,
			LAccel: m.RAccel, RAccel: m.LAccel,
			Heading: -m.Heading, Time: m.Time, InitFacing: -m.InitFacing,
		}
	}
	return &TankDriveTrajectory{centerline: mirroredCenter, moments: moments}, nil
}

// MirrorFB returns a tank-drive trajectory that reverses direction of
// travel: moments traverse in reverse order, left/right assignments stay
// put but their velocities and accelerations negate, matching the
// centerline's mirror_fb.
func (tt *TankDriveTrajectory) MirrorFB() (*TankDriveTrajectory, error) {
	mirroredCenter, err := tt.centerline.MirrorFB()
	if err != nil {
		return nil, err
	}
	n := len(tt.moments)
	moments := make([]Moment, n)
	last := tt.moments[n-1]
	lastTime := last.Time
	initFacing := mirroredCenter.GetInitFacing()
	mirroredCenterMoments := mirroredCenter.GetMoments()

	for i, m := range tt.moments {
		j := n - 1 - i
		moments[j] = Moment{
			LDist: last.LDist - m.LDist, RDist: last.RDist - m.RDist,
			LVel: -m.LVel, RVel: -m.RVel,
			LAccel: -m.LAccel, RAccel: -m.RAccel,
			Heading: mirroredCenterMoments[j].Heading, Time: lastTime - m.Time, InitFacing: initFacing,
		}
	}
	return &TankDriveTrajectory{centerline: mirroredCenter, moments: moments}, nil
}

// Retrace returns a tank-drive trajectory that runs the same path in
// reverse, ending where the original started, with left and right swapped.
func (tt *TankDriveTrajectory) Retrace() (*TankDriveTrajectory, error) {
	retracedCenter, err := tt.centerline.Retrace()
	if err != nil {
		return nil, err
	}
	n := len(tt.moments)
	moments := make([]Moment, n)
	last := tt.moments[n-1]
	lastTime := last.Time
	initFacing := retracedCenter.GetInitFacing()

	for i, m := range tt.moments {
		j := n - 1 - i
		moments[j] = Moment{
			LDist: last.RDist - m.RDist, RDist: last.LDist - m.LDist,
			LVel: m.RVel, RVel: m.LVel,
			LAccel: -m.RAccel, RAccel: -m.LAccel,
			Heading: geom.RAngle(m.Heading + math.Pi), Time: lastTime - m.Time, InitFacing: initFacing,
		}
	}
	return &TankDriveTrajectory{centerline: retracedCenter, moments: moments}, nil
}
