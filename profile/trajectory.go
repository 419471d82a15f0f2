package profile

import (
	"fmt"
	"math"
	"sort"

	"github.com/fenwickrobotics/motioncore"
	"github.com/fenwickrobotics/motioncore/geom"
	"github.com/fenwickrobotics/motioncore/path"
)

// velocityConstraint is a hard velocity requirement at a given arc-length
// position along the path, derived from an interior waypoint's Velocity.
type velocityConstraint struct {
	pos float64
	vel float64
}

// BasicTrajectory is a time-parameterized velocity profile over a sampled
// Path: for every sample it holds the centerline distance, velocity,
// acceleration, heading and elapsed time, subject to RobotSpecs limits and
// any intermediate waypoint velocity constraints.
type BasicTrajectory struct {
	path       *path.Path
	moments    []Moment
	patht      []float64 // path parameter t at each moment, tank-only
	pathr      []float64 // signed radius of curvature at each moment, tank-only
	initFacing float64
	backwards  bool

	specs  motioncore.RobotSpecs
	params motioncore.TrajectoryParams
}

// New builds a BasicTrajectory from the given robot limits and generation
// parameters, running the two-pass velocity profiling algorithm described
// in the package documentation.
func New(specs motioncore.RobotSpecs, params motioncore.TrajectoryParams) (*BasicTrajectory, error) {
	if err := specs.Validate(); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	p, err := path.New(params.Waypoints, params.Alpha, params.PathType)
	if err != nil {
		return nil, err
	}
	if params.IsTank {
		p.SetBase(specs.BaseWidth / 2)
	}

	segCount := params.SegmentCount
	ds := 1.0 / float64(segCount)
	total := p.ComputeLen(segCount + 1)
	dpi := total / float64(segCount)

	waypoints := params.Waypoints
	n := len(waypoints)
	wpdt := 1.0 / float64(n-1)

	var constraints []velocityConstraint
	for j := 1; j < n-1; j++ {
		if waypoints[j].Velocity == nil {
			continue
		}
		s, err := p.T2S(float64(j) * wpdt)
		if err != nil {
			return nil, err
		}
		constraints = append(constraints, velocityConstraint{pos: s * total, vel: *waypoints[j].Velocity})
	}

	headings := make([]float64, segCount)
	mv := make([]float64, segCount)
	var patht, pathr []float64
	if params.IsTank {
		patht = make([]float64, segCount)
		pathr = make([]float64, segCount)
	}

	for i := 0; i < segCount; i++ {
		t, err := p.S2T(ds * float64(i))
		if err != nil {
			return nil, err
		}
		d := p.DerivAt(t)
		headings[i] = math.Atan2(d.X, d.Y)

		if params.IsTank {
			patht[i] = t
			dd := p.SecondDerivAt(t)
			curvature := geom.Curvature(d.X, dd.X, d.Y, dd.Y)
			pathr[i] = 1 / curvature
			mv[i] = specs.MaxVelocity / (1 + specs.BaseWidth/(2*math.Abs(pathr[i])))
		} else {
			mv[i] = specs.MaxVelocity
		}
	}

	moments := make([]Moment, segCount)
	startVel := 0.0
	if waypoints[0].Velocity != nil {
		startVel = *waypoints[0].Velocity
	}
	moments[0] = Moment{Dist: 0, Vel: startVel, Accel: 0, Heading: headings[0]}

	timeDiff := make([]float64, segCount-1)
	for i := range timeDiff {
		timeDiff[i] = math.NaN()
	}
	constrained := make(map[int]bool)

	for i := 1; i < segCount; i++ {
		dist := float64(i) * dpi

		if len(constraints) > 0 && dist >= constraints[0].pos {
			c := constraints[0]
			constraints = constraints[1:]

			vPrev := moments[i-1].Vel
			if c.vel > vPrev {
				// NOTE: this compares the raw squared-velocity difference
				// against max_a directly, without dividing by 2*dpi. That
				// is what the reference implementation does; see
				// DESIGN.md for the accompanying open question.
				accel := c.vel*c.vel - vPrev*vPrev
				if accel > specs.MaxAcceleration {
					return nil, fmt.Errorf("%w at arc length %.6f", motioncore.ErrConstraintInfeasible, c.pos)
				}
				moments[i-1].Accel = accel
				timeDiff[i-1] = (c.vel - vPrev) / accel
			} else {
				moments[i-1].Accel = 0
			}
			moments[i] = Moment{Dist: dist, Vel: c.vel, Accel: 0, Heading: headings[i]}
			constrained[i] = true
			continue
		}

		vPrev := moments[i-1].Vel
		if vPrev < mv[i] {
			vMax := math.Sqrt(vPrev*vPrev + 2*specs.MaxAcceleration*dpi)
			var vel float64
			if vMax > mv[i] {
				accel := (mv[i]*mv[i] - vPrev*vPrev) / (2 * dpi)
				vel = mv[i]
				moments[i-1].Accel = accel
			} else {
				vel = vMax
				moments[i-1].Accel = specs.MaxAcceleration
			}
			moments[i] = Moment{Dist: dist, Vel: vel, Accel: 0, Heading: headings[i]}
			timeDiff[i-1] = (vel - vPrev) / moments[i-1].Accel
		} else {
			moments[i] = Moment{Dist: dist, Vel: mv[i], Accel: 0, Heading: headings[i]}
			moments[i-1].Accel = 0
		}
	}

	last := segCount - 1
	moments[last].Accel = 0
	if waypoints[n-1].Velocity != nil {
		moments[last].Vel = *waypoints[n-1].Velocity
	} else {
		moments[last].Vel = 0
	}

	for i := last - 1; i >= 0; i-- {
		if moments[i].Vel <= moments[i+1].Vel {
			continue
		}
		vMax := math.Sqrt(moments[i+1].Vel*moments[i+1].Vel + 2*specs.MaxAcceleration*dpi)
		var vel float64
		if vMax > moments[i].Vel {
			accel := (moments[i].Vel*moments[i].Vel - moments[i+1].Vel*moments[i+1].Vel) / (2 * dpi)
			moments[i].Accel = -accel
			vel = moments[i].Vel
		} else {
			if constrained[i] {
				return nil, fmt.Errorf("%w at sample %d", motioncore.ErrConstraintInfeasible, i)
			}
			vel = vMax
			moments[i].Accel = -specs.MaxAcceleration
		}
		timeDiff[i] = (moments[i+1].Vel - vel) / moments[i].Accel
		moments[i].Vel = vel
	}

	initFacing := moments[0].AFacing()
	for i := range moments {
		moments[i].InitFacing = initFacing
	}

	moments[0].Time = 0
	for i := 1; i < segCount; i++ {
		if !math.IsNaN(timeDiff[i-1]) {
			moments[i].Time = moments[i-1].Time + timeDiff[i-1]
		} else {
			dt := (moments[i].Dist - moments[i-1].Dist) / moments[i-1].Vel
			moments[i].Time = moments[i-1].Time + dt
		}
	}

	return &BasicTrajectory{
		path:       p,
		moments:    moments,
		patht:      patht,
		pathr:      pathr,
		initFacing: initFacing,
		specs:      specs,
		params:     params,
	}, nil
}

// GetPath returns the shared Path this trajectory was built over.
func (bt *BasicTrajectory) GetPath() *path.Path { return bt.path }

// GetMoments returns the trajectory's sample moments.
func (bt *BasicTrajectory) GetMoments() []Moment {
	return append([]Moment(nil), bt.moments...)
}

// GetSpecs returns the robot limits this trajectory was built with.
func (bt *BasicTrajectory) GetSpecs() motioncore.RobotSpecs { return bt.specs }

// GetParams returns the generation parameters this trajectory was built with.
func (bt *BasicTrajectory) GetParams() motioncore.TrajectoryParams { return bt.params }

// GetInitFacing returns the trajectory's starting tangent direction.
func (bt *BasicTrajectory) GetInitFacing() float64 { return bt.initFacing }

// IsBackwards reports whether this trajectory executes in reverse.
func (bt *BasicTrajectory) IsBackwards() bool { return bt.backwards }

// TotalTime returns the trajectory's total duration.
func (bt *BasicTrajectory) TotalTime() float64 {
	return bt.moments[len(bt.moments)-1].Time
}

// Get returns the interpolated moment at the given time, clamping to
// [0, TotalTime()] rather than raising an error (spec's soft DomainError
// behavior for out-of-range trajectory queries).
func (bt *BasicTrajectory) Get(t float64) Moment {
	moments := bt.moments
	last := len(moments) - 1
	if t <= moments[0].Time {
		return moments[0]
	}
	if t >= moments[last].Time {
		return moments[last]
	}

	idx := sort.Search(len(moments), func(i int) bool { return moments[i].Time >= t })
	if moments[idx].Time == t {
		return moments[idx]
	}
	lo, hi := moments[idx-1], moments[idx]
	f := (t - lo.Time) / (hi.Time - lo.Time)
	return interpolateMoment(lo, hi, f)
}

// PathParamAt returns the path parameter t of the i-th moment. It is only
// populated for tank-drive trajectories.
func (bt *BasicTrajectory) PathParamAt(i int) float64 { return bt.patht[i] }

// RadiusAt returns the signed radius of curvature at the i-th moment. It is
// only populated for tank-drive trajectories.
func (bt *BasicTrajectory) RadiusAt(i int) float64 { return bt.pathr[i] }

// IsTank reports whether this trajectory carries per-sample path parameter
// and curvature data for tank-drive wheel derivation.
func (bt *BasicTrajectory) IsTank() bool { return bt.params.IsTank }
