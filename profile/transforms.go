package profile

import (
	"math"

	"github.com/fenwickrobotics/motioncore/geom"
	"github.com/fenwickrobotics/motioncore/path"
)

// preparePath finishes a freshly built transform of bt's path the same way
// New does: it rebuilds the arc-length lookup table at the same resolution
// and, for tank trajectories, restores the wheel base radius, so the
// returned trajectory's GetPath() supports S2T/T2S/WheelsAt exactly like
// the trajectory it was derived from.
func (bt *BasicTrajectory) preparePath(p *path.Path) *path.Path {
	p.ComputeLen(bt.params.SegmentCount + 1)
	if bt.IsTank() {
		p.SetBase(bt.specs.BaseWidth / 2)
	}
	return p
}

// MirrorLR returns a trajectory whose path is mirrored left-right, keeping
// the same timing, speeds and accelerations at every sample.
func (bt *BasicTrajectory) MirrorLR() (*BasicTrajectory, error) {
	mirroredPath, err := bt.path.MirrorLR()
	if err != nil {
		return nil, err
	}
	mirroredPath = bt.preparePath(mirroredPath)
	moments := make([]Moment, len(bt.moments))
	for i, m := range bt.moments {
		moments[i] = m
		moments[i].Heading = -m.Heading
	}
	initFacing := -bt.initFacing
	for i := range moments {
		moments[i].InitFacing = initFacing
	}
	return &BasicTrajectory{
		path: mirroredPath, moments: moments, patht: bt.patht, pathr: bt.pathr,
		initFacing: initFacing, backwards: bt.backwards,
		specs: bt.specs, params: bt.params,
	}, nil
}

// MirrorFB returns a trajectory that reverses direction of travel: moments
// are traversed in reverse order, velocities and accelerations negated,
// matching the path's mirror_fb reflection.
func (bt *BasicTrajectory) MirrorFB() (*BasicTrajectory, error) {
	mirroredPath, err := bt.path.MirrorFB()
	if err != nil {
		return nil, err
	}
	mirroredPath = bt.preparePath(mirroredPath)
	n := len(bt.moments)
	moments := make([]Moment, n)
	last := bt.moments[n-1]
	lastTime := last.Time

	var patht, pathr []float64
	if bt.IsTank() {
		patht = make([]float64, n)
		pathr = make([]float64, n)
	}

	for i, m := range bt.moments {
		j := n - 1 - i
		moments[j] = Moment{
			Dist:      last.Dist - m.Dist,
			Vel:       -m.Vel,
			Accel:     -m.Accel,
			Heading:   geom.RAngle(math.Pi - m.Heading),
			Time:      lastTime - m.Time,
			Backwards: !m.Backwards,
		}
		if bt.IsTank() {
			patht[j] = 1 - bt.patht[i]
			pathr[j] = -bt.pathr[i]
		}
	}

	initFacing := moments[0].AFacing()
	for i := range moments {
		moments[i].InitFacing = initFacing
	}

	return &BasicTrajectory{
		path: mirroredPath, moments: moments, patht: patht, pathr: pathr,
		initFacing: initFacing, backwards: !bt.backwards,
		specs: bt.specs, params: bt.params,
	}, nil
}

// Retrace returns a trajectory that runs the same path in reverse, ending
// where the original started. Distances are reindexed to increase from the
// new start rather than negated, which is what makes moments[n-1-i].Dist of
// the retrace equal dist[n-1]-dist[i] of the original.
func (bt *BasicTrajectory) Retrace() (*BasicTrajectory, error) {
	retracedPath, err := bt.path.Retrace()
	if err != nil {
		return nil, err
	}
	retracedPath = bt.preparePath(retracedPath)
	n := len(bt.moments)
	moments := make([]Moment, n)
	last := bt.moments[n-1]
	lastTime := last.Time

	var patht, pathr []float64
	if bt.IsTank() {
		patht = make([]float64, n)
		pathr = make([]float64, n)
	}

	for i, m := range bt.moments {
		j := n - 1 - i
		moments[j] = Moment{
			Dist:      last.Dist - m.Dist,
			Vel:       m.Vel,
			Accel:     -m.Accel,
			Heading:   geom.RAngle(math.Pi + m.Heading),
			Time:      lastTime - m.Time,
			Backwards: !m.Backwards,
		}
		if bt.IsTank() {
			patht[j] = 1 - bt.patht[i]
			pathr[j] = -bt.pathr[i]
		}
	}

	initFacing := moments[0].AFacing()
	for i := range moments {
		moments[i].InitFacing = initFacing
	}

	return &BasicTrajectory{
		path: retracedPath, moments: moments, patht: patht, pathr: pathr,
		initFacing: initFacing, backwards: !bt.backwards,
		specs: bt.specs, params: bt.params,
	}, nil
}
