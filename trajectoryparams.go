package motioncore

import "fmt"

// PathType selects which spline family joins consecutive waypoints.
type PathType int

const (
	// Bezier joins waypoints with cubic Bezier segments.
	Bezier PathType = iota
	// CubicHermite joins waypoints with cubic Hermite segments (C1 across
	// the whole path).
	CubicHermite
	// QuinticHermite joins waypoints with quintic Hermite segments (C2
	// across the whole path).
	QuinticHermite
)

// String implements fmt.Stringer for diagnostic output.
func (t PathType) String() string {
	switch t {
	case Bezier:
		return "Bezier"
	case CubicHermite:
		return "CubicHermite"
	case QuinticHermite:
		return "QuinticHermite"
	default:
		return fmt.Sprintf("PathType(%d)", int(t))
	}
}

// TrajectoryParams bundles the waypoints and generation parameters shared
// by BasicTrajectory and TankDriveTrajectory construction.
type TrajectoryParams struct {
	Waypoints []Waypoint
	// Alpha is the tangent-magnitude scaling used when deriving control
	// tangents from waypoint headings.
	Alpha float64
	// SegmentCount is the number of sample moments along the trajectory.
	SegmentCount int
	// IsTank marks this trajectory as the basis for a TankDriveTrajectory;
	// it triggers curvature-aware velocity capping during profiling.
	IsTank   bool
	PathType PathType
}

// Validate checks the structural preconditions common to both trajectory
// constructors.
func (p TrajectoryParams) Validate() error {
	if len(p.Waypoints) < 2 {
		return fmt.Errorf("%w: at least two waypoints are required, got %d", ErrInvalidParams, len(p.Waypoints))
	}
	if p.SegmentCount <= 0 {
		return fmt.Errorf("%w: segment count must be positive, got %d", ErrInvalidParams, p.SegmentCount)
	}
	return nil
}
