package motioncore

import "errors"

// ErrConstraintInfeasible indicates a waypoint velocity constraint cannot
// be met under the configured maximum acceleration and sampling step.
var ErrConstraintInfeasible = errors.New("waypoint velocity constraint cannot be met")

// ErrInvalidParams indicates malformed construction input: fewer than two
// waypoints, a non-positive segment count, non-positive robot limits, or a
// tank-drive trajectory built from a non-tank basic trajectory.
var ErrInvalidParams = errors.New("invalid trajectory parameters")

// ErrPrecomputationMissing indicates Path.S2T or Path.T2S was called before
// Path.ComputeLen built the arc-length lookup table.
var ErrPrecomputationMissing = errors.New("arc-length lookup table not generated")
