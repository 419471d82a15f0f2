package motioncore

import (
	"fmt"
	"math"

	"go.uber.org/multierr"
)

// RobotSpecs describes the kinematic limits of a differentially-steered
// mobile robot: maximum linear velocity, maximum linear acceleration, and
// the wheel-to-wheel base width. All three must be strictly positive.
type RobotSpecs struct {
	MaxVelocity     float64
	MaxAcceleration float64
	BaseWidth       float64
}

// Validate reports every malformed field at once via multierr.Append,
// rather than failing fast on the first one, so a caller assembling specs
// programmatically sees the full picture in one error.
func (s RobotSpecs) Validate() error {
	var err error
	if !(s.MaxVelocity > 0) || math.IsInf(s.MaxVelocity, 0) {
		err = multierr.Append(err, fmt.Errorf("%w: max velocity must be positive and finite, got %v", ErrInvalidParams, s.MaxVelocity))
	}
	if !(s.MaxAcceleration > 0) || math.IsInf(s.MaxAcceleration, 0) {
		err = multierr.Append(err, fmt.Errorf("%w: max acceleration must be positive and finite, got %v", ErrInvalidParams, s.MaxAcceleration))
	}
	if !(s.BaseWidth > 0) || math.IsInf(s.BaseWidth, 0) {
		err = multierr.Append(err, fmt.Errorf("%w: base width must be positive and finite, got %v", ErrInvalidParams, s.BaseWidth))
	}
	return err
}
