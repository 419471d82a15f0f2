package path

import (
	"math"

	"github.com/fenwickrobotics/motioncore"
	"github.com/fenwickrobotics/motioncore/geom"
)

// MirrorLR reflects the path across the Y axis: every waypoint's x
// coordinate and heading are negated, and segments are rebuilt with the
// same alpha and spline family.
func (p *Path) MirrorLR() (*Path, error) {
	mirrored := make([]motioncore.Waypoint, len(p.waypoints))
	for i, w := range p.waypoints {
		mirrored[i] = motioncore.Waypoint{
			X:        -w.X,
			Y:        w.Y,
			Heading:  geom.RAngle(-w.Heading),
			Velocity: w.Velocity,
		}
	}
	return New(mirrored, p.alpha, p.pathType)
}

// MirrorFB reflects the path along the direction of travel: heading maps
// to pi-heading and waypoint order reverses, so the new start is the old
// end.
func (p *Path) MirrorFB() (*Path, error) {
	n := len(p.waypoints)
	mirrored := make([]motioncore.Waypoint, n)
	for i, w := range p.waypoints {
		mirrored[n-1-i] = motioncore.Waypoint{
			X:        w.X,
			Y:        w.Y,
			Heading:  geom.RAngle(math.Pi - w.Heading),
			Velocity: w.Velocity,
		}
	}
	return New(mirrored, p.alpha, p.pathType)
}

// Retrace reverses waypoint order and flips each heading by pi, producing
// a path with the same geometry traversed in the opposite direction.
func (p *Path) Retrace() (*Path, error) {
	n := len(p.waypoints)
	reversed := make([]motioncore.Waypoint, n)
	for i, w := range p.waypoints {
		reversed[n-1-i] = motioncore.Waypoint{
			X:        w.X,
			Y:        w.Y,
			Heading:  geom.RAngle(w.Heading + math.Pi),
			Velocity: w.Velocity,
		}
	}
	return New(reversed, p.alpha, p.pathType)
}
