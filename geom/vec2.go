// Package geom provides the planar vector arithmetic and scalar math
// utilities shared by the spline, path, and profile packages.
package geom

import (
	"math"

	"github.com/golang/geo/r3"
)

// Vec2 is a point or displacement in the plane.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by f.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

// Equal reports exact equality, matching the source library's Vec2D
// equality semantics.
func (v Vec2) Equal(o Vec2) bool {
	return v.X == o.X && v.Y == o.Y
}

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Norm returns the magnitude of v.
func (v Vec2) Norm() float64 {
	return math.Hypot(v.X, v.Y)
}

// R3 converts v to an r3.Vector with Z pinned to 0, for interop with
// callers built against golang/geo's 3D types.
func (v Vec2) R3() r3.Vector {
	return r3.Vector{X: v.X, Y: v.Y, Z: 0}
}

// Vec2FromR3 projects an r3.Vector onto the plane, discarding Z.
func Vec2FromR3(v r3.Vector) Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

// HeadingVec returns the unit vector pointing in the field-oriented
// heading direction (angle measured from +Y, clockwise): (sin(h), cos(h)).
func HeadingVec(heading float64) Vec2 {
	return Vec2{X: math.Sin(heading), Y: math.Cos(heading)}
}
