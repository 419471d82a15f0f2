package geom

import "math"

// DefaultTolerance is a default floating-point comparison threshold for
// callers to pass as FloatEq's epsilon; FloatEq itself always takes an
// explicit epsilon. It mirrors the
// 1e-7 default the source library ships for its own float-compare helpers.
const DefaultTolerance = 1e-7

// Lerp linearly interpolates between a and b: a + (b-a)*f.
func Lerp(a, b, f float64) float64 {
	return a + (b-a)*f
}

// RAngle wraps theta into (-pi, pi].
func RAngle(theta float64) float64 {
	theta = math.Mod(theta, 2*math.Pi)
	if theta <= -math.Pi {
		theta += 2 * math.Pi
	} else if theta > math.Pi {
		theta -= 2 * math.Pi
	}
	return theta
}

// LerpAngle interpolates between two headings by lerping their unit
// direction vectors and recovering the angle, avoiding the wraparound
// discontinuity a naive scalar lerp would hit crossing +/-pi.
func LerpAngle(a, b, f float64) float64 {
	va, vb := HeadingVec(a), HeadingVec(b)
	v := Vec2{X: Lerp(va.X, vb.X, f), Y: Lerp(va.Y, vb.Y, f)}
	return math.Atan2(v.X, v.Y)
}

// MirrorAngle reflects theta across the line represented by angle ref.
func MirrorAngle(theta, ref float64) float64 {
	return RAngle(theta - 2*(theta-ref))
}

// Curvature computes the signed curvature of a parametric curve from its
// first and second derivatives: (dx*ddy - dy*ddx) / (dx^2+dy^2)^1.5.
func Curvature(dx, ddx, dy, ddy float64) float64 {
	denom := math.Pow(dx*dx+dy*dy, 1.5)
	return (dx*ddy - dy*ddx) / denom
}

// ClampAbs clips the magnitude of v to limit, preserving sign. This is
// spec's rabs / the source library's clampAbs.
func ClampAbs(v, limit float64) float64 {
	if math.Abs(v) <= limit {
		return v
	}
	return math.Copysign(limit, v)
}

// FloatEq reports whether a and b differ by no more than epsilon.
func FloatEq(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}
