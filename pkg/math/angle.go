package math

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// TwoPi is a full revolution in radians.
const TwoPi = 2 * math.Pi

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Mod returns the remainder of x/y with the sign of x, matching the
// truncating remainder engines use for accumulated rotations.
func Mod(x, y float64) float64 {
	return math.Mod(x, y)
}

// NormalizeYaw maps an absolute heading given in degrees onto the winding
// of currentYaw, so that interpolating from currentYaw to the result sweeps
// at most half a turn.
//
// currentYaw may span several revolutions; the result stays in the same
// revolution when possible and otherwise moves one revolution toward the
// target.
func NormalizeYaw(currentYaw, desiredDeg float64) float64 {
	desired := DegToRad(desiredDeg)
	rev := math.Floor(currentYaw / TwoPi)
	candidate := desired + rev*TwoPi

	diff := currentYaw - candidate
	if diff > math.Pi || diff < -math.Pi {
		// desired may itself carry whole revolutions
		rev += math.Round(diff / TwoPi)
		candidate = desired + rev*TwoPi
	}
	return candidate
}

// NormalizeYawRad is NormalizeYaw with the target given in radians.
func NormalizeYawRad(currentYaw, desired float64) float64 {
	return NormalizeYaw(currentYaw, RadToDeg(desired))
}

// AngleEqual reports whether a and b describe the same heading within tol.
func AngleEqual(a, b, tol float64) bool {
	d := math.Mod(a-b, TwoPi)
	if d < 0 {
		d += TwoPi
	}
	return scalar.EqualWithinAbs(d, 0, tol) || scalar.EqualWithinAbs(d, TwoPi, tol)
}
