// Package framing computes where the camera should sit to frame a target.
package framing

import (
	gomath "math"

	"github.com/Faultbox/depot-nav/internal/scene"
	"github.com/Faultbox/depot-nav/pkg/math"
)

// Settings holds the framing constants.
type Settings struct {
	PitchDeg     float64 // Fixed downward pitch
	YawOffsetDeg float64 // 3/4 view offset from the current heading quadrant
	MinDistance  float64
	MaxDistance  float64
}

// DefaultSettings returns the reference framing.
func DefaultSettings() Settings {
	return Settings{
		PitchDeg:     33.72,
		YawOffsetDeg: 37.75,
		MinDistance:  15,
		MaxDistance:  80,
	}
}

// Framing is a computed camera pose for a target.
type Framing struct {
	Position math.Vec3
	Rotation math.Vec3
	IsFront  bool
	// Distance is the clamped per-axis offset from the target centre.
	Distance float64
}

// Calculator derives framing poses from target bounds.
type Calculator struct {
	settings Settings
}

// NewCalculator creates a calculator.
func NewCalculator(settings Settings) *Calculator {
	return &Calculator{settings: settings}
}

// Compute frames target from a camera currently heading at currentYaw.
//
// The yaw is chosen relative to the camera's half-turn quadrant, not the
// target's heading, so repeated selections keep the same 3/4 view. The two
// quadrant branches intentionally use different offsets (+offset and
// -(180-offset)); they meet continuously at the wrap point.
func (c *Calculator) Compute(target scene.FocusTarget, currentYaw float64) Framing {
	target.RefreshBounds()
	bounds := target.Bounds()
	s := c.settings

	isFront := true
	yaw := 0.0
	rem := math.Mod(currentYaw, gomath.Pi)
	switch {
	case rem >= 0 && rem < gomath.Pi:
		isFront = math.Mod(currentYaw, math.TwoPi) > gomath.Pi
		yaw = currentYaw - rem + math.DegToRad(s.YawOffsetDeg)
	case rem > -gomath.Pi && rem < 0:
		isFront = math.Mod(currentYaw, math.TwoPi) > -gomath.Pi
		yaw = currentYaw - rem - math.DegToRad(180-s.YawOffsetDeg)
	}

	scale := target.WorldScale()
	extent := bounds.Min.Mul(scale).Distance(bounds.Max.Mul(scale))
	if gomath.IsNaN(extent) {
		extent = 0
	}
	dist := math.Clamp(extent, s.MinDistance, s.MaxDistance)

	sign := -1.0
	if isFront {
		sign = 1.0
	}
	offset := math.Vec3{X: sign * dist, Y: dist, Z: sign * dist}

	return Framing{
		Position: bounds.CenterWorld.Add(offset),
		Rotation: math.Vec3{X: math.DegToRad(s.PitchDeg), Y: yaw, Z: 0},
		IsFront:  isFront,
		Distance: dist,
	}
}
