package math

import "math"

// Vec2 is a 2D vector, used for screen-space pointer coordinates.
type Vec2 struct {
	X, Y float64
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Length returns the magnitude.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Within reports whether other lies inside the axis-aligned square of
// half-size threshold centred on v.
func (v Vec2) Within(other Vec2, threshold float64) bool {
	d := v.Sub(other)
	return math.Abs(d.X) <= threshold && math.Abs(d.Y) <= threshold
}
