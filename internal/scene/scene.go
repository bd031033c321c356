// Package scene defines the boundary between the navigation core and the
// external 3D engine and UI-control layer.
//
// The core never renders anything itself. It reads bounds and transforms
// through FocusTarget, writes the camera pose through Camera and creates
// panels and icons through the factories below.
package scene

import (
	"errors"

	"github.com/Faultbox/depot-nav/pkg/math"
)

// ErrNoMesh is returned by lookups for names the engine does not know.
var ErrNoMesh = errors.New("scene: no such mesh")

// Pose is a camera position and rotation (pitch, yaw, roll in radians).
type Pose struct {
	Position math.Vec3
	Rotation math.Vec3
}

// Camera is the single active camera. Pose returns a pointer to the live
// pose; tweens write through it and the engine reads it every frame.
type Camera interface {
	Name() string
	Pose() *Pose
}

// BoundingInfo describes a mesh's axis-aligned bounds. Min and Max are in
// local space, CenterWorld is the box centre after the world transform.
type BoundingInfo struct {
	Min         math.Vec3
	Max         math.Vec3
	CenterWorld math.Vec3
}

// FocusTarget is a scene object the camera can frame. The core only reads it.
type FocusTarget interface {
	Name() string
	// RefreshBounds recomputes bounds from the current world transform.
	RefreshBounds()
	Bounds() BoundingInfo
	// WorldScale is the scale component of the world matrix.
	WorldScale() math.Vec3
}

// Scene resolves engine objects by name.
type Scene interface {
	Mesh(name string) (FocusTarget, error)
	Camera(name string) (Camera, error)
}

// Color is an RGB triple in [0, 1].
type Color struct {
	R, G, B float64
}

// Yellow is the default highlight color.
var Yellow = Color{R: 1, G: 1, B: 0}

// HighlightLayer applies and removes the glow effect on meshes.
type HighlightLayer interface {
	Add(target FocusTarget, color Color)
	Remove(target FocusTarget)
}

// PointerKind distinguishes pointer events.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

// PointerEvent is a pointer event in screen coordinates.
type PointerEvent struct {
	Kind   PointerKind
	X, Y   float64
	Button int
	// OverControl is set by the engine when the pointer hit a UI control
	// (an icon or a panel) rather than the scene background.
	OverControl bool
}
