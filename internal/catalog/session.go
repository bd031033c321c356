package catalog

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Faultbox/depot-nav/internal/scene"
)

// Session is the in-memory list of ad-hoc viewpoints recorded during one
// run. Order is insertion order; ids are generated.
type Session struct {
	points []Viewpoint
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{}
}

// Add appends vp with a freshly generated id and returns the stored copy.
func (s *Session) Add(vp Viewpoint) Viewpoint {
	vp.ID = "view_" + uuid.NewString()
	if vp.Name == "" {
		vp.Name = fmt.Sprintf("Capture %d", len(s.points)+1)
	}
	s.points = append(s.points, vp)
	return vp
}

// Capture records the camera's current pose.
func (s *Session) Capture(pose scene.Pose, durationSec float64) Viewpoint {
	return s.Add(Viewpoint{
		Position: pose.Position,
		Rotation: pose.Rotation,
		Duration: durationSec,
	})
}

// Replace overwrites the entry at index i, keeping its id.
func (s *Session) Replace(i int, vp Viewpoint) error {
	if i < 0 || i >= len(s.points) {
		return fmt.Errorf("%w: session index %d", ErrNotFound, i)
	}
	vp.ID = s.points[i].ID
	s.points[i] = vp
	return nil
}

// Remove deletes the entry at index i.
func (s *Session) Remove(i int) error {
	if i < 0 || i >= len(s.points) {
		return fmt.Errorf("%w: session index %d", ErrNotFound, i)
	}
	s.points = append(s.points[:i], s.points[i+1:]...)
	return nil
}

// Clear drops every entry.
func (s *Session) Clear() {
	s.points = nil
}

// Len returns the number of entries.
func (s *Session) Len() int {
	return len(s.points)
}

// All returns a copy of the entries in insertion order.
func (s *Session) All() []Viewpoint {
	return append([]Viewpoint(nil), s.points...)
}
