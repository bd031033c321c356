package scene

import "github.com/Faultbox/depot-nav/pkg/math"

// ElementRole names one independently fading part of an info panel.
type ElementRole int

const (
	RoleBackground ElementRole = iota
	RoleTitle
	RoleContent
	RoleAccent
	RolePlane
)

// Roles lists every panel element role in draw order.
var Roles = []ElementRole{RoleBackground, RoleTitle, RoleContent, RoleAccent, RolePlane}

func (r ElementRole) String() string {
	switch r {
	case RoleBackground:
		return "background"
	case RoleTitle:
		return "title"
	case RoleContent:
		return "content"
	case RoleAccent:
		return "accent"
	case RolePlane:
		return "plane"
	default:
		return "unknown"
	}
}

// PanelSpec describes a panel to create.
type PanelSpec struct {
	Name   string
	Title  string
	Body   []string
	Anchor math.Vec3
	Width  int
	Height int
}

// Panel is a live panel anchored on a plane in world space.
type Panel interface {
	Alpha(role ElementRole) float64
	SetAlpha(role ElementRole, alpha float64)
	// Dispose releases every element and the anchor plane.
	Dispose()
}

// PanelFactory creates panels.
type PanelFactory interface {
	CreatePanel(spec PanelSpec) (Panel, error)
}

// IconSpec describes a billboard icon.
type IconSpec struct {
	Name   string
	Label  string
	Image  string
	Anchor math.Vec3
	Width  int
	Height int
}

// Icon is a billboard linked to a world-space anchor.
type Icon interface {
	SetVisible(visible bool)
	Visible() bool
	// OnClick registers the click handler, replacing any previous one.
	OnClick(fn func())
	Dispose()
}

// IconFactory creates icons.
type IconFactory interface {
	CreateIcon(spec IconSpec) (Icon, error)
}
