// Package memscene is a headless, in-memory implementation of the scene
// boundary. It backs the demo runner and the navigation tests.
package memscene

import (
	"fmt"
	"sort"

	"github.com/Faultbox/depot-nav/internal/scene"
	"github.com/Faultbox/depot-nav/pkg/math"
)

// Mesh is an axis-aligned box placed in the world.
type Mesh struct {
	name     string
	min, max math.Vec3
	position math.Vec3
	scale    math.Vec3

	bounds    scene.BoundingInfo
	refreshes int
}

// NewMesh creates a mesh with local bounds [min, max] centred on position.
func NewMesh(name string, min, max, position math.Vec3) *Mesh {
	m := &Mesh{
		name:     name,
		min:      min,
		max:      max,
		position: position,
		scale:    math.Vec3{X: 1, Y: 1, Z: 1},
	}
	m.RefreshBounds()
	return m
}

// Name returns the mesh name.
func (m *Mesh) Name() string { return m.name }

// SetScale changes the world scale. Bounds update on the next refresh.
func (m *Mesh) SetScale(s math.Vec3) { m.scale = s }

// SetPosition moves the mesh. Bounds update on the next refresh.
func (m *Mesh) SetPosition(p math.Vec3) { m.position = p }

// RefreshBounds recomputes the world centre.
func (m *Mesh) RefreshBounds() {
	localCenter := m.min.Add(m.max).Scale(0.5)
	m.bounds = scene.BoundingInfo{
		Min:         m.min,
		Max:         m.max,
		CenterWorld: m.position.Add(localCenter.Mul(m.scale)),
	}
	m.refreshes++
}

// Refreshes reports how many times bounds were recomputed.
func (m *Mesh) Refreshes() int { return m.refreshes }

// Bounds returns the last computed bounds.
func (m *Mesh) Bounds() scene.BoundingInfo { return m.bounds }

// WorldScale returns the world scale.
func (m *Mesh) WorldScale() math.Vec3 { return m.scale }

// Camera is a free camera.
type Camera struct {
	name string
	pose scene.Pose
}

// NewCamera creates a camera at the given pose.
func NewCamera(name string, pose scene.Pose) *Camera {
	return &Camera{name: name, pose: pose}
}

// Name returns the camera name.
func (c *Camera) Name() string { return c.name }

// Pose returns the live pose.
func (c *Camera) Pose() *scene.Pose { return &c.pose }

// World holds meshes, cameras, the highlight layer and UI elements.
type World struct {
	meshes  map[string]*Mesh
	cameras map[string]*Camera

	highlighted map[string]scene.Color
	panels      map[*Panel]struct{}
	icons       map[*Icon]struct{}
}

// New creates an empty world.
func New() *World {
	return &World{
		meshes:      make(map[string]*Mesh),
		cameras:     make(map[string]*Camera),
		highlighted: make(map[string]scene.Color),
		panels:      make(map[*Panel]struct{}),
		icons:       make(map[*Icon]struct{}),
	}
}

// AddMesh registers a mesh.
func (w *World) AddMesh(m *Mesh) { w.meshes[m.name] = m }

// AddCamera registers a camera.
func (w *World) AddCamera(c *Camera) { w.cameras[c.name] = c }

// Mesh looks up a mesh by name.
func (w *World) Mesh(name string) (scene.FocusTarget, error) {
	m, ok := w.meshes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", scene.ErrNoMesh, name)
	}
	return m, nil
}

// Camera looks up a camera by name.
func (w *World) Camera(name string) (scene.Camera, error) {
	c, ok := w.cameras[name]
	if !ok {
		return nil, fmt.Errorf("scene: no such camera %q", name)
	}
	return c, nil
}

// Add highlights a mesh.
func (w *World) Add(target scene.FocusTarget, color scene.Color) {
	w.highlighted[target.Name()] = color
}

// Remove clears a mesh highlight.
func (w *World) Remove(target scene.FocusTarget) {
	delete(w.highlighted, target.Name())
}

// Highlighted returns the names of highlighted meshes, sorted.
func (w *World) Highlighted() []string {
	names := make([]string, 0, len(w.highlighted))
	for name := range w.highlighted {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreatePanel creates a panel with every element at alpha 0.
func (w *World) CreatePanel(spec scene.PanelSpec) (scene.Panel, error) {
	p := &Panel{
		world:  w,
		Spec:   spec,
		alphas: make(map[scene.ElementRole]float64, len(scene.Roles)),
	}
	for _, r := range scene.Roles {
		p.alphas[r] = 0
	}
	w.panels[p] = struct{}{}
	return p, nil
}

// LivePanels returns the panels that have not been disposed.
func (w *World) LivePanels() []*Panel {
	out := make([]*Panel, 0, len(w.panels))
	for p := range w.panels {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Spec.Name < out[j].Spec.Name })
	return out
}

// CreateIcon creates a visible icon.
func (w *World) CreateIcon(spec scene.IconSpec) (scene.Icon, error) {
	ic := &Icon{world: w, Spec: spec, visible: true}
	w.icons[ic] = struct{}{}
	return ic, nil
}

// LiveIcons returns the icons that have not been disposed.
func (w *World) LiveIcons() []*Icon {
	out := make([]*Icon, 0, len(w.icons))
	for ic := range w.icons {
		out = append(out, ic)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Spec.Name < out[j].Spec.Name })
	return out
}

// Panel is an in-memory panel.
type Panel struct {
	world    *World
	Spec     scene.PanelSpec
	alphas   map[scene.ElementRole]float64
	disposed bool
}

// Alpha returns an element's alpha.
func (p *Panel) Alpha(role scene.ElementRole) float64 { return p.alphas[role] }

// SetAlpha sets an element's alpha. Ignored after Dispose.
func (p *Panel) SetAlpha(role scene.ElementRole, alpha float64) {
	if p.disposed {
		return
	}
	p.alphas[role] = alpha
}

// Dispose removes the panel from the world.
func (p *Panel) Dispose() {
	if p.disposed {
		return
	}
	p.disposed = true
	delete(p.world.panels, p)
}

// Disposed reports whether Dispose was called.
func (p *Panel) Disposed() bool { return p.disposed }

// Icon is an in-memory icon.
type Icon struct {
	world    *World
	Spec     scene.IconSpec
	visible  bool
	onClick  func()
	disposed bool
}

// SetVisible shows or hides the icon.
func (ic *Icon) SetVisible(visible bool) { ic.visible = visible }

// Visible reports visibility.
func (ic *Icon) Visible() bool { return ic.visible }

// OnClick sets the click handler.
func (ic *Icon) OnClick(fn func()) { ic.onClick = fn }

// Click simulates a click on the icon.
func (ic *Icon) Click() {
	if ic.disposed || !ic.visible || ic.onClick == nil {
		return
	}
	ic.onClick()
}

// Dispose removes the icon from the world.
func (ic *Icon) Dispose() {
	if ic.disposed {
		return
	}
	ic.disposed = true
	ic.onClick = nil
	delete(ic.world.icons, ic)
}
