// Package icons places a clickable billboard above every building.
package icons

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/depot-nav/internal/catalog"
	"github.com/Faultbox/depot-nav/internal/config"
	"github.com/Faultbox/depot-nav/internal/events"
	"github.com/Faultbox/depot-nav/internal/scene"
	"github.com/Faultbox/depot-nav/pkg/math"
)

// Manager owns the building icons.
type Manager struct {
	factory scene.IconFactory
	bus     *events.Bus
	cfg     config.IconsConfig
	log     *zap.Logger

	icons       map[string]scene.Icon
	order       []string
	visible     bool
	unsubscribe func()
}

// New creates a manager. Icons are created by Init.
func New(factory scene.IconFactory, bus *events.Bus, cfg config.IconsConfig, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		factory: factory,
		bus:     bus,
		cfg:     cfg,
		log:     log,
		icons:   make(map[string]scene.Icon),
		visible: cfg.Visible,
	}
}

// Init creates one icon per building and subscribes to ToggleIcons.
// Clicking an icon publishes Select for its building. On error, icons
// created so far are disposed.
func (m *Manager) Init(buildings []catalog.Building) error {
	for _, b := range buildings {
		w, h := b.Icon.Width, b.Icon.Height
		if w == 0 || h == 0 {
			w, h = m.cfg.Width, m.cfg.Height
		}
		icon, err := m.factory.CreateIcon(scene.IconSpec{
			Name:   "icon_" + b.ID,
			Label:  b.Name,
			Image:  b.Icon.Src,
			Anchor: b.Position.Add(math.Vec3{Y: m.cfg.Lift}),
			Width:  w,
			Height: h,
		})
		if err != nil {
			m.Close()
			return fmt.Errorf("icons: create %q: %w", b.ID, err)
		}

		id := b.ID
		icon.OnClick(func() {
			m.log.Debug("icon clicked", zap.String("id", id))
			events.Publish(m.bus, events.Select{ID: id})
		})
		icon.SetVisible(m.visible)
		m.icons[id] = icon
		m.order = append(m.order, id)
	}

	m.unsubscribe = events.Subscribe(m.bus, func(ev events.ToggleIcons) {
		m.SetVisible(ev.Visible)
	})
	m.log.Debug("icons created", zap.Int("count", len(m.icons)))
	return nil
}

// SetVisible shows or hides every icon.
func (m *Manager) SetVisible(visible bool) {
	m.visible = visible
	for _, id := range m.order {
		m.icons[id].SetVisible(visible)
	}
}

// Visible reports the last visibility applied.
func (m *Manager) Visible() bool { return m.visible }

// Len returns the number of live icons.
func (m *Manager) Len() int { return len(m.icons) }

// Close disposes every icon and stops listening for ToggleIcons.
func (m *Manager) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
	for _, id := range m.order {
		m.icons[id].Dispose()
	}
	m.icons = make(map[string]scene.Icon)
	m.order = nil
}
