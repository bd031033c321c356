// Package panel runs the building info panel: a single anchored panel that
// fades in, stays, and fades out before being disposed.
package panel

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/depot-nav/internal/anim"
	"github.com/Faultbox/depot-nav/internal/config"
	"github.com/Faultbox/depot-nav/internal/events"
	"github.com/Faultbox/depot-nav/internal/scene"
	"github.com/Faultbox/depot-nav/pkg/math"
)

// State is the panel lifecycle.
type State int

const (
	Hidden State = iota
	FadingIn
	Shown
	FadingOut
)

func (s State) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case FadingIn:
		return "fading-in"
	case Shown:
		return "shown"
	case FadingOut:
		return "fading-out"
	default:
		return "unknown"
	}
}

// Settings holds fade timings and the alpha each element fades in to.
type Settings struct {
	FadeIn  time.Duration
	FadeOut time.Duration
	// Settle is the gap, counted from the start of a fade-out, before the
	// next panel may start fading in.
	Settle time.Duration
	Width  int
	Height int
	Alphas map[scene.ElementRole]float64
}

// SettingsFromConfig converts the panel config section.
func SettingsFromConfig(cfg config.PanelConfig) Settings {
	return Settings{
		FadeIn:  cfg.FadeIn,
		FadeOut: cfg.FadeOut,
		Settle:  cfg.Settle,
		Width:   cfg.Width,
		Height:  cfg.Height,
		Alphas: map[scene.ElementRole]float64{
			scene.RoleBackground: cfg.Background,
			scene.RoleTitle:      cfg.Title,
			scene.RoleContent:    cfg.Content,
			scene.RoleAccent:     cfg.Accent,
			scene.RolePlane:      cfg.Plane,
		},
	}
}

type request struct {
	id      string
	content Content
	anchor  math.Vec3
}

// Controller owns the one live panel. All methods must be called from the
// frame loop.
type Controller struct {
	factory  scene.PanelFactory
	sched    *anim.Scheduler
	source   Source
	settings Settings
	log      *zap.Logger

	state   State
	id      string
	panel   scene.Panel
	from    map[scene.ElementRole]float64
	elapsed time.Duration

	// Request waiting for the current panel to leave.
	pending  *request
	settleAt time.Duration
	settle   *anim.Timer

	// Set while the panel is being created or disposed.
	busy bool

	unsubscribe []func()
}

// New creates a controller. source may be nil if only Show is used.
func New(factory scene.PanelFactory, sched *anim.Scheduler, source Source, settings Settings, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		factory:  factory,
		sched:    sched,
		source:   source,
		settings: settings,
		log:      log,
		from:     make(map[scene.ElementRole]float64, len(scene.Roles)),
	}
}

// Attach subscribes the controller to ShowPanel and HidePanel. Close
// removes the subscriptions.
func (c *Controller) Attach(bus *events.Bus) {
	c.unsubscribe = append(c.unsubscribe,
		events.Subscribe(bus, func(ev events.ShowPanel) { c.ShowID(ev.ID) }),
		events.Subscribe(bus, func(events.HidePanel) { c.Hide() }),
	)
}

// State returns the lifecycle state.
func (c *Controller) State() State { return c.state }

// Current returns the id of the live panel, or "" when hidden.
func (c *Controller) Current() string { return c.id }

// Pending returns the id waiting to be shown after the current fade-out.
func (c *Controller) Pending() string {
	if c.pending == nil {
		return ""
	}
	return c.pending.id
}

// Live reports whether a panel exists, in any state but Hidden.
func (c *Controller) Live() bool { return c.panel != nil }

// ShowID looks id up in the source and shows it. Unknown ids are logged
// and ignored.
func (c *Controller) ShowID(id string) {
	if c.source == nil {
		c.log.Warn("no panel source", zap.String("id", id))
		return
	}
	content, anchor, ok := c.source.Content(id)
	if !ok {
		c.log.Debug("no panel content", zap.String("id", id))
		return
	}
	c.Show(id, content, anchor)
}

// Show displays the panel for id. A different live panel fades out first
// and the new one starts once it is gone and the settle delay has passed.
func (c *Controller) Show(id string, content Content, anchor math.Vec3) {
	if c.busy {
		c.log.Debug("panel busy, show ignored", zap.String("id", id), zap.Stringer("state", c.state))
		return
	}
	req := &request{id: id, content: content, anchor: anchor}

	switch c.state {
	case Hidden:
		c.fadeIn(req)
	case FadingIn, Shown:
		if c.id == id {
			return
		}
		c.fadeOut()
		c.queue(req)
	case FadingOut:
		if c.pending != nil && c.pending.id == id {
			c.log.Debug("panel request already queued", zap.String("id", id))
			return
		}
		c.queue(req)
	}
}

// Hide fades the live panel out and drops any queued request.
func (c *Controller) Hide() {
	if c.busy {
		c.log.Debug("panel busy, hide ignored", zap.Stringer("state", c.state))
		return
	}
	c.pending = nil
	c.settle.Stop()

	switch c.state {
	case FadingIn, Shown:
		c.fadeOut()
	}
}

// Update advances the running fade.
func (c *Controller) Update(dt time.Duration) {
	switch c.state {
	case FadingIn:
		c.elapsed += dt
		t := progress(c.elapsed, c.settings.FadeIn)
		c.apply(t, true)
		if t >= 1 {
			c.state = Shown
			c.log.Debug("panel shown", zap.String("id", c.id))
		}
	case FadingOut:
		c.elapsed += dt
		t := progress(c.elapsed, c.settings.FadeOut)
		c.apply(t, false)
		if t >= 1 {
			c.dispose()
			if c.pending != nil && !c.settle.Pending() {
				c.startPending()
			}
		}
	}
}

// Close disposes any live panel immediately and detaches from the bus.
func (c *Controller) Close() {
	c.settle.Stop()
	c.pending = nil
	if c.panel != nil {
		c.dispose()
	}
	for _, unsub := range c.unsubscribe {
		unsub()
	}
	c.unsubscribe = nil
}

func (c *Controller) fadeIn(req *request) {
	c.busy = true
	p, err := c.factory.CreatePanel(scene.PanelSpec{
		Name:   "panel_" + req.id,
		Title:  req.content.Title,
		Body:   req.content.Body,
		Anchor: req.anchor,
		Width:  c.settings.Width,
		Height: c.settings.Height,
	})
	c.busy = false
	if err != nil {
		c.log.Warn("failed to create panel", zap.String("id", req.id), zap.Error(err))
		return
	}

	c.panel = p
	c.id = req.id
	c.state = FadingIn
	c.elapsed = 0
	for _, role := range scene.Roles {
		c.from[role] = 0
		p.SetAlpha(role, 0)
	}
	c.log.Debug("panel fading in", zap.String("id", req.id))
}

func (c *Controller) fadeOut() {
	c.state = FadingOut
	c.elapsed = 0
	for _, role := range scene.Roles {
		c.from[role] = c.panel.Alpha(role)
	}
	c.settleAt = c.sched.Now() + c.settings.Settle
	c.log.Debug("panel fading out", zap.String("id", c.id))
}

// queue replaces any pending request and arms the settle timer.
func (c *Controller) queue(req *request) {
	c.pending = req
	if c.settle.Pending() {
		return
	}
	c.settle = c.sched.After(c.settleAt-c.sched.Now(), func() {
		if c.state == Hidden && c.pending != nil {
			c.startPending()
		}
	})
}

func (c *Controller) startPending() {
	req := c.pending
	c.pending = nil
	c.fadeIn(req)
}

func (c *Controller) apply(t float64, in bool) {
	e := math.EaseOutCubic(t)
	for _, role := range scene.Roles {
		to := 0.0
		if in {
			to = c.settings.Alphas[role]
		}
		c.panel.SetAlpha(role, math.Lerp(c.from[role], to, e))
	}
}

func (c *Controller) dispose() {
	c.busy = true
	c.panel.Dispose()
	c.busy = false

	c.log.Debug("panel disposed", zap.String("id", c.id))
	c.panel = nil
	c.id = ""
	c.state = Hidden
	c.elapsed = 0
}

func progress(elapsed, total time.Duration) float64 {
	if total <= 0 || elapsed >= total {
		return 1
	}
	return float64(elapsed) / float64(total)
}
