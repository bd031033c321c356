package nav

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/depot-nav/internal/anim"
	"github.com/Faultbox/depot-nav/internal/catalog"
	"github.com/Faultbox/depot-nav/internal/config"
	"github.com/Faultbox/depot-nav/internal/events"
	"github.com/Faultbox/depot-nav/internal/framing"
	"github.com/Faultbox/depot-nav/internal/highlight"
	"github.com/Faultbox/depot-nav/internal/panel"
	"github.com/Faultbox/depot-nav/internal/scene"
	"github.com/Faultbox/depot-nav/pkg/math"
)

// Settings holds selection timings.
type Settings struct {
	FocusDuration  time.Duration // Camera move when framing a mesh
	JumpDuration   time.Duration // Camera move to a fixed jump point
	PanelBuffer    time.Duration // Added to the move before the panel shows
	ClickThreshold float64
	Ease           math.Ease
	Framing        framing.Settings
}

// SettingsFromConfig converts the navigation config section.
func SettingsFromConfig(cfg config.NavigationConfig) Settings {
	return Settings{
		FocusDuration:  cfg.FocusDuration,
		JumpDuration:   cfg.JumpDuration,
		PanelBuffer:    cfg.PanelBuffer,
		ClickThreshold: cfg.ClickThreshold,
		Ease:           math.EaseByName(cfg.Ease),
		Framing: framing.Settings{
			PitchDeg:     cfg.PitchDeg,
			YawOffsetDeg: cfg.YawOffsetDeg,
			MinDistance:  cfg.MinDistance,
			MaxDistance:  cfg.MaxDistance,
		},
	}
}

// Orchestrator turns selections into a highlight, a camera move and a
// delayed info panel.
type Orchestrator struct {
	ctx       *Context
	buildings *catalog.Catalog
	frame     *framing.Calculator
	highlight *highlight.Controller
	panel     *panel.Controller
	settings  Settings
	click     ClickDetector
	log       *zap.Logger

	selected  string
	move      *anim.Handle
	showPanel *anim.Timer

	unsubscribe []func()
}

// NewOrchestrator creates the orchestrator, subscribes it to Select and
// Dismiss and registers its teardown with ctx.
func NewOrchestrator(ctx *Context, buildings *catalog.Catalog, hl *highlight.Controller, pc *panel.Controller, settings Settings) *Orchestrator {
	o := &Orchestrator{
		ctx:       ctx,
		buildings: buildings,
		frame:     framing.NewCalculator(settings.Framing),
		highlight: hl,
		panel:     pc,
		settings:  settings,
		click:     ClickDetector{Threshold: settings.ClickThreshold},
		log:       ctx.Log.Named("orchestrator"),
	}
	o.unsubscribe = append(o.unsubscribe,
		events.Subscribe(ctx.Bus, func(ev events.Select) { o.Select(ev.ID) }),
		events.Subscribe(ctx.Bus, func(events.Dismiss) { o.Dismiss() }),
	)
	ctx.OnClose(o.close)
	return o
}

// Selected returns the id of the last successful selection.
func (o *Orchestrator) Selected() string { return o.selected }

// Moving reports whether the selection's camera move is still running.
func (o *Orchestrator) Moving() bool { return o.move.Active() }

// PanelScheduled reports whether a panel show is waiting on its timer.
func (o *Orchestrator) PanelScheduled() bool { return o.showPanel.Pending() }

// Select focuses the building id. Unknown ids, and buildings with neither
// a mesh in the scene nor a jump point, are logged and ignored.
func (o *Orchestrator) Select(id string) {
	b, err := o.buildings.Building(id)
	if err != nil {
		o.log.Debug("select: unknown building", zap.String("id", id))
		return
	}

	meshName := b.Mesh
	if meshName == "" {
		meshName = b.ID
	}
	target, err := o.ctx.Scene.Mesh(meshName)
	if err != nil && !errors.Is(err, scene.ErrNoMesh) {
		o.log.Warn("select: mesh lookup failed", zap.String("id", id), zap.Error(err))
		return
	}
	if target == nil && b.CameraPoint == nil {
		o.log.Debug("select: nothing to focus", zap.String("id", id), zap.String("mesh", meshName))
		return
	}

	o.showPanel.Stop()
	o.highlight.Set(target)

	var d time.Duration
	if target != nil {
		d = o.focus(target)
	} else {
		d = o.jump(b)
	}
	o.selected = id

	o.showPanel = o.ctx.Scheduler.After(d+o.settings.PanelBuffer, func() {
		o.panel.ShowID(id)
	})
	o.log.Info("building selected",
		zap.String("id", id),
		zap.Bool("mesh", target != nil),
		zap.Duration("move", d))
}

// Dismiss hides the panel and clears the highlight. A scheduled panel
// that has not appeared yet is dropped.
func (o *Orchestrator) Dismiss() {
	o.showPanel.Stop()
	o.panel.Hide()
	o.highlight.Clear()
	o.selected = ""
}

// HandlePointer feeds a pointer event to the click detector. A click on
// the scene background dismisses the current selection.
func (o *Orchestrator) HandlePointer(ev scene.PointerEvent) {
	if !o.click.Feed(ev) || ev.OverControl {
		return
	}
	if o.selected == "" && !o.panel.Live() {
		return
	}
	o.log.Debug("background click")
	o.Dismiss()
}

func (o *Orchestrator) focus(target scene.FocusTarget) time.Duration {
	pose := o.ctx.Camera.Pose()
	f := o.frame.Compute(target, pose.Rotation.Y)
	o.animate(pose, f.Position, f.Rotation, o.settings.FocusDuration, nil)
	return o.settings.FocusDuration
}

func (o *Orchestrator) jump(b catalog.Building) time.Duration {
	pose := o.ctx.Camera.Pose()
	rot := pose.Rotation
	if b.ViewRotation != nil {
		rot = *b.ViewRotation
	}
	yaw := rot.Y
	o.animate(pose, *b.CameraPoint, rot, o.settings.JumpDuration, func(from float64) float64 {
		return math.NormalizeYawRad(from, yaw)
	})
	return o.settings.JumpDuration
}

func (o *Orchestrator) animate(pose *scene.Pose, pos, rot math.Vec3, d time.Duration, resolveYaw func(float64) float64) {
	ease := o.settings.Ease
	props := []anim.Property{
		{Value: &pose.Position.X, To: pos.X, Duration: d, Ease: ease},
		{Value: &pose.Position.Y, To: pos.Y, Duration: d, Ease: ease},
		{Value: &pose.Position.Z, To: pos.Z, Duration: d, Ease: ease},
		{Value: &pose.Rotation.X, To: rot.X, Duration: d, Ease: ease},
		{Value: &pose.Rotation.Y, To: rot.Y, Duration: d, Ease: ease, Resolve: resolveYaw},
		{Value: &pose.Rotation.Z, To: rot.Z, Duration: d, Ease: ease},
	}
	o.move = o.ctx.Player.Animate(props, nil)
}

func (o *Orchestrator) close() {
	o.showPanel.Stop()
	for _, unsub := range o.unsubscribe {
		unsub()
	}
	o.unsubscribe = nil
}
