// Package tour plays scripted camera tours over catalog viewpoints.
package tour

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/depot-nav/internal/anim"
	"github.com/Faultbox/depot-nav/internal/catalog"
	"github.com/Faultbox/depot-nav/internal/config"
	"github.com/Faultbox/depot-nav/internal/events"
	"github.com/Faultbox/depot-nav/internal/nav"
	"github.com/Faultbox/depot-nav/pkg/math"
)

// Settings controls tour playback.
type Settings struct {
	Sequence []string
	// Overlap is the fraction of each leg started before the previous
	// leg ends.
	Overlap     float64
	DefaultView string
	Ease        math.Ease
}

// SettingsFromConfig converts the tour config section.
func SettingsFromConfig(cfg config.TourConfig) Settings {
	return Settings{
		Sequence:    append([]string(nil), cfg.Sequence...),
		Overlap:     cfg.Overlap,
		DefaultView: cfg.DefaultView,
		Ease:        math.EaseByName(cfg.Ease),
	}
}

// Viewpoints resolves viewpoint ids. *catalog.Catalog implements it.
type Viewpoints interface {
	Viewpoint(id string) (catalog.Viewpoint, error)
}

// Player moves the camera through viewpoints. At most one tour or jump
// runs at a time.
type Player struct {
	ctx      *nav.Context
	views    Viewpoints
	settings Settings
	log      *zap.Logger

	handle     *anim.Handle
	onComplete func(viewpointID string)
}

// New creates a tour player and registers Stop with ctx's teardown.
func New(ctx *nav.Context, views Viewpoints, settings Settings) *Player {
	p := &Player{
		ctx:      ctx,
		views:    views,
		settings: settings,
		log:      ctx.Log.Named("tour"),
	}
	ctx.OnClose(p.Stop)
	return p
}

// OnComplete sets the callback fired when a non-looping tour or a jump
// reaches its last viewpoint. It is not called for stopped tours.
func (p *Player) OnComplete(fn func(viewpointID string)) {
	p.onComplete = fn
}

// IsPlaying reports whether a tour or jump is moving the camera.
func (p *Player) IsPlaying() bool {
	return p.handle.Active()
}

// Play runs the configured sequence. Unknown ids are skipped.
func (p *Player) Play(loop bool) {
	vps := make([]catalog.Viewpoint, 0, len(p.settings.Sequence))
	for _, id := range p.settings.Sequence {
		vp, err := p.views.Viewpoint(id)
		if err != nil {
			p.log.Warn("skipping tour stop", zap.String("id", id), zap.Error(err))
			continue
		}
		vps = append(vps, vp)
	}
	p.PlaySequence(vps, loop)
}

// PlaySequence runs vps in order, each leg overlapping the previous one.
// A single viewpoint is a jump.
func (p *Player) PlaySequence(vps []catalog.Viewpoint, loop bool) {
	p.Stop()

	switch len(vps) {
	case 0:
		p.log.Debug("empty tour")
		return
	case 1:
		p.jump(vps[0])
		return
	}

	tl := anim.NewTimeline(loop)
	for i, vp := range vps {
		offset := time.Duration(0)
		if i > 0 {
			offset = -time.Duration(p.settings.Overlap * float64(vp.TravelTime()))
		}
		tl.Append(offset, p.legTo(vp)...)
	}

	last := vps[len(vps)-1].ID
	p.handle = p.ctx.Player.Play(tl, func() { p.finish(last) })
	p.log.Info("tour started",
		zap.Int("stops", len(vps)),
		zap.Bool("loop", loop),
		zap.Duration("length", tl.Duration()))
}

// Stop cancels the running tour or jump, including legs not yet started.
func (p *Player) Stop() {
	if !p.handle.Active() {
		return
	}
	p.handle.Cancel()
	p.handle = nil
	p.log.Debug("tour stopped")
}

// JumpTo stops any tour and moves to the viewpoint id. It reports whether
// the viewpoint exists.
func (p *Player) JumpTo(id string) bool {
	vp, err := p.views.Viewpoint(id)
	if err != nil {
		p.log.Debug("jump: unknown viewpoint", zap.String("id", id))
		return false
	}
	p.Stop()
	p.jump(vp)
	return true
}

// Place stops any tour and sets the camera to viewpoint id immediately.
func (p *Player) Place(id string) bool {
	vp, err := p.views.Viewpoint(id)
	if err != nil {
		p.log.Debug("place: unknown viewpoint", zap.String("id", id))
		return false
	}
	p.Stop()
	pose := p.ctx.Camera.Pose()
	pose.Position = vp.Position
	pose.Rotation = vp.Rotation
	return true
}

// PlaceDefault places the camera at the configured default view.
func (p *Player) PlaceDefault() bool {
	return p.Place(p.settings.DefaultView)
}

func (p *Player) jump(vp catalog.Viewpoint) {
	p.handle = p.ctx.Player.Animate(p.legTo(vp), func() { p.finish(vp.ID) })
	p.log.Debug("jumping", zap.String("id", vp.ID), zap.Duration("duration", vp.TravelTime()))
}

// legTo tweens the camera pose to vp. The yaw target is unwound against
// the camera's yaw when the leg begins.
func (p *Player) legTo(vp catalog.Viewpoint) []anim.Property {
	pose := p.ctx.Camera.Pose()
	d := vp.TravelTime()
	ease := p.settings.Ease
	yaw := vp.Rotation.Y
	return []anim.Property{
		{Value: &pose.Position.X, To: vp.Position.X, Duration: d, Ease: ease},
		{Value: &pose.Position.Y, To: vp.Position.Y, Duration: d, Ease: ease},
		{Value: &pose.Position.Z, To: vp.Position.Z, Duration: d, Ease: ease},
		{Value: &pose.Rotation.X, To: vp.Rotation.X, Duration: d, Ease: ease},
		{Value: &pose.Rotation.Y, Duration: d, Ease: ease, Resolve: func(from float64) float64 {
			return math.NormalizeYawRad(from, yaw)
		}},
		{Value: &pose.Rotation.Z, To: vp.Rotation.Z, Duration: d, Ease: ease},
	}
}

func (p *Player) finish(id string) {
	p.handle = nil
	p.log.Info("tour finished", zap.String("id", id))
	events.Publish(p.ctx.Bus, events.TourFinished{ViewpointID: id})
	if p.onComplete != nil {
		p.onComplete(id)
	}
}
