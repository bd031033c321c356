package viewer

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/depot-nav/internal/events"
	"github.com/Faultbox/depot-nav/internal/scene"
)

// Script schedules the demo session on the frame clock. With autoplay the
// tour starts straight away; otherwise the session clicks an icon, selects
// a second building, dismisses with a background click, captures the view
// and then tours the depot, returning to the capture at the end.
func (v *Viewer) Script() {
	v.tour.PlaceDefault()
	if v.cfg.Tour.AutoPlay {
		v.tour.Play(v.cfg.Tour.Loop)
		return
	}

	buildings := v.catalog.Buildings()
	if len(buildings) == 0 {
		v.log.Warn("catalog has no buildings, nothing to script")
		return
	}
	first, second := buildings[0].ID, buildings[len(buildings)/2].ID
	at := v.nav.Scheduler.After

	at(time.Second, func() { v.clickIcon(first) })
	at(4*time.Second, func() { events.Publish(v.nav.Bus, events.Select{ID: second}) })
	at(7*time.Second, func() {
		v.clickBackground()
		vp := v.session.Capture(v.Pose(), 3)
		v.log.Info("view captured", zap.String("id", vp.ID))
	})
	at(8*time.Second, func() {
		events.Publish(v.nav.Bus, events.ToggleIcons{Visible: false})
		v.tour.OnComplete(func(id string) {
			v.tour.OnComplete(nil)
			events.Publish(v.nav.Bus, events.ToggleIcons{Visible: true})
			v.tour.PlaySequence(v.session.All(), false)
		})
		v.tour.Play(v.cfg.Tour.Loop)
	})
}

func (v *Viewer) clickIcon(id string) {
	for _, ic := range v.world.LiveIcons() {
		if ic.Spec.Name == "icon_"+id {
			ic.Click()
			return
		}
	}
	v.log.Warn("no icon to click", zap.String("id", id))
}

func (v *Viewer) clickBackground() {
	v.orch.HandlePointer(scene.PointerEvent{Kind: scene.PointerDown, X: 400, Y: 300})
	v.orch.HandlePointer(scene.PointerEvent{Kind: scene.PointerUp, X: 401, Y: 302})
}
