// Package anim drives numeric property tweens and delayed callbacks from
// the render loop's frame delta.
//
// Nothing here starts goroutines: Update is called once per frame on the
// render thread, and every callback runs inside that call.
package anim

import (
	"time"

	"github.com/Faultbox/depot-nav/pkg/math"
)

// Property is one numeric field driven by a tween.
type Property struct {
	Value    *float64
	To       float64
	Duration time.Duration
	Ease     math.Ease
	// Resolve, when set, computes the end value from the start value at the
	// moment the tween begins. It overrides To.
	Resolve func(from float64) float64
}

// tween interpolates a single property. The start value is captured lazily
// when the tween begins, not when it is created.
type tween struct {
	prop     Property
	from, to float64
	started  bool
	finished bool
}

func newTween(p Property) *tween {
	if p.Ease == nil {
		p.Ease = math.EaseLinear
	}
	return &tween{prop: p}
}

func (tw *tween) begin() {
	tw.from = *tw.prop.Value
	tw.to = tw.prop.To
	if tw.prop.Resolve != nil {
		tw.to = tw.prop.Resolve(tw.from)
	}
	tw.started = true
}

// seek writes the value at local time elapsed and reports whether the
// tween reached its end.
func (tw *tween) seek(elapsed time.Duration) bool {
	if !tw.started {
		tw.begin()
	}
	progress := 1.0
	if tw.prop.Duration > 0 {
		progress = math.Clamp(float64(elapsed)/float64(tw.prop.Duration), 0, 1)
	}
	tw.finished = progress >= 1
	if tw.finished {
		*tw.prop.Value = tw.to
		return true
	}
	*tw.prop.Value = math.Lerp(tw.from, tw.to, tw.prop.Ease(progress))
	return false
}

func (tw *tween) reset() {
	tw.started = false
	tw.finished = false
}

// runner is a unit of work owned by a Handle.
type runner interface {
	fields() []*float64
	// advance moves time forward by dt and reports completion.
	advance(dt time.Duration) bool
}

// group runs several tweens side by side and completes with the last one.
type group struct {
	tweens  []*tween
	elapsed time.Duration
}

func newGroup(props []Property) *group {
	g := &group{tweens: make([]*tween, 0, len(props))}
	for _, p := range props {
		if p.Value == nil {
			continue
		}
		g.tweens = append(g.tweens, newTween(p))
	}
	return g
}

func (g *group) fields() []*float64 {
	out := make([]*float64, len(g.tweens))
	for i, tw := range g.tweens {
		out[i] = tw.prop.Value
	}
	return out
}

func (g *group) advance(dt time.Duration) bool {
	g.elapsed += dt
	done := true
	for _, tw := range g.tweens {
		if tw.finished {
			continue
		}
		if !tw.seek(g.elapsed) {
			done = false
		}
	}
	return done
}
