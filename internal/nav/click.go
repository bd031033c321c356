package nav

import (
	"github.com/Faultbox/depot-nav/internal/scene"
	"github.com/Faultbox/depot-nav/pkg/math"
)

// ClickDetector tells clicks from drags. A press becomes a click when it
// is released within Threshold pixels of where it went down; moving
// further cancels it.
type ClickDetector struct {
	Threshold float64
	// Button is the pointer button that counts, 0 for the primary.
	Button int

	down    math.Vec2
	pressed bool
}

// Feed consumes one pointer event and reports whether it completed a click.
func (d *ClickDetector) Feed(ev scene.PointerEvent) bool {
	if ev.Button != d.Button {
		return false
	}
	pos := math.Vec2{X: ev.X, Y: ev.Y}

	switch ev.Kind {
	case scene.PointerDown:
		d.down = pos
		d.pressed = true
	case scene.PointerMove:
		if d.pressed && !pos.Within(d.down, d.Threshold) {
			d.pressed = false
		}
	case scene.PointerUp:
		click := d.pressed && pos.Within(d.down, d.Threshold)
		d.pressed = false
		return click
	}
	return false
}

// Reset forgets any press in progress.
func (d *ClickDetector) Reset() {
	d.pressed = false
}
