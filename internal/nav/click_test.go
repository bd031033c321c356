package nav

import (
	"testing"

	"github.com/Faultbox/depot-nav/internal/scene"
)

func TestClickDetector(t *testing.T) {
	down := func(x, y float64) scene.PointerEvent {
		return scene.PointerEvent{Kind: scene.PointerDown, X: x, Y: y}
	}
	move := func(x, y float64) scene.PointerEvent {
		return scene.PointerEvent{Kind: scene.PointerMove, X: x, Y: y}
	}
	up := func(x, y float64) scene.PointerEvent {
		return scene.PointerEvent{Kind: scene.PointerUp, X: x, Y: y}
	}

	tests := []struct {
		name   string
		events []scene.PointerEvent
		want   bool
	}{
		{"in place", []scene.PointerEvent{down(100, 100), up(100, 100)}, true},
		{"within threshold", []scene.PointerEvent{down(100, 100), up(105, 95)}, true},
		{"jitter", []scene.PointerEvent{down(100, 100), move(103, 101), up(101, 100)}, true},
		{"beyond threshold", []scene.PointerEvent{down(100, 100), up(106, 100)}, false},
		{"drag and return", []scene.PointerEvent{down(100, 100), move(120, 100), up(100, 100)}, false},
		{"up without down", []scene.PointerEvent{up(100, 100)}, false},
		{"other button", []scene.PointerEvent{
			{Kind: scene.PointerDown, X: 1, Y: 1, Button: 1},
			{Kind: scene.PointerUp, X: 1, Y: 1, Button: 1},
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &ClickDetector{Threshold: 5}
			got := false
			for _, ev := range tt.events {
				got = d.Feed(ev)
			}
			if got != tt.want {
				t.Errorf("Feed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClickDetectorReset(t *testing.T) {
	d := &ClickDetector{Threshold: 5}
	d.Feed(scene.PointerEvent{Kind: scene.PointerDown, X: 1, Y: 1})
	d.Reset()
	if d.Feed(scene.PointerEvent{Kind: scene.PointerUp, X: 1, Y: 1}) {
		t.Error("expected no click after Reset")
	}
}
