// Package nav wires the navigation core together: the shared context every
// component receives, pointer gesture handling and the selection
// orchestrator.
package nav

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/depot-nav/internal/anim"
	"github.com/Faultbox/depot-nav/internal/events"
	"github.com/Faultbox/depot-nav/internal/scene"
)

// Context holds the handles shared by every navigation component. It is
// created with the scene and closed with it.
type Context struct {
	Camera     scene.Camera
	Scene      scene.Scene
	Highlights scene.HighlightLayer
	Player     *anim.Player
	Scheduler  *anim.Scheduler
	Bus        *events.Bus
	Log        *zap.Logger

	frameHooks []func(time.Duration)
	closers    []func()
	closed     bool
}

// NewContext resolves the named camera and builds a fresh player,
// scheduler and bus.
func NewContext(sc scene.Scene, highlights scene.HighlightLayer, cameraName string, log *zap.Logger) (*Context, error) {
	if log == nil {
		log = zap.NewNop()
	}
	cam, err := sc.Camera(cameraName)
	if err != nil {
		return nil, fmt.Errorf("nav: resolve camera: %w", err)
	}
	return &Context{
		Camera:     cam,
		Scene:      sc,
		Highlights: highlights,
		Player:     anim.NewPlayer(log.Named("anim")),
		Scheduler:  anim.NewScheduler(),
		Bus:        events.NewBus(),
		Log:        log,
	}, nil
}

// OnFrame registers fn to run on every Update after tweens and timers.
func (c *Context) OnFrame(fn func(time.Duration)) {
	c.frameHooks = append(c.frameHooks, fn)
}

// OnClose registers fn to run on Close. Closers run in reverse order.
func (c *Context) OnClose(fn func()) {
	c.closers = append(c.closers, fn)
}

// Update advances one frame: tweens, then timers, then frame hooks.
func (c *Context) Update(dt time.Duration) {
	if c.closed {
		return
	}
	c.Player.Update(dt)
	c.Scheduler.Update(dt)
	for _, fn := range c.frameHooks {
		fn(dt)
	}
}

// Close tears components down in reverse registration order, then stops
// every transition and timer. It is safe to call twice.
func (c *Context) Close() {
	if c.closed {
		return
	}
	c.closed = true
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
	c.frameHooks = nil
	c.Player.CancelAll()
	c.Scheduler.StopAll()
}
