// Package highlight keeps at most one scene object highlighted.
package highlight

import (
	"go.uber.org/zap"

	"github.com/Faultbox/depot-nav/internal/scene"
)

// Controller owns the highlight state.
type Controller struct {
	layer   scene.HighlightLayer
	color   scene.Color
	current scene.FocusTarget
	log     *zap.Logger
}

// New creates a controller that paints highlights in color.
func New(layer scene.HighlightLayer, color scene.Color, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{layer: layer, color: color, log: log}
}

// Set highlights target, removing any previous highlight first.
// A nil target clears. Setting the current target again is a no-op.
func (c *Controller) Set(target scene.FocusTarget) {
	if target != nil && c.current != nil && target.Name() == c.current.Name() {
		return
	}
	if c.current != nil {
		c.layer.Remove(c.current)
		c.log.Debug("highlight removed", zap.String("mesh", c.current.Name()))
		c.current = nil
	}
	if target == nil {
		return
	}
	c.layer.Add(target, c.color)
	c.current = target
	c.log.Debug("highlight applied", zap.String("mesh", target.Name()))
}

// Clear removes the current highlight.
func (c *Controller) Clear() {
	c.Set(nil)
}

// Current returns the highlighted object, or nil.
func (c *Controller) Current() scene.FocusTarget {
	return c.current
}
