package nav

import (
	"github.com/Faultbox/depot-nav/internal/highlight"
	"github.com/Faultbox/depot-nav/internal/panel"
	"github.com/Faultbox/depot-nav/internal/scene"
)

// NewHighlight creates the highlight controller for ctx. The highlight is
// cleared on Close.
func NewHighlight(ctx *Context, color scene.Color) *highlight.Controller {
	hl := highlight.New(ctx.Highlights, color, ctx.Log.Named("highlight"))
	ctx.OnClose(hl.Clear)
	return hl
}

// NewPanel creates the info panel controller for ctx: it fades on every
// frame, listens for ShowPanel and HidePanel, and is disposed on Close.
func NewPanel(ctx *Context, factory scene.PanelFactory, source panel.Source, settings panel.Settings) *panel.Controller {
	pc := panel.New(factory, ctx.Scheduler, source, settings, ctx.Log.Named("panel"))
	pc.Attach(ctx.Bus)
	ctx.OnFrame(pc.Update)
	ctx.OnClose(pc.Close)
	return pc
}
