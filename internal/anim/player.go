package anim

import (
	"time"

	"go.uber.org/zap"
)

// HandleState is the lifecycle of a Handle.
type HandleState int

const (
	Running   HandleState = iota // Still advancing
	Completed                    // Reached its end; onComplete was called
	Cancelled                    // Stopped early; onComplete is never called
)

func (s HandleState) String() string {
	switch s {
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Handle is one in-flight transition: a tween group or a timeline.
type Handle struct {
	id         uint64
	player     *Player
	run        runner
	onComplete func()
	state      HandleState
}

// ID returns the handle's sequence number.
func (h *Handle) ID() uint64 { return h.id }

// State returns the current lifecycle state.
func (h *Handle) State() HandleState { return h.state }

// Active reports whether the handle is still running.
func (h *Handle) Active() bool { return h != nil && h.state == Running }

// Cancel stops the transition where it is. Cancelling a finished handle
// does nothing.
func (h *Handle) Cancel() {
	if h == nil {
		return
	}
	h.player.Cancel(h)
}

// Player runs transitions and enforces a single writer per field: starting
// a transition that touches a field owned by a running handle cancels that
// handle first.
type Player struct {
	log     *zap.Logger
	handles []*Handle
	owners  map[*float64]*Handle
	nextID  uint64
}

// NewPlayer creates a player.
func NewPlayer(log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	return &Player{
		log:    log,
		owners: make(map[*float64]*Handle),
	}
}

// Animate tweens every property concurrently. onComplete fires once, after
// the longest tween ends, unless the handle is cancelled first.
// Zero-duration properties land on the next Update.
func (p *Player) Animate(props []Property, onComplete func()) *Handle {
	return p.start(newGroup(props), onComplete)
}

// Play runs a timeline. For a repeating timeline onComplete never fires.
func (p *Player) Play(tl *Timeline, onComplete func()) *Handle {
	return p.start(tl, onComplete)
}

func (p *Player) start(run runner, onComplete func()) *Handle {
	p.nextID++
	h := &Handle{
		id:         p.nextID,
		player:     p,
		run:        run,
		onComplete: onComplete,
		state:      Running,
	}
	for _, f := range run.fields() {
		if prev, ok := p.owners[f]; ok && prev.state == Running {
			p.log.Debug("replacing transition on shared field",
				zap.Uint64("previous", prev.id),
				zap.Uint64("handle", h.id))
			p.Cancel(prev)
		}
	}
	for _, f := range run.fields() {
		p.owners[f] = h
	}
	p.handles = append(p.handles, h)
	return h
}

// Cancel stops h immediately. Fields keep their last interpolated values
// and onComplete is never called.
func (p *Player) Cancel(h *Handle) {
	if h == nil || h.state != Running {
		if h != nil {
			p.log.Debug("ignoring cancel of finished transition",
				zap.Uint64("handle", h.id),
				zap.Stringer("state", h.state))
		}
		return
	}
	h.state = Cancelled
	p.release(h)
}

// CancelAll stops every running transition.
func (p *Player) CancelAll() {
	for _, h := range append([]*Handle(nil), p.handles...) {
		p.Cancel(h)
	}
}

// Active returns the number of running transitions.
func (p *Player) Active() int {
	return len(p.handles)
}

// Owner returns the running handle that writes field, if any.
func (p *Player) Owner(field *float64) (*Handle, bool) {
	h, ok := p.owners[field]
	return h, ok
}

// Update advances every running transition by dt. Completion callbacks run
// after their handle is released, so they may start new transitions on the
// same fields; those begin on the next Update.
func (p *Player) Update(dt time.Duration) {
	active := append([]*Handle(nil), p.handles...)
	for _, h := range active {
		if h.state != Running {
			continue
		}
		if !h.run.advance(dt) {
			continue
		}
		h.state = Completed
		p.release(h)
		if h.onComplete != nil {
			h.onComplete()
		}
	}
}

func (p *Player) release(h *Handle) {
	for _, f := range h.run.fields() {
		if p.owners[f] == h {
			delete(p.owners, f)
		}
	}
	for i, other := range p.handles {
		if other == h {
			p.handles = append(p.handles[:i], p.handles[i+1:]...)
			break
		}
	}
}
