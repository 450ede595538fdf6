// ABOUTME: Drag controller tracking one pointer gesture from press to release
// ABOUTME: Emits cancellable dragStart, then dragging per move and dragEnd on release

package drag

import (
	"github.com/mauromedda/tui-overlay/internal/log"
	"github.com/mauromedda/tui-overlay/pkg/event"
	"github.com/mauromedda/tui-overlay/pkg/geom"
	"github.com/mauromedda/tui-overlay/pkg/host"
)

// Event names emitted by the controller.
const (
	EventDragStart event.Name = "dragStart"
	EventDragging  event.Name = "dragging"
	EventDragEnd   event.Name = "dragEnd"
)

// Session is the baseline captured when a gesture begins.
type Session struct {
	StartX int
	StartY int
	Start  geom.Rect
	Mode   Mode
}

// Payload accompanies every drag event. Rect is the baseline for dragStart
// and the latest rectangle afterwards.
type Payload struct {
	Mode Mode
	Rect geom.Rect
}

// Option configures a Controller.
type Option func(*Controller)

// WithSizePolicy sets the minimum size enforced during resizes.
func WithSizePolicy(p SizePolicy) Option {
	return func(c *Controller) { c.policy = p }
}

// Controller is Idle until Begin succeeds, then Dragging until pointer-up
// or Cancel.
type Controller struct {
	env    host.Notifier
	em     *event.Emitter
	policy SizePolicy

	session *Session
	last    geom.Rect
	moveSub *event.Subscription
	upSub   *event.Subscription

	// starting is set while dragStart listeners run; gen moves on Cancel.
	starting bool
	gen      uint64

	logger *log.Logger
}

// New creates an idle controller that listens on env and emits on em.
func New(env host.Notifier, em *event.Emitter, opts ...Option) *Controller {
	c := &Controller{env: env, em: em, logger: log.With("drag")}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetSizePolicy replaces the minimum size for later moves.
func (c *Controller) SetSizePolicy(p SizePolicy) { c.policy = p }

// SizePolicy returns the active minimum size.
func (c *Controller) SizePolicy() SizePolicy { return c.policy }

// Dragging reports whether a gesture is in progress.
func (c *Controller) Dragging() bool { return c.session != nil }

// Session returns the active session.
func (c *Controller) Session() (Session, bool) {
	if c.session == nil {
		return Session{}, false
	}
	return *c.session, true
}

// Begin starts a gesture at (x, y) over current. It returns false while
// another gesture is active or when a dragStart listener cancels. A Begin
// or Cancel issued from a dragStart listener also rejects the outer Begin.
func (c *Controller) Begin(x, y int, current geom.Rect, mode Mode) bool {
	if c.session != nil || c.starting {
		return false
	}
	gen := c.gen
	c.starting = true
	cancelled, err := c.em.EmitCancellable(EventDragStart, Payload{Mode: mode, Rect: current})
	c.starting = false
	if err != nil {
		c.logger.Warn("dragStart listener failed: %v", err)
	}
	if cancelled || c.session != nil || c.gen != gen {
		return false
	}

	c.session = &Session{StartX: x, StartY: y, Start: current, Mode: mode}
	c.last = current
	c.moveSub = c.env.OnPointerMove(c.onMove)
	c.upSub = c.env.OnPointerUp(c.onUp)
	return true
}

// Cancel ends the gesture without applying further geometry or emitting
// dragEnd.
func (c *Controller) Cancel() {
	c.gen++
	c.release()
}

func (c *Controller) onMove(p host.Pointer) {
	s := c.session
	if s == nil {
		return
	}
	r := s.Mode.Apply(p.X-s.StartX, p.Y-s.StartY, s.Start)
	r = c.policy.Clamp(s.Mode, s.Start, r)
	c.last = r
	if err := c.em.Emit(EventDragging, Payload{Mode: s.Mode, Rect: r}); err != nil {
		c.logger.Warn("dragging listener failed: %v", err)
	}
}

func (c *Controller) onUp(host.Pointer) {
	s := c.session
	if s == nil {
		return
	}
	c.release()
	if err := c.em.Emit(EventDragEnd, Payload{Mode: s.Mode, Rect: c.last}); err != nil {
		c.logger.Warn("dragEnd listener failed: %v", err)
	}
}

func (c *Controller) release() {
	event.Release(c.moveSub, c.upSub)
	c.moveSub, c.upSub = nil, nil
	c.session = nil
}
