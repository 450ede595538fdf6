// ABOUTME: Cancellable show/hide state machine shared by every overlay widget
// ABOUTME: Runs init/apply/remove hooks around showing/shown/hiding/hidden events, with optional delayed hide

package lifecycle

import (
	"fmt"
	"time"

	"github.com/mauromedda/tui-overlay/internal/log"
	"github.com/mauromedda/tui-overlay/pkg/event"
)

// Event names emitted by the controller.
const (
	EventShowing event.Name = "showing"
	EventShown   event.Name = "shown"
	EventHiding  event.Name = "hiding"
	EventHidden  event.Name = "hidden"
)

// Hooks are the widget-specific steps of a transition. Any may be nil.
type Hooks struct {
	// Init runs once, on the first successful show. An error aborts the show.
	Init func() error
	// Apply makes the overlay visible and positions it.
	Apply func()
	// Remove takes the overlay off screen.
	Remove func()
}

// Scheduler runs fn once after d. The returned func cancels a pending run.
type Scheduler interface {
	After(d time.Duration, fn func()) (cancel func())
}

// Option configures a Controller.
type Option func(*Controller)

// WithScheduler sets the scheduler used for delayed hides.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) { c.sched = s }
}

// WithHideDelay makes RequestHide defer the removal by d.
// It has no effect without a scheduler.
func WithHideDelay(d time.Duration) Option {
	return func(c *Controller) { c.hideDelay = d }
}

// Controller owns the visibility state of one widget. It is not safe for
// concurrent use; hosts deliver every input on a single goroutine.
type Controller struct {
	em          *event.Emitter
	hooks       Hooks
	state       State
	initialized bool

	sched      Scheduler
	hideDelay  time.Duration
	cancelHide func()
	hideGen    uint64

	// asking is set while a showing or hiding listener runs; epoch moves on
	// every ForceHide and Reset so an in-flight request can tell it lost.
	asking bool
	epoch  uint64

	logger *log.Logger
}

// New creates a hidden, uninitialized controller that emits on em.
func New(em *event.Emitter, hooks Hooks, opts ...Option) *Controller {
	c := &Controller{
		em:     em,
		hooks:  hooks,
		state:  StateHidden,
		logger: log.With("lifecycle"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current state. A widget whose hide is pending still
// reports StateShown.
func (c *Controller) State() State { return c.state }

// IsShown reports whether the widget is on screen.
func (c *Controller) IsShown() bool { return c.state == StateShown }

// Initialized reports whether the Init hook has succeeded.
func (c *Controller) Initialized() bool { return c.initialized }

// HidePending reports whether a delayed hide is scheduled.
func (c *Controller) HidePending() bool { return c.cancelHide != nil }

// HideDelay returns the delay applied by RequestHide.
func (c *Controller) HideDelay() time.Duration { return c.hideDelay }

// SetHideDelay changes the delay for future hides. A pending hide keeps
// its original deadline.
func (c *Controller) SetHideDelay(d time.Duration) { c.hideDelay = d }

// Initialize runs the Init hook once. It returns false when the controller
// was already initialized or the hook failed.
func (c *Controller) Initialize() (bool, error) {
	if c.initialized {
		return false, nil
	}
	if c.hooks.Init != nil {
		if err := c.hooks.Init(); err != nil {
			return false, fmt.Errorf("initialize: %w", err)
		}
	}
	c.initialized = true
	return true, nil
}

// RequestShow shows the widget. It returns false when the widget is not
// hidden, a showing listener cancelled, or initialization failed.
// During a delayed hide it cancels the hide and re-applies instead.
// Requests made from a showing or hiding listener are refused.
func (c *Controller) RequestShow() bool {
	if c.asking {
		return false
	}
	if c.cancelHide != nil {
		c.stopPendingHide()
		c.apply()
		return true
	}
	if c.state != StateHidden {
		return false
	}
	epoch := c.epoch
	if c.emitCancellable(EventShowing) {
		return false
	}
	if c.state != StateHidden || c.epoch != epoch {
		return false
	}

	c.moveTo(StateShowing)
	if _, err := c.Initialize(); err != nil {
		c.logger.Error("show aborted: %v", err)
		c.moveTo(StateHidden)
		return false
	}
	c.apply()
	c.moveTo(StateShown)
	c.emit(EventShown)
	return true
}

// RequestHide hides the widget. It returns false when the widget is not
// shown, a hide is already pending, or a hiding listener cancelled.
func (c *Controller) RequestHide() bool {
	if c.asking || c.state != StateShown || c.cancelHide != nil {
		return false
	}
	epoch := c.epoch
	if c.emitCancellable(EventHiding) {
		return false
	}
	if c.state != StateShown || c.cancelHide != nil || c.epoch != epoch {
		return false
	}

	if c.hideDelay > 0 && c.sched != nil {
		c.hideGen++
		gen := c.hideGen
		c.cancelHide = c.sched.After(c.hideDelay, func() {
			if gen != c.hideGen || c.cancelHide == nil {
				return
			}
			c.cancelHide = nil
			c.finishHide()
		})
		return true
	}
	c.finishHide()
	return true
}

// ForceHide hides without asking listeners. It cancels a pending delayed
// hide and reports whether the widget was shown.
func (c *Controller) ForceHide() bool {
	c.epoch++
	c.stopPendingHide()
	if c.state != StateShown {
		return false
	}
	c.finishHide()
	return true
}

// Reset forgets initialization so the next show runs Init again.
func (c *Controller) Reset() {
	c.epoch++
	c.initialized = false
}

func (c *Controller) finishHide() {
	c.moveTo(StateHiding)
	if c.hooks.Remove != nil {
		c.hooks.Remove()
	}
	c.moveTo(StateHidden)
	c.emit(EventHidden)
}

func (c *Controller) stopPendingHide() {
	if c.cancelHide == nil {
		return
	}
	c.cancelHide()
	c.cancelHide = nil
	c.hideGen++
}

func (c *Controller) apply() {
	if c.hooks.Apply != nil {
		c.hooks.Apply()
	}
}

func (c *Controller) moveTo(to State) {
	if !CanTransition(c.state, to) {
		c.logger.Error("%v", &TransitionError{From: c.state, To: to})
	}
	c.state = to
}

func (c *Controller) emit(name event.Name) {
	if err := c.em.Emit(name, nil); err != nil {
		c.logger.Warn("%s listener failed: %v", name, err)
	}
}

func (c *Controller) emitCancellable(name event.Name) bool {
	c.asking = true
	defer func() { c.asking = false }()
	cancelled, err := c.em.EmitCancellable(name, nil)
	if err != nil {
		c.logger.Warn("%s listener failed: %v", name, err)
	}
	return cancelled
}
