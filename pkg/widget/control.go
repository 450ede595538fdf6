// ABOUTME: Control base shared by every widget: event surface plus enabled/readonly properties
// ABOUTME: Focus and Blur are not available on overlay widgets and report ErrNotImplemented

package widget

import (
	"errors"

	"github.com/mauromedda/tui-overlay/internal/log"
	"github.com/mauromedda/tui-overlay/pkg/event"
)

// ErrNotImplemented is returned by capabilities a widget does not support.
var ErrNotImplemented = errors.New("widget: not implemented")

// Control events.
const (
	EventEnabledChanged  event.Name = "enabledChanged"
	EventReadonlyChanged event.Name = "readonlyChanged"
)

// EventSource is the subscription surface of a widget.
type EventSource interface {
	On(name event.Name, h event.Handler) *event.Subscription
	Off(name event.Name, sub *event.Subscription)
}

// Showable is implemented by widgets with a show/hide lifecycle.
type Showable interface {
	Show() bool
	Hide() bool
	IsShown() bool
}

// Control carries the emitter and the properties common to all widgets.
type Control struct {
	em       *event.Emitter
	enabled  bool
	readonly bool
	logger   *log.Logger
}

func newControl(component string) *Control {
	return &Control{
		em:      event.New(nil),
		enabled: true,
		logger:  log.With(component),
	}
}

// On registers h for events called name.
func (c *Control) On(name event.Name, h event.Handler) *event.Subscription {
	return c.em.On(name, h)
}

// Off removes a registration made with On.
func (c *Control) Off(name event.Name, sub *event.Subscription) {
	c.em.Off(name, sub)
}

// Enabled reports whether the widget reacts to pointer input.
func (c *Control) Enabled() bool { return c.enabled }

// SetEnabled changes the enabled flag, emitting enabledChanged.
func (c *Control) SetEnabled(v bool) {
	if c.enabled == v {
		return
	}
	prev := c.enabled
	c.enabled = v
	c.emit(EventEnabledChanged, event.Changed(prev, v))
}

// Readonly reports whether the widget refuses user edits.
func (c *Control) Readonly() bool { return c.readonly }

// SetReadonly changes the readonly flag, emitting readonlyChanged.
func (c *Control) SetReadonly(v bool) {
	if c.readonly == v {
		return
	}
	prev := c.readonly
	c.readonly = v
	c.emit(EventReadonlyChanged, event.Changed(prev, v))
}

// Focus is not supported by overlay widgets.
func (c *Control) Focus() error { return ErrNotImplemented }

// Blur is not supported by overlay widgets.
func (c *Control) Blur() error { return ErrNotImplemented }

func (c *Control) emit(name event.Name, payload any) {
	if err := c.em.Emit(name, payload); err != nil {
		c.logger.Warn("%s listener failed: %v", name, err)
	}
}

func (c *Control) emitCancellable(name event.Name, payload any) bool {
	cancelled, err := c.em.EmitCancellable(name, payload)
	if err != nil {
		c.logger.Warn("%s listener failed: %v", name, err)
	}
	return cancelled
}
