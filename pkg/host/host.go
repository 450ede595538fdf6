// ABOUTME: Host environment contract consumed by widgets: elements, viewport, notifications, surface, timers
// ABOUTME: Implemented in memory by Virtual and for real terminals by the teahost package

package host

import (
	"time"

	"github.com/mauromedda/tui-overlay/pkg/event"
	"github.com/mauromedda/tui-overlay/pkg/geom"
)

// Element is an anchor in the visual tree.
type Element interface {
	// Bounds is the full bounding box in viewport coordinates.
	Bounds() geom.Rect
	// Visible reports whether the element is rendered at all.
	Visible() bool
	// ZIndex returns the explicit stacking index; false means auto.
	ZIndex() (int, bool)
	// Parent returns the containing element, or nil at the root.
	Parent() Element
}

// Viewporter exposes the current viewport. Callers read it fresh every time.
type Viewporter interface {
	Viewport() geom.Viewport
}

// Pointer is a pointer position in viewport cells.
type Pointer struct {
	X int
	Y int
}

// Notifier delivers host input events. Every subscription must be disposed
// by its owner.
type Notifier interface {
	OnScroll(fn func()) *event.Subscription
	OnResize(fn func()) *event.Subscription
	OnPointerDown(fn func(Pointer)) *event.Subscription
	OnPointerMove(fn func(Pointer)) *event.Subscription
	OnPointerUp(fn func(Pointer)) *event.Subscription
}

// Surface holds mounted overlay layers.
type Surface interface {
	Mount(l *Layer) error
	Unmount(l *Layer) error
	// LayerAt returns the topmost shown layer under a viewport cell.
	LayerAt(x, y int) *Layer
}

// Scheduler runs fn once after d on the host's input goroutine.
type Scheduler interface {
	After(d time.Duration, fn func()) (cancel func())
}

// Host is everything a widget needs from its environment.
type Host interface {
	Viewporter
	Notifier
	Surface
	Scheduler
}
