// ABOUTME: Dispatcher fans host input out to subscribers and implements Notifier
// ABOUTME: Shared by the virtual and Bubble Tea hosts; listener counts back leak checks

package host

import "github.com/mauromedda/tui-overlay/pkg/event"

const (
	evScroll      event.Name = "scroll"
	evResize      event.Name = "resize"
	evPointerDown event.Name = "pointerDown"
	evPointerMove event.Name = "pointerMove"
	evPointerUp   event.Name = "pointerUp"
)

// Dispatcher implements Notifier on top of an emitter.
type Dispatcher struct {
	em *event.Emitter
}

// NewDispatcher creates a dispatcher whose events report src as their source.
func NewDispatcher(src any) *Dispatcher {
	return &Dispatcher{em: event.New(src)}
}

func (d *Dispatcher) OnScroll(fn func()) *event.Subscription {
	return d.em.On(evScroll, event.Notify(func(event.Event) { fn() }))
}

func (d *Dispatcher) OnResize(fn func()) *event.Subscription {
	return d.em.On(evResize, event.Notify(func(event.Event) { fn() }))
}

func (d *Dispatcher) OnPointerDown(fn func(Pointer)) *event.Subscription {
	return d.onPointer(evPointerDown, fn)
}

func (d *Dispatcher) OnPointerMove(fn func(Pointer)) *event.Subscription {
	return d.onPointer(evPointerMove, fn)
}

func (d *Dispatcher) OnPointerUp(fn func(Pointer)) *event.Subscription {
	return d.onPointer(evPointerUp, fn)
}

func (d *Dispatcher) onPointer(name event.Name, fn func(Pointer)) *event.Subscription {
	return d.em.On(name, event.Notify(func(e event.Event) {
		p, _ := e.Payload.(Pointer)
		fn(p)
	}))
}

// Scrolled notifies scroll listeners.
func (d *Dispatcher) Scrolled() error { return d.em.Emit(evScroll, nil) }

// Resized notifies resize listeners.
func (d *Dispatcher) Resized() error { return d.em.Emit(evResize, nil) }

// PointerDown notifies pointer-down listeners.
func (d *Dispatcher) PointerDown(p Pointer) error { return d.em.Emit(evPointerDown, p) }

// PointerMove notifies pointer-move listeners.
func (d *Dispatcher) PointerMove(p Pointer) error { return d.em.Emit(evPointerMove, p) }

// PointerUp notifies pointer-up listeners.
func (d *Dispatcher) PointerUp(p Pointer) error { return d.em.Emit(evPointerUp, p) }

// Listeners returns the number of live subscriptions per input kind.
func (d *Dispatcher) Listeners() map[string]int {
	out := make(map[string]int, 5)
	for _, n := range []event.Name{evScroll, evResize, evPointerDown, evPointerMove, evPointerUp} {
		out[string(n)] = d.em.Count(n)
	}
	return out
}

// ListenerCount returns the total number of live subscriptions.
func (d *Dispatcher) ListenerCount() int {
	total := 0
	for _, n := range d.Listeners() {
		total += n
	}
	return total
}
