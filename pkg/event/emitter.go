// ABOUTME: Named-event emitter with disposable subscriptions and cancellable emits
// ABOUTME: Handlers run in registration order; a panicking handler never stops its siblings

package event

import (
	"errors"
	"sync"
)

// ErrAlreadyDisposed is returned when a subscription is disposed twice.
var ErrAlreadyDisposed = errors.New("event: subscription already disposed")

// Name identifies an event kind, e.g. "showing" or "dragEnd".
type Name string

// Event is delivered to every handler registered under Name.
type Event struct {
	Name    Name
	Source  any
	Payload any
}

// Handler receives an event. The return value is only consulted by
// EmitCancellable: returning true vetoes the pending transition.
type Handler func(e Event) (cancel bool)

// Notify adapts a handler that never cancels.
func Notify(fn func(e Event)) Handler {
	return func(e Event) bool {
		fn(e)
		return false
	}
}

type listener struct {
	fn      Handler
	removed bool
}

// Emitter delivers named events to registered handlers.
// Removed handlers are tombstoned and compacted on the next registration
// made outside of an emit, so in-flight emits keep stable ordering.
type Emitter struct {
	mu        sync.Mutex
	source    any
	listeners map[Name][]*listener
	emitting  int
}

// New creates an emitter whose events report src as their Source.
func New(src any) *Emitter {
	return &Emitter{
		source:    src,
		listeners: make(map[Name][]*listener),
	}
}

// SetSource replaces the Source stamped on emitted events. Widgets call it
// once their own value exists.
func (e *Emitter) SetSource(src any) {
	e.mu.Lock()
	e.source = src
	e.mu.Unlock()
}

// On registers fn under name and returns its subscription.
func (e *Emitter) On(name Name, fn Handler) *Subscription {
	l := &listener{fn: fn}

	e.mu.Lock()
	list := e.listeners[name]
	if e.emitting == 0 {
		list = compact(list)
	}
	e.listeners[name] = append(list, l)
	e.mu.Unlock()

	return &Subscription{emitter: e, name: name, l: l}
}

// Off removes the registration held by sub. Unknown or already removed
// registrations are ignored.
func (e *Emitter) Off(name Name, sub *Subscription) {
	if sub == nil || sub.emitter != e || sub.name != name {
		return
	}
	e.remove(name, sub.l)
}

// Count returns the number of live handlers registered under name.
func (e *Emitter) Count(name Name) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := 0
	for _, l := range e.listeners[name] {
		if !l.removed {
			n++
		}
	}
	return n
}

// Emit delivers payload to every live handler of name. Handler panics are
// recovered and returned joined; remaining handlers still run.
func (e *Emitter) Emit(name Name, payload any) error {
	_, err := e.emit(name, payload)
	return err
}

// EmitCancellable delivers payload and reports whether any handler vetoed.
func (e *Emitter) EmitCancellable(name Name, payload any) (cancelled bool, err error) {
	return e.emit(name, payload)
}

func (e *Emitter) emit(name Name, payload any) (bool, error) {
	e.mu.Lock()
	list := e.listeners[name]
	if len(list) == 0 {
		e.mu.Unlock()
		return false, nil
	}
	// Snapshot so handlers may register or remove listeners while we iterate.
	snapshot := make([]*listener, len(list))
	copy(snapshot, list)
	ev := Event{Name: name, Source: e.source, Payload: payload}
	e.emitting++
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.emitting--
		e.mu.Unlock()
	}()

	var (
		cancelled bool
		errs      []error
	)
	for _, l := range snapshot {
		if e.isRemoved(l) {
			continue
		}
		cancel, err := invoke(l.fn, ev)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		cancelled = cancelled || cancel
	}
	return cancelled, errors.Join(errs...)
}

func (e *Emitter) isRemoved(l *listener) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return l.removed
}

// remove tombstones l. Returns false if it was already gone.
func (e *Emitter) remove(name Name, l *listener) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, cur := range e.listeners[name] {
		if cur == l && !cur.removed {
			cur.removed = true
			return true
		}
	}
	return false
}

func compact(list []*listener) []*listener {
	out := list[:0]
	for _, l := range list {
		if !l.removed {
			out = append(out, l)
		}
	}
	// Drop dangling references held past the new length.
	for i := len(out); i < len(list); i++ {
		list[i] = nil
	}
	return out
}

// Subscription is the disposer returned by On.
type Subscription struct {
	emitter  *Emitter
	name     Name
	l        *listener
	mu       sync.Mutex
	disposed bool
}

// Dispose detaches the handler. A second call returns ErrAlreadyDisposed.
func (s *Subscription) Dispose() error {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return ErrAlreadyDisposed
	}
	s.disposed = true
	s.mu.Unlock()

	s.emitter.remove(s.name, s.l)
	return nil
}

// Release disposes a set of subscriptions, ignoring ones already disposed.
func Release(subs ...*Subscription) {
	for _, s := range subs {
		if s != nil {
			_ = s.Dispose()
		}
	}
}
