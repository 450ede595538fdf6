// ABOUTME: Panic isolation for event handlers: recovered panics become typed errors
// ABOUTME: ListenerPanicError keeps the event name, panic value, and stack

package event

import (
	"fmt"
	"runtime/debug"
)

// ListenerPanicError reports a handler that panicked during an emit.
type ListenerPanicError struct {
	Event      Name
	Value      any
	StackTrace string
}

func (e *ListenerPanicError) Error() string {
	return fmt.Sprintf("event %q: listener panicked: %v", e.Event, e.Value)
}

// Unwrap exposes the panic value when it was an error.
func (e *ListenerPanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

func invoke(fn Handler, ev Event) (cancel bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ListenerPanicError{
				Event:      ev.Name,
				Value:      r,
				StackTrace: string(debug.Stack()),
			}
		}
	}()
	return fn(ev), nil
}
