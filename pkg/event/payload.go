// ABOUTME: Standard event payloads shared by widgets
// ABOUTME: ValueChanged carries the previous and current value of a property

package event

// ValueChanged is the payload of every "<property>Changed" event.
type ValueChanged[T any] struct {
	Previous T
	Value    T
}

// Changed builds a ValueChanged payload.
func Changed[T any](previous, value T) ValueChanged[T] {
	return ValueChanged[T]{Previous: previous, Value: value}
}
