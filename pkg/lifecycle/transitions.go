// ABOUTME: Lifecycle states and the table of legal transitions between them
// ABOUTME: Hidden -> Showing -> Shown -> Hiding -> Hidden, plus the failed-show edge back to Hidden

package lifecycle

import "fmt"

// State is the visibility state of an overlay widget.
type State int

const (
	StateHidden State = iota
	StateShowing
	StateShown
	StateHiding
)

func (s State) String() string {
	switch s {
	case StateHidden:
		return "hidden"
	case StateShowing:
		return "showing"
	case StateShown:
		return "shown"
	case StateHiding:
		return "hiding"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Transition is one legal edge of the state machine.
type Transition struct {
	From State
	To   State
	Name string
}

// Transitions returns every legal transition.
func Transitions() []Transition {
	return []Transition{
		{From: StateHidden, To: StateShowing, Name: "show"},
		{From: StateShowing, To: StateShown, Name: "apply"},
		// Initialization failed; nothing was applied.
		{From: StateShowing, To: StateHidden, Name: "abort"},
		{From: StateShown, To: StateHiding, Name: "hide"},
		{From: StateHiding, To: StateHidden, Name: "remove"},
	}
}

// CanTransition reports whether from -> to is a legal edge.
func CanTransition(from, to State) bool {
	for _, t := range Transitions() {
		if t.From == from && t.To == to {
			return true
		}
	}
	return false
}

// TransitionsFrom returns the states reachable from s in one step.
func TransitionsFrom(s State) []State {
	var targets []State
	for _, t := range Transitions() {
		if t.From == s {
			targets = append(targets, t.To)
		}
	}
	return targets
}

// TransitionError represents an attempt to take an edge not in the table.
type TransitionError struct {
	From State
	To   State
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot transition from %s to %s", e.From, e.To)
}
