package ratchet

import "fmt"

// Transition is one rule in an event-less machine's table: when the machine
// is in From, a step moves it to To.
type Transition[S comparable] struct {
	From S
	To   S
}

// Trigger is the event slot of an EventTransition and the value handed to
// event handlers. The zero Trigger means "no event"; On(e) carries the event
// e. The two are distinct even when e is the zero value of E, so an event
// enumeration may freely use its zero member. Triggers are comparable, which
// keeps rule matching a single equality check.
type Trigger[E comparable] struct {
	event E
	ok    bool
}

// On returns a Trigger carrying the event e.
func On[E comparable](event E) Trigger[E] {
	return Trigger[E]{event: event, ok: true}
}

// Event returns the trigger's event and whether one is present.
func (t Trigger[E]) Event() (E, bool) {
	return t.event, t.ok
}

// IsEvent reports whether the trigger carries an event.
func (t Trigger[E]) IsEvent() bool {
	return t.ok
}

// String renders the trigger for logs and diagnostics.
func (t Trigger[E]) String() string {
	if !t.ok {
		return "<none>"
	}
	return fmt.Sprintf("%v", t.event)
}

// EventTransition is one rule in an event-aware machine's table: when the
// machine is in From and the presented trigger equals Event, a step moves it
// to To. Leaving Event at its zero value makes the rule fire on event-less
// Step calls only.
type EventTransition[S, E comparable] struct {
	From  S
	To    S
	Event Trigger[E]
}
