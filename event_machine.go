package ratchet

// EventMachine is an event-aware finite-state machine. Rules are matched on
// the pair of current state and presented trigger, so several rules may
// leave the same state as long as their events differ. Rules whose Event
// slot is the zero Trigger fire on event-less Step calls, which lets a
// machine mix externally triggered and self-advancing transitions.
//
// Like Machine, an EventMachine is not safe for concurrent use and shares
// its table read-only.
type EventMachine[S, E comparable] struct {
	table   []EventTransition[S, E]
	current S
	handler func(from, to S, trigger Trigger[E])
}

// EventOption configures an EventMachine at construction time.
type EventOption[S, E comparable] func(*EventMachine[S, E])

// WithEventHandler registers a callback invoked exactly once per successful
// step with the matched rule's From and To states and the presented trigger,
// which is the zero Trigger for event-less steps. It runs synchronously
// inside Step and StepEvent, before the new state becomes visible, and must
// not call back into the same machine.
func WithEventHandler[S, E comparable](fn func(from, to S, trigger Trigger[E])) EventOption[S, E] {
	return func(m *EventMachine[S, E]) {
		m.handler = fn
	}
}

// NewEventMachine builds an event-aware machine over table, starting in
// initial. Table handling matches New: held by reference, never validated,
// never mutated by the machine.
func NewEventMachine[S, E comparable](initial S, table []EventTransition[S, E], opts ...EventOption[S, E]) *EventMachine[S, E] {
	m := &EventMachine[S, E]{table: table, current: initial}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Current returns the machine's current state. It never fails and has no
// side effects.
func (m *EventMachine[S, E]) Current() S {
	return m.current
}

// Step presents "no event": it advances along the first rule whose From
// equals the current state and whose Event slot is empty. Rules that carry
// an event never match an event-less step.
func (m *EventMachine[S, E]) Step() error {
	return m.step(Trigger[E]{})
}

// StepEvent presents event: it advances along the first rule whose From
// equals the current state and whose Event slot is On(event). When no rule
// matches, the state is left unchanged and ErrInvalidTransition is
// returned. Like Machine.Step, it does not allocate.
func (m *EventMachine[S, E]) StepEvent(event E) error {
	return m.step(On(event))
}

func (m *EventMachine[S, E]) step(trigger Trigger[E]) error {
	for _, r := range m.table {
		if r.From != m.current || r.Event != trigger {
			continue
		}
		if m.handler != nil {
			m.handler(r.From, r.To, trigger)
		}
		m.current = r.To
		return nil
	}
	return ErrInvalidTransition
}

// Can reports whether an event-less Step from the current state would
// succeed.
func (m *EventMachine[S, E]) Can() bool {
	return m.can(Trigger[E]{})
}

// CanEvent reports whether StepEvent(event) from the current state would
// succeed.
func (m *EventMachine[S, E]) CanEvent(event E) bool {
	return m.can(On(event))
}

func (m *EventMachine[S, E]) can(trigger Trigger[E]) bool {
	for _, r := range m.table {
		if r.From == m.current && r.Event == trigger {
			return true
		}
	}
	return false
}
