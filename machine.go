package ratchet

// Machine is an event-less finite-state machine. It advances one table rule
// at a time through Step and carries no event concept at all; use
// EventMachine when transitions out of a state must be disambiguated.
//
// A Machine is not safe for concurrent use. The table it was built over is
// read-only and may be shared between machines, but the current-state cell
// belongs to a single goroutine unless the caller synchronizes access.
type Machine[S comparable] struct {
	table   []Transition[S]
	current S
	handler func(from, to S)
}

// Option configures a Machine at construction time.
type Option[S comparable] func(*Machine[S])

// WithHandler registers a callback invoked exactly once per successful step
// with the matched rule's From and To states. It runs synchronously inside
// Step, before the new state becomes visible, and must not call back into
// the same machine.
func WithHandler[S comparable](fn func(from, to S)) Option[S] {
	return func(m *Machine[S]) {
		m.handler = fn
	}
}

// New builds a machine over table, starting in initial. The table is held by
// reference, not copied; it must not be mutated after construction. No
// validation is performed: duplicate or unreachable rules are taken as
// given, and an empty table makes every step fail.
func New[S comparable](initial S, table []Transition[S], opts ...Option[S]) *Machine[S] {
	m := &Machine[S]{table: table, current: initial}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Current returns the machine's current state. It never fails and has no
// side effects.
func (m *Machine[S]) Current() S {
	return m.current
}

// Step advances the machine along the first table rule whose From equals the
// current state; earlier rules win over later ones. When no rule matches,
// the state is left unchanged and ErrInvalidTransition is returned. Step
// does not allocate and completes in one pass over the table.
func (m *Machine[S]) Step() error {
	for _, r := range m.table {
		if r.From != m.current {
			continue
		}
		if m.handler != nil {
			m.handler(r.From, r.To)
		}
		m.current = r.To
		return nil
	}
	return ErrInvalidTransition
}

// Can reports whether a Step from the current state would succeed.
func (m *Machine[S]) Can() bool {
	for _, r := range m.table {
		if r.From == m.current {
			return true
		}
	}
	return false
}
