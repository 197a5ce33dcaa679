package def

import (
	"fmt"

	"github.com/okranz/ratchet"
)

// Machine compiles an event-less definition into a string-typed machine.
// It refuses event-aware definitions, since dropping their events would
// silently change what the table means; compile those with EventMachine.
func (d *Definition) Machine(opts ...ratchet.Option[string]) (*ratchet.Machine[string], error) {
	if d.Evented() {
		return nil, fmt.Errorf("definition %q is event-aware, compile it with EventMachine", d.Name)
	}

	table := make([]ratchet.Transition[string], len(d.Transitions))
	for i, r := range d.Transitions {
		table[i] = ratchet.Transition[string]{From: r.From, To: r.To}
	}
	return ratchet.New(d.Initial, table, opts...), nil
}

// EventMachine compiles the definition into a string-typed event-aware
// machine. Rules without an event map to the zero Trigger, so event-less
// definitions compile too and advance through plain Step calls.
func (d *Definition) EventMachine(opts ...ratchet.EventOption[string, string]) *ratchet.EventMachine[string, string] {
	table := make([]ratchet.EventTransition[string, string], len(d.Transitions))
	for i, r := range d.Transitions {
		t := ratchet.EventTransition[string, string]{From: r.From, To: r.To}
		if r.Event != "" {
			t.Event = ratchet.On(r.Event)
		}
		table[i] = t
	}
	return ratchet.NewEventMachine(d.Initial, table, opts...)
}
