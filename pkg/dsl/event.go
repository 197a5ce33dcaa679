package dsl

import "github.com/okranz/ratchet"

// EventBuilder accumulates an ordered transition table for an event-aware
// machine.
type EventBuilder[S, E comparable] struct {
	table []ratchet.EventTransition[S, E]
}

// NewEvent creates an empty table builder for an event-aware machine.
func NewEvent[S, E comparable]() *EventBuilder[S, E] {
	return &EventBuilder[S, E]{}
}

// From starts a new rule leaving the given state.
func (b *EventBuilder[S, E]) From(state S) *EventRuleBuilder[S, E] {
	return &EventRuleBuilder[S, E]{builder: b, from: state}
}

// Table returns the accumulated table. The machine holds tables by
// reference, so the builder should not be extended after this.
func (b *EventBuilder[S, E]) Table() []ratchet.EventTransition[S, E] {
	return b.table
}

// Machine builds an event-aware machine over the accumulated table,
// starting in initial.
func (b *EventBuilder[S, E]) Machine(initial S, opts ...ratchet.EventOption[S, E]) *ratchet.EventMachine[S, E] {
	return ratchet.NewEventMachine(initial, b.table, opts...)
}

// EventRuleBuilder completes a single rule started with From. Without an On
// call the rule fires on event-less steps.
type EventRuleBuilder[S, E comparable] struct {
	builder *EventBuilder[S, E]
	from    S
	trigger ratchet.Trigger[E]
}

// On sets the event that triggers the rule.
func (r *EventRuleBuilder[S, E]) On(event E) *EventRuleBuilder[S, E] {
	r.trigger = ratchet.On(event)
	return r
}

// To finishes the rule with its destination state and returns the table
// builder for chaining.
func (r *EventRuleBuilder[S, E]) To(state S) *EventBuilder[S, E] {
	r.builder.table = append(r.builder.table, ratchet.EventTransition[S, E]{
		From:  r.from,
		To:    state,
		Event: r.trigger,
	})
	return r.builder
}
