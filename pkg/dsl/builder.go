package dsl

import "github.com/okranz/ratchet"

// Builder accumulates an ordered transition table for an event-less
// machine. Rule order is declaration order, which is also the machine's
// match priority.
type Builder[S comparable] struct {
	table []ratchet.Transition[S]
}

// New creates an empty table builder.
func New[S comparable]() *Builder[S] {
	return &Builder[S]{}
}

// From starts a new rule leaving the given state.
func (b *Builder[S]) From(state S) *RuleBuilder[S] {
	return &RuleBuilder[S]{builder: b, from: state}
}

// Table returns the accumulated table. The machine holds tables by
// reference, so the builder should not be extended after this.
func (b *Builder[S]) Table() []ratchet.Transition[S] {
	return b.table
}

// Machine builds a machine over the accumulated table, starting in initial.
func (b *Builder[S]) Machine(initial S, opts ...ratchet.Option[S]) *ratchet.Machine[S] {
	return ratchet.New(initial, b.table, opts...)
}

// RuleBuilder completes a single rule started with From.
type RuleBuilder[S comparable] struct {
	builder *Builder[S]
	from    S
}

// To finishes the rule with its destination state and returns the table
// builder for chaining.
func (r *RuleBuilder[S]) To(state S) *Builder[S] {
	r.builder.table = append(r.builder.table, ratchet.Transition[S]{From: r.from, To: state})
	return r.builder
}
