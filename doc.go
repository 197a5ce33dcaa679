/*
Package ratchet is a table-driven finite-state machine engine with a fixed
memory footprint: machines are assembled once from an immutable transition
table, and stepping is a bounded linear scan that never allocates and never
blocks. It is meant for control loops, protocol drivers, and device firmware
ported to Go, where the set of states is small and known up front.

# Concept

A machine holds a current state and a table of rules. Each call to Step (or
StepEvent) scans the table in order, follows the first rule that matches, and
reports ErrInvalidTransition when none does, leaving the state untouched.
States and events are opaque comparable values chosen by the caller; the
engine only ever compares them for equality, so plain string or integer
enumerations both work.

Two machine shapes cover the two ways a system advances. Machine is
event-less: Step follows the single rule leaving the current state.
EventMachine disambiguates rules sharing a source state by an event value
presented at step time. The shape is fixed by the constructor you call, and
an event-less machine exposes no event-taking methods at all, so mixing the
two is a compile error rather than a runtime check.

# Key Properties

  - Deterministic: the same table, initial state, and step sequence always
    produce the same states and errors.
  - Ordered: when several rules match, the one listed first wins.
  - Allocation-free stepping: the only heap work happens in the constructor.
  - No hidden validation: tables are taken as given, and an empty table
    simply makes every step fail.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/okranz/ratchet"
	)

	type Phase string

	const (
		Idle    Phase = "idle"
		Running Phase = "running"
		Done    Phase = "done"
	)

	func main() {
		table := []ratchet.Transition[Phase]{
			{From: Idle, To: Running},
			{From: Running, To: Done},
		}

		m := ratchet.New(Idle, table, ratchet.WithHandler(func(from, to Phase) {
			fmt.Printf("%s -> %s\n", from, to)
		}))

		for m.Can() {
			if err := m.Step(); err != nil {
				log.Fatal(err)
			}
		}

		fmt.Println("finished in", m.Current())
	}

Event-aware machines are built the same way with NewEventMachine, with an
EventTransition table whose Event field selects the trigger for each rule:

	table := []ratchet.EventTransition[Door, Input]{
		{From: Closed, To: Open, Event: ratchet.On(Push)},
		{From: Open, To: Closed, Event: ratchet.On(Pull)},
		{From: Open, To: Closed},                           // no event: closes on a plain Step
	}

The subpackages build on this core without changing it: pkg/def loads machine
definitions from YAML and JSON, pkg/dsl builds tables fluently in code,
pkg/graph renders tables as Mermaid or DOT diagrams, and pkg/observe attaches
structured logging and Prometheus metrics through step handlers.
*/
package ratchet
