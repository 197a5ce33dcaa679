/*
Package def loads, validates, and compiles machine definitions written as
YAML or JSON documents.

A definition is the file form of a transition table: it names the machine,
its initial state, the ordered transition rules, and optionally the full
state and event vocabularies. Definitions compile to string-typed machines
from the root package, so a file like

	name: turnstile
	initial: locked
	states: [locked, unlocked]
	events: [coin, push]
	transitions:
	  - {from: locked, to: unlocked, event: coin}
	  - {from: unlocked, to: locked, event: push}

becomes a runnable machine in two calls:

	d, err := def.Load("turnstile.yaml")
	if err != nil {
		log.Fatal(err)
	}
	m := d.EventMachine()

Validation is deliberately separate from compilation. The engine itself
takes tables as given, so the compile methods never inspect rule
consistency; Validate is for tools and load paths that want to reject
malformed files early, and Ambiguities and Unreachable surface shadowed
rules and orphaned states as warnings without making them errors, since
rule order is the documented tie-break.
*/
package def
