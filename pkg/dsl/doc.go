/*
Package dsl provides a fluent builder for constructing transition tables
programmatically.

It is an alternative to writing table literals or definition files: rules
read left to right as sentences, the table keeps the order the rules were
declared in, and the compiler checks state and event types through the
builder's type parameters. This is particularly useful for tests and for
machines assembled dynamically from application configuration.

Example usage:

	package main

	import (
		"fmt"

		"github.com/okranz/ratchet/pkg/dsl"
	)

	type Door string
	type Input string

	const (
		Locked   Door  = "locked"
		Unlocked Door  = "unlocked"
		Coin     Input = "coin"
		Push     Input = "push"
	)

	func main() {
		m := dsl.NewEvent[Door, Input]().
			From(Locked).On(Coin).To(Unlocked).
			From(Unlocked).On(Push).To(Locked).
			Machine(Locked)

		_ = m.StepEvent(Coin)
		fmt.Println(m.Current()) // unlocked
	}

Event-less tables use New and omit the On step:

	m := dsl.New[string]().
		From("fetch").To("decode").
		From("decode").To("store").
		Machine("fetch")
*/
package dsl
