package dsl

import (
	"testing"

	"github.com/okranz/ratchet"
)

func TestBuilder_SimpleFlow(t *testing.T) {
	// 1. Build the table using DSL
	b := New[string]().
		From("fetch").To("decode").
		From("decode").To("store").
		From("store").To("fetch")

	table := b.Table()
	if len(table) != 3 {
		t.Fatalf("Expected 3 rules, got %d", len(table))
	}

	want := []ratchet.Transition[string]{
		{From: "fetch", To: "decode"},
		{From: "decode", To: "store"},
		{From: "store", To: "fetch"},
	}
	for i, r := range table {
		if r != want[i] {
			t.Errorf("Rule %d: expected %v, got %v", i, want[i], r)
		}
	}

	// 2. Compile to a machine and walk the loop
	m := b.Machine("fetch")
	for _, next := range []string{"decode", "store", "fetch"} {
		if err := m.Step(); err != nil {
			t.Fatalf("Step failed: %v", err)
		}
		if m.Current() != next {
			t.Errorf("Expected %q, got %q", next, m.Current())
		}
	}
}

func TestBuilder_DeclarationOrderIsPriority(t *testing.T) {
	m := New[string]().
		From("a").To("b").
		From("a").To("c").
		Machine("a")

	if err := m.Step(); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if m.Current() != "b" {
		t.Errorf("Expected the first declared rule to win, got %q", m.Current())
	}
}

func TestEventBuilder_Flow(t *testing.T) {
	b := NewEvent[string, string]().
		From("locked").On("coin").To("unlocked").
		From("unlocked").On("push").To("locked").
		From("unlocked").To("locked")

	table := b.Table()
	if len(table) != 3 {
		t.Fatalf("Expected 3 rules, got %d", len(table))
	}

	if table[0].Event != ratchet.On("coin") {
		t.Errorf("Expected coin trigger, got %v", table[0].Event)
	}
	if table[2].Event.IsEvent() {
		t.Errorf("Expected rule without On to carry the zero trigger, got %v", table[2].Event)
	}

	m := b.Machine("locked")
	if err := m.StepEvent("coin"); err != nil {
		t.Fatalf("StepEvent(coin) failed: %v", err)
	}
	if m.Current() != "unlocked" {
		t.Errorf("Expected 'unlocked', got %q", m.Current())
	}

	// The bare rule makes a plain step valid at 'unlocked'
	if err := m.Step(); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if m.Current() != "locked" {
		t.Errorf("Expected 'locked', got %q", m.Current())
	}
}

func TestEventBuilder_HandlerOption(t *testing.T) {
	count := 0
	m := NewEvent[string, int]().
		From("idle").On(1).To("busy").
		Machine("idle", ratchet.WithEventHandler(func(from, to string, trigger ratchet.Trigger[int]) {
			count++
		}))

	if err := m.StepEvent(1); err != nil {
		t.Fatalf("StepEvent failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 handler invocation, got %d", count)
	}
}
