package graph

import (
	"fmt"

	"github.com/okranz/ratchet"
	"github.com/okranz/ratchet/pkg/def"
)

// Edge is one transition arrow. An empty Event renders as an unlabeled
// arrow.
type Edge struct {
	From  string
	To    string
	Event string
}

// Diagram is a renderer-neutral description of a machine: its state
// vocabulary in display order, the initial state, and the edges in table
// order.
type Diagram struct {
	Name    string
	Initial string
	States  []string
	Edges   []Edge
}

// Overlay contains dynamic state data to highlight on the diagram.
type Overlay struct {
	Current string
	Visited []string
}

// FromDef builds a diagram from a file definition, using its declared
// vocabulary when present.
func FromDef(d *def.Definition) Diagram {
	edges := make([]Edge, len(d.Transitions))
	for i, r := range d.Transitions {
		edges[i] = Edge{From: r.From, To: r.To, Event: r.Event}
	}
	return Diagram{
		Name:    d.Name,
		Initial: d.Initial,
		States:  d.StateNames(),
		Edges:   edges,
	}
}

// FromTable builds a diagram from an event-less table. States are rendered
// with fmt and listed in first-mention order, starting with the initial
// state.
func FromTable[S comparable](initial S, table []ratchet.Transition[S]) Diagram {
	c := newCollector(initial)
	edges := make([]Edge, len(table))
	for i, t := range table {
		edges[i] = Edge{From: c.add(t.From), To: c.add(t.To)}
	}
	return Diagram{Initial: c.initial, States: c.states, Edges: edges}
}

// FromEventTable builds a diagram from an event-aware table.
func FromEventTable[S, E comparable](initial S, table []ratchet.EventTransition[S, E]) Diagram {
	c := newCollector(initial)
	edges := make([]Edge, len(table))
	for i, t := range table {
		e := Edge{From: c.add(t.From), To: c.add(t.To)}
		if ev, ok := t.Event.Event(); ok {
			e.Event = fmt.Sprintf("%v", ev)
		}
		edges[i] = e
	}
	return Diagram{Initial: c.initial, States: c.states, Edges: edges}
}

// collector stringifies states and keeps their first-mention order.
type collector struct {
	initial string
	states  []string
	seen    map[string]bool
}

func newCollector[S comparable](initial S) *collector {
	c := &collector{seen: make(map[string]bool)}
	c.initial = c.add(initial)
	return c
}

func (c *collector) add(state any) string {
	name := fmt.Sprintf("%v", state)
	if !c.seen[name] {
		c.seen[name] = true
		c.states = append(c.states, name)
	}
	return name
}
