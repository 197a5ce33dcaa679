package graph_test

import (
	"strings"
	"testing"

	"github.com/okranz/ratchet"
	"github.com/okranz/ratchet/pkg/def"
	"github.com/okranz/ratchet/pkg/graph"
)

func turnstile() *def.Definition {
	return &def.Definition{
		Name:    "turnstile",
		Initial: "locked",
		States:  []string{"locked", "unlocked"},
		Events:  []string{"coin", "push"},
		Transitions: []def.Rule{
			{From: "locked", To: "unlocked", Event: "coin"},
			{From: "unlocked", To: "locked", Event: "push"},
		},
	}
}

func TestFromDef(t *testing.T) {
	g := graph.FromDef(turnstile())

	if g.Name != "turnstile" || g.Initial != "locked" {
		t.Errorf("Unexpected header: name=%q initial=%q", g.Name, g.Initial)
	}
	if len(g.States) != 2 {
		t.Fatalf("Expected 2 states, got %d", len(g.States))
	}
	if len(g.Edges) != 2 {
		t.Fatalf("Expected 2 edges, got %d", len(g.Edges))
	}
	if g.Edges[0] != (graph.Edge{From: "locked", To: "unlocked", Event: "coin"}) {
		t.Errorf("Unexpected first edge: %+v", g.Edges[0])
	}
}

func TestFromTable(t *testing.T) {
	table := []ratchet.Transition[int]{
		{From: 1, To: 2},
		{From: 2, To: 1},
	}
	g := graph.FromTable(1, table)

	if g.Initial != "1" {
		t.Errorf("Expected initial '1', got %q", g.Initial)
	}
	want := []string{"1", "2"}
	for i, s := range g.States {
		if s != want[i] {
			t.Errorf("State %d: expected %q, got %q", i, want[i], s)
		}
	}
	if g.Edges[0].Event != "" {
		t.Errorf("Expected unlabeled edge, got %q", g.Edges[0].Event)
	}
}

func TestFromEventTable(t *testing.T) {
	table := []ratchet.EventTransition[string, string]{
		{From: "sleep", To: "waiting", Event: ratchet.On("click")},
		{From: "parsing", To: "sleep"},
	}
	g := graph.FromEventTable("sleep", table)

	if g.Edges[0].Event != "click" {
		t.Errorf("Expected 'click' label, got %q", g.Edges[0].Event)
	}
	if g.Edges[1].Event != "" {
		t.Errorf("Expected no label for the bare rule, got %q", g.Edges[1].Event)
	}

	// First-mention order: initial first, then rule endpoints
	want := []string{"sleep", "waiting", "parsing"}
	for i, s := range g.States {
		if s != want[i] {
			t.Errorf("State %d: expected %q, got %q", i, want[i], s)
		}
	}
}

func TestDiagram_Mermaid(t *testing.T) {
	tests := []struct {
		name     string
		diagram  graph.Diagram
		overlay  *graph.Overlay
		contains []string
	}{
		{
			name:    "Basic Structure",
			diagram: graph.FromDef(turnstile()),
			contains: []string{
				"stateDiagram-v2",
				`state "locked" as locked`,
				"[*] --> locked",
				"locked --> unlocked: coin",
				"unlocked --> locked: push",
			},
		},
		{
			name: "ID Sanitization",
			diagram: graph.FromDef(&def.Definition{
				Initial: "path/to/file.md",
				Transitions: []def.Rule{
					{From: "path/to/file.md", To: "hyphen-ated"},
				},
			}),
			contains: []string{
				`state "path/to/file.md" as path_to_file_md`,
				`state "hyphen-ated" as hyphen_ated`,
				"path_to_file_md --> hyphen_ated",
			},
		},
		{
			name: "Label Escaping",
			diagram: graph.Diagram{
				Initial: "a",
				States:  []string{"a", "b"},
				Edges:   []graph.Edge{{From: "a", To: "b", Event: `say "hi"`}},
			},
			contains: []string{
				"a --> b: say 'hi'",
			},
		},
		{
			name:    "Overlay Classes",
			diagram: graph.FromDef(turnstile()),
			overlay: &graph.Overlay{Current: "unlocked", Visited: []string{"locked", "locked"}},
			contains: []string{
				"classDef visited",
				"classDef current",
				"class locked visited",
				"class unlocked current",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.diagram.Mermaid(tt.overlay)
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("Output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestDiagram_MermaidDeduplicatesVisited(t *testing.T) {
	out := graph.FromDef(turnstile()).Mermaid(&graph.Overlay{Visited: []string{"locked", "locked"}})
	if strings.Count(out, "class locked visited") != 1 {
		t.Errorf("Expected one visited class line, got:\n%s", out)
	}
}

func TestDiagram_DOT(t *testing.T) {
	out := graph.FromDef(turnstile()).DOT(&graph.Overlay{Current: "locked", Visited: []string{"unlocked"}})

	for _, want := range []string{
		`digraph "turnstile" {`,
		"rankdir=LR;",
		`__initial -> "locked";`,
		`"locked" -> "unlocked" [label="coin"];`,
		`"locked" [style="rounded,filled", fillcolor="#ffeb3b"];`,
		`"unlocked" [style="rounded,filled", fillcolor="#e1f5fe"];`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}

	t.Run("Quote Escaping", func(t *testing.T) {
		g := graph.Diagram{
			Initial: "a",
			States:  []string{"a", "b"},
			Edges:   []graph.Edge{{From: "a", To: "b", Event: `say "hi"`}},
		}
		if !strings.Contains(g.DOT(nil), `[label="say \"hi\""]`) {
			t.Errorf("Expected escaped label, got:\n%s", g.DOT(nil))
		}
	})

	t.Run("Unnamed Machine", func(t *testing.T) {
		g := graph.FromTable("a", []ratchet.Transition[string]{{From: "a", To: "b"}})
		if !strings.Contains(g.DOT(nil), `digraph "machine" {`) {
			t.Errorf("Expected default digraph name, got:\n%s", g.DOT(nil))
		}
	})
}
