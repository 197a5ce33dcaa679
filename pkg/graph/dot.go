package graph

import (
	"fmt"
	"strings"
)

// DOT produces Graphviz DOT source for the diagram. The initial state is
// marked with an entry point arrow; overlay states are filled with the same
// palette the Mermaid renderer uses.
func (g Diagram) DOT(overlay *Overlay) string {
	var sb strings.Builder

	name := g.Name
	if name == "" {
		name = "machine"
	}

	sb.WriteString(fmt.Sprintf("digraph %q {\n", name))
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=box, fontsize=10, style=rounded];\n")
	sb.WriteString("  edge [fontsize=9];\n")

	if overlay != nil {
		visitedSet := make(map[string]bool)
		for _, s := range overlay.Visited {
			if s == "" || visitedSet[s] || s == overlay.Current {
				continue
			}
			visitedSet[s] = true
			sb.WriteString(fmt.Sprintf("  %s [style=\"rounded,filled\", fillcolor=\"#e1f5fe\"];\n", quoteDOT(s)))
		}
		if overlay.Current != "" {
			sb.WriteString(fmt.Sprintf("  %s [style=\"rounded,filled\", fillcolor=\"#ffeb3b\"];\n", quoteDOT(overlay.Current)))
		}
	}

	if g.Initial != "" {
		sb.WriteString("  __initial [shape=point, label=\"\"];\n")
		sb.WriteString(fmt.Sprintf("  __initial -> %s;\n", quoteDOT(g.Initial)))
	}

	for _, e := range g.Edges {
		if e.Event != "" {
			sb.WriteString(fmt.Sprintf("  %s -> %s [label=%s];\n", quoteDOT(e.From), quoteDOT(e.To), quoteDOT(e.Event)))
			continue
		}
		sb.WriteString(fmt.Sprintf("  %s -> %s;\n", quoteDOT(e.From), quoteDOT(e.To)))
	}

	sb.WriteString("}\n")
	return sb.String()
}

func quoteDOT(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
