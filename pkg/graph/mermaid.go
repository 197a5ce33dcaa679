package graph

import (
	"fmt"
	"strings"
)

// Mermaid produces Mermaid stateDiagram-v2 source for the diagram.
// Every state is declared with its display name so that identifiers stay
// valid even when state names carry characters Mermaid rejects. If overlay
// is set, visited and current states get highlight classes.
func (g Diagram) Mermaid(overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")

	for _, s := range g.States {
		sb.WriteString(fmt.Sprintf("    state %q as %s\n", s, sanitizeID(s)))
	}

	if g.Initial != "" {
		sb.WriteString(fmt.Sprintf("    [*] --> %s\n", sanitizeID(g.Initial)))
	}

	for _, e := range g.Edges {
		if e.Event != "" {
			// Escape double quotes for the edge label
			label := strings.ReplaceAll(e.Event, "\"", "'")
			sb.WriteString(fmt.Sprintf("    %s --> %s: %s\n", sanitizeID(e.From), sanitizeID(e.To), label))
			continue
		}
		sb.WriteString(fmt.Sprintf("    %s --> %s\n", sanitizeID(e.From), sanitizeID(e.To)))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000\n")

		// Deduplicate visited states (using safeIDs)
		visitedSet := make(map[string]bool)
		for _, s := range overlay.Visited {
			safeID := sanitizeID(s)
			if !visitedSet[safeID] && safeID != "" {
				visitedSet[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s visited\n", safeID))
			}
		}

		if overlay.Current != "" {
			sb.WriteString(fmt.Sprintf("    class %s current\n", sanitizeID(overlay.Current)))
		}
	}

	return sb.String()
}

func sanitizeID(id string) string {
	var sb strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}
	return sb.String()
}
