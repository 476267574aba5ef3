package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart (graph LR) from state snapshots.
// States are drawn as circles labelled with their name; node ids come from the
// state id so repeated names stay distinct. Each transition becomes an edge
// labelled with its rule string, and the current state is highlighted.
func GenerateMermaid(views []domain.StateView) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	current := -1
	for _, v := range views {
		fmt.Fprintf(&sb, "    %s((\"%s\"))\n", nodeID(v.ID), escapeLabel(v.Name))
		if v.Current {
			current = v.ID
		}
	}

	for _, v := range views {
		for _, t := range v.Transitions {
			fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", nodeID(v.ID), escapeLabel(t.Rule), nodeID(t.TargetID))
		}
	}

	if current >= 0 {
		sb.WriteString("\n    %% Current State\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		fmt.Fprintf(&sb, "    class %s current;\n", nodeID(current))
	}

	return sb.String()
}

func nodeID(id int) string {
	return fmt.Sprintf("s%d", id)
}

// escapeLabel makes text safe inside a quoted Mermaid label.
// Pipes are edge-label delimiters in Mermaid, so they are entity encoded too.
func escapeLabel(s string) string {
	s = strings.ReplaceAll(s, "\"", "#quot;")
	s = strings.ReplaceAll(s, "|", "#124;")
	return s
}
