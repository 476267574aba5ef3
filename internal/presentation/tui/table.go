package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

// RulesMarkdown describes the outgoing transitions of one state as markdown:
// a heading, then one table row per symbol read.
func RulesMarkdown(view domain.StateView, alphabet domain.Alphabet) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s (#%d)\n\n", view.Name, view.ID)

	if len(view.Transitions) == 0 {
		sb.WriteString("_No transitions._\n")
		return sb.String()
	}

	sb.WriteString("| Read | Write | Move | Target |\n")
	sb.WriteString("|------|-------|------|--------|\n")
	for _, t := range view.Transitions {
		for _, read := range t.Rules.Reads(alphabet) {
			act := t.Rules[read]
			fmt.Fprintf(&sb, "| `%c` | `%c` | %s | %s (#%d) |\n", read, act.Write, act.Move.Name(), t.TargetName, t.TargetID)
		}
	}
	return sb.String()
}
