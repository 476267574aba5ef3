package tui

import (
	"bytes"
	"testing"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRulesMarkdown(t *testing.T) {
	view := domain.StateView{
		ID:   0,
		Name: "q0",
		Transitions: []domain.TransitionView{{
			TargetID:   1,
			TargetName: "q1",
			Rules: domain.RuleTable{
				'1': {Write: '0', Move: domain.Left},
				'0': {Write: '1', Move: domain.Right},
			},
		}},
	}

	got := RulesMarkdown(view, domain.MustAlphabet("01"))

	assert.Contains(t, got, "## q0 (#0)")
	assert.Contains(t, got, "| Read | Write | Move | Target |")
	zero := bytes.Index([]byte(got), []byte("| `0` | `1` | Right | q1 (#1) |"))
	one := bytes.Index([]byte(got), []byte("| `1` | `0` | Left | q1 (#1) |"))
	require.GreaterOrEqual(t, zero, 0)
	require.GreaterOrEqual(t, one, 0)
	assert.Less(t, zero, one, "rows follow alphabet order")
}

func TestRulesMarkdown_Empty(t *testing.T) {
	got := RulesMarkdown(domain.StateView{ID: 3, Name: "halt"}, domain.MustAlphabet("01"))
	assert.Contains(t, got, "## halt (#3)")
	assert.Contains(t, got, "_No transitions._")
}

func TestPrintBanner_NoColorOnBuffer(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "1.2.3")

	assert.Contains(t, buf.String(), "v1.2.3")
	assert.NotContains(t, buf.String(), "\x1b[", "a plain buffer gets no escape codes")
}

func TestPlainRenderer(t *testing.T) {
	out, err := PlainRenderer("# hi")
	require.NoError(t, err)
	assert.Equal(t, "# hi", out)
}
