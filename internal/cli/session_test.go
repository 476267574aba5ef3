package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, opts ...SessionOption) (*Session, *bytes.Buffer) {
	t.Helper()
	ed, err := turing.New("01")
	require.NoError(t, err)
	out := &bytes.Buffer{}
	return NewSession(ed, out, opts...), out
}

func TestSession_Script(t *testing.T) {
	s, out := newTestSession(t)

	script := strings.Join([]string{
		"# binary inverter",
		"state q0 100 100",
		"state q1 300 100",
		"edge q0 q1 0/1,R | 1/0,L",
		"edge q0 q1 2/1,R",
		"current q1",
		"ls",
		"quit",
		"state never 0 0",
	}, "\n")

	err := s.Run(context.Background(), strings.NewReader(script))
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "Added state q0 (#0) at (100, 100)")
	assert.Contains(t, got, "Added transition q0 -> q1 (2 reads)")
	assert.Contains(t, got, "error: rule \"2/1,R\"")
	assert.Contains(t, got, "Current state: q1 (#1)")
	assert.Contains(t, got, "    -> q1 (#1): 0/1,R | 1/0,L")
	assert.Contains(t, got, "* #1 q1 (300, 100)")
	assert.NotContains(t, got, "never", "commands after quit are not run")

	states := s.editor.Automaton().States()
	require.Len(t, states, 2)
	assert.Len(t, states[0].Transitions(), 1)
}

func TestSession_QuotedRule(t *testing.T) {
	s, _ := newTestSession(t)
	ctx := context.Background()

	require.NoError(t, s.Exec(ctx, "state a"))
	require.NoError(t, s.Exec(ctx, `edge a a "0/0,N | 1/1,N"`))

	tr := s.editor.Automaton().States()[0].Transitions()
	require.Len(t, tr, 1)
	assert.Equal(t, "0/0,N | 1/1,N", tr[0].Rule())
}

func TestSession_Resolve(t *testing.T) {
	s, _ := newTestSession(t)
	ctx := context.Background()

	require.NoError(t, s.Exec(ctx, "state q"))
	require.NoError(t, s.Exec(ctx, "state q"))
	require.NoError(t, s.Exec(ctx, "state r"))

	err := s.Exec(ctx, "edge q r 0/0,N")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")
	assert.Contains(t, err.Error(), "#0, #1")

	require.NoError(t, s.Exec(ctx, "edge #1 r 0/0,N"))
	assert.Len(t, s.editor.Automaton().States()[1].Transitions(), 1)
	assert.Empty(t, s.editor.Automaton().States()[0].Transitions())

	assert.ErrorContains(t, s.Exec(ctx, "edge #9 r 0/0,N"), "no state with id 9")
	assert.ErrorContains(t, s.Exec(ctx, "edge #x r 0/0,N"), "invalid state id")
	assert.ErrorContains(t, s.Exec(ctx, "edge ghost r 0/0,N"), "unknown state")
}

func TestSession_UsageErrors(t *testing.T) {
	s, _ := newTestSession(t)
	ctx := context.Background()

	for _, line := range []string{
		"state q 1",
		"state q one 2",
		"edge",
		"edge a",
		"show",
		"frobnicate",
	} {
		assert.Error(t, s.Exec(ctx, line), line)
	}
	assert.Empty(t, s.editor.Automaton().States())
}

func TestSession_Current(t *testing.T) {
	s, out := newTestSession(t)
	ctx := context.Background()

	require.NoError(t, s.Exec(ctx, "current"))
	assert.Contains(t, out.String(), "No current state.")

	require.NoError(t, s.Exec(ctx, "state q0"))
	require.NoError(t, s.Exec(ctx, "current #0"))
	assert.NotNil(t, s.editor.Automaton().Current())

	require.NoError(t, s.Exec(ctx, "current none"))
	assert.Nil(t, s.editor.Automaton().Current())
	assert.Contains(t, out.String(), "Current state cleared.")
}

func TestSession_ShowAndGraph(t *testing.T) {
	s, out := newTestSession(t)
	ctx := context.Background()

	require.NoError(t, s.Exec(ctx, "state q0"))
	require.NoError(t, s.Exec(ctx, "state q1"))
	require.NoError(t, s.Exec(ctx, "edge q0 q1 1/0,L | 0/1,R"))

	out.Reset()
	require.NoError(t, s.Exec(ctx, "show q0"))
	assert.Contains(t, out.String(), "| `0` | `1` | Right | q1 (#1) |")

	out.Reset()
	require.NoError(t, s.Exec(ctx, "graph"))
	assert.Contains(t, out.String(), "graph LR")
	assert.Contains(t, out.String(), "s0 -- ")

	out.Reset()
	require.NoError(t, s.Exec(ctx, "alphabet"))
	assert.Equal(t, "01\n", out.String())
}

func TestSession_Check(t *testing.T) {
	s, out := newTestSession(t)
	ctx := context.Background()

	require.NoError(t, s.Exec(ctx, "state q0"))
	require.NoError(t, s.Exec(ctx, "state q1"))
	require.NoError(t, s.Exec(ctx, "edge q0 q1 0/1,R"))

	require.NoError(t, s.Exec(ctx, "check"))
	assert.Contains(t, out.String(), "No problems found.")

	err := s.Exec(ctx, "check q1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unreachable state: 'q0' (#0)")
}

func TestSession_Stats(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	ed, err := turing.New("01", turing.WithHooks(metrics.Hooks()))
	require.NoError(t, err)
	out := &bytes.Buffer{}
	s := NewSession(ed, out, WithSessionStats(reg))
	ctx := context.Background()

	require.NoError(t, s.Exec(ctx, "state q0"))
	_ = s.Exec(ctx, "edge q0 q0 0/1,X")

	out.Reset()
	require.NoError(t, s.Exec(ctx, "stats"))
	got := out.String()
	assert.Contains(t, got, "turing_states_added_total 1")
	assert.Contains(t, got, "turing_transitions_added_total 0")
	assert.Contains(t, got, "turing_rules_rejected_total{reason=invalid_direction} 1")

	plain, _ := newTestSession(t)
	assert.Error(t, plain.Exec(ctx, "stats"))
}

func TestSession_Cancelled(t *testing.T) {
	s, _ := newTestSession(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Run(ctx, strings.NewReader("state q0\n"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, s.editor.Automaton().States())
}

func TestSession_CancelWhileWaiting(t *testing.T) {
	s, _ := newTestSession(t)
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Run(ctx, pr)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after the context was cancelled")
	}
}

func TestSession_ReadError(t *testing.T) {
	s, _ := newTestSession(t)
	pr, pw := io.Pipe()
	boom := errors.New("boom")

	go func() {
		_, _ = pw.Write([]byte("state q0\n"))
		_ = pw.CloseWithError(boom)
	}()

	err := s.Run(context.Background(), pr)
	assert.ErrorIs(t, err, boom)
	assert.Len(t, s.editor.Automaton().States(), 1)
}

func TestSession_QuickAddState(t *testing.T) {
	s, out := newTestSession(t)
	ctx := context.Background()

	require.NoError(t, s.Exec(ctx, "state"))
	require.NoError(t, s.Exec(ctx, "state"))
	assert.Contains(t, out.String(), "Added state q0 (#0) at (0, 0)")
	assert.Contains(t, out.String(), "Added state q1 (#1) at (0, 0)")

	states := s.editor.Automaton().States()
	require.Len(t, states, 2)
	assert.Equal(t, "q1", states[1].Name())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestSession_ListWriteError(t *testing.T) {
	ed, err := turing.New("01")
	require.NoError(t, err)
	ed.AddState(context.Background(), "q0", domain.Position{})

	s := NewSession(ed, failingWriter{})
	assert.ErrorContains(t, s.Exec(context.Background(), "ls"), "disk full")
}

func TestCut(t *testing.T) {
	head, rest := cut("  edge  q0 q1 0/1,R | 1/0,L ")
	assert.Equal(t, "edge", head)
	assert.Equal(t, "q0 q1 0/1,R | 1/0,L", rest)

	head, rest = cut("ls")
	assert.Equal(t, "ls", head)
	assert.Equal(t, "", rest)
}
