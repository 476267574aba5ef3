package testutils

import (
	"os"
	"testing"

	"github.com/aretw0/turing/pkg/automaton"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/stretchr/testify/require"
)

// Alphabet builds an alphabet from symbols.
// It fails the test immediately on error.
func Alphabet(t *testing.T, symbols string) domain.Alphabet {
	t.Helper()

	a, err := domain.NewAlphabet(symbols)
	require.NoError(t, err, "Failed to build alphabet %q", symbols)
	return a
}

// Inverter builds the two-state automaton over "01" used across tests:
// q0 goes to q1 on "0/1,R | 1/0,L" and q1 loops on "0/0,N | 1/1,N".
func Inverter(t *testing.T) (*automaton.Automaton, *automaton.State, *automaton.State) {
	t.Helper()

	a := automaton.New(Alphabet(t, "01"))
	q0 := a.AddState("q0", domain.Position{X: 100, Y: 100})
	q1 := a.AddState("q1", domain.Position{X: 300, Y: 100})

	_, err := a.Connect(q0, q1, "0/1,R | 1/0,L")
	require.NoError(t, err, "Failed to connect q0 -> q1")
	_, err = a.Connect(q1, q1, "0/0,N | 1/1,N")
	require.NoError(t, err, "Failed to connect q1 -> q1")

	return a, q0, q1
}

// Chdir changes the working directory to dir for the duration of the test,
// restoring the previous directory on cleanup (equivalent to testing.T.Chdir
// on Go 1.24+).
func Chdir(t *testing.T, dir string) {
	t.Helper()

	prev, err := os.Getwd()
	require.NoError(t, err, "Failed to get working directory")
	require.NoError(t, os.Chdir(dir), "Failed to chdir to %q", dir)
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("Failed to restore working directory %q: %v", prev, err)
		}
	})
}
