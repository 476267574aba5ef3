package automaton_test

import (
	"testing"

	"github.com/aretw0/turing/pkg/automaton"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBinary(t *testing.T) *automaton.Automaton {
	t.Helper()
	alphabet, err := domain.NewAlphabet("01")
	require.NoError(t, err)
	return automaton.New(alphabet)
}

func TestNew_Empty(t *testing.T) {
	a := newBinary(t)

	assert.Empty(t, a.States())
	assert.Nil(t, a.Current())
	assert.Equal(t, "01", a.Alphabet().String())
}

func TestAddState_DistinctIdentity(t *testing.T) {
	a := newBinary(t)

	const n = 5
	created := make([]*automaton.State, 0, n)
	for i := 0; i < n; i++ {
		created = append(created, a.AddState("q"))
	}

	states := a.States()
	require.Len(t, states, n)
	for i := range states {
		assert.Same(t, created[i], states[i])
		assert.Equal(t, i, states[i].ID())
		for j := i + 1; j < n; j++ {
			assert.NotSame(t, states[i], states[j])
		}
	}
	assert.Len(t, a.Find("q"), n)
}

func TestAddState_Position(t *testing.T) {
	a := newBinary(t)

	at := a.AddState("q0", domain.Position{X: 12, Y: 34})
	origin := a.AddState("q1")

	assert.Equal(t, domain.Position{X: 12, Y: 34}, at.Position())
	assert.Equal(t, domain.Position{}, origin.Position())
}

func TestAddState_IndependentTransitionLists(t *testing.T) {
	a := newBinary(t)
	q0 := a.AddState("q0")
	q1 := a.AddState("q1")

	_, err := q0.AddTransition(q1, "0/1,R", a.Alphabet())
	require.NoError(t, err)

	assert.Len(t, q0.Transitions(), 1)
	assert.Empty(t, q1.Transitions(), "states must not share transition storage")
}

func TestAddTransition_EndToEnd(t *testing.T) {
	a := newBinary(t)
	q0 := a.AddState("q0")
	q1 := a.AddState("q1")

	tr, err := q0.AddTransition(q1, "0/1,R | 1/0,L", a.Alphabet())
	require.NoError(t, err)

	transitions := q0.Transitions()
	require.Len(t, transitions, 1)
	assert.Same(t, tr, transitions[0])
	assert.Same(t, q1, tr.Target())
	assert.Equal(t, "0/1,R | 1/0,L", tr.Rule())
	assert.Equal(t, domain.RuleTable{
		'0': {Write: '1', Move: domain.Right},
		'1': {Write: '0', Move: domain.Left},
	}, tr.Rules())
}

func TestAddTransition_FailureLeavesStateUnchanged(t *testing.T) {
	a := newBinary(t)
	q0 := a.AddState("q0")
	q1 := a.AddState("q1")

	tr, err := q0.AddTransition(q1, "2/1,R", a.Alphabet())
	require.Error(t, err)
	assert.Nil(t, tr)
	assert.ErrorIs(t, err, rule.ErrUnknownSymbol)

	var perr *rule.ParseError
	assert.ErrorAs(t, err, &perr)
	assert.Empty(t, q0.Transitions())

	_, err = q0.AddTransition(q1, "0/1,R", a.Alphabet())
	require.NoError(t, err)
	_, err = q0.AddTransition(q1, "0/1,L | 0/0,R", a.Alphabet())
	require.Error(t, err)
	assert.Len(t, q0.Transitions(), 1)
}

func TestAddTransition_SelfLoop(t *testing.T) {
	a := newBinary(t)
	q0 := a.AddState("q0")

	tr, err := q0.AddTransition(q0, "0/0,N", a.Alphabet())
	require.NoError(t, err)
	assert.Same(t, q0, tr.Target())
}

func TestTransition_RulesIsACopy(t *testing.T) {
	a := newBinary(t)
	q0 := a.AddState("q0")

	tr, err := q0.AddTransition(q0, "0/1,R", a.Alphabet())
	require.NoError(t, err)

	rules := tr.Rules()
	rules['1'] = domain.Action{Write: '1', Move: domain.Left}

	_, ok := tr.Lookup('1')
	assert.False(t, ok)
	act, ok := tr.Lookup('0')
	assert.True(t, ok)
	assert.Equal(t, domain.Action{Write: '1', Move: domain.Right}, act)
}

func TestStates_ReturnsCopy(t *testing.T) {
	a := newBinary(t)
	a.AddState("q0")

	states := a.States()
	states[0] = nil

	assert.NotNil(t, a.States()[0])
}

func TestConnect(t *testing.T) {
	a := newBinary(t)
	other := newBinary(t)
	q0 := a.AddState("q0")
	q1 := a.AddState("q1")
	stranger := other.AddState("x")

	_, err := a.Connect(q0, q1, "1/1,N")
	require.NoError(t, err)

	_, err = a.Connect(q0, stranger, "1/1,N")
	assert.ErrorIs(t, err, automaton.ErrForeignState)
	_, err = a.Connect(stranger, q0, "1/1,N")
	assert.ErrorIs(t, err, automaton.ErrForeignState)

	_, err = a.Connect(q0, q1, "")
	assert.ErrorIs(t, err, rule.ErrEmptyRule)
	assert.Len(t, q0.Transitions(), 1)
}

func TestSetCurrent(t *testing.T) {
	a := newBinary(t)
	other := newBinary(t)
	q0 := a.AddState("q0")

	require.NoError(t, a.SetCurrent(q0))
	assert.Same(t, q0, a.Current())

	err := a.SetCurrent(other.AddState("x"))
	assert.ErrorIs(t, err, automaton.ErrForeignState)
	assert.Same(t, q0, a.Current(), "invalid SetCurrent must not change the current state")

	require.NoError(t, a.SetCurrent(nil))
	assert.Nil(t, a.Current())
}

func TestLookup(t *testing.T) {
	a := newBinary(t)
	q0 := a.AddState("q0")

	got, ok := a.Lookup(0)
	assert.True(t, ok)
	assert.Same(t, q0, got)

	_, ok = a.Lookup(1)
	assert.False(t, ok)
	_, ok = a.Lookup(-1)
	assert.False(t, ok)
}
