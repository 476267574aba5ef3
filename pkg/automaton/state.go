package automaton

import (
	"github.com/aretw0/turing/pkg/domain"
)

// State is one control state of the machine.
type State struct {
	id          int
	name        string
	position    domain.Position
	transitions []*Transition
	owner       *Automaton
}

// ID returns the sequence number assigned by the owning automaton.
// It is the identity of the state; names may collide.
func (s *State) ID() int {
	return s.id
}

// Name returns the display label.
func (s *State) Name() string {
	return s.name
}

// Position returns the layout coordinate.
func (s *State) Position() domain.Position {
	return s.position
}

// Transitions returns the outgoing transitions in insertion order.
// The returned slice is a copy; the transitions themselves are immutable.
func (s *State) Transitions() []*Transition {
	out := make([]*Transition, len(s.transitions))
	copy(out, s.transitions)
	return out
}

// AddTransition parses input and, on success, appends a transition to target.
// On failure the transition list is left untouched and the *rule.ParseError is returned.
func (s *State) AddTransition(target *State, input string, alphabet domain.Alphabet) (*Transition, error) {
	t, err := NewTransition(target, input, alphabet)
	if err != nil {
		return nil, err
	}
	s.transitions = append(s.transitions, t)
	return t, nil
}

func (s *State) String() string {
	return s.name
}
