package automaton

import (
	"fmt"

	"github.com/aretw0/turing/pkg/domain"
)

// Automaton is the aggregate root: it owns the states and the alphabet.
type Automaton struct {
	alphabet domain.Alphabet
	states   []*State
	current  *State
}

// New creates an empty automaton over alphabet with no current state.
func New(alphabet domain.Alphabet) *Automaton {
	return &Automaton{
		alphabet: alphabet,
	}
}

// Alphabet returns the alphabet shared by all rules.
func (a *Automaton) Alphabet() domain.Alphabet {
	return a.alphabet
}

// AddState appends a new state with an empty transition list.
// Names are not required to be unique. Position defaults to the origin.
func (a *Automaton) AddState(name string, pos ...domain.Position) *State {
	s := &State{
		id:          len(a.states),
		name:        name,
		transitions: make([]*Transition, 0),
		owner:       a,
	}
	if len(pos) > 0 {
		s.position = pos[0]
	}
	a.states = append(a.states, s)
	return s
}

// States returns the states in creation order.
func (a *Automaton) States() []*State {
	out := make([]*State, len(a.states))
	copy(out, a.states)
	return out
}

// Len returns the number of states.
func (a *Automaton) Len() int {
	return len(a.states)
}

// Lookup returns the state with the given id.
func (a *Automaton) Lookup(id int) (*State, bool) {
	if id < 0 || id >= len(a.states) {
		return nil, false
	}
	return a.states[id], true
}

// Find returns every state named name, in creation order.
func (a *Automaton) Find(name string) []*State {
	var found []*State
	for _, s := range a.states {
		if s.name == name {
			found = append(found, s)
		}
	}
	return found
}

// Owns reports whether s was created by this automaton.
func (a *Automaton) Owns(s *State) bool {
	return s != nil && s.owner == a
}

// Connect attaches a transition from -> to parsed with the automaton's alphabet.
// Both states must be owned by a.
func (a *Automaton) Connect(from, to *State, input string) (*Transition, error) {
	if !a.Owns(from) {
		return nil, fmt.Errorf("source %q: %w", from, ErrForeignState)
	}
	if !a.Owns(to) {
		return nil, fmt.Errorf("target %q: %w", to, ErrForeignState)
	}
	return from.AddTransition(to, input, a.alphabet)
}

// Current returns the active state, or nil when unset.
func (a *Automaton) Current() *State {
	return a.current
}

// SetCurrent marks s as the active state. A nil s clears it.
func (a *Automaton) SetCurrent(s *State) error {
	if s != nil && !a.Owns(s) {
		return fmt.Errorf("current %q: %w", s, ErrForeignState)
	}
	a.current = s
	return nil
}
