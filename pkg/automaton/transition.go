package automaton

import (
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/rule"
)

// Transition is one outgoing edge of the state it is attached to.
type Transition struct {
	target *State
	rules  domain.RuleTable
	source string
}

// NewTransition parses input against alphabet and returns a transition to target.
// On a grammar mismatch it returns a *rule.ParseError and no transition.
func NewTransition(target *State, input string, alphabet domain.Alphabet) (*Transition, error) {
	table, err := rule.Parse(input, alphabet)
	if err != nil {
		return nil, err
	}
	return &Transition{
		target: target,
		rules:  table,
		source: input,
	}, nil
}

// Target returns the destination state.
func (t *Transition) Target() *State {
	return t.target
}

// Rules returns a copy of the rule table.
func (t *Transition) Rules() domain.RuleTable {
	return t.rules.Clone()
}

// Lookup returns the action for the symbol read.
func (t *Transition) Lookup(read rune) (domain.Action, bool) {
	return t.rules.Lookup(read)
}

// Rule returns the rule string the transition was parsed from.
func (t *Transition) Rule() string {
	return t.source
}
