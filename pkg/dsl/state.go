package dsl

import (
	"github.com/aretw0/turing/pkg/automaton"
	"github.com/aretw0/turing/pkg/domain"
)

type edge struct {
	target string
	rule   string
}

// StateBuilder provides a fluent API for configuring a state.
type StateBuilder struct {
	name     string
	position domain.Position
	edges    []edge
	current  bool
	builder  *Builder
}

// At sets the presentation position of the state.
func (s *StateBuilder) At(x, y float64) *StateBuilder {
	s.position = domain.Position{X: x, Y: y}
	return s
}

// On adds a transition to the target state carrying the given rule string.
func (s *StateBuilder) On(target, rule string) *StateBuilder {
	s.edges = append(s.edges, edge{target: target, rule: rule})
	return s
}

// Current marks the state as the automaton's current state.
func (s *StateBuilder) Current() *StateBuilder {
	s.current = true
	return s
}

// Add declares another state on the same builder, for chaining.
func (s *StateBuilder) Add(name string) *StateBuilder {
	return s.builder.Add(name)
}

// Build builds the whole automaton this state belongs to.
func (s *StateBuilder) Build() (*automaton.Automaton, error) {
	return s.builder.Build()
}
