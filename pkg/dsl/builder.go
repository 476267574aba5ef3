package dsl

import (
	"errors"
	"fmt"

	"github.com/aretw0/turing/pkg/automaton"
	"github.com/aretw0/turing/pkg/domain"
)

var (
	// ErrUnknownTarget is returned when a transition names a state that was never added.
	ErrUnknownTarget = errors.New("unknown target state")
	// ErrMultipleCurrent is returned when more than one state is marked as current.
	ErrMultipleCurrent = errors.New("more than one current state")
)

// Builder manages the graph construction.
type Builder struct {
	alphabet string
	states   []*StateBuilder
	byName   map[string]*StateBuilder
}

// New creates a new graph builder over the given alphabet.
func New(alphabet string) *Builder {
	return &Builder{
		alphabet: alphabet,
		byName:   make(map[string]*StateBuilder),
	}
}

// Add declares a state.
// If the state already exists, it returns the existing builder.
func (b *Builder) Add(name string) *StateBuilder {
	if sb, ok := b.byName[name]; ok {
		return sb
	}
	sb := &StateBuilder{
		name:    name,
		builder: b,
	}
	b.states = append(b.states, sb)
	b.byName[name] = sb
	return sb
}

// Build creates the automaton. Every invalid rule and unknown target is
// reported; the returned error matches the underlying causes with errors.Is.
func (b *Builder) Build() (*automaton.Automaton, error) {
	alphabet, err := domain.NewAlphabet(b.alphabet)
	if err != nil {
		return nil, err
	}

	a := automaton.New(alphabet)
	states := make(map[string]*automaton.State, len(b.states))
	var current []string
	for _, sb := range b.states {
		states[sb.name] = a.AddState(sb.name, sb.position)
		if sb.current {
			current = append(current, sb.name)
		}
	}

	var errs []error
	for _, sb := range b.states {
		from := states[sb.name]
		for _, e := range sb.edges {
			to, ok := states[e.target]
			if !ok {
				errs = append(errs, fmt.Errorf("state %q: %w %q", sb.name, ErrUnknownTarget, e.target))
				continue
			}
			if _, err := a.Connect(from, to, e.rule); err != nil {
				errs = append(errs, fmt.Errorf("state %q: %w", sb.name, err))
			}
		}
	}

	switch len(current) {
	case 0:
	case 1:
		if err := a.SetCurrent(states[current[0]]); err != nil {
			errs = append(errs, err)
		}
	default:
		errs = append(errs, fmt.Errorf("%w: %v", ErrMultipleCurrent, current))
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("failed to build automaton: %w", errors.Join(errs...))
	}
	return a, nil
}
