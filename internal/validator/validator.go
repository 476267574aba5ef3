package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/turing/pkg/automaton"
)

// ValidateGraph checks for unreachable states and for reads that more than one
// transition of the same state claims, crawling from start.
// A nil start means the current state, or the first state when none is set.
func ValidateGraph(a *automaton.Automaton, start *automaton.State) error {
	states := a.States()
	if len(states) == 0 {
		return nil
	}
	if start == nil {
		start = a.Current()
	}
	if start == nil {
		start = states[0]
	}
	if !a.Owns(start) {
		return fmt.Errorf("start state %q: %w", start, automaton.ErrForeignState)
	}

	var errors []string

	// 1. Crawler
	visited := make(map[int]bool)
	queue := []*automaton.State{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current.ID()] {
			continue
		}
		visited[current.ID()] = true

		for _, t := range current.Transitions() {
			if !visited[t.Target().ID()] {
				queue = append(queue, t.Target())
			}
		}
	}

	for _, s := range states {
		if !visited[s.ID()] {
			errors = append(errors, fmt.Sprintf("Unreachable state: '%s' (#%d)", s.Name(), s.ID()))
		}
	}

	// 2. Overlapping reads
	alphabet := a.Alphabet()
	for _, s := range states {
		claimed := make(map[rune]int)
		for _, t := range s.Transitions() {
			for _, read := range t.Rules().Reads(alphabet) {
				claimed[read]++
			}
		}
		for _, read := range alphabet.Symbols() {
			if claimed[read] > 1 {
				errors = append(errors, fmt.Sprintf("State '%s' (#%d) reads '%c' on %d transitions", s.Name(), s.ID(), read, claimed[read]))
			}
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("found %d errors:\n- %s", len(errors), strings.Join(errors, "\n- "))
	}

	return nil
}
