/*
Package dsl provides a Go DSL for declaring automata in code.

States are referenced by name, so a graph can be written top to bottom without
holding *automaton.State values. Build creates the states in declaration order,
then attaches every transition, so a state may point at one declared later.

Example usage:

	b := dsl.New("01")

	b.Add("q0").
		At(100, 100).
		On("q1", "0/1,R | 1/0,L").
		Current()

	b.Add("q1").
		At(300, 100)

	a, err := b.Build()
*/
package dsl
