/*
Package automaton holds the state graph of a Turing machine being edited.

An Automaton owns an ordered list of States and the Alphabet shared by all
rules. Each State owns its outgoing Transitions; a Transition points to its
target state without owning it and carries the RuleTable decoded by package
rule. Transitions are immutable and can only be built from a rule string.

The graph is meant to be driven by a single goroutine (the presentation loop).
None of the types are safe for concurrent mutation.

No execution semantics exist: Current is a bookmark for a future stepper and
is never advanced by any rule.
*/
package automaton
