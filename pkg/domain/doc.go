/*
Package domain contains the core value types of the turing editor.

It defines the vocabulary shared by the rule parser and the automaton graph:
the tape Alphabet, head move Directions, the Action performed for a symbol read,
and the RuleTable that maps read symbols to actions. This package is kept pure
and free of external dependencies like I/O or persistence.

# Key Entities

  - Alphabet: the ordered, immutable set of symbols a tape may contain.
  - Direction: the head move after a write (L, R or N).
  - RuleTable: the decoded form of one transition rule string.
  - Hooks: callbacks fired by the editor facade when the graph changes.
  - StateView: a flat, serializable snapshot of one state for renderers.
*/
package domain
