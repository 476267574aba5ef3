package automaton

import "errors"

// ErrForeignState is returned when a state owned by another automaton
// (or not owned at all) is used where an owned state is required.
var ErrForeignState = errors.New("state does not belong to this automaton")
