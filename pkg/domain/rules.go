package domain

import (
	"encoding/json"
	"fmt"
	"slices"
	"unicode/utf8"
)

// Action is what the machine does after reading a symbol:
// write a symbol, then move the head.
type Action struct {
	Write rune      `json:"write" yaml:"write"`
	Move  Direction `json:"move" yaml:"move"`
}

// actionText is the encoded form of an Action: symbols travel as strings.
type actionText struct {
	Write string    `json:"write" yaml:"write"`
	Move  Direction `json:"move" yaml:"move"`
}

func (a Action) text() actionText {
	return actionText{Write: string(a.Write), Move: a.Move}
}

func (a *Action) fromText(t actionText) error {
	r, size := utf8.DecodeRuneInString(t.Write)
	if size == 0 || size != len(t.Write) || r == utf8.RuneError {
		return fmt.Errorf("%w: write %q is not a single character", ErrInvalidSymbol, t.Write)
	}
	a.Write = r
	a.Move = t.Move
	return nil
}

// MarshalJSON writes the symbol as a one-character string.
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.text())
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Action) UnmarshalJSON(data []byte) error {
	var t actionText
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	return a.fromText(t)
}

// MarshalYAML writes the symbol as a one-character string.
func (a Action) MarshalYAML() (any, error) {
	return a.text(), nil
}

// UnmarshalYAML implements the yaml.v3 function-based unmarshaler.
func (a *Action) UnmarshalYAML(unmarshal func(any) error) error {
	var t actionText
	if err := unmarshal(&t); err != nil {
		return err
	}
	return a.fromText(t)
}

// RuleTable maps the symbol read to the action to perform.
// It is the decoded form of a single transition rule string.
type RuleTable map[rune]Action

// Lookup returns the action registered for read.
func (t RuleTable) Lookup(read rune) (Action, bool) {
	act, ok := t[read]
	return act, ok
}

// Clone returns an independent copy of the table.
func (t RuleTable) Clone() RuleTable {
	if t == nil {
		return nil
	}
	out := make(RuleTable, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Reads returns the read symbols of the table.
// Symbols are ordered by their position in alphabet; when the alphabet is
// empty (or a symbol is unknown to it) the rune value decides.
func (t RuleTable) Reads(alphabet Alphabet) []rune {
	reads := make([]rune, 0, len(t))
	for r := range t {
		reads = append(reads, r)
	}
	slices.SortFunc(reads, func(a, b rune) int {
		ia, ib := alphabet.Index(a), alphabet.Index(b)
		if ia >= 0 && ib >= 0 {
			return ia - ib
		}
		if ia != ib {
			// Known symbols sort before unknown ones.
			return ib - ia
		}
		return int(a) - int(b)
	})
	return reads
}
