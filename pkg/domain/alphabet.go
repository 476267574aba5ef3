package domain

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Separators are the characters reserved by the rule grammar.
// They can never be tape symbols.
const Separators = "/,|"

// Alphabet is the ordered set of symbols a machine may read or write.
// The zero value is an empty alphabet, which rejects every symbol.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// NewAlphabet builds an alphabet from a string where every character is one symbol.
// The order of the string is preserved.
func NewAlphabet(symbols string) (Alphabet, error) {
	if symbols == "" {
		return Alphabet{}, fmt.Errorf("%w: no symbols", ErrInvalidAlphabet)
	}
	if !utf8.ValidString(symbols) {
		return Alphabet{}, fmt.Errorf("%w: not valid UTF-8", ErrInvalidAlphabet)
	}

	a := Alphabet{
		symbols: make([]rune, 0, utf8.RuneCountInString(symbols)),
		index:   make(map[rune]int),
	}
	for _, r := range symbols {
		switch {
		case unicode.IsSpace(r):
			return Alphabet{}, fmt.Errorf("%w: whitespace is not a symbol", ErrInvalidAlphabet)
		case strings.ContainsRune(Separators, r):
			return Alphabet{}, fmt.Errorf("%w: %q is a rule separator", ErrInvalidAlphabet, r)
		}
		if _, dup := a.index[r]; dup {
			return Alphabet{}, fmt.Errorf("%w: duplicate symbol %q", ErrInvalidAlphabet, r)
		}
		a.index[r] = len(a.symbols)
		a.symbols = append(a.symbols, r)
	}
	return a, nil
}

// MustAlphabet is like NewAlphabet but panics on error.
// Intended for tests and package-level variables.
func MustAlphabet(symbols string) Alphabet {
	a, err := NewAlphabet(symbols)
	if err != nil {
		panic(err)
	}
	return a
}

// Contains reports whether r is a symbol of the alphabet.
func (a Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// Index returns the position of r in the alphabet, or -1.
func (a Alphabet) Index(r rune) int {
	if i, ok := a.index[r]; ok {
		return i
	}
	return -1
}

// Symbols returns a copy of the symbols in alphabet order.
func (a Alphabet) Symbols() []rune {
	out := make([]rune, len(a.symbols))
	copy(out, a.symbols)
	return out
}

// Len returns the number of symbols.
func (a Alphabet) Len() int {
	return len(a.symbols)
}

// IsZero reports whether the alphabet has no symbols.
func (a Alphabet) IsZero() bool {
	return len(a.symbols) == 0
}

func (a Alphabet) String() string {
	return string(a.symbols)
}
