package rule

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aretw0/turing/pkg/domain"
)

// ClauseSeparator joins clauses in a rule string.
const ClauseSeparator = " | "

// scanner walks a rule string one rune at a time.
type scanner struct {
	src    string
	pos    int // current byte offset
	clause int // current clause, 1-based
}

func (s *scanner) atEnd() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peek() (rune, int) {
	if s.atEnd() {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(s.src[s.pos:])
}

func (s *scanner) fail(reason error, expected, got string) *ParseError {
	return &ParseError{
		Input:    s.src,
		Clause:   s.clause,
		Offset:   s.pos,
		Expected: expected,
		Got:      got,
		Err:      reason,
	}
}

// describe renders a rune for error messages.
func describe(r rune) string {
	if r == ' ' {
		return "space"
	}
	return fmt.Sprintf("%q", r)
}

// symbol consumes one alphabet symbol.
func (s *scanner) symbol(alphabet domain.Alphabet) (rune, error) {
	if s.atEnd() {
		return 0, s.fail(ErrUnexpectedEnd, "symbol", "end of input")
	}
	r, size := s.peek()
	if r == utf8.RuneError && size <= 1 {
		return 0, s.fail(ErrUnexpectedChar, "symbol", "invalid UTF-8")
	}
	if strings.ContainsRune(domain.Separators, r) || unicode.IsSpace(r) {
		return 0, s.fail(ErrUnexpectedChar, "symbol", describe(r))
	}
	if !alphabet.Contains(r) {
		return 0, s.fail(ErrUnknownSymbol, "", fmt.Sprintf("%q not in %q", r, alphabet.String()))
	}
	s.pos += size
	return r, nil
}

// expect consumes the literal separator want.
func (s *scanner) expect(want rune) error {
	if s.atEnd() {
		return s.fail(ErrUnexpectedEnd, describe(want), "end of input")
	}
	r, size := s.peek()
	if r != want {
		return s.fail(ErrUnexpectedChar, describe(want), describe(r))
	}
	s.pos += size
	return nil
}

// direction consumes one of L, R or N.
func (s *scanner) direction() (domain.Direction, error) {
	if s.atEnd() {
		return 0, s.fail(ErrUnexpectedEnd, "direction (L, R or N)", "end of input")
	}
	r, size := s.peek()
	d := domain.Direction(r)
	if r >= utf8.RuneSelf || !d.Valid() {
		return 0, s.fail(ErrInvalidDirection, "L, R or N", describe(r))
	}
	s.pos += size
	return d, nil
}

// separator consumes a clause separator if one follows.
// Anything else left in the input is trailing garbage.
func (s *scanner) separator() (bool, error) {
	if s.atEnd() {
		return false, nil
	}
	if strings.HasPrefix(s.src[s.pos:], ClauseSeparator) {
		s.pos += len(ClauseSeparator)
		s.clause++
		return true, nil
	}
	return false, s.fail(ErrTrailingInput, fmt.Sprintf("%q or end of input", ClauseSeparator), fmt.Sprintf("%q", s.src[s.pos:]))
}

