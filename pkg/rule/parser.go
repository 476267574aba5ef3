package rule

import (
	"strconv"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

// Clause is one read/write,direction unit of a rule string.
type Clause struct {
	Read   rune
	Write  rune
	Move   domain.Direction
	Offset int // Byte offset of the clause in the rule string
}

// Clauses validates input against the grammar and returns its clauses in the
// order they were written. A read symbol may appear only once.
func Clauses(input string, alphabet domain.Alphabet) ([]Clause, error) {
	if strings.TrimSpace(input) == "" {
		return nil, &ParseError{Input: input, Err: ErrEmptyRule}
	}

	s := &scanner{src: input, clause: 1}
	seen := make(map[rune]int)
	var clauses []Clause

	for {
		start := s.pos

		read, err := s.symbol(alphabet)
		if err != nil {
			return nil, err
		}
		if err := s.expect('/'); err != nil {
			return nil, err
		}
		write, err := s.symbol(alphabet)
		if err != nil {
			return nil, err
		}
		if err := s.expect(','); err != nil {
			return nil, err
		}
		move, err := s.direction()
		if err != nil {
			return nil, err
		}

		if prev, dup := seen[read]; dup {
			return nil, &ParseError{
				Input:  input,
				Clause: s.clause,
				Offset: start,
				Got:    describe(read) + " already read by clause " + strconv.Itoa(prev),
				Err:    ErrDuplicateRead,
			}
		}
		seen[read] = s.clause
		clauses = append(clauses, Clause{Read: read, Write: write, Move: move, Offset: start})

		more, err := s.separator()
		if err != nil {
			return nil, err
		}
		if !more {
			return clauses, nil
		}
	}
}

// Parse validates input against the grammar and decodes it into a rule table
// keyed by the symbol read. Nothing is returned unless the whole string is valid.
func Parse(input string, alphabet domain.Alphabet) (domain.RuleTable, error) {
	clauses, err := Clauses(input, alphabet)
	if err != nil {
		return nil, err
	}

	table := make(domain.RuleTable, len(clauses))
	for _, c := range clauses {
		table[c.Read] = domain.Action{Write: c.Write, Move: c.Move}
	}
	return table, nil
}

// Format renders a rule table back into a rule string.
// Clauses are ordered by the position of the read symbol in alphabet.
func Format(table domain.RuleTable, alphabet domain.Alphabet) string {
	parts := make([]string, 0, len(table))
	for _, read := range table.Reads(alphabet) {
		act := table[read]
		parts = append(parts, string(read)+"/"+string(act.Write)+","+act.Move.String())
	}
	return strings.Join(parts, ClauseSeparator)
}
