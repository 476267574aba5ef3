package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aretw0/turing/internal/config"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/rule"
	"gopkg.in/yaml.v3"
)

// parsedClause is the encoded form of one clause.
type parsedClause struct {
	Read  string `json:"read" yaml:"read"`
	Write string `json:"write" yaml:"write"`
	Move  string `json:"move" yaml:"move"`
}

// RunParse parses one rule string and writes its table to w in the given format.
func RunParse(w io.Writer, input, alphabet, format string) error {
	a, err := domain.NewAlphabet(alphabet)
	if err != nil {
		return err
	}

	table, err := rule.Parse(input, a)
	if err != nil {
		return err
	}

	clauses := make([]parsedClause, 0, len(table))
	for _, read := range table.Reads(a) {
		act := table[read]
		clauses = append(clauses, parsedClause{
			Read:  string(read),
			Write: string(act.Write),
			Move:  act.Move.Name(),
		})
	}

	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(clauses)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(clauses); err != nil {
			return err
		}
		return enc.Close()
	case config.OutputText, "":
		for _, c := range clauses {
			if _, err := fmt.Fprintf(w, "%s -> write %s, move %s\n", c.Read, c.Write, c.Move); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("unknown output format %q", format)
}
