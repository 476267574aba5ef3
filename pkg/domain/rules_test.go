package domain_test

import (
	"testing"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestRuleTable_Reads(t *testing.T) {
	table := domain.RuleTable{
		'b': {Write: 'a', Move: domain.Left},
		'_': {Write: '_', Move: domain.NoMove},
		'a': {Write: 'b', Move: domain.Right},
	}

	t.Run("Alphabet Order", func(t *testing.T) {
		got := table.Reads(domain.MustAlphabet("_ab"))
		assert.Equal(t, []rune{'_', 'a', 'b'}, got)
	})

	t.Run("Unknown Symbols Last", func(t *testing.T) {
		got := table.Reads(domain.MustAlphabet("b"))
		assert.Equal(t, []rune{'b', '_', 'a'}, got)
	})

	t.Run("No Alphabet", func(t *testing.T) {
		got := table.Reads(domain.Alphabet{})
		assert.Equal(t, []rune{'_', 'a', 'b'}, got)
	})
}

func TestRuleTable_Clone(t *testing.T) {
	table := domain.RuleTable{'0': {Write: '1', Move: domain.Right}}
	clone := table.Clone()
	clone['1'] = domain.Action{Write: '0', Move: domain.Left}

	assert.Len(t, table, 1)
	act, ok := clone.Lookup('1')
	assert.True(t, ok)
	assert.Equal(t, domain.Left, act.Move)

	assert.Nil(t, domain.RuleTable(nil).Clone())
}
