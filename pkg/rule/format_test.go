package rule_test

import (
	"testing"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	table, err := rule.Parse("1/0,L | 0/1,R", binary)
	require.NoError(t, err)

	got := rule.Format(table, binary)
	assert.Equal(t, "0/1,R | 1/0,L", got)

	again, err := rule.Parse(got, binary)
	require.NoError(t, err)
	assert.Equal(t, table, again)
}

func TestFormat_Empty(t *testing.T) {
	assert.Equal(t, "", rule.Format(domain.RuleTable{}, binary))
}
