package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rdbms/internal/core"
	"rdbms/internal/rdbmserr"
)

func TestParseUpdateBasic(t *testing.T) {
	p := NewParser()
	plan, err := p.Parse("UPDATE products SET name = 'Book AA' WHERE id = 10")
	require.NoError(t, err)
	assert.Equal(t, KindUpdate, plan.Kind)
	require.Len(t, plan.Assignments, 1)
	assert.Equal(t, "name", plan.Assignments[0].Column)
	assert.Equal(t, core.TextValue("Book AA"), plan.Assignments[0].Value)
	assert.Equal(t, core.IntValue(10), plan.Where["id"].Value)
}

func TestParseUpdateMultipleAssignments(t *testing.T) {
	p := NewParser()
	plan, err := p.Parse("UPDATE t SET a = 1, b = 'x' WHERE id = 1")
	require.NoError(t, err)
	require.Len(t, plan.Assignments, 2)
	assert.Equal(t, "b", plan.Assignments[1].Column)
}

func TestParseUpdateWithoutWhereIsSafetyError(t *testing.T) {
	p := NewParser()
	_, err := p.Parse("UPDATE products SET name = 'x'")
	require.Error(t, err)
	assert.ErrorIs(t, err, rdbmserr.ErrSafety)
}
