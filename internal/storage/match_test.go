package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rdbms/internal/core"
	"rdbms/internal/parser"
	"rdbms/internal/rdbmserr"
)

func TestEvalConditionStrictModeMismatch(t *testing.T) {
	ok, err := EvalCondition(core.IntValue(1), parser.Condition{Op: "=", Value: core.TextValue("1")}, true)
	assert.False(t, ok)
	assert.ErrorIs(t, err, rdbmserr.ErrType)
}

func TestEvalConditionLaxModeMismatchJustFailsToMatch(t *testing.T) {
	ok, err := EvalCondition(core.IntValue(1), parser.Condition{Op: "=", Value: core.TextValue("1")}, false)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEvalConditionOrderingOnIncomparableAlwaysErrors(t *testing.T) {
	_, err := EvalCondition(core.IntValue(1), parser.Condition{Op: ">", Value: core.TextValue("a")}, false)
	assert.ErrorIs(t, err, rdbmserr.ErrType)
}

func TestEvalConditionNullNeverMatchesOrdering(t *testing.T) {
	ok, err := EvalCondition(core.Null, parser.Condition{Op: ">", Value: core.IntValue(1)}, false)
	require.NoError(t, err)
	assert.False(t, ok)
}
