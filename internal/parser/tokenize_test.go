package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTopLevelRespectsQuotesAndParens(t *testing.T) {
	parts := splitTopLevel(`id INT, name VARCHAR(100), note TEXT DEFAULT 'a, b'`, ',')
	assert.Equal(t, []string{"id INT", "name VARCHAR(100)", "note TEXT DEFAULT 'a, b'"}, parts)
}

func TestOuterParens(t *testing.T) {
	inner, ok := outerParens("CREATE TABLE t (id INT, name VARCHAR(10))")
	assert.True(t, ok)
	assert.Equal(t, "id INT, name VARCHAR(10)", inner)
}

func TestOuterParensNoMatch(t *testing.T) {
	_, ok := outerParens("no parens here")
	assert.False(t, ok)
}

func TestFieldsN(t *testing.T) {
	fields := fieldsN("id INT PRIMARY KEY NOT NULL", 3)
	assert.Equal(t, []string{"id", "INT", "PRIMARY KEY NOT NULL"}, fields)
}
