package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColumnTypeVarchar(t *testing.T) {
	ct, err := ParseColumnType("VARCHAR(100)")
	require.NoError(t, err)
	assert.Equal(t, "VARCHAR", ct.Name)
	assert.Equal(t, 100, ct.Varchar)
	assert.Equal(t, "VARCHAR(100)", ct.String())
}

func TestParseColumnTypeRejectsMalformedVarchar(t *testing.T) {
	_, err := ParseColumnType("VARCHAR")
	assert.Error(t, err)

	_, err = ParseColumnType("VARCHAR(0)")
	assert.Error(t, err)
}

func TestParseColumnTypeUnknown(t *testing.T) {
	_, err := ParseColumnType("JSONB")
	assert.Error(t, err)
}

func TestColumnDefNormalizePrimaryKeyWins(t *testing.T) {
	c := ColumnDef{Name: "id", Type: ColumnType{Name: "INT"}, PrimaryKey: true, Unique: true}
	c.Normalize()
	assert.True(t, c.NotNull)
	assert.False(t, c.Unique)
}

func TestColumnDefConstraintsString(t *testing.T) {
	pk := ColumnDef{PrimaryKey: true, NotNull: true}
	assert.Equal(t, "PRIMARY KEY, NOT NULL", pk.ConstraintsString())

	unique := ColumnDef{Unique: true}
	assert.Equal(t, "UNIQUE", unique.ConstraintsString())

	plain := ColumnDef{}
	assert.Equal(t, "", plain.ConstraintsString())
}
