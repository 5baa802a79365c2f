package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShowTables(t *testing.T) {
	p := NewParser()
	plan, err := p.Parse("SHOW TABLES")
	require.NoError(t, err)
	assert.Equal(t, KindShowTables, plan.Kind)
}

func TestParseDescribe(t *testing.T) {
	p := NewParser()
	plan, err := p.Parse("DESCRIBE products")
	require.NoError(t, err)
	assert.Equal(t, KindDescribe, plan.Kind)
	assert.Equal(t, "products", plan.Table)
}

func TestParseUnrecognizedKeyword(t *testing.T) {
	p := NewParser()
	_, err := p.Parse("FROBNICATE products")
	assert.Error(t, err)
}

func TestParseTrimsTrailingSemicolon(t *testing.T) {
	p := NewParser()
	plan, err := p.Parse("  SHOW TABLES ;  ")
	require.NoError(t, err)
	assert.Equal(t, KindShowTables, plan.Kind)
}
