package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDropTable(t *testing.T) {
	p := NewParser()
	plan, err := p.Parse("DROP TABLE categories")
	require.NoError(t, err)
	assert.Equal(t, KindDropTable, plan.Kind)
	assert.Equal(t, "categories", plan.Table)
}

func TestParseDropTableMissingName(t *testing.T) {
	p := NewParser()
	_, err := p.Parse("DROP TABLE")
	assert.Error(t, err)
}
