package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rdbms/internal/core"
)

func TestParseLiteralKinds(t *testing.T) {
	assert.True(t, ParseLiteral("null").IsNull())
	assert.Equal(t, core.TextValue("hi"), ParseLiteral("'hi'"))
	assert.Equal(t, core.TextValue("hi"), ParseLiteral(`"hi"`))
	assert.Equal(t, core.BoolValue(true), ParseLiteral("TRUE"))
	assert.Equal(t, core.IntValue(42), ParseLiteral("42"))
	assert.Equal(t, core.FloatValue(4.5), ParseLiteral("4.5"))
	assert.Equal(t, core.TextValue("abc"), ParseLiteral("abc"))
}

func TestParseLiteralDoesNotUnescapeDoubledQuotes(t *testing.T) {
	// Known quirk (spec §9): '' inside a single-quoted literal is not
	// unescaped to a single quote.
	assert.Equal(t, core.TextValue("O''Brien"), ParseLiteral("'O''Brien'"))
}
