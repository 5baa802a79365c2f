package parser

import (
	"strconv"
	"strings"

	"rdbms/internal/core"
)

// ParseLiteral converts a single token — from a VALUES tuple or a
// predicate right-hand side — into a Value, per spec §4.1: NULL (any
// case) -> Null; quoted -> Text with the outermost matching quote pair
// stripped; TRUE/FALSE -> Bool; otherwise int, then float, then a bare
// Text fallback.
//
// Known quirk (spec §9, deliberately preserved): a doubled single quote
// inside a single-quoted literal is not unescaped to a single quote.
func ParseLiteral(tok string) core.Value {
	tok = strings.TrimSpace(tok)

	if strings.EqualFold(tok, "NULL") {
		return core.Null
	}
	if len(tok) >= 2 {
		if (tok[0] == '\'' && tok[len(tok)-1] == '\'') || (tok[0] == '"' && tok[len(tok)-1] == '"') {
			return core.TextValue(tok[1 : len(tok)-1])
		}
	}
	if strings.EqualFold(tok, "TRUE") {
		return core.BoolValue(true)
	}
	if strings.EqualFold(tok, "FALSE") {
		return core.BoolValue(false)
	}
	if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return core.IntValue(i)
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return core.FloatValue(f)
	}
	return core.TextValue(tok)
}
