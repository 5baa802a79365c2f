package parser

import (
	"fmt"
	"strings"

	"rdbms/internal/rdbmserr"
)

// Parser converts SQL text into a Plan.
type Parser struct {
	// defaultVarcharLimit is applied when a CREATE TABLE column
	// declares a bare VARCHAR with no (n). Spec §3 otherwise requires
	// n >= 1 and the parser fails closed; engine.toml's
	// default_varchar_limit (SPEC_FULL.md) lets a caller opt into a
	// fallback instead. Zero preserves the fail-closed behavior.
	defaultVarcharLimit int
}

// NewParser returns a ready-to-use Parser with no VARCHAR fallback
// (bare VARCHAR is a syntax error, matching spec §3 exactly).
func NewParser() *Parser {
	return &Parser{}
}

// NewParserWithDefaults returns a Parser that fills in a bare VARCHAR's
// missing length with defaultVarcharLimit instead of failing, per
// engine.toml's default_varchar_limit setting.
func NewParserWithDefaults(defaultVarcharLimit int) *Parser {
	return &Parser{defaultVarcharLimit: defaultVarcharLimit}
}

// Parse accepts a single statement with an optional trailing ';', trims
// whitespace, and dispatches on the first uppercased keyword (spec
// §4.1). Keyword matching is case-insensitive; identifiers inside the
// statement are preserved verbatim.
func (p *Parser) Parse(sql string) (Plan, error) {
	stmt := strings.TrimSpace(sql)
	stmt = strings.TrimSuffix(strings.TrimSpace(stmt), ";")
	stmt = strings.TrimSpace(stmt)
	if stmt == "" {
		return Plan{}, fmt.Errorf("empty statement: %w", rdbmserr.ErrSyntax)
	}

	keyword := firstWord(stmt)
	switch strings.ToUpper(keyword) {
	case "CREATE":
		return p.parseCreateTable(stmt)
	case "INSERT":
		return parseInsert(stmt)
	case "SELECT":
		return parseSelect(stmt)
	case "UPDATE":
		return parseUpdate(stmt)
	case "DELETE":
		return parseDelete(stmt)
	case "SHOW":
		return parseShowTables(stmt)
	case "DESCRIBE":
		return parseDescribe(stmt)
	case "DROP":
		return parseDropTable(stmt)
	default:
		return Plan{}, fmt.Errorf("invalid statement syntax: unrecognized keyword %q: %w", keyword, rdbmserr.ErrSyntax)
	}
}

func firstWord(s string) string {
	i := strings.IndexAny(s, " \t\n(")
	if i < 0 {
		return s
	}
	return s[:i]
}
