package parser

import (
	"fmt"
	"regexp"
	"strings"

	"rdbms/internal/rdbmserr"
)

// andSplitRe splits a WHERE clause on AND, case-insensitive and
// whitespace-bounded. OR is not supported (spec §4.1).
var andSplitRe = regexp.MustCompile(`(?i)\s+AND\s+`)

// operators is tried longest-match-first so ">=" and "<=" and "!=" are
// recognized before their single-character prefixes.
var operators = []string{">=", "<=", "!=", "=", ">", "<"}

// parseWhere splits a WHERE clause into a Predicate. Each conjunct is
// scanned for the first matching operator (longest first) and yields
// (column, operator, literal). A later conjunct on the same column
// silently overwrites an earlier one (spec §4.1 documented limitation).
func parseWhere(clause string) (Predicate, error) {
	clause = strings.TrimSpace(clause)
	if clause == "" {
		return Predicate{}, nil
	}

	pred := Predicate{}
	for _, conjunct := range andSplitRe.Split(clause, -1) {
		conjunct = strings.TrimSpace(conjunct)
		if conjunct == "" {
			continue
		}
		col, op, lit, err := splitConjunct(conjunct)
		if err != nil {
			return nil, err
		}
		pred[col] = Condition{Op: op, Value: ParseLiteral(lit)}
	}
	return pred, nil
}

func splitConjunct(conjunct string) (col, op, lit string, err error) {
	for _, candidate := range operators {
		if idx := strings.Index(conjunct, candidate); idx >= 0 {
			return strings.TrimSpace(conjunct[:idx]), candidate, strings.TrimSpace(conjunct[idx+len(candidate):]), nil
		}
	}
	return "", "", "", fmt.Errorf("invalid WHERE syntax: %w", rdbmserr.ErrSyntax)
}
