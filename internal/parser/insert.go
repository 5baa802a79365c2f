package parser

import (
	"fmt"
	"regexp"
	"strings"

	"rdbms/internal/rdbmserr"
)

// insertRe matches both accepted shapes: `INSERT INTO t VALUES (...)`
// and `INSERT INTO t (col, ...) VALUES (...)`.
var insertRe = regexp.MustCompile(`(?is)^INSERT\s+INTO\s+(\S+)\s*(\(.*?\))?\s*VALUES\s*(\(.*\))\s*$`)

func parseInsert(stmt string) (Plan, error) {
	m := insertRe.FindStringSubmatch(stmt)
	if m == nil {
		return Plan{}, fmt.Errorf("invalid insert syntax: %w", rdbmserr.ErrSyntax)
	}
	table := m[1]
	colList := strings.TrimSpace(m[2])
	valuesGroup := m[3]

	plan := Plan{Kind: KindInsert, Table: table}

	if colList != "" {
		inner := strings.TrimSuffix(strings.TrimPrefix(colList, "("), ")")
		var cols []string
		for _, c := range splitTopLevel(inner, ',') {
			if c != "" {
				cols = append(cols, c)
			}
		}
		plan.InsertColumns = cols
	}

	valuesInner, ok := outerParens(valuesGroup)
	if !ok {
		return Plan{}, fmt.Errorf("invalid insert syntax: %w", rdbmserr.ErrSyntax)
	}
	for _, tok := range splitTopLevel(valuesInner, ',') {
		plan.Values = append(plan.Values, ParseLiteral(tok))
	}

	return plan, nil
}
