package parser

import (
	"fmt"
	"regexp"
	"strings"

	"rdbms/internal/rdbmserr"
)

var updateRe = regexp.MustCompile(`(?is)^UPDATE\s+(\S+)\s+SET\s+(.+?)\s+WHERE\s+(.+)$`)

// parseUpdate requires a WHERE clause; UPDATE without WHERE is rejected
// here (and again, defense in depth, by the executor — spec §9 says do
// not collapse this to one layer).
func parseUpdate(stmt string) (Plan, error) {
	m := updateRe.FindStringSubmatch(stmt)
	if m == nil {
		if strings.Contains(strings.ToUpper(stmt), " SET ") {
			return Plan{}, fmt.Errorf("UPDATE without WHERE clause not allowed for safety: %w", rdbmserr.ErrSafety)
		}
		return Plan{}, fmt.Errorf("invalid update syntax: %w", rdbmserr.ErrSyntax)
	}

	table := m[1]
	assignmentsRaw := m[2]
	whereRaw := m[3]

	var assignments []Assignment
	for _, tok := range splitTopLevel(assignmentsRaw, ',') {
		if tok == "" {
			continue
		}
		eq := strings.SplitN(tok, "=", 2)
		if len(eq) != 2 {
			return Plan{}, fmt.Errorf("invalid update syntax: %w", rdbmserr.ErrSyntax)
		}
		assignments = append(assignments, Assignment{
			Column: strings.TrimSpace(eq[0]),
			Value:  ParseLiteral(eq[1]),
		})
	}

	where, err := parseWhere(whereRaw)
	if err != nil {
		return Plan{}, err
	}

	return Plan{Kind: KindUpdate, Table: table, Assignments: assignments, Where: where}, nil
}
