package parser

import (
	"fmt"
	"regexp"
	"strings"

	"rdbms/internal/rdbmserr"
)

var deleteRe = regexp.MustCompile(`(?is)^DELETE\s+FROM\s+(\S+)\s+WHERE\s+(.+)$`)

// parseDelete requires a WHERE clause (spec §4.1).
func parseDelete(stmt string) (Plan, error) {
	m := deleteRe.FindStringSubmatch(stmt)
	if m == nil {
		if regexp.MustCompile(`(?is)^DELETE\s+FROM\s+\S+\s*$`).MatchString(stmt) {
			return Plan{}, fmt.Errorf("DELETE without WHERE clause not allowed for safety: %w", rdbmserr.ErrSafety)
		}
		return Plan{}, fmt.Errorf("invalid delete syntax: %w", rdbmserr.ErrSyntax)
	}

	where, err := parseWhere(strings.TrimSpace(m[2]))
	if err != nil {
		return Plan{}, err
	}
	return Plan{Kind: KindDelete, Table: m[1], Where: where}, nil
}
