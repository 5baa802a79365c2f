package parser

import (
	"fmt"
	"regexp"

	"rdbms/internal/rdbmserr"
)

var (
	showTablesRe = regexp.MustCompile(`(?is)^SHOW\s+TABLES\s*$`)
	describeRe   = regexp.MustCompile(`(?is)^DESCRIBE\s+(\S+)\s*$`)
)

func parseShowTables(stmt string) (Plan, error) {
	if !showTablesRe.MatchString(stmt) {
		return Plan{}, fmt.Errorf("invalid show syntax: %w", rdbmserr.ErrSyntax)
	}
	return Plan{Kind: KindShowTables}, nil
}

func parseDescribe(stmt string) (Plan, error) {
	m := describeRe.FindStringSubmatch(stmt)
	if m == nil {
		return Plan{}, fmt.Errorf("invalid describe syntax: %w", rdbmserr.ErrSyntax)
	}
	return Plan{Kind: KindDescribe, Table: m[1]}, nil
}
