package parser

import (
	"fmt"
	"regexp"
	"strings"

	"rdbms/internal/rdbmserr"
)

var (
	selectMainRe = regexp.MustCompile(`(?is)^SELECT\s+(.+?)\s+FROM\s+(.+)$`)
	whereSplitRe = regexp.MustCompile(`(?i)\s+WHERE\s+`)
	joinSplitRe  = regexp.MustCompile(`(?i)\s+JOIN\s+`)
	onSplitRe    = regexp.MustCompile(`(?i)\s+ON\s+`)
)

// parseSelect handles both SELECT and SELECT ... JOIN ... forms. A join
// is recognized by the token JOIN (case-insensitive) appearing after
// FROM; only a single two-table inner equi-join is supported (spec
// §4.1).
func parseSelect(stmt string) (Plan, error) {
	m := selectMainRe.FindStringSubmatch(stmt)
	if m == nil {
		return Plan{}, fmt.Errorf("invalid select syntax: %w", rdbmserr.ErrSyntax)
	}
	projRaw := strings.TrimSpace(m[1])
	rest := m[2]

	fromPart, wherePart, hasWhere := cutKeyword(whereSplitRe, rest)

	star, projection := parseProjection(projRaw)

	var pred Predicate
	if hasWhere {
		p, err := parseWhere(wherePart)
		if err != nil {
			return Plan{}, err
		}
		pred = p
	}

	if joinSplitRe.MatchString(fromPart) {
		join, err := parseJoinClause(fromPart)
		if err != nil {
			return Plan{}, err
		}
		return Plan{Kind: KindSelectJoin, Star: star, Projection: projection, Join: join, Where: pred}, nil
	}

	table := strings.TrimSpace(fromPart)
	if idx := strings.IndexAny(table, " \t\n"); idx >= 0 {
		table = table[:idx]
	}
	if table == "" {
		return Plan{}, fmt.Errorf("invalid select syntax: %w", rdbmserr.ErrSyntax)
	}

	return Plan{Kind: KindSelect, Table: table, Star: star, Projection: projection, Where: pred}, nil
}

func parseProjection(raw string) (star bool, names []string) {
	if raw == "*" {
		return true, nil
	}
	for _, tok := range splitTopLevel(raw, ',') {
		if tok != "" {
			names = append(names, tok)
		}
	}
	return false, names
}

func parseJoinClause(fromPart string) (*JoinSpec, error) {
	sides := joinSplitRe.Split(fromPart, 2)
	if len(sides) != 2 {
		return nil, fmt.Errorf("invalid join syntax: %w", rdbmserr.ErrSyntax)
	}
	leftTable := strings.TrimSpace(sides[0])

	onSides := onSplitRe.Split(sides[1], 2)
	if len(onSides) != 2 {
		return nil, fmt.Errorf("invalid join syntax: missing ON clause: %w", rdbmserr.ErrSyntax)
	}
	rightTable := strings.TrimSpace(onSides[0])

	eq := strings.SplitN(onSides[1], "=", 2)
	if len(eq) != 2 {
		return nil, fmt.Errorf("invalid join syntax: ON must be an equality: %w", rdbmserr.ErrSyntax)
	}

	return &JoinSpec{
		LeftTable:  leftTable,
		RightTable: rightTable,
		OnLeft:     strings.TrimSpace(eq[0]),
		OnRight:    strings.TrimSpace(eq[1]),
	}, nil
}

// cutKeyword splits s at the first match of re, returning (before,
// after, true) if found, or (s, "", false) otherwise.
func cutKeyword(re *regexp.Regexp, s string) (before, after string, found bool) {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s, "", false
	}
	return s[:loc[0]], s[loc[1]:], true
}
