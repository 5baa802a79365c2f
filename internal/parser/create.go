package parser

import (
	"fmt"
	"regexp"
	"strings"

	"rdbms/internal/core"
	"rdbms/internal/rdbmserr"
)

var createTableRe = regexp.MustCompile(`(?is)^CREATE\s+TABLE\s+(\S+)\s*\(`)

// parseCreateTable handles `CREATE TABLE t (col type [constraints], ...)`.
// The column list is extracted between the outermost parentheses and
// split on commas respecting quotes and nested parens (spec §4.1).
func (p *Parser) parseCreateTable(stmt string) (Plan, error) {
	m := createTableRe.FindStringSubmatch(stmt)
	if m == nil {
		return Plan{}, fmt.Errorf("invalid create table syntax: %w", rdbmserr.ErrSyntax)
	}
	table := m[1]

	inner, ok := outerParens(stmt)
	if !ok {
		return Plan{}, fmt.Errorf("invalid create table syntax: %w", rdbmserr.ErrSyntax)
	}

	var columns []core.ColumnDef
	for _, def := range splitTopLevel(inner, ',') {
		if def == "" {
			continue
		}
		col, err := p.parseColumnDef(def)
		if err != nil {
			return Plan{}, err
		}
		columns = append(columns, col)
	}
	if len(columns) == 0 {
		return Plan{}, fmt.Errorf("invalid create table syntax: %w", rdbmserr.ErrSyntax)
	}

	return Plan{Kind: KindCreateTable, Table: table, Columns: columns}, nil
}

// parseColumnDef parses one column definition: the first token is the
// name, the second is the type (including any parenthesized size), and
// the remainder is scanned uppercase for PRIMARY KEY / UNIQUE / NOT
// NULL. PRIMARY KEY implies NOT NULL and wins over UNIQUE if both are
// present (spec §4.1).
func (p *Parser) parseColumnDef(def string) (core.ColumnDef, error) {
	fields := fieldsN(def, 3)
	if len(fields) < 2 {
		return core.ColumnDef{}, fmt.Errorf("invalid column definition %q: %w", def, rdbmserr.ErrSyntax)
	}

	name := fields[0]
	typeTok := fields[1]
	// A VARCHAR(n) split by fieldsN may have its size separated from the
	// base keyword if there was whitespace before '('; rejoin defensively.
	if len(fields) >= 3 && strings.HasPrefix(strings.TrimSpace(fields[2]), "(") && strings.EqualFold(typeTok, "VARCHAR") {
		if close := strings.IndexByte(fields[2], ')'); close >= 0 {
			typeTok += fields[2][:close+1]
			fields[2] = strings.TrimSpace(fields[2][close+1:])
		}
	}

	if strings.EqualFold(typeTok, "VARCHAR") && p.defaultVarcharLimit > 0 {
		typeTok = fmt.Sprintf("VARCHAR(%d)", p.defaultVarcharLimit)
	}

	ct, err := core.ParseColumnType(typeTok)
	if err != nil {
		return core.ColumnDef{}, fmt.Errorf("%s: %w", err.Error(), rdbmserr.ErrSyntax)
	}

	rest := ""
	if len(fields) >= 3 {
		rest = fields[2]
	}
	upperRest := strings.ToUpper(rest)

	col := core.ColumnDef{Name: name, Type: ct}
	if strings.Contains(upperRest, "PRIMARY KEY") {
		col.PrimaryKey = true
	} else if strings.Contains(upperRest, "UNIQUE") {
		col.Unique = true
	}
	if strings.Contains(upperRest, "NOT NULL") {
		col.NotNull = true
	}
	col.Normalize()
	return col, nil
}
