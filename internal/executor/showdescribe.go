package executor

import (
	"fmt"

	"rdbms/internal/rdbmserr"
)

// ShowTables returns every table name in creation order. It is exposed
// directly (in addition to being reachable via Execute("SHOW TABLES"))
// for callers — like the out-of-scope REST facade — that already know
// they want the table list and shouldn't have to build SQL text for it.
func (x *Executor) ShowTables() Result {
	names := x.engine.ListTables()
	return Result{Success: true, Tables: names, Count: len(names)}
}

// Describe returns the column schema of table in declaration order,
// exposed directly for the same reason as ShowTables. Describing an
// unknown table is its own error category (spec §7: "Arity: DESCRIBE
// of unknown table"), distinct from the Schema errors CREATE/INSERT/
// etc. raise for a missing table — so the engine's generic "does not
// exist" error is rewrapped here rather than passed through.
func (x *Executor) Describe(table string) Result {
	t, err := x.engine.GetTableSchema(table)
	if err != nil {
		return failure(fmt.Errorf("table '%s' does not exist: %w", table, rdbmserr.ErrArity))
	}

	cols := make([]DescribeColumn, 0, len(t.Columns))
	for _, c := range t.Columns {
		cols = append(cols, DescribeColumn{
			Column:      c.Name,
			Type:        c.Type.String(),
			Constraints: c.ConstraintsString(),
		})
	}
	return Result{Success: true, Table: table, Columns: cols, RowCount: len(t.Rows)}
}
