package executor

import (
	"fmt"

	"rdbms/internal/core"
	"rdbms/internal/parser"
	"rdbms/internal/rdbmserr"
)

// execInsert validates cardinality (spec §4.3) before handing a
// column-name-keyed map of values to the storage engine. Columns
// absent from an explicit column list become Null, subject to NOT NULL
// enforcement by storage.
func (x *Executor) execInsert(plan parser.Plan) Result {
	t, err := x.engine.GetTableSchema(plan.Table)
	if err != nil {
		return failure(err)
	}

	provided := make(map[string]core.Value, len(t.Columns))

	if plan.InsertColumns != nil {
		if len(plan.InsertColumns) != len(plan.Values) {
			return failure(fmt.Errorf("column count doesn't match value count: %w", rdbmserr.ErrCardinality))
		}
		for i, col := range plan.InsertColumns {
			provided[col] = plan.Values[i]
		}
	} else {
		if len(plan.Values) != len(t.Columns) {
			return failure(fmt.Errorf("expected %d values, got %d: %w", len(t.Columns), len(plan.Values), rdbmserr.ErrCardinality))
		}
		for i, col := range t.Columns {
			provided[col.Name] = plan.Values[i]
		}
	}

	rowID, err := x.engine.InsertRow(plan.Table, provided)
	if err != nil {
		return failure(err)
	}
	return Result{Success: true, Message: fmt.Sprintf("Row inserted with ID %d", rowID), RowID: rowID}
}
