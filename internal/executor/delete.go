package executor

import (
	"fmt"

	"rdbms/internal/parser"
	"rdbms/internal/rdbmserr"
)

// execDelete forbids DELETE without WHERE as defense in depth, mirroring
// execUpdate (spec §9).
func (x *Executor) execDelete(plan parser.Plan) Result {
	if len(plan.Where) == 0 {
		return failure(fmt.Errorf("DELETE without WHERE clause not allowed for safety: %w", rdbmserr.ErrSafety))
	}

	count, err := x.engine.DeleteRows(plan.Table, plan.Where)
	if err != nil {
		return failure(err)
	}
	return Result{Success: true, Message: fmt.Sprintf("Deleted %d row(s)", count), DeletedCount: count}
}
