package executor

import (
	"fmt"

	"rdbms/internal/parser"
	"rdbms/internal/rdbmserr"
)

// execUpdate forbids UPDATE without WHERE as defense in depth — the
// parser already refuses to produce an Update plan without one, but
// spec §9 is explicit that this check must not collapse to a single
// layer.
func (x *Executor) execUpdate(plan parser.Plan) Result {
	if len(plan.Where) == 0 {
		return failure(fmt.Errorf("UPDATE without WHERE clause not allowed for safety: %w", rdbmserr.ErrSafety))
	}

	count, err := x.engine.UpdateRows(plan.Table, plan.Assignments, plan.Where)
	if err != nil {
		return failure(err)
	}
	return Result{Success: true, Message: fmt.Sprintf("Updated %d row(s)", count), UpdatedCount: count}
}
