package executor

import (
	"fmt"

	"rdbms/internal/parser"
)

// execDropTable is the execute(sql) route to storage.Engine.DropTable,
// supplementing spec.md: the original's drop_table exists on the
// storage engine but was never reachable through execute() in the
// distilled spec (SPEC_FULL.md "SUPPLEMENTED FEATURES").
func (x *Executor) execDropTable(plan parser.Plan) Result {
	if err := x.engine.DropTable(plan.Table); err != nil {
		return failure(err)
	}
	return Result{Success: true, Message: fmt.Sprintf("Table '%s' dropped successfully", plan.Table)}
}
