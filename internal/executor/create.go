package executor

import (
	"fmt"

	"rdbms/internal/parser"
)

func (x *Executor) execCreateTable(plan parser.Plan) Result {
	if err := x.engine.CreateTable(plan.Table, plan.Columns); err != nil {
		return failure(err)
	}
	return Result{Success: true, Message: fmt.Sprintf("Table '%s' created successfully", plan.Table)}
}
