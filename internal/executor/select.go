package executor

import (
	"strings"

	"rdbms/internal/core"
	"rdbms/internal/parser"
)

func (x *Executor) execSelect(plan parser.Plan) Result {
	rows, err := x.engine.SelectRows(plan.Table, plan.Where)
	if err != nil {
		return failure(err)
	}

	out := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		out = append(out, projectRow(row, plan.Star, plan.Projection))
	}
	return Result{Success: true, Rows: out, Count: len(out)}
}

// projectRow builds the output record for a single row: '*' returns
// every non-internal field; an explicit list copies only the requested
// names, silently omitting ones the row doesn't have (spec §4.3 — an
// unknown projected column never raises).
func projectRow(row *core.Row, star bool, names []string) map[string]any {
	if star {
		out := make(map[string]any, len(row.Values))
		for col, v := range row.Values {
			if strings.HasPrefix(col, "_") {
				continue
			}
			out[col] = v.Raw()
		}
		return out
	}

	out := make(map[string]any, len(names))
	for _, name := range names {
		if v, ok := row.Values[name]; ok {
			out[name] = v.Raw()
		}
	}
	return out
}
