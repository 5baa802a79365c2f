package executor

import (
	"strings"

	"rdbms/internal/core"
	"rdbms/internal/parser"
	"rdbms/internal/storage"
)

// execSelectJoin implements the single supported join shape: an inner
// equi-join over exactly two tables (spec §4.3).
func (x *Executor) execSelectJoin(plan parser.Plan) Result {
	join := plan.Join

	leftTable, err := x.engine.GetTableSchema(join.LeftTable)
	if err != nil {
		return failure(err)
	}
	rightTable, err := x.engine.GetTableSchema(join.RightTable)
	if err != nil {
		return failure(err)
	}

	leftRows, err := x.engine.SelectRows(join.LeftTable, nil)
	if err != nil {
		return failure(err)
	}
	rightRows, err := x.engine.SelectRows(join.RightTable, nil)
	if err != nil {
		return failure(err)
	}

	onLeftTable, onLeftCol := resolveQualified(join.OnLeft, join.LeftTable)
	onRightTable, onRightCol := resolveQualified(join.OnRight, join.RightTable)

	var out []map[string]any
	for _, lRow := range leftRows {
		for _, rRow := range rightRows {
			lv := sideValue(onLeftTable, onLeftCol, join, lRow, rRow)
			rv := sideValue(onRightTable, onRightCol, join, lRow, rRow)
			if !lv.Equal(rv) {
				continue
			}

			joined := combineRows(leftTable, rightTable, lRow, rRow)

			if len(plan.Where) > 0 {
				ok, err := matchesJoined(joined, plan.Where, x.engine.StrictMode())
				if err != nil {
					return failure(err)
				}
				if !ok {
					continue
				}
			}

			out = append(out, projectJoined(joined, plan.Star, plan.Projection))
		}
	}
	if out == nil {
		out = []map[string]any{}
	}
	return Result{Success: true, Rows: out, Count: len(out)}
}

// resolveQualified splits a possibly-qualified ON operand ("table.col")
// into (table, col); an unqualified operand resolves against
// defaultTable (spec §4.3 step 2).
func resolveQualified(side, defaultTable string) (table, col string) {
	if idx := strings.IndexByte(side, '.'); idx >= 0 {
		return side[:idx], side[idx+1:]
	}
	return defaultTable, side
}

func sideValue(table, col string, join *parser.JoinSpec, lRow, rRow *core.Row) core.Value {
	switch table {
	case join.LeftTable:
		return lRow.Get(col)
	case join.RightTable:
		return rRow.Get(col)
	default:
		return core.Null
	}
}

// combineRows builds the flat "table.col" -> Value record for one
// matched pair: every non-internal column of the left table in its
// declared order, then every non-internal column of the right table
// (spec §4.3 step 4).
func combineRows(leftTable, rightTable *core.Table, lRow, rRow *core.Row) map[string]core.Value {
	joined := make(map[string]core.Value, len(leftTable.Columns)+len(rightTable.Columns))
	for _, c := range leftTable.Columns {
		joined[leftTable.Name+"."+c.Name] = lRow.Get(c.Name)
	}
	for _, c := range rightTable.Columns {
		joined[rightTable.Name+"."+c.Name] = rRow.Get(c.Name)
	}
	return joined
}

// matchesJoined evaluates a WHERE predicate against a combined join
// record. A conjunct's column key is looked up verbatim first; if not
// found, the first joined key whose suffix is ".col" is used instead
// (spec §4.3 step 5).
func matchesJoined(joined map[string]core.Value, pred parser.Predicate, strict bool) (bool, error) {
	for col, cond := range pred {
		rv, ok := joined[col]
		if !ok {
			rv = lookupSuffix(joined, col)
		}
		matched, err := storage.EvalCondition(rv, cond, strict)
		if err != nil {
			return false, err
		}
		if !matched {
			return false, nil
		}
	}
	return true, nil
}

// projectJoined applies a SELECT projection to a combined join record:
// '*' returns it unchanged; otherwise each requested name is looked up
// verbatim first, then via the ".col" suffix fallback (spec §4.3 step 6).
func projectJoined(joined map[string]core.Value, star bool, names []string) map[string]any {
	if star {
		out := make(map[string]any, len(joined))
		for k, v := range joined {
			out[k] = v.Raw()
		}
		return out
	}

	out := make(map[string]any, len(names))
	for _, name := range names {
		if v, ok := joined[name]; ok {
			out[name] = v.Raw()
			continue
		}
		if v := lookupSuffix(joined, name); !v.IsNull() {
			out[name] = v.Raw()
		}
	}
	return out
}

// lookupSuffix returns the value of the first joined key whose suffix
// is ".col", or Null if none matches.
func lookupSuffix(joined map[string]core.Value, col string) core.Value {
	suffix := "." + col
	for k, v := range joined {
		if strings.HasSuffix(k, suffix) {
			return v
		}
	}
	return core.Null
}
