package storage

import (
	"fmt"

	"rdbms/internal/core"
	"rdbms/internal/parser"
	"rdbms/internal/rdbmserr"
)

// matches evaluates every conjunct of pred against row, per spec §4.4:
// all conjuncts must hold; an empty predicate matches every row. Null
// never satisfies any comparison, "!=" included: a "!=" conjunct whose
// row value or literal is Null does not match.
func (e *Engine) matches(row *core.Row, pred parser.Predicate) (bool, error) {
	for col, cond := range pred {
		rv := row.Get(col)
		ok, err := evalCondition(rv, cond, e.strictMode)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// EvalCondition is the exported form of the single-comparison evaluator,
// reused by the executor's join WHERE handling (spec §4.3 step 5),
// which resolves column keys differently (table.col with a suffix
// fallback) but shares the same comparison semantics. strict mirrors
// engine.toml's strict_mode (SPEC_FULL.md, resolving spec §4.4's mixed-
// type-comparison Open Question).
func EvalCondition(rv core.Value, cond parser.Condition, strict bool) (bool, error) {
	return evalCondition(rv, cond, strict)
}

func evalCondition(rv core.Value, cond parser.Condition, strict bool) (bool, error) {
	switch cond.Op {
	case "", "=":
		if strict && !rv.IsNull() && !cond.Value.IsNull() && rv.Kind() != cond.Value.Kind() {
			return false, mismatchErr(rv, cond.Value)
		}
		return rv.Equal(cond.Value), nil
	case "!=":
		if rv.IsNull() || cond.Value.IsNull() {
			return false, nil
		}
		if strict && !rv.IsNull() && !cond.Value.IsNull() && rv.Kind() != cond.Value.Kind() {
			return false, mismatchErr(rv, cond.Value)
		}
		return !rv.Equal(cond.Value), nil
	case ">", "<", ">=", "<=":
		if rv.IsNull() {
			return false, nil
		}
		cmp, err := rv.Compare(cond.Value)
		if err != nil {
			return false, mismatchErr(rv, cond.Value)
		}
		switch cond.Op {
		case ">":
			return cmp > 0, nil
		case "<":
			return cmp < 0, nil
		case ">=":
			return cmp >= 0, nil
		case "<=":
			return cmp <= 0, nil
		}
	}
	return false, fmt.Errorf("unknown operator %q: %w", cond.Op, rdbmserr.ErrSyntax)
}

func mismatchErr(a, b core.Value) error {
	return fmt.Errorf("cannot compare %s and %s: %w", a.Kind(), b.Kind(), rdbmserr.ErrType)
}
