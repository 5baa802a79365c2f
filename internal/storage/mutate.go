package storage

import (
	"fmt"

	"rdbms/internal/core"
	"rdbms/internal/parser"
	"rdbms/internal/rdbmserr"
)

// InsertRow appends a new row to table. provided holds whichever values
// the caller supplied, keyed by column name; any declared column absent
// from provided is treated as Null (spec §4.2). Returns the new row's
// ordinal.
func (e *Engine) InsertRow(table string, provided map[string]core.Value) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	t, err := e.table(table)
	if err != nil {
		return 0, err
	}

	row := &core.Row{RowID: len(t.Rows), Values: make(map[string]core.Value, len(t.Columns))}
	for _, col := range t.Columns {
		v, ok := provided[col.Name]
		if !ok {
			v = core.Null
		}
		if col.NotNull && v.IsNull() {
			return 0, fmt.Errorf("column '%s' cannot be NULL: %w", col.Name, rdbmserr.ErrConstraint)
		}
		coerced, err := core.CoerceValue(v, col.Type)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", err.Error(), rdbmserr.ErrType)
		}
		row.Values[col.Name] = coerced
	}

	for _, col := range t.IndexedColumns() {
		v := row.Values[col]
		if v.IsNull() {
			continue
		}
		if _, exists := e.db.Indexes[table][col][v]; exists {
			return 0, fmt.Errorf("constraint violation: %s already exists: %w", v.String(), rdbmserr.ErrConstraint)
		}
	}

	t.Rows = append(t.Rows, row)
	for _, col := range t.IndexedColumns() {
		v := row.Values[col]
		if !v.IsNull() {
			e.db.Indexes[table][col][v] = row.RowID
		}
	}

	if err := e.save(); err != nil {
		return 0, err
	}
	return row.RowID, nil
}

// SelectRows returns every row of table matching pred (all rows if pred
// is nil or empty), including _row_id; the executor strips internal
// fields before returning a Result.
func (e *Engine) SelectRows(table string, pred parser.Predicate) ([]*core.Row, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	t, err := e.table(table)
	if err != nil {
		return nil, err
	}

	if len(pred) == 0 {
		out := make([]*core.Row, len(t.Rows))
		copy(out, t.Rows)
		return out, nil
	}

	var out []*core.Row
	for _, row := range t.Rows {
		ok, err := e.matches(row, pred)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, row)
		}
	}
	return out, nil
}

// UpdateRows applies assignments to every row matching pred, in row
// order. A PK/UNIQUE target column is checked for conflicts by scanning
// every other row directly rather than consulting the index (spec §4.2,
// §9: correct but O(n) — a reimplementation may consult the index
// instead, excluding the row being updated).
func (e *Engine) UpdateRows(table string, assignments []parser.Assignment, pred parser.Predicate) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	t, err := e.table(table)
	if err != nil {
		return 0, err
	}

	matched := 0
	for _, row := range t.Rows {
		ok, err := e.matches(row, pred)
		if err != nil {
			return 0, err
		}
		if !ok {
			continue
		}
		matched++

		for _, asg := range assignments {
			col, found := t.Column(asg.Column)
			if !found {
				return 0, fmt.Errorf("unknown column '%s' in table '%s': %w", asg.Column, table, rdbmserr.ErrSchema)
			}

			coerced, err := core.CoerceValue(asg.Value, col.Type)
			if err != nil {
				return 0, fmt.Errorf("%s: %w", err.Error(), rdbmserr.ErrType)
			}
			if col.NotNull && coerced.IsNull() {
				return 0, fmt.Errorf("column '%s' cannot be NULL: %w", col.Name, rdbmserr.ErrConstraint)
			}

			if (col.PrimaryKey || col.Unique) && !coerced.IsNull() {
				for _, other := range t.Rows {
					if other.RowID == row.RowID {
						continue
					}
					if other.Get(col.Name).Equal(coerced) {
						return 0, fmt.Errorf("constraint violation: %s already exists: %w", coerced.String(), rdbmserr.ErrConstraint)
					}
				}
			}

			old := row.Get(col.Name)
			row.Values[col.Name] = coerced
			if idx, indexed := e.db.Indexes[table][col.Name]; indexed {
				if !old.IsNull() {
					delete(idx, old)
				}
				if !coerced.IsNull() {
					idx[coerced] = row.RowID
				}
			}
		}
	}

	if matched > 0 {
		if err := e.save(); err != nil {
			return 0, err
		}
	}
	return matched, nil
}

// DeleteRows removes every row matching pred and rebuilds every index
// of table from scratch afterward, since deletion shifts every
// surviving row's ordinal (spec §4.2, §4.4).
func (e *Engine) DeleteRows(table string, pred parser.Predicate) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	t, err := e.table(table)
	if err != nil {
		return 0, err
	}

	var toDelete []int
	for i, row := range t.Rows {
		ok, err := e.matches(row, pred)
		if err != nil {
			return 0, err
		}
		if ok {
			toDelete = append(toDelete, i)
		}
	}
	if len(toDelete) == 0 {
		return 0, nil
	}

	for i := len(toDelete) - 1; i >= 0; i-- {
		idx := toDelete[i]
		t.Rows = append(t.Rows[:idx], t.Rows[idx+1:]...)
	}

	rebuildIndexes(t, e.db.Indexes[table])

	if err := e.save(); err != nil {
		return 0, err
	}
	return len(toDelete), nil
}

// rebuildIndexes reassigns _row_id for every surviving row to its new
// position and repopulates every indexed column's map from scratch
// (spec §4.4).
func rebuildIndexes(t *core.Table, indexes map[string]core.Index) {
	for col := range indexes {
		indexes[col] = core.Index{}
	}
	for i, row := range t.Rows {
		row.RowID = i
		for col, idx := range indexes {
			v := row.Get(col)
			if !v.IsNull() {
				idx[v] = i
			}
		}
	}
}
