package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"rdbms/internal/core"
)

// persistedColumn is the on-disk shape of one ColumnDef (spec §6).
type persistedColumn struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	PrimaryKey bool   `json:"primary_key"`
	Unique     bool   `json:"unique"`
	NotNull    bool   `json:"not_null"`
}

// persistedTable is the on-disk shape of one Table entry in tables.json.
type persistedTable struct {
	Columns    []persistedColumn `json:"columns"`
	Rows       []map[string]any  `json:"rows"`
	PrimaryKey string            `json:"primary_key,omitempty"`
	UniqueKeys []string          `json:"unique_keys,omitempty"`
}

// tablesDocument is tables.json in full. TableOrder records SHOW TABLES
// insertion order, which a plain JSON object cannot guarantee to
// preserve across a save/load round trip (encoding/json sorts map keys
// alphabetically) — see core.Database.SetOrder.
type tablesDocument struct {
	Tables     map[string]persistedTable `json:"tables"`
	TableOrder []string                  `json:"table_order"`
}

// indexesDocument is indexes.json in full: table -> column -> value
// string -> row ordinal.
type indexesDocument map[string]map[string]map[string]int

func (e *Engine) tablesPath() string  { return filepath.Join(e.dataDir, "tables.json") }
func (e *Engine) indexesPath() string { return filepath.Join(e.dataDir, "indexes.json") }

// save rewrites both tables.json and indexes.json in full (spec §5:
// write-through — every DDL/DML completes by writing both files before
// returning). Each file is written to a temp path and renamed into
// place, upgrading the source's sequential-overwrite behavior to avoid
// leaving a half-written file on crash (spec §9).
func (e *Engine) save() error {
	doc := tablesDocument{Tables: map[string]persistedTable{}, TableOrder: e.db.TableNames()}
	idxDoc := indexesDocument{}

	for name, t := range e.db.Tables {
		pt := persistedTable{PrimaryKey: t.PrimaryKey, UniqueKeys: t.UniqueKeys}
		for _, c := range t.Columns {
			pt.Columns = append(pt.Columns, persistedColumn{
				Name: c.Name, Type: c.Type.String(),
				PrimaryKey: c.PrimaryKey, Unique: c.Unique, NotNull: c.NotNull,
			})
		}
		for _, row := range t.Rows {
			r := make(map[string]any, len(row.Values)+1)
			for col, v := range row.Values {
				r[col] = v.Raw()
			}
			r["_row_id"] = row.RowID
			pt.Rows = append(pt.Rows, r)
		}
		doc.Tables[name] = pt

		idxDoc[name] = map[string]map[string]int{}
		for col, idx := range e.db.Indexes[name] {
			m := map[string]int{}
			for v, ord := range idx {
				m[v.String()] = ord
			}
			idxDoc[name][col] = m
		}
	}

	if err := writeJSONAtomic(e.tablesPath(), doc); err != nil {
		e.log.WithError(err).Error("storage: failed to write tables.json")
		return err
	}
	if err := writeJSONAtomic(e.indexesPath(), idxDoc); err != nil {
		e.log.WithError(err).Error("storage: failed to write indexes.json")
		return err
	}
	return nil
}

func writeJSONAtomic(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}

// load reads tables.json and indexes.json from disk, tolerating either
// file being absent (a fresh database) or corrupt (logged and treated
// as empty, per spec §6).
func (e *Engine) load() error {
	doc, ok := e.readTables()
	if !ok {
		return nil
	}

	idxDoc := e.readIndexes()

	for name, pt := range doc.Tables {
		columns := make([]core.ColumnDef, 0, len(pt.Columns))
		for _, pc := range pt.Columns {
			ct, err := core.ParseColumnType(pc.Type)
			if err != nil {
				e.log.WithError(err).Warnf("storage: table %q column %q has unrecognized type %q, skipping column", name, pc.Name, pc.Type)
				continue
			}
			columns = append(columns, core.ColumnDef{
				Name: pc.Name, Type: ct,
				PrimaryKey: pc.PrimaryKey, Unique: pc.Unique, NotNull: pc.NotNull,
			})
		}

		t := &core.Table{Name: name, Columns: columns, PrimaryKey: pt.PrimaryKey, UniqueKeys: pt.UniqueKeys}
		for _, r := range pt.Rows {
			row := &core.Row{Values: map[string]core.Value{}}
			if idRaw, ok := r["_row_id"]; ok {
				if f, ok := idRaw.(float64); ok {
					row.RowID = int(f)
				}
			}
			for _, col := range columns {
				raw, present := r[col.Name]
				if !present {
					row.Values[col.Name] = core.Null
					continue
				}
				v, err := core.ValueFromJSON(raw, col.Type.Kind())
				if err != nil {
					e.log.WithError(err).Warnf("storage: table %q row has invalid value for column %q, treating as NULL", name, col.Name)
					v = core.Null
				}
				row.Values[col.Name] = v
			}
			t.Rows = append(t.Rows, row)
		}

		e.db.Tables[name] = t
		e.db.Indexes[name] = map[string]core.Index{}
		for _, col := range t.IndexedColumns() {
			e.db.Indexes[name][col] = core.Index{}
		}
		if cols, ok := idxDoc[name]; ok {
			for col, valueMap := range cols {
				idx, tracked := e.db.Indexes[name][col]
				if !tracked {
					continue
				}
				colDef, _ := t.Column(col)
				for vs, ord := range valueMap {
					v, err := parseIndexKey(vs, colDef.Type.Kind())
					if err != nil {
						continue
					}
					idx[v] = ord
				}
			}
		} else {
			rebuildIndexes(t, e.db.Indexes[name])
		}
	}

	e.db.SetOrder(doc.TableOrder)
	return nil
}

func (e *Engine) readTables() (tablesDocument, bool) {
	var doc tablesDocument
	data, err := os.ReadFile(e.tablesPath())
	if err != nil {
		return doc, false
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		e.log.WithError(err).Warn("storage: tables.json is corrupt, starting from an empty database")
		return doc, false
	}
	return doc, true
}

func (e *Engine) readIndexes() indexesDocument {
	doc := indexesDocument{}
	data, err := os.ReadFile(e.indexesPath())
	if err != nil {
		return doc
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		e.log.WithError(err).Warn("storage: indexes.json is corrupt, rebuilding indexes from tables.json")
		return indexesDocument{}
	}
	return doc
}

// parseIndexKey re-derives a Value from its persisted string form
// (indexes.json stores every key as a string, per spec §6) using the
// column's declared Kind.
func parseIndexKey(s string, kind core.Kind) (core.Value, error) {
	switch kind {
	case core.KindBool:
		return core.BoolValue(s == "true"), nil
	default:
		return core.ValueFromJSON(s, kind)
	}
}
