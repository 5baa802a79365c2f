// Package storage implements the storage engine of spec.md §4.2: an
// in-memory Database of typed tables plus primary-key/unique indexes,
// with constraint enforcement on every mutation and write-through
// persistence to two JSON files.
package storage

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"rdbms/internal/core"
	"rdbms/internal/parser"
	"rdbms/internal/rdbmserr"
)

// Engine owns the single exclusive lock guarding the in-memory Database
// and the two persistence files (spec §5: no reader/writer split —
// rebuilding _row_id on delete makes naive concurrent reads unsafe).
type Engine struct {
	mu      sync.Mutex
	db      *core.Database
	dataDir string
	log     *logrus.Logger

	// strictMode mirrors engine.toml's strict_mode: when true, a
	// mixed-type "=" / "!=" comparison raises a type error; when false,
	// a mixed-type "=" never matches and a mixed-type "!=" always does
	// (SPEC_FULL.md, resolving spec §4.4's Open Question on mixed-type
	// comparisons).
	strictMode bool
}

// Options configures a new Engine.
type Options struct {
	DataDir    string
	StrictMode bool
	Log        *logrus.Logger
}

// NewEngine loads the Database from opts.DataDir (tolerating missing
// files, per spec §6) and returns a ready-to-use Engine.
func NewEngine(opts Options) (*Engine, error) {
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	e := &Engine{db: core.NewDatabase(), dataDir: opts.DataDir, log: log, strictMode: opts.StrictMode}
	if err := e.load(); err != nil {
		return nil, err
	}
	log.Debugf("storage: loaded %d table(s) from %s", len(e.db.Tables), e.dataDir)
	return e, nil
}

// CreateTable registers a new table with the given columns, creates an
// index for the primary key and every unique column, and persists.
func (e *Engine) CreateTable(name string, columns []core.ColumnDef) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.db.Tables[name]; exists {
		return fmt.Errorf("table '%s' already exists: %w", name, rdbmserr.ErrSchema)
	}

	pkCount := 0
	var pk string
	var uniques []string
	for _, c := range columns {
		if c.PrimaryKey {
			pkCount++
			pk = c.Name
		} else if c.Unique {
			uniques = append(uniques, c.Name)
		}
	}
	if pkCount > 1 {
		return fmt.Errorf("table '%s' declares multiple primary keys: %w", name, rdbmserr.ErrSchema)
	}

	t := &core.Table{Name: name, Columns: columns, PrimaryKey: pk, UniqueKeys: uniques}
	e.db.AddTable(t)

	return e.save()
}

// DropTable removes a table and its indexes together.
func (e *Engine) DropTable(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.db.Tables[name]; !exists {
		return fmt.Errorf("table '%s' does not exist: %w", name, rdbmserr.ErrSchema)
	}
	e.db.RemoveTable(name)
	return e.save()
}

// ListTables returns table names in creation order (spec §6 ShowTables:
// "sorted-by-insertion").
func (e *Engine) ListTables() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.db.TableNames()
}

// GetTableSchema returns the table descriptor, or an error if it does
// not exist.
func (e *Engine) GetTableSchema(name string) (*core.Table, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	t, ok := e.db.Tables[name]
	if !ok {
		return nil, fmt.Errorf("table '%s' does not exist: %w", name, rdbmserr.ErrSchema)
	}
	return t, nil
}

// StrictMode reports whether mixed-type equality comparisons should
// raise a type error (engine.toml's strict_mode), for callers outside
// this package that need to replicate predicate semantics — namely the
// executor's join WHERE evaluation.
func (e *Engine) StrictMode() bool { return e.strictMode }

func (e *Engine) table(name string) (*core.Table, error) {
	t, ok := e.db.Tables[name]
	if !ok {
		return nil, fmt.Errorf("table '%s' does not exist: %w", name, rdbmserr.ErrSchema)
	}
	return t, nil
}
