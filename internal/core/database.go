package core

// Database is the full in-memory state of the engine: every table, and
// the unique/primary-key indexes maintained alongside them. Tables and
// their indexes are created together and destroyed together.
type Database struct {
	Tables  map[string]*Table
	Indexes map[string]map[string]Index

	order []string // table names in creation order, for SHOW TABLES
}

// NewDatabase returns an empty Database ready for table creation.
func NewDatabase() *Database {
	return &Database{
		Tables:  make(map[string]*Table),
		Indexes: make(map[string]map[string]Index),
	}
}

// TableNames returns table names in insertion order, the order SHOW
// TABLES reports them in.
func (db *Database) TableNames() []string {
	names := make([]string, len(db.order))
	copy(names, db.order)
	return names
}

// AddTable registers a table, creates an empty Index for every one of
// its PK/UNIQUE columns, and appends it to the insertion order. It does
// not check for an existing table with the same name; callers
// (storage.Engine.CreateTable) are responsible for that check.
func (db *Database) AddTable(t *Table) {
	db.Tables[t.Name] = t
	indexes := make(map[string]Index, len(t.IndexedColumns()))
	for _, col := range t.IndexedColumns() {
		indexes[col] = Index{}
	}
	db.Indexes[t.Name] = indexes
	db.order = append(db.order, t.Name)
}

// RemoveTable deletes a table, its indexes, and its entry in the
// insertion order.
func (db *Database) RemoveTable(name string) {
	delete(db.Tables, name)
	delete(db.Indexes, name)
	for i, n := range db.order {
		if n == name {
			db.order = append(db.order[:i], db.order[i+1:]...)
			break
		}
	}
}

// SetOrder is used by persistence on load to restore insertion order
// from the on-disk "table_order" field.
func (db *Database) SetOrder(names []string) {
	db.order = append([]string(nil), names...)
}
