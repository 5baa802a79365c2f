// Package parser converts a single SQL statement into a typed Plan: a
// lexing-by-regex, structural parse over the dialect subset described in
// spec.md §4.1. It never touches storage state; Parse is a pure function
// from text to Plan (or error).
package parser

import "rdbms/internal/core"

// Kind discriminates the Plan variants the parser can produce.
type Kind string

const (
	KindCreateTable Kind = "CREATE_TABLE"
	KindInsert      Kind = "INSERT"
	KindSelect      Kind = "SELECT"
	KindSelectJoin  Kind = "SELECT_JOIN"
	KindUpdate      Kind = "UPDATE"
	KindDelete      Kind = "DELETE"
	KindShowTables  Kind = "SHOW_TABLES"
	KindDescribe    Kind = "DESCRIBE"
	KindDropTable   Kind = "DROP_TABLE"
)

// Condition is one side of a predicate conjunct: an operator and the
// literal to compare against. A bare column = literal conjunct is
// represented with Op "=".
type Condition struct {
	Op    string
	Value core.Value
}

// Predicate is the conjunction of every WHERE comparison, keyed by
// column name. Per spec §4.1, a second conjunct on the same column
// overwrites the first — this is modeled directly by map assignment,
// not guarded against.
type Predicate map[string]Condition

// Assignment is one `column = literal` pair from a SET clause.
type Assignment struct {
	Column string
	Value  core.Value
}

// JoinSpec describes the single supported join shape: two tables, one
// equality condition. Left/Right are exactly as written in the ON
// clause — possibly qualified with "table.", possibly bare — resolved
// against LeftTable/RightTable by the executor (spec §4.3).
type JoinSpec struct {
	LeftTable  string
	RightTable string
	OnLeft     string
	OnRight    string
}

// Plan is the structural result of parsing one statement. Only the
// fields relevant to Kind are populated; it is a flat record rather
// than a set of separate types because the statements share enough
// shape (table name, predicate, projection) that one struct reads
// better than a type switch over nine near-identical structs.
type Plan struct {
	Kind Kind

	Table string // CreateTable, Insert, Select, Update, Delete, Describe, DropTable

	// CreateTable
	Columns []core.ColumnDef

	// Insert
	InsertColumns []string // nil => positional INSERT INTO t VALUES (...)
	Values        []core.Value

	// Select / SelectJoin
	Star       bool
	Projection []string
	Join       *JoinSpec

	// Update
	Assignments []Assignment

	// Select / SelectJoin / Update / Delete
	Where Predicate
}
