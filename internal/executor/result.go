// Package executor ties the parser and storage engine together
// (spec.md §4.3): it parses a SQL statement, interprets the resulting
// Plan against a storage.Engine, and returns a structured Result. The
// executor never lets an error cross its boundary as a panic or
// exception — every failure becomes Result{Success: false}.
package executor

// DescribeColumn is one row of a DESCRIBE result.
type DescribeColumn struct {
	Column      string `json:"column"`
	Type        string `json:"type"`
	Constraints string `json:"constraints,omitempty"`
}

// Result is the structured payload returned by Execute, matching the
// per-plan success shapes of spec.md §6. Only the fields relevant to
// the statement that produced it are populated.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`

	RowID int `json:"row_id,omitempty"`

	Rows  []map[string]any `json:"rows,omitempty"`
	Count int              `json:"count,omitempty"`

	UpdatedCount int `json:"updated_count,omitempty"`
	DeletedCount int `json:"deleted_count,omitempty"`

	Tables []string `json:"tables,omitempty"`

	Table    string           `json:"table,omitempty"`
	Columns  []DescribeColumn `json:"columns,omitempty"`
	RowCount int              `json:"row_count,omitempty"`
}

func failure(err error) Result {
	return Result{Success: false, Error: err.Error()}
}
