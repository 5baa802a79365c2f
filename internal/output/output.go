// Package output renders an executor.Result for a human terminal or as
// JSON, the way Pieczasz-smf's internal/output package offers a
// Formatter per output mode (internal/output/formatter.go) rather than
// hard-coding one rendering. The out-of-scope REPL (spec.md §1) is the
// grounding for the human table mode; the REST facade would use JSON
// directly off Result and has no use for this package.
package output

import (
	"fmt"
	"strings"

	"rdbms/internal/executor"
)

// Format selects how Render presents a Result.
type Format string

const (
	FormatHuman Format = "human"
	FormatJSON  Format = "json"
)

// NewFormat parses a --format flag value, defaulting to human when empty.
func NewFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "", FormatHuman:
		return FormatHuman, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s; use 'human' or 'json'", name)
	}
}

// Render formats res per format, matching whichever fields of Result
// the statement that produced it populated.
func Render(res executor.Result, format Format) (string, error) {
	if format == FormatJSON {
		return renderJSON(res)
	}
	return renderHuman(res), nil
}
