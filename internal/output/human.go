package output

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"rdbms/internal/executor"
)

// renderHuman mirrors the REPL's result rendering (original_source's
// repl.py): a padded text table for row-shaped results, plain lines for
// SHOW TABLES, and the message/error string otherwise.
func renderHuman(res executor.Result) string {
	if !res.Success {
		return fmt.Sprintf("Error: %s\n", res.Error)
	}

	var sb strings.Builder

	switch {
	case res.Columns != nil:
		writeColumnsTable(&sb, res)
	case res.Rows != nil:
		writeRowsTable(&sb, res.Rows)
		fmt.Fprintf(&sb, "(%d row(s))\n", res.Count)
	case res.Tables != nil:
		for _, name := range res.Tables {
			fmt.Fprintln(&sb, name)
		}
		fmt.Fprintf(&sb, "(%d table(s))\n", len(res.Tables))
	case res.Message != "":
		fmt.Fprintln(&sb, res.Message)
	default:
		fmt.Fprintln(&sb, "OK")
	}

	return sb.String()
}

func writeColumnsTable(sb *strings.Builder, res executor.Result) {
	tw := tabwriter.NewWriter(sb, 0, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "COLUMN\tTYPE\tCONSTRAINTS")
	for _, c := range res.Columns {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Column, c.Type, c.Constraints)
	}
	tw.Flush()
}

// writeRowsTable renders rows as a padded table keyed by the union of
// every row's fields, sorted for a stable column order (map iteration
// order in Go is randomized, unlike the Python dict insertion order the
// REPL relies on).
func writeRowsTable(sb *strings.Builder, rows []map[string]any) {
	if len(rows) == 0 {
		fmt.Fprintln(sb, "(no rows)")
		return
	}

	seen := make(map[string]bool)
	var cols []string
	for _, row := range rows {
		for k := range row {
			if !seen[k] {
				seen[k] = true
				cols = append(cols, k)
			}
		}
	}
	sort.Strings(cols)

	tw := tabwriter.NewWriter(sb, 0, 2, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(cols, "\t"))
	for _, row := range rows {
		cells := make([]string, len(cols))
		for i, c := range cols {
			if v, ok := row[c]; ok {
				cells[i] = fmt.Sprintf("%v", v)
			}
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	tw.Flush()
}
