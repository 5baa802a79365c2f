package parser

import (
	"fmt"
	"regexp"

	"rdbms/internal/rdbmserr"
)

// dropTableRe recognizes DROP TABLE, a storage operation the original
// Python exposes (storage_engine.py's drop_table) but the distilled
// spec never routes through execute(sql). SPEC_FULL.md supplements it
// back in as a statement rather than leaving it storage-engine-only.
var dropTableRe = regexp.MustCompile(`(?is)^DROP\s+TABLE\s+(\S+)\s*$`)

func parseDropTable(stmt string) (Plan, error) {
	m := dropTableRe.FindStringSubmatch(stmt)
	if m == nil {
		return Plan{}, fmt.Errorf("invalid drop table syntax: %w", rdbmserr.ErrSyntax)
	}
	return Plan{Kind: KindDropTable, Table: m[1]}, nil
}
