package executor

import (
	"fmt"

	"rdbms/internal/parser"
	"rdbms/internal/rdbmserr"
	"rdbms/internal/storage"
)

// Executor is the single entry point external collaborators (the
// REST facade, the interactive shell — both out of scope per spec.md
// §1) use to run SQL against a storage.Engine.
type Executor struct {
	engine *storage.Engine
	parser *parser.Parser
}

// New builds an Executor over the given storage engine. defaultVarcharLimit
// is engine.toml's default_varchar_limit (0 disables the fallback,
// matching spec §3's fail-closed bare-VARCHAR behavior exactly).
func New(engine *storage.Engine, defaultVarcharLimit int) *Executor {
	p := parser.NewParser()
	if defaultVarcharLimit > 0 {
		p = parser.NewParserWithDefaults(defaultVarcharLimit)
	}
	return &Executor{engine: engine, parser: p}
}

// Execute parses sql, interprets the resulting plan, and returns a
// Result. It never returns an error directly nor panics across its
// boundary — every failure is reported via Result.Success == false.
func (x *Executor) Execute(sql string) Result {
	plan, err := x.parser.Parse(sql)
	if err != nil {
		return failure(err)
	}

	switch plan.Kind {
	case parser.KindCreateTable:
		return x.execCreateTable(plan)
	case parser.KindInsert:
		return x.execInsert(plan)
	case parser.KindSelect:
		return x.execSelect(plan)
	case parser.KindSelectJoin:
		return x.execSelectJoin(plan)
	case parser.KindUpdate:
		return x.execUpdate(plan)
	case parser.KindDelete:
		return x.execDelete(plan)
	case parser.KindShowTables:
		return x.ShowTables()
	case parser.KindDescribe:
		return x.Describe(plan.Table)
	case parser.KindDropTable:
		return x.execDropTable(plan)
	default:
		return failure(fmt.Errorf("unrecognized plan kind %q: %w", plan.Kind, rdbmserr.ErrSyntax))
	}
}
