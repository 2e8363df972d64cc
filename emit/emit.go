// Package emit renders a Change into the DDL statement(s) that would apply
// it. Emit is a total, stateless dispatch: every Change variant produced by
// differ has exactly one case here, and reaching the default case is a
// programming error, not a data problem, so it panics rather than returning
// an error.
package emit

import (
	"fmt"
	"strings"

	"github.com/pgdelta/pgdelta-go/change"
	"github.com/pgdelta/pgdelta-go/pgerr"
	"github.com/pgdelta/pgdelta-go/sqlfmt"
)

// Emit renders one Change into one or more semicolon-terminated statements
// joined by newlines (a materialized-view Replace lowers to DROP then CREATE,
// and a constraint Alter that changes both deferrability and validation
// lowers to two ALTER TABLE statements; everything else is a single
// statement).
func Emit(c change.Change) string {
	switch v := c.(type) {
	case *change.CreateSchema:
		return fmt.Sprintf("CREATE SCHEMA %s;", sqlfmt.QuoteIdent(v.Name))
	case *change.DropSchema:
		return fmt.Sprintf("DROP SCHEMA %s;", sqlfmt.QuoteIdent(v.Name))

	case *change.CreateExtension:
		stmt := fmt.Sprintf("CREATE EXTENSION %s SCHEMA %s", sqlfmt.QuoteIdent(v.Name), sqlfmt.QuoteIdent(v.Schema))
		if v.Version != "" {
			stmt += " VERSION " + sqlfmt.QuoteLiteral(v.Version)
		}
		return stmt + ";"
	case *change.DropExtension:
		return fmt.Sprintf("DROP EXTENSION %s;", sqlfmt.QuoteIdent(v.Name))
	case *change.AlterExtensionVersion:
		return fmt.Sprintf("ALTER EXTENSION %s UPDATE TO %s;", sqlfmt.QuoteIdent(v.Name), sqlfmt.QuoteLiteral(v.NewVersion))

	case *change.CreateType:
		return v.Definition + ";"
	case *change.DropType:
		return fmt.Sprintf("DROP TYPE %s;", sqlfmt.QuoteQualified(v.Schema, v.Name))
	case *change.AlterTypeAddValue:
		stmt := fmt.Sprintf("ALTER TYPE %s ADD VALUE %s", sqlfmt.QuoteQualified(v.Schema, v.Name), sqlfmt.QuoteLiteral(v.Value))
		if v.After != "" {
			stmt += " AFTER " + sqlfmt.QuoteLiteral(v.After)
		}
		return stmt + ";"

	case *change.CreateSequence:
		return emitCreateSequence(v) + ";"
	case *change.DropSequence:
		return fmt.Sprintf("DROP SEQUENCE %s;", sqlfmt.QuoteQualified(v.Schema, v.Name))
	case *change.AlterSequence:
		return emitAlterSequence(v)
	case *change.SetSequenceOwner:
		return emitSetSequenceOwner(v)

	case *change.CreateTable:
		return emitCreateTable(v) + ";"
	case *change.DropTable:
		return fmt.Sprintf("DROP TABLE %s;", sqlfmt.QuoteQualified(v.Schema, v.Name))
	case *change.AlterTable:
		return emitAlterTable(v)

	case *change.CreateView:
		return fmt.Sprintf("CREATE VIEW %s AS %s;", sqlfmt.QuoteQualified(v.Schema, v.Name), v.Definition)
	case *change.DropView:
		return fmt.Sprintf("DROP VIEW %s;", sqlfmt.QuoteQualified(v.Schema, v.Name))
	case *change.ReplaceView:
		return replaceCreatePrefix(fmt.Sprintf("CREATE VIEW %s AS %s;", sqlfmt.QuoteQualified(v.Schema, v.Name), v.Definition), "VIEW")

	case *change.CreateMaterializedView:
		return fmt.Sprintf("CREATE MATERIALIZED VIEW %s AS %s;", sqlfmt.QuoteQualified(v.Schema, v.Name), v.Definition)
	case *change.DropMaterializedView:
		return fmt.Sprintf("DROP MATERIALIZED VIEW %s;", sqlfmt.QuoteQualified(v.Schema, v.Name))
	case *change.ReplaceMaterializedView:
		return fmt.Sprintf("DROP MATERIALIZED VIEW %s;\nCREATE MATERIALIZED VIEW %s AS %s;",
			sqlfmt.QuoteQualified(v.Schema, v.Name), sqlfmt.QuoteQualified(v.Schema, v.Name), v.Definition)

	case *change.CreateFunction:
		return v.Definition + ";"
	case *change.DropFunction:
		return fmt.Sprintf("DROP FUNCTION %s(%s);", sqlfmt.QuoteQualified(v.Schema, v.Name), v.ArgTypesSuffix)
	case *change.ReplaceFunction:
		return replaceCreatePrefix(v.Definition+";", "FUNCTION")

	case *change.CreateProcedure:
		return v.Definition + ";"
	case *change.DropProcedure:
		return fmt.Sprintf("DROP PROCEDURE %s(%s);", sqlfmt.QuoteQualified(v.Schema, v.Name), v.ArgTypesSuffix)
	case *change.ReplaceProcedure:
		return replaceCreatePrefix(v.Definition+";", "PROCEDURE")

	case *change.CreateConstraint:
		return fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s %s;",
			sqlfmt.QuoteQualified(v.Schema, v.Table), sqlfmt.QuoteIdent(v.Name), v.Definition)
	case *change.DropConstraint:
		return fmt.Sprintf("ALTER TABLE %s DROP CONSTRAINT %s;",
			sqlfmt.QuoteQualified(v.Schema, v.Table), sqlfmt.QuoteIdent(v.Name))
	case *change.AlterConstraint:
		return emitAlterConstraint(v)

	case *change.CreateIndex:
		return v.Definition + ";"
	case *change.DropIndex:
		return fmt.Sprintf("DROP INDEX %s;", sqlfmt.QuoteQualified(v.Schema, v.Name))

	case *change.CreatePolicy:
		return emitCreatePolicy(v) + ";"
	case *change.DropPolicy:
		return fmt.Sprintf("DROP POLICY %s ON %s;", sqlfmt.QuoteIdent(v.Name), sqlfmt.QuoteQualified(v.Schema, v.Table))
	case *change.AlterPolicy:
		return emitAlterPolicy(v)

	case *change.CreateTrigger:
		return v.Definition + ";"
	case *change.DropTrigger:
		return fmt.Sprintf("DROP TRIGGER %s ON %s;", sqlfmt.QuoteIdent(v.Name), sqlfmt.QuoteQualified(v.Schema, v.Table))

	default:
		panic(&pgerr.UnsupportedChangeError{TypeName: fmt.Sprintf("%T", c)})
	}
}

// EmitAll renders every change in order, one statement block per line group.
func EmitAll(changes []change.Change) []string {
	out := make([]string, len(changes))
	for i, c := range changes {
		out[i] = Emit(c)
	}
	return out
}

// replaceCreatePrefix substitutes the leading "CREATE <kind>" with
// "CREATE OR REPLACE <kind>" in a captured definition string, reusing the
// captured text verbatim rather than reconstructing it.
func replaceCreatePrefix(stmt, kind string) string {
	prefix := "CREATE " + kind
	if strings.HasPrefix(strings.ToUpper(stmt), prefix) {
		return "CREATE OR REPLACE" + stmt[len("CREATE"):]
	}
	return stmt
}
