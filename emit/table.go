package emit

import (
	"strings"

	"github.com/pgdelta/pgdelta-go/change"
	"github.com/pgdelta/pgdelta-go/pgerr"
	"github.com/pgdelta/pgdelta-go/sqlfmt"
)

func emitCreateTable(c *change.CreateTable) string {
	cols := make([]string, len(c.Columns))
	for i, col := range c.Columns {
		cols[i] = emitColumnDef(col)
	}
	return "CREATE TABLE " + sqlfmt.QuoteQualified(c.Schema, c.Name) + " (" + strings.Join(cols, ", ") + ")"
}

func emitColumnDef(col change.ColumnDef) string {
	var b strings.Builder
	b.WriteString(sqlfmt.QuoteIdent(col.Name))
	b.WriteString(" ")
	b.WriteString(col.DataType)
	if col.Identity != nil {
		b.WriteString(" GENERATED ")
		b.WriteString(col.Identity.Generation)
		b.WriteString(" AS IDENTITY")
	}
	if !col.Nullable {
		b.WriteString(" NOT NULL")
	}
	if col.DefaultValue != nil {
		b.WriteString(" DEFAULT ")
		b.WriteString(*col.DefaultValue)
	}
	return b.String()
}

func emitAlterTable(c *change.AlterTable) string {
	target := "ALTER TABLE " + sqlfmt.QuoteQualified(c.Schema, c.Name) + " "
	clauses := make([]string, len(c.Operations))
	for i, op := range c.Operations {
		clauses[i] = emitColumnOp(op)
	}
	return target + strings.Join(clauses, ", ") + ";"
}

func emitColumnOp(op change.ColumnOp) string {
	switch v := op.(type) {
	case change.AddColumn:
		return "ADD COLUMN " + emitColumnDef(v.Column)
	case change.DropColumn:
		return "DROP COLUMN " + sqlfmt.QuoteIdent(v.ColumnName)
	case change.AlterColumnType:
		stmt := "ALTER COLUMN " + sqlfmt.QuoteIdent(v.ColumnName) + " TYPE " + v.NewType
		if v.UsingExpression != "" {
			stmt += " USING " + v.UsingExpression
		}
		return stmt
	case change.AlterColumnSetDefault:
		return "ALTER COLUMN " + sqlfmt.QuoteIdent(v.ColumnName) + " SET DEFAULT " + v.DefaultExpression
	case change.AlterColumnDropDefault:
		return "ALTER COLUMN " + sqlfmt.QuoteIdent(v.ColumnName) + " DROP DEFAULT"
	case change.AlterColumnSetNotNull:
		return "ALTER COLUMN " + sqlfmt.QuoteIdent(v.ColumnName) + " SET NOT NULL"
	case change.AlterColumnDropNotNull:
		return "ALTER COLUMN " + sqlfmt.QuoteIdent(v.ColumnName) + " DROP NOT NULL"
	case change.EnableRowLevelSecurity:
		return "ENABLE ROW LEVEL SECURITY"
	case change.DisableRowLevelSecurity:
		return "DISABLE ROW LEVEL SECURITY"
	default:
		panic(&pgerr.UnsupportedChangeError{TypeName: "unknown column operation"})
	}
}
