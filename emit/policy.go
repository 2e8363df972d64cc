package emit

import (
	"strings"

	"github.com/pgdelta/pgdelta-go/change"
	"github.com/pgdelta/pgdelta-go/sqlfmt"
)

func emitCreatePolicy(c *change.CreatePolicy) string {
	var b strings.Builder
	b.WriteString("CREATE POLICY ")
	b.WriteString(sqlfmt.QuoteIdent(c.Name))
	b.WriteString(" ON ")
	b.WriteString(sqlfmt.QuoteQualified(c.Schema, c.Table))
	if !c.Permissive {
		b.WriteString(" AS RESTRICTIVE")
	}
	if c.Command != "" && c.Command != "ALL" {
		b.WriteString(" FOR ")
		b.WriteString(c.Command)
	}
	if len(c.Roles) > 0 {
		b.WriteString(" TO ")
		b.WriteString(strings.Join(c.Roles, ", "))
	}
	if c.UsingExpr != "" {
		b.WriteString(" USING (")
		b.WriteString(c.UsingExpr)
		b.WriteString(")")
	}
	if c.CheckExpr != "" {
		b.WriteString(" WITH CHECK (")
		b.WriteString(c.CheckExpr)
		b.WriteString(")")
	}
	return b.String()
}

func emitAlterPolicy(c *change.AlterPolicy) string {
	var b strings.Builder
	b.WriteString("ALTER POLICY ")
	b.WriteString(sqlfmt.QuoteIdent(c.Name))
	b.WriteString(" ON ")
	b.WriteString(sqlfmt.QuoteQualified(c.Schema, c.Table))
	if len(c.Roles) > 0 {
		b.WriteString(" TO ")
		b.WriteString(strings.Join(c.Roles, ", "))
	}
	if c.UsingExpr != "" {
		b.WriteString(" USING (")
		b.WriteString(c.UsingExpr)
		b.WriteString(")")
	}
	if c.CheckExpr != "" {
		b.WriteString(" WITH CHECK (")
		b.WriteString(c.CheckExpr)
		b.WriteString(")")
	}
	b.WriteString(";")
	return b.String()
}
