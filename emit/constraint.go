package emit

import (
	"strings"

	"github.com/pgdelta/pgdelta-go/change"
	"github.com/pgdelta/pgdelta-go/sqlfmt"
)

func emitAlterConstraint(c *change.AlterConstraint) string {
	table := sqlfmt.QuoteQualified(c.Schema, c.Table)
	name := sqlfmt.QuoteIdent(c.Name)

	var stmts []string
	if c.SetDeferrable != nil || c.SetInitiallyDeferred != nil {
		clause := "ALTER CONSTRAINT " + name
		if c.SetDeferrable != nil {
			if *c.SetDeferrable {
				clause += " DEFERRABLE"
			} else {
				clause += " NOT DEFERRABLE"
			}
		}
		if c.SetInitiallyDeferred != nil {
			if *c.SetInitiallyDeferred {
				clause += " INITIALLY DEFERRED"
			} else {
				clause += " INITIALLY IMMEDIATE"
			}
		}
		stmts = append(stmts, "ALTER TABLE "+table+" "+clause+";")
	}
	if c.Validate {
		stmts = append(stmts, "ALTER TABLE "+table+" VALIDATE CONSTRAINT "+name+";")
	}
	return strings.Join(stmts, "\n")
}
