package emit

import (
	"fmt"
	"strings"

	"github.com/pgdelta/pgdelta-go/change"
	"github.com/pgdelta/pgdelta-go/sqlfmt"
)

func emitCreateSequence(c *change.CreateSequence) string {
	var b strings.Builder
	b.WriteString("CREATE SEQUENCE ")
	b.WriteString(sqlfmt.QuoteQualified(c.Schema, c.Name))
	if c.DataType != "" {
		b.WriteString(" AS ")
		b.WriteString(c.DataType)
	}
	if c.Increment != 0 {
		fmt.Fprintf(&b, " INCREMENT BY %d", c.Increment)
	}
	if c.MinValue != nil {
		fmt.Fprintf(&b, " MINVALUE %d", *c.MinValue)
	}
	if c.MaxValue != nil {
		fmt.Fprintf(&b, " MAXVALUE %d", *c.MaxValue)
	}
	if c.StartValue != 0 {
		fmt.Fprintf(&b, " START WITH %d", c.StartValue)
	}
	if c.CacheSize != 0 {
		fmt.Fprintf(&b, " CACHE %d", c.CacheSize)
	}
	if c.Cycle {
		b.WriteString(" CYCLE")
	}
	return b.String()
}

func emitAlterSequence(c *change.AlterSequence) string {
	var clauses []string
	if c.Increment != nil {
		clauses = append(clauses, fmt.Sprintf("INCREMENT BY %d", *c.Increment))
	}
	if c.MinValue != nil {
		clauses = append(clauses, fmt.Sprintf("MINVALUE %d", *c.MinValue))
	}
	if c.MaxValue != nil {
		clauses = append(clauses, fmt.Sprintf("MAXVALUE %d", *c.MaxValue))
	}
	if c.RestartValue != nil {
		clauses = append(clauses, fmt.Sprintf("RESTART WITH %d", *c.RestartValue))
	}
	if c.CacheSize != nil {
		clauses = append(clauses, fmt.Sprintf("CACHE %d", *c.CacheSize))
	}
	if c.Cycle != nil {
		if *c.Cycle {
			clauses = append(clauses, "CYCLE")
		} else {
			clauses = append(clauses, "NO CYCLE")
		}
	}
	return "ALTER SEQUENCE " + sqlfmt.QuoteQualified(c.Schema, c.Name) + " " + strings.Join(clauses, " ") + ";"
}

func emitSetSequenceOwner(c *change.SetSequenceOwner) string {
	owner := sqlfmt.QuoteQualified(c.OwnedByTable, c.OwnedByColumn)
	return "ALTER SEQUENCE " + sqlfmt.QuoteQualified(c.Schema, c.Name) + " OWNED BY " + owner + ";"
}
