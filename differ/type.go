package differ

import (
	"strings"

	"github.com/pgdelta/pgdelta-go/catalog"
	"github.com/pgdelta/pgdelta-go/change"
	"github.com/pgdelta/pgdelta-go/sqlfmt"
)

// diffTypes special-cases enums whose target labels are a superset of the
// source's, in the source's original order: that shape has an ALTER TYPE
// ... ADD VALUE path and never needs a drop. Everything else (composite
// field changes, domain constraint changes, enum reorders/removals) is
// drop-then-create, since none of those have an in-place ALTER in Postgres.
func diffTypes(source, target *catalog.Catalog) []change.Change {
	var out []change.Change
	for _, id := range sortedKeys(source.Types, target.Types) {
		s, sOK := source.Types[id]
		t, tOK := target.Types[id]
		switch {
		case !sOK:
			out = append(out, &change.CreateType{ID: id, Schema: t.Schema, Name: t.Name, Definition: renderCreateType(t)})
		case !tOK:
			out = append(out, &change.DropType{ID: id, Schema: s.Schema, Name: s.Name})
		case s.SemanticEqual(t):
			continue
		case s.Kind == catalog.TypeEnum && t.Kind == catalog.TypeEnum && s.EnumOnlyAppended(t):
			after := ""
			if len(s.Labels) > 0 {
				after = s.Labels[len(s.Labels)-1]
			}
			for _, label := range s.EnumAddedLabels(t) {
				out = append(out, &change.AlterTypeAddValue{ID: id, Schema: t.Schema, Name: t.Name, Value: label, After: after})
				after = label
			}
		default:
			out = append(out, &change.DropType{ID: id, Schema: s.Schema, Name: s.Name})
			out = append(out, &change.CreateType{ID: id, Schema: t.Schema, Name: t.Name, Definition: renderCreateType(t)})
		}
	}
	return out
}

func renderCreateType(t *catalog.Type) string {
	qualified := sqlfmt.QuoteQualified(t.Schema, t.Name)
	switch t.Kind {
	case catalog.TypeEnum:
		labels := make([]string, len(t.Labels))
		for i, l := range t.Labels {
			labels[i] = sqlfmt.QuoteLiteral(l)
		}
		return "CREATE TYPE " + qualified + " AS ENUM (" + strings.Join(labels, ", ") + ")"
	case catalog.TypeComposite:
		fields := make([]string, len(t.Fields))
		for i, f := range t.Fields {
			fields[i] = sqlfmt.QuoteIdent(f.Name) + " " + f.DataType
		}
		return "CREATE TYPE " + qualified + " AS (" + strings.Join(fields, ", ") + ")"
	case catalog.TypeDomain:
		var b strings.Builder
		b.WriteString("CREATE DOMAIN ")
		b.WriteString(qualified)
		b.WriteString(" AS ")
		b.WriteString(t.BaseType)
		if t.NotNull {
			b.WriteString(" NOT NULL")
		}
		if t.Default != nil {
			b.WriteString(" DEFAULT ")
			b.WriteString(*t.Default)
		}
		if t.CheckExpr != "" {
			b.WriteString(" CHECK (")
			b.WriteString(t.CheckExpr)
			b.WriteString(")")
		}
		return b.String()
	default:
		return ""
	}
}
