package differ

import (
	"github.com/pgdelta/pgdelta-go/catalog"
	"github.com/pgdelta/pgdelta-go/change"
)

// diffColumns compares two tables' columns, keyed by name, and returns the
// ordered ColumnOp list for the owning AlterTable. It returns nil if there
// is nothing to do.
func diffColumns(source, target map[string]*catalog.Column) []change.ColumnOp {
	var ops []change.ColumnOp
	for _, name := range sortedKeys(source, target) {
		s, sOK := source[name]
		t, tOK := target[name]
		switch {
		case !sOK:
			ops = append(ops, change.AddColumn{Column: columnDef(t)})
		case !tOK:
			ops = append(ops, change.DropColumn{ColumnName: s.Name})
		case s.SemanticEqual(t):
			continue
		case s.IsGenerated || t.IsGenerated || s.IsIdentity != t.IsIdentity:
			// Neither generation expressions nor identity-ness can be
			// altered in place; recreate the column instead.
			ops = append(ops, change.DropColumn{ColumnName: s.Name})
			ops = append(ops, change.AddColumn{Column: columnDef(t)})
		default:
			ops = append(ops, diffSingleColumn(s, t)...)
		}
	}
	return ops
}

func diffSingleColumn(s, t *catalog.Column) []change.ColumnOp {
	var ops []change.ColumnOp
	if s.DataType != t.DataType {
		ops = append(ops, change.AlterColumnType{ColumnName: s.Name, NewType: t.DataType})
	}
	switch {
	case t.DefaultValue == nil && s.DefaultValue != nil:
		ops = append(ops, change.AlterColumnDropDefault{ColumnName: s.Name})
	case t.DefaultValue != nil && (s.DefaultValue == nil || *s.DefaultValue != *t.DefaultValue):
		ops = append(ops, change.AlterColumnSetDefault{ColumnName: s.Name, DefaultExpression: *t.DefaultValue})
	}
	switch {
	case s.Nullable && !t.Nullable:
		ops = append(ops, change.AlterColumnSetNotNull{ColumnName: s.Name})
	case !s.Nullable && t.Nullable:
		ops = append(ops, change.AlterColumnDropNotNull{ColumnName: s.Name})
	}
	return ops
}

func columnDef(c *catalog.Column) change.ColumnDef {
	def := change.ColumnDef{
		Name:         c.Name,
		DataType:     c.DataType,
		Nullable:     c.Nullable,
		DefaultValue: c.DefaultValue,
	}
	if c.IsIdentity {
		def.Identity = &change.IdentityDef{
			Generation: c.IdentityGeneration,
			Start:      c.IdentityStart,
			Increment:  c.IdentityIncrement,
		}
	}
	return def
}
