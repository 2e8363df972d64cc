package differ

import (
	"sort"

	"github.com/pgdelta/pgdelta-go/catalog"
	"github.com/pgdelta/pgdelta-go/change"
)

// diffTables compares tables and their owned columns. Partition
// strategy/parent/bound changes have no ALTER path and force drop-then-
// create; everything else is expressed as a single AlterTable, emitted only
// if it ends up with a non-empty operation list.
func diffTables(source, target *catalog.Catalog) []change.Change {
	var out []change.Change
	for _, id := range sortedKeys(source.Tables, target.Tables) {
		s, sOK := source.Tables[id]
		t, tOK := target.Tables[id]
		switch {
		case !sOK:
			out = append(out, createTable(id, t, target))
		case !tOK:
			out = append(out, &change.DropTable{ID: id, Schema: s.Schema, Name: s.Name})
		case tablesNeedRecreate(s, t):
			out = append(out, &change.DropTable{ID: id, Schema: s.Schema, Name: s.Name})
			out = append(out, createTable(id, t, target))
		default:
			if alter := alterTable(id, s, t, source, target); alter != nil {
				out = append(out, alter)
			}
		}
	}
	return out
}

func tablesNeedRecreate(s, t *catalog.Table) bool {
	return s.IsPartitioned != t.IsPartitioned ||
		s.PartitionStrategy != t.PartitionStrategy ||
		s.PartitionKey != t.PartitionKey ||
		s.PartitionOf != t.PartitionOf ||
		s.PartitionBound != t.PartitionBound
}

func createTable(id string, t *catalog.Table, target *catalog.Catalog) *change.CreateTable {
	cols := columnsForTable(target.Columns, t.Schema, t.Name)
	defs := make([]change.ColumnDef, len(cols))
	for i, c := range cols {
		defs[i] = columnDef(c)
	}
	return &change.CreateTable{ID: id, Schema: t.Schema, Name: t.Name, Columns: defs}
}

func alterTable(id string, s, t *catalog.Table, source, target *catalog.Catalog) *change.AlterTable {
	sourceCols := columnMapForTable(source.Columns, s.Schema, s.Name)
	targetCols := columnMapForTable(target.Columns, t.Schema, t.Name)

	ops := diffColumns(sourceCols, targetCols)
	if s.RowSecurityEnabled != t.RowSecurityEnabled {
		if t.RowSecurityEnabled {
			ops = append(ops, change.EnableRowLevelSecurity{})
		} else {
			ops = append(ops, change.DisableRowLevelSecurity{})
		}
	}
	if len(ops) == 0 {
		return nil
	}
	change.SortColumnOps(ops)
	return &change.AlterTable{ID: id, Schema: t.Schema, Name: t.Name, Operations: ops}
}

// columnsForTable returns a table's columns in extractor-provided position
// order, not name order: column order affects the generated CREATE TABLE's
// column list and must round-trip to the same Position values on
// re-extraction.
func columnsForTable(columns map[string]*catalog.Column, schema, table string) []*catalog.Column {
	m := columnMapForTable(columns, schema, table)
	out := make([]*catalog.Column, 0, len(m))
	for _, c := range m {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

func columnMapForTable(columns map[string]*catalog.Column, schema, table string) map[string]*catalog.Column {
	out := make(map[string]*catalog.Column)
	for _, c := range columns {
		if c.Schema == schema && c.Table == table {
			out[c.Name] = c
		}
	}
	return out
}
