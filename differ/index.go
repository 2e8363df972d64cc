package differ

import (
	"github.com/pgdelta/pgdelta-go/catalog"
	"github.com/pgdelta/pgdelta-go/change"
)

// diffIndexes has no alter path in scope: any semantic difference is
// drop-then-create.
func diffIndexes(source, target *catalog.Catalog) []change.Change {
	var out []change.Change
	for _, id := range sortedKeys(source.Indexes, target.Indexes) {
		s, sOK := source.Indexes[id]
		t, tOK := target.Indexes[id]
		switch {
		case !sOK:
			out = append(out, &change.CreateIndex{ID: id, Schema: t.Schema, Table: t.Table, Name: t.Name, Definition: t.Definition})
		case !tOK:
			out = append(out, &change.DropIndex{ID: id, Schema: s.Schema, Table: s.Table, Name: s.Name})
		case !s.SemanticEqual(t):
			out = append(out, &change.DropIndex{ID: id, Schema: s.Schema, Table: s.Table, Name: s.Name})
			out = append(out, &change.CreateIndex{ID: id, Schema: t.Schema, Table: t.Table, Name: t.Name, Definition: t.Definition})
		}
	}
	return out
}
