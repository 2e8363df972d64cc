package differ

import (
	"github.com/pgdelta/pgdelta-go/catalog"
	"github.com/pgdelta/pgdelta-go/change"
)

// diffMaterializedViews always lowers a definition change to
// ReplaceMaterializedView, which the emitter renders as DROP followed by
// CREATE since Postgres has no in-place ALTER for a materialized view's
// query.
func diffMaterializedViews(source, target *catalog.Catalog) []change.Change {
	var out []change.Change
	for _, id := range sortedKeys(source.MaterializedViews, target.MaterializedViews) {
		s, sOK := source.MaterializedViews[id]
		t, tOK := target.MaterializedViews[id]
		switch {
		case !sOK:
			out = append(out, &change.CreateMaterializedView{ID: id, Schema: t.Schema, Name: t.Name, Definition: t.Definition})
		case !tOK:
			out = append(out, &change.DropMaterializedView{ID: id, Schema: s.Schema, Name: s.Name})
		case !s.SemanticEqual(t):
			out = append(out, &change.ReplaceMaterializedView{ID: id, Schema: t.Schema, Name: t.Name, Definition: t.Definition})
		}
	}
	return out
}
