package differ

import (
	"github.com/pgdelta/pgdelta-go/catalog"
	"github.com/pgdelta/pgdelta-go/change"
)

// diffViews always emits ReplaceView on any semantic difference. It does not
// attempt the CREATE OR REPLACE VIEW structural-compatibility analysis
// (column renames, reordering, mid-list drops) that would require falling
// back to drop-then-create; those cases are left for the emitted SQL to fail
// against, which is acceptable since Postgres itself rejects them clearly.
func diffViews(source, target *catalog.Catalog) []change.Change {
	var out []change.Change
	for _, id := range sortedKeys(source.Views, target.Views) {
		s, sOK := source.Views[id]
		t, tOK := target.Views[id]
		switch {
		case !sOK:
			out = append(out, &change.CreateView{ID: id, Schema: t.Schema, Name: t.Name, Definition: t.Definition})
		case !tOK:
			out = append(out, &change.DropView{ID: id, Schema: s.Schema, Name: s.Name})
		case !s.SemanticEqual(t):
			out = append(out, &change.ReplaceView{ID: id, Schema: t.Schema, Name: t.Name, Definition: t.Definition})
		}
	}
	return out
}
