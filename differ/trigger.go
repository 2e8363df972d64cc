package differ

import (
	"github.com/pgdelta/pgdelta-go/catalog"
	"github.com/pgdelta/pgdelta-go/change"
)

// diffTriggers has no alter path: any semantic difference is drop-then-create.
func diffTriggers(source, target *catalog.Catalog) []change.Change {
	var out []change.Change
	for _, id := range sortedKeys(source.Triggers, target.Triggers) {
		s, sOK := source.Triggers[id]
		t, tOK := target.Triggers[id]
		switch {
		case !sOK:
			out = append(out, &change.CreateTrigger{ID: id, Schema: t.Schema, Table: t.Table, Name: t.Name, Definition: t.Definition})
		case !tOK:
			out = append(out, &change.DropTrigger{ID: id, Schema: s.Schema, Table: s.Table, Name: s.Name})
		case !s.SemanticEqual(t):
			out = append(out, &change.DropTrigger{ID: id, Schema: s.Schema, Table: s.Table, Name: s.Name})
			out = append(out, &change.CreateTrigger{ID: id, Schema: t.Schema, Table: t.Table, Name: t.Name, Definition: t.Definition})
		}
	}
	return out
}
