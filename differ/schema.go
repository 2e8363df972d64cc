package differ

import (
	"github.com/pgdelta/pgdelta-go/catalog"
	"github.com/pgdelta/pgdelta-go/change"
)

// diffSchemas has no ALTER path in scope (owner changes are out of scope,
// see Non-goals): any difference is a drop-then-create.
func diffSchemas(source, target *catalog.Catalog) []change.Change {
	var out []change.Change
	for _, id := range sortedKeys(source.Schemas, target.Schemas) {
		s, sOK := source.Schemas[id]
		t, tOK := target.Schemas[id]
		switch {
		case !sOK:
			out = append(out, &change.CreateSchema{ID: id, Name: t.Name, Owner: t.Owner})
		case !tOK:
			out = append(out, &change.DropSchema{ID: id, Name: s.Name})
		case !s.SemanticEqual(t):
			out = append(out, &change.DropSchema{ID: id, Name: s.Name})
			out = append(out, &change.CreateSchema{ID: id, Name: t.Name, Owner: t.Owner})
		}
	}
	return out
}
