package differ

import (
	"github.com/pgdelta/pgdelta-go/catalog"
	"github.com/pgdelta/pgdelta-go/change"
)

// diffExtensions treats a version-only difference as an in-place ALTER
// EXTENSION ... UPDATE TO; anything else (schema move) is drop-then-create.
func diffExtensions(source, target *catalog.Catalog) []change.Change {
	var out []change.Change
	for _, id := range sortedKeys(source.Extensions, target.Extensions) {
		s, sOK := source.Extensions[id]
		t, tOK := target.Extensions[id]
		switch {
		case !sOK:
			out = append(out, &change.CreateExtension{ID: id, Schema: t.Schema, Name: t.Name, Version: t.Version})
		case !tOK:
			out = append(out, &change.DropExtension{ID: id, Schema: s.Schema, Name: s.Name})
		case s.SemanticEqual(t):
			continue
		case s.Schema == t.Schema && s.Name == t.Name && s.Version != t.Version:
			out = append(out, &change.AlterExtensionVersion{ID: id, Schema: t.Schema, Name: t.Name, NewVersion: t.Version})
		default:
			out = append(out, &change.DropExtension{ID: id, Schema: s.Schema, Name: s.Name})
			out = append(out, &change.CreateExtension{ID: id, Schema: t.Schema, Name: t.Name, Version: t.Version})
		}
	}
	return out
}
