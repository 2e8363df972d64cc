package differ

import (
	"github.com/pgdelta/pgdelta-go/catalog"
	"github.com/pgdelta/pgdelta-go/change"
)

func diffFunctions(source, target *catalog.Catalog) []change.Change {
	var out []change.Change
	for _, id := range sortedKeys(source.Functions, target.Functions) {
		s, sOK := source.Functions[id]
		t, tOK := target.Functions[id]
		switch {
		case !sOK:
			out = append(out, &change.CreateFunction{ID: id, Schema: t.Schema, Name: t.Name, Definition: t.Definition})
		case !tOK:
			out = append(out, &change.DropFunction{ID: id, Schema: s.Schema, Name: s.Name, ArgTypesSuffix: s.ArgTypesSuffix})
		case !s.SemanticEqual(t):
			if s.ReturnType != t.ReturnType {
				// CREATE OR REPLACE FUNCTION cannot change the return type.
				out = append(out, &change.DropFunction{ID: id, Schema: s.Schema, Name: s.Name, ArgTypesSuffix: s.ArgTypesSuffix})
				out = append(out, &change.CreateFunction{ID: id, Schema: t.Schema, Name: t.Name, Definition: t.Definition})
			} else {
				out = append(out, &change.ReplaceFunction{ID: id, Schema: t.Schema, Name: t.Name, Definition: t.Definition})
			}
		}
	}
	return out
}

func diffProcedures(source, target *catalog.Catalog) []change.Change {
	var out []change.Change
	for _, id := range sortedKeys(source.Procedures, target.Procedures) {
		s, sOK := source.Procedures[id]
		t, tOK := target.Procedures[id]
		switch {
		case !sOK:
			out = append(out, &change.CreateProcedure{ID: id, Schema: t.Schema, Name: t.Name, Definition: t.Definition})
		case !tOK:
			out = append(out, &change.DropProcedure{ID: id, Schema: s.Schema, Name: s.Name, ArgTypesSuffix: s.ArgTypesSuffix})
		case !s.SemanticEqual(t):
			out = append(out, &change.ReplaceProcedure{ID: id, Schema: t.Schema, Name: t.Name, Definition: t.Definition})
		}
	}
	return out
}
