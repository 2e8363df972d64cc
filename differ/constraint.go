package differ

import (
	"github.com/pgdelta/pgdelta-go/catalog"
	"github.com/pgdelta/pgdelta-go/change"
)

// diffConstraints treats deferrability and validity as the only in-place-
// alterable properties; any other difference (definition text, columns,
// foreign key target) is drop-then-create since Postgres has no general
// ALTER CONSTRAINT for those. A constraint can only move from NOT VALID to
// validated in place (VALIDATE CONSTRAINT); the reverse has no ALTER path
// and forces drop-then-create like any other structural change.
func diffConstraints(source, target *catalog.Catalog) []change.Change {
	var out []change.Change
	for _, id := range sortedKeys(source.Constraints, target.Constraints) {
		s, sOK := source.Constraints[id]
		t, tOK := target.Constraints[id]
		switch {
		case !sOK:
			out = append(out, &change.CreateConstraint{ID: id, Schema: t.Schema, Table: t.Table, Name: t.Name, Definition: t.Definition})
		case !tOK:
			out = append(out, &change.DropConstraint{ID: id, Schema: s.Schema, Table: s.Table, Name: s.Name})
		case s.SemanticEqual(t):
			continue
		case s.Definition == t.Definition && !(s.Validated && !t.Validated):
			out = append(out, alterConstraint(id, s, t))
		default:
			out = append(out, &change.DropConstraint{ID: id, Schema: s.Schema, Table: s.Table, Name: s.Name})
			out = append(out, &change.CreateConstraint{ID: id, Schema: t.Schema, Table: t.Table, Name: t.Name, Definition: t.Definition})
		}
	}
	return out
}

func alterConstraint(id string, s, t *catalog.Constraint) *change.AlterConstraint {
	a := &change.AlterConstraint{ID: id, Schema: t.Schema, Table: t.Table, Name: t.Name}
	if s.Deferrable != t.Deferrable {
		v := t.Deferrable
		a.SetDeferrable = &v
	}
	if s.InitiallyDeferred != t.InitiallyDeferred {
		v := t.InitiallyDeferred
		a.SetInitiallyDeferred = &v
	}
	if !s.Validated && t.Validated {
		a.Validate = true
	}
	return a
}
