package differ

import (
	"github.com/pgdelta/pgdelta-go/catalog"
	"github.com/pgdelta/pgdelta-go/change"
)

// diffPolicies uses ALTER POLICY for roles/using/check changes, which
// Postgres supports in place; Command and Permissive have no ALTER path.
func diffPolicies(source, target *catalog.Catalog) []change.Change {
	var out []change.Change
	for _, id := range sortedKeys(source.Policies, target.Policies) {
		s, sOK := source.Policies[id]
		t, tOK := target.Policies[id]
		switch {
		case !sOK:
			out = append(out, &change.CreatePolicy{ID: id, Schema: t.Schema, Table: t.Table, Name: t.Name, Command: t.Command, Permissive: t.Permissive, Roles: t.Roles, UsingExpr: t.UsingExpr, CheckExpr: t.CheckExpr})
		case !tOK:
			out = append(out, &change.DropPolicy{ID: id, Schema: s.Schema, Table: s.Table, Name: s.Name})
		case s.SemanticEqual(t):
			continue
		case s.Command != t.Command || s.Permissive != t.Permissive:
			out = append(out, &change.DropPolicy{ID: id, Schema: s.Schema, Table: s.Table, Name: s.Name})
			out = append(out, &change.CreatePolicy{ID: id, Schema: t.Schema, Table: t.Table, Name: t.Name, Command: t.Command, Permissive: t.Permissive, Roles: t.Roles, UsingExpr: t.UsingExpr, CheckExpr: t.CheckExpr})
		default:
			out = append(out, &change.AlterPolicy{ID: id, Schema: t.Schema, Table: t.Table, Name: t.Name, Roles: t.Roles, UsingExpr: t.UsingExpr, CheckExpr: t.CheckExpr})
		}
	}
	return out
}
