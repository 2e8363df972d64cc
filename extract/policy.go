package extract

import (
	"context"
	"database/sql"

	"github.com/pgdelta/pgdelta-go/catalog"
	"github.com/lib/pq"
)

func extractPolicies(ctx context.Context, db *sql.DB) (map[string]*catalog.Policy, error) {
	query := `
		SELECT
			n.nspname, c.relname, pol.polname, pol.polcmd::text,
			pol.polpermissive,
			COALESCE(ARRAY(SELECT rolname FROM pg_roles WHERE oid = ANY(pol.polroles)), ARRAY[]::text[]),
			COALESCE(pg_get_expr(pol.polqual, pol.polrelid), ''),
			COALESCE(pg_get_expr(pol.polwithcheck, pol.polrelid), ''), pol.oid
		FROM pg_policy pol
		JOIN pg_class c ON c.oid = pol.polrelid
		JOIN pg_namespace n ON n.oid = c.relnamespace
		WHERE ` + schemaFilter

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]*catalog.Policy)
	for rows.Next() {
		p := &catalog.Policy{}
		var cmd string
		var roles pq.StringArray
		if err := rows.Scan(&p.Schema, &p.Table, &p.Name, &cmd, &p.Permissive,
			&roles, &p.UsingExpr, &p.CheckExpr, &p.OID); err != nil {
			return nil, err
		}
		p.Command = policyCommandName(cmd)
		p.Roles = []string(roles)
		out[p.StableID()] = p
	}
	return out, rows.Err()
}

// policyCommandName expands pg_policy.polcmd's single-character code to the
// SQL keyword used in a CREATE POLICY ... FOR clause.
func policyCommandName(code string) string {
	switch code {
	case "r":
		return "SELECT"
	case "a":
		return "INSERT"
	case "w":
		return "UPDATE"
	case "d":
		return "DELETE"
	default:
		return "ALL"
	}
}
