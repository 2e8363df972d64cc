package extract

import (
	"context"
	"database/sql"

	"github.com/pgdelta/pgdelta-go/catalog"
)

func extractSchemas(ctx context.Context, db *sql.DB) (map[string]*catalog.Schema, error) {
	query := `
		SELECT n.oid, n.nspname, pg_get_userbyid(n.nspowner) AS owner
		FROM pg_namespace n
		WHERE ` + schemaFilter

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]*catalog.Schema)
	for rows.Next() {
		s := &catalog.Schema{}
		if err := rows.Scan(&s.OID, &s.Name, &s.Owner); err != nil {
			return nil, err
		}
		out[s.StableID()] = s
	}
	return out, rows.Err()
}
