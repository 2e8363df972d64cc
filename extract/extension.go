package extract

import (
	"context"
	"database/sql"

	"github.com/pgdelta/pgdelta-go/catalog"
)

func extractExtensions(ctx context.Context, db *sql.DB) (map[string]*catalog.Extension, error) {
	query := `
		SELECT n.nspname, e.extname, e.extversion, e.oid
		FROM pg_extension e
		JOIN pg_namespace n ON n.oid = e.extnamespace`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]*catalog.Extension)
	for rows.Next() {
		e := &catalog.Extension{}
		if err := rows.Scan(&e.Schema, &e.Name, &e.Version, &e.OID); err != nil {
			return nil, err
		}
		out[e.StableID()] = e
	}
	return out, rows.Err()
}
