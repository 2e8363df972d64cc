package extract

import (
	"context"
	"database/sql"

	"github.com/pgdelta/pgdelta-go/catalog"
)

func extractIndexes(ctx context.Context, db *sql.DB) (map[string]*catalog.Index, error) {
	// Constraint-backed indexes are captured as part of their owning
	// constraint's pg_get_constraintdef() output and are excluded here.
	query := `
		SELECT
			n.nspname, t.relname, i.relname AS index_name,
			pg_get_indexdef(ix.indexrelid) AS definition,
			ix.indisunique, ix.indisprimary,
			am.amname AS method, i.oid
		FROM pg_index ix
		JOIN pg_class i ON i.oid = ix.indexrelid
		JOIN pg_class t ON t.oid = ix.indrelid
		JOIN pg_namespace n ON n.oid = t.relnamespace
		JOIN pg_am am ON am.oid = i.relam
		WHERE NOT EXISTS (
			SELECT 1 FROM pg_constraint con WHERE con.conindid = ix.indexrelid
		) AND ` + schemaFilter

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]*catalog.Index)
	for rows.Next() {
		idx := &catalog.Index{}
		if err := rows.Scan(&idx.Schema, &idx.Table, &idx.Name, &idx.Definition,
			&idx.IsUnique, &idx.IsPrimary, &idx.Method, &idx.OID); err != nil {
			return nil, err
		}
		out[idx.StableID()] = idx
	}
	return out, rows.Err()
}
