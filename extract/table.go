package extract

import (
	"context"
	"database/sql"

	"github.com/pgdelta/pgdelta-go/catalog"
)

func extractTables(ctx context.Context, db *sql.DB) (map[string]*catalog.Table, error) {
	query := `
		SELECT
			n.nspname, c.relname, c.oid,
			pg_get_userbyid(c.relowner) AS owner,
			c.relkind = 'p' AS is_partitioned,
			COALESCE(pg_get_expr(c.relpartbound, c.oid), '') AS partition_bound,
			c.relrowsecurity AS row_security_enabled
		FROM pg_class c
		JOIN pg_namespace n ON n.oid = c.relnamespace
		WHERE c.relkind IN ('r', 'p') AND ` + schemaFilter

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]*catalog.Table)
	for rows.Next() {
		t := &catalog.Table{}
		if err := rows.Scan(&t.Schema, &t.Name, &t.OID, &t.Owner, &t.IsPartitioned,
			&t.PartitionBound, &t.RowSecurityEnabled); err != nil {
			return nil, err
		}
		if parent, ok, perr := partitionParent(ctx, db, t.OID); perr == nil && ok {
			t.PartitionOf = parent
		}
		out[t.StableID()] = t
	}
	return out, rows.Err()
}

func partitionParent(ctx context.Context, db *sql.DB, oid int64) (string, bool, error) {
	var parent string
	err := db.QueryRowContext(ctx, `
		SELECT pn.nspname || '.' || pc.relname
		FROM pg_inherits i
		JOIN pg_class pc ON pc.oid = i.inhparent
		JOIN pg_namespace pn ON pn.oid = pc.relnamespace
		WHERE i.inhrelid = $1`, oid).Scan(&parent)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return parent, true, nil
}
