package extract

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"github.com/pgdelta/pgdelta-go/catalog"
)

func extractConstraints(ctx context.Context, db *sql.DB) (map[string]*catalog.Constraint, error) {
	query := `
		SELECT
			n.nspname, c.relname, con.conname, con.contype,
			pg_get_constraintdef(con.oid) AS definition,
			con.condeferrable, con.condeferred, con.convalidated, con.oid,
			COALESCE((
				SELECT array_agg(a.attname ORDER BY k.ord)
				FROM unnest(con.conkey) WITH ORDINALITY AS k(attnum, ord)
				JOIN pg_attribute a ON a.attrelid = con.conrelid AND a.attnum = k.attnum
			), ARRAY[]::text[]),
			COALESCE(fn.nspname, ''), COALESCE(fc.relname, ''),
			COALESCE((
				SELECT array_agg(a.attname ORDER BY k.ord)
				FROM unnest(con.confkey) WITH ORDINALITY AS k(attnum, ord)
				JOIN pg_attribute a ON a.attrelid = con.confrelid AND a.attnum = k.attnum
			), ARRAY[]::text[])
		FROM pg_constraint con
		JOIN pg_class c ON c.oid = con.conrelid
		JOIN pg_namespace n ON n.oid = c.relnamespace
		LEFT JOIN pg_class fc ON fc.oid = con.confrelid
		LEFT JOIN pg_namespace fn ON fn.oid = fc.relnamespace
		WHERE con.contype IN ('p', 'u', 'f', 'c', 'x') AND ` + schemaFilter

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]*catalog.Constraint)
	for rows.Next() {
		c := &catalog.Constraint{}
		var kind string
		var columns, foreignColumns pq.StringArray
		if err := rows.Scan(&c.Schema, &c.Table, &c.Name, &kind, &c.Definition,
			&c.Deferrable, &c.InitiallyDeferred, &c.Validated, &c.OID, &columns,
			&c.ForeignSchema, &c.ForeignTable, &foreignColumns); err != nil {
			return nil, err
		}
		c.Kind = catalog.ConstraintKind(kind)
		c.Columns = []string(columns)
		c.ForeignColumns = []string(foreignColumns)
		out[c.StableID()] = c
	}
	return out, rows.Err()
}
