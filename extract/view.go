package extract

import (
	"context"
	"database/sql"
	"strings"

	"github.com/pgdelta/pgdelta-go/catalog"
)

func extractViews(ctx context.Context, db *sql.DB) (map[string]*catalog.View, error) {
	query := `
		SELECT n.nspname, c.relname, pg_get_viewdef(c.oid, true) AS definition, c.oid
		FROM pg_class c
		JOIN pg_namespace n ON n.oid = c.relnamespace
		WHERE c.relkind = 'v' AND ` + schemaFilter

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]*catalog.View)
	relids := map[string]int64{}
	for rows.Next() {
		v := &catalog.View{}
		var oid int64
		if err := rows.Scan(&v.Schema, &v.Name, &v.Definition, &oid); err != nil {
			return nil, err
		}
		v.Definition = normalizeDefinition(v.Definition)
		out[v.StableID()] = v
		relids[v.StableID()] = oid
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for id, v := range out {
		cols, err := extractRelationColumnNames(ctx, db, relids[id])
		if err != nil {
			return nil, err
		}
		v.Columns = cols
	}
	return out, nil
}

func extractMaterializedViews(ctx context.Context, db *sql.DB) (map[string]*catalog.MaterializedView, error) {
	query := `
		SELECT n.nspname, c.relname, pg_get_viewdef(c.oid, true) AS definition, c.oid
		FROM pg_class c
		JOIN pg_namespace n ON n.oid = c.relnamespace
		WHERE c.relkind = 'm' AND ` + schemaFilter

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]*catalog.MaterializedView)
	relids := map[string]int64{}
	for rows.Next() {
		mv := &catalog.MaterializedView{}
		var oid int64
		if err := rows.Scan(&mv.Schema, &mv.Name, &mv.Definition, &oid); err != nil {
			return nil, err
		}
		mv.Definition = normalizeDefinition(mv.Definition)
		out[mv.StableID()] = mv
		relids[mv.StableID()] = oid
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for id, mv := range out {
		cols, err := extractRelationColumnNames(ctx, db, relids[id])
		if err != nil {
			return nil, err
		}
		mv.Columns = cols
	}
	return out, nil
}

// extractRelationColumnNames returns a relation's column names in ordinal
// position order, used for views and materialized views where the column
// list itself (not just the query text) is part of semantic identity.
func extractRelationColumnNames(ctx context.Context, db *sql.DB, relid int64) ([]string, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT attname FROM pg_attribute
		WHERE attrelid = $1 AND attnum > 0 AND NOT attisdropped
		ORDER BY attnum`, relid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cols []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		cols = append(cols, name)
	}
	return cols, rows.Err()
}

// normalizeDefinition strips a trailing semicolon and surrounding
// whitespace so textually-equivalent view definitions compare equal
// regardless of how pg_get_viewdef happened to format them.
func normalizeDefinition(def string) string {
	return strings.TrimSuffix(strings.TrimSpace(def), ";")
}
