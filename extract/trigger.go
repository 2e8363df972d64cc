package extract

import (
	"context"
	"database/sql"

	"github.com/pgdelta/pgdelta-go/catalog"
)

func extractTriggers(ctx context.Context, db *sql.DB) (map[string]*catalog.Trigger, error) {
	// tgisinternal excludes triggers backing constraints (e.g. foreign keys)
	// and extension-owned triggers, which are not independently managed DDL.
	query := `
		SELECT
			n.nspname, t.relname AS table_name, tg.tgname,
			pg_get_triggerdef(tg.oid) AS definition,
			p.proname, tg.oid
		FROM pg_trigger tg
		JOIN pg_class t ON t.oid = tg.tgrelid
		JOIN pg_namespace n ON n.oid = t.relnamespace
		JOIN pg_proc p ON p.oid = tg.tgfoid
		WHERE NOT tg.tgisinternal AND ` + schemaFilter

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]*catalog.Trigger)
	for rows.Next() {
		t := &catalog.Trigger{}
		if err := rows.Scan(&t.Schema, &t.Table, &t.Name, &t.Definition,
			&t.FunctionName, &t.OID); err != nil {
			return nil, err
		}
		out[t.StableID()] = t
	}
	return out, rows.Err()
}
