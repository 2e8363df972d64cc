package extract

import (
	"context"
	"database/sql"

	"github.com/pgdelta/pgdelta-go/catalog"
)

func extractFunctions(ctx context.Context, db *sql.DB) (map[string]*catalog.Function, error) {
	query := `
		SELECT
			n.nspname, p.proname, pg_get_function_identity_arguments(p.oid),
			pg_get_functiondef(p.oid) AS definition,
			pg_get_function_result(p.oid) AS return_type,
			l.lanname, p.provolatile, p.proisstrict, p.prosecdef, p.oid
		FROM pg_proc p
		JOIN pg_namespace n ON n.oid = p.pronamespace
		JOIN pg_language l ON l.oid = p.prolang
		WHERE p.prokind = 'f' AND ` + schemaFilter

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]*catalog.Function)
	for rows.Next() {
		f := &catalog.Function{}
		var volatility string
		if err := rows.Scan(&f.Schema, &f.Name, &f.ArgTypesSuffix, &f.Definition,
			&f.ReturnType, &f.Language, &volatility, &f.IsStrict, &f.IsSecurityDefiner,
			&f.OID); err != nil {
			return nil, err
		}
		f.Volatility = catalog.FunctionVolatility(volatility)
		out[f.StableID()] = f
	}
	return out, rows.Err()
}

func extractProcedures(ctx context.Context, db *sql.DB) (map[string]*catalog.Procedure, error) {
	query := `
		SELECT
			n.nspname, p.proname, pg_get_function_identity_arguments(p.oid),
			pg_get_functiondef(p.oid) AS definition, l.lanname, p.oid
		FROM pg_proc p
		JOIN pg_namespace n ON n.oid = p.pronamespace
		JOIN pg_language l ON l.oid = p.prolang
		WHERE p.prokind = 'p' AND ` + schemaFilter

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]*catalog.Procedure)
	for rows.Next() {
		p := &catalog.Procedure{}
		if err := rows.Scan(&p.Schema, &p.Name, &p.ArgTypesSuffix, &p.Definition, &p.Language, &p.OID); err != nil {
			return nil, err
		}
		out[p.StableID()] = p
	}
	return out, rows.Err()
}
