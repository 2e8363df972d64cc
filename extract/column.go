package extract

import (
	"context"
	"database/sql"

	"github.com/pgdelta/pgdelta-go/catalog"
)

func extractColumns(ctx context.Context, db *sql.DB) (map[string]*catalog.Column, error) {
	query := `
		SELECT
			n.nspname, c.relname, a.attname, a.attnum,
			format_type(a.atttypid, a.atttypmod) AS data_type,
			NOT a.attnotnull AS nullable,
			pg_get_expr(ad.adbin, ad.adrelid) AS default_value,
			a.attidentity <> '' AS is_identity,
			CASE a.attidentity WHEN 'a' THEN 'ALWAYS' WHEN 'd' THEN 'BY DEFAULT' ELSE '' END AS identity_generation,
			a.attgenerated <> '' AS is_generated,
			NULLIF(pg_get_expr(ad.adbin, ad.adrelid), '') AS generated_expression
		FROM pg_attribute a
		JOIN pg_class c ON c.oid = a.attrelid
		JOIN pg_namespace n ON n.oid = c.relnamespace
		LEFT JOIN pg_attrdef ad ON ad.adrelid = a.attrelid AND ad.adnum = a.attnum
		WHERE a.attnum > 0 AND NOT a.attisdropped
			AND c.relkind IN ('r', 'p') AND ` + schemaFilter + `
		ORDER BY a.attnum`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]*catalog.Column)
	for rows.Next() {
		c := &catalog.Column{}
		var defaultValue, generatedExpr sql.NullString
		var position int32
		if err := rows.Scan(&c.Schema, &c.Table, &c.Name, &position, &c.DataType,
			&c.Nullable, &defaultValue, &c.IsIdentity, &c.IdentityGeneration,
			&c.IsGenerated, &generatedExpr); err != nil {
			return nil, err
		}
		c.Position = int(position)
		c.AttNum = position
		if defaultValue.Valid && !c.IsGenerated {
			v := defaultValue.String
			c.DefaultValue = &v
		}
		if generatedExpr.Valid && c.IsGenerated {
			v := generatedExpr.String
			c.GeneratedExpression = &v
		}
		out[c.StableID()] = c
	}
	return out, rows.Err()
}
