package extract

import (
	"context"
	"database/sql"

	"github.com/pgdelta/pgdelta-go/catalog"
)

// extractTypes collects enum, composite, and domain types. Range and base
// types are not tracked; pgdelta itself never supported them and the spec
// carries that omission forward.
func extractTypes(ctx context.Context, db *sql.DB) (map[string]*catalog.Type, error) {
	out := make(map[string]*catalog.Type)

	if err := extractEnumTypes(ctx, db, out); err != nil {
		return nil, err
	}
	if err := extractCompositeTypes(ctx, db, out); err != nil {
		return nil, err
	}
	if err := extractDomainTypes(ctx, db, out); err != nil {
		return nil, err
	}
	return out, nil
}

func extractEnumTypes(ctx context.Context, db *sql.DB, out map[string]*catalog.Type) error {
	query := `
		SELECT n.nspname, t.typname, t.oid
		FROM pg_type t
		JOIN pg_namespace n ON n.oid = t.typnamespace
		WHERE t.typtype = 'e' AND ` + schemaFilter

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		t := &catalog.Type{Kind: catalog.TypeEnum}
		if err := rows.Scan(&t.Schema, &t.Name, &t.OID); err != nil {
			return err
		}
		labels, err := extractEnumLabels(ctx, db, t.OID)
		if err != nil {
			return err
		}
		t.Labels = labels
		out[t.StableID()] = t
	}
	return rows.Err()
}

func extractEnumLabels(ctx context.Context, db *sql.DB, typeOID int64) ([]string, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT enumlabel FROM pg_enum WHERE enumtypid = $1 ORDER BY enumsortorder`, typeOID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var labels []string
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, err
		}
		labels = append(labels, label)
	}
	return labels, rows.Err()
}

func extractCompositeTypes(ctx context.Context, db *sql.DB, out map[string]*catalog.Type) error {
	query := `
		SELECT n.nspname, t.typname, t.oid, t.typrelid
		FROM pg_type t
		JOIN pg_namespace n ON n.oid = t.typnamespace
		WHERE t.typtype = 'c' AND EXISTS (
			SELECT 1 FROM pg_class c WHERE c.oid = t.typrelid AND c.relkind = 'c'
		) AND ` + schemaFilter

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	var pending []*catalog.Type
	relids := map[string]int64{}
	for rows.Next() {
		t := &catalog.Type{Kind: catalog.TypeComposite}
		var relid int64
		if err := rows.Scan(&t.Schema, &t.Name, &t.OID, &relid); err != nil {
			return err
		}
		pending = append(pending, t)
		relids[t.StableID()] = relid
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, t := range pending {
		fields, err := extractCompositeFields(ctx, db, relids[t.StableID()])
		if err != nil {
			return err
		}
		t.Fields = fields
		out[t.StableID()] = t
	}
	return nil
}

func extractCompositeFields(ctx context.Context, db *sql.DB, relid int64) ([]catalog.CompositeField, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT a.attname, format_type(a.atttypid, a.atttypmod)
		FROM pg_attribute a
		WHERE a.attrelid = $1 AND a.attnum > 0 AND NOT a.attisdropped
		ORDER BY a.attnum`, relid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fields []catalog.CompositeField
	for rows.Next() {
		var f catalog.CompositeField
		if err := rows.Scan(&f.Name, &f.DataType); err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, rows.Err()
}

func extractDomainTypes(ctx context.Context, db *sql.DB, out map[string]*catalog.Type) error {
	query := `
		SELECT n.nspname, t.typname, format_type(t.typbasetype, t.typtypmod),
			t.typnotnull, t.typdefault,
			COALESCE((
				SELECT pg_get_constraintdef(con.oid)
				FROM pg_constraint con
				WHERE con.contypid = t.oid AND con.contype = 'c'
				LIMIT 1
			), ''), t.oid
		FROM pg_type t
		JOIN pg_namespace n ON n.oid = t.typnamespace
		WHERE t.typtype = 'd' AND ` + schemaFilter

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		t := &catalog.Type{Kind: catalog.TypeDomain}
		var def sql.NullString
		if err := rows.Scan(&t.Schema, &t.Name, &t.BaseType, &t.NotNull, &def,
			&t.CheckExpr, &t.OID); err != nil {
			return err
		}
		if def.Valid {
			v := def.String
			t.Default = &v
		}
		out[t.StableID()] = t
	}
	return rows.Err()
}
