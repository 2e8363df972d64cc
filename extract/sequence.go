package extract

import (
	"context"
	"database/sql"

	"github.com/pgdelta/pgdelta-go/catalog"
)

func extractSequences(ctx context.Context, db *sql.DB) (map[string]*catalog.Sequence, error) {
	query := `
		SELECT
			n.nspname, c.relname, s.seqtypid::regtype::text,
			s.seqstart, s.seqincrement, s.seqmin, s.seqmax, s.seqcycle, s.seqcache, c.oid,
			COALESCE(owned_tab.relname, ''), COALESCE(owned_col.attname, '')
		FROM pg_sequence s
		JOIN pg_class c ON c.oid = s.seqrelid
		JOIN pg_namespace n ON n.oid = c.relnamespace
		LEFT JOIN pg_depend d ON d.objid = c.oid AND d.deptype = 'a'
		LEFT JOIN pg_class owned_tab ON owned_tab.oid = d.refobjid
		LEFT JOIN pg_attribute owned_col ON owned_col.attrelid = d.refobjid AND owned_col.attnum = d.refobjsubid
		WHERE ` + schemaFilter

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]*catalog.Sequence)
	for rows.Next() {
		s := &catalog.Sequence{}
		var minValue, maxValue sql.NullInt64
		if err := rows.Scan(&s.Schema, &s.Name, &s.DataType, &s.StartValue, &s.Increment,
			&minValue, &maxValue, &s.Cycle, &s.CacheSize, &s.OID, &s.OwnedByTable, &s.OwnedByColumn); err != nil {
			return nil, err
		}
		if minValue.Valid {
			v := minValue.Int64
			s.MinValue = &v
		}
		if maxValue.Valid {
			v := maxValue.Int64
			s.MaxValue = &v
		}
		out[s.StableID()] = s
	}
	return out, rows.Err()
}
