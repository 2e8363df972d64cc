package extract

import (
	"context"
	"database/sql"

	"github.com/pgdelta/pgdelta-go/catalog"
)

// extractDependencies resolves pg_depend into stable_id edges, using a SQL
// CTE that builds the same "prefix:qualified_name" identifiers as each
// entity's StableID() so downstream comparisons by string equality work.
// Endpoints of an object class the CTE does not list are simply absent from
// the join and dropped (extension-membership and pinned rows are already
// excluded by the deptype filter), matching the "unknown." discard convention used once dependencies
// are loaded into a depgraph.Model.
func extractDependencies(ctx context.Context, db *sql.DB) ([]catalog.Dependency, error) {
	query := `
		WITH resolved AS (
			SELECT oid, 'schema:' || nspname AS stable_id
			FROM pg_namespace

			UNION ALL
			SELECT c.oid,
				CASE c.relkind
					WHEN 'r' THEN 'table:'
					WHEN 'p' THEN 'table:'
					WHEN 'v' THEN 'view:'
					WHEN 'm' THEN 'mview:'
					WHEN 'S' THEN 'sequence:'
					WHEN 'i' THEN 'index:'
				END || n.nspname || '.' || c.relname
			FROM pg_class c
			JOIN pg_namespace n ON n.oid = c.relnamespace
			WHERE c.relkind IN ('r', 'p', 'v', 'm', 'S', 'i')

			UNION ALL
			SELECT con.oid, 'constraint:' || n.nspname || '.' || t.relname || '.' || con.conname
			FROM pg_constraint con
			JOIN pg_class t ON t.oid = con.conrelid
			JOIN pg_namespace n ON n.oid = t.relnamespace

			UNION ALL
			SELECT p.oid,
				(CASE WHEN p.prokind = 'p' THEN 'proc:' ELSE 'func:' END) ||
					n.nspname || '.' || p.proname || '(' || pg_get_function_identity_arguments(p.oid) || ')'
			FROM pg_proc p
			JOIN pg_namespace n ON n.oid = p.pronamespace

			UNION ALL
			SELECT tg.oid, 'trigger:' || n.nspname || '.' || t.relname || '.' || tg.tgname
			FROM pg_trigger tg
			JOIN pg_class t ON t.oid = tg.tgrelid
			JOIN pg_namespace n ON n.oid = t.relnamespace
			WHERE NOT tg.tgisinternal

			UNION ALL
			SELECT t.oid, 'type:' || n.nspname || '.' || t.typname
			FROM pg_type t
			JOIN pg_namespace n ON n.oid = t.typnamespace

			UNION ALL
			SELECT pol.oid, 'policy:' || n.nspname || '.' || c.relname || '.' || pol.polname
			FROM pg_policy pol
			JOIN pg_class c ON c.oid = pol.polrelid
			JOIN pg_namespace n ON n.oid = c.relnamespace

			UNION ALL
			SELECT e.oid, 'extension:' || n.nspname || '.' || e.extname
			FROM pg_extension e
			JOIN pg_namespace n ON n.oid = e.extnamespace
		)
		SELECT DISTINCT r1.stable_id, r2.stable_id
		FROM pg_depend d
		JOIN resolved r1 ON r1.oid = d.objid
		JOIN resolved r2 ON r2.oid = d.refobjid
		WHERE d.deptype IN ('n', 'a')
			AND r1.stable_id IS NOT NULL
			AND r2.stable_id IS NOT NULL
			AND r1.stable_id != r2.stable_id`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var deps []catalog.Dependency
	for rows.Next() {
		var dependent, referenced string
		if err := rows.Scan(&dependent, &referenced); err != nil {
			return nil, err
		}
		deps = append(deps, catalog.Dependency{
			Dependent:  translateStableID(dependent),
			Referenced: translateStableID(referenced),
		})
	}
	return deps, rows.Err()
}

// translateStableID converts the SQL query's readable classid labels
// (schema:, table:, view:, mview:, sequence:, index:, constraint:, func:,
// proc:, trigger:, type:, policy:, extension:) into the compact prefixes
// catalog.Entity implementations actually use.
func translateStableID(id string) string {
	for label, prefix := range stableIDPrefixTranslation {
		if len(id) > len(label) && id[:len(label)] == label {
			return prefix + ":" + id[len(label):]
		}
	}
	return id
}

var stableIDPrefixTranslation = map[string]string{
	"schema:":     catalog.PrefixSchema,
	"table:":      catalog.PrefixTable,
	"view:":       catalog.PrefixView,
	"mview:":      catalog.PrefixMaterializedView,
	"sequence:":   catalog.PrefixSequence,
	"index:":      catalog.PrefixIndex,
	"constraint:": catalog.PrefixConstraint,
	"func:":       catalog.PrefixFunction,
	"proc:":       catalog.PrefixFunction,
	"trigger:":    catalog.PrefixTrigger,
	"type:":       catalog.PrefixType,
	"policy:":     catalog.PrefixPolicy,
	"extension:":  catalog.PrefixExtension,
}
