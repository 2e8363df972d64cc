// Package extract is the one I/O boundary in the module: it issues queries
// against a live PostgreSQL instance's system catalogs and assembles the
// immutable catalog.Catalog snapshot the core treats as opaque input. Every
// per-entity query except the extension query excludes system schemas
// (pg_catalog, pg_toast, information_schema); extensions are listed wherever
// they are installed, and the pg_depend query spans all schemas. Queries
// capture pg_get_*def() text wherever Postgres offers one, so the emitter
// can reuse it verbatim.
package extract

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"github.com/pgdelta/pgdelta-go/catalog"
	"github.com/pgdelta/pgdelta-go/logging"
)

// Driver selects the database/sql driver name a DSN is opened with. Both
// are wired to the same query set; lib/pq is kept available for
// environments that pin an older connection stack.
type Driver string

const (
	DriverPgx Driver = "pgx"
	DriverPQ  Driver = "postgres"
)

// Open opens a *sql.DB with the requested driver and verifies connectivity.
func Open(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(string(driver), dsn)
	if err != nil {
		return nil, fmt.Errorf("extract: open %s: %w", driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("extract: ping %s: %w", driver, err)
	}
	return db, nil
}

// Extract opens dsn with driver, builds a full catalog snapshot, and closes
// the connection before returning. The resulting Catalog holds no reference
// to the connection.
func Extract(ctx context.Context, driver Driver, dsn string) (*catalog.Catalog, error) {
	db, err := Open(ctx, driver, dsn)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return ExtractFromDB(ctx, db)
}

// ExtractFromDB builds a catalog snapshot from an already-open connection,
// running the independent per-entity-kind queries concurrently.
func ExtractFromDB(ctx context.Context, db *sql.DB) (*catalog.Catalog, error) {
	logging.Get().DebugContext(ctx, "extracting catalog snapshot")

	var (
		schemas           map[string]*catalog.Schema
		tables            map[string]*catalog.Table
		columns           map[string]*catalog.Column
		constraints       map[string]*catalog.Constraint
		indexes           map[string]*catalog.Index
		sequences         map[string]*catalog.Sequence
		views             map[string]*catalog.View
		materializedViews map[string]*catalog.MaterializedView
		functions         map[string]*catalog.Function
		procedures        map[string]*catalog.Procedure
		triggers          map[string]*catalog.Trigger
		types             map[string]*catalog.Type
		policies          map[string]*catalog.Policy
		extensions        map[string]*catalog.Extension
		dependencies      []catalog.Dependency
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { schemas, err = extractSchemas(gctx, db); return })
	g.Go(func() (err error) { tables, err = extractTables(gctx, db); return })
	g.Go(func() (err error) { columns, err = extractColumns(gctx, db); return })
	g.Go(func() (err error) { constraints, err = extractConstraints(gctx, db); return })
	g.Go(func() (err error) { indexes, err = extractIndexes(gctx, db); return })
	g.Go(func() (err error) { sequences, err = extractSequences(gctx, db); return })
	g.Go(func() (err error) { views, err = extractViews(gctx, db); return })
	g.Go(func() (err error) { materializedViews, err = extractMaterializedViews(gctx, db); return })
	g.Go(func() (err error) { functions, err = extractFunctions(gctx, db); return })
	g.Go(func() (err error) { procedures, err = extractProcedures(gctx, db); return })
	g.Go(func() (err error) { triggers, err = extractTriggers(gctx, db); return })
	g.Go(func() (err error) { types, err = extractTypes(gctx, db); return })
	g.Go(func() (err error) { policies, err = extractPolicies(gctx, db); return })
	g.Go(func() (err error) { extensions, err = extractExtensions(gctx, db); return })
	g.Go(func() (err error) { dependencies, err = extractDependencies(gctx, db); return })

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	c, err := catalog.New(schemas, tables, columns, constraints, indexes, sequences,
		views, materializedViews, functions, procedures, triggers, types, policies, extensions, dependencies)
	if err != nil {
		return nil, fmt.Errorf("extract: assembled catalog failed validation: %w", err)
	}
	return c, nil
}

// schemaFilter is appended to every catalog query's WHERE clause to exclude
// system schemas from the snapshot.
const schemaFilter = `n.nspname NOT IN ('pg_catalog', 'pg_toast', 'information_schema') AND n.nspname NOT LIKE 'pg\_temp\_%' AND n.nspname NOT LIKE 'pg\_toast\_temp\_%'`
