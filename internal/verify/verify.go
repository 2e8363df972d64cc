package verify

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pgdelta/pgdelta-go/catalog"
	"github.com/pgdelta/pgdelta-go/change"
	"github.com/pgdelta/pgdelta-go/depgraph"
	"github.com/pgdelta/pgdelta-go/differ"
	"github.com/pgdelta/pgdelta-go/emit"
	"github.com/pgdelta/pgdelta-go/extract"
	"github.com/pgdelta/pgdelta-go/logging"
	"github.com/pgdelta/pgdelta-go/resolve"
)

func openInstance(ctx context.Context, driver extract.Driver, dsn string) (*sql.DB, error) {
	if driver == "" {
		driver = extract.DriverPgx
	}
	return extract.Open(ctx, driver, dsn)
}

// Options configures a Run. InitialSQL is the common baseline both MasterSQL
// and BranchSQL build on; MasterSQL is applied on top of it to produce the
// source snapshot, BranchSQL to produce the target snapshot. Either script
// may be empty. Driver selects the database/sql driver used for every
// connection this package opens; it defaults to extract.DriverPgx.
type Options struct {
	Image      string
	InitialSQL string
	MasterSQL  string
	BranchSQL  string
	MaxDepth   int
	Driver     extract.Driver
}

// Result is the full output of a diff-headless run: the two snapshots, the
// ordered changes, and their DDL text.
type Result struct {
	Source     *catalog.Catalog
	Target     *catalog.Catalog
	Changes    []change.Change
	Statements []string
	Verified   bool
}

// Run computes the migration from opts.MasterSQL's schema to opts.BranchSQL's
// schema by extracting both from disposable containers seeded with
// opts.InitialSQL. It does not verify the result; call Verify separately.
func Run(ctx context.Context, opts Options) (*Result, error) {
	image := opts.Image
	if image == "" {
		image = "postgres:17"
	}

	source, err := extractSnapshot(ctx, image, opts.Driver, opts.InitialSQL, opts.MasterSQL)
	if err != nil {
		return nil, fmt.Errorf("verify: extract source snapshot: %w", err)
	}
	target, err := extractSnapshot(ctx, image, opts.Driver, opts.InitialSQL, opts.BranchSQL)
	if err != nil {
		return nil, fmt.Errorf("verify: extract target snapshot: %w", err)
	}

	changes := differ.Diff(source, target)

	extractor := depgraph.NewExtractor()
	if opts.MaxDepth > 0 {
		extractor.MaxDepth = opts.MaxDepth
	}
	ordered, err := resolve.Resolve(changes, source, target, extractor)
	if err != nil {
		return nil, err
	}

	return &Result{
		Source:     source,
		Target:     target,
		Changes:    ordered,
		Statements: emit.EmitAll(ordered),
	}, nil
}

// Verify re-applies Result.Statements to a fresh container seeded with
// opts.InitialSQL and opts.MasterSQL, then confirms the resulting catalog is
// semantically equal to Result.Target. This is diff-headless's --verify
// path: it never touches the schema the diff was computed from.
func Verify(ctx context.Context, opts Options, result *Result) error {
	image := opts.Image
	if image == "" {
		image = "postgres:17"
	}

	inst, err := startInstance(ctx, image, opts.Driver, opts.InitialSQL, opts.MasterSQL)
	if err != nil {
		return fmt.Errorf("verify: seed verification container: %w", err)
	}
	defer inst.terminate(ctx)

	for _, stmt := range result.Statements {
		if err := inst.exec(ctx, stmt); err != nil {
			return fmt.Errorf("verify: apply generated DDL: %w", err)
		}
	}

	db, err := openInstance(ctx, opts.Driver, inst.dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	applied, err := extract.ExtractFromDB(ctx, db)
	if err != nil {
		return fmt.Errorf("verify: re-extract applied catalog: %w", err)
	}

	if !applied.SemanticEqual(result.Target) {
		return fmt.Errorf("verify: roundtrip fidelity violated: applying the generated migration " +
			"did not produce a catalog semantically equal to the target schema")
	}

	logging.Get().InfoContext(ctx, "roundtrip verification passed")
	result.Verified = true
	return nil
}

func extractSnapshot(ctx context.Context, image string, driver extract.Driver, initialSQL, overlaySQL string) (*catalog.Catalog, error) {
	inst, err := startInstance(ctx, image, driver, initialSQL, overlaySQL)
	if err != nil {
		return nil, err
	}
	defer inst.terminate(ctx)

	db, err := openInstance(ctx, driver, inst.dsn)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return extract.ExtractFromDB(ctx, db)
}
