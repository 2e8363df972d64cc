package verify

import (
	"context"
	"testing"

	"github.com/pgdelta/pgdelta-go/extract"
)

func TestRunAndVerifyAddColumn(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}

	ctx := context.Background()
	opts := Options{
		MasterSQL: `CREATE TABLE public.widgets (id serial PRIMARY KEY, name text NOT NULL);`,
		BranchSQL: `CREATE TABLE public.widgets (id serial PRIMARY KEY, name text NOT NULL, price numeric);`,
	}

	result, err := Run(ctx, opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Statements) == 0 {
		t.Fatal("expected at least one generated statement")
	}

	if err := Verify(ctx, opts, result); err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !result.Verified {
		t.Fatal("expected Result.Verified to be true after a successful Verify")
	}
}

func TestRunWithLibPQDriver(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}

	ctx := context.Background()
	opts := Options{
		Driver:    extract.DriverPQ,
		MasterSQL: `CREATE TABLE public.widgets (id serial PRIMARY KEY);`,
		BranchSQL: `CREATE TABLE public.widgets (id serial PRIMARY KEY, sku text);`,
	}

	result, err := Run(ctx, opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Statements) == 0 {
		t.Fatal("expected at least one generated statement")
	}

	if err := Verify(ctx, opts, result); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestRunNoChangesProducesEmptyStatements(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}

	ctx := context.Background()
	schema := `CREATE TABLE public.widgets (id serial PRIMARY KEY);`
	opts := Options{MasterSQL: schema, BranchSQL: schema}

	result, err := Run(ctx, opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Statements) != 0 {
		t.Fatalf("expected no statements for identical schemas, got %v", result.Statements)
	}
}
