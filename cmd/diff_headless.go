package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pgdelta/pgdelta-go/change"
	"github.com/pgdelta/pgdelta-go/emit"
	"github.com/pgdelta/pgdelta-go/extract"
	"github.com/pgdelta/pgdelta-go/internal/verify"
	"github.com/pgdelta/pgdelta-go/logging"
)

var (
	dhInitialSQL    string
	dhMasterSQL     string
	dhBranchSQL     string
	dhPostgresImage string
	dhOutput        string
	dhVerify        bool
	dhNoVerify      bool
	dhVerbose       bool
	dhMaxDepth      int
	dhFormat        string
	dhDriver        string
)

var diffHeadlessCmd = &cobra.Command{
	Use:   "diff-headless",
	Short: "Diff two schema states and print the migration DDL",
	Long: `diff-headless boots disposable PostgreSQL containers, applies
--initial-sql followed by --master-sql to build the source snapshot and
--initial-sql followed by --branch-sql to build the target snapshot, then
prints the ordered DDL statements that migrate source into target.`,
	RunE: runDiffHeadless,
}

func init() {
	diffHeadlessCmd.Flags().StringVar(&dhInitialSQL, "initial-sql", "", "path to the baseline schema SQL file shared by both snapshots")
	diffHeadlessCmd.Flags().StringVar(&dhMasterSQL, "master-sql", "", "path to the source schema SQL file (required)")
	diffHeadlessCmd.Flags().StringVar(&dhBranchSQL, "branch-sql", "", "path to the target schema SQL file (required)")
	diffHeadlessCmd.Flags().StringVar(&dhPostgresImage, "postgres-image", "postgres:17", "container image used for the disposable verification instances")
	diffHeadlessCmd.Flags().StringVar(&dhOutput, "output", "", "write generated DDL to this path instead of stdout")
	diffHeadlessCmd.Flags().BoolVar(&dhVerify, "verify", true, "re-apply the generated DDL to a disposable container and confirm roundtrip fidelity")
	diffHeadlessCmd.Flags().BoolVar(&dhNoVerify, "no-verify", false, "skip the roundtrip verification step")
	diffHeadlessCmd.Flags().BoolVar(&dhVerbose, "verbose", false, "print each change alongside its DDL")
	diffHeadlessCmd.Flags().IntVar(&dhMaxDepth, "max-depth", 2, "dependency-extractor BFS expansion depth")
	diffHeadlessCmd.Flags().StringVar(&dhFormat, "format", "sql", "output format: sql, json")
	diffHeadlessCmd.Flags().StringVar(&dhDriver, "driver", "pgx", "database/sql driver used against the verification containers: pgx, lib/pq")

	_ = diffHeadlessCmd.MarkFlagRequired("master-sql")
	_ = diffHeadlessCmd.MarkFlagRequired("branch-sql")
}

func runDiffHeadless(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	initialSQL, err := readSQLFile(dhInitialSQL)
	if err != nil {
		return fmt.Errorf("invalid --initial-sql: %w", err)
	}
	masterSQL, err := readSQLFile(dhMasterSQL)
	if err != nil {
		return fmt.Errorf("invalid --master-sql: %w", err)
	}
	branchSQL, err := readSQLFile(dhBranchSQL)
	if err != nil {
		return fmt.Errorf("invalid --branch-sql: %w", err)
	}

	if dhFormat != "sql" && dhFormat != "json" {
		return fmt.Errorf("invalid --format %q: must be sql or json", dhFormat)
	}

	var driver extract.Driver
	switch dhDriver {
	case "pgx", "":
		driver = extract.DriverPgx
	case "postgres", "lib/pq", "pq":
		driver = extract.DriverPQ
	default:
		return fmt.Errorf("invalid --driver %q: must be pgx or lib/pq", dhDriver)
	}

	opts := verify.Options{
		Image:      dhPostgresImage,
		InitialSQL: initialSQL,
		MasterSQL:  masterSQL,
		BranchSQL:  branchSQL,
		MaxDepth:   dhMaxDepth,
		Driver:     driver,
	}

	result, err := verify.Run(ctx, opts)
	if err != nil {
		return err
	}

	if dhVerify && !dhNoVerify {
		if err := verify.Verify(ctx, opts, result); err != nil {
			return err
		}
	}

	out := os.Stdout
	if dhOutput != "" {
		f, err := os.Create(dhOutput)
		if err != nil {
			return fmt.Errorf("cannot open --output %q: %w", dhOutput, err)
		}
		defer f.Close()
		out = f
	}

	switch dhFormat {
	case "json":
		return writeChangesJSON(out, result.Changes)
	default:
		return writeStatements(out, result.Changes, result.Statements, dhVerbose)
	}
}

func readSQLFile(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func writeStatements(out *os.File, changes []change.Change, statements []string, verbose bool) error {
	for i, stmt := range statements {
		if verbose && i < len(changes) {
			c := changes[i]
			fmt.Fprintf(out, "-- %s %s (%s)\n", c.Operation(), c.Kind(), c.StableID())
		}
		fmt.Fprintln(out, stmt)
	}
	logging.Get().Debug("diff-headless complete", "statements", len(statements))
	return nil
}

type jsonChange struct {
	StableID  string        `json:"stable_id"`
	Kind      string        `json:"kind"`
	Operation string        `json:"operation"`
	Statement string        `json:"statement"`
	Payload   change.Change `json:"payload"`
}

func writeChangesJSON(out *os.File, changes []change.Change) error {
	entries := make([]jsonChange, 0, len(changes))
	for _, c := range changes {
		entries = append(entries, jsonChange{
			StableID:  c.StableID(),
			Kind:      string(c.Kind()),
			Operation: c.Operation().String(),
			Statement: emit.Emit(c),
			Payload:   c,
		})
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
