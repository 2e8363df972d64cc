// Package verify runs the full extract -> diff -> resolve -> emit pipeline
// against disposable PostgreSQL containers, grounded on the teacher's own
// testcontainers-based integration tests (cmd/plan_integration_test.go):
// spin up postgres.Run, apply SQL text, extract a catalog snapshot, tear the
// container down. It is the container-based verification harness spec.md
// names as an external collaborator, kept out of the pure core.
package verify

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pgdelta/pgdelta-go/extract"
	"github.com/pgdelta/pgdelta-go/logging"
)

// instance wraps one ephemeral PostgreSQL container and its DSN.
type instance struct {
	container *postgres.PostgresContainer
	dsn       string
	driver    extract.Driver
}

// startInstance launches image, applying each SQL script in order before
// returning. An empty script is skipped. driver selects the database/sql
// driver used for every connection made to this instance.
func startInstance(ctx context.Context, image string, driver extract.Driver, scripts ...string) (*instance, error) {
	container, err := postgres.Run(ctx, image,
		postgres.WithDatabase("pgdelta"),
		postgres.WithUsername("pgdelta"),
		postgres.WithPassword("pgdelta"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return nil, fmt.Errorf("verify: start container: %w", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("verify: connection string: %w", err)
	}

	inst := &instance{container: container, dsn: dsn, driver: driver}
	for _, script := range scripts {
		if script == "" {
			continue
		}
		if err := inst.exec(ctx, script); err != nil {
			_ = inst.terminate(ctx)
			return nil, err
		}
	}
	return inst, nil
}

func (i *instance) exec(ctx context.Context, sqlText string) error {
	db, err := openInstance(ctx, i.driver, i.dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	logging.Get().DebugContext(ctx, "applying SQL to verification container", "bytes", len(sqlText))
	if _, err := db.ExecContext(ctx, sqlText); err != nil {
		return fmt.Errorf("verify: apply SQL: %w", err)
	}
	return nil
}

func (i *instance) terminate(ctx context.Context) error {
	if i.container == nil {
		return nil
	}
	return i.container.Terminate(ctx)
}
