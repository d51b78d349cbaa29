package testutil

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/coursehub/backend/internal/app/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
)

var errMissingDSN = errors.New("missing TEST_POSTGRES_DSN")

var (
	poolOnce sync.Once
	pool     *pgxpool.Pool
	poolErr  error
)

// Postgres returns a migrated pool for TEST_POSTGRES_DSN, skipping the test when it is unset.
func Postgres(tb testing.TB) *pgxpool.Pool {
	tb.Helper()

	poolOnce.Do(func() {
		dsn := os.Getenv("TEST_POSTGRES_DSN")
		if dsn == "" {
			poolErr = errMissingDSN
			return
		}

		ctx := context.Background()
		pool, poolErr = pgxpool.New(ctx, dsn)
		if poolErr != nil {
			return
		}

		dir, err := migrationsDir()
		if err != nil {
			poolErr = err
			return
		}
		poolErr = migrations.NewMigrator(pool).MigrateFromDirectory(ctx, dir)
	})

	if errors.Is(poolErr, errMissingDSN) {
		tb.Skip("set TEST_POSTGRES_DSN to run repository integration tests")
	}
	if poolErr != nil {
		tb.Fatalf("failed to init test db: %v", poolErr)
	}
	return pool
}

// migrationsDir finds the migrations directory next to go.mod
func migrationsDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return filepath.Join(dir, "migrations"), nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("go.mod not found above working directory")
		}
		dir = parent
	}
}
