package migration

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"email-task-assistant/config"
	"email-task-assistant/pkg/log"
)

//go:embed sql
var migrationsFS embed.FS

const createVersionTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
    version    TEXT PRIMARY KEY,
    applied_at TEXT NOT NULL
)`

// Up applies every embedded migration for driver that has not run yet.
// It returns the versions applied by this call.
func Up(ctx context.Context, db *sqlx.DB, driver string, l log.Logger) ([]string, error) {
	dir, err := dialectDir(driver)
	if err != nil {
		return nil, err
	}

	files, err := fs.Glob(migrationsFS, path.Join(dir, "*.sql"))
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	if _, err := db.ExecContext(ctx, createVersionTable); err != nil {
		return nil, fmt.Errorf("create schema_migrations: %w", err)
	}

	var applied []string
	for _, f := range files {
		version := strings.TrimSuffix(path.Base(f), ".sql")

		var count int
		if err := db.GetContext(ctx, &count, db.Rebind(`SELECT COUNT(*) FROM schema_migrations WHERE version = ?`), version); err != nil {
			return applied, fmt.Errorf("check migration %s: %w", version, err)
		}
		if count > 0 {
			continue
		}

		body, err := migrationsFS.ReadFile(f)
		if err != nil {
			return applied, fmt.Errorf("read migration %s: %w", version, err)
		}

		tx, err := db.BeginTxx(ctx, nil)
		if err != nil {
			return applied, fmt.Errorf("begin migration %s: %w", version, err)
		}
		if _, err := tx.ExecContext(ctx, string(body)); err != nil {
			_ = tx.Rollback()
			return applied, fmt.Errorf("apply migration %s: %w", version, err)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(`INSERT INTO schema_migrations (version, applied_at) VALUES (?, ?)`),
			version, time.Now().UTC().Format(time.RFC3339)); err != nil {
			_ = tx.Rollback()
			return applied, fmt.Errorf("record migration %s: %w", version, err)
		}
		if err := tx.Commit(); err != nil {
			return applied, fmt.Errorf("commit migration %s: %w", version, err)
		}

		if l != nil {
			l.Infof(ctx, "migration applied: %s (%s)", version, driver)
		}
		applied = append(applied, version)
	}

	return applied, nil
}

func dialectDir(driver string) (string, error) {
	switch driver {
	case config.DriverPostgres:
		return "sql/postgres", nil
	case config.DriverSQLite:
		return "sql/sqlite", nil
	default:
		return "", fmt.Errorf("no migrations for driver %q", driver)
	}
}
