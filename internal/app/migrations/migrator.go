// Package migrations provisions the PostgreSQL tables the catalog import
// reads from.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/yigit/registrar/internal/db"
)

//go:embed sql/*.sql
var migrationFiles embed.FS

// Migrator manages database migrations
type Migrator struct {
	db     *db.PostgresDB
	files  fs.FS
	logger zerolog.Logger
}

// NewMigrator creates a migrator that applies the embedded catalog schema
func NewMigrator(database *db.PostgresDB, logger zerolog.Logger) *Migrator {
	sub, _ := fs.Sub(migrationFiles, "sql")
	return &Migrator{
		db:     database,
		files:  sub,
		logger: logger,
	}
}

// Pending lists the migration files in the order they are applied
func (m *Migrator) Pending() ([]string, error) {
	entries, err := fs.ReadDir(m.files, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// versionOf extracts the version prefix ("001_catalog.sql" => "001")
func versionOf(name string) string {
	base := path.Base(name)
	return strings.SplitN(base, "_", 2)[0]
}

// Migrate applies every migration that has not been recorded yet. Each file
// runs in its own transaction together with its bookkeeping row.
func (m *Migrator) Migrate(ctx context.Context) (int, error) {
	if _, err := m.db.Pool.Exec(ctx, `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`); err != nil {
		return 0, fmt.Errorf("failed to create migration tracking table: %w", err)
	}

	names, err := m.Pending()
	if err != nil {
		return 0, err
	}

	applied := 0
	for _, name := range names {
		content, err := fs.ReadFile(m.files, name)
		if err != nil {
			return applied, fmt.Errorf("failed to read migration file %s: %w", name, err)
		}
		version := versionOf(name)

		ran := false
		err = m.db.WithTransaction(ctx, pgx.TxOptions{}, func(ctx context.Context, tx pgx.Tx) error {
			var exists bool
			if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, version).Scan(&exists); err != nil {
				return fmt.Errorf("failed to check migration status: %w", err)
			}
			if exists {
				return nil
			}
			if _, err := tx.Exec(ctx, string(content)); err != nil {
				return fmt.Errorf("error occurred during SQL migration execution: %w", err)
			}
			if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, version); err != nil {
				return fmt.Errorf("failed to record migration: %w", err)
			}
			ran = true
			return nil
		})
		if err != nil {
			return applied, fmt.Errorf("migration %s: %w", name, err)
		}

		if ran {
			applied++
			m.logger.Info().Str("file", name).Msg("Migration applied")
		} else {
			m.logger.Debug().Str("file", name).Msg("Migration already applied, skipping")
		}
	}
	return applied, nil
}
