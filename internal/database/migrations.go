package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// runMigrations applies every embedded .sql file that is not yet recorded in
// schema_version. Files are applied in name order, each in its own transaction.
func runMigrations(ctx context.Context, db *sqlx.DB) error {
	const schemaVersion = `
	CREATE TABLE IF NOT EXISTS schema_version (
		version TEXT PRIMARY KEY,
		applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := db.ExecContext(ctx, schemaVersion); err != nil {
		return fmt.Errorf("could not create schema_version table: %w", err)
	}

	files, err := fs.ReadDir(migrationFiles, "migrations")
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].Name() < files[j].Name()
	})

	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".sql") {
			continue
		}
		version := strings.TrimSuffix(f.Name(), ".sql")

		var count int
		if err := db.GetContext(ctx, &count, "SELECT COUNT(*) FROM schema_version WHERE version = ?", version); err != nil {
			return fmt.Errorf("could not check migration status: %w", err)
		}
		if count > 0 {
			continue
		}

		content, err := migrationFiles.ReadFile("migrations/" + f.Name())
		if err != nil {
			return fmt.Errorf("could not read migration %s: %w", f.Name(), err)
		}

		slog.Info("applying migration", "version", version)
		err = withTx(ctx, db, func(tx *sqlx.Tx) error {
			if _, err := tx.ExecContext(ctx, string(content)); err != nil {
				return fmt.Errorf("could not execute migration %s: %w", f.Name(), err)
			}
			if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", version); err != nil {
				return fmt.Errorf("could not record migration %s: %w", f.Name(), err)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}
