// Package database handles the initialization and connection to the SQLite db
package database

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

// DefaultPath returns the location of the task database.
// $XDG_DATA_HOME/tick/tick.db is preferred, ~/.tick/tick.db otherwise.
func DefaultPath() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "tick", "tick.db"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".tick", "tick.db"), nil
}

// connect opens the sqlite file at path and applies the connection pragmas.
// It does not touch the schema.
func connect(ctx context.Context, path string) (*sqlx.DB, error) {
	db, err := sqlx.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite benefits from a single writer connection, and pragmas are per connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	// Set busy timeout to 5 seconds (SQLite will retry for this duration)
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return db, nil
}

// Open creates the parent directory, connects and makes sure the schema exists.
func Open(ctx context.Context, path string) (*sqlx.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("database path is empty")
	}

	if !isMemoryPath(path) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := connect(ctx, path)
	if err != nil {
		return nil, err
	}

	// WAL is not available for in-memory databases
	if !isMemoryPath(path) {
		if _, err := db.ExecContext(ctx, "PRAGMA journal_mode = WAL"); err != nil {
			closeQuietly(db)
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := runMigrations(ctx, db); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func isMemoryPath(path string) bool {
	return path == ":memory:" || strings.Contains(path, "mode=memory")
}

func closeQuietly(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}
