package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jmoiron/sqlx"
)

// Mode selects how a Handle hands out connections
type Mode int

const (
	// ModeShared keeps one pooled connection open for the lifetime of the Handle
	ModeShared Mode = iota
	// ModePerOperation opens the database for each operation and closes it afterwards
	ModePerOperation
)

func (m Mode) String() string {
	if m == ModePerOperation {
		return "per-operation"
	}
	return "shared"
}

var (
	// ErrHandleClosed is returned by operations on a closed Handle
	ErrHandleClosed = errors.New("database handle is closed")
	// ErrPerOperationMemory rejects an in-memory path in ModePerOperation,
	// where every closed connection would discard the data.
	ErrPerOperationMemory = errors.New("per-operation mode needs a database file")
)

// Handle owns access to the task database. Every repository operation
// acquires a connection through it and releases it when the statement is done.
type Handle struct {
	path string
	mode Mode

	mu     sync.Mutex
	shared *sqlx.DB
	closed bool
}

// NewHandle prepares the database at path. The schema is created on this
// first access in both modes. In ModeShared the connection stays open.
func NewHandle(ctx context.Context, path string, mode Mode) (*Handle, error) {
	if mode == ModePerOperation && isMemoryPath(path) {
		return nil, ErrPerOperationMemory
	}

	db, err := Open(ctx, path)
	if err != nil {
		return nil, err
	}

	h := &Handle{path: path, mode: mode}
	if mode == ModeShared {
		h.shared = db
		return h, nil
	}

	if err := db.Close(); err != nil {
		return nil, fmt.Errorf("failed to close database after setup: %w", err)
	}
	return h, nil
}

// Mode reports how the handle acquires connections
func (h *Handle) Mode() Mode {
	return h.mode
}

// Path returns the database location, empty for handles built from a *sqlx.DB
func (h *Handle) Path() string {
	return h.path
}

func (h *Handle) acquire(ctx context.Context) (*sqlx.DB, func(), error) {
	h.mu.Lock()
	closed, shared := h.closed, h.shared
	h.mu.Unlock()

	if closed {
		return nil, nil, ErrHandleClosed
	}

	if h.mode == ModeShared {
		return shared, func() {}, nil
	}

	db, err := connect(ctx, h.path)
	if err != nil {
		return nil, nil, err
	}
	release := func() {
		closeQuietly(db)
	}
	return db, release, nil
}

// Close releases the shared connection. Further operations fail with ErrHandleClosed.
func (h *Handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true

	if h.shared != nil {
		slog.Debug("closing database", "mode", h.mode.String())
		return h.shared.Close()
	}
	return nil
}
