package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tick/internal/models"
)

func TestNewHandle_CreatesSchema(t *testing.T) {
	h := setupTestDB(t)

	var count int
	err := h.shared.GetContext(context.Background(), &count,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'todos'")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	err = h.shared.GetContext(context.Background(), &count,
		"SELECT COUNT(*) FROM schema_version WHERE version = '00001_create_todos'")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestOpen_MigrationsAreIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tick.db")

	first, err := Open(ctx, path)
	require.NoError(t, err)
	_, err = first.ExecContext(ctx,
		"INSERT INTO todos (name, description, priority, status) VALUES ('kept', '', 2, 0)")
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(ctx, path)
	require.NoError(t, err)
	defer second.Close()

	var count int
	require.NoError(t, second.GetContext(ctx, &count, "SELECT COUNT(*) FROM todos"))
	assert.Equal(t, 1, count, "reopening must not recreate the table")
}

func TestOpen_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "tick.db")

	db, err := Open(context.Background(), path)
	require.NoError(t, err)
	assert.NoError(t, db.Close())
}

func TestPerOperationHandle(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tick.db")

	h, err := NewHandle(ctx, path, ModePerOperation)
	require.NoError(t, err)
	defer h.Close()

	assert.Equal(t, ModePerOperation, h.Mode())
	assert.Nil(t, h.shared, "per-operation handles keep no connection open")

	repo := NewTaskRepo(h)
	created, err := repo.Create(ctx, models.NewTask("Buy milk", "2%", models.PriorityMedium, nil))
	require.NoError(t, err)
	assert.Greater(t, created.ID, 0)

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	ok, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	tasks, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestClosedHandle(t *testing.T) {
	h := setupTestDB(t)
	repo := NewTaskRepo(h)

	require.NoError(t, h.Close())
	require.NoError(t, h.Close(), "closing twice is a no-op")

	_, err := repo.List(context.Background())
	assert.ErrorIs(t, err, ErrHandleClosed)

	_, err = repo.Create(context.Background(), newTestTask("late"))
	assert.ErrorIs(t, err, ErrHandleClosed)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg-data", "tick", "tick.db"), path)
}

func TestPerOperationHandle_RejectsMemory(t *testing.T) {
	_, err := NewHandle(context.Background(), ":memory:", ModePerOperation)
	assert.ErrorIs(t, err, ErrPerOperationMemory)
}
