package database

import (
	"context"
	"testing"

	"github.com/thenoetrevino/tick/internal/models"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database with the schema applied and
// returns a shared handle over it. The handle is closed when the test ends.
func setupTestDB(t *testing.T) *Handle {
	t.Helper()
	h, err := NewHandle(context.Background(), ":memory:", ModeShared)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = h.Close()
	})
	return h
}

// countTasks counts rows directly, bypassing the repository
func countTasks(t *testing.T, h *Handle) int {
	t.Helper()
	var count int
	if err := h.shared.GetContext(context.Background(), &count, "SELECT COUNT(*) FROM todos"); err != nil {
		t.Fatalf("Failed to count tasks: %v", err)
	}
	return count
}

func strPtr(s string) *string {
	return &s
}

func newTestTask(name string) *models.Task {
	return models.NewTask(name, "description of "+name, models.PriorityMedium, nil)
}
