package testutil

import (
	"context"
	"testing"

	"github.com/thenoetrevino/tick/internal/database"
	"github.com/thenoetrevino/tick/internal/models"
)

// SetupTestDB creates an in-memory database with the full schema. The
// repository is closed when the test ends.
func SetupTestDB(t *testing.T) *database.Repository {
	t.Helper()
	h, err := database.NewHandle(context.Background(), ":memory:", database.ModeShared)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	repo := database.NewRepository(h)
	t.Cleanup(func() {
		_ = repo.Close()
	})
	return repo
}

// CreateTestTask inserts an open task with medium priority and returns its ID
func CreateTestTask(t *testing.T, repo *database.Repository, name string) int {
	t.Helper()
	task, err := repo.Create(context.Background(), models.NewTask(name, "", models.PriorityMedium, nil))
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	return task.ID
}

// GetTestTask reads a task straight from the repository
func GetTestTask(t *testing.T, repo *database.Repository, id int) *models.Task {
	t.Helper()
	task, err := repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("Failed to get task %d: %v", id, err)
	}
	return task
}

// CountTasks returns the number of stored tasks
func CountTasks(t *testing.T, repo *database.Repository) int {
	t.Helper()
	tasks, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("Failed to list tasks: %v", err)
	}
	return len(tasks)
}
