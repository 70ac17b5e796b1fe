package task

import (
	"context"
	"log/slog"

	"github.com/thenoetrevino/tick/internal/database"
	"github.com/thenoetrevino/tick/internal/models"
)

// Controller is the boolean CRUD surface over the store. Storage faults are
// logged and reported as false or an empty list, never returned.
// It does not validate; callers check the name before saving.
type Controller struct {
	repo database.TaskRepository
}

// NewController creates a controller on top of repo
func NewController(repo database.TaskRepository) *Controller {
	return &Controller{repo: repo}
}

// Create inserts task, ignoring its id, and reports whether a row was created
func (c *Controller) Create(ctx context.Context, task models.Task) bool {
	created, err := c.repo.Create(ctx, &task)
	if err != nil {
		slog.Error("failed to create task", "error", err)
		return false
	}
	return created.ID > 0
}

// ListAll returns every task. A storage fault yields an empty list.
func (c *Controller) ListAll(ctx context.Context) []*models.Task {
	tasks, err := c.repo.List(ctx)
	if err != nil {
		slog.Error("failed to list tasks", "error", err)
		return []*models.Task{}
	}
	return tasks
}

// Update replaces the row with task.ID and reports whether one matched
func (c *Controller) Update(ctx context.Context, task models.Task) bool {
	updated, err := c.repo.Update(ctx, &task)
	if err != nil {
		slog.Error("failed to update task", "id", task.ID, "error", err)
		return false
	}
	return updated
}

// DeleteByID removes the row with id and reports whether one was removed
func (c *Controller) DeleteByID(ctx context.Context, id int) bool {
	deleted, err := c.repo.Delete(ctx, id)
	if err != nil {
		slog.Error("failed to delete task", "id", id, "error", err)
		return false
	}
	return deleted
}

// DeleteAll removes every row. It returns true only when at least one row
// was removed, so an already empty table reports false.
func (c *Controller) DeleteAll(ctx context.Context) bool {
	n, err := c.repo.DeleteAll(ctx)
	if err != nil {
		slog.Error("failed to delete all tasks", "error", err)
		return false
	}
	return n > 0
}
