package database

import (
	"context"

	"github.com/thenoetrevino/tick/internal/models"
)

// TaskReader defines read operations for tasks.
type TaskReader interface {
	List(ctx context.Context) ([]*models.Task, error)
	GetByID(ctx context.Context, id int) (*models.Task, error)
}

// TaskWriter defines write operations for tasks.
// Update and Delete report whether a row matched the id.
type TaskWriter interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	Update(ctx context.Context, task *models.Task) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// TaskRepository combines all task-related operations.
type TaskRepository interface {
	TaskReader
	TaskWriter
}
