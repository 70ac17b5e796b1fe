package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/tick/internal/converters"
	"github.com/thenoetrevino/tick/internal/models"
)

// ErrNoRowCreated is returned when an insert did not yield a usable id
var ErrNoRowCreated = errors.New("insert did not create a row")

const taskColumns = `id, name, description, priority, deadline, status`

// TaskRepo handles all task-related database operations
type TaskRepo struct {
	handle *Handle
}

// NewTaskRepo creates a task repository on top of h
func NewTaskRepo(h *Handle) *TaskRepo {
	return &TaskRepo{handle: h}
}

// Create inserts a new row with the task's fields. Any id already set on
// task is ignored. The returned task carries the assigned id.
func (r *TaskRepo) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	return withHandle(ctx, r.handle, func(db *sqlx.DB) (*models.Task, error) {
		row, err := converters.TaskToRow(task)
		if err != nil {
			return nil, fmt.Errorf("could not create task: %w", err)
		}
		result, err := db.NamedExecContext(ctx,
			`INSERT INTO todos (name, description, priority, deadline, status)
			 VALUES (:name, :description, :priority, :deadline, :status)`,
			row,
		)
		if err != nil {
			return nil, fmt.Errorf("could not create task: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("could not get last insert id: %w", err)
		}
		if id <= 0 {
			return nil, ErrNoRowCreated
		}

		created := task.Clone()
		created.ID = int(id)
		created.Status = models.NormalizeStatus(task.Status)
		return created, nil
	})
}

// List returns every task ordered by id, which is creation order.
// An empty table yields an empty slice.
func (r *TaskRepo) List(ctx context.Context) ([]*models.Task, error) {
	return withHandle(ctx, r.handle, func(db *sqlx.DB) ([]*models.Task, error) {
		var rows []converters.TaskRow
		if err := db.SelectContext(ctx, &rows, `SELECT `+taskColumns+` FROM todos ORDER BY id`); err != nil {
			return nil, fmt.Errorf("could not list tasks: %w", err)
		}

		tasks, err := converters.TasksToModels(rows)
		if err != nil {
			return nil, fmt.Errorf("could not decode task: %w", err)
		}
		return tasks, nil
	})
}

// GetByID returns the task with the given id or models.ErrTaskNotFound
func (r *TaskRepo) GetByID(ctx context.Context, id int) (*models.Task, error) {
	return withHandle(ctx, r.handle, func(db *sqlx.DB) (*models.Task, error) {
		var row converters.TaskRow
		err := db.GetContext(ctx, &row, `SELECT `+taskColumns+` FROM todos WHERE id = ?`, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, models.ErrTaskNotFound
			}
			return nil, fmt.Errorf("could not get task %d: %w", id, err)
		}
		return converters.TaskToModel(row)
	})
}

// Update replaces every mutable field of the row with task.ID.
// It returns false when no row has that id.
func (r *TaskRepo) Update(ctx context.Context, task *models.Task) (bool, error) {
	return withHandle(ctx, r.handle, func(db *sqlx.DB) (bool, error) {
		row, err := converters.TaskToRow(task)
		if err != nil {
			return false, fmt.Errorf("could not update task %d: %w", task.ID, err)
		}
		result, err := db.NamedExecContext(ctx,
			`UPDATE todos
			 SET name = :name, description = :description, priority = :priority,
			     deadline = :deadline, status = :status
			 WHERE id = :id`,
			row,
		)
		if err != nil {
			return false, fmt.Errorf("could not update task: %w", err)
		}
		return rowsChanged(result)
	})
}

// Delete removes the row with the given id and reports whether one existed
func (r *TaskRepo) Delete(ctx context.Context, id int) (bool, error) {
	return withHandle(ctx, r.handle, func(db *sqlx.DB) (bool, error) {
		result, err := db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
		if err != nil {
			return false, fmt.Errorf("could not delete task: %w", err)
		}
		return rowsChanged(result)
	})
}

// DeleteAll removes every row and returns how many were removed
func (r *TaskRepo) DeleteAll(ctx context.Context) (int64, error) {
	return withHandle(ctx, r.handle, func(db *sqlx.DB) (int64, error) {
		result, err := db.ExecContext(ctx, `DELETE FROM todos`)
		if err != nil {
			return 0, fmt.Errorf("could not delete tasks: %w", err)
		}
		n, err := result.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("could not get rows affected: %w", err)
		}
		return n, nil
	})
}

func rowsChanged(result sql.Result) (bool, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get rows affected: %w", err)
	}
	return n > 0, nil
}
