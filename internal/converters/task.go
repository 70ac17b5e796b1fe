// Package converters provides type-safe conversion between rows of the
// todos table and domain models.
//
// All conversions handle:
// - NULL database values (sql.Null* types)
// - Priority levels, which must decode to a known Priority
// - Status flags, normalized so that only 1 means completed
//
// Conversion failures are explicit - never silent type coercions.
package converters

import (
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/tick/internal/models"
)

// TaskRow mirrors one row of the todos table
type TaskRow struct {
	ID          int            `db:"id"`
	Name        string         `db:"name"`
	Description string         `db:"description"`
	Priority    int            `db:"priority"`
	Deadline    sql.NullString `db:"deadline"`
	Status      int            `db:"status"`
}

// TaskToRow converts a models.Task into the row that stores it.
// The status is normalized before writing. A priority outside {1, 2, 3}
// is refused with *models.InvalidPriorityLevelError so it never reaches the table.
func TaskToRow(task *models.Task) (TaskRow, error) {
	if !task.Priority.Valid() {
		return TaskRow{}, &models.InvalidPriorityLevelError{Level: task.Priority.Level()}
	}
	return TaskRow{
		ID:          task.ID,
		Name:        task.Name,
		Description: task.Description,
		Priority:    task.Priority.Level(),
		Deadline:    NullString(task.Deadline),
		Status:      int(models.NormalizeStatus(task.Status)),
	}, nil
}

// TaskToModel converts a stored row to a models.Task.
// A priority level outside {1, 2, 3} fails with models.ErrInvalidPriorityLevel.
func TaskToModel(row TaskRow) (*models.Task, error) {
	priority, err := models.ParsePriorityLevel(row.Priority)
	if err != nil {
		return nil, fmt.Errorf("task %d: %w", row.ID, err)
	}

	return &models.Task{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Priority:    priority,
		Deadline:    StringPtr(row.Deadline),
		Status:      models.Status(row.Status),
	}, nil
}

// TasksToModels converts every row, stopping at the first undecodable one.
// The result is never nil.
func TasksToModels(rows []TaskRow) ([]*models.Task, error) {
	result := make([]*models.Task, 0, len(rows))
	for _, row := range rows {
		task, err := TaskToModel(row)
		if err != nil {
			return nil, err
		}
		result = append(result, task)
	}
	return result, nil
}

// NullString maps nil to SQL NULL
func NullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// StringPtr maps SQL NULL to nil
func StringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
