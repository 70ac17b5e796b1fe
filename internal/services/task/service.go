package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/tick/internal/database"
	"github.com/thenoetrevino/tick/internal/models"
)

const maxNameLength = 255

// Service defines all task-related business operations
type Service interface {
	// Read operations
	ListTasks(ctx context.Context) ([]*models.Task, error)
	ListOpenTasks(ctx context.Context) ([]*models.Task, error)
	ListCompletedTasks(ctx context.Context) ([]*models.Task, error)
	GetTask(ctx context.Context, taskID int) (*models.Task, error)

	// Write operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error)
	SaveTask(ctx context.Context, task *models.Task) (*models.Task, error)
	SetStatus(ctx context.Context, taskID int, status models.Status) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID int) error
	DeleteAllTasks(ctx context.Context) (int64, error)
}

// CreateTaskRequest encapsulates all data needed to create a task
type CreateTaskRequest struct {
	Name        string
	Description string
	Priority    models.Priority // Optional: 0 means use default
	Deadline    string          // Optional: empty means no deadline
}

// UpdateTaskRequest encapsulates all data needed to update a task
// Fields with pointers are optional - nil means don't update
type UpdateTaskRequest struct {
	TaskID        int
	Name          *string
	Description   *string
	Priority      *models.Priority
	Deadline      *string
	ClearDeadline bool
	Status        *models.Status
}

// service implements Service interface
type service struct {
	repo database.TaskRepository
}

// NewService creates a new task service
func NewService(repo database.TaskRepository) Service {
	return &service{repo: repo}
}

// CreateTask validates the request and inserts a new open task
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	priority := req.Priority
	if priority == 0 {
		priority = models.DefaultPriority
	}

	deadline, err := models.ParseDeadline(req.Deadline)
	if err != nil {
		return nil, invalid(ErrInvalidDeadline)
	}

	task := models.NewTask(strings.TrimSpace(req.Name), req.Description, priority, deadline)
	if err := ValidateTask(task); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		return nil, storageFault("create task", err)
	}

	slog.Debug("task created", "id", created.ID)
	return created, nil
}

// UpdateTask applies the non-nil fields of req to the stored task and writes
// the whole record back
func (s *service) UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error) {
	if req.TaskID <= 0 {
		return nil, invalid(ErrInvalidTaskID)
	}

	task, err := s.GetTask(ctx, req.TaskID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		task.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.ClearDeadline {
		task.Deadline = nil
	} else if req.Deadline != nil {
		deadline, err := models.ParseDeadline(*req.Deadline)
		if err != nil {
			return nil, invalid(ErrInvalidDeadline)
		}
		task.Deadline = deadline
	}
	if req.Status != nil {
		task.Status = models.NormalizeStatus(*req.Status)
	}

	return s.update(ctx, task)
}

// SaveTask creates the task when it has no id yet and replaces the stored
// record otherwise
func (s *service) SaveTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	if task == nil {
		return nil, invalid(ErrEmptyName)
	}
	if task.ID < 0 {
		return nil, invalid(ErrInvalidTaskID)
	}
	if err := ValidateTask(task); err != nil {
		return nil, err
	}

	if task.IsNew() {
		created, err := s.repo.Create(ctx, task)
		if err != nil {
			return nil, storageFault("create task", err)
		}
		return created, nil
	}
	return s.update(ctx, task.Clone())
}

// SetStatus changes only the status of a task. It goes through the same
// whole-record update as any other edit.
func (s *service) SetStatus(ctx context.Context, taskID int, status models.Status) (*models.Task, error) {
	return s.UpdateTask(ctx, UpdateTaskRequest{TaskID: taskID, Status: &status})
}

// DeleteTask removes a task. Deleting an id with no row returns ErrNotFound.
func (s *service) DeleteTask(ctx context.Context, taskID int) error {
	if taskID <= 0 {
		return invalid(ErrInvalidTaskID)
	}

	deleted, err := s.repo.Delete(ctx, taskID)
	if err != nil {
		return storageFault("delete task", err)
	}
	if !deleted {
		return fmt.Errorf("%w: %d", ErrNotFound, taskID)
	}

	slog.Debug("task deleted", "id", taskID)
	return nil
}

// DeleteAllTasks removes every task and returns how many were removed.
// An empty table is not an error.
func (s *service) DeleteAllTasks(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, storageFault("delete all tasks", err)
	}
	slog.Debug("tasks deleted", "count", n)
	return n, nil
}

// GetTask retrieves a single task
func (s *service) GetTask(ctx context.Context, taskID int) (*models.Task, error) {
	if taskID <= 0 {
		return nil, invalid(ErrInvalidTaskID)
	}

	task, err := s.repo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, models.ErrTaskNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrNotFound, taskID)
		}
		return nil, storageFault("get task", err)
	}
	return task, nil
}

// ListTasks returns every task in creation order
func (s *service) ListTasks(ctx context.Context) ([]*models.Task, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return nil, storageFault("list tasks", err)
	}
	return tasks, nil
}

// ListOpenTasks returns the tasks that are not completed
func (s *service) ListOpenTasks(ctx context.Context) ([]*models.Task, error) {
	tasks, err := s.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return models.FilterByStatus(tasks, false), nil
}

// ListCompletedTasks returns the completed tasks
func (s *service) ListCompletedTasks(ctx context.Context) ([]*models.Task, error) {
	tasks, err := s.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return models.FilterByStatus(tasks, true), nil
}

func (s *service) update(ctx context.Context, task *models.Task) (*models.Task, error) {
	if err := ValidateTask(task); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, task)
	if err != nil {
		return nil, storageFault("update task", err)
	}
	if !updated {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, task.ID)
	}

	slog.Debug("task updated", "id", task.ID)
	return task, nil
}

// ValidateTask checks the fields a task needs before it can be persisted
func ValidateTask(task *models.Task) error {
	name := strings.TrimSpace(task.Name)
	if name == "" {
		return invalid(ErrEmptyName)
	}
	if len(name) > maxNameLength {
		return invalid(ErrNameTooLong)
	}
	if !task.Priority.Valid() {
		return invalid(ErrInvalidPriority)
	}
	return nil
}

// storageFault logs the underlying cause and tags it as ErrStorageFault
func storageFault(op string, err error) error {
	slog.Error("storage operation failed", "op", op, "error", err)
	return fmt.Errorf("%w: %s: %w", ErrStorageFault, op, err)
}
