package models

import (
	"fmt"
	"strings"
	"time"
)

// Task represents a single to-do item
type Task struct {
	ID          int
	Name        string
	Description string
	Priority    Priority
	Deadline    *string // nil when no deadline is set
	Status      Status
}

// NewTask creates an open task that has not been persisted yet
func NewTask(name, description string, priority Priority, deadline *string) *Task {
	return &Task{
		Name:        name,
		Description: description,
		Priority:    priority,
		Deadline:    deadline,
		Status:      StatusOpen,
	}
}

// IsNew reports whether the task has not been assigned an id by the store
func (t *Task) IsNew() bool {
	return t.ID == 0
}

// DeadlineString returns the deadline or an empty string
func (t *Task) DeadlineString() string {
	if t.Deadline == nil {
		return ""
	}
	return *t.Deadline
}

// Clone returns a copy that does not share the deadline pointer
func (t *Task) Clone() *Task {
	c := *t
	if t.Deadline != nil {
		d := *t.Deadline
		c.Deadline = &d
	}
	return &c
}

// FilterByStatus returns the tasks that belong to the completed or open view.
// Order of the input is preserved.
func FilterByStatus(tasks []*Task, completed bool) []*Task {
	filtered := make([]*Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status.IsCompleted() == completed {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// ParseDeadline validates user input against DeadlineLayout.
// An empty string means no deadline and returns nil.
func ParseDeadline(s string) (*string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parsed, err := time.Parse(DeadlineLayout, s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q (expected format yyyy-MM-dd HH:mm)", ErrInvalidDeadline, s)
	}
	formatted := parsed.Format(DeadlineLayout)
	return &formatted, nil
}
