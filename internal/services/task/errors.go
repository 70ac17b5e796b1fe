package task

import (
	"errors"
	"fmt"
)

// Error kinds returned by the Service. Every error it returns matches exactly
// one of these via errors.Is. ErrValidation covers caller input only: a stored
// row that cannot be decoded, such as an unknown priority level, is an
// ErrStorageFault whose cause still matches models.ErrInvalidPriorityLevel.
var (
	ErrNotFound     = errors.New("task not found")
	ErrValidation   = errors.New("invalid task")
	ErrStorageFault = errors.New("task storage failure")
)

// Validation errors, always wrapped together with ErrValidation
var (
	ErrEmptyName       = errors.New("task name cannot be empty")
	ErrNameTooLong     = errors.New("task name cannot exceed 255 characters")
	ErrInvalidTaskID   = errors.New("invalid task ID")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidDeadline = errors.New("invalid deadline: expected YYYY-MM-DD HH:MM")
)

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}
