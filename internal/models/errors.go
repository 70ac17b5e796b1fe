package models

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPriorityLevel is matched by every *InvalidPriorityLevelError
	ErrInvalidPriorityLevel = errors.New("invalid priority level")

	// ErrTaskNotFound indicates that no row has the requested id
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidDeadline indicates a deadline that does not match DeadlineLayout
	ErrInvalidDeadline = errors.New("invalid deadline")
)

// InvalidPriorityLevelError is returned when a stored level is not a known Priority
type InvalidPriorityLevelError struct {
	Level int
}

func (e *InvalidPriorityLevelError) Error() string {
	return fmt.Sprintf("invalid priority level: %d", e.Level)
}

// Is lets errors.Is(err, ErrInvalidPriorityLevel) match
func (e *InvalidPriorityLevelError) Is(target error) bool {
	return target == ErrInvalidPriorityLevel
}
