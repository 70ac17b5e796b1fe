package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/thenoetrevino/tick/internal/models"
	taskservice "github.com/thenoetrevino/tick/internal/services/task"
)

// StatusFilter selects which tasks list shows
type StatusFilter string

const (
	FilterAll  StatusFilter = "all"
	FilterOpen StatusFilter = "open"
	FilterDone StatusFilter = "done"
)

// ParsePriority maps a priority name to its level
func ParsePriority(priority string) (models.Priority, error) {
	p, err := models.ParsePriorityName(priority)
	if err != nil {
		return 0, fmt.Errorf("invalid priority '%s' (must be: high, medium, low)", priority)
	}
	return p, nil
}

// ParseStatusFilter maps open, done or all to a StatusFilter.
// "completed" is accepted as an alias for done.
func ParseStatusFilter(status string) (StatusFilter, error) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "", "all":
		return FilterAll, nil
	case "open":
		return FilterOpen, nil
	case "done", "completed":
		return FilterDone, nil
	default:
		return "", fmt.Errorf("invalid status '%s' (must be: open, done, all)", status)
	}
}

// ParseTaskID parses a positional task ID argument
func ParseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task ID: %s", arg)
	}
	return id, nil
}

// ReadDescription returns value, or everything read from stdin when value is "-"
func ReadDescription(value string, stdin io.Reader) (string, error) {
	if value != "-" {
		return value, nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read description from stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// Fail reports err through the formatter and returns an error carrying exitCode
func Fail(formatter *OutputFormatter, exitCode int, code, message, suggestion string) error {
	if fmtErr := formatter.ErrorWithSuggestion(code, message, suggestion); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return Exit(exitCode, errors.New(message))
}

// FailService reports an error returned by the task service, choosing the
// error code and exit code from its kind
func FailService(formatter *OutputFormatter, taskID int, err error) error {
	switch {
	case errors.Is(err, taskservice.ErrNotFound):
		return Fail(formatter, ExitNotFound, "TASK_NOT_FOUND",
			fmt.Sprintf("task %d not found", taskID),
			"Use 'tick list' to see existing tasks")
	case errors.Is(err, taskservice.ErrValidation):
		return Fail(formatter, ExitValidation, "VALIDATION_ERROR", validationMessage(err), "")
	case errors.Is(err, models.ErrInvalidPriorityLevel):
		return Fail(formatter, ExitDataErr, "CORRUPT_DATA", err.Error(), "")
	default:
		return Fail(formatter, ExitError, "STORAGE_ERROR", err.Error(), "")
	}
}

// validationMessage drops the generic prefix so users see the specific rule
func validationMessage(err error) string {
	for _, specific := range []error{
		taskservice.ErrEmptyName,
		taskservice.ErrNameTooLong,
		taskservice.ErrInvalidTaskID,
		taskservice.ErrInvalidPriority,
		taskservice.ErrInvalidDeadline,
	} {
		if errors.Is(err, specific) {
			return specific.Error()
		}
	}
	return err.Error()
}
