package cli

import (
	"errors"
	"fmt"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, malformed task IDs,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested task does not exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Unreadable stdin, corrupted rows that cannot be decoded.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Blank names, invalid priorities, malformed deadlines.
	ExitValidation = 5
)

// CodeError carries the process exit code for a failed command.
// The message has already been reported to the user.
type CodeError struct {
	Code int
	Err  error
}

func (e *CodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *CodeError) Unwrap() error {
	return e.Err
}

// Exit wraps err so that main terminates with code
func Exit(code int, err error) error {
	return &CodeError{Code: code, Err: err}
}

// ExitCode returns the exit code carried by err, ExitError for any other
// error and ExitSuccess for nil
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var codeErr *CodeError
	if errors.As(err, &codeErr) {
		return codeErr.Code
	}
	return ExitError
}
