package cli

import (
	"errors"

	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/services/board"
	"github.com/thenoetrevino/taskflow/internal/services/theme"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: storage errors and any failure that doesn't fit below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing required flags or invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: unknown task id or column.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: unreadable stdin or a corrupt snapshot.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: empty titles, invalid priorities, unknown themes, bad dates.
	ExitValidation = 5
)

// CodeError carries the process exit code for a failed command
type CodeError struct {
	Code int
	Err  error
}

func (e *CodeError) Error() string {
	return e.Err.Error()
}

func (e *CodeError) Unwrap() error {
	return e.Err
}

// Exit wraps err with an explicit exit code
func Exit(code int, err error) error {
	return &CodeError{Code: code, Err: err}
}

// ExitCode maps an error returned by a command to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *CodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return codeFor(err)
}

// codeFor classifies domain errors
func codeFor(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation), errors.Is(err, theme.ErrUnknownTheme),
		errors.Is(err, board.ErrTaskAlreadyInTargetColumn):
		return ExitValidation
	case errors.Is(err, board.ErrTaskNotFound), errors.Is(err, board.ErrColumnNotFound):
		return ExitNotFound
	default:
		return ExitError
	}
}

// errorCode returns the machine-readable code reported in JSON errors
func errorCode(err error) string {
	switch {
	case errors.Is(err, models.ErrEmptyTitle):
		return "EMPTY_TITLE"
	case errors.Is(err, models.ErrInvalidPriority):
		return "INVALID_PRIORITY"
	case errors.Is(err, models.ErrInvalidDate):
		return "INVALID_DATE"
	case errors.Is(err, theme.ErrUnknownTheme):
		return "UNKNOWN_THEME"
	case errors.Is(err, board.ErrTaskNotFound):
		return "TASK_NOT_FOUND"
	case errors.Is(err, board.ErrColumnNotFound):
		return "COLUMN_NOT_FOUND"
	case errors.Is(err, board.ErrTaskAlreadyInTargetColumn):
		return "ALREADY_IN_COLUMN"
	default:
		return "ERROR"
	}
}
