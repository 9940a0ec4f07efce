package models

import (
	"errors"
	"fmt"
)

// ErrValidation is the root of every input validation error.
// Use errors.Is(err, ErrValidation) to detect any of them.
var ErrValidation = errors.New("validation failed")

// Validation errors for task fields
var (
	// ErrEmptyTitle indicates a title that is empty after trimming
	ErrEmptyTitle = fmt.Errorf("%w: task title cannot be empty", ErrValidation)

	// ErrInvalidPriority indicates a priority outside low, medium and high
	ErrInvalidPriority = fmt.Errorf("%w: invalid priority", ErrValidation)

	// ErrInvalidDate indicates a due date that is not in YYYY-MM-DD form
	ErrInvalidDate = fmt.Errorf("%w: invalid date", ErrValidation)
)
