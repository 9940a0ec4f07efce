package board

import (
	"errors"
	"fmt"
)

// Board errors. Validation errors live in models and wrap models.ErrValidation.
var (
	// Not-found errors are benign for delete and move
	ErrTaskNotFound   = errors.New("task not found")
	ErrColumnNotFound = errors.New("column not found")

	// ErrTaskAlreadyInTargetColumn marks a same-column move, which is a no-op
	ErrTaskAlreadyInTargetColumn = errors.New("task is already in target column")

	// ErrNoActiveDrag is returned when resolving without a drag in progress
	ErrNoActiveDrag = errors.New("no drag in progress")

	// ErrIDCollision indicates the id generator kept returning ids already on the board
	ErrIDCollision = errors.New("could not generate a unique task id")
)

// PersistenceError describes a failed load or save of persisted state.
// It is reported and counted but never rolls back in-memory state.
type PersistenceError struct {
	Op  string // "load", "decode", "encode" or "save"
	Key string
	Err error
}

// Error implements the error interface.
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s %q: %v", e.Op, e.Key, e.Err)
}

// Unwrap returns the underlying error
func (e *PersistenceError) Unwrap() error {
	return e.Err
}
