package board

import "github.com/thenoetrevino/taskflow/internal/models"

// DragState is the read-only view of an armed drag
type DragState struct {
	Task           models.Task
	SourceColumnID string
}

// DragSession tracks one in-flight drag between start and drop or cancel.
// The zero value is idle.
type DragSession struct {
	armed *DragState
}

// Start arms the session, replacing any stale drag
func (d *DragSession) Start(task models.Task, sourceColumnID string) {
	d.armed = &DragState{Task: task.Clone(), SourceColumnID: sourceColumnID}
}

// Resolve drops the dragged task onto the target column.
// The session is idle afterwards whatever the outcome.
func (d *DragSession) Resolve(store *TaskStore, targetColumnID string) (models.Task, error) {
	armed := d.armed
	d.armed = nil
	if armed == nil {
		return models.Task{}, ErrNoActiveDrag
	}
	// Only the id is taken from the captured task so edits made while
	// dragging are preserved by the move.
	return store.MoveTask(armed.Task.ID, armed.SourceColumnID, targetColumnID)
}

// Cancel returns to idle without moving anything.
// Reports whether a drag was armed.
func (d *DragSession) Cancel() bool {
	wasArmed := d.armed != nil
	d.armed = nil
	return wasArmed
}

// Current returns the armed drag, if any
func (d *DragSession) Current() (DragState, bool) {
	if d.armed == nil {
		return DragState{}, false
	}
	return DragState{Task: d.armed.Task.Clone(), SourceColumnID: d.armed.SourceColumnID}, true
}

// Active reports whether a drag is armed
func (d *DragSession) Active() bool {
	return d.armed != nil
}
