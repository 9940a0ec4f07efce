package board

import (
	"errors"
	"testing"

	"github.com/thenoetrevino/taskflow/internal/models"
)

func TestDragSession_ResolveMoves(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	a := mustCreate(t, s, models.ColumnTodo, "A")

	var d DragSession
	d.Start(a, models.ColumnTodo)

	state, ok := d.Current()
	if !ok || state.Task.ID != a.ID || state.SourceColumnID != models.ColumnTodo {
		t.Fatalf("Unexpected armed state %+v, %v", state, ok)
	}

	moved, err := d.Resolve(s, models.ColumnDone)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if moved.ID != a.ID {
		t.Errorf("Expected %s moved, got %s", a.ID, moved.ID)
	}
	if d.Active() {
		t.Error("Session should be idle after resolve")
	}
	if _, ok := s.Task(models.ColumnDone, a.ID); !ok {
		t.Error("Task should be in done")
	}
}

func TestDragSession_ResolveWithoutStart(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	mustCreate(t, s, models.ColumnTodo, "A")
	before := s.Snapshot()

	var d DragSession
	_, err := d.Resolve(s, models.ColumnDone)
	if !errors.Is(err, ErrNoActiveDrag) {
		t.Errorf("Expected ErrNoActiveDrag, got %v", err)
	}
	if taskIDs(s.Snapshot(), models.ColumnTodo)[0] != taskIDs(before, models.ColumnTodo)[0] {
		t.Error("Resolve without start changed the board")
	}
}

func TestDragSession_SecondStartWins(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	a := mustCreate(t, s, models.ColumnTodo, "A")
	b := mustCreate(t, s, models.ColumnInProgress, "B")

	var d DragSession
	d.Start(a, models.ColumnTodo)
	d.Start(b, models.ColumnInProgress)

	if _, err := d.Resolve(s, models.ColumnDone); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if _, ok := s.Task(models.ColumnTodo, a.ID); !ok {
		t.Error("First drag should have been discarded")
	}
	if _, ok := s.Task(models.ColumnDone, b.ID); !ok {
		t.Error("Second drag should have been resolved")
	}
}

func TestDragSession_IdleAfterFailedResolve(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	a := mustCreate(t, s, models.ColumnTodo, "A")

	var d DragSession
	d.Start(a, models.ColumnTodo)
	s.DeleteTask(models.ColumnTodo, a.ID)

	if _, err := d.Resolve(s, models.ColumnDone); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound, got %v", err)
	}
	if d.Active() {
		t.Error("Session should be idle after a failed resolve")
	}

	// Same-column drop
	b := mustCreate(t, s, models.ColumnTodo, "B")
	d.Start(b, models.ColumnTodo)
	if _, err := d.Resolve(s, models.ColumnTodo); !errors.Is(err, ErrTaskAlreadyInTargetColumn) {
		t.Errorf("Expected ErrTaskAlreadyInTargetColumn, got %v", err)
	}
	if d.Active() {
		t.Error("Session should be idle after a same-column drop")
	}
}

// Edits made while a task is being dragged survive the drop
func TestDragSession_ResolveUsesStoredTask(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	a := mustCreate(t, s, models.ColumnTodo, "A")

	var d DragSession
	d.Start(a, models.ColumnTodo)

	title := "Edited mid-drag"
	if _, err := s.UpdateTask(models.ColumnTodo, a.ID, TaskPatch{Title: &title}); err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}

	moved, err := d.Resolve(s, models.ColumnDone)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if moved.Title != title {
		t.Errorf("Expected title %q after drop, got %q", title, moved.Title)
	}
}

func TestDragSession_Cancel(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	a := mustCreate(t, s, models.ColumnTodo, "A")

	var d DragSession
	if d.Cancel() {
		t.Error("Cancel on idle session should report false")
	}

	d.Start(a, models.ColumnTodo)
	if !d.Cancel() {
		t.Error("Cancel on armed session should report true")
	}
	if _, ok := d.Current(); ok {
		t.Error("Session should be idle after cancel")
	}
	if _, ok := s.Task(models.ColumnTodo, a.ID); !ok {
		t.Error("Cancel must not move the task")
	}
}
