package board

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/thenoetrevino/taskflow/internal/models"
)

// maxIDAttempts bounds retries when the generator returns an id already in use
const maxIDAttempts = 8

// TaskStore owns the mapping of column id to ordered task list.
// Every method leaves the board satisfying the uniqueness invariant:
// each task id appears in exactly one column, exactly once.
//
// TaskStore is not safe for concurrent use; Engine serializes access.
type TaskStore struct {
	board           *models.Board
	defaultAssignee string
	now             func() time.Time
	newID           func() string
}

// NewTaskStore creates a store with one empty column per configured spec
func NewTaskStore(opts ...Option) *TaskStore {
	cfg := newConfig(opts)
	return newTaskStore(cfg)
}

func newTaskStore(cfg config) *TaskStore {
	return &TaskStore{
		board:           models.NewBoard(cfg.columns),
		defaultAssignee: cfg.defaultAssignee,
		now:             cfg.now,
		newID:           cfg.newID,
	}
}

// Specs returns the fixed column layout
func (s *TaskStore) Specs() []models.ColumnSpec {
	return s.board.Specs()
}

// Snapshot returns a deep copy of the board
func (s *TaskStore) Snapshot() *models.Board {
	return s.board.Clone()
}

// TaskCount returns the number of tasks across all columns
func (s *TaskStore) TaskCount() int {
	return s.board.TaskCount()
}

// Task returns a copy of the task with the given id in the given column
func (s *TaskStore) Task(columnID, taskID string) (models.Task, bool) {
	col, ok := s.board.Column(columnID)
	if !ok {
		return models.Task{}, false
	}
	idx := col.IndexOf(taskID)
	if idx < 0 {
		return models.Task{}, false
	}
	return col.Tasks[idx].Clone(), true
}

// CreateTask validates the fields and appends a new task to the end of the column
func (s *TaskStore) CreateTask(columnID string, fields TaskFields) (models.Task, error) {
	title := strings.TrimSpace(fields.Title)
	if title == "" {
		return models.Task{}, models.ErrEmptyTitle
	}

	priority := fields.Priority
	if priority == "" {
		priority = models.DefaultPriority
	}
	if !priority.Valid() {
		return models.Task{}, fmt.Errorf("%w: %q", models.ErrInvalidPriority, priority)
	}

	col, ok := s.board.Column(columnID)
	if !ok {
		return models.Task{}, fmt.Errorf("%w: %s", ErrColumnNotFound, columnID)
	}

	id, err := s.uniqueID()
	if err != nil {
		return models.Task{}, err
	}

	assignee := strings.TrimSpace(fields.Assignee)
	if assignee == "" {
		assignee = s.defaultAssignee
	}

	task := models.Task{
		ID:          id,
		Title:       title,
		Description: fields.Description,
		Priority:    priority,
		Assignee:    assignee,
		Tags:        models.NormalizeTags(fields.Tags),
		CreatedAt:   s.now(),
	}
	if fields.DueDate != nil {
		due := *fields.DueDate
		task.DueDate = &due
	}

	col.Tasks = append(col.Tasks, task)
	return task.Clone(), nil
}

// UpdateTask applies the provided fields to a task in place.
// Identity, creation time and move time are never changed.
func (s *TaskStore) UpdateTask(columnID, taskID string, patch TaskPatch) (models.Task, error) {
	col, ok := s.board.Column(columnID)
	if !ok {
		return models.Task{}, fmt.Errorf("%w: %s", ErrColumnNotFound, columnID)
	}
	idx := col.IndexOf(taskID)
	if idx < 0 {
		return models.Task{}, fmt.Errorf("%w: %s in %s", ErrTaskNotFound, taskID, columnID)
	}

	// Validate everything before touching the stored task
	var title string
	if patch.Title != nil {
		title = strings.TrimSpace(*patch.Title)
		if title == "" {
			return models.Task{}, models.ErrEmptyTitle
		}
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		return models.Task{}, fmt.Errorf("%w: %q", models.ErrInvalidPriority, *patch.Priority)
	}

	task := col.Tasks[idx].Clone()
	if patch.Title != nil {
		task.Title = title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	switch {
	case patch.DueDate != nil:
		due := *patch.DueDate
		task.DueDate = &due
	case patch.ClearDueDate:
		task.DueDate = nil
	}
	if patch.Assignee != nil {
		task.Assignee = strings.TrimSpace(*patch.Assignee)
		if task.Assignee == "" {
			task.Assignee = s.defaultAssignee
		}
	}
	if patch.Tags != nil {
		task.Tags = models.NormalizeTags(*patch.Tags)
	}

	col.Tasks[idx] = task
	return task.Clone(), nil
}

// DeleteTask removes a task. Deleting an absent task is a no-op.
// Returns whether something was removed.
func (s *TaskStore) DeleteTask(columnID, taskID string) bool {
	col, ok := s.board.Column(columnID)
	if !ok {
		return false
	}
	idx := col.IndexOf(taskID)
	if idx < 0 {
		return false
	}
	col.Tasks = slices.Delete(col.Tasks, idx, idx+1)
	return true
}

// MoveTask removes a task from one column and appends it to another,
// stamping its move time. Either both steps happen or neither does.
func (s *TaskStore) MoveTask(taskID, fromColumnID, toColumnID string) (models.Task, error) {
	from, ok := s.board.Column(fromColumnID)
	if !ok {
		return models.Task{}, fmt.Errorf("%w: %s", ErrColumnNotFound, fromColumnID)
	}
	to, ok := s.board.Column(toColumnID)
	if !ok {
		return models.Task{}, fmt.Errorf("%w: %s", ErrColumnNotFound, toColumnID)
	}
	idx := from.IndexOf(taskID)
	if idx < 0 {
		return models.Task{}, fmt.Errorf("%w: %s in %s", ErrTaskNotFound, taskID, fromColumnID)
	}
	if fromColumnID == toColumnID {
		return from.Tasks[idx].Clone(), ErrTaskAlreadyInTargetColumn
	}

	task := from.Tasks[idx]
	movedAt := s.now()
	task.MovedAt = &movedAt

	from.Tasks = slices.Delete(from.Tasks, idx, idx+1)
	to.Tasks = append(to.Tasks, task)
	return task.Clone(), nil
}

// Replace installs a board loaded from elsewhere. Columns are matched by id
// against the store's layout; columns the store does not know are ignored.
// A task whose id was already seen is dropped. Returns how many were dropped.
func (s *TaskStore) Replace(b *models.Board) int {
	next := models.NewBoard(s.board.Specs())
	if b == nil {
		s.board = next
		return 0
	}

	seen := make(map[string]struct{})
	dropped := 0
	for i := range next.Columns {
		src, ok := b.Column(next.Columns[i].ID)
		if !ok {
			continue
		}
		for _, task := range src.Tasks {
			if _, dup := seen[task.ID]; dup {
				dropped++
				continue
			}
			seen[task.ID] = struct{}{}
			next.Columns[i].Tasks = append(next.Columns[i].Tasks, task.Clone())
		}
	}
	s.board = next
	return dropped
}

func (s *TaskStore) uniqueID() (string, error) {
	for range maxIDAttempts {
		id := s.newID()
		if id == "" {
			continue
		}
		if _, _, exists := s.board.Find(id); !exists {
			return id, nil
		}
	}
	return "", ErrIDCollision
}
