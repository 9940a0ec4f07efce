package board

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/thenoetrevino/taskflow/internal/converters"
	"github.com/thenoetrevino/taskflow/internal/database"
	"github.com/thenoetrevino/taskflow/internal/events"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// Engine is the authoritative board state. It composes a TaskStore and a
// DragSession, applies each operation to completion under one lock and
// hands the resulting snapshot to a background writer.
type Engine struct {
	mu        sync.Mutex
	store     *TaskStore
	drag      DragSession
	persist   database.Store
	saver     *saver
	publisher events.Publisher
	logger    *slog.Logger
	metrics   *Metrics
	now       func() time.Time
}

// LoadResult describes how the board was initialized
type LoadResult struct {
	Restored       bool     // A persisted snapshot was installed
	Tasks          int      // Tasks on the board after loading
	Duplicates     int      // Tasks dropped because their id was already present
	Skipped        int      // Task records dropped because they could not be read
	UnknownColumns []string // Persisted columns that are not part of the layout
	Err            error    // Why the default board was used, nil if the snapshot was missing or restored
}

// NewEngine creates an engine with an empty board. Call Load to restore
// persisted state.
func NewEngine(persist database.Store, opts ...Option) *Engine {
	cfg := newConfig(opts)
	logger := cfg.logger.With("component", "board")
	metrics := NewMetrics()

	e := &Engine{
		store:     newTaskStore(cfg),
		persist:   persist,
		publisher: cfg.publisher,
		logger:    logger,
		metrics:   metrics,
		now:       cfg.now,
	}
	e.saver = newSaver(persist, models.BoardKey, cfg.saveTimeout, logger, metrics, e.reportSaveFailure)
	return e
}

// Load restores the board from persistence. It never fails: a missing,
// unreadable or unparsable snapshot leaves the default empty board in place.
func (e *Engine) Load(ctx context.Context) LoadResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.drag.Cancel()

	raw, err := e.persist.Get(ctx, models.BoardKey)
	if errors.Is(err, database.ErrNotFound) {
		e.store.Replace(nil)
		e.logger.Info("no saved board, starting empty")
		return LoadResult{}
	}
	if err != nil {
		return e.loadFailed(&PersistenceError{Op: "load", Key: models.BoardKey, Err: err})
	}

	loaded, report, err := converters.DecodeBoard(raw, e.store.Specs())
	if err != nil {
		return e.loadFailed(&PersistenceError{Op: "decode", Key: models.BoardKey, Err: err})
	}
	if len(report.UnknownColumns) > 0 {
		e.logger.Warn("dropping tasks filed under unknown columns", "columns", report.UnknownColumns)
	}
	for _, skipped := range report.Skipped {
		e.logger.Warn("dropping unreadable task", "error", skipped)
	}

	dups := e.store.Replace(loaded)
	if dups > 0 {
		e.logger.Warn("dropped tasks with duplicate ids", "count", dups)
	}

	result := LoadResult{
		Restored:       true,
		Tasks:          e.store.TaskCount(),
		Duplicates:     dups,
		Skipped:        len(report.Skipped),
		UnknownColumns: report.UnknownColumns,
	}
	e.logger.Info("board restored", "tasks", result.Tasks)
	e.publish("load", "", "")
	return result
}

func (e *Engine) loadFailed(perr *PersistenceError) LoadResult {
	e.metrics.IncLoadFailed()
	e.logger.Warn("failed to load board, starting empty", "op", perr.Op, "error", perr.Err)
	e.store.Replace(nil)
	return LoadResult{Err: perr}
}

// Snapshot returns a read-only copy of the board
func (e *Engine) Snapshot() *models.Board {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.Snapshot()
}

// Stats returns task counts per column
func (e *Engine) Stats() models.BoardStats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.board.Stats()
}

// FindTask locates a task by id across all columns
func (e *Engine) FindTask(taskID string) (models.Task, string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	task, columnID, ok := e.store.board.Find(taskID)
	if !ok {
		return models.Task{}, "", false
	}
	return task.Clone(), columnID, true
}

// CreateTask adds a task to the end of a column
func (e *Engine) CreateTask(columnID string, fields TaskFields) (models.Task, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	task, err := e.store.CreateTask(columnID, fields)
	if err != nil {
		return models.Task{}, err
	}
	e.logger.Debug("task created", "task_id", task.ID, "column", columnID)
	e.changed("create", task.ID, columnID)
	return task, nil
}

// UpdateTask applies a partial update to a task
func (e *Engine) UpdateTask(columnID, taskID string, patch TaskPatch) (models.Task, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	task, err := e.store.UpdateTask(columnID, taskID, patch)
	if err != nil {
		return models.Task{}, err
	}
	e.changed("update", taskID, columnID)
	return task, nil
}

// DeleteTask removes a task. Reports whether anything was removed.
func (e *Engine) DeleteTask(columnID, taskID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.store.DeleteTask(columnID, taskID) {
		e.logger.Debug("delete of absent task ignored", "task_id", taskID, "column", columnID)
		return false
	}
	e.changed("delete", taskID, columnID)
	return true
}

// MoveTask moves a task to the end of another column.
// Not-found and same-column errors leave the board untouched; see IsBenign.
func (e *Engine) MoveTask(taskID, fromColumnID, toColumnID string) (models.Task, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	task, err := e.store.MoveTask(taskID, fromColumnID, toColumnID)
	if err != nil {
		e.logger.Debug("move ignored", "task_id", taskID, "from", fromColumnID, "to", toColumnID, "reason", err)
		return task, err
	}
	e.changed("move", taskID, toColumnID)
	return task, nil
}

// StartDrag arms a drag for a task in its source column, replacing any
// stale drag. If the task is not there the session is left idle.
func (e *Engine) StartDrag(columnID, taskID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	task, ok := e.store.Task(columnID, taskID)
	if !ok {
		e.drag.Cancel()
		return ErrTaskNotFound
	}
	e.drag.Start(task, columnID)
	return nil
}

// ResolveDrag drops the dragged task onto a column. The session is idle
// afterwards whatever the outcome.
func (e *Engine) ResolveDrag(targetColumnID string) (models.Task, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	task, err := e.drag.Resolve(e.store, targetColumnID)
	if err != nil {
		e.logger.Debug("drop ignored", "target", targetColumnID, "reason", err)
		return task, err
	}
	e.changed("move", task.ID, targetColumnID)
	return task, nil
}

// CancelDrag abandons the drag without moving anything
func (e *Engine) CancelDrag() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.drag.Cancel()
}

// DragState returns the armed drag, if any
func (e *Engine) DragState() (DragState, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.drag.Current()
}

// Now returns the engine's clock reading, used for overdue checks
func (e *Engine) Now() time.Time {
	return e.now()
}

// Metrics returns persistence statistics
func (e *Engine) Metrics() MetricsSnapshot {
	return e.metrics.GetSnapshot()
}

// Flush blocks until every submitted snapshot has been written
func (e *Engine) Flush() {
	e.saver.flush()
}

// Close writes the pending snapshot and stops the writer. Mutations after
// Close still apply in memory but are no longer persisted.
func (e *Engine) Close() error {
	e.saver.close()
	return nil
}

// changed persists the board and notifies subscribers. Caller holds e.mu.
func (e *Engine) changed(op, taskID, columnID string) {
	e.persistLocked()
	e.publish(op, taskID, columnID)
}

// persistLocked submits the current snapshot. An all-empty board is never
// written. Caller holds e.mu.
func (e *Engine) persistLocked() {
	if e.store.TaskCount() == 0 {
		e.metrics.IncSkipped()
		e.logger.Debug("board is empty, skipping save")
		return
	}

	raw, err := converters.EncodeBoard(e.store.board)
	if err != nil {
		e.metrics.IncFailed()
		e.reportSaveFailure(&PersistenceError{Op: "encode", Key: models.BoardKey, Err: err})
		return
	}
	e.saver.submit(raw)
}

func (e *Engine) publish(op, taskID, columnID string) {
	e.publisher.Publish(events.Event{
		Type:      events.EventBoardChanged,
		Op:        op,
		TaskID:    taskID,
		ColumnID:  columnID,
		Timestamp: e.now(),
	})
}

func (e *Engine) reportSaveFailure(perr *PersistenceError) {
	if perr.Op == "encode" {
		e.logger.Error("failed to encode board", "error", perr.Err)
	}
	e.publisher.Publish(events.Event{
		Type:      events.EventPersistFailed,
		Op:        perr.Op,
		Timestamp: time.Now(),
	})
}

// IsBenign reports whether err is an expected no-op outcome of a move,
// delete or drop rather than a fault worth surfacing.
func IsBenign(err error) bool {
	return errors.Is(err, ErrTaskNotFound) ||
		errors.Is(err, ErrColumnNotFound) ||
		errors.Is(err, ErrTaskAlreadyInTargetColumn) ||
		errors.Is(err, ErrNoActiveDrag)
}
