package board

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskflow/internal/converters"
	"github.com/thenoetrevino/taskflow/internal/database"
	"github.com/thenoetrevino/taskflow/internal/events"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func newTestEngine(t *testing.T, persist database.Store, opts ...Option) *Engine {
	t.Helper()
	base := []Option{WithClock(fixedClock()), WithIDGenerator(sequentialIDs()), WithDefaultAssignee("Dana")}
	e := NewEngine(persist, append(base, opts...)...)
	t.Cleanup(func() { _ = e.Close() })
	return e
}

func storedBoard(t *testing.T, persist database.Store) *models.Board {
	t.Helper()
	raw, err := persist.Get(context.Background(), models.BoardKey)
	require.NoError(t, err)
	b, report, err := converters.DecodeBoard(raw, models.DefaultColumns())
	require.NoError(t, err)
	require.Empty(t, report.UnknownColumns)
	require.Empty(t, report.Skipped)
	return b
}

// ============================================================================
// Load
// ============================================================================

func TestEngine_Load_NoSnapshot(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, database.NewMemoryStore())
	res := e.Load(context.Background())

	assert.False(t, res.Restored)
	assert.NoError(t, res.Err)

	b := e.Snapshot()
	require.Len(t, b.Columns, 3)
	assert.Equal(t, 0, b.TaskCount())
	assert.Equal(t, "To Do", b.Columns[0].Title)
}

func TestEngine_Load_Restores(t *testing.T) {
	t.Parallel()

	persist := database.NewMemoryStore()
	first := newTestEngine(t, persist)
	first.Load(context.Background())
	a, err := first.CreateTask(models.ColumnTodo, TaskFields{Title: "A", Tags: []string{"x"}})
	require.NoError(t, err)
	_, err = first.CreateTask(models.ColumnDone, TaskFields{Title: "B"})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second := newTestEngine(t, persist)
	res := second.Load(context.Background())

	assert.True(t, res.Restored)
	assert.Equal(t, 2, res.Tasks)
	assert.Equal(t, first.Snapshot(), second.Snapshot())

	got, col, ok := second.FindTask(a.ID)
	require.True(t, ok)
	assert.Equal(t, models.ColumnTodo, col)
	assert.Equal(t, []string{"x"}, got.Tags)
}

func TestEngine_DuplicateColumnIDsKeepTasksAcrossRestart(t *testing.T) {
	t.Parallel()

	persist := database.NewMemoryStore()
	layout := WithColumns([]models.ColumnSpec{
		{ID: models.ColumnTodo, Title: "To Do"},
		{ID: models.ColumnTodo, Title: "Also To Do"},
		{ID: "  ", Title: "Blank"},
	})

	first := newTestEngine(t, persist, layout)
	first.Load(context.Background())
	require.Len(t, first.Snapshot().Columns, 1)
	_, err := first.CreateTask(models.ColumnTodo, TaskFields{Title: "survivor"})
	require.NoError(t, err)
	first.Flush()

	second := newTestEngine(t, persist, layout)
	res := second.Load(context.Background())

	require.True(t, res.Restored)
	b := second.Snapshot()
	require.Len(t, b.Columns, 1)
	assert.Equal(t, "To Do", b.Columns[0].Title)
	assert.Equal(t, 1, b.TaskCount())
}

func TestEngine_Load_CorruptSnapshot(t *testing.T) {
	t.Parallel()

	persist := database.NewMemoryStore()
	require.NoError(t, persist.Set(context.Background(), models.BoardKey, "{not json"))

	e := newTestEngine(t, persist)
	res := e.Load(context.Background())

	assert.False(t, res.Restored)
	var perr *PersistenceError
	require.ErrorAs(t, res.Err, &perr)
	assert.Equal(t, "decode", perr.Op)
	assert.Equal(t, 0, e.Snapshot().TaskCount())
	assert.Equal(t, int64(1), e.Metrics().LoadFailed)
}

func TestEngine_Load_BadRecordKeepsTheRest(t *testing.T) {
	t.Parallel()

	persist := database.NewMemoryStore()
	raw := `{"todo":{"tasks":[{"id":"a","title":"Good"},{"id":"b","title":"Bad","priority":"urgent"}]},` +
		`"done":{"tasks":[{"id":"c","title":"Also good"}]}}`
	require.NoError(t, persist.Set(context.Background(), models.BoardKey, raw))

	e := newTestEngine(t, persist)
	res := e.Load(context.Background())

	require.True(t, res.Restored)
	assert.NoError(t, res.Err)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, 2, res.Tasks)

	// The next save keeps the readable tasks instead of wiping them
	_, err := e.CreateTask(models.ColumnTodo, TaskFields{Title: "New"})
	require.NoError(t, err)
	e.Flush()
	assert.Equal(t, 3, storedBoard(t, persist).TaskCount())
}

func TestEngine_Load_StoreError(t *testing.T) {
	t.Parallel()

	persist := newFailingStore()
	persist.getErr = errors.New("disk on fire")

	e := newTestEngine(t, persist)
	res := e.Load(context.Background())

	var perr *PersistenceError
	require.ErrorAs(t, res.Err, &perr)
	assert.Equal(t, "load", perr.Op)
	assert.Len(t, e.Snapshot().Columns, 3)
}

func TestEngine_Load_UnknownColumns(t *testing.T) {
	t.Parallel()

	persist := database.NewMemoryStore()
	raw := `{"todo":{"title":"To Do","color":"blue","tasks":[{"id":"1","title":"A","priority":"low","createdAt":"2025-01-01T00:00:00Z"}]},` +
		`"archive":{"title":"Archive","color":"gray","tasks":[{"id":"2","title":"B","priority":"low","createdAt":"2025-01-01T00:00:00Z"}]}}`
	require.NoError(t, persist.Set(context.Background(), models.BoardKey, raw))

	e := newTestEngine(t, persist)
	res := e.Load(context.Background())

	assert.True(t, res.Restored)
	assert.Equal(t, []string{"archive"}, res.UnknownColumns)
	assert.Equal(t, 1, res.Tasks)
}

// ============================================================================
// Persistence
// ============================================================================

// Nothing is written at startup until the first task is created
func TestEngine_EmptyBoardGuard(t *testing.T) {
	t.Parallel()

	persist := database.NewMemoryStore()
	e := newTestEngine(t, persist)
	e.Load(context.Background())
	e.Flush()

	assert.Equal(t, 0, persist.Writes())

	// Operations that leave the board empty do not write either
	assert.False(t, e.DeleteTask(models.ColumnTodo, "missing"))
	_, err := e.MoveTask("missing", models.ColumnTodo, models.ColumnDone)
	assert.ErrorIs(t, err, ErrTaskNotFound)
	e.Flush()
	assert.Equal(t, 0, persist.Writes())

	_, err = e.CreateTask(models.ColumnTodo, TaskFields{Title: "First"})
	require.NoError(t, err)
	e.Flush()
	assert.Equal(t, 1, persist.Writes())
}

func TestEngine_DeletingLastTaskSkipsSave(t *testing.T) {
	t.Parallel()

	persist := database.NewMemoryStore()
	e := newTestEngine(t, persist)
	e.Load(context.Background())

	task, err := e.CreateTask(models.ColumnTodo, TaskFields{Title: "Only"})
	require.NoError(t, err)
	e.Flush()
	require.True(t, e.DeleteTask(models.ColumnTodo, task.ID))
	e.Flush()

	assert.Equal(t, 1, persist.Writes())
	assert.Equal(t, int64(1), e.Metrics().Skipped)
	assert.Equal(t, 1, storedBoard(t, persist).TaskCount())
}

func TestEngine_PersistsEveryMutation(t *testing.T) {
	t.Parallel()

	persist := database.NewMemoryStore()
	e := newTestEngine(t, persist)
	e.Load(context.Background())

	a, err := e.CreateTask(models.ColumnTodo, TaskFields{Title: "A"})
	require.NoError(t, err)
	_, err = e.CreateTask(models.ColumnTodo, TaskFields{Title: "B"})
	require.NoError(t, err)
	title := "A2"
	_, err = e.UpdateTask(models.ColumnTodo, a.ID, TaskPatch{Title: &title})
	require.NoError(t, err)
	_, err = e.MoveTask(a.ID, models.ColumnTodo, models.ColumnInProgress)
	require.NoError(t, err)
	e.Flush()

	assert.Equal(t, e.Snapshot(), storedBoard(t, persist))
	m := e.Metrics()
	assert.Equal(t, int64(0), m.Failed)
	assert.NotNil(t, m.LastSavedAt)
}

func TestEngine_SaveFailureKeepsState(t *testing.T) {
	t.Parallel()

	persist := newFailingStore()
	persist.setErr = errors.New("read-only file system")
	bus := events.NewBus(nil)
	defer bus.Close()
	sub := bus.Subscribe(8)

	e := newTestEngine(t, persist, WithPublisher(bus))
	e.Load(context.Background())

	task, err := e.CreateTask(models.ColumnTodo, TaskFields{Title: "A"})
	require.NoError(t, err, "save failures must not surface as mutation errors")
	e.Flush()

	_, col, ok := e.FindTask(task.ID)
	assert.True(t, ok)
	assert.Equal(t, models.ColumnTodo, col)
	assert.Equal(t, int64(1), e.Metrics().Failed)

	var sawFailure bool
	timeout := time.After(time.Second)
	for !sawFailure {
		select {
		case ev := <-sub.C:
			sawFailure = ev.Type == events.EventPersistFailed
		case <-timeout:
			t.Fatal("Expected a persist_failed event")
		}
	}
}

// ============================================================================
// Events
// ============================================================================

func TestEngine_PublishesBoardChanged(t *testing.T) {
	t.Parallel()

	bus := events.NewBus(nil)
	defer bus.Close()
	sub := bus.Subscribe(8)

	e := newTestEngine(t, database.NewMemoryStore(), WithPublisher(bus))
	task, err := e.CreateTask(models.ColumnTodo, TaskFields{Title: "A"})
	require.NoError(t, err)
	require.NoError(t, e.StartDrag(models.ColumnTodo, task.ID))
	_, err = e.ResolveDrag(models.ColumnDone)
	require.NoError(t, err)

	// Rejected operations publish nothing
	_, err = e.CreateTask(models.ColumnTodo, TaskFields{Title: ""})
	require.Error(t, err)

	var ops []string
	for len(ops) < 2 {
		select {
		case ev := <-sub.C:
			assert.Equal(t, events.EventBoardChanged, ev.Type)
			assert.Equal(t, task.ID, ev.TaskID)
			ops = append(ops, ev.Op)
		case <-time.After(time.Second):
			t.Fatalf("Timed out waiting for events, got %v", ops)
		}
	}
	assert.Equal(t, []string{"create", "move"}, ops)

	select {
	case ev := <-sub.C:
		t.Errorf("Unexpected extra event %+v", ev)
	default:
	}
}

// ============================================================================
// Drag
// ============================================================================

func TestEngine_DragTolerance(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, database.NewMemoryStore())

	_, err := e.ResolveDrag(models.ColumnDone)
	assert.ErrorIs(t, err, ErrNoActiveDrag)
	assert.True(t, IsBenign(err))

	a, _ := e.CreateTask(models.ColumnTodo, TaskFields{Title: "A"})
	b, _ := e.CreateTask(models.ColumnTodo, TaskFields{Title: "B"})

	require.NoError(t, e.StartDrag(models.ColumnTodo, a.ID))
	require.NoError(t, e.StartDrag(models.ColumnTodo, b.ID))

	state, ok := e.DragState()
	require.True(t, ok)
	assert.Equal(t, b.ID, state.Task.ID)

	moved, err := e.ResolveDrag(models.ColumnInProgress)
	require.NoError(t, err)
	assert.Equal(t, b.ID, moved.ID)

	_, ok = e.DragState()
	assert.False(t, ok)
}

func TestEngine_StartDragMissingTaskClearsSession(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, database.NewMemoryStore())
	a, _ := e.CreateTask(models.ColumnTodo, TaskFields{Title: "A"})
	require.NoError(t, e.StartDrag(models.ColumnTodo, a.ID))

	err := e.StartDrag(models.ColumnDone, a.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)

	_, ok := e.DragState()
	assert.False(t, ok, "a failed start must not leave the stale drag armed")
}

func TestEngine_CancelDrag(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, database.NewMemoryStore())
	a, _ := e.CreateTask(models.ColumnTodo, TaskFields{Title: "A"})
	require.NoError(t, e.StartDrag(models.ColumnTodo, a.ID))

	assert.True(t, e.CancelDrag())
	assert.False(t, e.CancelDrag())

	_, col, _ := e.FindTask(a.ID)
	assert.Equal(t, models.ColumnTodo, col)
}

// ============================================================================
// Scenarios
// ============================================================================

func TestEngine_EndToEnd(t *testing.T) {
	t.Parallel()

	persist := database.NewMemoryStore()
	e := newTestEngine(t, persist)
	e.Load(context.Background())

	a, err := e.CreateTask(models.ColumnTodo, TaskFields{Title: "A"})
	require.NoError(t, err)
	b, err := e.CreateTask(models.ColumnTodo, TaskFields{Title: "B"})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)

	require.NoError(t, e.StartDrag(models.ColumnTodo, a.ID))
	_, err = e.ResolveDrag(models.ColumnDone)
	require.NoError(t, err)

	board := e.Snapshot()
	assert.Equal(t, []string{b.ID}, taskIDs(board, models.ColumnTodo))
	assert.Empty(t, taskIDs(board, models.ColumnInProgress))
	assert.Equal(t, []string{a.ID}, taskIDs(board, models.ColumnDone))
	assertUnique(t, board)

	e.Flush()
	assert.Equal(t, board, storedBoard(t, persist))
}

func TestEngine_ConcurrentOperations(t *testing.T) {
	t.Parallel()

	e := NewEngine(database.NewMemoryStore())
	t.Cleanup(func() { _ = e.Close() })

	columns := []string{models.ColumnTodo, models.ColumnInProgress, models.ColumnDone}
	var wg sync.WaitGroup
	for w := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 50 {
				task, err := e.CreateTask(columns[w%3], TaskFields{Title: "t"})
				if err != nil {
					t.Errorf("CreateTask failed: %v", err)
					return
				}
				_, _ = e.MoveTask(task.ID, columns[w%3], columns[(w+i)%3])
				_ = e.Snapshot()
			}
		}()
	}
	wg.Wait()
	e.Flush()

	board := e.Snapshot()
	assertUnique(t, board)
	assert.Equal(t, 400, board.TaskCount())
}
