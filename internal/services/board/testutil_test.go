package board

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/thenoetrevino/taskflow/internal/database"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

var testNow = time.Date(2025, time.June, 10, 9, 30, 0, 0, time.UTC)

// fixedClock returns a clock that advances one second per call
func fixedClock() func() time.Time {
	var mu sync.Mutex
	t := testNow
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Second)
		return t
	}
}

// sequentialIDs returns a generator producing task-1, task-2, ...
func sequentialIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("task-%d", n)
	}
}

func newTestStore(t *testing.T) *TaskStore {
	t.Helper()
	return NewTaskStore(WithClock(fixedClock()), WithIDGenerator(sequentialIDs()), WithDefaultAssignee("Dana"))
}

// mustCreate creates a task or fails the test
func mustCreate(t *testing.T, s *TaskStore, columnID, title string) models.Task {
	t.Helper()
	task, err := s.CreateTask(columnID, TaskFields{Title: title})
	if err != nil {
		t.Fatalf("CreateTask(%q, %q) failed: %v", columnID, title, err)
	}
	return task
}

// taskIDs returns the ids of a column's tasks in order
func taskIDs(b *models.Board, columnID string) []string {
	col, ok := b.Column(columnID)
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(col.Tasks))
	for _, task := range col.Tasks {
		ids = append(ids, task.ID)
	}
	return ids
}

// assertUnique fails if any task id appears more than once on the board
func assertUnique(t *testing.T, b *models.Board) {
	t.Helper()
	seen := make(map[string]string)
	for _, col := range b.Columns {
		for _, task := range col.Tasks {
			if prev, dup := seen[task.ID]; dup {
				t.Fatalf("Task %s appears in both %s and %s", task.ID, prev, col.ID)
			}
			seen[task.ID] = col.ID
		}
	}
}

// failingStore is a database.Store whose operations fail on demand
type failingStore struct {
	mu      sync.Mutex
	values  map[string]string
	getErr  error
	setErr  error
	setCall int
}

func newFailingStore() *failingStore {
	return &failingStore{values: make(map[string]string)}
}

func (f *failingStore) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return "", f.getErr
	}
	v, ok := f.values[key]
	if !ok {
		return "", database.ErrNotFound
	}
	return v, nil
}

func (f *failingStore) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setCall++
	if f.setErr != nil {
		return f.setErr
	}
	f.values[key] = value
	return nil
}

// gatedStore blocks its first Set until released so tests can queue
// snapshots behind an in-flight write
type gatedStore struct {
	mu      sync.Mutex
	writes  []string
	started chan struct{}
	release chan struct{}
	gated   bool
}

func newGatedStore() *gatedStore {
	return &gatedStore{
		started: make(chan struct{}),
		release: make(chan struct{}),
		gated:   true,
	}
}

func (g *gatedStore) Get(context.Context, string) (string, error) {
	return "", errors.New("not supported")
}

func (g *gatedStore) Set(_ context.Context, _ string, value string) error {
	g.mu.Lock()
	first := g.gated
	g.gated = false
	g.mu.Unlock()

	if first {
		close(g.started)
		<-g.release
	}

	g.mu.Lock()
	g.writes = append(g.writes, value)
	g.mu.Unlock()
	return nil
}

func (g *gatedStore) Writes() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.writes...)
}
