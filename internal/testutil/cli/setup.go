package cli

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/thenoetrevino/taskflow/internal/app"
	"github.com/thenoetrevino/taskflow/internal/database"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/services/board"
)

// SetupCLITest creates an in-memory store and returns both the store and App instance.
// The app is closed when the test finishes.
func SetupCLITest(t *testing.T) (*database.MemoryStore, *app.App) {
	t.Helper()

	store := database.NewMemoryStore()
	appInstance, err := app.New(context.Background(), nil,
		app.WithStore(store),
		app.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}
	t.Cleanup(func() {
		_ = appInstance.Close()
	})

	return store, appInstance
}

// CreateTestTask creates a task directly through the engine and returns its ID
func CreateTestTask(t *testing.T, a *app.App, columnID, title string) string {
	t.Helper()

	task, err := a.Board.CreateTask(columnID, board.TaskFields{Title: title})
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	return task.ID
}

// CreateOverdueTask creates a task whose due date has already passed
func CreateOverdueTask(t *testing.T, a *app.App, columnID, title string) string {
	t.Helper()

	due := models.Date{Year: 2000, Month: 1, Day: 1}
	task, err := a.Board.CreateTask(columnID, board.TaskFields{Title: title, DueDate: &due})
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	return task.ID
}
