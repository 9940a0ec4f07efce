package task

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/services/board"
	clitest "github.com/thenoetrevino/taskflow/internal/testutil/cli"
)

// ============================================================================
// Create
// ============================================================================

func TestCreateTask_Positive(t *testing.T) {
	t.Parallel()

	t.Run("Create task with title only", func(t *testing.T) {
		_, app := clitest.SetupCLITest(t)

		output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(),
			[]string{"--title", "Simple Task", "--quiet"})
		require.NoError(t, err)

		taskID := strings.TrimSpace(output)
		task, column, ok := app.Board.FindTask(taskID)
		require.True(t, ok, "created task should exist")
		assert.Equal(t, models.ColumnTodo, column)
		assert.Equal(t, "Simple Task", task.Title)
		assert.Equal(t, models.PriorityMedium, task.Priority)
		assert.Equal(t, app.Config.DefaultAssignee, task.Assignee)
	})

	t.Run("Create task with all fields", func(t *testing.T) {
		_, app := clitest.SetupCLITest(t)

		output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--title", "Detailed Task",
			"--description", "This is a detailed description",
			"--priority", "high",
			"--column", "In Progress",
			"--due", "2030-01-15",
			"--assignee", "Alice Chen",
			"--tag", "backend", "--tag", "backend", "--tag", "auth",
			"--json",
		})
		require.NoError(t, err)

		data := clitest.JSONData(t, output)
		assert.Equal(t, "Detailed Task", data["title"])
		assert.Equal(t, "high", data["priority"])
		assert.Equal(t, models.ColumnInProgress, data["column"])
		assert.Equal(t, "2030-01-15", data["dueDate"])
		assert.Equal(t, "Alice Chen", data["assignee"])
		assert.ElementsMatch(t, []any{"backend", "auth"}, data["tags"])
		assert.Equal(t, false, data["overdue"])
	})

	t.Run("Description from stdin", func(t *testing.T) {
		_, app := clitest.SetupCLITest(t)

		output, err := clitest.ExecuteCLICommandWithInput(t, app, CreateCmd(),
			[]string{"--title", "Piped", "--description", "-", "--quiet"},
			strings.NewReader("from stdin\n"))
		require.NoError(t, err)

		task, _, ok := app.Board.FindTask(strings.TrimSpace(output))
		require.True(t, ok)
		assert.Equal(t, "from stdin", task.Description)
	})

	t.Run("Create persists the board", func(t *testing.T) {
		store, app := clitest.SetupCLITest(t)

		_, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{"--title", "Saved", "--quiet"})
		require.NoError(t, err)

		raw, err := store.Get(context.Background(), models.BoardKey)
		require.NoError(t, err)
		assert.Contains(t, raw, "Saved")
	})
}

func TestCreateTask_Negative(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{"blank title", []string{"--title", "   "}, cli.ExitValidation, "EMPTY_TITLE"},
		{"invalid priority", []string{"--title", "x", "--priority", "urgent"}, cli.ExitValidation, "INVALID_PRIORITY"},
		{"invalid due date", []string{"--title", "x", "--due", "tomorrow"}, cli.ExitValidation, "INVALID_DATE"},
		{"unknown column", []string{"--title", "x", "--column", "archive"}, cli.ExitNotFound, "COLUMN_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, app := clitest.SetupCLITest(t)

			output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), append(tt.args, "--json"))
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, cli.ExitCode(err))

			result := clitest.ParseJSON(t, output)
			assert.Equal(t, false, result["success"])
			errData := result["error"].(map[string]any)
			assert.Equal(t, tt.wantErr, errData["code"])
			assert.Equal(t, 0, app.Board.Stats().Total, "nothing should be created")
		})
	}
}

func TestCreateTask_MissingTitleFlag(t *testing.T) {
	t.Parallel()
	_, app := clitest.SetupCLITest(t)

	_, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{"--priority", "high"})
	assert.Error(t, err)
}

// ============================================================================
// List / Show
// ============================================================================

func TestListTasks(t *testing.T) {
	t.Parallel()
	_, app := clitest.SetupCLITest(t)

	first := clitest.CreateTestTask(t, app, models.ColumnTodo, "First")
	late := clitest.CreateOverdueTask(t, app, models.ColumnTodo, "Late")
	done := clitest.CreateTestTask(t, app, models.ColumnDone, "Finished")

	t.Run("all tasks in board order", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})
		require.NoError(t, err)
		assert.Equal(t, []string{first, late, done}, strings.Fields(output))
	})

	t.Run("filter by column title", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--column", "done", "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, []string{done}, strings.Fields(output))
	})

	t.Run("overdue only", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--overdue", "--json"})
		require.NoError(t, err)

		result := clitest.ParseJSON(t, output)
		tasks := result["data"].([]any)
		require.Len(t, tasks, 1)
		assert.Equal(t, late, tasks[0].(map[string]any)["id"])
		assert.Equal(t, true, tasks[0].(map[string]any)["overdue"])
	})

	t.Run("human output", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{})
		require.NoError(t, err)
		assert.Contains(t, output, "Found 3 tasks")
		assert.Contains(t, output, "(overdue)")
	})
}

func TestListTasks_Empty(t *testing.T) {
	t.Parallel()
	_, app := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--json"})
	require.NoError(t, err)

	result := clitest.ParseJSON(t, output)
	assert.Equal(t, []any{}, result["data"])
}

func TestShowTask(t *testing.T) {
	t.Parallel()
	_, app := clitest.SetupCLITest(t)
	id := clitest.CreateTestTask(t, app, models.ColumnInProgress, "Visible")

	output, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{"--id", id})
	require.NoError(t, err)
	assert.Contains(t, output, "Visible")
	assert.Contains(t, output, models.ColumnInProgress)

	_, err = clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{"--id", "missing", "--json"})
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}

func TestShowTask_WrapsDescription(t *testing.T) {
	t.Parallel()
	_, app := clitest.SetupCLITest(t)
	long := strings.TrimSpace(strings.Repeat("word ", 40))
	task, err := app.Board.CreateTask(models.ColumnTodo, board.TaskFields{Title: "Long", Description: long})
	require.NoError(t, err)

	output, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{"--id", task.ID})
	require.NoError(t, err)

	for _, line := range strings.Split(output, "\n") {
		if strings.Contains(line, "word") {
			assert.True(t, strings.HasPrefix(line, "  "), "description lines are indented: %q", line)
			assert.LessOrEqual(t, len(line), descriptionWidth+2)
		}
	}
}

// ============================================================================
// Update
// ============================================================================

func TestUpdateTask(t *testing.T) {
	t.Parallel()
	_, app := clitest.SetupCLITest(t)

	due := models.Date{Year: 2030, Month: 3, Day: 1}
	created, err := app.Board.CreateTask(models.ColumnTodo, board.TaskFields{
		Title: "Original", DueDate: &due, Tags: []string{"a"},
	})
	require.NoError(t, err)

	t.Run("only changed flags apply", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, UpdateCmd(),
			[]string{"--id", created.ID, "--title", "Renamed", "--priority", "low", "--quiet"})
		require.NoError(t, err)

		task, _, _ := app.Board.FindTask(created.ID)
		assert.Equal(t, "Renamed", task.Title)
		assert.Equal(t, models.PriorityLow, task.Priority)
		require.NotNil(t, task.DueDate)
		assert.Equal(t, due, *task.DueDate)
		assert.Equal(t, []string{"a"}, task.Tags)
	})

	t.Run("clear due date and tags", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, UpdateCmd(),
			[]string{"--id", created.ID, "--clear-due", "--clear-tags", "--quiet"})
		require.NoError(t, err)

		task, _, _ := app.Board.FindTask(created.ID)
		assert.Nil(t, task.DueDate)
		assert.Empty(t, task.Tags)
	})

	t.Run("no fields is a usage error", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, UpdateCmd(), []string{"--id", created.ID})
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})

	t.Run("blank title is rejected and nothing changes", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, UpdateCmd(),
			[]string{"--id", created.ID, "--title", " ", "--json"})
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))

		task, _, _ := app.Board.FindTask(created.ID)
		assert.Equal(t, "Renamed", task.Title)
	})

	t.Run("unknown task", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, UpdateCmd(),
			[]string{"--id", "nope", "--title", "x", "--json"})
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})

	t.Run("tag and clear-tags together are refused", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, UpdateCmd(),
			[]string{"--id", created.ID, "--tag", "x", "--clear-tags"})
		assert.Error(t, err)
	})
}

func TestPatchFromFlags(t *testing.T) {
	t.Parallel()

	t.Run("only set flags reach the patch", func(t *testing.T) {
		cmd := UpdateCmd()
		require.NoError(t, cmd.ParseFlags([]string{"--id", "x", "--title", "t", "--tag", "a", "--tag", "b", "--json"}))

		patch, err := patchFromFlags(cmd.Flags(), strings.NewReader(""))
		require.NoError(t, err)
		require.NotNil(t, patch.Title)
		assert.Equal(t, "t", *patch.Title)
		require.NotNil(t, patch.Tags)
		assert.Equal(t, []string{"a", "b"}, *patch.Tags)
		assert.Nil(t, patch.Description)
		assert.Nil(t, patch.Priority)
		assert.Nil(t, patch.Assignee)
		assert.Nil(t, patch.DueDate)
		assert.False(t, patch.ClearDueDate)
	})

	t.Run("empty value is still a change", func(t *testing.T) {
		cmd := UpdateCmd()
		require.NoError(t, cmd.ParseFlags([]string{"--id", "x", "--assignee", ""}))

		patch, err := patchFromFlags(cmd.Flags(), strings.NewReader(""))
		require.NoError(t, err)
		require.NotNil(t, patch.Assignee)
		assert.Equal(t, "", *patch.Assignee)
	})

	t.Run("description from stdin and due date", func(t *testing.T) {
		cmd := UpdateCmd()
		require.NoError(t, cmd.ParseFlags([]string{"--id", "x", "--description", "-", "--due", "2030-01-02"}))

		patch, err := patchFromFlags(cmd.Flags(), strings.NewReader("from stdin\n"))
		require.NoError(t, err)
		require.NotNil(t, patch.Description)
		assert.Equal(t, "from stdin", strings.TrimSpace(*patch.Description))
		require.NotNil(t, patch.DueDate)
		assert.Equal(t, models.Date{Year: 2030, Month: 1, Day: 2}, *patch.DueDate)
	})

	t.Run("bad value names its flag", func(t *testing.T) {
		cmd := UpdateCmd()
		require.NoError(t, cmd.ParseFlags([]string{"--id", "x", "--priority", "urgent"}))

		_, err := patchFromFlags(cmd.Flags(), strings.NewReader(""))
		require.Error(t, err)
		var fe *flagError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "priority", fe.flag)
		assert.ErrorIs(t, err, models.ErrInvalidPriority)
	})
}

// ============================================================================
// Delete
// ============================================================================

func TestDeleteTask(t *testing.T) {
	t.Parallel()

	t.Run("force deletes", func(t *testing.T) {
		_, app := clitest.SetupCLITest(t)
		id := clitest.CreateTestTask(t, app, models.ColumnTodo, "Doomed")

		output, err := clitest.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", id, "--force"})
		require.NoError(t, err)
		assert.Contains(t, output, "deleted successfully")

		_, _, ok := app.Board.FindTask(id)
		assert.False(t, ok)
	})

	t.Run("declined confirmation keeps task", func(t *testing.T) {
		_, app := clitest.SetupCLITest(t)
		id := clitest.CreateTestTask(t, app, models.ColumnTodo, "Kept")

		output, err := clitest.ExecuteCLICommandWithInput(t, app, DeleteCmd(),
			[]string{"--id", id}, strings.NewReader("n\n"))
		require.NoError(t, err)
		assert.Contains(t, output, "Cancelled")

		_, _, ok := app.Board.FindTask(id)
		assert.True(t, ok)
	})

	t.Run("confirmed with yes", func(t *testing.T) {
		_, app := clitest.SetupCLITest(t)
		id := clitest.CreateTestTask(t, app, models.ColumnTodo, "Gone")

		_, err := clitest.ExecuteCLICommandWithInput(t, app, DeleteCmd(),
			[]string{"--id", id}, strings.NewReader("yes\n"))
		require.NoError(t, err)

		_, _, ok := app.Board.FindTask(id)
		assert.False(t, ok)
	})

	t.Run("unknown task", func(t *testing.T) {
		_, app := clitest.SetupCLITest(t)

		_, err := clitest.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", "ghost", "--quiet"})
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})
}

// ============================================================================
// Move
// ============================================================================

func TestMoveTask(t *testing.T) {
	t.Parallel()
	_, app := clitest.SetupCLITest(t)
	id := clitest.CreateTestTask(t, app, models.ColumnTodo, "Traveller")

	t.Run("next", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, MoveCmd(), []string{"--id", id, "next", "--json"})
		require.NoError(t, err)

		data := clitest.JSONData(t, output)
		assert.Equal(t, models.ColumnInProgress, data["column"])
		assert.NotEmpty(t, data["movedAt"])
	})

	t.Run("by title", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, MoveCmd(), []string{"--id", id, "Done", "--quiet"})
		require.NoError(t, err)

		_, column, _ := app.Board.FindTask(id)
		assert.Equal(t, models.ColumnDone, column)
	})

	t.Run("next from last column", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, MoveCmd(), []string{"--id", id, "next", "--json"})
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	})

	t.Run("same column", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, MoveCmd(), []string{"--id", id, "done", "--json"})
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))

		errData := clitest.ParseJSON(t, output)["error"].(map[string]any)
		assert.Equal(t, "ALREADY_IN_COLUMN", errData["code"])
	})

	t.Run("unknown column", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, MoveCmd(), []string{"--id", id, "archive", "--json"})
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})

	t.Run("prev", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, MoveCmd(), []string{"--id", id, "prev", "--quiet"})
		require.NoError(t, err)

		_, column, _ := app.Board.FindTask(id)
		assert.Equal(t, models.ColumnInProgress, column)
	})
}
