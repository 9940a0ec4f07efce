package task

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/services/board"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <next|prev|column>",
		Short: "Move a task to another column",
		Long: `Move a task to another column by direction or column name.

Examples:
  # Move to next column
  taskflow task move --id 01J... next

  # Move to previous column
  taskflow task move --id 01J... prev

  # Move to specific column by id or title (case-insensitive)
  taskflow task move --id 01J... "In Progress"
  taskflow task move --id 01J... done
`,
		RunE: runMove,
		Args: cobra.ExactArgs(1),
	}

	cmd.Flags().String("id", "", "Task ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

// moveTarget resolves next/prev or a column name relative to the current column
func moveTarget(b *models.Board, currentColumnID, target string) (string, error) {
	idx := -1
	for i, c := range b.Columns {
		if c.ID == currentColumnID {
			idx = i
			break
		}
	}

	switch target {
	case "next":
		if idx+1 >= len(b.Columns) {
			return "", fmt.Errorf("task is already in the last column")
		}
		return b.Columns[idx+1].ID, nil
	case "prev":
		if idx <= 0 {
			return "", fmt.Errorf("task is already in the first column")
		}
		return b.Columns[idx-1].ID, nil
	default:
		id, err := cli.ResolveColumn(b, target)
		if err != nil {
			return "", fmt.Errorf("%w: %s", board.ErrColumnNotFound, target)
		}
		return id, nil
	}
}

func runMove(cmd *cobra.Command, args []string) error {
	taskID, _ := cmd.Flags().GetString("id")
	target := args[0]

	return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		engine := c.App.Board
		snapshot := engine.Snapshot()

		_, fromColumnID, ok := engine.FindTask(taskID)
		if !ok {
			return formatter.Fail(fmt.Errorf("%w: %s", board.ErrTaskNotFound, taskID),
				"List tasks with: taskflow task list")
		}

		toColumnID, err := moveTarget(snapshot, fromColumnID, target)
		if err != nil {
			if !errors.Is(err, board.ErrColumnNotFound) {
				err = cli.Exit(cli.ExitValidation, err)
			}
			return formatter.Fail(err, "Available columns: "+cli.ColumnList(snapshot))
		}

		task, err := engine.MoveTask(taskID, fromColumnID, toColumnID)
		if err != nil {
			return formatter.Fail(err, "")
		}

		view := cli.NewTaskView(task, toColumnID, task.Overdue(engine.Now()))
		return formatter.Success(view, func(w io.Writer) {
			fmt.Fprintf(w, "✓ Task %s moved from %s to %s\n", task.ID, fromColumnID, toColumnID)
		})
	})
}
