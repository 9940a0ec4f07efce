package task

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/services/board"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		Long: `Create a new task on the board.

Examples:
  # Simple task in To Do
  taskflow task create --title "Fix bug"

  # With all options
  taskflow task create \
    --title "Implement auth" \
    --column inProgress \
    --priority high \
    --due 2025-06-30 \
    --assignee "Alice Chen" \
    --tag backend --tag auth

  # Description from stdin
  echo "Details here" | taskflow task create --title "Task" --description -

  # Quiet mode for bash capture
  TASK_ID=$(taskflow task create --title "Test" --quiet)
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("title", "", "Task title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	// Optional flags
	cmd.Flags().String("column", models.ColumnTodo, "Column id or title")
	cmd.Flags().String("description", "", "Task description (use - to read stdin)")
	cmd.Flags().String("priority", "", "Priority: low, medium, high (default medium)")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().String("assignee", "", "Assignee name (default from config)")
	cmd.Flags().StringArray("tag", nil, "Tag (repeatable)")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	column, _ := cmd.Flags().GetString("column")
	description, _ := cmd.Flags().GetString("description")
	priorityStr, _ := cmd.Flags().GetString("priority")
	due, _ := cmd.Flags().GetString("due")
	assignee, _ := cmd.Flags().GetString("assignee")
	tags, _ := cmd.Flags().GetStringArray("tag")

	return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		engine := c.App.Board

		columnID, err := cli.ResolveColumn(engine.Snapshot(), column)
		if err != nil {
			return formatter.Fail(fmt.Errorf("%w: %s", board.ErrColumnNotFound, column),
				"Available columns: "+cli.ColumnList(engine.Snapshot()))
		}

		priority, err := models.ParsePriority(priorityStr)
		if err != nil {
			return formatter.Fail(err, "Use one of: low, medium, high")
		}

		dueDate, err := cli.ParseDue(due)
		if err != nil {
			return formatter.Fail(err, "Use the YYYY-MM-DD format")
		}

		description, err = cli.ReadDescription(description, cmd.InOrStdin())
		if err != nil {
			return formatter.Fail(cli.Exit(cli.ExitDataErr, err), "")
		}

		task, err := engine.CreateTask(columnID, board.TaskFields{
			Title:       title,
			Description: description,
			Priority:    priority,
			DueDate:     dueDate,
			Assignee:    assignee,
			Tags:        tags,
		})
		if err != nil {
			return formatter.Fail(err, "")
		}

		view := cli.NewTaskView(task, columnID, task.Overdue(engine.Now()))
		return formatter.Success(view, func(w io.Writer) {
			fmt.Fprintf(w, "✓ Task '%s' created successfully (ID: %s)\n", task.Title, task.ID)
			fmt.Fprintf(w, "  Column: %s\n", columnID)
			fmt.Fprintf(w, "  Priority: %s\n", task.Priority)
			fmt.Fprintf(w, "  Assignee: %s\n", task.Assignee)
		})
	})
}
