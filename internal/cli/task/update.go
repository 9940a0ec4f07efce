package task

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/services/board"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a task",
		Long: `Update a task's fields. Only the given flags change.

Examples:
  taskflow task update --id 01J... --title "New title"
  taskflow task update --id 01J... --priority high --due 2025-07-01
  taskflow task update --id 01J... --clear-due
  taskflow task update --id 01J... --tag ui --tag api
`,
		RunE: runUpdate,
	}

	cmd.Flags().String("id", "", "Task ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description (use - to read stdin)")
	cmd.Flags().String("priority", "", "New priority: low, medium, high")
	cmd.Flags().String("due", "", "New due date (YYYY-MM-DD)")
	cmd.Flags().Bool("clear-due", false, "Remove the due date")
	cmd.Flags().String("assignee", "", "New assignee")
	cmd.Flags().StringArray("tag", nil, "Replace tags (repeatable)")
	cmd.Flags().Bool("clear-tags", false, "Remove all tags")

	cmd.MarkFlagsMutuallyExclusive("due", "clear-due")
	cmd.MarkFlagsMutuallyExclusive("tag", "clear-tags")

	cli.AddOutputFlags(cmd)

	return cmd
}

// updateHints are shown when the value of the named flag cannot be used
var updateHints = map[string]string{
	"priority": "Use one of: low, medium, high",
	"due":      "Use the YYYY-MM-DD format",
}

// flagError ties a parse failure to the flag that caused it
type flagError struct {
	flag string
	err  error
}

func (e *flagError) Error() string { return e.err.Error() }
func (e *flagError) Unwrap() error { return e.err }

// patchFromFlags builds a patch from the flags the user actually set.
// Flags left at their defaults never reach the patch.
func patchFromFlags(flags *pflag.FlagSet, stdin io.Reader) (board.TaskPatch, error) {
	var patch board.TaskPatch
	var firstErr error
	fail := func(name string, err error) {
		if firstErr == nil {
			firstErr = &flagError{flag: name, err: err}
		}
	}

	flags.Visit(func(f *pflag.Flag) {
		value := f.Value.String()
		switch f.Name {
		case "title":
			patch.Title = &value
		case "description":
			description, err := cli.ReadDescription(value, stdin)
			if err != nil {
				fail(f.Name, cli.Exit(cli.ExitDataErr, err))
				return
			}
			patch.Description = &description
		case "priority":
			priority, err := models.ParsePriority(value)
			if err != nil {
				fail(f.Name, err)
				return
			}
			patch.Priority = &priority
		case "due":
			dueDate, err := cli.ParseDue(value)
			if err != nil {
				fail(f.Name, err)
				return
			}
			patch.DueDate = dueDate
		case "clear-due":
			patch.ClearDueDate, _ = flags.GetBool(f.Name)
		case "assignee":
			patch.Assignee = &value
		case "tag":
			tags, _ := flags.GetStringArray(f.Name)
			patch.Tags = &tags
		case "clear-tags":
			if cleared, _ := flags.GetBool(f.Name); cleared {
				empty := []string{}
				patch.Tags = &empty
			}
		}
	})

	return patch, firstErr
}

func runUpdate(cmd *cobra.Command, args []string) error {
	taskID, _ := cmd.Flags().GetString("id")

	return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		engine := c.App.Board

		_, columnID, ok := engine.FindTask(taskID)
		if !ok {
			return formatter.Fail(fmt.Errorf("%w: %s", board.ErrTaskNotFound, taskID),
				"List tasks with: taskflow task list")
		}

		patch, err := patchFromFlags(cmd.Flags(), cmd.InOrStdin())
		if err != nil {
			var fe *flagError
			hint := ""
			if errors.As(err, &fe) {
				hint = updateHints[fe.flag]
			}
			return formatter.Fail(err, hint)
		}

		if patch.IsEmpty() {
			return formatter.Fail(cli.Exit(cli.ExitUsage, fmt.Errorf("no fields to update")),
				"Pass at least one of --title, --description, --priority, --due, --clear-due, --assignee, --tag")
		}

		slog.Debug("updating task", "id", taskID)
		task, err := engine.UpdateTask(columnID, taskID, patch)
		if err != nil {
			return formatter.Fail(err, "")
		}

		view := cli.NewTaskView(task, columnID, task.Overdue(engine.Now()))
		return formatter.Success(view, func(w io.Writer) {
			fmt.Fprintf(w, "✓ Task %s updated successfully\n", task.ID)
		})
	})
}
