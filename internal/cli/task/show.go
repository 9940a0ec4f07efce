package task

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/services/board"
)

// descriptionWidth wraps descriptions in human output
const descriptionWidth = 76

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show task details",
		RunE:  runShow,
	}

	cmd.Flags().String("id", "", "Task ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	taskID, _ := cmd.Flags().GetString("id")

	return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		engine := c.App.Board

		task, columnID, ok := engine.FindTask(taskID)
		if !ok {
			return formatter.Fail(fmt.Errorf("%w: %s", board.ErrTaskNotFound, taskID),
				"List tasks with: taskflow task list")
		}

		view := cli.NewTaskView(task, columnID, task.Overdue(engine.Now()))
		return formatter.Success(view, func(w io.Writer) {
			fmt.Fprintf(w, "%s\n", task.Title)
			fmt.Fprintf(w, "  ID:       %s\n", task.ID)
			fmt.Fprintf(w, "  Column:   %s\n", columnID)
			fmt.Fprintf(w, "  Priority: %s\n", task.Priority)
			fmt.Fprintf(w, "  Assignee: %s\n", task.Assignee)
			if task.DueDate != nil {
				due := task.DueDate.String()
				if view.Overdue {
					due += " (overdue)"
				}
				fmt.Fprintf(w, "  Due:      %s\n", due)
			}
			if len(task.Tags) > 0 {
				fmt.Fprintf(w, "  Tags:     %s\n", strings.Join(task.Tags, ", "))
			}
			if task.Description != "" {
				fmt.Fprintf(w, "\n%s\n", indent.String(wordwrap.String(task.Description, descriptionWidth), 2))
			}
		})
	})
}
