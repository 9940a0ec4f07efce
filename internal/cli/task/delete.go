package task

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/services/board"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a task",
		Long:  "Delete a task by ID (requires confirmation unless --force or --quiet).",
		RunE:  runDelete,
	}

	cmd.Flags().String("id", "", "Task ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)

	return cmd
}

// deleted is the result of a delete
type deleted struct {
	ID     string `json:"id"`
	Column string `json:"column"`
}

func (d deleted) GetID() string {
	return d.ID
}

func runDelete(cmd *cobra.Command, args []string) error {
	taskID, _ := cmd.Flags().GetString("id")
	force, _ := cmd.Flags().GetBool("force")

	return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		engine := c.App.Board

		task, columnID, ok := engine.FindTask(taskID)
		if !ok {
			return formatter.Fail(fmt.Errorf("%w: %s", board.ErrTaskNotFound, taskID),
				"List tasks with: taskflow task list")
		}

		// Ask for confirmation unless forced or in quiet/json mode
		if !force && !formatter.Quiet && !formatter.JSON {
			fmt.Fprintf(formatter.Out, "Delete task '%s' (%s)? [y/N]: ", task.Title, task.ID)
			answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			answer = strings.ToLower(strings.TrimSpace(answer))
			if answer != "y" && answer != "yes" {
				fmt.Fprintln(formatter.Out, "Cancelled")
				return nil
			}
		}

		if !engine.DeleteTask(columnID, taskID) {
			return formatter.Fail(fmt.Errorf("%w: %s", board.ErrTaskNotFound, taskID), "")
		}

		return formatter.Success(deleted{ID: taskID, Column: columnID}, func(w io.Writer) {
			fmt.Fprintf(w, "✓ Task %s deleted successfully\n", taskID)
		})
	})
}
