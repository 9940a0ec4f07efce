package task

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/services/board"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks on the board, grouped by column.

Examples:
  taskflow task list
  taskflow task list --column done
  taskflow task list --overdue --json
`,
		RunE: runList,
	}

	// Filters
	cmd.Flags().String("column", "", "Only list tasks in this column")
	cmd.Flags().String("assignee", "", "Only list tasks assigned to this person")
	cmd.Flags().String("tag", "", "Only list tasks carrying this tag")
	cmd.Flags().Bool("overdue", false, "Only list overdue tasks")

	cli.AddOutputFlags(cmd)

	return cmd
}

// taskList wraps the listing so quiet mode prints one id per line
type taskList []cli.TaskView

func runList(cmd *cobra.Command, args []string) error {
	column, _ := cmd.Flags().GetString("column")
	assignee, _ := cmd.Flags().GetString("assignee")
	tag, _ := cmd.Flags().GetString("tag")
	overdueOnly, _ := cmd.Flags().GetBool("overdue")

	return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		engine := c.App.Board
		snapshot := engine.Snapshot()
		now := engine.Now()

		columnID := ""
		if column != "" {
			id, err := cli.ResolveColumn(snapshot, column)
			if err != nil {
				return formatter.Fail(fmt.Errorf("%w: %s", board.ErrColumnNotFound, column),
					"Available columns: "+cli.ColumnList(snapshot))
			}
			columnID = id
		}

		tasks := taskList{}
		for _, col := range snapshot.Columns {
			if columnID != "" && col.ID != columnID {
				continue
			}
			for _, t := range col.Tasks {
				overdue := t.Overdue(now)
				if overdueOnly && !overdue {
					continue
				}
				if assignee != "" && t.Assignee != assignee {
					continue
				}
				if tag != "" && !t.HasTag(tag) {
					continue
				}
				tasks = append(tasks, cli.NewTaskView(t, col.ID, overdue))
			}
		}

		if formatter.Quiet {
			for _, t := range tasks {
				fmt.Fprintln(formatter.Out, t.ID)
			}
			return nil
		}

		return formatter.Success(tasks, func(w io.Writer) {
			if len(tasks) == 0 {
				fmt.Fprintln(w, "No tasks found")
				return
			}
			fmt.Fprintf(w, "Found %d tasks:\n\n", len(tasks))
			for _, t := range tasks {
				marker := ""
				if t.Overdue {
					marker = " (overdue)"
				}
				fmt.Fprintf(w, "  [%s] %s - %s [%s]%s\n", t.Column, t.ID, t.Title, t.Priority, marker)
			}
		})
	})
}
