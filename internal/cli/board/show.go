package board

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/cli/styles"
)

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show every column and its tasks",
		RunE:  runShow,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

// columnView is the CLI representation of a column
type columnView struct {
	ID    string         `json:"id"`
	Title string         `json:"title"`
	Color string         `json:"color"`
	Tasks []cli.TaskView `json:"tasks"`
}

// boardView wraps the columns so quiet mode prints task ids
type boardView struct {
	Columns []columnView `json:"columns"`
}

func runShow(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		engine := c.App.Board
		snapshot := engine.Snapshot()
		now := engine.Now()
		styles.Init(c.App.Theme.Palette())

		view := boardView{Columns: make([]columnView, 0, len(snapshot.Columns))}
		for _, col := range snapshot.Columns {
			cv := columnView{ID: col.ID, Title: col.Title, Color: col.Color, Tasks: []cli.TaskView{}}
			for _, t := range col.Tasks {
				cv.Tasks = append(cv.Tasks, cli.NewTaskView(t, col.ID, t.Overdue(now)))
			}
			view.Columns = append(view.Columns, cv)
		}

		if formatter.Quiet {
			for _, col := range view.Columns {
				for _, t := range col.Tasks {
					fmt.Fprintln(formatter.Out, t.ID)
				}
			}
			return nil
		}

		return formatter.Success(view, func(w io.Writer) {
			var b strings.Builder
			for i, col := range snapshot.Columns {
				if i > 0 {
					b.WriteString("\n")
				}
				b.WriteString(styles.RenderColumnHeader(col))
				b.WriteString("\n")
				if len(col.Tasks) == 0 {
					b.WriteString(styles.SubtitleStyle.Render("  No tasks"))
					b.WriteString("\n")
					continue
				}
				for _, t := range col.Tasks {
					b.WriteString("  ")
					b.WriteString(styles.RenderTaskLine(t, t.Overdue(now)))
					b.WriteString("\n")
				}
			}
			// Downsamples colors to what w supports
			_, _ = lipgloss.Fprintln(w, styles.RenderCard(strings.TrimRight(b.String(), "\n")))
		})
	})
}
