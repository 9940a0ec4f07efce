package column

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/cli/styles"
)

// ListCmd returns the column list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List columns in display order",
		RunE:  runList,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

type columnView struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Color string `json:"color"`
	Count int    `json:"count"`
}

func (v columnView) GetID() string {
	return v.ID
}

func runList(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		columns := []columnView{}
		for _, col := range c.App.Board.Snapshot().Columns {
			columns = append(columns, columnView{ID: col.ID, Title: col.Title, Color: col.Color, Count: len(col.Tasks)})
		}

		if formatter.Quiet {
			for _, col := range columns {
				fmt.Fprintln(formatter.Out, col.ID)
			}
			return nil
		}

		return formatter.Success(columns, func(w io.Writer) {
			fmt.Fprintf(w, "Found %d columns:\n\n", len(columns))
			for _, col := range columns {
				_, _ = lipgloss.Fprintf(w, "  %s %s (%d tasks)\n",
					styles.ColoredText("●", col.Color), col.Title, col.Count)
				fmt.Fprintf(w, "    id: %s\n", col.ID)
			}
		})
	})
}
