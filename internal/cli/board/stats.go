package board

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/cli"
	boardsvc "github.com/thenoetrevino/taskflow/internal/services/board"
)

// StatsCmd returns the board stats subcommand
func StatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show task counts and persistence statistics",
		RunE:  runStats,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

type columnCount struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Count int    `json:"count"`
}

type statsView struct {
	Columns     []columnCount         `json:"columns"`
	Total       int                   `json:"total"`
	Overdue     int                   `json:"overdue"`
	Persistence boardsvc.MetricsSnapshot `json:"persistence"`
}

func runStats(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		engine := c.App.Board
		now := engine.Now()

		stats := engine.Stats()
		view := statsView{
			Columns:     make([]columnCount, 0, len(stats.Columns)),
			Total:       stats.Total,
			Persistence: engine.Metrics(),
		}
		for _, col := range stats.Columns {
			view.Columns = append(view.Columns, columnCount{ID: col.ColumnID, Title: col.Title, Count: col.Count})
		}
		for _, col := range engine.Snapshot().Columns {
			for _, t := range col.Tasks {
				if t.Overdue(now) {
					view.Overdue++
				}
			}
		}

		if formatter.Quiet {
			fmt.Fprintln(formatter.Out, view.Total)
			return nil
		}

		return formatter.Success(view, func(w io.Writer) {
			for _, col := range view.Columns {
				fmt.Fprintf(w, "%-12s %d\n", col.Title, col.Count)
			}
			fmt.Fprintf(w, "%-12s %d\n", "Total", view.Total)
			fmt.Fprintf(w, "%-12s %d\n", "Overdue", view.Overdue)
		})
	})
}
