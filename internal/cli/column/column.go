package column

import (
	"github.com/spf13/cobra"
)

// ColumnCmd returns the column parent command.
// Columns are fixed by configuration, so only listing is offered.
func ColumnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "column",
		Short: "Inspect board columns",
	}

	cmd.AddCommand(ListCmd())

	return cmd
}
