package task

import "github.com/spf13/cobra"

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Create, inspect and move tasks",
		Long: `Create, inspect and move tasks on the board.

Tasks are addressed by id; the column is looked up automatically.
Pass --json for a {"success": ..., "data": ...} envelope or --quiet for ids only.`,
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(MoveCmd())

	return cmd
}
