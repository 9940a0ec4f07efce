package setup

import (
	"github.com/spf13/cobra"
)

// SetupCmd returns the setup command
func SetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Setup taskflow on this machine",
		Long:  `Write a starter configuration file you can edit.`,
	}

	cmd.AddCommand(ConfigCmd())

	return cmd
}
