package setup

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/config"
)

// ConfigCmd returns the setup config subcommand
func ConfigCmd() *cobra.Command {
	var checkFlag bool
	var forceFlag bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Write the default configuration file",
		Long: `Write the default configuration (columns, collaborators, key bindings)
to $XDG_CONFIG_HOME/taskflow/config.yaml.

Examples:
  # Write the file unless it exists
  taskflow setup config

  # Show where the file lives and whether it exists
  taskflow setup config --check

  # Overwrite an existing file
  taskflow setup config --force
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}

			exists, err := fileExists(path)
			if err != nil {
				return err
			}

			if checkFlag {
				if exists {
					fmt.Fprintf(cmd.OutOrStdout(), "✓ Config found at %s\n", path)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "✗ No config at %s\n", path)
				}
				return nil
			}

			if exists && !forceFlag {
				fmt.Fprintf(cmd.OutOrStdout(), "Config already exists at %s (use --force to overwrite)\n", path)
				return nil
			}

			if err := config.Default().Save(); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&checkFlag, "check", false, "Check whether a config file exists")
	cmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite an existing config file")

	return cmd
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}
