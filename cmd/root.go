package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/cli/board"
	"github.com/thenoetrevino/taskflow/internal/cli/column"
	"github.com/thenoetrevino/taskflow/internal/cli/setup"
	"github.com/thenoetrevino/taskflow/internal/cli/task"
	"github.com/thenoetrevino/taskflow/internal/cli/theme"
	"github.com/thenoetrevino/taskflow/internal/config"
	"github.com/thenoetrevino/taskflow/internal/database"
	"github.com/thenoetrevino/taskflow/internal/launcher"
	"github.com/thenoetrevino/taskflow/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "taskflow",
	Short: "taskflow - A terminal-based kanban board",
	Long: `taskflow is a terminal-based kanban board.

Run without a subcommand to open the board. Every subcommand accepts
--json and --quiet for scripting.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE:              runTUI,
}

func init() {
	rootCmd.PersistentFlags().Bool("ephemeral", false, "Keep the board in memory only; nothing is saved")

	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(column.ColumnCmd())
	rootCmd.AddCommand(theme.ThemeCmd())
	rootCmd.AddCommand(setup.SetupCmd())
}

// loadConfig reads the configuration once, starts file logging and hands the
// config to subcommands through the context
func loadConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if ephemeral, _ := cmd.Flags().GetBool("ephemeral"); ephemeral {
		cfg.DBPath = database.MemoryDSN
	}

	if err := logging.Init(cfg.LogLevel); err != nil {
		// Logging is best effort; keep going on stderr
		slog.Warn("failed to initialize file logging", "error", err)
	}

	cmd.SetContext(cli.WithConfig(cmd.Context(), cfg))
	return nil
}

// runTUI opens the board with the configuration loaded in loadConfig
func runTUI(cmd *cobra.Command, args []string) error {
	cfg, ok := cli.ConfigFromContext(cmd.Context())
	if !ok {
		cfg = config.Default()
	}
	return launcher.Launch(cmd.Context(), cfg)
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	defer func() {
		_ = logging.Close()
	}()

	err := rootCmd.Execute()
	if err == nil {
		return cli.ExitSuccess
	}

	code := cli.ExitCode(err)
	var exitErr *cli.CodeError
	if !errors.As(err, &exitErr) {
		// Not yet reported by a formatter, e.g. an unknown flag
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		if code == cli.ExitError {
			code = cli.ExitUsage
		}
	}
	return code
}
