package theme

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/config/colors"
)

// SetCmd returns the theme set subcommand
func SetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <name>",
		Short: "Change the color theme",
		Long: `Change the color theme. The choice is saved and restored on next start.

Examples:
  taskflow theme set midnight
  taskflow theme list
`,
		Args: cobra.ExactArgs(1),
		RunE: runSet,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runSet(cmd *cobra.Command, args []string) error {
	name := args[0]

	return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		if err := c.App.Theme.Set(cmd.Context(), name); err != nil {
			return formatter.Fail(err, "Available themes: "+strings.Join(colors.Names(), ", "))
		}

		preset := colors.GetPreset(name)
		view := themeView{
			Name:    preset.Preset,
			Display: preset.Name,
			Icon:    preset.Icon,
			Dark:    preset.Dark,
			Current: true,
		}
		return formatter.Success(view, func(w io.Writer) {
			fmt.Fprintf(w, "✓ Theme set to %s %s\n", view.Icon, view.Display)
		})
	})
}
