package theme

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/config/colors"
)

// CycleCmd returns the theme cycle subcommand
func CycleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cycle",
		Short: "Switch to the next theme",
		RunE:  runCycle,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runCycle(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		name, err := c.App.Theme.Cycle(cmd.Context())
		if err != nil {
			return formatter.Fail(err, "")
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
