package theme

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/config/colors"
)

// GetCmd returns the theme get subcommand
func GetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show the active theme",
		RunE:  runGet,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runGet(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		preset := colors.GetPreset(c.App.Theme.Current())
		view := themeView{
			Name:    preset.Preset,
			Display: preset.Name,
			Icon:    preset.Icon,
			Dark:    preset.Dark,
			Current: true,
		}
		return formatter.Success(view, func(w io.Writer) {
			fmt.Fprintf(w, "%s %s (%s)\n", view.Icon, view.Display, view.Name)
		})
	})
}
