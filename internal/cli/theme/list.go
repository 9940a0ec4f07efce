package theme

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/cli"
)

// ListCmd returns the theme list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available themes",
		RunE:  runList,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		current := c.App.Theme.Current()

		themes := []themeView{}
		for _, p := range c.App.Theme.List() {
			themes = append(themes, themeView{
				Name:    p.Preset,
				Display: p.Name,
				Icon:    p.Icon,
				Dark:    p.Dark,
				Current: p.Preset == current,
			})
		}

		if formatter.Quiet {
			for _, t := range themes {
				fmt.Fprintln(formatter.Out, t.Name)
			}
			return nil
		}

		return formatter.Success(themes, func(w io.Writer) {
			for _, t := range themes {
				marker := " "
				if t.Current {
					marker = "*"
				}
				fmt.Fprintf(w, "%s %s %-10s %s\n", marker, t.Icon, t.Name, t.Display)
			}
		})
	})
}
