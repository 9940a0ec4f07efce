package theme

import (
	"github.com/spf13/cobra"
)

// ThemeCmd returns the theme parent command
func ThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the color theme",
	}

	cmd.AddCommand(GetCmd())
	cmd.AddCommand(SetCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(CycleCmd())

	return cmd
}

// themeView is the CLI representation of a theme
type themeView struct {
	Name    string `json:"name"`
	Display string `json:"display"`
	Icon    string `json:"icon"`
	Dark    bool   `json:"dark"`
	Current bool   `json:"current"`
}

func (v themeView) GetID() string {
	return v.Name
}
