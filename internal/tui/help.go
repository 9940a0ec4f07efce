package tui

import (
	"strings"

	"charm.land/bubbles/v2/help"
	"github.com/thenoetrevino/taskflow/internal/tui/components"
)

// viewHelp renders the key binding reference
func (m Model) viewHelp(width int) string {
	h := help.New()
	h.ShowAll = true
	h.SetWidth(width - 4)

	var b strings.Builder
	b.WriteString(components.TitleStyle.Render("Keyboard shortcuts"))
	b.WriteString("\n\n")
	b.WriteString(h.View(m.keymap))
	b.WriteString("\n\n")
	b.WriteString(components.SubtleStyle.Render("press any key to close"))

	return components.HelpBoxStyle.Render(b.String())
}
