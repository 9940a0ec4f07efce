package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskflow/internal/tui/theme"
)

// StatusBarProps holds the status bar text
type StatusBarProps struct {
	Width int
	Left  string // Mode-specific hint; defaults to the app name
	Right string // Defaults to the help hint
}

// RenderStatusBar renders a status bar with left and right aligned text
func RenderStatusBar(props StatusBarProps) string {
	leftText := props.Left
	if leftText == "" {
		leftText = "taskflow - kanban board"
	}
	rightText := props.Right
	if rightText == "" {
		rightText = "press ? for help"
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	leftRendered := style.Render(leftText)
	rightRendered := style.Render(rightText)

	// Calculate space between left and right text
	gapWidth := max(props.Width-lipgloss.Width(leftRendered)-lipgloss.Width(rightRendered), 1)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, strings.Repeat(" ", gapWidth), rightRendered)
}
