// Package notifications renders the inline notification strip under the header
package notifications

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskflow/internal/tui/state"
	"github.com/thenoetrevino/taskflow/internal/tui/theme"
)

// badge returns the icon and theme colors for a level
func badge(level state.NotificationLevel) (icon, fg, bg string) {
	switch level {
	case state.LevelWarning:
		return "⚠", theme.WarningFg, theme.WarningBg
	case state.LevelError:
		return "✕", theme.ErrorFg, theme.ErrorBg
	default:
		return "🔔", theme.InfoFg, theme.InfoBg
	}
}

// Render renders one notification as a single colored line
func Render(n state.Notification) string {
	icon, fg, bg := badge(n.Level)
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Padding(0, 1).
		Render(icon + " " + n.Message)
}

// RenderAll renders notifications side by side, oldest first
func RenderAll(ns []state.Notification) string {
	parts := make([]string, 0, len(ns))
	for _, n := range ns {
		parts = append(parts, Render(n))
	}
	return strings.Join(parts, " ")
}
