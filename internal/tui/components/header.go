package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskflow/internal/config/colors"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/presence"
	"github.com/thenoetrevino/taskflow/internal/tui/theme"
)

// HeaderProps holds what the top bar shows
type HeaderProps struct {
	Stats    models.BoardStats
	Overdue  int
	Presence presence.Snapshot
	Theme    string
	Width    int
}

// RenderHeader renders the app title and presence avatars on the first line
// and per-column counts on the second
func RenderHeader(props HeaderProps) string {
	title := TitleStyle.Render("taskflow")
	if props.Theme != "" {
		title += SubtleStyle.Render(" · " + props.Theme)
	}
	avatars := RenderPresence(props.Presence)

	gap := max(props.Width-lipgloss.Width(title)-lipgloss.Width(avatars), 1)
	top := title + strings.Repeat(" ", gap) + avatars

	return top + "\n" + RenderStats(props.Stats, props.Overdue)
}

// RenderStats renders "To Do 2 · In Progress 1 · Done 0 │ 3 tasks"
func RenderStats(stats models.BoardStats, overdue int) string {
	parts := make([]string, 0, len(stats.Columns))
	for _, c := range stats.Columns {
		parts = append(parts, fmt.Sprintf("%s %d", c.Title, c.Count))
	}
	line := strings.Join(parts, " · ") + fmt.Sprintf(" │ %d tasks", stats.Total)
	out := SubtleStyle.Render(line)
	if overdue > 0 {
		out += " " + lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.ErrorFg)).
			Background(lipgloss.Color(theme.ErrorBg)).
			Padding(0, 1).
			Render(fmt.Sprintf("%d overdue", overdue))
	}
	return out
}

// RenderPresence renders one initials avatar per collaborator. Active
// collaborators are drawn in their color; the others are dimmed.
func RenderPresence(snap presence.Snapshot) string {
	avatars := make([]string, 0, len(snap.Collaborators))
	for _, c := range snap.Collaborators {
		style := lipgloss.NewStyle().Padding(0, 1).Bold(true)
		if snap.IsActive(c.ID) {
			style = style.
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(lipgloss.Color(colors.Token(c.Color)))
		} else {
			style = style.
				Foreground(lipgloss.Color(theme.Subtle)).
				Faint(true)
		}
		avatars = append(avatars, style.Render(c.Initials()))
	}
	return strings.Join(avatars, " ")
}
