package components

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/tui/theme"
)

type TaskViewProps struct {
	Task        models.Task
	ColumnTitle string
	Now         time.Time
	Width       int
}

// RenderTaskView renders the detail pane: title, metadata column and the
// markdown description
func RenderTaskView(props TaskViewProps) string {
	task := props.Task
	width := max(props.Width, 40)
	contentWidth := width - 8

	leftColWidth := (contentWidth * 70) / 100
	rightColWidth := contentWidth - leftColWidth - 1

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Highlight))

	left := strings.Join([]string{
		titleStyle.Render(task.Title),
		"",
		RenderDescription(DescriptionProps{
			Description: task.Description,
			Width:       leftColWidth,
			Dark:        theme.Dark,
		}),
		"",
		SubtleStyle.Render("[Esc/Enter] close"),
	}, "\n")

	leftColumn := lipgloss.NewStyle().
		Width(leftColWidth).
		Padding(0, 1).
		Render(left)

	rightColumn := lipgloss.NewStyle().
		Width(rightColWidth).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(theme.Subtle)).
		PaddingLeft(1).
		Render(renderMetadata(task, props.ColumnTitle, props.Now))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(1, 2).
		Width(width).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, leftColumn, rightColumn))
}

func renderMetadata(task models.Task, columnTitle string, now time.Time) string {
	label := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Subtle))
	value := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))

	due := "none"
	if task.DueDate != nil {
		due = task.DueDate.String()
		if task.Overdue(now) {
			due += " (overdue)"
		}
	}
	tags := "none"
	if len(task.Tags) > 0 {
		tags = strings.Join(task.Tags, ", ")
	}
	moved := "never"
	if task.MovedAt != nil {
		moved = task.MovedAt.Local().Format("2006-01-02 15:04")
	}

	rows := []struct{ k, v string }{
		{"Column", columnTitle},
		{"Priority", lipgloss.NewStyle().Foreground(lipgloss.Color(PriorityColor(task.Priority))).Render(string(task.Priority))},
		{"Assignee", task.Assignee},
		{"Due", due},
		{"Tags", tags},
		{"Created", task.CreatedAt.Local().Format("2006-01-02 15:04")},
		{"Moved", moved},
	}

	lines := make([]string, 0, len(rows)*2)
	for _, r := range rows {
		lines = append(lines, label.Render(r.k), value.Render(r.v), "")
	}
	lines = append(lines, SubtleStyle.Render(fmt.Sprintf("id %s", task.ID)))
	return strings.Join(lines, "\n")
}
