package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskflow/internal/config/colors"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/tui/theme"
)

// TaskCardHeight is the fixed height of the task card
const TaskCardHeight = 5

// TaskCardProps controls how a card is highlighted
type TaskCardProps struct {
	Task     models.Task
	Selected bool
	Dragging bool // The card is the armed drag source
	Overdue  bool
}

// RenderTask renders a single task as a card
//
//	╭────────────────────────╮
//	│ {Task Title}           │
//	│ priority │ @assignee   │
//	│ #tag #tag  due date    │
//	╰────────────────────────╯
func RenderTask(props TaskCardProps) string {
	bg := theme.TaskBg
	if props.Selected {
		bg = theme.SelectedBg
	}

	content := renderTaskTitle(props.Task, bg) +
		renderTaskMetadata(props.Task, bg) +
		renderTaskFooter(props.Task, props.Overdue, bg)

	border := theme.TaskBorder
	switch {
	case props.Dragging:
		border = theme.DragBorder
	case props.Selected:
		border = theme.SelectedBorder
	}

	style := TaskStyle.
		BorderForeground(lipgloss.Color(border)).
		BorderBackground(lipgloss.Color(bg)).
		Background(lipgloss.Color(bg))
	if props.Dragging {
		style = style.Border(lipgloss.DoubleBorder())
	}

	return style.Render(content)
}

func renderTaskTitle(task models.Task, bg string) string {
	title := task.Title
	if len([]rune(title)) > taskTitleMaxLength {
		ellipsisStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Background(lipgloss.Color(bg)).
			Italic(true)
		title = string([]rune(title)[:taskTitleMaxLength]) + ellipsisStyle.Render("...")
	}

	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Normal)).
		Background(lipgloss.Color(bg)).
		Render(" " + title)
}

// PriorityColor returns the theme color for a priority
func PriorityColor(p models.Priority) string {
	switch p {
	case models.PriorityHigh:
		return theme.PriorityHigh
	case models.PriorityLow:
		return theme.PriorityLow
	default:
		return theme.PriorityMedium
	}
}

// renderTaskMetadata renders priority and assignee on the same line, separated by │
func renderTaskMetadata(task models.Task, bg string) string {
	priorityStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(PriorityColor(task.Priority))).
		Background(lipgloss.Color(bg))
	assigneeStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Background(lipgloss.Color(bg))
	separator := assigneeStyle.Render(" │ ")

	return "\n " + priorityStyle.Render(string(task.Priority)) + separator + assigneeStyle.Render("@"+task.Assignee)
}

// renderTaskFooter renders tags and the due date
func renderTaskFooter(task models.Task, overdue bool, bg string) string {
	subtle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Background(lipgloss.Color(bg))

	var parts []string
	for _, tag := range task.Tags {
		parts = append(parts, lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Token("teal"))).
			Background(lipgloss.Color(bg)).
			Render("#"+tag))
	}

	if task.DueDate != nil {
		due := "due " + task.DueDate.String()
		if overdue {
			parts = append(parts, lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(theme.ErrorFg)).
				Background(lipgloss.Color(theme.ErrorBg)).
				Render(" "+due+" "))
		} else {
			parts = append(parts, subtle.Render(due))
		}
	}

	if len(parts) == 0 {
		return "\n " + subtle.Italic(true).Render("no tags")
	}
	return "\n " + strings.Join(parts, subtle.Render(" "))
}
