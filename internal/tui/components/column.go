package components

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskflow/internal/config/colors"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/tui/theme"
)

// ColumnProps describes one column to render
type ColumnProps struct {
	Column          models.Column
	Selected        bool   // The cursor is in this column
	DropTarget      bool   // A drag would resolve into this column
	SelectedTaskIdx int    // Index of the selected task (-1 if not this column)
	DraggingTaskID  string // Id of the armed task, if any
	Height          int    // Fixed height for the column (0 for auto)
	ScrollOffset    int    // Index of first visible task
	Now             time.Time
}

// VisibleTasks returns how many cards fit in a column of the given height
func VisibleTasks(height int) int {
	// Border + bottom padding (3), header (1), top indicator (1)
	const columnOverhead = 5
	return max((height-columnOverhead)/TaskCardHeight, 1)
}

// RenderColumn renders a complete column with its title and tasks
//
// Layout:
//
//	● {Column Title} ({count})
//	▲ (if scrolled down)
//	{Task 1}
//	{Task 2}
//	...
//	▼ (if more tasks below)
func RenderColumn(props ColumnProps) string {
	column := props.Column
	tasks := column.Tasks

	dot := lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Token(column.Color))).Render("●")
	header := fmt.Sprintf("%s %s (%d)", dot, TitleStyle.Render(column.Title), len(tasks))
	content := header + "\n"

	if len(tasks) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Padding(1, 0)
		content += emptyStyle.Render("No tasks")
	} else {
		maxVisibleTasks := VisibleTasks(props.Height)
		if props.Height == 0 {
			maxVisibleTasks = len(tasks)
		}

		indicatorStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Align(lipgloss.Center)

		// Always reserve space for top indicator
		scrollOffset := min(props.ScrollOffset, len(tasks)-1)
		if scrollOffset > 0 {
			content += indicatorStyle.Render("▲ more above") + "\n"
		} else {
			content += "\n"
		}

		endIdx := min(scrollOffset+maxVisibleTasks, len(tasks))
		for i, task := range tasks[scrollOffset:endIdx] {
			actualIdx := scrollOffset + i
			content += RenderTask(TaskCardProps{
				Task:     task,
				Selected: props.Selected && actualIdx == props.SelectedTaskIdx,
				Dragging: task.ID == props.DraggingTaskID,
				Overdue:  task.Overdue(props.Now),
			}) + "\n"
		}

		if endIdx < len(tasks) {
			content += indicatorStyle.Render("▼ more below")
		}
		content = strings.TrimRight(content, "\n")
	}

	// Apply column styling with selection highlight and fixed height
	style := ColumnStyle
	switch {
	case props.DropTarget:
		style = style.BorderForeground(lipgloss.Color(theme.DragBorder)).Border(lipgloss.DoubleBorder())
	case props.Selected:
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if props.Height > 0 {
		// Subtract 2 for top and bottom borders since .Height() sets content area height
		style = style.Height(props.Height - 2)
	}

	return style.Render(content)
}
