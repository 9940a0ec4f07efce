package tui

import (
	"fmt"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskflow/internal/tui/components"
	"github.com/thenoetrevino/taskflow/internal/tui/notifications"
	"github.com/thenoetrevino/taskflow/internal/tui/state"
	"github.com/thenoetrevino/taskflow/internal/tui/theme"
)

// View renders the current state of the application
// Required by tea.Model interface
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = lipgloss.Color(theme.Background)
	view.Content = m.render()
	return view
}

// render draws the screen content
func (m Model) render() string {
	width := m.uiState.Width()
	if width == 0 {
		width = 80
	}

	header := components.RenderHeader(components.HeaderProps{
		Stats:    m.board.Stats(),
		Overdue:  m.overdueCount(),
		Presence: m.presenceSnap,
		Theme:    m.themes.Current(),
		Width:    width,
	})

	var body string
	switch m.uiState.Mode() {
	case state.HelpMode:
		body = m.viewHelp(width)
	case state.TaskFormMode:
		body = m.viewTaskForm()
	case state.DetailMode:
		body = m.viewDetail(width)
	default:
		body = m.viewBoard()
	}

	parts := []string{header}
	if m.notificationState.HasAny() {
		parts = append(parts, notifications.RenderAll(m.notificationState.All()))
	}
	if prompt := m.viewPrompt(); prompt != "" {
		parts = append(parts, prompt)
	}
	parts = append(parts, body, m.viewStatusBar(width))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// viewBoard renders the visible columns side by side
func (m Model) viewBoard() string {
	if len(m.board.Columns) == 0 {
		return components.SubtleStyle.Render("No columns configured")
	}

	dragging := ""
	if ds, ok := m.engine.DragState(); ok && m.uiState.Mode() == state.DragMode {
		dragging = ds.Task.ID
	}

	start := m.uiState.ViewportOffset()
	end := min(start+m.uiState.ViewportSize(), len(m.board.Columns))
	now := m.engine.Now()
	height := m.uiState.ContentHeight()
	if m.uiState.Height() == 0 {
		height = 0
	}

	rendered := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		col := m.board.Columns[i]
		selectedTask := -1
		if i == m.uiState.SelectedColumn() {
			selectedTask = m.uiState.SelectedTask()
		}
		rendered = append(rendered, components.RenderColumn(components.ColumnProps{
			Column:          col,
			Selected:        i == m.uiState.SelectedColumn(),
			DropTarget:      dragging != "" && i == m.uiState.DropTarget(),
			SelectedTaskIdx: selectedTask,
			DraggingTaskID:  dragging,
			Height:          height,
			ScrollOffset:    m.uiState.TaskScrollOffset(col.ID),
			Now:             now,
		}))
	}

	left, right := " ", " "
	if start > 0 {
		left = "◀"
	}
	if end < len(m.board.Columns) {
		right = "▶"
	}

	columns := lipgloss.JoinHorizontal(lipgloss.Top, interleave(rendered, " ")...)
	return lipgloss.JoinHorizontal(lipgloss.Center, left, columns, right)
}

func interleave(items []string, sep string) []string {
	out := make([]string, 0, len(items)*2)
	for i, it := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, it)
	}
	return out
}

// viewTaskForm renders the add or edit task form
func (m Model) viewTaskForm() string {
	form := m.formState.Form()
	if form == nil {
		return m.viewBoard()
	}

	heading := "Edit task"
	if !m.formState.Editing() {
		heading = "New task in " + m.formState.ColumnID()
		if col, ok := m.board.Column(m.formState.ColumnID()); ok {
			heading = "New task in " + col.Title
		}
	}
	return components.InputBoxStyle.Render(
		components.TitleStyle.Render(heading) + "\n\n" + form.View())
}

// viewPrompt renders the delete confirmation
func (m Model) viewPrompt() string {
	switch m.uiState.Mode() {
	case state.DeleteConfirmMode:
		if task, _, ok := m.currentTask(); ok {
			return components.DeleteConfirmBoxStyle.Render(
				fmt.Sprintf("Delete '%s'? [y/N]", task.Title))
		}
	}
	return ""
}

// viewDetail renders the selected task's detail pane
func (m Model) viewDetail(width int) string {
	task, columnID, ok := m.currentTask()
	if !ok {
		return m.viewBoard()
	}
	columnTitle := columnID
	if col, ok := m.board.Column(columnID); ok {
		columnTitle = col.Title
	}
	return components.RenderTaskView(components.TaskViewProps{
		Task:        task,
		ColumnTitle: columnTitle,
		Now:         m.engine.Now(),
		Width:       min(width-2, 100),
	})
}

// viewStatusBar renders mode hints, including the drag indicator
func (m Model) viewStatusBar(width int) string {
	props := components.StatusBarProps{Width: width}

	switch m.uiState.Mode() {
	case state.DragMode:
		if ds, ok := m.engine.DragState(); ok {
			target := m.board.Columns[m.uiState.DropTarget()]
			props.Left = fmt.Sprintf("Dragging '%s' → %s", ds.Task.Title, target.Title)
			props.Right = shortHelp(m.keymap.PrevColumn, m.keymap.NextColumn, m.keymap.Drop, m.keymap.CancelDrag)
		}
	case state.NormalMode:
		props.Right = shortHelp(m.keymap.ShortHelp()...)
	case state.TaskFormMode:
		props.Right = "tab next field · ctrl+s save · esc cancel"
	case state.DetailMode:
		props.Right = "esc close"
	}

	return components.RenderStatusBar(props)
}

// shortHelp renders bindings as a one-line hint
func shortHelp(bindings ...key.Binding) string {
	return help.New().ShortHelpView(bindings)
}
