package tui

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/services/board"
	"github.com/thenoetrevino/taskflow/internal/tui/state"
)

// handleNormalMode handles keyboard input in normal navigation mode
func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.notificationState.ClearLevel(state.LevelInfo)
	m.notificationState.ClearLevel(state.LevelWarning)

	km := m.keymap
	switch {
	case key.Matches(msg, km.Quit):
		return m, tea.Quit
	case key.Matches(msg, km.ShowHelp):
		m.uiState.SetMode(state.HelpMode)
	case key.Matches(msg, km.PrevColumn):
		m.moveColumn(-1)
	case key.Matches(msg, km.NextColumn):
		m.moveColumn(1)
	case key.Matches(msg, km.PrevTask):
		m.moveTask(-1)
	case key.Matches(msg, km.NextTask):
		m.moveTask(1)
	case key.Matches(msg, km.AddTask):
		col, ok := m.currentColumn()
		if !ok {
			return m, nil
		}
		return m, m.openCreateForm(col.ID)
	case key.Matches(msg, km.EditTask):
		task, columnID, ok := m.currentTask()
		if !ok {
			return m, nil
		}
		return m, m.openEditForm(task, columnID)
	case key.Matches(msg, km.DeleteTask):
		if _, _, ok := m.currentTask(); ok {
			m.uiState.SetMode(state.DeleteConfirmMode)
		}
	case key.Matches(msg, km.CyclePriority):
		m.cyclePriority()
	case key.Matches(msg, km.StartDrag):
		m.startDrag()
	case key.Matches(msg, km.ViewTask):
		if _, _, ok := m.currentTask(); ok {
			m.uiState.SetMode(state.DetailMode)
		}
	case key.Matches(msg, km.CycleTheme):
		return m, m.cycleTheme()
	}
	return m, nil
}

// moveColumn shifts the column selection by delta, keeping the task index in range
func (m *Model) moveColumn(delta int) {
	next := m.uiState.SelectedColumn() + delta
	if next < 0 || next >= len(m.board.Columns) {
		return
	}
	m.uiState.SetSelectedColumn(next)
	m.uiState.ClampSelection(len(m.board.Columns), func(c int) int {
		return len(m.board.Columns[c].Tasks)
	})
	m.uiState.EnsureColumnVisible(next)
	m.ensureTaskVisible()
}

// moveTask shifts the task selection by delta within the current column
func (m *Model) moveTask(delta int) {
	col, ok := m.currentColumn()
	if !ok {
		return
	}
	next := m.uiState.SelectedTask() + delta
	if next < 0 || next >= len(col.Tasks) {
		return
	}
	m.uiState.SetSelectedTask(next)
	m.ensureTaskVisible()
}

// cyclePriority advances the selected task's priority low → medium → high → low
func (m *Model) cyclePriority() {
	task, columnID, ok := m.currentTask()
	if !ok {
		return
	}
	next := nextPriority(task.Priority)
	if _, err := m.engine.UpdateTask(columnID, task.ID, board.TaskPatch{Priority: &next}); err != nil {
		m.notificationState.Add(state.LevelError, err.Error())
		return
	}
	m.refreshBoard()
}

func nextPriority(p models.Priority) models.Priority {
	all := models.Priorities()
	for i, candidate := range all {
		if candidate == p {
			return all[(i+1)%len(all)]
		}
	}
	return models.DefaultPriority
}

// startDrag arms the selected task and enters drag mode
func (m *Model) startDrag() {
	task, columnID, ok := m.currentTask()
	if !ok {
		return
	}
	if err := m.engine.StartDrag(columnID, task.ID); err != nil {
		// The cursor pointed at a task that vanished; resync
		m.refreshBoard()
		return
	}
	m.uiState.SetDropTarget(m.uiState.SelectedColumn())
	m.uiState.SetMode(state.DragMode)
}

// cycleTheme switches to the next theme right away and saves it in the
// background. A failed save keeps the new theme.
func (m *Model) cycleTheme() tea.Cmd {
	if err := m.themes.Select(m.themes.Next()); err != nil {
		m.notificationState.Add(state.LevelError, err.Error())
		return nil
	}
	m.applyTheme()
	return saveTheme(m.ctx, m.themes)
}

// handleThemeSaved reports the outcome of a background theme save
func (m *Model) handleThemeSaved(msg themeSavedMsg) {
	if msg.err != nil {
		m.logger.Error("failed to save theme", "theme", msg.name, "error", msg.err)
		m.notificationState.Add(state.LevelError, "Theme applied but could not be saved")
		return
	}
	m.notificationState.Add(state.LevelInfo, fmt.Sprintf("Theme: %s", msg.name))
}
