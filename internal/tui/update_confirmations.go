package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskflow/internal/tui/state"
)

// handleDeleteConfirm handles the y/n prompt for deleting the selected task
func (m Model) handleDeleteConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if task, columnID, ok := m.currentTask(); ok {
			m.engine.DeleteTask(columnID, task.ID)
			m.refreshBoard()
		}
		m.uiState.SetMode(state.NormalMode)
	case "n", "N", "esc":
		m.uiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// handleDetailMode closes the detail pane
func (m Model) handleDetailMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" || key.Matches(msg, m.keymap.ViewTask, m.keymap.Quit) {
		m.uiState.SetMode(state.NormalMode)
	}
	return m, nil
}
