package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskflow/internal/events"
	"github.com/thenoetrevino/taskflow/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// Required by tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.uiState.SetWidth(msg.Width)
		m.uiState.SetHeight(msg.Height)
		m.uiState.EnsureColumnVisible(m.uiState.SelectedColumn())
		return m, nil

	case busEventMsg:
		m.handleEvent(msg.event)
		return m, waitForEvent(m.sub)

	case themeSavedMsg:
		m.handleThemeSaved(msg)
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	// Forms need every message, not just key presses
	if m.uiState.Mode() == state.TaskFormMode {
		return m.updateTaskForm(msg)
	}
	return m, nil
}

// handleEvent refreshes whatever the event says changed
func (m *Model) handleEvent(ev events.Event) {
	switch ev.Type {
	case events.EventBoardChanged:
		m.refreshBoard()
	case events.EventPresenceChanged:
		m.refreshPresence()
	case events.EventThemeChanged:
		m.applyTheme()
	case events.EventPersistFailed:
		m.notificationState.Add(state.LevelError, "Could not save the board; changes are kept in memory")
	}
}

// handleKey dispatches a key press according to the current mode
func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch m.uiState.Mode() {
	case state.DragMode:
		return m.handleDragMode(msg)
	case state.TaskFormMode:
		return m.handleTaskFormKey(msg)
	case state.DeleteConfirmMode:
		return m.handleDeleteConfirm(msg)
	case state.DetailMode:
		return m.handleDetailMode(msg)
	case state.HelpMode:
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	default:
		return m.handleNormalMode(msg)
	}
}
