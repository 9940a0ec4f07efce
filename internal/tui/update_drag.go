package tui

import (
	"errors"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskflow/internal/services/board"
	"github.com/thenoetrevino/taskflow/internal/tui/state"
)

// handleDragMode handles keyboard input while a task is armed
func (m Model) handleDragMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.keymap
	switch {
	case key.Matches(msg, km.PrevColumn):
		m.moveDropTarget(-1)
	case key.Matches(msg, km.NextColumn):
		m.moveDropTarget(1)
	case key.Matches(msg, km.Drop):
		m.drop()
	case key.Matches(msg, km.CancelDrag):
		m.engine.CancelDrag()
		m.uiState.SetMode(state.NormalMode)
	case key.Matches(msg, km.Quit):
		m.engine.CancelDrag()
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) moveDropTarget(delta int) {
	next := m.uiState.DropTarget() + delta
	if next < 0 || next >= len(m.board.Columns) {
		return
	}
	m.uiState.SetDropTarget(next)
	m.uiState.EnsureColumnVisible(next)
}

// drop resolves the drag into the target column. The session always ends.
func (m *Model) drop() {
	m.uiState.SetMode(state.NormalMode)
	target := m.board.Columns[m.uiState.DropTarget()]

	task, err := m.engine.ResolveDrag(target.ID)
	m.refreshBoard()

	switch {
	case err == nil:
		m.selectTask(task.ID)
	case errors.Is(err, board.ErrTaskAlreadyInTargetColumn):
		m.notificationState.Add(state.LevelWarning, "Task is already in "+target.Title)
	case board.IsBenign(err):
		// Task vanished underneath the drag; nothing to report
	default:
		m.notificationState.Add(state.LevelError, err.Error())
	}
}
