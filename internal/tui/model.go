// Package tui is the bubbletea front end. It renders engine snapshots and
// turns key presses into engine commands; it never mutates board state itself.
package tui

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskflow/internal/app"
	"github.com/thenoetrevino/taskflow/internal/events"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/presence"
	"github.com/thenoetrevino/taskflow/internal/services/board"
	themesvc "github.com/thenoetrevino/taskflow/internal/services/theme"
	"github.com/thenoetrevino/taskflow/internal/tui/components"
	"github.com/thenoetrevino/taskflow/internal/tui/state"
	"github.com/thenoetrevino/taskflow/internal/tui/theme"
)

// Model represents the application state for the TUI
type Model struct {
	ctx      context.Context
	engine   *board.Engine
	themes   *themesvc.Service
	presence *presence.Simulator
	sub      *events.Subscription
	keymap   keyMap
	logger   *slog.Logger

	// Cached read-only copies, refreshed on bus events and after commands
	board        *models.Board
	presenceSnap presence.Snapshot

	uiState           *state.UIState
	formState         *state.FormState
	notificationState *state.NotificationState

	defaultAssignee string
}

// InitialModel creates the TUI model over the application container and
// subscribes it to the event bus
func InitialModel(ctx context.Context, a *app.App) Model {
	m := Model{
		ctx:               ctx,
		engine:            a.Board,
		themes:            a.Theme,
		presence:          a.Presence,
		sub:               a.Events.Subscribe(events.DefaultBuffer),
		keymap:            newKeyMap(a.Config.KeyMappings),
		logger:            slog.Default(),
		uiState:           state.NewUIState(),
		formState:         state.NewFormState(),
		notificationState: state.NewNotificationState(),
		defaultAssignee:   a.Config.DefaultAssignee,
	}
	m.applyTheme()
	m.refreshBoard()
	m.refreshPresence()
	return m
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.sub)
}

// Close unsubscribes from the event bus
func (m Model) Close() {
	m.sub.Close()
}

// refreshBoard re-reads the board snapshot and keeps the selection in range
func (m *Model) refreshBoard() {
	m.board = m.engine.Snapshot()
	m.uiState.ClampSelection(len(m.board.Columns), func(c int) int {
		return len(m.board.Columns[c].Tasks)
	})
}

// refreshPresence re-reads the presence snapshot
func (m *Model) refreshPresence() {
	m.presenceSnap = m.presence.Snapshot()
}

// applyTheme pushes the selected palette into the style packages
func (m *Model) applyTheme() {
	theme.Init(m.themes.Palette())
	components.InitStyles()
}

// currentColumn returns the selected column, if the board has any
func (m Model) currentColumn() (models.Column, bool) {
	if len(m.board.Columns) == 0 {
		return models.Column{}, false
	}
	return m.board.Columns[m.uiState.SelectedColumn()], true
}

// currentTask returns the selected task and its column id
func (m Model) currentTask() (models.Task, string, bool) {
	col, ok := m.currentColumn()
	if !ok || len(col.Tasks) == 0 {
		return models.Task{}, "", false
	}
	idx := m.uiState.SelectedTask()
	if idx >= len(col.Tasks) {
		return models.Task{}, "", false
	}
	return col.Tasks[idx], col.ID, true
}

// selectTask moves the cursor onto the task with the given id
func (m *Model) selectTask(taskID string) {
	for ci, col := range m.board.Columns {
		if idx := col.IndexOf(taskID); idx >= 0 {
			m.uiState.SetSelectedColumn(ci)
			m.uiState.SetSelectedTask(idx)
			m.uiState.EnsureColumnVisible(ci)
			m.ensureTaskVisible()
			return
		}
	}
}

// ensureTaskVisible scrolls the selected column so the cursor is on screen
func (m *Model) ensureTaskVisible() {
	col, ok := m.currentColumn()
	if !ok {
		return
	}
	m.uiState.EnsureTaskVisible(col.ID, m.uiState.SelectedTask(),
		components.VisibleTasks(m.uiState.ContentHeight()))
}

// overdueCount counts overdue tasks on the cached board
func (m Model) overdueCount() int {
	now := m.engine.Now()
	n := 0
	for _, col := range m.board.Columns {
		for _, t := range col.Tasks {
			if t.Overdue(now) {
				n++
			}
		}
	}
	return n
}
