package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/services/board"
	"github.com/thenoetrevino/taskflow/internal/tui/huhforms"
	"github.com/thenoetrevino/taskflow/internal/tui/state"
)

const (
	formMaxWidth     = 80
	descriptionLines = 5
)

// openCreateForm opens the task form for a new task in columnID
func (m *Model) openCreateForm(columnID string) tea.Cmd {
	v := m.formState.OpenCreate(columnID, m.defaultAssignee)
	return m.startForm(huhforms.CreateTaskForm(v, nil, descriptionLines))
}

// openEditForm opens the task form filled in from task
func (m *Model) openEditForm(task models.Task, columnID string) tea.Cmd {
	v := m.formState.OpenEdit(task, columnID)
	return m.startForm(huhforms.CreateTaskForm(v, task.Tags, descriptionLines))
}

func (m *Model) startForm(form *huh.Form) tea.Cmd {
	width := formMaxWidth
	if w := m.uiState.Width(); w > 0 {
		width = min(w-8, formMaxWidth)
	}
	form = form.
		WithTheme(huhforms.CreateTheme(m.themes.Palette())).
		WithWidth(width)
	m.formState.SetForm(form)
	m.uiState.SetMode(state.TaskFormMode)
	return form.Init()
}

// closeForm drops the form and returns to the board
func (m *Model) closeForm() {
	m.formState.Close()
	m.uiState.SetMode(state.NormalMode)
}

// handleTaskFormKey intercepts cancel and quick save before the form sees the key
func (m Model) handleTaskFormKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeForm()
		return m, nil
	case "ctrl+s":
		m.formState.Values().Confirm = true
		m.submitTaskForm()
		return m, nil
	}
	return m.updateTaskForm(msg)
}

// updateTaskForm forwards a message to the form and submits it once complete
func (m Model) updateTaskForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form := m.formState.Form()
	if form == nil {
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	}

	model, cmd := form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.formState.SetForm(f)
		form = f
	}

	switch form.State {
	case huh.StateCompleted:
		if !m.submitTaskForm() {
			// A completed form cannot be resumed
			m.closeForm()
		}
		return m, nil
	case huh.StateAborted:
		m.closeForm()
		return m, nil
	}
	return m, cmd
}

// submitTaskForm saves the form and closes it. An unconfirmed form is
// discarded. On failure the form stays open and false is returned.
func (m *Model) submitTaskForm() bool {
	if !m.formState.Values().Confirm {
		m.closeForm()
		return true
	}

	task, err := m.saveTaskForm()
	if err != nil {
		level := state.LevelError
		if errors.Is(err, models.ErrValidation) {
			level = state.LevelWarning
		}
		m.notificationState.Add(level, err.Error())
		return false
	}

	m.closeForm()
	m.refreshBoard()
	m.selectTask(task.ID)
	return true
}

// saveTaskForm creates or updates the task from the form values
func (m *Model) saveTaskForm() (models.Task, error) {
	v := m.formState.Values()

	var due *models.Date
	if strings.TrimSpace(v.DueDate) != "" {
		d, err := models.ParseDate(v.DueDate)
		if err != nil {
			return models.Task{}, err
		}
		due = &d
	}
	tags := m.formState.PendingTags()

	if !m.formState.Editing() {
		return m.engine.CreateTask(m.formState.ColumnID(), board.TaskFields{
			Title:       v.Title,
			Description: v.Description,
			Priority:    v.Priority,
			DueDate:     due,
			Assignee:    v.Assignee,
			Tags:        tags,
		})
	}

	// The task may have moved since the form opened
	taskID := m.formState.TaskID()
	_, columnID, ok := m.engine.FindTask(taskID)
	if !ok {
		return models.Task{}, fmt.Errorf("%w: %s", board.ErrTaskNotFound, taskID)
	}

	title, description, priority, assignee := v.Title, v.Description, v.Priority, v.Assignee
	return m.engine.UpdateTask(columnID, taskID, board.TaskPatch{
		Title:        &title,
		Description:  &description,
		Priority:     &priority,
		DueDate:      due,
		ClearDueDate: due == nil,
		Assignee:     &assignee,
		Tags:         &tags,
	})
}
