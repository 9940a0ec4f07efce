package state

import (
	"slices"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/tui/huhforms"
)

// FormState manages the task form: the huh form instance, the values it is
// bound to, and which task and column it targets.
type FormState struct {
	form   *huh.Form
	values huhforms.TaskFormValues

	// taskID is the task being edited; empty when creating
	taskID string

	// columnID is the column a new task is created in
	columnID string

	// origTags are the tags the task had when the form opened
	origTags []string
}

// NewFormState creates an empty FormState with no open form.
func NewFormState() *FormState {
	return &FormState{}
}

// OpenCreate resets the values for a new task in columnID.
func (s *FormState) OpenCreate(columnID string, assignee string) *huhforms.TaskFormValues {
	s.taskID = ""
	s.columnID = columnID
	s.origTags = nil
	s.values = huhforms.TaskFormValues{
		Priority: models.DefaultPriority,
		Assignee: assignee,
		Confirm:  true,
	}
	return &s.values
}

// OpenEdit loads task into the values for editing.
func (s *FormState) OpenEdit(task models.Task, columnID string) *huhforms.TaskFormValues {
	s.taskID = task.ID
	s.columnID = columnID
	s.origTags = append([]string(nil), task.Tags...)

	due := ""
	if task.DueDate != nil {
		due = task.DueDate.String()
	}
	s.values = huhforms.TaskFormValues{
		Title:       task.Title,
		Description: task.Description,
		Priority:    task.Priority,
		DueDate:     due,
		Assignee:    task.Assignee,
		KeepTags:    append([]string(nil), task.Tags...),
		Confirm:     true,
	}
	return &s.values
}

// Form returns the open form, or nil.
func (s *FormState) Form() *huh.Form {
	return s.form
}

// SetForm sets the form instance.
func (s *FormState) SetForm(form *huh.Form) {
	s.form = form
}

// Values returns the bound form values.
func (s *FormState) Values() *huhforms.TaskFormValues {
	return &s.values
}

// TaskID returns the task being edited, empty when creating.
func (s *FormState) TaskID() string {
	return s.taskID
}

// Editing reports whether the form edits an existing task.
func (s *FormState) Editing() bool {
	return s.taskID != ""
}

// ColumnID returns the column the form targets.
func (s *FormState) ColumnID() string {
	return s.columnID
}

// OriginalTags returns the tags the task had when the form opened.
func (s *FormState) OriginalTags() []string {
	return s.origTags
}

// PendingTags returns the tag set the form will save: the original tags
// minus those deselected, plus the newly typed ones.
func (s *FormState) PendingTags() []string {
	tags := models.NormalizeTags(s.origTags)
	for _, tag := range s.origTags {
		if !slices.Contains(s.values.KeepTags, tag) {
			tags = models.RemoveTag(tags, tag)
		}
	}
	for _, tag := range huhforms.SplitTags(s.values.NewTags) {
		tags = models.AddTag(tags, tag)
	}
	return tags
}

// Close drops the form and its values.
func (s *FormState) Close() {
	s.form = nil
	s.values = huhforms.TaskFormValues{}
	s.taskID = ""
	s.columnID = ""
	s.origTags = nil
}

