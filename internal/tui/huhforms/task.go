// Package huhforms builds the huh forms used by the TUI
package huhforms

import (
	"strings"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// TitleCharLimit bounds the title input
const TitleCharLimit = 120

// TaskFormValues holds the fields bound to a task form.
// The form writes into these values as the user types.
type TaskFormValues struct {
	Title       string
	Description string
	Priority    models.Priority
	DueDate     string   // YYYY-MM-DD, empty for none
	Assignee    string
	KeepTags    []string // Existing tags still selected
	NewTags     string   // Comma separated tags to add
	Confirm     bool
}

// ValidateTitle rejects titles that are blank after trimming
func ValidateTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return models.ErrEmptyTitle
	}
	return nil
}

// ValidateDueDate accepts an empty value or a YYYY-MM-DD date
func ValidateDueDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	_, err := models.ParseDate(s)
	return err
}

// SplitTags splits a comma separated tag list, dropping blanks
func SplitTags(s string) []string {
	var out []string
	for _, tag := range strings.Split(s, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// CreateTaskForm creates a huh form for adding or editing a task.
// existingTags are offered for removal; the tag list is omitted when empty.
func CreateTaskForm(v *TaskFormValues, existingTags []string, descriptionLines int) *huh.Form {
	var fields []huh.Field

	fields = append(fields,
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("Enter task title...").
			CharLimit(TitleCharLimit).
			Validate(ValidateTitle).
			Value(&v.Title),
	)

	fields = append(fields,
		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("Markdown is supported...").
			CharLimit(5000).
			Lines(descriptionLines).
			Value(&v.Description),
	)

	priorityOptions := make([]huh.Option[models.Priority], 0, len(models.Priorities()))
	for _, p := range models.Priorities() {
		priorityOptions = append(priorityOptions, huh.NewOption(string(p), p))
	}
	fields = append(fields,
		huh.NewSelect[models.Priority]().
			Key("priority").
			Title("Priority").
			Options(priorityOptions...).
			Value(&v.Priority),
	)

	fields = append(fields,
		huh.NewInput().
			Key("due").
			Title("Due date").
			Placeholder("YYYY-MM-DD").
			Validate(ValidateDueDate).
			Value(&v.DueDate),
		huh.NewInput().
			Key("assignee").
			Title("Assignee").
			Value(&v.Assignee),
	)

	if len(existingTags) > 0 {
		tagOptions := make([]huh.Option[string], 0, len(existingTags))
		for _, tag := range existingTags {
			tagOptions = append(tagOptions, huh.NewOption(tag, tag).Selected(true))
		}
		fields = append(fields,
			huh.NewMultiSelect[string]().
				Key("tags").
				Title("Tags").
				Description("Space to toggle; unselected tags are removed").
				Options(tagOptions...).
				Value(&v.KeepTags),
		)
	}

	fields = append(fields,
		huh.NewInput().
			Key("new_tags").
			Title("Add tags").
			Placeholder("comma, separated").
			Value(&v.NewTags),
		huh.NewConfirm().
			Key("confirm").
			Title("Save this task?").
			Affirmative("Yes").
			Negative("No").
			Value(&v.Confirm),
	)

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMapWithShiftEnter()).WithShowHelp(false)
}
