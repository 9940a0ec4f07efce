package board

import "github.com/thenoetrevino/taskflow/internal/models"

// TaskFields encapsulates all data needed to create a task
type TaskFields struct {
	Title       string // Required, trimmed
	Description string
	Priority    models.Priority // Optional: "" means models.DefaultPriority
	DueDate     *models.Date
	Assignee    string // Optional: "" means the default assignee
	Tags        []string
}

// TaskPatch encapsulates a partial task update.
// Fields with pointers are optional - nil means don't update.
// Tags, when provided, replace the whole set.
type TaskPatch struct {
	Title        *string
	Description  *string
	Priority     *models.Priority
	DueDate      *models.Date
	ClearDueDate bool // Removes the due date; ignored when DueDate is set
	Assignee     *string
	Tags         *[]string
}

// IsEmpty reports whether the patch changes nothing
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Priority == nil &&
		p.DueDate == nil && !p.ClearDueDate && p.Assignee == nil && p.Tags == nil
}
