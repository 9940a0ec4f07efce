package models

import "strings"

// ColumnSpec describes one of the fixed columns of a board.
// The set of specs is established at startup and never changes at runtime.
type ColumnSpec struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Color string `yaml:"color"` // Opaque display token (e.g., "blue")
}

// Column represents a kanban board column (e.g., "To Do", "In Progress", "Done")
// Tasks are kept in display order; new and moved tasks are appended at the end.
type Column struct {
	ID    string
	Title string
	Color string
	Tasks []Task
}

// DefaultColumns returns the standard three-column layout
func DefaultColumns() []ColumnSpec {
	return []ColumnSpec{
		{ID: ColumnTodo, Title: "To Do", Color: "blue"},
		{ID: ColumnInProgress, Title: "In Progress", Color: "yellow"},
		{ID: ColumnDone, Title: "Done", Color: "green"},
	}
}

// SanitizeColumns returns specs with blank and repeated ids removed (ids are
// trimmed, the first occurrence wins) along with the number of specs dropped.
// When nothing valid remains the default layout is returned.
func SanitizeColumns(specs []ColumnSpec) ([]ColumnSpec, int) {
	out := make([]ColumnSpec, 0, len(specs))
	seen := make(map[string]bool, len(specs))
	for _, s := range specs {
		s.ID = strings.TrimSpace(s.ID)
		if s.ID == "" || seen[s.ID] {
			continue
		}
		seen[s.ID] = true
		if strings.TrimSpace(s.Title) == "" {
			s.Title = s.ID
		}
		out = append(out, s)
	}
	dropped := len(specs) - len(out)
	if len(out) == 0 {
		return DefaultColumns(), dropped
	}
	return out, dropped
}

// Spec returns the column's identity without its tasks
func (c Column) Spec() ColumnSpec {
	return ColumnSpec{ID: c.ID, Title: c.Title, Color: c.Color}
}

// IndexOf returns the position of the task with the given id, or -1
func (c Column) IndexOf(taskID string) int {
	for i := range c.Tasks {
		if c.Tasks[i].ID == taskID {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the column
func (c Column) Clone() Column {
	out := Column{ID: c.ID, Title: c.Title, Color: c.Color, Tasks: make([]Task, len(c.Tasks))}
	for i := range c.Tasks {
		out.Tasks[i] = c.Tasks[i].Clone()
	}
	return out
}
