package converters

import (
	"fmt"

	"github.com/thenoetrevino/taskflow/internal/models"
)

// ColumnRecord is the persisted form of a column
type ColumnRecord struct {
	Title string       `json:"title"`
	Color string       `json:"color"`
	Tasks []TaskRecord `json:"tasks"`
}

// ColumnToRecord converts a models.Column to its persisted form
func ColumnToRecord(c models.Column) ColumnRecord {
	r := ColumnRecord{
		Title: c.Title,
		Color: c.Color,
		Tasks: make([]TaskRecord, len(c.Tasks)),
	}
	for i, t := range c.Tasks {
		r.Tasks[i] = TaskToRecord(t)
	}
	return r
}

// ColumnFromRecord converts a persisted column into the column described by spec.
// Title and color come from the spec; only the task list is taken from the record.
// Records that fail to convert are left out and returned as skipped.
func ColumnFromRecord(spec models.ColumnSpec, r ColumnRecord) (models.Column, []error) {
	c := models.Column{
		ID:    spec.ID,
		Title: spec.Title,
		Color: spec.Color,
		Tasks: make([]models.Task, 0, len(r.Tasks)),
	}
	var skipped []error
	for i, tr := range r.Tasks {
		t, err := TaskFromRecord(tr)
		if err != nil {
			skipped = append(skipped, fmt.Errorf("column %s task %d: %w", spec.ID, i, err))
			continue
		}
		c.Tasks = append(c.Tasks, t)
	}
	return c, skipped
}
