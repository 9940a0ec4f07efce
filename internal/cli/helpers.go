package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/thenoetrevino/taskflow/internal/converters"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// ResolveColumn finds a column by id or, case-insensitively, by title
func ResolveColumn(b *models.Board, name string) (string, error) {
	for _, c := range b.Columns {
		if c.ID == name {
			return c.ID, nil
		}
	}
	for _, c := range b.Columns {
		if strings.EqualFold(c.Title, name) {
			return c.ID, nil
		}
	}
	return "", fmt.Errorf("column '%s' not found", name)
}

// ColumnList returns the available column ids for suggestions
func ColumnList(b *models.Board) string {
	ids := make([]string, 0, len(b.Columns))
	for _, c := range b.Columns {
		ids = append(ids, c.ID)
	}
	return strings.Join(ids, ", ")
}

// ParseDue parses a --due value. Empty means no due date.
func ParseDue(s string) (*models.Date, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := models.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ReadDescription returns the description, reading stdin when it is "-"
func ReadDescription(value string, stdin io.Reader) (string, error) {
	if value != "-" {
		return value, nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// TaskView is the CLI representation of a task
type TaskView struct {
	converters.TaskRecord
	Column  string `json:"column"`
	Overdue bool   `json:"overdue"`
}

// GetID returns the task id for quiet output
func (v TaskView) GetID() string {
	return v.ID
}

// NewTaskView builds the CLI representation of a task in a column
func NewTaskView(t models.Task, columnID string, overdue bool) TaskView {
	return TaskView{
		TaskRecord: converters.TaskToRecord(t),
		Column:     columnID,
		Overdue:    overdue,
	}
}
