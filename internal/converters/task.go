// Package converters provides conversion between the persisted snapshot
// records (JSON) and domain models.
//
// All conversions handle:
// - Optional values (empty dueDate, missing movedAt)
// - Timestamps as RFC 3339 strings, due dates as YYYY-MM-DD
// - Tag lists folded into sets
//
// Conversion failures are explicit - never silent type coercions. A task
// record that fails to convert is skipped and reported by DecodeBoard.
//
// Example usage:
//
//	// Persisting the board
//	raw, err := converters.EncodeBoard(board)
//
//	// Restoring it for the configured columns
//	board, report, err := converters.DecodeBoard(raw, specs)
package converters

import (
	"fmt"
	"strings"
	"time"

	"github.com/thenoetrevino/taskflow/internal/models"
)

// TaskRecord is the persisted form of a task
type TaskRecord struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
	DueDate     string   `json:"dueDate"` // "" when unset
	Assignee    string   `json:"assignee"`
	Tags        []string `json:"tags"`
	CreatedAt   string   `json:"createdAt"`
	MovedAt     string   `json:"movedAt,omitempty"`
}

// TaskToRecord converts a models.Task to its persisted form
func TaskToRecord(t models.Task) TaskRecord {
	r := TaskRecord{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		Assignee:    t.Assignee,
		Tags:        append([]string{}, t.Tags...),
		CreatedAt:   formatTime(t.CreatedAt),
	}
	if t.DueDate != nil {
		r.DueDate = t.DueDate.String()
	}
	if t.MovedAt != nil {
		r.MovedAt = formatTime(*t.MovedAt)
	}
	return r
}

// TaskFromRecord converts a persisted task to models.Task.
//
// Handles optional values:
// - dueDate "" becomes nil
// - movedAt "" becomes nil
// - priority "" becomes the default priority
func TaskFromRecord(r TaskRecord) (models.Task, error) {
	if r.ID == "" {
		return models.Task{}, fmt.Errorf("task record has no id")
	}
	if strings.TrimSpace(r.Title) == "" {
		return models.Task{}, fmt.Errorf("task %s: %w", r.ID, models.ErrEmptyTitle)
	}

	priority, err := models.ParsePriority(r.Priority)
	if err != nil {
		return models.Task{}, fmt.Errorf("task %s: %w", r.ID, err)
	}

	t := models.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    priority,
		Assignee:    r.Assignee,
		Tags:        models.NormalizeTags(r.Tags),
	}

	if r.DueDate != "" {
		d, err := models.ParseDate(r.DueDate)
		if err != nil {
			return models.Task{}, fmt.Errorf("task %s: %w", r.ID, err)
		}
		t.DueDate = &d
	}

	if r.CreatedAt != "" {
		created, err := parseTime(r.CreatedAt)
		if err != nil {
			return models.Task{}, fmt.Errorf("task %s createdAt: %w", r.ID, err)
		}
		t.CreatedAt = created
	}

	if r.MovedAt != "" {
		moved, err := parseTime(r.MovedAt)
		if err != nil {
			return models.Task{}, fmt.Errorf("task %s movedAt: %w", r.ID, err)
		}
		t.MovedAt = &moved
	}

	return t, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
