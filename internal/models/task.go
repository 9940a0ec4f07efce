package models

import "time"

// Task represents a single task in the kanban board
type Task struct {
	ID          string // Unique, immutable
	Title       string
	Description string
	Priority    Priority
	DueDate     *Date // nil when no due date is set
	Assignee    string
	Tags        []string // Set semantics: no duplicates, order irrelevant
	CreatedAt   time.Time
	MovedAt     *time.Time // Stamped every time the task changes column
}

// Clone returns a deep copy so callers never share tags or timestamps with the store
func (t Task) Clone() Task {
	out := t
	if t.Tags != nil {
		out.Tags = append([]string(nil), t.Tags...)
	}
	if t.DueDate != nil {
		d := *t.DueDate
		out.DueDate = &d
	}
	if t.MovedAt != nil {
		m := *t.MovedAt
		out.MovedAt = &m
	}
	return out
}

// HasTag reports whether the task carries the given tag
func (t Task) HasTag(tag string) bool {
	return containsTag(t.Tags, tag)
}

// Overdue reports whether the due date lies strictly before the day of now
func (t Task) Overdue(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	return t.DueDate.Before(DateOf(now))
}
