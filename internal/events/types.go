package events

import "time"

// EventType indicates what kind of change occurred
type EventType string

const (
	EventBoardChanged    EventType = "board_changed"
	EventPresenceChanged EventType = "presence_changed"
	EventThemeChanged    EventType = "theme_changed"
	EventPersistFailed   EventType = "persist_failed"
)

// Event is a change notification. Subscribers re-read the source of truth
// (board snapshot, presence snapshot, theme) rather than trusting a payload.
type Event struct {
	Type       EventType
	Op         string    // Operation that caused the change (e.g. "create", "move")
	TaskID     string    // Task affected, if any
	ColumnID   string    // Column affected, if any
	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Monotonically increasing sequence number for ordering
}
